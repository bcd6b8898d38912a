package engine

import "github.com/dgconway/hive/internal/hive"

// 开局定式：第一手落蚱蜢占位，第二手立刻落蜂后。
// 前两手没有搜索价值，直接走定式省掉一整层迭代加深。
func (e *Engine) bookAction(g *hive.Game) (hive.Action, bool) {
	color := g.CurrentTurn
	hand := g.Hands[color]
	placed := placedCount(g, color)

	var pt hive.PieceType
	switch {
	case placed == 0 && hand[hive.PieceGrasshopper] > 0:
		pt = hive.PieceGrasshopper
	case placed == 1 && hand[hive.PieceQueen] > 0:
		pt = hive.PieceQueen
	default:
		return hive.Action{}, false
	}

	hexes := hive.PlacementHexes(g, color)
	if len(hexes) == 0 {
		return hive.Action{}, false
	}
	return hive.Action{Kind: hive.ActionPlace, PieceType: pt, To: hexes[0]}, true
}

func placedCount(g *hive.Game, color hive.Color) int {
	n := 0
	for _, stack := range g.Board {
		for _, p := range stack {
			if p.Color == color {
				n++
			}
		}
	}
	return n
}
