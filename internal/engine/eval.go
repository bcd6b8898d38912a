package engine

import "github.com/dgconway/hive/internal/hive"

// 终局分：远大于任何静态评估能达到的值
const scoreWin = 1_000_000

// Weights 评估权重，可从 JSON 调参文件载入（自对弈调参用）。
type Weights struct {
	PieceValues map[hive.PieceType]int `json:"-"`

	Queen       int `json:"queen"`
	Ant         int `json:"ant"`
	Beetle      int `json:"beetle"`
	Grasshopper int `json:"grasshopper"`
	Spider      int `json:"spider"`
	Ladybug     int `json:"ladybug"`
	Mosquito    int `json:"mosquito"`
	Pillbug     int `json:"pillbug"`

	// SurroundTable[n] 蜂后被围 n 面的分值
	SurroundTable [7]int `json:"surround_table"`
	// OppSurroundMul / OwnSurroundMul 围对方加分、被围扣分的倍率
	OppSurroundMul int `json:"opp_surround_mul"`
	OwnSurroundMul int `json:"own_surround_mul"`

	MobilityPerMove int `json:"mobility_per_move"`

	// 离对方蜂后 dist<=ProximityRange 的子，每格近 (range+2-dist)*ProximityMul 分
	ProximityRange int `json:"proximity_range"`
	ProximityMul   int `json:"proximity_mul"`

	AntFree        int `json:"ant_free"`
	AntTrapped     int `json:"ant_trapped"`
	OppAntTrapped  int `json:"opp_ant_trapped"`
	HandValueDenom int `json:"hand_value_denom"`
}

func DefaultWeights() Weights {
	w := Weights{
		Queen:           1000,
		Ant:             80,
		Beetle:          60,
		Grasshopper:     40,
		Spider:          30,
		Ladybug:         50,
		Mosquito:        70,
		Pillbug:         50,
		SurroundTable:   [7]int{0, 5, 15, 40, 100, 300, 1000},
		OppSurroundMul:  2,
		OwnSurroundMul:  5,
		MobilityPerMove: 2,
		ProximityRange:  3,
		ProximityMul:    10,
		AntFree:         20,
		AntTrapped:      15,
		OppAntTrapped:   30,
		HandValueDenom:  2,
	}
	w.rebuildPieceValues()
	return w
}

func (w *Weights) rebuildPieceValues() {
	w.PieceValues = map[hive.PieceType]int{
		hive.PieceQueen:       w.Queen,
		hive.PieceAnt:         w.Ant,
		hive.PieceBeetle:      w.Beetle,
		hive.PieceGrasshopper: w.Grasshopper,
		hive.PieceSpider:      w.Spider,
		hive.PieceLadybug:     w.Ladybug,
		hive.PieceMosquito:    w.Mosquito,
		hive.PiecePillbug:     w.Pillbug,
	}
}

// Evaluate 从 player 视角的静态评估，正数对 player 有利。
// 不改写 g.CurrentTurn：机动性按 perspective 显式算。
func Evaluate(g *hive.Game, player hive.Color, w *Weights) int {
	if g.Status == hive.StatusFinished {
		switch g.Winner {
		case player:
			return scoreWin
		case hive.NoColor:
			return 0
		default:
			return -scoreWin
		}
	}

	opponent := hive.Opposite(player)
	score := 0

	// 蜂后包围度
	if c, ok := g.QueenPos(opponent); ok {
		score += w.SurroundTable[surroundCount(g, c)] * w.OppSurroundMul
	}
	if c, ok := g.QueenPos(player); ok {
		score -= w.SurroundTable[surroundCount(g, c)] * w.OwnSurroundMul
	}

	oppQueen, hasOppQueen := g.QueenPos(opponent)

	for c, stack := range g.Board {
		for _, p := range stack {
			v := w.PieceValues[p.Type]
			if p.Color == player {
				score += v
			} else {
				score -= v
			}
		}

		top, ok := g.TopPiece(c)
		if !ok {
			continue
		}

		// 机动性
		moves := len(hive.DestinationsFor(g, c, top.Color))
		if top.Color == player {
			score += moves * w.MobilityPerMove
		} else {
			score -= moves * w.MobilityPerMove
		}

		// 贴近对方蜂后
		if top.Color == player && hasOppQueen && top.Type != hive.PieceQueen {
			d := hive.Distance(c, oppQueen)
			if d <= w.ProximityRange {
				score += (w.ProximityRange + 2 - d) * w.ProximityMul
			}
		}

		// 蚂蚁活性：能动的自家蚂蚁有奖励，被困的扣；困住对方蚂蚁加分
		if top.Type == hive.PieceAnt {
			if top.Color == player {
				if moves > 0 {
					score += w.AntFree
				} else {
					score -= w.AntTrapped
				}
			} else if moves == 0 {
				score += w.OppAntTrapped
			}
		}
	}

	// 手牌余量算半价
	score += handValue(g.Hands[player], w) / w.HandValueDenom
	score -= handValue(g.Hands[opponent], w) / w.HandValueDenom

	return score
}

func surroundCount(g *hive.Game, queen hive.Coord) int {
	n := 0
	for _, c := range hive.Neighbors(queen) {
		if g.StackHeight(c) > 0 {
			n++
		}
	}
	return n
}

func handValue(h hive.Hand, w *Weights) int {
	total := 0
	for pt, n := range h {
		total += w.PieceValues[pt] * n
	}
	return total
}
