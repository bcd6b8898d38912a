package hive

import "sort"

// DestinationsFor 某格顶端棋子当前所有合法落点。
// perspective 显式传入“以谁的视角”，评估函数算机动性时不用改写 CurrentTurn。
// 返回空集的情况：没棋子、不是该方的、蜂后没落、被冻结、或被钉住。
func DestinationsFor(g *Game, from Coord, perspective Color) CoordSet {
	piece, ok := g.TopPiece(from)
	if !ok || piece.Color != perspective {
		return nil
	}

	// 蜂后未落则一子不能动
	if !g.Hands[perspective].QueenPlaced() {
		return nil
	}
	if g.frozenAt(from) {
		return nil
	}

	occupied := g.Occupied()

	// One Hive 预检：虚拟提起后蜂群必须仍连通（堆高 >1 提走顶子不破坏占用集）
	lifted := occupied
	if g.StackHeight(from) == 1 {
		lifted = occupied.Clone()
		lifted.Remove(from)
	}
	if !IsConnected(lifted) {
		return nil // 被钉住
	}

	switch piece.Type {
	case PieceQueen:
		return genQueenMoves(from, lifted)
	case PieceBeetle:
		return genBeetleMoves(g, from, lifted)
	case PieceGrasshopper:
		return genGrasshopperMoves(from, occupied)
	case PieceSpider:
		return genSpiderMoves(from, lifted)
	case PieceAnt:
		return genAntMoves(from, lifted)
	case PieceLadybug:
		return genLadybugMoves(from, lifted)
	case PieceMosquito:
		return genMosquitoMoves(g, from, lifted)
	case PiecePillbug:
		return genPillbugMoves(from, lifted)
	}
	return nil
}

// ThrowsFor 某格鼠妇（本方、蜂后已落）当前的投掷候选。
// 高亮展示和执行共用同一份候选集，避免两条代码路径各算一遍。
func ThrowsFor(g *Game, pillbug Coord, perspective Color) []Throw {
	piece, ok := g.TopPiece(pillbug)
	if !ok || piece.Color != perspective || piece.Type != PiecePillbug {
		return nil
	}
	if !g.Hands[perspective].QueenPlaced() {
		return nil
	}
	if g.StackHeight(pillbug) != 1 {
		return nil
	}
	return genPillbugThrows(g, pillbug, g.Occupied())
}

// PlacementHexes 落子点。第一手固定原点；第二手贴任何已有棋子；
// 之后必须贴自己的、不贴对手的。
func PlacementHexes(g *Game, color Color) []Coord {
	if len(g.Board) == 0 {
		return []Coord{{0, 0}}
	}

	occupied := g.Occupied()
	candidates := make(CoordSet)

	if g.TurnNumber == 2 {
		for c := range occupied {
			for _, n := range Neighbors(c) {
				if !occupied.Has(n) {
					candidates.Add(n)
				}
			}
		}
		return SortedCoords(candidates)
	}

	for c := range occupied {
		if p, ok := g.TopPiece(c); ok && p.Color == color {
			for _, n := range Neighbors(c) {
				if !occupied.Has(n) {
					candidates.Add(n)
				}
			}
		}
	}

	valid := make(CoordSet)
	for c := range candidates {
		touchesOpponent := false
		for _, n := range Neighbors(c) {
			if p, ok := g.TopPiece(n); ok && p.Color != color {
				touchesOpponent = true
				break
			}
		}
		if !touchesOpponent {
			valid.Add(c)
		}
	}
	return SortedCoords(valid)
}

// LegalActions 当前走子方的全部合法动作，搜索引擎的输入。
func LegalActions(g *Game) []Action {
	if g.Status == StatusFinished {
		return nil
	}

	color := g.CurrentTurn
	hand := g.Hands[color]
	var actions []Action

	mustPlaceQueen := g.isFourthPlacementTurn(color) && !hand.QueenPlaced()

	placements := PlacementHexes(g, color)
	if mustPlaceQueen {
		for _, c := range placements {
			actions = append(actions, Action{Kind: ActionPlace, PieceType: PieceQueen, To: c})
		}
		return actions
	}

	for _, pt := range sortedHandTypes(hand) {
		if hand[pt] <= 0 {
			continue
		}
		for _, c := range placements {
			actions = append(actions, Action{Kind: ActionPlace, PieceType: pt, To: c})
		}
	}

	if !hand.QueenPlaced() {
		return actions
	}

	for _, from := range SortedCoords(g.Occupied()) {
		for _, to := range SortedCoords(DestinationsFor(g, from, color)) {
			actions = append(actions, Action{Kind: ActionMove, From: from, HasFrom: true, To: to})
		}
		if p, ok := g.TopPiece(from); ok && p.Color == color && p.Type == PiecePillbug {
			for _, t := range ThrowsFor(g, from, color) {
				actions = append(actions, Action{Kind: ActionSpecial, From: t.From, HasFrom: true, To: t.To})
			}
		}
	}
	return actions
}

// 第 4 次落子回合：白方全局回合 7，黑方回合 8
func (g *Game) isFourthPlacementTurn(color Color) bool {
	return (color == White && g.TurnNumber == 7) ||
		(color == Black && g.TurnNumber == 8)
}

// SortedCoords 集合转有序切片，保证枚举顺序稳定
func SortedCoords(set CoordSet) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}
		return out[i].R < out[j].R
	})
	return out
}

func sortedHandTypes(h Hand) []PieceType {
	out := make([]PieceType, 0, len(h))
	for pt := range h {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
