package hive

// 蚊子：地面时继承所有接触到的棋子类型的走法（蚊子本身除外），
// 只挨着别的蚊子就动不了；在堆顶时按甲虫走。
// occupied 已提起蚊子。
func genMosquitoMoves(g *Game, from Coord, occupied CoordSet) CoordSet {
	if g.StackHeight(from) > 1 {
		return genBeetleMoves(g, from, occupied)
	}

	touched := make(map[PieceType]struct{})
	for _, n := range Neighbors(from) {
		if p, ok := g.TopPiece(n); ok {
			touched[p.Type] = struct{}{}
		}
	}

	moves := make(CoordSet)
	for pt := range touched {
		var sub CoordSet
		switch pt {
		case PieceQueen, PiecePillbug:
			// 鼠妇的普通走法和蜂后一样；投掷能力不继承
			sub = genQueenMoves(from, occupied)
		case PieceBeetle:
			sub = genBeetleMoves(g, from, occupied)
		case PieceGrasshopper:
			sub = genGrasshopperMoves(from, g.Occupied())
		case PieceSpider:
			sub = genSpiderMoves(from, occupied)
		case PieceAnt:
			sub = genAntMoves(from, occupied)
		case PieceLadybug:
			sub = genLadybugMoves(from, occupied)
		case PieceMosquito:
			// 蚊子不继承蚊子
			continue
		}
		for c := range sub {
			moves.Add(c)
		}
	}
	return moves
}
