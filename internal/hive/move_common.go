package hive

// 蜂后：贴群滑一步，只能进空格
func genQueenMoves(from Coord, occupied CoordSet) CoordSet {
	moves := make(CoordSet)
	for _, n := range Neighbors(from) {
		if occupied.Has(n) {
			continue
		}
		if !canSlide(from, n, occupied) {
			continue
		}
		if hasContact(n, occupied) {
			moves.Add(n)
		}
	}
	return moves
}

// 甲虫：走一步，可以爬上别的棋子。
// 只有在地面（起点堆高 1）滑进空格时才受门规则约束；爬堆不受限。
// occupied 已把甲虫自己从起点摘掉。
func genBeetleMoves(g *Game, from Coord, occupied CoordSet) CoordSet {
	moves := make(CoordSet)
	startHeight := g.StackHeight(from)
	for _, n := range Neighbors(from) {
		destEmpty := !occupied.Has(n)
		if startHeight == 1 && destEmpty {
			if !canSlide(from, n, occupied) {
				continue
			}
		}
		if destEmpty && !hasContact(n, occupied) {
			continue
		}
		moves.Add(n)
	}
	return moves
}

// 蚂蚱：沿直线跳过至少一枚连续棋子，落在后面第一个空格。
// occupied 用完整占用集（起点是否在里面无所谓，方向扫描从邻格开始）。
func genGrasshopperMoves(from Coord, occupied CoordSet) CoordSet {
	moves := make(CoordSet)
	for _, d := range hexDirections {
		curr := from.Add(d)
		if !occupied.Has(curr) {
			continue // 紧邻是空格就没东西可跳
		}
		for occupied.Has(curr) {
			curr = curr.Add(d)
		}
		moves.Add(curr)
	}
	return moves
}
