package hive

// 蚂蚁：不限步数的贴群滑行。从提起后的位置 BFS 所有合规单步，
// 能到的空格（除起点外）都是合法落点。
func genAntMoves(from Coord, occupied CoordSet) CoordSet {
	moves := make(CoordSet)
	visited := make(CoordSet)
	visited.Add(from)
	queue := []Coord{from}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range Neighbors(curr) {
			if occupied.Has(n) || visited.Has(n) {
				continue
			}
			if !canSlide(curr, n, occupied) {
				continue
			}
			if !hasContact(n, occupied) {
				continue
			}
			visited.Add(n)
			queue = append(queue, n)
			moves.Add(n)
		}
	}
	return moves
}
