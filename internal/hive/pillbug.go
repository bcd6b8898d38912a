package hive

// 鼠妇普通走法与蜂后相同
func genPillbugMoves(from Coord, occupied CoordSet) CoordSet {
	return genQueenMoves(from, occupied)
}

// Throw 鼠妇投掷：把 From 处的棋子搬到 To
type Throw struct {
	From Coord
	To   Coord
}

// genPillbugThrows 投掷候选。被投的必须是鼠妇旁边、没叠堆、
// 没被冻结、也不是对手上一步刚动过的棋子；目标是鼠妇旁边的空格。
// 提子要过 One Hive 检查，从被投格到鼠妇格、再从鼠妇格到目标格
// 各过一次翻越门检查（都在提子之后的集合上算）。
func genPillbugThrows(g *Game, pillbug Coord, occupied CoordSet) []Throw {
	var throws []Throw

	for _, victim := range Neighbors(pillbug) {
		if !occupied.Has(victim) {
			continue
		}
		if g.StackHeight(victim) != 1 {
			continue
		}
		if g.frozenAt(victim) {
			continue
		}
		if g.LastMoved != nil && *g.LastMoved == victim {
			continue
		}

		lifted := occupied.Clone()
		lifted.Remove(victim)
		if !IsConnected(lifted) {
			continue
		}
		if !canCross(victim, pillbug, lifted) {
			continue
		}

		for _, dest := range Neighbors(pillbug) {
			if dest == victim || lifted.Has(dest) {
				continue
			}
			if !canCross(pillbug, dest, lifted) {
				continue
			}
			throws = append(throws, Throw{From: victim, To: dest})
		}
	}
	return throws
}
