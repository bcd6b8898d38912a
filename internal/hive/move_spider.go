package hive

const spiderSteps = 3

type spiderFrame struct {
	pos     Coord
	steps   int
	visited CoordSet
}

// 蜘蛛：恰好三步贴群滑行，一次移动内不重复经过同一格。
// 显式栈做限深搜索，visited 按分支拷贝。
func genSpiderMoves(from Coord, occupied CoordSet) CoordSet {
	ends := make(CoordSet)

	start := make(CoordSet)
	start.Add(from)
	stack := []spiderFrame{{pos: from, steps: spiderSteps, visited: start}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fr.steps == 0 {
			ends.Add(fr.pos)
			continue
		}

		for _, n := range Neighbors(fr.pos) {
			if occupied.Has(n) || fr.visited.Has(n) {
				continue
			}
			if !canSlide(fr.pos, n, occupied) {
				continue
			}
			if !hasContact(n, occupied) {
				continue
			}
			nv := fr.visited.Clone()
			nv.Add(n)
			stack = append(stack, spiderFrame{pos: n, steps: fr.steps - 1, visited: nv})
		}
	}
	return ends
}
