package hive

// CoordSet 占用格集合
type CoordSet map[Coord]struct{}

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Add(c Coord)    { s[c] = struct{}{} }
func (s CoordSet) Remove(c Coord) { delete(s, c) }

func (s CoordSet) Clone() CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// IsConnected 占用格是否构成单一连通块（One Hive 规则的核心判定）。
// 空集合视为连通。从任意一格做 BFS，访问数等于集合大小即连通。
func IsConnected(occupied CoordSet) bool {
	if len(occupied) == 0 {
		return true
	}

	var start Coord
	for c := range occupied {
		start = c
		break
	}

	visited := make(CoordSet, len(occupied))
	visited.Add(start)
	queue := []Coord{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range Neighbors(curr) {
			if occupied.Has(n) && !visited.Has(n) {
				visited.Add(n)
				queue = append(queue, n)
			}
		}
	}

	return len(visited) == len(occupied)
}
