package hive

import "fmt"

// Coord 轴坐标 (q, r)。纯值类型。
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Q, c.R)
}

func (c Coord) Add(d Coord) Coord {
	return Coord{Q: c.Q + d.Q, R: c.R + d.R}
}

// 六个固定方向
var hexDirections = [6]Coord{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// Neighbors 返回六个相邻格
func Neighbors(c Coord) [6]Coord {
	var out [6]Coord
	for i, d := range hexDirections {
		out[i] = c.Add(d)
	}
	return out
}

// Distance 轴坐标距离公式
func Distance(a, b Coord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

func AreNeighbors(a, b Coord) bool {
	return Distance(a, b) == 1
}

// CommonNeighbors 两格的公共相邻格（相邻的两格恰有两个），门规则用。
func CommonNeighbors(a, b Coord) []Coord {
	bn := Neighbors(b)
	out := make([]Coord, 0, 2)
	for _, n := range Neighbors(a) {
		for _, m := range bn {
			if n == m {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
