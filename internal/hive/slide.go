package hive

// canSlide 平移门规则：A 滑到相邻的 B，
// 两个公共邻格都被占 -> 夹死挤不过去；
// 都没被占 -> 滑行途中脱离蜂群，也不行（必须贴着蜂群滑）。
func canSlide(start, end Coord, occupied CoordSet) bool {
	n := 0
	for _, c := range CommonNeighbors(start, end) {
		if occupied.Has(c) {
			n++
		}
	}
	return n == 1
}

// canCross 翻越门规则（鼠妇投掷走的是上层）：只有两个公共邻格
// 都被占时才算堵死，不要求贴群。
func canCross(start, end Coord, occupied CoordSet) bool {
	n := 0
	for _, c := range CommonNeighbors(start, end) {
		if occupied.Has(c) {
			n++
		}
	}
	return n < 2
}

// hasContact 该格是否与蜂群接触
func hasContact(c Coord, occupied CoordSet) bool {
	for _, n := range Neighbors(c) {
		if occupied.Has(n) {
			return true
		}
	}
	return false
}
