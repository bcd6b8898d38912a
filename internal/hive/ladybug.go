package hive

// 瓢虫：恰好三步——先连爬两步占用格（爬行不受门规则限制），
// 第三步落到有蜂群接触的空格，不能回到起点。
// occupied 已提起瓢虫。
func genLadybugMoves(from Coord, occupied CoordSet) CoordSet {
	moves := make(CoordSet)
	for _, a := range Neighbors(from) {
		if !occupied.Has(a) {
			continue
		}
		for _, b := range Neighbors(a) {
			if b == a || !occupied.Has(b) {
				continue
			}
			for _, c := range Neighbors(b) {
				if c == from || occupied.Has(c) {
					continue
				}
				// c 与 b 相邻，天然有接触；写明不变量
				if !hasContact(c, occupied) {
					continue
				}
				moves.Add(c)
			}
		}
	}
	return moves
}
