package hive

import "math/bits"

// 预生成键覆盖的坐标范围；超出范围的格子按需用确定性函数生成
const zobristRange = 20

const zobristPieceTypes = 9 // PieceType 范围 [1..8]，0 保留空位不用

// Zobrist 每个 (坐标, 棋子类型, 颜色) 一个固定伪随机 64 位键，
// 外加走子方键和手牌组合键。显式构造一次，随 Game 传递，不做隐藏全局。
type Zobrist struct {
	pieces    map[uint64]uint64
	turnWhite uint64
	turnBlack uint64
	handBase  uint64
}

// splitmix64，种子固定保证可复现
func splitmix64(seed *uint64) uint64 {
	*seed += 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func NewZobrist() *Zobrist {
	seed := uint64(0xDEADBEEF)
	z := &Zobrist{
		pieces: make(map[uint64]uint64, (2*zobristRange+1)*(2*zobristRange+1)*(zobristPieceTypes-1)*2),
	}
	z.turnWhite = splitmix64(&seed)
	z.turnBlack = splitmix64(&seed)
	z.handBase = splitmix64(&seed)

	for q := -zobristRange; q <= zobristRange; q++ {
		for r := -zobristRange; r <= zobristRange; r++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for color := 0; color < 2; color++ {
					z.pieces[packKey(q, r, pt, color)] = splitmix64(&seed)
				}
			}
		}
	}
	return z
}

// 坐标偏移 100 处理负数
func packKey(q, r, pt, color int) uint64 {
	return uint64(q+100)<<32 | uint64(r+100)<<16 | uint64(pt)<<2 | uint64(color)
}

// PieceKey 棋盘层级 level 从 0 起。按层级旋转，保证同格堆叠顺序不同哈希不同。
func (z *Zobrist) PieceKey(pos Coord, pt PieceType, color Color, level int) uint64 {
	if pt == PieceNone || color == NoColor {
		return 0
	}
	key := packKey(pos.Q, pos.R, int(pt), int(color))
	h, ok := z.pieces[key]
	if !ok {
		// 超出预生成范围：种子派生，确定性
		seed := uint64(0xDEADBEEF) ^ key
		h = splitmix64(&seed)
	}
	return bits.RotateLeft64(h, 7*level)
}

func (z *Zobrist) TurnKey(c Color) uint64 {
	if c == Black {
		return z.turnBlack
	}
	return z.turnWhite
}

// HandKey (类型, 颜色, 数量) 的组合键；数量变化时旧键异或出、新键异或入。
func (z *Zobrist) HandKey(pt PieceType, color Color, count int) uint64 {
	return z.handBase ^ uint64(int(pt)*7919) ^ uint64(int(color)*6997) ^ uint64(count*5501)
}

// HashGame 全量计算，用于初始化和校验；热路径上由 Apply 增量维护。
func (z *Zobrist) HashGame(g *Game) uint64 {
	var h uint64
	for pos, stack := range g.Board {
		for level, p := range stack {
			h ^= z.PieceKey(pos, p.Type, p.Color, level)
		}
	}
	h ^= z.TurnKey(g.CurrentTurn)
	for pt, n := range g.Hands[White] {
		h ^= z.HandKey(pt, White, n)
	}
	for pt, n := range g.Hands[Black] {
		h ^= z.HandKey(pt, Black, n)
	}
	return h
}
