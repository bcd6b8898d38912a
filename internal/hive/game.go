package hive

// Game 一局对局的全部状态。只能通过 Apply 修改；
// 搜索引擎在 Clone 出来的副本上模拟，不碰在库记录。
type Game struct {
	ID          string
	Mode        GameMode
	Board       map[Coord][]Piece // 格子 -> 棋子堆（底到顶）；空堆不存，直接删键
	CurrentTurn Color
	TurnNumber  int // 全局回合号，从 1 起；白方奇数、黑方偶数
	Hands       [2]Hand
	Status      GameStatus
	Winner      Color // 只在 Status==FINISHED 时有意义；NoColor 表示和棋
	History     []MoveLog

	// LastMoved 上一步动作的落点；鼠妇不能投掷对手刚动过的棋子
	LastMoved *Coord
	// Frozen 被鼠妇投掷的棋子位置；TurnNumber<=FrozenUntil 期间不能动也不能再被投
	Frozen      *Coord
	FrozenUntil int

	hash uint64
	zob  *Zobrist
}

// NewGame zob 由调用方构造并持有，可在多局之间复用（键只读，并发安全）。
func NewGame(id string, mode GameMode, zob *Zobrist) *Game {
	g := &Game{
		ID:          id,
		Mode:        mode,
		Board:       make(map[Coord][]Piece),
		CurrentTurn: White,
		TurnNumber:  1,
		Hands:       [2]Hand{initialHand(mode), initialHand(mode)},
		Status:      StatusInProgress,
		Winner:      NoColor,
		zob:         zob,
	}
	g.hash = zob.HashGame(g)
	return g
}

// Hash 增量维护的 Zobrist 指纹
func (g *Game) Hash() uint64 { return g.hash }

func (g *Game) Zobrist() *Zobrist { return g.zob }

// RecomputeHash 反序列化之后重建哈希用
func (g *Game) RecomputeHash(zob *Zobrist) {
	g.zob = zob
	g.hash = zob.HashGame(g)
}

// Clone 深拷贝；zob 共享（只读）。
func (g *Game) Clone() *Game {
	ng := *g
	ng.Board = make(map[Coord][]Piece, len(g.Board))
	for c, stack := range g.Board {
		s := make([]Piece, len(stack))
		copy(s, stack)
		ng.Board[c] = s
	}
	ng.Hands = [2]Hand{g.Hands[0].Clone(), g.Hands[1].Clone()}
	ng.History = make([]MoveLog, len(g.History))
	copy(ng.History, g.History)
	if g.LastMoved != nil {
		c := *g.LastMoved
		ng.LastMoved = &c
	}
	if g.Frozen != nil {
		c := *g.Frozen
		ng.Frozen = &c
	}
	return &ng
}

// Occupied 当前占用格集合
func (g *Game) Occupied() CoordSet {
	out := make(CoordSet, len(g.Board))
	for c, stack := range g.Board {
		if len(stack) > 0 {
			out.Add(c)
		}
	}
	return out
}

// TopPiece 格子顶端的棋子
func (g *Game) TopPiece(c Coord) (Piece, bool) {
	stack, ok := g.Board[c]
	if !ok || len(stack) == 0 {
		return Piece{}, false
	}
	return stack[len(stack)-1], true
}

func (g *Game) StackHeight(c Coord) int {
	return len(g.Board[c])
}

// QueenPos 某方蜂后的位置（可能被甲虫压住，仍按所在格算）
func (g *Game) QueenPos(color Color) (Coord, bool) {
	for c, stack := range g.Board {
		for _, p := range stack {
			if p.Type == PieceQueen && p.Color == color {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// frozenAt 该格的棋子当前是否处于投掷冻结期
func (g *Game) frozenAt(c Coord) bool {
	return g.Frozen != nil && *g.Frozen == c && g.TurnNumber <= g.FrozenUntil
}

// surrounded 蜂后六个邻格是否全部被占
func (g *Game) surrounded(queen Coord) bool {
	for _, n := range Neighbors(queen) {
		if len(g.Board[n]) == 0 {
			return false
		}
	}
	return true
}

// checkWin 任一方蜂后被六面包围则终局；双方同时被围为和棋。
// 被围的是输家——自己的子也算包围。
func (g *Game) checkWin() {
	whiteDead := false
	blackDead := false
	if c, ok := g.QueenPos(White); ok && g.surrounded(c) {
		whiteDead = true
	}
	if c, ok := g.QueenPos(Black); ok && g.surrounded(c) {
		blackDead = true
	}

	switch {
	case whiteDead && blackDead:
		g.Status = StatusFinished
		g.Winner = NoColor
	case whiteDead:
		g.Status = StatusFinished
		g.Winner = Black
	case blackDead:
		g.Status = StatusFinished
		g.Winner = White
	}
}
