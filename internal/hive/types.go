package hive

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	}
	return "NONE"
}

func ColorFromString(s string) (Color, bool) {
	switch s {
	case "WHITE":
		return White, true
	case "BLACK":
		return Black, true
	}
	return NoColor, false
}

func Opposite(c Color) Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PieceQueen
	PieceAnt
	PieceSpider
	PieceBeetle
	PieceGrasshopper
	// 进阶模式棋子
	PieceLadybug
	PieceMosquito
	PiecePillbug
)

var pieceTypeNames = map[PieceType]string{
	PieceQueen:       "QUEEN",
	PieceAnt:         "ANT",
	PieceSpider:      "SPIDER",
	PieceBeetle:      "BEETLE",
	PieceGrasshopper: "GRASSHOPPER",
	PieceLadybug:     "LADYBUG",
	PieceMosquito:    "MOSQUITO",
	PiecePillbug:     "PILLBUG",
}

func (t PieceType) String() string {
	if s, ok := pieceTypeNames[t]; ok {
		return s
	}
	return "NONE"
}

func PieceTypeFromString(s string) (PieceType, bool) {
	for t, name := range pieceTypeNames {
		if name == s {
			return t, true
		}
	}
	return PieceNone, false
}

// Piece 一旦落盘就不可变；归属权跟着所在格子的堆走。
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"-"`
	ID    string    `json:"id"`
}

type GameStatus int8

const (
	StatusInProgress GameStatus = iota
	StatusFinished
)

func (s GameStatus) String() string {
	if s == StatusFinished {
		return "FINISHED"
	}
	return "IN_PROGRESS"
}

type GameMode int8

const (
	ModeStandard GameMode = iota
	ModeAdvanced // 加入瓢虫、蚊子、鼠妇
)

type ActionKind int8

const (
	ActionPlace ActionKind = iota
	ActionMove
	ActionSpecial // 鼠妇投掷
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlace:
		return "PLACE"
	case ActionMove:
		return "MOVE"
	case ActionSpecial:
		return "SPECIAL"
	}
	return "NONE"
}

func ActionKindFromString(s string) (ActionKind, bool) {
	switch s {
	case "PLACE":
		return ActionPlace, true
	case "MOVE":
		return ActionMove, true
	case "SPECIAL":
		return ActionSpecial, true
	}
	return ActionPlace, false
}

// Action PLACE 需要 PieceType；MOVE/SPECIAL 需要 From。
// SPECIAL 的 From 是被投掷棋子的位置，不是鼠妇自己的位置。
type Action struct {
	Kind      ActionKind
	PieceType PieceType
	From      Coord
	HasFrom   bool
	To        Coord
}

// MoveLog 对局历史里的一条记录
type MoveLog struct {
	Action Action
	Player Color
	Turn   int
}

// Hand 手牌：棋子类型 -> 剩余数量，只减不增，不会为负。
type Hand map[PieceType]int

func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	for t, n := range h {
		out[t] = n
	}
	return out
}

// QueenPlaced 蜂后是否已经落盘
func (h Hand) QueenPlaced() bool {
	return h[PieceQueen] == 0
}

func initialHand(mode GameMode) Hand {
	h := Hand{
		PieceQueen:       1,
		PieceAnt:         3,
		PieceGrasshopper: 3,
		PieceSpider:      2,
		PieceBeetle:      2,
	}
	if mode == ModeAdvanced {
		h[PieceLadybug] = 1
		h[PieceMosquito] = 1
		h[PiecePillbug] = 1
	}
	return h
}
