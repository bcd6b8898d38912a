package hive

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// 边界序列化形状：棋盘键是 "q,r" 字符串，枚举走字符串名，
// 手牌是 类型名 -> 数量。HTTP 层和持久化存储共用。

type PieceDoc struct {
	Type  string `json:"type"`
	Color string `json:"color"`
	ID    string `json:"id"`
}

type ActionDoc struct {
	Kind      string `json:"kind"`
	PieceType string `json:"piece_type,omitempty"`
	From      *Coord `json:"from,omitempty"`
	To        Coord  `json:"to"`
}

type MoveLogDoc struct {
	Action ActionDoc `json:"action"`
	Player string    `json:"player"`
	Turn   int       `json:"turn"`
}

type GameDoc struct {
	GameID      string                `json:"game_id"`
	Mode        string                `json:"mode"`
	Board       map[string][]PieceDoc `json:"board"`
	CurrentTurn string                `json:"current_turn"`
	TurnNumber  int                   `json:"turn_number"`
	WhiteHand   map[string]int        `json:"white_pieces_hand"`
	BlackHand   map[string]int        `json:"black_pieces_hand"`
	Status      string                `json:"status"`
	Winner      *string               `json:"winner,omitempty"`
	History     []MoveLogDoc          `json:"history,omitempty"`
	LastMoved   *string               `json:"last_moved,omitempty"`
	Frozen      *string               `json:"frozen,omitempty"`
	FrozenUntil int                   `json:"frozen_until,omitempty"`
}

// ParseCoord "q,r" -> Coord
func ParseCoord(s string) (Coord, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("invalid coordinate %q", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return Coord{Q: q, R: r}, nil
}

// ActionToDoc 内部动作转边界形状
func ActionToDoc(a Action) ActionDoc {
	doc := ActionDoc{Kind: a.Kind.String(), To: a.To}
	if a.PieceType != PieceNone {
		doc.PieceType = a.PieceType.String()
	}
	if a.HasFrom {
		from := a.From
		doc.From = &from
	}
	return doc
}

// ActionFromDoc 边界动作转内部动作；字段缺失在 Apply 里再按规则报错
func ActionFromDoc(doc ActionDoc) (Action, error) {
	kind, ok := ActionKindFromString(doc.Kind)
	if !ok {
		return Action{}, fmt.Errorf("unknown action kind %q", doc.Kind)
	}
	a := Action{Kind: kind, To: doc.To}
	if doc.PieceType != "" {
		pt, ok := PieceTypeFromString(doc.PieceType)
		if !ok {
			return Action{}, fmt.Errorf("unknown piece type %q", doc.PieceType)
		}
		a.PieceType = pt
	}
	if doc.From != nil {
		a.From = *doc.From
		a.HasFrom = true
	}
	return a, nil
}

// ToDoc 导出为边界形状
func (g *Game) ToDoc() GameDoc {
	doc := GameDoc{
		GameID:      g.ID,
		Mode:        modeName(g.Mode),
		Board:       make(map[string][]PieceDoc, len(g.Board)),
		CurrentTurn: g.CurrentTurn.String(),
		TurnNumber:  g.TurnNumber,
		WhiteHand:   handToDoc(g.Hands[White]),
		BlackHand:   handToDoc(g.Hands[Black]),
		Status:      g.Status.String(),
		FrozenUntil: g.FrozenUntil,
	}
	for c, stack := range g.Board {
		pieces := make([]PieceDoc, len(stack))
		for i, p := range stack {
			pieces[i] = PieceDoc{Type: p.Type.String(), Color: p.Color.String(), ID: p.ID}
		}
		doc.Board[c.String()] = pieces
	}
	if g.Status == StatusFinished && g.Winner != NoColor {
		w := g.Winner.String()
		doc.Winner = &w
	}
	for _, log := range g.History {
		doc.History = append(doc.History, MoveLogDoc{
			Action: ActionToDoc(log.Action),
			Player: log.Player.String(),
			Turn:   log.Turn,
		})
	}
	if g.LastMoved != nil {
		s := g.LastMoved.String()
		doc.LastMoved = &s
	}
	if g.Frozen != nil {
		s := g.Frozen.String()
		doc.Frozen = &s
	}
	return doc
}

// GameFromDoc 反序列化并重建哈希
func GameFromDoc(doc GameDoc, zob *Zobrist) (*Game, error) {
	turn, ok := ColorFromString(doc.CurrentTurn)
	if !ok {
		return nil, fmt.Errorf("unknown color %q", doc.CurrentTurn)
	}

	g := &Game{
		ID:          doc.GameID,
		Mode:        modeFromName(doc.Mode),
		Board:       make(map[Coord][]Piece, len(doc.Board)),
		CurrentTurn: turn,
		TurnNumber:  doc.TurnNumber,
		Status:      StatusInProgress,
		Winner:      NoColor,
		FrozenUntil: doc.FrozenUntil,
	}
	if doc.Status == StatusFinished.String() {
		g.Status = StatusFinished
	}
	if doc.Winner != nil {
		w, ok := ColorFromString(*doc.Winner)
		if !ok {
			return nil, fmt.Errorf("unknown winner %q", *doc.Winner)
		}
		g.Winner = w
	}

	for key, pieces := range doc.Board {
		c, err := ParseCoord(key)
		if err != nil {
			return nil, err
		}
		if len(pieces) == 0 {
			continue // 空堆不存
		}
		stack := make([]Piece, len(pieces))
		for i, pd := range pieces {
			pt, ok := PieceTypeFromString(pd.Type)
			if !ok {
				return nil, fmt.Errorf("unknown piece type %q", pd.Type)
			}
			color, ok := ColorFromString(pd.Color)
			if !ok {
				return nil, fmt.Errorf("unknown color %q", pd.Color)
			}
			stack[i] = Piece{Type: pt, Color: color, ID: pd.ID}
		}
		g.Board[c] = stack
	}

	var err error
	if g.Hands[White], err = handFromDoc(doc.WhiteHand); err != nil {
		return nil, err
	}
	if g.Hands[Black], err = handFromDoc(doc.BlackHand); err != nil {
		return nil, err
	}

	for _, ld := range doc.History {
		act, err := ActionFromDoc(ld.Action)
		if err != nil {
			return nil, err
		}
		player, ok := ColorFromString(ld.Player)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", ld.Player)
		}
		g.History = append(g.History, MoveLog{Action: act, Player: player, Turn: ld.Turn})
	}

	if doc.LastMoved != nil {
		c, err := ParseCoord(*doc.LastMoved)
		if err != nil {
			return nil, err
		}
		g.LastMoved = &c
	}
	if doc.Frozen != nil {
		c, err := ParseCoord(*doc.Frozen)
		if err != nil {
			return nil, err
		}
		g.Frozen = &c
	}

	g.RecomputeHash(zob)
	return g, nil
}

// MarshalGame 持久化存储用
func MarshalGame(g *Game) ([]byte, error) {
	return json.Marshal(g.ToDoc())
}

func UnmarshalGame(data []byte, zob *Zobrist) (*Game, error) {
	var doc GameDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return GameFromDoc(doc, zob)
}

func modeName(m GameMode) string {
	if m == ModeAdvanced {
		return "ADVANCED"
	}
	return "STANDARD"
}

func modeFromName(s string) GameMode {
	if s == "ADVANCED" {
		return ModeAdvanced
	}
	return ModeStandard
}

func handToDoc(h Hand) map[string]int {
	out := make(map[string]int, len(h))
	for pt, n := range h {
		out[pt.String()] = n
	}
	return out
}

func handFromDoc(m map[string]int) (Hand, error) {
	h := make(Hand, len(m))
	for name, n := range m {
		pt, ok := PieceTypeFromString(name)
		if !ok {
			return nil, fmt.Errorf("unknown piece type %q", name)
		}
		h[pt] = n
	}
	return h, nil
}
