package httpserver

import "github.com/dgconway/hive/internal/hive"

type NewGameRequest struct {
	Mode string `json:"mode"` // "STANDARD"（默认）或 "ADVANCED"
}

type GameResponse struct {
	Game hive.GameDoc `json:"game"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// ValidMovesRequest Hex 非空时连带返回该格棋子的落点
type ValidMovesRequest struct {
	GameID string `json:"game_id"`
	Hex    string `json:"hex,omitempty"` // "q,r"
}

type ThrowDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ValidMovesResponse struct {
	Placements   []string   `json:"placements"`
	Destinations []string   `json:"destinations,omitempty"`
	Throws       []ThrowDTO `json:"throws,omitempty"`
}

type PlayRequest struct {
	GameID string         `json:"game_id"`
	Action hive.ActionDoc `json:"action"`
}

type AiMoveRequest struct {
	GameID      string `json:"game_id"`
	MaxDepth    int    `json:"max_depth"`
	TimeMs      int64  `json:"time_ms"`
	Parallelism int    `json:"parallelism"`
}

type AiMoveResponse struct {
	Game     hive.GameDoc    `json:"game"`
	Action   *hive.ActionDoc `json:"action,omitempty"`
	Score    int             `json:"score"`
	Depth    int             `json:"depth"`
	Nodes    int64           `json:"nodes"`
	TimeMs   int64           `json:"time_ms"`
	FromBook bool            `json:"from_book"`
	Status   string          `json:"status"` // "ok" / "no_moves"
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func coordStrings(coords []hive.Coord) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.String()
	}
	return out
}
