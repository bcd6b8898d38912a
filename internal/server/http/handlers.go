package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dgconway/hive/internal/engine"
	"github.com/dgconway/hive/internal/hive"
	"github.com/dgconway/hive/internal/server/game"
)

// Handler 实现 http.Handler，承载 /api/* 路由
type Handler struct {
	mgr *game.Manager
	log zerolog.Logger
}

func NewHandler(mgr *game.Manager, log zerolog.Logger) *Handler {
	return &Handler{mgr: mgr, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/valid_moves":
		h.handleValidMoves(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// body 可以为空，默认标准模式
	_ = json.NewDecoder(r.Body).Decode(&req)

	mode := hive.ModeStandard
	if req.Mode == "ADVANCED" {
		mode = hive.ModeAdvanced
	}

	g, err := h.mgr.NewGame(mode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, GameResponse{Game: g.ToDoc()})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.mgr.Get(req.GameID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, GameResponse{Game: g.ToDoc()})
}

func (h *Handler) handleValidMoves(w http.ResponseWriter, r *http.Request) {
	var req ValidMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.mgr.Get(req.GameID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := ValidMovesResponse{
		Placements: coordStrings(hive.PlacementHexes(g, g.CurrentTurn)),
	}

	if req.Hex != "" {
		from, err := hive.ParseCoord(req.Hex)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dests := hive.DestinationsFor(g, from, g.CurrentTurn)
		resp.Destinations = coordStrings(hive.SortedCoords(dests))
		for _, t := range hive.ThrowsFor(g, from, g.CurrentTurn) {
			resp.Throws = append(resp.Throws, ThrowDTO{From: t.From.String(), To: t.To.String()})
		}
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	act, err := hive.ActionFromDoc(req.Action)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.mgr.WithGame(req.GameID, func(g *hive.Game) error {
		return g.Apply(act)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info().
		Str("game_id", req.GameID).
		Str("kind", req.Action.Kind).
		Str("to", act.To.String()).
		Int("turn", g.TurnNumber).
		Msg("action applied")
	h.writeJSON(w, GameResponse{Game: g.ToDoc()})
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	cfg := engine.SearchConfig{
		MaxDepth:    req.MaxDepth,
		Parallelism: req.Parallelism,
	}
	if req.TimeMs > 0 {
		cfg.TimeLimit = time.Duration(req.TimeMs) * time.Millisecond
	}

	var res engine.SearchResult
	g, err := h.mgr.WithGame(req.GameID, func(g *hive.Game) error {
		if g.Status == hive.StatusFinished {
			return hive.ErrGameFinished
		}
		eng := h.mgr.EngineFor(g.ID, g.CurrentTurn)
		res = eng.Search(r.Context(), g, cfg)
		if !res.HasAction {
			return nil // 无子可动，不改状态
		}
		return g.Apply(res.BestAction)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := AiMoveResponse{
		Game:     g.ToDoc(),
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
		FromBook: res.FromBook,
		Status:   "ok",
	}
	if res.HasAction {
		doc := hive.ActionToDoc(res.BestAction)
		resp.Action = &doc
	} else {
		resp.Status = "no_moves"
	}

	h.log.Info().
		Str("game_id", req.GameID).
		Int("depth", res.Depth).
		Int64("nodes", res.Nodes).
		Int("score", res.Score).
		Dur("elapsed", res.TimeUsed).
		Msg("ai move")
	h.writeJSON(w, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("write response")
	}
}

// 规则错误 400，找不到 404，其余 500
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case hive.IsRuleViolation(err), errors.Is(err, hive.ErrGameFinished):
		status = http.StatusBadRequest
	case errors.Is(err, hive.ErrGameNotFound):
		status = http.StatusNotFound
	default:
		h.log.Error().Err(err).Msg("internal error")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}
