package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dgconway/hive/internal/hive"
)

func TestSearchFindsWinInOne(t *testing.T) {
	// 黑后五面被围，白蚂蚁一步收口
	g := buildGame(t, hive.White, []stone{
		{hive.Coord{Q: 0, R: 0}, hive.PieceQueen, hive.Black},
		{hive.Coord{Q: 1, R: 0}, hive.PieceSpider, hive.Black},
		{hive.Coord{Q: 1, R: -1}, hive.PieceSpider, hive.Black},
		{hive.Coord{Q: 0, R: -1}, hive.PieceGrasshopper, hive.Black},
		{hive.Coord{Q: -1, R: 0}, hive.PieceGrasshopper, hive.Black},
		{hive.Coord{Q: -1, R: 1}, hive.PieceBeetle, hive.Black},
		{hive.Coord{Q: 1, R: 1}, hive.PieceAnt, hive.White},
		{hive.Coord{Q: 2, R: 0}, hive.PieceQueen, hive.White},
	})

	eng := NewEngine()
	res := eng.Search(context.Background(), g, SearchConfig{MaxDepth: 2, DisableBook: true})

	require.True(t, res.HasAction)
	require.GreaterOrEqual(t, res.Score, scoreWin)

	require.NoError(t, g.Apply(res.BestAction))
	require.Equal(t, hive.StatusFinished, g.Status)
	require.Equal(t, hive.White, g.Winner)
}

// 朴素负极大，无置换表无排序，作为 alpha-beta 的对照
func plainNegamax(g *hive.Game, depth int, w *Weights) int {
	if g.Status == hive.StatusFinished || depth <= 0 {
		return Evaluate(g, g.CurrentTurn, w)
	}
	actions := hive.LegalActions(g)
	if len(actions) == 0 {
		return Evaluate(g, g.CurrentTurn, w)
	}
	best := -scoreInf
	for _, a := range actions {
		child := g.Clone()
		if err := child.Apply(a); err != nil {
			continue
		}
		if s := -plainNegamax(child, depth-1, w); s > best {
			best = s
		}
	}
	return best
}

func TestSearchMatchesPlainNegamax(t *testing.T) {
	g := hive.NewGame("t", hive.ModeAdvanced, testZob)
	script := []hive.Action{
		{Kind: hive.ActionPlace, PieceType: hive.PieceQueen, To: hive.Coord{Q: 0, R: 0}},
		{Kind: hive.ActionPlace, PieceType: hive.PieceQueen, To: hive.Coord{Q: 1, R: 0}},
		{Kind: hive.ActionPlace, PieceType: hive.PieceAnt, To: hive.Coord{Q: -1, R: 0}},
		{Kind: hive.ActionPlace, PieceType: hive.PieceAnt, To: hive.Coord{Q: 2, R: 0}},
		{Kind: hive.ActionPlace, PieceType: hive.PieceGrasshopper, To: hive.Coord{Q: -1, R: 1}},
		{Kind: hive.ActionPlace, PieceType: hive.PieceGrasshopper, To: hive.Coord{Q: 3, R: 0}},
	}
	for _, a := range script {
		require.NoError(t, g.Apply(a))
	}

	eng := NewEngine()
	res := eng.Search(context.Background(), g, SearchConfig{MaxDepth: 2, DisableBook: true})
	require.True(t, res.HasAction)
	require.Equal(t, 2, res.Depth)

	w := DefaultWeights()
	want := plainNegamax(g, 2, &w)
	require.Equal(t, want, res.Score)
}

func TestSearchHonoursCancelledContext(t *testing.T) {
	g := hive.NewGame("t", hive.ModeAdvanced, testZob)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := NewEngine()
	res := eng.Search(ctx, g, SearchConfig{MaxDepth: 6, DisableBook: true})
	require.False(t, res.HasAction)
}

func TestSearchRespectsTimeLimit(t *testing.T) {
	g := hive.NewGame("t", hive.ModeAdvanced, testZob)
	eng := NewEngine()

	start := time.Now()
	res := eng.Search(context.Background(), g, SearchConfig{
		MaxDepth:    50,
		TimeLimit:   200 * time.Millisecond,
		DisableBook: true,
	})
	elapsed := time.Since(start)

	require.Less(t, elapsed, 5*time.Second)
	require.Less(t, res.Depth, 50)
}

func TestOpeningBook(t *testing.T) {
	g := hive.NewGame("t", hive.ModeAdvanced, testZob)

	white := NewEngine()
	res := white.Search(context.Background(), g, SearchConfig{MaxDepth: 3})
	require.True(t, res.FromBook)
	require.Equal(t, hive.ActionPlace, res.BestAction.Kind)
	require.Equal(t, hive.PieceGrasshopper, res.BestAction.PieceType)
	require.Equal(t, hive.Coord{Q: 0, R: 0}, res.BestAction.To)
	require.NoError(t, g.Apply(res.BestAction))

	black := NewEngine()
	res = black.Search(context.Background(), g, SearchConfig{MaxDepth: 3})
	require.True(t, res.FromBook)
	require.Equal(t, hive.PieceGrasshopper, res.BestAction.PieceType)
	require.NoError(t, g.Apply(res.BestAction))

	// 双方第二手都轮到蜂后
	res = white.Search(context.Background(), g, SearchConfig{MaxDepth: 3})
	require.True(t, res.FromBook)
	require.Equal(t, hive.PieceQueen, res.BestAction.PieceType)
	require.NoError(t, g.Apply(res.BestAction))
}

func TestFingerprintDistinguishesActions(t *testing.T) {
	a := hive.Action{Kind: hive.ActionMove, From: hive.Coord{Q: 1, R: 0}, HasFrom: true, To: hive.Coord{Q: 2, R: 0}}
	b := hive.Action{Kind: hive.ActionMove, From: hive.Coord{Q: 2, R: 0}, HasFrom: true, To: hive.Coord{Q: 1, R: 0}}
	c := hive.Action{Kind: hive.ActionSpecial, From: hive.Coord{Q: 1, R: 0}, HasFrom: true, To: hive.Coord{Q: 2, R: 0}}

	require.NotEqual(t, fingerprint(a), fingerprint(b))
	require.NotEqual(t, fingerprint(a), fingerprint(c))
	require.Equal(t, fingerprint(a), fingerprint(a))
}
