package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dgconway/hive/internal/hive"
)

var testZob = hive.NewZobrist()

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	g := hive.NewGame("g1", hive.ModeAdvanced, testZob)

	require.NoError(t, store.Create(g))

	got, err := store.Get("g1")
	require.NoError(t, err)
	require.Equal(t, g.Hash(), got.Hash())

	// 读出来的是副本，改了不回写
	require.NoError(t, got.Apply(hive.Action{Kind: hive.ActionPlace, PieceType: hive.PieceQueen, To: hive.Coord{}}))
	again, err := store.Get("g1")
	require.NoError(t, err)
	require.Equal(t, 1, again.TurnNumber)

	require.NoError(t, store.Update(got))
	updated, err := store.Get("g1")
	require.NoError(t, err)
	require.Equal(t, 2, updated.TurnNumber)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get("missing")
	require.ErrorIs(t, err, hive.ErrGameNotFound)
	require.ErrorIs(t, store.Update(hive.NewGame("missing", hive.ModeStandard, testZob)), hive.ErrGameNotFound)
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	store, err := NewBadgerStore(t.TempDir(), testZob)
	require.NoError(t, err)
	defer store.Close()

	g := hive.NewGame("g1", hive.ModeAdvanced, testZob)
	require.NoError(t, g.Apply(hive.Action{Kind: hive.ActionPlace, PieceType: hive.PieceQueen, To: hive.Coord{}}))
	require.NoError(t, store.Create(g))

	got, err := store.Get("g1")
	require.NoError(t, err)
	require.Equal(t, g.Hash(), got.Hash())
	require.Equal(t, g.TurnNumber, got.TurnNumber)
	require.Len(t, got.History, 1)

	_, err = store.Get("missing")
	require.ErrorIs(t, err, hive.ErrGameNotFound)
}

func TestManagerWithGameDiscardsFailedUpdates(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), testZob, zerolog.Nop())

	g, err := mgr.NewGame(hive.ModeStandard)
	require.NoError(t, err)

	// 非法动作：状态不落库
	_, err = mgr.WithGame(g.ID, func(g *hive.Game) error {
		return g.Apply(hive.Action{Kind: hive.ActionPlace, PieceType: hive.PieceAnt, To: hive.Coord{Q: 5, R: 5}})
	})
	require.Error(t, err)
	require.True(t, hive.IsRuleViolation(err))

	fresh, err := mgr.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, 1, fresh.TurnNumber)

	// 合法动作落库
	_, err = mgr.WithGame(g.ID, func(g *hive.Game) error {
		return g.Apply(hive.Action{Kind: hive.ActionPlace, PieceType: hive.PieceQueen, To: hive.Coord{}})
	})
	require.NoError(t, err)

	fresh, err = mgr.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, 2, fresh.TurnNumber)
}

func TestManagerEnginePerPlayer(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), testZob, zerolog.Nop())
	g, err := mgr.NewGame(hive.ModeStandard)
	require.NoError(t, err)

	white := mgr.EngineFor(g.ID, hive.White)
	black := mgr.EngineFor(g.ID, hive.Black)
	require.NotSame(t, white, black)
	require.Same(t, white, mgr.EngineFor(g.ID, hive.White))
}
