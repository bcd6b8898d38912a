package hive

import (
	"math/rand"
	"testing"
)

func TestHashInitializedOnNewGame(t *testing.T) {
	g := NewGame("t", ModeAdvanced, testZob)
	if g.Hash() != testZob.HashGame(g) {
		t.Fatalf("initial hash mismatch: got=%d want=%d", g.Hash(), testZob.HashGame(g))
	}
}

func TestHashChangesOnAction(t *testing.T) {
	g := NewGame("t", ModeStandard, testZob)
	before := g.Hash()
	mustPlace(t, g, PieceQueen, 0, 0)
	if g.Hash() == before {
		t.Fatalf("hash unchanged after placement")
	}
}

func TestApplyHashIncrementalMatchesFullRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGame("t", ModeAdvanced, testZob)

	for ply := 0; ply < 60 && g.Status == StatusInProgress; ply++ {
		actions := LegalActions(g)
		if len(actions) == 0 {
			break
		}
		act := actions[rng.Intn(len(actions))]
		if err := g.Apply(act); err != nil {
			t.Fatalf("apply failed at ply %d: %v (action %+v)", ply, err, act)
		}
		got := g.Hash()
		want := testZob.HashGame(g)
		if got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d action=%+v", ply, got, want, act)
		}
	}
}

func TestStackOrderAffectsHash(t *testing.T) {
	a := buildGame(t, White, []stone{
		{Coord{0, 0}, PieceQueen, Black},
		{Coord{0, 0}, PieceBeetle, White},
		{Coord{1, 0}, PieceQueen, White},
	})
	b := buildGame(t, White, []stone{
		{Coord{0, 0}, PieceBeetle, White},
		{Coord{0, 0}, PieceQueen, Black},
		{Coord{1, 0}, PieceQueen, White},
	})
	if a.Hash() == b.Hash() {
		t.Fatalf("different stack orders should hash differently")
	}
}

func TestOutOfRangeCoordsStillHash(t *testing.T) {
	far := Coord{Q: 50, R: -45} // 预生成范围之外
	k1 := testZob.PieceKey(far, PieceAnt, White, 0)
	k2 := testZob.PieceKey(far, PieceAnt, White, 0)
	if k1 == 0 || k1 != k2 {
		t.Fatalf("out-of-range key must be deterministic and nonzero, got %d / %d", k1, k2)
	}
	if k1 == testZob.PieceKey(far, PieceAnt, Black, 0) {
		t.Fatalf("color must affect out-of-range key")
	}
}
