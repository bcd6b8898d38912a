package hive

import "testing"

func TestLadybugClimbsTwoThenDrops(t *testing.T) {
	g := buildGame(t, White, []stone{
		{Coord{0, 0}, PieceLadybug, White},
		{Coord{1, 0}, PieceAnt, Black},
		{Coord{2, 0}, PieceAnt, Black},
		{Coord{1, -1}, PieceQueen, White},
	})

	dests := DestinationsFor(g, Coord{0, 0}, White)
	// 爬 (1,0) 再爬 (2,0)，落到 (3,0)
	if !dests.Has(Coord{3, 0}) {
		t.Fatalf("ladybug should reach (3,0), got %v", dests)
	}
	if dests.Has(Coord{0, 0}) {
		t.Fatalf("ladybug cannot return to origin")
	}
	for c := range dests {
		if g.StackHeight(c) > 0 {
			t.Fatalf("ladybug destination %v is occupied", c)
		}
		occupied := g.Occupied()
		occupied.Remove(Coord{0, 0})
		if !hasContact(c, occupied) {
			t.Fatalf("ladybug destination %v has no hive contact", c)
		}
	}
	// 两步爬行够不到的远格
	if dests.Has(Coord{5, 0}) {
		t.Fatalf("ladybug cannot reach (5,0)")
	}
}

func TestMosquitoNextToOnlyMosquitoCannotMove(t *testing.T) {
	g := buildGame(t, White, []stone{
		{Coord{0, 0}, PieceMosquito, White},
		{Coord{1, 0}, PieceMosquito, Black},
		{Coord{2, 0}, PieceQueen, White},
	})

	if dests := DestinationsFor(g, Coord{0, 0}, White); len(dests) != 0 {
		t.Fatalf("mosquito touching only a mosquito should be stuck, got %v", dests)
	}
}

func TestMosquitoInheritsGrasshopperJump(t *testing.T) {
	g := buildGame(t, White, []stone{
		{Coord{0, 0}, PieceMosquito, White},
		{Coord{1, 0}, PieceGrasshopper, Black},
		{Coord{2, 0}, PieceQueen, White},
	})

	dests := DestinationsFor(g, Coord{0, 0}, White)
	if !sameCoords(dests, []Coord{{3, 0}}) {
		t.Fatalf("mosquito should jump like a grasshopper to (3,0), got %v", dests)
	}
}

func TestMosquitoOnStackMovesLikeBeetle(t *testing.T) {
	g := buildGame(t, White, []stone{
		{Coord{0, 0}, PieceAnt, Black},
		{Coord{0, 0}, PieceMosquito, White}, // 骑在黑蚂蚁上
		{Coord{1, 0}, PieceQueen, White},
	})

	dests := DestinationsFor(g, Coord{0, 0}, White)
	for _, n := range Neighbors(Coord{0, 0}) {
		if !dests.Has(n) {
			t.Fatalf("stacked mosquito should move like a beetle, missing %v (got %v)", n, dests)
		}
	}
}

func TestPillbugThrow(t *testing.T) {
	g := buildGame(t, White, []stone{
		{Coord{0, 0}, PiecePillbug, White},
		{Coord{1, 0}, PieceAnt, Black},
		{Coord{-1, 0}, PieceQueen, White},
		{Coord{-1, 1}, PieceQueen, Black},
	})

	throws := ThrowsFor(g, Coord{0, 0}, White)
	found := false
	for _, th := range throws {
		if th.From == (Coord{1, 0}) && th.To == (Coord{0, 1}) {
			found = true
		}
		if g.StackHeight(th.To) > 0 {
			t.Fatalf("throw destination %v is occupied", th.To)
		}
	}
	if !found {
		t.Fatalf("expected throw (1,0)->(0,1), got %v", throws)
	}

	mustApply(t, g, Action{Kind: ActionSpecial, From: Coord{1, 0}, HasFrom: true, To: Coord{0, 1}})

	if g.StackHeight(Coord{1, 0}) != 0 || g.StackHeight(Coord{0, 1}) != 1 {
		t.Fatalf("throw did not relocate the ant")
	}
	if g.Frozen == nil || *g.Frozen != (Coord{0, 1}) {
		t.Fatalf("thrown piece should be marked frozen")
	}

	// 黑方回合：被投掷的蚂蚁冻结中不能动
	wantRuleError(t, g, Action{Kind: ActionMove, From: Coord{0, 1}, HasFrom: true, To: Coord{1, 1}})
	if dests := DestinationsFor(g, Coord{0, 1}, Black); len(dests) != 0 {
		t.Fatalf("frozen piece should have no destinations, got %v", dests)
	}
}

func TestPillbugCannotThrowLastMovedPiece(t *testing.T) {
	g := buildGame(t, White, []stone{
		{Coord{0, 0}, PiecePillbug, White},
		{Coord{1, 0}, PieceAnt, Black},
		{Coord{-1, 0}, PieceQueen, White},
		{Coord{-1, 1}, PieceQueen, Black},
	})
	last := Coord{1, 0}
	g.LastMoved = &last

	for _, th := range ThrowsFor(g, Coord{0, 0}, White) {
		if th.From == last {
			t.Fatalf("pillbug must not throw the piece the opponent just moved")
		}
	}
	wantRuleError(t, g, Action{Kind: ActionSpecial, From: last, HasFrom: true, To: Coord{0, 1}})
}

func TestPillbugCannotThrowStackedPiece(t *testing.T) {
	g := buildGame(t, White, []stone{
		{Coord{0, 0}, PiecePillbug, White},
		{Coord{1, 0}, PieceAnt, Black},
		{Coord{1, 0}, PieceBeetle, Black}, // 叠高的堆不能投
		{Coord{-1, 0}, PieceQueen, White},
		{Coord{2, 0}, PieceQueen, Black},
	})

	for _, th := range ThrowsFor(g, Coord{0, 0}, White) {
		if th.From == (Coord{1, 0}) {
			t.Fatalf("pillbug must not throw from a stack of height 2")
		}
	}
}

func TestStandardModeExcludesAdvancedPieces(t *testing.T) {
	g := NewGame("t", ModeStandard, testZob)
	hand := g.Hands[White]
	for _, pt := range []PieceType{PieceLadybug, PieceMosquito, PiecePillbug} {
		if hand[pt] != 0 {
			t.Fatalf("standard mode hand should not contain %v", pt)
		}
	}
	wantRuleError(t, g, Action{Kind: ActionPlace, PieceType: PiecePillbug, To: Coord{0, 0}})
}
