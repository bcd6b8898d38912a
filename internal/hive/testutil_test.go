package hive

import "testing"

var testZob = NewZobrist()

type stone struct {
	c     Coord
	pt    PieceType
	color Color
}

// buildGame 直接摆盘构造局面。同一格多个 stone 按出现顺序从底到顶。
// 手牌按摆盘内容从满配里扣掉，TurnNumber 给大值避开第 4 手蜂后强制。
func buildGame(t *testing.T, turn Color, stones []stone) *Game {
	t.Helper()
	g := NewGame("test", ModeAdvanced, testZob)
	g.CurrentTurn = turn
	g.TurnNumber = 20

	for _, s := range stones {
		g.Board[s.c] = append(g.Board[s.c], Piece{Type: s.pt, Color: s.color, ID: s.c.String()})
		hand := g.Hands[s.color]
		if hand[s.pt] > 0 {
			hand[s.pt]--
		}
	}
	g.RecomputeHash(testZob)
	return g
}

func mustApply(t *testing.T, g *Game, act Action) {
	t.Helper()
	if err := g.Apply(act); err != nil {
		t.Fatalf("apply %+v failed: %v", act, err)
	}
}

func mustPlace(t *testing.T, g *Game, pt PieceType, q, r int) {
	t.Helper()
	mustApply(t, g, Action{Kind: ActionPlace, PieceType: pt, To: Coord{Q: q, R: r}})
}

func wantRuleError(t *testing.T, g *Game, act Action) {
	t.Helper()
	err := g.Apply(act)
	if err == nil {
		t.Fatalf("apply %+v: expected rule error, got nil", act)
	}
	if !IsRuleViolation(err) {
		t.Fatalf("apply %+v: expected rule error, got %v", act, err)
	}
}

func sameCoords(got CoordSet, want []Coord) bool {
	if len(got) != len(want) {
		return false
	}
	for _, c := range want {
		if !got.Has(c) {
			return false
		}
	}
	return true
}
