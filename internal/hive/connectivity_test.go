package hive

import "testing"

func TestIsConnected(t *testing.T) {
	set := func(coords ...Coord) CoordSet {
		s := make(CoordSet)
		for _, c := range coords {
			s.Add(c)
		}
		return s
	}

	if !IsConnected(set()) {
		t.Fatalf("empty set should be connected")
	}
	if !IsConnected(set(Coord{0, 0})) {
		t.Fatalf("single hex should be connected")
	}
	if !IsConnected(set(Coord{0, 0}, Coord{1, 0}, Coord{2, 0})) {
		t.Fatalf("straight line should be connected")
	}
	if IsConnected(set(Coord{0, 0}, Coord{2, 0})) {
		t.Fatalf("hexes at distance 2 should not be connected")
	}
	if IsConnected(set(Coord{0, 0}, Coord{1, 0}, Coord{3, 0}, Coord{4, 0})) {
		t.Fatalf("two separate clusters should not be connected")
	}
}
