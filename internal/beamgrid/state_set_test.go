package beamgrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStateSet(t *testing.T) {
	g, err := ParseGrid("...\n...")
	if err != nil {
		t.Fatal(err)
	}
	s := NewStateSet(g)
	a := State{Position{1, 2}, Left}
	b := State{Position{0, 1}, Down}
	if !s.Add(a) || !s.Add(b) {
		t.Fatal("first insert must report new")
	}
	if s.Add(a) {
		t.Fatal("second insert must report existing")
	}
	if s.Len() != 2 || !s.Has(a) || s.Has(State{Position{1, 2}, Right}) {
		t.Fatalf("unexpected membership, len=%d", s.Len())
	}
	if diff := cmp.Diff([]State{b, a}, s.States()); diff != "" {
		t.Fatalf("States() mismatch (-want +got):\n%s", diff)
	}
	s.Add(State{Position{1, 2}, Up})
	cells, n := s.Positions()
	if n != 2 || !cells[1] || !cells[5] {
		t.Fatalf("Positions() = %v, %d", cells, n)
	}
}
