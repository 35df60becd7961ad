package beamgrid

import (
	"math/rand"
	"os"
	"testing"
)

func loadExample(t testing.TB) *Grid {
	t.Helper()
	g, err := LoadGrid("testdata/example.txt")
	if err != nil {
		t.Fatalf("load example: %v", err)
	}
	return g
}

// loadPuzzle loads the full-size puzzle input, skipping the test when it is not checked in.
func loadPuzzle(t testing.TB) *Grid {
	t.Helper()
	const path = "testdata/input.txt"
	if _, err := os.Stat(path); err != nil {
		t.Skipf("%s not present", path)
	}
	g, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("load puzzle: %v", err)
	}
	return g
}

// randomGrid builds a grid where each cell is empty with probability ~1/2
// and otherwise one of the four optical tiles.
func randomGrid(rng *rand.Rand, h, w int) *Grid {
	syms := []byte{'|', '-', '/', '\\'}
	rows := make([]string, h)
	for r := range rows {
		b := make([]byte, w)
		for c := range b {
			if rng.Intn(2) == 0 {
				b[c] = '.'
			} else {
				b[c] = syms[rng.Intn(len(syms))]
			}
		}
		rows[r] = string(b)
	}
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}
