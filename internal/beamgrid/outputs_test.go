package beamgrid

import (
	"bufio"
	"context"
	"encoding/binary"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func exampleHeat(t *testing.T) (*Grid, []int) {
	t.Helper()
	g := loadExample(t)
	heat, err := Heatmap(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	return g, heat
}

func TestSaveHeatmapPNG16(t *testing.T) {
	g, heat := exampleHeat(t)
	path := filepath.Join(t.TempDir(), "png", "heat.png")
	if err := SaveHeatmapPNG16(g, heat, path, 3, 0.8); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Fatalf("unexpected size %v", b)
	}
	if err := SaveHeatmapPNG16(g, heat[1:], path, 3, 1); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestSaveEntriesGIF(t *testing.T) {
	g := loadExample(t)
	path := filepath.Join(t.TempDir(), "gif", "entries.gif")
	if err := SaveEntriesGIF(context.Background(), g, path, 2, 5); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != len(EntryStates(g)) {
		t.Fatalf("frames = %d, want %d", len(anim.Image), len(EntryStates(g)))
	}
}

func TestSaveRawHeatmap(t *testing.T) {
	g, heat := exampleHeat(t)
	path := filepath.Join(t.TempDir(), "raw", "heat.bin")
	if err := SaveRawHeatmap(g, heat, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r := bufio.NewReader(f)
	var dims [2]int32
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		t.Fatal(err)
	}
	if dims[0] != 10 || dims[1] != 10 {
		t.Fatalf("header = %v", dims)
	}
	body := make([]int32, 100)
	if err := binary.Read(r, binary.LittleEndian, body); err != nil {
		t.Fatal(err)
	}
	for i := range body {
		if int(body[i]) != heat[i] {
			t.Fatalf("cell %d: got %d want %d", i, body[i], heat[i])
		}
	}
}

func TestOutputsFailOnUnwritablePath(t *testing.T) {
	g, heat := exampleHeat(t)
	// a regular file where a parent directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(blocker, "out")
	if err := SaveHeatmapPNG16(g, heat, path, 1, 1); err == nil {
		t.Fatal("png: expected error")
	}
	if err := SaveEntriesGIF(context.Background(), g, path, 1, 1); err == nil {
		t.Fatal("gif: expected error")
	}
	if err := SaveRawHeatmap(g, heat, path); err == nil {
		t.Fatal("raw: expected error")
	}
}
