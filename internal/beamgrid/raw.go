package beamgrid

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawHeatmap dumps a heatmap as little-endian int32: height, width, then
// height*width counts in row-major order.
func SaveRawHeatmap(g *Grid, heat []int, path string) error {
	if len(heat) != g.width*g.height {
		return fmt.Errorf("heatmap length mismatch: got %d, expected %d", len(heat), g.width*g.height)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, [2]int32{int32(g.height), int32(g.width)}); err != nil {
		f.Close()
		return err
	}
	body := make([]int32, len(heat))
	for i, h := range heat {
		body[i] = int32(h)
	}
	if err := binary.Write(w, binary.LittleEndian, body); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
