package beamgrid

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
)

// Frame palette indices.
const (
	palDark uint8 = iota
	palOptic
	palBeam
	palBeamOptic
)

var framePalette = color.Palette{
	color.RGBA{0x10, 0x10, 0x18, 0xFF}, // dark empty cell
	color.RGBA{0x60, 0x60, 0x70, 0xFF}, // dark mirror/splitter
	color.RGBA{0xFF, 0x99, 0x22, 0xFF}, // energized empty cell
	color.RGBA{0xFF, 0xEE, 0xAA, 0xFF}, // energized mirror/splitter
}

// SaveEntriesGIF writes an animated GIF with one frame per boundary entry,
// showing the cells that entry energizes. delay is in 100ths of a second.
func SaveEntriesGIF(ctx context.Context, g *Grid, path string, scale, delay int) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	if delay <= 0 {
		delay = DefaultGIFDelay
	}
	entries := EntryStates(g)
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(entries)),
		Delay:     make([]int, 0, len(entries)),
		LoopCount: 0,
	}
	bounds := image.Rect(0, 0, g.width*scale, g.height*scale)

	step := max(1, len(entries)/100) // ~1% steps
	for n, st := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n%step == 0 {
			DebugLog("[GIF] %.2f%%", float64(n+1)*100/float64(len(entries)))
		}
		tr, err := Trace(g, st)
		if err != nil {
			return fmt.Errorf("gif entry %v: %w", st, err)
		}
		frame := image.NewPaletted(bounds, framePalette)
		lit := tr.Tiles()
		for r := 0; r < g.height; r++ {
			for c := 0; c < g.width; c++ {
				i := r*g.width + c
				idx := palDark
				if g.cells[i] != Empty {
					idx = palOptic
				}
				if lit[i] {
					idx += palBeam
				}
				for y := r * scale; y < (r+1)*scale; y++ {
					off := frame.PixOffset(c*scale, y)
					for x := 0; x < scale; x++ {
						frame.Pix[off+x] = idx
					}
				}
			}
		}
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
