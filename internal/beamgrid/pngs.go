package beamgrid

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// SaveHeatmapPNG16 writes a 16-bit PNG of a per-cell heatmap, scale pixels per cell.
//
// Values are normalised by the hottest cell, then raised to 1/gamma
// (gamma < 1 brightens faint cells).
func SaveHeatmapPNG16(g *Grid, heat []int, path string, scale int, gamma float64) error {
	if len(heat) != g.width*g.height {
		return fmt.Errorf("heatmap length mismatch: got %d, expected %d", len(heat), g.width*g.height)
	}
	if scale <= 0 {
		scale = DefaultScale
	}

	toU16 := func(v, k float64) uint16 {
		if v <= 0 {
			return 0
		}
		n := v * k
		if n > 1 {
			n = 1
		}
		if gamma != 1 {
			n = math.Pow(n, 1.0/gamma)
		}
		return uint16(math.Round(n * 65535.0))
	}

	hottest := 0
	for _, h := range heat {
		hottest = max(hottest, h)
	}
	if hottest == 0 {
		hottest = 1 // all dark
	}
	k := 1.0 / float64(hottest)

	img := image.NewNRGBA64(image.Rect(0, 0, g.width*scale, g.height*scale))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			v := toU16(float64(heat[r*g.width+c]), k)
			// warm ramp: red leads, green trails, a little blue
			rgb := [3]uint16{v, uint16(uint32(v) * 3 / 5), uint16(uint32(v) / 5)}
			for y := r * scale; y < (r+1)*scale; y++ {
				rowOff := y * img.Stride
				for x := c * scale; x < (c+1)*scale; x++ {
					p := rowOff + x*pxBytes
					// NRGBA64 stores big-endian uint16 per channel.
					img.Pix[p+0] = uint8(rgb[0] >> 8)
					img.Pix[p+1] = uint8(rgb[0])
					img.Pix[p+2] = uint8(rgb[1] >> 8)
					img.Pix[p+3] = uint8(rgb[1])
					img.Pix[p+4] = uint8(rgb[2] >> 8)
					img.Pix[p+5] = uint8(rgb[2])
					img.Pix[p+6] = 0xFF
					img.Pix[p+7] = 0xFF
				}
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	DebugLog("Saved heatmap PNG %s (%dx%d px)", path, g.width*scale, g.height*scale)
	return nil
}
