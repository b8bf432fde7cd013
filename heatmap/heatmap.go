// Package heatmap implements the Heatmap Encoder: a row-major RGBA
// texture colour-mapped from a layer sequence's height deviation from
// nominal. It is the one auxiliary, display-only component in the
// pipeline; nothing downstream consumes its output.
package heatmap

import (
	"image/color"
	"math"

	"github.com/hiddenvs/slicecore/params"
)

// Encode fills buffer, a preallocated row-major RGBA byte grid of rows x
// cols cells (4 bytes each), colour-mapped by layer height across
// layers, the flat [lo0, hi0, lo1, hi1, ...] sequence produced by
// Generate. If lod2 is true, only a half-resolution grid (rows/2 x
// cols/2) is computed and written into the same buffer's leading
// region, mirroring the common preview-LOD pattern for a texture too
// expensive to recompute at full resolution on every edit.
//
// Encode writes at most as many cells as buffer can hold and returns the
// number of cells actually filled; it never panics on a short buffer.
func Encode(p params.SlicingParameters, layers []float64, buffer []byte, rows, cols int, lod2 bool) int {
	if lod2 {
		rows, cols = rows/2, cols/2
	}
	if rows <= 0 || cols <= 0 || len(layers) < 4 {
		return 0
	}

	objectHeight := p.ObjectPrintZHeight()
	nominal := p.LayerHeight
	maxCells := len(buffer) / 4

	var lastRowEnd color.RGBA
	filled := 0
	for r := 0; r < rows && filled < maxCells; r++ {
		for c := 0; c < cols && filled < maxCells; c++ {
			z := 0.0
			if cols > 1 {
				z = float64(c) * objectHeight / float64(cols-1)
			}
			px := cellColor(p, layers, nominal, objectHeight, z)
			if c == 0 && r > 0 {
				px = lastRowEnd
			}
			if c == cols-1 {
				lastRowEnd = px
			}

			idx := filled * 4
			buffer[idx+0] = px.R
			buffer[idx+1] = px.G
			buffer[idx+2] = px.B
			buffer[idx+3] = px.A
			filled++
		}
	}
	return filled
}

// cellColor resolves the covering layer interval at z, shades it by
// height deviation from nominal, and modulates intensity near the
// interval's boundaries with a cos(0.7*pi*(mid-z)/h) falloff.
func cellColor(p params.SlicingParameters, layers []float64, nominal, objectHeight, z float64) color.RGBA {
	lo, hi := coveringLayer(layers, z)
	h := hi - lo
	if h <= 0 {
		return color.RGBA{A: 255}
	}
	mid := (lo + hi) / 2
	intensity := math.Cos(0.7 * math.Pi * (mid - z) / h)
	dev := normalizedDeviation(h, nominal, p.MinLayerHeight, p.MaxLayerHeight)
	return modulate(paletteAt(dev), intensity)
}

// coveringLayer returns the [lo, hi] bounds of the layer interval
// containing z, clamping to the last interval past the sequence's end.
func coveringLayer(layers []float64, z float64) (lo, hi float64) {
	n := len(layers) / 2
	for i := 0; i < n; i++ {
		lo, hi = layers[2*i], layers[2*i+1]
		if z <= hi || i == n-1 {
			return lo, hi
		}
	}
	return 0, 0
}

// normalizedDeviation maps h into [-1, 1] around nominal, scaled
// independently by the distance to maxH above and to minH below, so an
// equal visual step corresponds to an equal fraction of headroom on
// either side.
func normalizedDeviation(h, nominal, minH, maxH float64) float64 {
	switch {
	case h >= nominal:
		if maxH <= nominal {
			return 0
		}
		return clampUnit((h - nominal) / (maxH - nominal))
	default:
		if nominal <= minH {
			return 0
		}
		return clampUnit((h - nominal) / (nominal - minH))
	}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// modulate scales a colour's channels by a brightness derived from
// intensity in [-1, 1]: intensity 1 (layer midpoint) renders at full
// brightness; at a layer boundary intensity is cos(0.35*pi), about 0.45,
// which renders at about 73% brightness. Lower values only occur for z
// past the top of the last layer.
func modulate(c color.RGBA, intensity float64) color.RGBA {
	scale := 0.5 + 0.5*intensity
	return color.RGBA{R: scaleByte(c.R, scale), G: scaleByte(c.G, scale), B: scaleByte(c.B, scale), A: 255}
}

func scaleByte(v byte, scale float64) byte {
	f := float64(v) * scale
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	default:
		return byte(f)
	}
}
