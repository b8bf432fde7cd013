package heatmap

import "image/color"

// stops is the 8-stop green-yellow-red diverging palette.
var stops = [8]color.RGBA{
	hexRGBA(0x1A9850),
	hexRGBA(0x66BD63),
	hexRGBA(0xA6D96A),
	hexRGBA(0xD9F1EB),
	hexRGBA(0xFEE6EB),
	hexRGBA(0xFDAE61),
	hexRGBA(0xF46D43),
	hexRGBA(0xD73027),
}

func hexRGBA(v uint32) color.RGBA {
	return color.RGBA{
		R: byte(v >> 16),
		G: byte(v >> 8),
		B: byte(v),
		A: 255,
	}
}

// paletteAt linearly interpolates the diverging palette at t, where t=-1
// is the coolest stop (under-nominal) and t=1 is the hottest stop
// (over-nominal).
func paletteAt(t float64) color.RGBA {
	u := (t + 1) / 2
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}
	pos := u * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return lerpRGBA(stops[i], stops[i+1], pos-float64(i))
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y byte) byte {
		return byte(float64(x) + t*(float64(y)-float64(x)))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
