package render

import (
	"image/color"
	"math"
)

// viridis 色带的五个取样点
var viridisStops = [...]color.NRGBA{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 59, G: 82, B: 139, A: 255},
	{R: 33, G: 145, B: 140, A: 255},
	{R: 94, G: 201, B: 98, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}

// viridis maps t in [0, 1] to a color, values outside are clamped.
func viridis(t float64) color.NRGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(viridisStops)-1)
	k := int(pos)
	if k >= len(viridisStops)-1 {
		return viridisStops[len(viridisStops)-1]
	}
	f := pos - float64(k)
	a, b := viridisStops[k], viridisStops[k+1]
	return color.NRGBA{
		R: lerp(a.R, b.R, f),
		G: lerp(a.G, b.G, f),
		B: lerp(a.B, b.B, f),
		A: 255,
	}
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
