package utils

import (
	"image/color"
)

type ColorName uint8

const (
	Black ColorName = iota
	Red
	Blue
	Green
	Magenta
	Cyan
	Orange
	White
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case Black:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	case Red:
		c = color.RGBA{R: 228, G: 26, B: 28, A: 255}
	case Blue:
		c = color.RGBA{R: 55, G: 126, B: 184, A: 255}
	case Green:
		c = color.RGBA{R: 77, G: 175, B: 74, A: 255}
	case Magenta:
		c = color.RGBA{R: 152, G: 78, B: 163, A: 255}
	case Cyan:
		c = color.RGBA{R: 0, G: 190, B: 190, A: 255}
	case Orange:
		c = color.RGBA{R: 255, G: 127, B: 0, A: 255}
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return
}

// Shadow returns c blended toward white, used for bands and fill regions
func Shadow(c color.RGBA, frac float64) (s color.RGBA) {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + frac*(255-float64(v)))
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

type LineStyleName uint8

const (
	SolidLine LineStyleName = iota
	DashedLine
	DashDotLine
	DottedLine
)

type MarkerName uint8

const (
	SquareMarker MarkerName = iota
	CircleMarker
	TriangleMarker
	CrossMarker
	PlusMarker
	DiamondMarker
)

var (
	plotColors     = []ColorName{Black, Red, Blue, Green, Magenta, Cyan, Orange}
	plotLineStyles = []LineStyleName{SolidLine, DashedLine, DashDotLine, DottedLine}
	plotMarkers    = []MarkerName{SquareMarker, CircleMarker, TriangleMarker, CrossMarker, PlusMarker, DiamondMarker}
)

/*
GetPlotElements returns the line style, marker, color and shadow color of the i-th curve group
in a comparison figure. Each palette cycles independently.
*/
func GetPlotElements(i int) (ls LineStyleName, mk MarkerName, c, shadow color.RGBA) {
	if i < 0 {
		i = -i
	}
	ls = plotLineStyles[i%len(plotLineStyles)]
	mk = plotMarkers[i%len(plotMarkers)]
	c = GetColor(plotColors[i%len(plotColors)])
	shadow = Shadow(c, 0.6)
	return
}

// WithAlpha returns c with the given opacity in [0,1], as a non-premultiplied color
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	switch {
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
