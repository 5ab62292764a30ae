package plotting

import (
	"image/color"

	"github.com/notargets/gubser/InputParameters"
	"github.com/notargets/gubser/utils"
)

// Series is one line of a comparison figure
type Series struct {
	Name   string // Identifies the series in reports
	Label  string // Legend entry, empty for none
	X, Y   []float64
	Color  color.RGBA
	Alpha  float64 // 0 means opaque
	Width  float64 // points
	Dashed bool
}

func (s Series) Len() int { return len(s.X) }

// RenderColor is the series color with its opacity applied
func (s Series) RenderColor() color.Color {
	if s.Alpha == 0 {
		return s.Color
	}
	return utils.WithAlpha(s.Color, s.Alpha)
}

// Figure holds the fixed axes and text styling of a figure
type Figure struct {
	XMin, XMax, YMin, YMax   float64
	NumTicks                 int
	XLabel, YLabel           string
	FontSize, LegendFontSize float64
	Width, Height            float64 // inches
	Latex                    bool
}

func NewFigure(ip *InputParameters.PlotParameters) Figure {
	return Figure{
		XMin:           ip.XLimits[0],
		XMax:           ip.XLimits[1],
		YMin:           ip.YLimits[0],
		YMax:           ip.YLimits[1],
		NumTicks:       ip.NumTicks,
		XLabel:         ip.XLabel,
		YLabel:         ip.YLabel,
		FontSize:       ip.FontSize,
		LegendFontSize: ip.LegendFontSize,
		Width:          ip.Width,
		Height:         ip.Height,
		Latex:          ip.Latex,
	}
}
