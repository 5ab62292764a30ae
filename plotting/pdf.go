package plotting

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Ticks returns n evenly spaced ticks spanning [min, max], both ends included
func Ticks(min, max float64, n int) (ticks []plot.Tick) {
	var (
		values = floats.Span(make([]float64, n), min, max)
	)
	ticks = make([]plot.Tick, n)
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 4, 64)}
	}
	return
}

// NewPlot lays out the series on one set of axes, in order, later series drawn on top
func NewPlot(fig Figure, series []Series) (p *plot.Plot, err error) {
	p = plot.New()
	if fig.Latex {
		hdlr := text.Latex{Fonts: font.DefaultCache}
		p.Title.TextStyle.Handler = hdlr
		p.X.Label.TextStyle.Handler = hdlr
		p.Y.Label.TextStyle.Handler = hdlr
		p.X.Tick.Label.Handler = hdlr
		p.Y.Tick.Label.Handler = hdlr
		p.Legend.TextStyle.Handler = hdlr
	}
	for _, s := range series {
		if s.Len() == 0 {
			continue
		}
		if len(s.X) != len(s.Y) {
			err = fmt.Errorf("series %q has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
			return
		}
		xys := make(plotter.XYs, s.Len())
		for i := range xys {
			xys[i].X, xys[i].Y = s.X[i], s.Y[i]
		}
		var l *plotter.Line
		if l, err = plotter.NewLine(xys); err != nil {
			err = fmt.Errorf("series %q: %w", s.Name, err)
			return
		}
		l.LineStyle.Color = s.RenderColor()
		l.LineStyle.Width = vg.Points(s.Width)
		if s.Dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(3 * s.Width), vg.Points(1.5 * s.Width)}
		}
		p.Add(l)
		if len(s.Label) != 0 {
			p.Legend.Add(s.Label, l)
		}
	}
	// Fixed limits go on after the data, which would otherwise widen them
	p.X.Min, p.X.Max = fig.XMin, fig.XMax
	p.Y.Min, p.Y.Max = fig.YMin, fig.YMax
	p.X.Tick.Marker = plot.ConstantTicks(Ticks(fig.XMin, fig.XMax, fig.NumTicks))
	p.Y.Tick.Marker = plot.ConstantTicks(Ticks(fig.YMin, fig.YMax, fig.NumTicks))
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	fs := vg.Points(fig.FontSize)
	p.X.Label.TextStyle.Font.Size = fs
	p.Y.Label.TextStyle.Font.Size = fs
	p.X.Tick.Label.Font.Size = fs
	p.Y.Tick.Label.Font.Size = fs
	p.Legend.TextStyle.Font.Size = vg.Points(fig.LegendFontSize)
	p.Legend.Top, p.Legend.Left = true, true
	p.Legend.XOffs, p.Legend.YOffs = vg.Points(10), -vg.Points(10)
	return
}

// Render draws the series and writes the figure as a PDF, replacing any existing file
func Render(fig Figure, series []Series, filename string) (err error) {
	var (
		p    *plot.Plot
		wt   io.WriterTo
		file *os.File
	)
	if p, err = NewPlot(fig, series); err != nil {
		return
	}
	wt, err = p.WriterTo(vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch, "pdf")
	if err != nil {
		return fmt.Errorf("unable to render %s: %w", filename, err)
	}
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create %s: %w", filename, err)
	}
	if _, err = wt.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("unable to write %s: %w", filename, err)
	}
	return file.Close()
}
