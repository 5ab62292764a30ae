package plotting

import (
	"fmt"
	"math"
	"sort"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

/*
ASCII draws the series as a terminal graph. Each series is resampled onto width points spanning
the figure's x limits, points outside a series' own x range are left blank.
*/
func ASCII(fig Figure, series []Series, width, height int, caption string) (graph string, err error) {
	var (
		grid []float64
		data [][]float64
	)
	if width < 2 || height < 1 {
		err = fmt.Errorf("terminal graph needs width >= 2 and height >= 1, have %d x %d", width, height)
		return
	}
	grid = floats.Span(make([]float64, width), fig.XMin, fig.XMax)
	for _, s := range series {
		var (
			xs, ys []float64
			pl     interp.PiecewiseLinear
		)
		if xs, ys = Monotone(s.X, s.Y); len(xs) < 2 {
			continue
		}
		if err = pl.Fit(xs, ys); err != nil {
			err = fmt.Errorf("series %q: %w", s.Name, err)
			return
		}
		row := make([]float64, width)
		for i, x := range grid {
			if x < xs[0] || x > xs[len(xs)-1] {
				row[i] = math.NaN()
				continue
			}
			row[i] = math.Min(fig.YMax, math.Max(fig.YMin, pl.Predict(x)))
		}
		data = append(data, row)
	}
	if len(data) == 0 {
		err = fmt.Errorf("no series with at least two distinct x values to draw")
		return
	}
	graph = asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.LowerBound(fig.YMin),
		asciigraph.UpperBound(fig.YMax),
		asciigraph.Caption(caption),
	)
	return
}

// Monotone returns the points sorted by x with repeated x values dropped, keeping the first in input order
func Monotone(x, y []float64) (xs, ys []float64) {
	var (
		n    = min(len(x), len(y))
		inds = make([]int, n)
	)
	for i := range inds {
		inds[i] = i
	}
	sort.SliceStable(inds, func(a, b int) bool { return x[inds[a]] < x[inds[b]] })
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	for k, i := range inds {
		if k > 0 && x[i] == x[inds[k-1]] {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return
}
