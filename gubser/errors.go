package gubser

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/notargets/gubser/plotting"
)

type ErrorNorm struct {
	Tau      float64
	Points   int // numeric points inside the reference x range
	RMS, Max float64
}

/*
Norms measures numeric (x, y) against the reference curve, linearly interpolated at each numeric
x. Numeric points outside the reference x range are not counted.
*/
func Norms(x, y, refX, refY []float64) (e ErrorNorm, err error) {
	var (
		pl     interp.PiecewiseLinear
		xs, ys = plotting.Monotone(refX, refY)
		diff   []float64
	)
	if len(x) != len(y) {
		err = fmt.Errorf("numeric curve has %d x values and %d y values", len(x), len(y))
		return
	}
	if len(xs) < 2 {
		err = fmt.Errorf("reference curve needs at least two distinct x values, has %d", len(xs))
		return
	}
	if err = pl.Fit(xs, ys); err != nil {
		return
	}
	for i, xv := range x {
		if xv < xs[0] || xv > xs[len(xs)-1] {
			continue
		}
		diff = append(diff, y[i]-pl.Predict(xv))
	}
	if e.Points = len(diff); e.Points == 0 {
		return
	}
	e.RMS = floats.Norm(diff, 2) / math.Sqrt(float64(e.Points))
	e.Max = floats.Norm(diff, math.Inf(1))
	return
}

// WriteErrorsCSV writes one "label,points,tau,rms,max" record per norm, with a header
func WriteErrorsCSV(w io.Writer, label string, E []ErrorNorm) (err error) {
	var (
		cw = csv.NewWriter(w)
		f  = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	)
	if err = cw.Write([]string{"label", "points", "tau", "rms", "max"}); err != nil {
		return
	}
	for _, e := range E {
		if err = cw.Write([]string{label, strconv.Itoa(e.Points), f(e.Tau), f(e.RMS), f(e.Max)}); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
