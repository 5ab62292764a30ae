package gubser

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gubser/utils"
)

// Column layout of generated reference tables, matching the simulation check files
const (
	ColX = iota
	ColY
	ColEd
	ColUx
	ColUy
	NumCols
)

/*
Flow is the ideal conformal Gubser flow, a boost invariant solution with transverse expansion.
Q is the inverse transverse size in 1/fm and Eps0 scales the energy density, which at the
center and tau = 1 is (2q/(1+q^2))^(8/3) * Eps0, so Eps0 only for q = 1.
*/
type Flow struct {
	Q, Eps0 float64
}

func NewFlow(q float64) Flow {
	return Flow{Q: q, Eps0: 1}
}

// Kappa is the transverse flow rapidity at proper time tau and transverse radius r
func (f Flow) Kappa(tau, r float64) float64 {
	var (
		q2 = f.Q * f.Q
	)
	return math.Atanh(2 * q2 * tau * r / (1 + q2*tau*tau + q2*r*r))
}

func (f Flow) Velocity(tau, x, y float64) (ut, ux, uy float64) {
	var (
		r = math.Hypot(x, y)
		k = f.Kappa(tau, r)
	)
	ut = math.Cosh(k)
	if r == 0 {
		return
	}
	ur := math.Sinh(k)
	ux, uy = ur*x/r, ur*y/r
	return
}

func (f Flow) EnergyDensity(tau, x, y float64) float64 {
	var (
		q2    = f.Q * f.Q
		r2    = x*x + y*y
		tau2  = tau * tau
		denom = 1 + 2*q2*(tau2+r2) + utils.POW(f.Q, 4)*utils.POW(tau2-r2, 2)
	)
	return f.Eps0 * math.Pow(2*f.Q, 8./3.) / (math.Pow(tau, 4./3.) * math.Pow(denom, 4./3.))
}

// Profile tabulates the solution along y = 0 at n evenly spaced points in [xmin, xmax]
func (f Flow) Profile(tau, xmin, xmax float64, n int) (T utils.Matrix) {
	var (
		X = floats.Span(make([]float64, n), xmin, xmax)
	)
	T = utils.NewMatrix(n, NumCols)
	for i, x := range X {
		_, ux, uy := f.Velocity(tau, x, 0)
		T.Set(i, ColX, x)
		T.Set(i, ColY, 0)
		T.Set(i, ColEd, f.EnergyDensity(tau, x, 0))
		T.Set(i, ColUx, ux)
		T.Set(i, ColUy, uy)
	}
	return
}
