package utils

import (
	"math"
)

// Mask flags the rows of a table that take part in a selection
type Mask []bool

// NewMaskAbsLess marks entries where |col[i]| < tol
func NewMaskAbsLess(col []float64, tol float64) (M Mask) {
	M = make(Mask, len(col))
	for i, val := range col {
		M[i] = math.Abs(val) < tol
	}
	return
}

func (M Mask) Count() (n int) {
	for _, sel := range M {
		if sel {
			n++
		}
	}
	return
}

func (M Mask) Index() (I Index) {
	I = make(Index, 0, M.Count())
	for i, sel := range M {
		if sel {
			I = append(I, i)
		}
	}
	return
}
