package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

/*
Selector is the sparse row selection operator S for a Mask, with S[k, i] = 1 when row i is
the k-th selected row. S * A gathers the selected rows of A for every column at once.
*/
type Selector struct {
	S      *sparse.CSR
	nSel   int
	nTotal int
}

func NewSelector(M Mask) (S Selector) {
	var (
		I = M.Index()
	)
	S = Selector{
		nSel:   len(I),
		nTotal: len(M),
	}
	if S.nSel == 0 || S.nTotal == 0 {
		return
	}
	SpTmp := sparse.NewDOK(S.nSel, S.nTotal)
	for k, i := range I {
		SpTmp.Set(k, i, 1)
	}
	S.S = SpTmp.ToCSR()
	return
}

// Rows returns the selected rows of A restricted to the listed columns (all columns if none given)
func (S Selector) Rows(A Matrix, cols ...int) (R Matrix, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != S.nTotal {
		err = fmt.Errorf("table %q has %d rows, selector expects %d", A.Name(), nr, S.nTotal)
		return
	}
	if len(cols) == 0 {
		cols = NewRange(0, nc-1)
	}
	for _, j := range cols {
		if j < 0 || j > nc-1 {
			err = fmt.Errorf("column %d out of range for table %q with %d columns", j, A.Name(), nc)
			return
		}
	}
	if S.nSel == 0 {
		R = Matrix{M: &mat.Dense{}, name: A.Name()}
		return
	}
	var sub *mat.Dense
	if len(cols) == nc {
		sub = A.M
	} else {
		sub = mat.NewDense(nr, len(cols), nil)
		for jj, j := range cols {
			sub.SetCol(jj, mat.Col(nil, j, A.M))
		}
	}
	R = NewMatrix(S.nSel, len(cols))
	R.M.Mul(S.S, sub)
	R.name = A.Name()
	return
}
