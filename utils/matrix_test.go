package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Col
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{2, 5}, M.Col(1))
		assert.Equal(t, 2, M.Rows())
		assert.Panics(t, func() { M.Col(3) })
	}
	// ReadOnly
	{
		M := NewMatrix(1, 2, []float64{1, 2})
		M.SetReadOnly("M")
		assert.Equal(t, "M", M.Name())
		assert.Panics(t, func() { M.Set(0, 0, 3) })
		assert.Equal(t, 1., M.At(0, 0))
		W := NewMatrix(1, 2)
		W.Set(0, 1, 3)
		assert.Equal(t, 3., W.At(0, 1))
	}
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
}

func TestMath(t *testing.T) {
	assert.Equal(t, 8., POW(2, 3))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.InDelta(t, 1024., POW(2, 10), 1.e-12)
	assert.True(t, isNear([]float64{1, 2}, []float64{1.0001, 2}, 0.001))
	assert.False(t, isNear([]float64{1, 2}, []float64{1}, 0.001))
	assert.Equal(t, Index{2, 3, 4}, NewRange(2, 4))
}

func isNear(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, val := range a {
		if math.Abs(b[i]-val) > tol {
			return false
		}
	}
	return true
}
