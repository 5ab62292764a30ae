package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders(t *testing.T) {
	cs := NewConvergenceStudy(1.2)
	for _, n := range []int{160, 40, 80} {
		e := 3 * math.Pow(float64(n), -2)
		cs.Add("", n, e, 2*e)
	}
	cs.Sort()
	assert.Equal(t, []int{40, 80, 160}, cs.numPTS)
	rmsOrder, maxOrder := cs.Orders()
	require.Len(t, rmsOrder, 2)
	for i := range rmsOrder {
		assert.InDelta(t, 2., rmsOrder[i], 1.e-12)
		assert.InDelta(t, 2., maxOrder[i], 1.e-12)
	}

	cs = NewConvergenceStudy(1.5)
	cs.Add("a", 40, 0, 0)
	cs.Add("b", 80, 1, 1)
	rmsOrder, _ = cs.Orders()
	assert.True(t, math.IsNaN(rmsOrder[0]))
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	coarse := filepath.Join(dir, "coarse.csv")
	fine := filepath.Join(dir, "fine.csv")
	require.NoError(t, os.WriteFile(coarse, []byte("label,points,tau,rms,max\nN=41,41,1.2,0.01,0.02\nN=41,41,2,0.02,0.04\n"), 0o644))
	require.NoError(t, os.WriteFile(fine, []byte("label,points,tau,rms,max\nN=81,81,1.2,0.0025,0.005\n"), 0o644))

	studies := make(map[float64]*ConvergenceStudy)
	require.NoError(t, readCSV(coarse, studies))
	require.NoError(t, readCSV(fine, studies))
	require.Len(t, studies, 2)
	assert.Equal(t, []int{41, 81}, studies[1.2].numPTS)
	assert.Equal(t, []string{"N=41", "N=81"}, studies[1.2].labels)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("label,points,tau,rms,max\nN=1,x,1,1,1\n"), 0o644))
	assert.Error(t, readCSV(bad, studies))
	assert.Error(t, readCSV(filepath.Join(dir, "missing.csv"), studies))
}
