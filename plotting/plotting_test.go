package plotting

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gubser/InputParameters"
	"github.com/notargets/gubser/utils"
)

func testSeries() []Series {
	var (
		x  = []float64{-5, -2.5, 0, 2.5, 5}
		y1 = []float64{-0.5, -0.9, 0, 0.9, 0.5}
		y2 = []float64{-0.45, -0.85, 0, 0.85, 0.45}
	)
	_, _, c, _ := utils.GetPlotElements(1)
	return []Series{
		{Name: "analytic", Label: "τ = 1.2 fm", X: x, Y: y1, Color: c, Alpha: 0.2, Width: 2},
		{Name: "numeric", X: x, Y: y2, Color: c, Width: 2, Dashed: true},
		{Name: "empty", Color: c, Width: 2},
	}
}

func TestTicks(t *testing.T) {
	ticks := Ticks(-5, 5, 5)
	require.Len(t, ticks, 5)
	var values, labels = make([]float64, 5), make([]string, 5)
	for i, tk := range ticks {
		values[i], labels[i] = tk.Value, tk.Label
	}
	assert.Equal(t, []float64{-5, -2.5, 0, 2.5, 5}, values)
	assert.Equal(t, []string{"-5", "-2.5", "0", "2.5", "5"}, labels)
}

func TestNewPlot(t *testing.T) {
	fig := NewFigure(InputParameters.NewGubserUx())
	p, err := NewPlot(fig, testSeries())
	require.NoError(t, err)
	assert.Equal(t, -5., p.X.Min)
	assert.Equal(t, 5., p.X.Max)
	assert.Equal(t, -2., p.Y.Min)
	assert.Equal(t, 2., p.Y.Max)
	assert.Equal(t, "x (fm)", p.X.Label.Text)
	assert.True(t, p.Legend.Top && p.Legend.Left)

	bad := []Series{{Name: "ragged", X: []float64{1, 2}, Y: []float64{1}}}
	_, err = NewPlot(fig, bad)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	var (
		fig      = NewFigure(InputParameters.NewGubserUx())
		filename = filepath.Join(t.TempDir(), "ux.pdf")
	)
	// An existing file is replaced
	require.NoError(t, os.WriteFile(filename, []byte("stale"), 0o644))
	require.NoError(t, Render(fig, testSeries(), filename))
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Greater(t, len(data), 100)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))

	err = Render(fig, testSeries(), filepath.Join(t.TempDir(), "missing", "ux.pdf"))
	assert.Error(t, err)
}

func TestSeriesColor(t *testing.T) {
	s := testSeries()
	_, _, _, a := s[0].RenderColor().RGBA()
	assert.Less(t, a, uint32(0xffff))
	_, _, _, a = s[1].RenderColor().RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestMonotone(t *testing.T) {
	xs, ys := Monotone([]float64{2, 0, 1, 1, -1}, []float64{20, 0, 10, 11, -10})
	assert.Equal(t, []float64{-1, 0, 1, 2}, xs)
	assert.Equal(t, -10., ys[0])
	assert.Equal(t, 20., ys[3])
	assert.Equal(t, 10., ys[2])

	// Ties keep input order regardless of where they sit
	xs, ys = Monotone([]float64{3, 3, 3, 1, 3}, []float64{30, 31, 32, 10, 33})
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{10, 30}, ys)
}

func TestChartVertices(t *testing.T) {
	xy := InterleaveXY([]float64{-1, 0, 1}, []float64{0.5, 0, -0.5})
	assert.Equal(t, []float32{-1, 0.5, 0, 0, 1, -0.5}, xy)
	// Mismatched lengths are truncated to the shorter column
	assert.Len(t, InterleaveXY([]float64{1, 2, 3}, []float64{1}), 2)

	lines := CrossHairs([]float32{1, 2}, 0.5)
	assert.Equal(t, []float32{
		0.5, 2, 1.5, 2, // horizontal
		1, 1.5, 1, 2.5, // vertical
	}, lines)
	assert.Len(t, CrossHairs(xy, 0.1), 3*8)
	assert.Empty(t, CrossHairs(nil, 0.1))
}

func TestASCII(t *testing.T) {
	fig := NewFigure(InputParameters.NewGubserUx())
	graph, err := ASCII(fig, testSeries(), 60, 10, "u^x")
	require.NoError(t, err)
	assert.Contains(t, graph, "u^x")
	assert.Greater(t, len(strings.Split(graph, "\n")), 10)

	_, err = ASCII(fig, testSeries(), 1, 10, "")
	assert.Error(t, err)
	_, err = ASCII(fig, []Series{{Name: "point", X: []float64{0}, Y: []float64{math.Pi}}}, 60, 10, "")
	assert.Error(t, err)
}
