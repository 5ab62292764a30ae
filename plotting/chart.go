package plotting

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

// LineChart is an interactive OpenGL window showing the comparison series
type LineChart struct {
	Chart *chart2d.Chart2D
	fig   Figure
}

// NewLineChart opens the window, the avs screen runs its own event loop
func NewLineChart(width, height int, fig Figure) (lc *LineChart) {
	lc = &LineChart{
		Chart: chart2d.NewChart2D(float32(fig.XMin), float32(fig.XMax), float32(fig.YMin), float32(fig.YMax),
			width, height, utils2.WHITE, utils2.BLACK),
		fig: fig,
	}
	return
}

// Plot adds every series, reference curves as polylines and numeric curves as cross hairs at each point
func (lc *LineChart) Plot(graphDelay time.Duration, series ...Series) {
	size := 0.005 * float32(lc.fig.XMax-lc.fig.XMin)
	for _, s := range series {
		if s.Len() == 0 {
			continue
		}
		xy := InterleaveXY(s.X, s.Y)
		if s.Dashed {
			lc.Chart.AddLine(CrossHairs(xy, size), s.Color)
		} else {
			lc.Chart.AddLine(xy, s.Color, utils2.POLYLINE)
		}
	}
	time.Sleep(graphDelay)
}

// InterleaveXY packs x and y into the float32 x0, y0, x1, y1, ... layout of avs vertices
func InterleaveXY(x, y []float64) (xy []float32) {
	n := min(len(x), len(y))
	xy = make([]float32, 2*n)
	for i := 0; i < n; i++ {
		xy[2*i], xy[2*i+1] = float32(x[i]), float32(y[i])
	}
	return
}

// CrossHairs returns one horizontal and one vertical segment of half width size centered on each point
func CrossHairs(xy []float32, size float32) (lines []float32) {
	var (
		lenXY = len(xy) / 2
	)
	lines = make([]float32, 0, 8*lenXY)
	for i := 0; i < lenXY; i++ {
		lines = append(lines,
			xy[2*i]-size, xy[2*i+1],
			xy[2*i]+size, xy[2*i+1],
			xy[2*i], xy[2*i+1]-size,
			xy[2*i], xy[2*i+1]+size,
		)
	}
	return
}
