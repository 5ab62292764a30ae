package gubser

import (
	"fmt"
	"path/filepath"

	"github.com/notargets/gubser/InputParameters"
	"github.com/notargets/gubser/plotting"
	"github.com/notargets/gubser/readfiles"
	"github.com/notargets/gubser/utils"
)

// NumericCurve is a simulation table and its masked x, y columns
type NumericCurve struct {
	Tau   float64
	File  string
	Table utils.Matrix
	X, Y  []float64
}

// SnapshotData is one proper time of the comparison with its reference curve
type SnapshotData struct {
	InputParameters.Snapshot
	Numeric    NumericCurve
	Reference  utils.Matrix
	RefX, RefY []float64
}

type Comparison struct {
	Params    *InputParameters.PlotParameters
	Mask      utils.Mask
	Selector  utils.Selector
	Initial   *NumericCurve
	Snapshots []SnapshotData
}

/*
Load reads the numeric tables from dataDir and the reference tables from analyticDir (or builds
them from the closed form), computes the row mask from the MaskSource snapshot's numeric table
and applies it to every numeric table. Any table whose row count differs from the mask is an error.
*/
func Load(ip *InputParameters.PlotParameters, dataDir, analyticDir string) (c *Comparison, err error) {
	var (
		minCols = ip.MinColumns()
		taus    []float64
		files   []string
		T       []utils.Matrix
	)
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Comparison{
		Params:    ip,
		Snapshots: make([]SnapshotData, len(ip.Snapshots)),
	}
	if ip.Initial != nil {
		taus, files = append(taus, ip.Initial.Tau), append(files, ip.Initial.NumericFile)
	}
	for _, s := range ip.Snapshots {
		taus, files = append(taus, s.Tau), append(files, s.NumericFile)
	}
	if T, err = readfiles.ReadTables(dataDir, files...); err != nil {
		return nil, err
	}
	curves := make([]NumericCurve, len(T))
	for i := range T {
		if err = readfiles.RequireColumns(T[i], minCols); err != nil {
			return nil, err
		}
		curves[i] = NumericCurve{Tau: taus[i], File: T[i].Name(), Table: T[i]}
	}
	if ip.Initial != nil {
		c.Initial, curves = &curves[0], curves[1:]
	}
	for i, s := range ip.Snapshots {
		c.Snapshots[i].Snapshot = s
		c.Snapshots[i].Numeric = curves[i]
	}
	if err = c.loadReferences(analyticDir); err != nil {
		return nil, err
	}

	maskTable := c.Snapshots[ip.MaskSource].Numeric.Table
	c.Mask = utils.NewMaskAbsLess(maskTable.Col(ip.FilterColumn), ip.FilterTol)
	c.Selector = utils.NewSelector(c.Mask)
	if c.Initial != nil {
		if err = c.filter(c.Initial); err != nil {
			return nil, err
		}
	}
	for i := range c.Snapshots {
		if err = c.filter(&c.Snapshots[i].Numeric); err != nil {
			return nil, err
		}
	}
	return
}

func (c *Comparison) loadReferences(analyticDir string) (err error) {
	var (
		ip   = c.Params
		flow = NewFlow(ip.GubserQ)
	)
	for i := range c.Snapshots {
		s := &c.Snapshots[i]
		if ip.ClosedForm {
			s.Reference = flow.Profile(s.Tau, ip.XLimits[0], ip.XLimits[1], ip.ClosedFormPts)
			s.Reference.SetReadOnly(fmt.Sprintf("closed form tau = %v", s.Tau))
			s.RefX, s.RefY = s.Reference.Col(ColX), s.Reference.Col(ColUx)
			continue
		}
		if s.Reference, err = readfiles.ReadTable(filepath.Join(analyticDir, s.AnalyticFile)); err != nil {
			return
		}
		if err = readfiles.RequireColumns(s.Reference, ip.MinColumns()); err != nil {
			return
		}
		s.RefX, s.RefY = s.Reference.Col(ip.XColumn), s.Reference.Col(ip.YColumn)
	}
	return
}

func (c *Comparison) filter(nc *NumericCurve) (err error) {
	var (
		R utils.Matrix
	)
	if R, err = c.Selector.Rows(nc.Table, c.Params.XColumn, c.Params.YColumn); err != nil {
		return fmt.Errorf("applying the row mask to %s: %w", nc.File, err)
	}
	if R.Rows() == 0 {
		nc.X, nc.Y = []float64{}, []float64{}
		return
	}
	nc.X, nc.Y = R.Col(0), R.Col(1)
	return
}

// Series lists the curves in drawing order: the initial numeric curve, then per snapshot the
// reference curve followed by the dashed numeric curve in the same color
func (c *Comparison) Series() (S []plotting.Series) {
	var (
		width = c.Params.LineWidth
	)
	if c.Initial != nil {
		_, _, col, _ := utils.GetPlotElements(0)
		S = append(S, plotting.Series{
			Name:  fmt.Sprintf("numeric tau=%v", c.Initial.Tau),
			X:     c.Initial.X,
			Y:     c.Initial.Y,
			Color: col,
			Width: width,
		})
	}
	for i, s := range c.Snapshots {
		_, _, col, _ := utils.GetPlotElements(i)
		S = append(S,
			plotting.Series{
				Name:  fmt.Sprintf("reference tau=%v", s.Tau),
				Label: s.Label,
				X:     s.RefX,
				Y:     s.RefY,
				Color: col,
				Alpha: s.Alpha,
				Width: width,
			},
			plotting.Series{
				Name:   fmt.Sprintf("numeric tau=%v", s.Tau),
				X:      s.Numeric.X,
				Y:      s.Numeric.Y,
				Color:  col,
				Width:  width,
				Dashed: true,
			})
	}
	return
}

// Errors compares each snapshot's masked numeric curve against its reference curve
func (c *Comparison) Errors() (E []ErrorNorm, err error) {
	E = make([]ErrorNorm, len(c.Snapshots))
	for i, s := range c.Snapshots {
		if E[i], err = Norms(s.Numeric.X, s.Numeric.Y, s.RefX, s.RefY); err != nil {
			return nil, fmt.Errorf("tau = %v: %w", s.Tau, err)
		}
		E[i].Tau = s.Tau
	}
	return
}
