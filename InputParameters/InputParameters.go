package InputParameters

import (
	"fmt"
	"io"
	"math"

	"github.com/ghodss/yaml"
)

// Snapshot pairs the reference and numeric tables at one proper time
type Snapshot struct {
	Tau          float64 `json:"Tau"`
	Label        string  `json:"Label"`
	AnalyticFile string  `json:"AnalyticFile"`
	NumericFile  string  `json:"NumericFile"`
	Alpha        float64 `json:"Alpha"` // Opacity of the reference curve, 0 means opaque
}

// Curve is a numeric table drawn without a reference partner
type Curve struct {
	Tau         float64 `json:"Tau"`
	NumericFile string  `json:"NumericFile"`
}

// Parameters obtained from the YAML input file
type PlotParameters struct {
	Title          string     `json:"Title"`
	Output         string     `json:"Output"`
	XColumn        int        `json:"XColumn"`
	YColumn        int        `json:"YColumn"`
	FilterColumn   int        `json:"FilterColumn"`
	FilterTol      float64    `json:"FilterTol"`
	MaskSource     int        `json:"MaskSource"` // Index into Snapshots of the numeric table defining the row mask
	Initial        *Curve     `json:"Initial"`
	Snapshots      []Snapshot `json:"Snapshots"`
	XLimits        [2]float64 `json:"XLimits"`
	YLimits        [2]float64 `json:"YLimits"`
	NumTicks       int        `json:"NumTicks"`
	XLabel         string     `json:"XLabel"`
	YLabel         string     `json:"YLabel"`
	Latex          bool       `json:"Latex"`
	FontSize       float64    `json:"FontSize"`
	LegendFontSize float64    `json:"LegendFontSize"`
	LineWidth      float64    `json:"LineWidth"`
	Width          float64    `json:"Width"`  // inches
	Height         float64    `json:"Height"` // inches
	ClosedForm     bool       `json:"ClosedForm"`
	GubserQ        float64    `json:"GubserQ"`
	ClosedFormPts  int        `json:"ClosedFormPoints"`
}

// NewGubserUx returns the parameters of the standard u^x comparison at tau = 1.2, 1.5, 2.0 fm
func NewGubserUx() (ip *PlotParameters) {
	ip = &PlotParameters{
		Title:        "Gubser flow u^x",
		Output:       "Gubser_ux.pdf",
		XColumn:      0,
		YColumn:      3,
		FilterColumn: 1,
		FilterTol:    1.e-6,
		MaskSource:   0,
		Initial: &Curve{
			Tau:         1.0,
			NumericFile: "Gubser_flow_check_tau_1.dat",
		},
		Snapshots: []Snapshot{
			{Tau: 1.2, AnalyticFile: "y=0_tau=1.2_SemiAnalytic.dat", NumericFile: "Gubser_flow_check_tau_1.2.dat", Alpha: 0.2},
			{Tau: 1.5, AnalyticFile: "y=0_tau=1.5_SemiAnalytic.dat", NumericFile: "Gubser_flow_check_tau_1.5.dat"},
			{Tau: 2.0, AnalyticFile: "y=0_tau=2.0_SemiAnalytic.dat", NumericFile: "Gubser_flow_check_tau_2.dat"},
		},
		XLimits:        [2]float64{-5, 5},
		YLimits:        [2]float64{-2, 2},
		NumTicks:       5,
		FontSize:       20,
		LegendFontSize: 17,
		LineWidth:      2,
		Width:          8,
		Height:         6,
		GubserQ:        1,
		ClosedFormPts:  201,
	}
	ip.SetLabels()
	return
}

// Parse overlays the YAML document in data onto the receiver, so unset keys keep their values
func (ip *PlotParameters) Parse(data []byte) (err error) {
	// Slices decode into their old backing array, which would merge stale snapshot fields
	defaultSnapshots := ip.Snapshots
	ip.Snapshots = nil
	if err = yaml.Unmarshal(data, ip); err != nil {
		return fmt.Errorf("unable to parse plot parameters: %w", err)
	}
	if ip.Snapshots == nil {
		ip.Snapshots = defaultSnapshots
	}
	ip.SetLabels()
	return ip.Validate()
}

// SetLabels fills in empty axis and legend labels, and swaps generated ones to match Latex
func (ip *PlotParameters) SetLabels() {
	pick := func(label, plain, latex string) string {
		if len(label) != 0 && label != plain && label != latex {
			return label
		}
		if ip.Latex {
			return latex
		}
		return plain
	}
	ip.XLabel = pick(ip.XLabel, "x (fm)", "$x$ (fm)")
	ip.YLabel = pick(ip.YLabel, "uˣ", "$u^x$")
	for i := range ip.Snapshots {
		s := &ip.Snapshots[i]
		s.Label = pick(s.Label, fmt.Sprintf("τ = %.1f fm", s.Tau), fmt.Sprintf(`$\tau = %.1f$ fm`, s.Tau))
	}
}

func (ip *PlotParameters) Validate() (err error) {
	switch {
	case len(ip.Snapshots) == 0:
		err = fmt.Errorf("at least one snapshot is required")
	case ip.MaskSource < 0 || ip.MaskSource >= len(ip.Snapshots):
		err = fmt.Errorf("MaskSource %d is not a snapshot index in [0,%d)", ip.MaskSource, len(ip.Snapshots))
	case ip.XColumn < 0 || ip.YColumn < 0 || ip.FilterColumn < 0:
		err = fmt.Errorf("column indices must be non-negative: XColumn = %d, YColumn = %d, FilterColumn = %d",
			ip.XColumn, ip.YColumn, ip.FilterColumn)
	case ip.FilterTol <= 0 || math.IsNaN(ip.FilterTol):
		err = fmt.Errorf("FilterTol must be positive, have %v", ip.FilterTol)
	case ip.XLimits[0] >= ip.XLimits[1] || ip.YLimits[0] >= ip.YLimits[1]:
		err = fmt.Errorf("axis limits must be increasing: XLimits = %v, YLimits = %v", ip.XLimits, ip.YLimits)
	case ip.NumTicks < 2:
		err = fmt.Errorf("NumTicks must be at least 2, have %d", ip.NumTicks)
	case ip.ClosedForm && (ip.GubserQ <= 0 || ip.ClosedFormPts < 2):
		err = fmt.Errorf("closed form reference needs GubserQ > 0 and ClosedFormPoints >= 2")
	}
	if err != nil {
		return
	}
	for i, s := range ip.Snapshots {
		if len(s.NumericFile) == 0 {
			return fmt.Errorf("snapshot %d (tau = %v) has no NumericFile", i, s.Tau)
		}
		if !ip.ClosedForm && len(s.AnalyticFile) == 0 {
			return fmt.Errorf("snapshot %d (tau = %v) has no AnalyticFile", i, s.Tau)
		}
	}
	return
}

// MinColumns is the column count every input table must have
func (ip *PlotParameters) MinColumns() int {
	return max(ip.XColumn, ip.YColumn, ip.FilterColumn) + 1
}

func (ip *PlotParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Output\n", ip.Output)
	fmt.Fprintf(w, "[%d, %d]\t\t\t= X, Y Columns\n", ip.XColumn, ip.YColumn)
	fmt.Fprintf(w, "|col %d| < %8.2e\t= Row Filter\n", ip.FilterColumn, ip.FilterTol)
	if ip.Initial != nil {
		fmt.Fprintf(w, "%8.5f\t\t= Initial Tau [%s]\n", ip.Initial.Tau, ip.Initial.NumericFile)
	}
	for i, s := range ip.Snapshots {
		var source = s.AnalyticFile
		if ip.ClosedForm {
			source = fmt.Sprintf("closed form, q = %v", ip.GubserQ)
		}
		var mark string
		if i == ip.MaskSource {
			mark = " (mask)"
		}
		fmt.Fprintf(w, "%8.5f\t\t= Tau [%s] vs [%s]%s\n", s.Tau, s.NumericFile, source, mark)
	}
	fmt.Fprintf(w, "%v x %v\t\t= Axis Limits\n", ip.XLimits, ip.YLimits)
}
