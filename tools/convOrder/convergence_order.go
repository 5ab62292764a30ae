package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

var (
	csvFiles string
)

func main() {
	csvFilesPtr := flag.String("csvFiles", csvFiles, "comma separated error norm files written by 'gubser ux --errorsFile'")
	flag.Parse()
	csvFiles = *csvFilesPtr
	files := flag.Args()
	if len(csvFiles) != 0 {
		files = append(strings.Split(csvFiles, ","), files...)
	}
	if len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	studies := make(map[float64]*ConvergenceStudy)
	for _, f := range files {
		fmt.Printf("Input file: %v\n", f)
		if err := readCSV(f, studies); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	taus := make([]float64, 0, len(studies))
	for tau := range studies {
		taus = append(taus, tau)
	}
	sort.Float64s(taus)
	for _, tau := range taus {
		cs := studies[tau]
		cs.Sort()
		fmt.Printf("Tau = %5.2f fm\n", tau)
		rmsOrder, maxOrder := cs.Orders()
		for i := range cs.numPTS {
			if i == 0 {
				fmt.Printf("%12s, %6d, %12.5e, %12.5e\n", cs.labels[i], cs.numPTS[i], cs.rms[i], cs.max[i])
				continue
			}
			fmt.Printf("%12s, %6d, %12.5e, %12.5e, order(RMS) = %5.2f, order(Max) = %5.2f\n",
				cs.labels[i], cs.numPTS[i], cs.rms[i], cs.max[i], rmsOrder[i-1], maxOrder[i-1])
		}
	}
}

type ConvergenceStudy struct {
	tau      float64
	labels   []string
	numPTS   []int
	rms, max []float64
}

func NewConvergenceStudy(tau float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		tau: tau,
	}
}

func (cs *ConvergenceStudy) Add(label string, numPTS int, rms, max float64) {
	cs.labels = append(cs.labels, label)
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.rms = append(cs.rms, rms)
	cs.max = append(cs.max, max)
}

func (cs *ConvergenceStudy) Len() int           { return len(cs.numPTS) }
func (cs *ConvergenceStudy) Less(i, j int) bool { return cs.numPTS[i] < cs.numPTS[j] }
func (cs *ConvergenceStudy) Swap(i, j int) {
	cs.labels[i], cs.labels[j] = cs.labels[j], cs.labels[i]
	cs.numPTS[i], cs.numPTS[j] = cs.numPTS[j], cs.numPTS[i]
	cs.rms[i], cs.rms[j] = cs.rms[j], cs.rms[i]
	cs.max[i], cs.max[j] = cs.max[j], cs.max[i]
}

// Sort orders the entries by increasing resolution
func (cs *ConvergenceStudy) Sort() { sort.Stable(cs) }

// Orders returns the observed order between successive resolutions, p = log(e1/e2)/log(n2/n1)
func (cs *ConvergenceStudy) Orders() (rmsOrder, maxOrder []float64) {
	order := func(e1, e2 float64, n1, n2 int) float64 {
		if n1 == n2 || e1 <= 0 || e2 <= 0 {
			return math.NaN()
		}
		return math.Log(e1/e2) / math.Log(float64(n2)/float64(n1))
	}
	for i := 1; i < cs.Len(); i++ {
		rmsOrder = append(rmsOrder, order(cs.rms[i-1], cs.rms[i], cs.numPTS[i-1], cs.numPTS[i]))
		maxOrder = append(maxOrder, order(cs.max[i-1], cs.max[i], cs.numPTS[i-1], cs.numPTS[i]))
	}
	return
}

func readCSV(csvFile string, studies map[float64]*ConvergenceStudy) (err error) {
	var (
		records [][]string
		f       *os.File
		ok      bool
		cs      *ConvergenceStudy
	)
	if f, err = os.Open(csvFile); err != nil {
		return
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		return fmt.Errorf("%s: %w", csvFile, err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 5 {
			return fmt.Errorf("%s:%d: expected label,points,tau,rms,max", csvFile, i+1)
		}
		var (
			npts          int
			tau, rms, max float64
		)
		if npts, err = strconv.Atoi(rec[1]); err != nil {
			return fmt.Errorf("%s:%d: %w", csvFile, i+1, err)
		}
		for j, dst := range []*float64{&tau, &rms, &max} {
			if *dst, err = strconv.ParseFloat(rec[2+j], 64); err != nil {
				return fmt.Errorf("%s:%d: %w", csvFile, i+1, err)
			}
		}
		if cs, ok = studies[tau]; !ok {
			cs = NewConvergenceStudy(tau)
			studies[tau] = cs
		}
		cs.Add(rec[0], npts, rms, max)
	}
	return
}
