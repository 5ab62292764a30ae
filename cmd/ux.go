/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gubser/InputParameters"
	"github.com/notargets/gubser/gubser"
	"github.com/notargets/gubser/plotting"
)

type ModelUx struct {
	InputFile   string
	DataDir     string
	AnalyticDir string
	Output      string
	ClosedForm  bool
	ASCII       bool
	Graph       bool
	Delay       time.Duration
	ErrorsFile  string
	Label       string
}

// UxCmd represents the ux command
var UxCmd = &cobra.Command{
	Use:   "ux",
	Short: "Plot u^x against x for simulation and reference at several proper times",
	Long: `
Reads the Gubser flow check files written by the simulation, keeps the rows on the y = 0 line,
and draws them dashed over the semi-analytic reference curves at tau = 1.2, 1.5 and 2.0 fm,

gubser ux -I parameters.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mux := &ModelUx{
			InputFile:   viper.GetString("inputParametersFile"),
			DataDir:     viper.GetString("dataDir"),
			AnalyticDir: viper.GetString("analyticDir"),
			Output:      viper.GetString("output"),
			ClosedForm:  viper.GetBool("closedForm"),
			ASCII:       viper.GetBool("ascii"),
			Graph:       viper.GetBool("graph"),
			Delay:       time.Duration(viper.GetInt("delay")) * time.Millisecond,
			ErrorsFile:  viper.GetString("errorsFile"),
			Label:       viper.GetString("label"),
		}
		ip, err := processInput(mux)
		if err != nil {
			return err
		}
		return RunUx(cmd.OutOrStdout(), mux, ip)
	},
}

func init() {
	rootCmd.AddCommand(UxCmd)
	UxCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file describing the comparison, defaults reproduce Gubser_ux.pdf")
	UxCmd.Flags().String("dataDir", "../..", "directory holding the Gubser_flow_check_tau_*.dat simulation files")
	UxCmd.Flags().String("analyticDir", ".", "directory holding the *_SemiAnalytic.dat reference files")
	UxCmd.Flags().StringP("output", "o", "", "output PDF, overrides the Output parameter")
	UxCmd.Flags().Bool("closedForm", false, "use the closed form ideal Gubser solution as the reference")
	UxCmd.Flags().Bool("ascii", false, "print a terminal graph of the curves")
	UxCmd.Flags().BoolP("graph", "g", false, "display the curves in an interactive window")
	UxCmd.Flags().IntP("delay", "d", 10000, "milliseconds to keep the interactive window open")
	UxCmd.Flags().String("errorsFile", "", "write the error norms as CSV to this file")
	UxCmd.Flags().String("label", "", "label of the error norm records, defaults to N=<masked rows>")
	for _, name := range []string{"inputParametersFile", "dataDir", "analyticDir", "output", "closedForm",
		"ascii", "graph", "delay", "errorsFile", "label"} {
		if err := viper.BindPFlag(name, UxCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func processInput(mux *ModelUx) (ip *InputParameters.PlotParameters, err error) {
	ip = InputParameters.NewGubserUx()
	if len(mux.InputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(mux.InputFile); err != nil {
			return nil, fmt.Errorf("unable to read input parameters: %w", err)
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("%s: %w", mux.InputFile, err)
		}
	}
	if mux.ClosedForm {
		ip.ClosedForm = true
	}
	if len(mux.Output) != 0 {
		ip.Output = mux.Output
	}
	return ip, ip.Validate()
}

func RunUx(w io.Writer, mux *ModelUx, ip *InputParameters.PlotParameters) (err error) {
	var (
		c *gubser.Comparison
		E []gubser.ErrorNorm
	)
	ip.Print(w)
	if c, err = gubser.Load(ip, mux.DataDir, mux.AnalyticDir); err != nil {
		return
	}
	fmt.Fprintf(w, "Row mask from tau = %v: %d of %d rows with |col %d| < %v\n",
		ip.Snapshots[ip.MaskSource].Tau, c.Mask.Count(), len(c.Mask), ip.FilterColumn, ip.FilterTol)

	series := c.Series()
	fig := plotting.NewFigure(ip)
	if err = plotting.Render(fig, series, ip.Output); err != nil {
		return
	}
	fmt.Fprintf(w, "Wrote %s\n", ip.Output)

	if E, err = c.Errors(); err != nil {
		return
	}
	renderErrors(w, E)
	if len(mux.ErrorsFile) != 0 {
		label := mux.Label
		if len(label) == 0 {
			label = fmt.Sprintf("N=%d", c.Mask.Count())
		}
		if err = writeErrors(mux.ErrorsFile, label, E); err != nil {
			return
		}
		fmt.Fprintf(w, "Wrote %s\n", mux.ErrorsFile)
	}

	if mux.ASCII {
		var graph string
		caption := fmt.Sprintf("%s vs %s", ip.YLabel, ip.XLabel)
		if graph, err = plotting.ASCII(fig, series, 80, 15, caption); err != nil {
			return
		}
		fmt.Fprintln(w, graph)
	}
	if mux.Graph {
		lc := plotting.NewLineChart(1920, 1280, fig)
		lc.Plot(mux.Delay, series...)
	}
	return
}

func renderErrors(w io.Writer, E []gubser.ErrorNorm) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"tau (fm)", "points", "RMS error", "max error"})
	for _, e := range E {
		if e.Points == 0 {
			t.AppendRow(table.Row{e.Tau, 0, "-", "-"})
			continue
		}
		t.AppendRow(table.Row{e.Tau, e.Points, fmt.Sprintf("%.4e", e.RMS), fmt.Sprintf("%.4e", e.Max)})
	}
	t.Render()
}

func writeErrors(filename, label string, E []gubser.ErrorNorm) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create %s: %w", filename, err)
	}
	if err = gubser.WriteErrorsCSV(file, label, E); err != nil {
		file.Close()
		return fmt.Errorf("unable to write %s: %w", filename, err)
	}
	return file.Close()
}
