package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/tanklab/internal/config"
	"github.com/san-kum/tanklab/internal/dashboard"
	"github.com/san-kum/tanklab/internal/export"
	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/tank"
	"github.com/san-kum/tanklab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	theme      string

	shape       string
	sides       int
	volume      float64
	baseCost    float64
	sideCost    float64
	baseDensity float64
	topDensity  float64
	ambient     float64
	initial     float64
	critical    float64
	horizon     float64
	coolingK    float64

	chartWidth  int
	chartHeight int

	reportFormat string
	outFile      string
	project      string
	author       string
	notes        string

	seriesName   string
	exportFormat string
	svgWidth     int
	svgHeight    int
)

// flagParams maps numeric flags onto config parameter names.
var flagParams = map[string]string{
	"volume":       "volume",
	"base-cost":    "base_cost",
	"side-cost":    "side_cost",
	"base-density": "base_density",
	"top-density":  "top_density",
	"ambient":      "ambient",
	"initial":      "initial",
	"critical":     "critical",
	"horizon":      "horizon",
	"k":            "k",
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "tanklab",
		Short:        "optimal tank design: cost, mass and thermal safety",
		SilenceUsage: true,
		RunE:         runDashboard,
	}
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "blueprint", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "solve the minimum-cost geometry",
		RunE:  runOptimize,
	}
	massCmd := &cobra.Command{
		Use:   "mass",
		Short: "integrate mass and center of mass of the optimal tank",
		RunE:  runMass,
	}
	thermalCmd := &cobra.Command{
		Use:   "thermal",
		Short: "simulate Newton cooling of the stored product",
		RunE:  runThermal,
	}
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "write a PDF, XLSX or JSON report of the full design",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVar(&reportFormat, "format", "pdf", "report format (pdf, xlsx, json)")
	reportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default tank-report.<format>)")
	reportCmd.Flags().StringVar(&project, "project", "", "project name")
	reportCmd.Flags().StringVar(&author, "author", "", "author")
	reportCmd.Flags().StringVar(&notes, "notes", "", "free text appended to the PDF")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export a curve as CSV or SVG",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&seriesName, "series", export.SeriesCost, "series (cost, density, thermal, outline)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "format (csv, svg)")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&svgWidth, "width", 640, "svg width")
	exportCmd.Flags().IntVar(&svgHeight, "height", 360, "svg height")

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "interactive terminal dashboard",
		RunE:  runDashboard,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	for _, cmd := range []*cobra.Command{rootCmd, optimizeCmd, massCmd, thermalCmd, reportCmd, exportCmd, dashboardCmd} {
		addDesignFlags(cmd)
	}
	for _, cmd := range []*cobra.Command{optimizeCmd, massCmd, thermalCmd} {
		cmd.Flags().IntVar(&chartWidth, "width", viz.DefaultChartSize.Width, "chart width")
		cmd.Flags().IntVar(&chartHeight, "height", viz.DefaultChartSize.Height, "chart height")
	}

	rootCmd.AddCommand(optimizeCmd, massCmd, thermalCmd, reportCmd, exportCmd, dashboardCmd, presetsCmd, newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDesignFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&shape, "shape", config.DefaultShape, "cylinder, prism, box or prism:N")
	f.IntVar(&sides, "sides", config.DefaultSides, "prism side count")
	f.Float64Var(&volume, "volume", config.DefaultVolume, "volume (m³)")
	f.Float64Var(&baseCost, "base-cost", config.DefaultBaseCost, "cap unit cost (per m²)")
	f.Float64Var(&sideCost, "side-cost", config.DefaultSideCost, "wall unit cost (per m²)")
	f.Float64Var(&baseDensity, "base-density", config.DefaultBaseDensity, "density at the base (kg/m³)")
	f.Float64Var(&topDensity, "top-density", config.DefaultTopDensity, "density at the top (kg/m³)")
	f.Float64Var(&ambient, "ambient", config.DefaultAmbient, "ambient temperature (°C)")
	f.Float64Var(&initial, "initial", config.DefaultInitial, "initial product temperature (°C)")
	f.Float64Var(&critical, "critical", config.DefaultCritical, "critical temperature (°C)")
	f.Float64Var(&horizon, "horizon", config.DefaultHorizon, "simulation horizon (h)")
	f.Float64Var(&coolingK, "k", config.DefaultK, "cooling constant (1/h)")
}

// loadConfig layers defaults, then --preset, then --config, then any flag
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.FindPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (see 'tanklab presets')", preset)
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("shape") {
		cfg.Geometry.Shape = shape
	}
	if flags.Changed("sides") {
		cfg.Geometry.Sides = sides
	}
	values := map[string]float64{
		"volume": volume, "base-cost": baseCost, "side-cost": sideCost,
		"base-density": baseDensity, "top-density": topDensity,
		"ambient": ambient, "initial": initial, "critical": critical,
		"horizon": horizon, "k": coolingK,
	}
	for flag, param := range flagParams {
		if flags.Changed(flag) {
			if err := cfg.SetParam(param, values[flag]); err != nil {
				return nil, err
			}
		}
	}
	if strings.HasPrefix(cfg.Geometry.Shape, "prism:") || cfg.Geometry.Shape == "box" || cfg.Geometry.Shape == "square" {
		s, err := geometry.ParseShape(cfg.Geometry.Shape, cfg.Geometry.Sides)
		if err != nil {
			return nil, err
		}
		cfg.Geometry.Shape, cfg.Geometry.Sides = "prism", s.Sides
	}
	return cfg, nil
}

func evaluate(cmd *cobra.Command) (*tank.Design, error) {
	viz.SetTheme(theme)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	d, _ := tank.Evaluate(p)
	return d, nil
}

func chartSize() viz.ChartSize {
	return viz.ChartSize{Width: chartWidth, Height: chartHeight}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	d, err := evaluate(cmd)
	if err != nil {
		return err
	}
	fmt.Println(viz.OptimizationPanel(d, chartSize()))
	return d.GeometryErr
}

func runMass(cmd *cobra.Command, args []string) error {
	d, err := evaluate(cmd)
	if err != nil {
		return err
	}
	fmt.Println(viz.MassPanel(d, chartSize()))
	if !d.GeometryOK() {
		return d.GeometryErr
	}
	return d.MassErr
}

func runThermal(cmd *cobra.Command, args []string) error {
	d, err := evaluate(cmd)
	if err != nil {
		return err
	}
	fmt.Println(viz.ThermalPanel(d, chartSize()))
	return d.ThermalErr
}

func runReport(cmd *cobra.Command, args []string) error {
	d, err := evaluate(cmd)
	if err != nil {
		return err
	}
	if reportFormat != "pdf" && reportFormat != "xlsx" && reportFormat != "json" {
		return fmt.Errorf("unknown report format: %s", reportFormat)
	}
	path := outFile
	if path == "" {
		path = "tank-report." + reportFormat
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch reportFormat {
	case "pdf":
		err = export.Report(f, d, export.ReportInfo{Project: project, Author: author, Notes: notes}, time.Now())
	case "xlsx":
		err = export.WriteWorkbook(f, d)
	case "json":
		err = export.WriteJSON(f, d)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	printSummary(os.Stdout, d)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := evaluate(cmd)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if seriesName == "outline" {
		if exportFormat != "svg" {
			return errors.New("outline exports as svg only")
		}
		if !d.GeometryOK() {
			return d.GeometryErr
		}
		_, err := io.WriteString(w, export.OutlineToSVG(
			geometry.Outline(d.Optimal.Shape, d.Optimal.Dimension, 96), min(svgWidth, svgHeight), "#0d6efd"))
		return err
	}

	s, header, err := export.Pick(d, seriesName)
	if err != nil {
		return err
	}
	switch exportFormat {
	case "csv":
		return export.WriteCSV(w, s, header)
	case "svg":
		marker := -1
		switch seriesName {
		case export.SeriesCost:
			marker = s.ArgMin()
		case export.SeriesThermal:
			for i, t := range s.Y {
				if t >= d.Params.Thermal.Critical {
					marker = i
					break
				}
			}
		}
		_, err := io.WriteString(w, export.SeriesToSVG(s, svgWidth, svgHeight, "#0d6efd", marker))
		return err
	default:
		return fmt.Errorf("unknown export format: %s", exportFormat)
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	viz.SetTheme(theme)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return dashboard.Run(cfg, configFile)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tPRESET\tVOLUME\tCAP/WALL COST\tDENSITY\tT AMB/INIT/CRIT")
	for _, s := range config.Shapes() {
		for _, name := range config.ListPresets(s) {
			cfg := config.GetPreset(s, name)
			shapeLabel := s
			if s == "prism" {
				shapeLabel = fmt.Sprintf("prism(n=%d)", cfg.Geometry.Sides)
			}
			fmt.Fprintf(w, "%s\t%s\t%g\t%g/%g\t%g→%g\t%g/%g/%g\n",
				shapeLabel, name,
				cfg.Geometry.Volume,
				cfg.Geometry.BaseCost, cfg.Geometry.SideCost,
				cfg.Material.BaseDensity, cfg.Material.TopDensity,
				cfg.Thermal.Ambient, cfg.Thermal.Initial, cfg.Thermal.Critical,
			)
		}
	}
	return w.Flush()
}

func printSummary(out io.Writer, d *tank.Design) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tQUANTITY\tVALUE\tUNIT")
	for _, r := range export.SummaryRows(d) {
		v := fmt.Sprint(r.Value)
		if f, ok := r.Value.(float64); ok {
			v = fmt.Sprintf("%.4f", f)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Section, r.Label, v, r.Unit)
	}
	w.Flush()
}
