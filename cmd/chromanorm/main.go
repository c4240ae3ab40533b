package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goxberry/chromanorm/internal/bundle"
	"github.com/goxberry/chromanorm/internal/config"
	"github.com/goxberry/chromanorm/internal/export"
	"github.com/goxberry/chromanorm/internal/norm"
	"github.com/goxberry/chromanorm/internal/render"
	"github.com/goxberry/chromanorm/internal/tui"
)

var (
	configFile string
	units      int
	legacyTail bool
	output     string
	plotUnit   int
	plotComp   int
	plotWidth  int
	plotHeight int
	plotDeriv  bool
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chromanorm",
		Short: "normalize chromatography solver output bundles",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&units, "units", 0, "expected unit-operation count")
	rootCmd.PersistentFlags().BoolVar(&legacyTail, "legacy-tail", false, "historical final-parameter placement in the component-wise sensitivity fallback")

	infoCmd := &cobra.Command{
		Use:   "info [bundle]",
		Short: "show discovered dimensions and per-unit fields",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize [bundle]",
		Short: "normalize a bundle to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runNormalize,
	}
	normalizeCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	plotCmd := &cobra.Command{
		Use:   "plot [bundle]",
		Short: "plot one unit's outlet curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotUnit, "unit", 0, "unit operation index")
	plotCmd.Flags().IntVar(&plotComp, "comp", 0, "component index")
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")
	plotCmd.Flags().BoolVar(&plotDeriv, "deriv", false, "plot the outlet time-derivative")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the curve to an SVG file")

	browseCmd := &cobra.Command{
		Use:   "browse [bundle]",
		Short: "browse a bundle interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrowse,
	}

	rootCmd.AddCommand(infoCmd, normalizeCmd, plotCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		cfg := config.DefaultConfig()
		cfg.Units = units
		cfg.LegacyTail = legacyTail
		return cfg, nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if units > 0 {
		cfg.Units = units
	}
	if legacyTail {
		cfg.LegacyTail = true
	}
	return cfg, nil
}

func loadBundle(path string) (bundle.Bundle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nc", ".cdf":
		return bundle.ReadCDF(path)
	default:
		return bundle.ReadFile(path)
	}
}

func normalize(path string) (*norm.Result, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	b, err := loadBundle(path)
	if err != nil {
		return nil, nil, err
	}
	n := norm.New(norm.Options{LegacyTailPlacement: cfg.LegacyTail})
	res, err := n.Normalize(b, cfg.Units)
	if err != nil {
		return nil, nil, err
	}
	return res, cfg, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	res, _, err := normalize(args[0])
	if err != nil {
		return err
	}

	fmt.Print(render.Summary(res))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tFIELDS")
	for i := range res.Solution.Outlet {
		fields := render.UnitFields(res, i)
		if len(fields) == 0 {
			fmt.Fprintf(w, "%03d\t(empty)\n", i)
			continue
		}
		fmt.Fprintf(w, "%03d\t%s\n", i, strings.Join(fields, ", "))
	}
	return w.Flush()
}

func runNormalize(cmd *cobra.Command, args []string) error {
	res, cfg, err := normalize(args[0])
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		return export.JSON(os.Stdout, res)
	}
	if err := export.JSONFile(output, res); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	res, _, err := normalize(args[0])
	if err != nil {
		return err
	}
	if plotUnit < 0 || plotUnit >= len(res.Solution.Outlet) {
		return fmt.Errorf("unit %d out of range (%d units)", plotUnit, len(res.Solution.Outlet))
	}

	field := res.Solution.Outlet[plotUnit]
	name := "outlet"
	if plotDeriv {
		field = res.Solution.OutletDot[plotUnit]
		name = "outletDot"
	}
	if field == nil {
		return fmt.Errorf("unit %d has no %s data", plotUnit, name)
	}

	fmt.Println(render.Title.Render(fmt.Sprintf("unit %03d %s, component %d", plotUnit, name, plotComp)))
	fmt.Println(render.Curve(field, plotComp, plotWidth, plotHeight))

	if svgOut != "" {
		if err := export.CurveSVGFile(svgOut, res.Solution.Time, field, plotComp, 640, 360); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	res, _, err := normalize(args[0])
	if err != nil {
		return err
	}
	return tui.Run(res)
}
