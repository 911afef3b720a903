// Package main is the entry point for the xsect binary.
// It inspects section catalog files and dumps discretized outlines
// for downstream meshing tools.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gosect/xsect"
	"github.com/gosect/xsect/sectionfile"
)

const defaultLogLevel = "info"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for xsect.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xsect",
		Short: "Cross-section outline inspector",
		Long: `Build and inspect structural cross-section outlines from a catalog file.

A catalog is a YAML or JSON document listing named sections and the
materials they reference:

  materials:
    steel:
      elastic_modulus: 200e3
      poissons_ratio: 0.3
  sections:
    - name: column
      shape: cruciform
      material: steel
      depth: 250
      width: 175
      thickness: 12
      radius: 16

Example:
  xsect info catalog.yaml
  xsect points catalog.yaml --section column --format csv`,
		Version:       xsect.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			configureLogging(level)
		},
	}

	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newPointsCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

// configureLogging wires a JSON handler at the requested level into the
// xsect package logger. Data output goes to stdout, so logs go to stderr.
func configureLogging(logLevel string) {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	xsect.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadCatalog loads a catalog file and builds every section in it.
func loadCatalog(path string) (*sectionfile.File, []sectionfile.Built, error) {
	f, err := sectionfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	built, err := f.Build()
	if err != nil {
		return nil, nil, err
	}
	return f, built, nil
}

// newInfoCmd creates the info subcommand.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <catalog>",
		Short: "Summarize every section in a catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	f, built, err := loadCatalog(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSHAPE\tMATERIAL\tPOINTS\tAREA\tPERIMETER\tCENTROID\tBOUNDS")
	for _, b := range built {
		d, _ := f.Section(b.Name)
		g := b.Geometry
		c := g.Centroid()
		r := g.Bounds()
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.6g\t%.6g\t(%.6g, %.6g)\t%.6g x %.6g\n",
			b.Name, d.Shape, g.Material().Name, len(g.Outline()),
			g.Area(), g.Perimeter(), c.X, c.Y, r.Width(), r.Height())
	}
	return w.Flush()
}

// newPointsCmd creates the points subcommand.
func newPointsCmd() *cobra.Command {
	pointsCmd := &cobra.Command{
		Use:   "points <catalog>",
		Short: "Dump discretized outline points",
		Long: `Dump the boundary points of catalog sections, one ring per section,
in counter-clockwise order. CSV output has one row per point; JSON
output has one object per section.`,
		Args: cobra.ExactArgs(1),
		RunE: runPoints,
	}

	pointsCmd.Flags().StringP("section", "s", "", "Dump only the named section")
	pointsCmd.Flags().StringP("format", "f", "csv", "Output format (csv, json)")

	return pointsCmd
}

func runPoints(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("section")
	if err != nil {
		return fmt.Errorf("failed to get section flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	f, built, err := loadCatalog(args[0])
	if err != nil {
		return err
	}

	if name != "" {
		var pick []sectionfile.Built
		for _, b := range built {
			if b.Name == name {
				pick = append(pick, b)
			}
		}
		if len(pick) == 0 {
			return fmt.Errorf("unknown section %q in %s", name, args[0])
		}
		built = pick
	}

	switch format {
	case "csv":
		return writePointsCSV(cmd.OutOrStdout(), built)
	case "json":
		return writePointsJSON(cmd.OutOrStdout(), f, built)
	}
	return fmt.Errorf("unknown format %q (want csv or json)", format)
}

// writePointsCSV writes one section,index,x,y row per boundary point.
// Coordinates keep full float64 precision.
func writePointsCSV(w io.Writer, built []sectionfile.Built) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "index", "x", "y"}); err != nil {
		return err
	}
	for _, b := range built {
		for i, p := range b.Geometry.Outline() {
			rec := []string{
				b.Name,
				strconv.Itoa(i),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// sectionPoints is the JSON shape of a dumped outline.
type sectionPoints struct {
	Name   string       `json:"name"`
	Shape  string       `json:"shape"`
	Points [][2]float64 `json:"points"`
}

func writePointsJSON(w io.Writer, f *sectionfile.File, built []sectionfile.Built) error {
	out := make([]sectionPoints, 0, len(built))
	for _, b := range built {
		d, _ := f.Section(b.Name)
		outline := b.Geometry.Outline()
		pts := make([][2]float64, len(outline))
		for i, p := range outline {
			pts[i] = [2]float64{p.X, p.Y}
		}
		out = append(out, sectionPoints{Name: b.Name, Shape: d.Shape, Points: pts})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// newValidateCmd creates the validate subcommand.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check every catalog section for a simple, valid outline",
		Long: `Build each section and run the full outline check: enough points,
no duplicate points, non-zero area, no self-intersection. The command
exits non-zero if any section fails.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := sectionfile.Load(args[0])
	if err != nil {
		return err
	}

	// Sections are checked independently so one bad entry does not hide
	// the status of the rest.
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	bad := 0
	for _, d := range f.Sections {
		g, err := d.Build()
		if err == nil {
			err = g.Outline().Validate()
		}
		if err != nil {
			bad++
			fmt.Fprintf(w, "%s\tFAIL\t%v\n", d.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s\tok\t\n", d.Name)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d sections failed validation", bad, len(f.Sections))
	}
	return nil
}
