// Package main provides the CLI entry point for ezgrid.
package main

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0Hughman0/ez-grid/internal/config"
	"github.com/0Hughman0/ez-grid/internal/logging"
	"github.com/0Hughman0/ez-grid/pkg/ezgrid"
	"github.com/0Hughman0/ez-grid/pkg/ezgrid/output"
)

// grid is the grid type handled by the CLI: text headings, transformed values.
type grid = ezgrid.Grid[string, string, any]

var (
	configPath   string
	outputPath   string
	pretty       bool
	keepExisting bool
	valuesMode   string
	logLevel     string

	cfg *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ezgrid",
		Short: "Inspect and edit labeled grids stored as CSV",
		Long: `ezgrid reads grids whose first record is (name, column headings...) and
whose other records are (row heading, values...), and edits them by heading.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&valuesMode, "values", "", "Value transform: text or number (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a grid as an aligned table",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	jsonCmd := &cobra.Command{
		Use:   "json FILE",
		Short: "Print a grid as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runJSON,
	}
	jsonCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	cellsCmd := &cobra.Command{
		Use:   "cells FILE",
		Short: "Print every cell as JSON, row by row",
		Args:  cobra.ExactArgs(1),
		RunE:  runCells,
	}
	cellsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	infoCmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Print name, size and spreadsheet extent of a grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	getCmd := &cobra.Command{
		Use:   "get FILE ROW COL",
		Short: "Print one value",
		Args:  cobra.ExactArgs(3),
		RunE:  runGet,
	}

	rowCmd := &cobra.Command{
		Use:   "row FILE HEADING",
		Short: "Print the values of one row, one per line",
		Args:  cobra.ExactArgs(2),
		RunE:  runRow,
	}

	colCmd := &cobra.Command{
		Use:   "col FILE HEADING",
		Short: "Print the values of one column, one per line",
		Args:  cobra.ExactArgs(2),
		RunE:  runCol,
	}

	setCmd := &cobra.Command{
		Use:   "set FILE ROW COL VALUE",
		Short: "Change one value",
		Args:  cobra.ExactArgs(4),
		RunE:  runSet,
	}

	appendRowCmd := &cobra.Command{
		Use:   "append-row FILE HEADING [VALUE...]",
		Short: "Add a row after the last one",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runAppendRow,
	}

	appendColCmd := &cobra.Command{
		Use:   "append-col FILE HEADING [VALUE...]",
		Short: "Add a column after the last one",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runAppendCol,
	}

	combineCmd := &cobra.Command{
		Use:   "combine BASE OTHER",
		Short: "Merge the columns of OTHER into BASE",
		Args:  cobra.ExactArgs(2),
		RunE:  runCombine,
	}
	combineCmd.Flags().BoolVar(&keepExisting, "keep-existing", false, "Keep BASE values in columns both grids have")

	swapRowsCmd := &cobra.Command{
		Use:   "swap-rows FILE A B",
		Short: "Exchange the positions of two rows",
		Args:  cobra.ExactArgs(3),
		RunE:  runSwapRows,
	}

	swapColsCmd := &cobra.Command{
		Use:   "swap-cols FILE A B",
		Short: "Exchange the positions of two columns",
		Args:  cobra.ExactArgs(3),
		RunE:  runSwapCols,
	}

	for _, c := range []*cobra.Command{setCmd, appendRowCmd, appendColCmd, combineCmd, swapRowsCmd, swapColsCmd} {
		c.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	}

	rootCmd.AddCommand(showCmd, jsonCmd, cellsCmd, infoCmd, getCmd, rowCmd, colCmd,
		setCmd, appendRowCmd, appendColCmd, combineCmd, swapRowsCmd, swapColsCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if valuesMode != "" {
		loaded.Grid.Values = valuesMode
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if !cmd.Flags().Changed("pretty") && loaded.Output.Pretty {
		pretty = true
	}
	cfg = loaded

	slog.SetDefault(logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()))
	slog.Debug("Running command", slog.String("command", cmd.Name()), slog.Any("args", args))
	return nil
}

// transformer returns the value transform selected by the configuration.
func transformer() ezgrid.Transformer[any] {
	if cfg != nil && cfg.Grid.Values == "number" {
		return ezgrid.Values
	}
	return ezgrid.TransformFunc[any](func(_, _, raw string) (any, error) {
		return raw, nil
	})
}

func load(path string) (*grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid: %w", err)
	}
	defer f.Close()

	g, err := ezgrid.FromText(f, transformer())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	slog.Debug("Loaded grid",
		slog.String("file", path),
		slog.String("name", g.Name()),
		slog.Int("rows", g.NumRows()),
		slog.Int("cols", g.NumCols()))
	return g, nil
}

// save writes g to the -o file, or to the command's output when none is given.
func save(cmd *cobra.Command, g *grid) error {
	if outputPath == "" {
		return g.Save(cmd.OutOrStdout())
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := g.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("Wrote grid", slog.String("file", outputPath), slog.String("name", g.Name()))
	return nil
}

// convert runs raw CLI values through the configured transform.
func convert(row, col string, raw string) (any, error) {
	return transformer().Transform(row, col, raw)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), g.String())
	return err
}

func runJSON(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	data, err := output.ToJSON(g.Snapshot(), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runCells(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	cells := slices.Collect(g.Cells())
	data, err := output.CellsToJSON(cells, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runInfo(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "name:    %s\n", g.Name())
	fmt.Fprintf(w, "rows:    %d\n", g.NumRows())
	fmt.Fprintf(w, "columns: %d\n", g.NumCols())
	_, err = fmt.Fprintf(w, "extent:  %s\n", g.Extent())
	return err
}

func runGet(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	row, err := g.RowAt(args[1])
	if err != nil {
		return err
	}
	v, err := row.Get(args[2])
	if err != nil {
		return err
	}
	if ref, err := g.Ref(args[1], args[2]); err != nil {
		slog.Warn("Cell has no A1 reference", slog.String("error", err.Error()))
	} else {
		slog.Debug("Read value", slog.String("ref", ref))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

func runRow(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	values, err := g.Row(args[1])
	if err != nil {
		return err
	}
	return printValues(cmd.OutOrStdout(), values)
}

func runCol(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	values, err := g.Col(args[1])
	if err != nil {
		return err
	}
	return printValues(cmd.OutOrStdout(), values)
}

func printValues(w io.Writer, values iter.Seq[any]) error {
	var sb strings.Builder
	for v := range values {
		fmt.Fprintln(&sb, v)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func runSet(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	v, err := convert(args[1], args[2], args[3])
	if err != nil {
		return err
	}
	if err := g.Set(args[1], args[2], v); err != nil {
		return err
	}
	return save(cmd, g)
}

func runAppendRow(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	heading, raws := args[1], args[2:]
	cols := g.ColHeadings()
	values := make([]any, len(raws))
	for i, raw := range raws {
		col := ""
		if i < len(cols) {
			col = cols[i]
		}
		if values[i], err = convert(heading, col, raw); err != nil {
			return err
		}
	}
	if err := g.AppendRow(heading, values); err != nil {
		return err
	}
	return save(cmd, g)
}

func runAppendCol(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	heading, raws := args[1], args[2:]
	rows := g.RowHeadings()
	values := make([]any, len(raws))
	for i, raw := range raws {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		if values[i], err = convert(row, heading, raw); err != nil {
			return err
		}
	}
	if err := g.AppendCol(heading, values); err != nil {
		return err
	}
	return save(cmd, g)
}

func runCombine(cmd *cobra.Command, args []string) error {
	base, err := load(args[0])
	if err != nil {
		return err
	}
	other, err := load(args[1])
	if err != nil {
		return err
	}
	before := base.NumCols()
	if err := base.Combine(other, !keepExisting); err != nil {
		return fmt.Errorf("combine failed: %w", err)
	}
	slog.Info("Combined grids",
		slog.String("base", base.Name()),
		slog.String("other", other.Name()),
		slog.Int("new_columns", base.NumCols()-before),
		slog.Bool("overwrite", !keepExisting))
	return save(cmd, base)
}

func runSwapRows(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	if err := g.SwapRows(args[1], args[2]); err != nil {
		return err
	}
	return save(cmd, g)
}

func runSwapCols(cmd *cobra.Command, args []string) error {
	g, err := load(args[0])
	if err != nil {
		return err
	}
	if err := g.SwapCols(args[1], args[2]); err != nil {
		return err
	}
	return save(cmd, g)
}
