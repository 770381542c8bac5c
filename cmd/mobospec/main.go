// Package main provides the CLI entry point for mobospec-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/am5hub/mobospec-go/pkg/mobospec"
	"github.com/am5hub/mobospec-go/pkg/mobospec/compare"
	"github.com/am5hub/mobospec-go/pkg/mobospec/config"
	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
	"github.com/am5hub/mobospec-go/pkg/mobospec/output"
	"github.com/am5hub/mobospec-go/pkg/mobospec/score"
	"github.com/am5hub/mobospec-go/pkg/mobospec/transform"
)

var (
	configPath  string
	verbose     bool
	pretty      bool
	outDir      string
	compareIDs  string
	changedOnly bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mobospec",
		Short: "Ingest, score, and compare motherboard spec sheets",
		Long: `mobospec ingests motherboard spec workbooks with multi-level merged
headers into structured records, and scores and compares them across
free-text value encodings (lane configs, controller names, speed tiers).`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file overriding the built-in lookup tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-sheet progress and warnings")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	exportCmd := &cobra.Command{
		Use:   "export [input.xlsx]",
		Short: "Extract a workbook and write boards/structure/controller JSON files",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "data", "Output directory")

	compareCmd := &cobra.Command{
		Use:   "compare [input.xlsx]",
		Short: "Compare selected boards field by field and print verdicts",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVar(&compareIDs, "ids", "", "Comma-separated board IDs to compare")
	compareCmd.Flags().BoolVar(&changedOnly, "changed-only", false, "Omit fields where every board matches")

	boardsCmd := &cobra.Command{
		Use:   "boards [input.xlsx]",
		Short: "List extracted board IDs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBoards,
	}

	rootCmd.AddCommand(exportCmd, compareCmd, boardsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func load(inputPath string) (*models.Dataset, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cfg, err
	}

	opts := mobospec.DefaultOptions()
	opts.Config = &cfg
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, cfg, err
		}
		defer logger.Sync()
		opts.Logger = logger
	}

	ds, err := mobospec.Extract(inputPath, opts)
	if err != nil {
		return nil, cfg, fmt.Errorf("extraction failed: %w", err)
	}
	return ds, cfg, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ds, cfg, err := load(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	structure, err := transform.AnnotateSummaries(ds.Structure, cfg.Tables.SummaryMap)
	if err != nil {
		return fmt.Errorf("annotating structure: %w", err)
	}

	files := []struct {
		name string
		v    any
	}{
		{"boards.json", ds.Boards},
		{"structure.json", structure},
		{"controllers.json", cfg.Tables.ControllerSpeeds},
	}
	for _, f := range files {
		data, err := output.ToJSON(f.v, pretty)
		if err != nil {
			return fmt.Errorf("serializing %s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(outDir, f.name), data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d boards to %s\n", len(ds.Boards), outDir)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	ds, cfg, err := load(args[0])
	if err != nil {
		return err
	}

	var ids []string
	for _, id := range strings.Split(compareIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		return fmt.Errorf("need at least two board IDs (--ids a,b)")
	}
	boards := ds.BoardsByID(ids)
	if len(boards) != len(ids) {
		return fmt.Errorf("only %d of %d IDs found; run the boards command to list them", len(boards), len(ids))
	}

	eng := compare.NewEngine(score.New(cfg.Tables))
	comparisons := mobospec.CompareBoards(eng, ds.Structure, boards)
	if changedOnly {
		comparisons = filterChanged(comparisons)
	}

	data, err := output.ToJSON(comparisons, pretty)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runBoards(cmd *cobra.Command, args []string) error {
	ds, _, err := load(args[0])
	if err != nil {
		return err
	}
	for _, b := range ds.Boards {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", b.ID, b.Brand, b.Model)
	}
	return nil
}

func filterChanged(in []mobospec.FieldComparison) []mobospec.FieldComparison {
	out := in[:0]
	for _, c := range in {
		for _, v := range c.Verdicts {
			if v.Kind != models.VerdictIdentical {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
