// Package cli wires the netrobust commands: the default run over a workbook,
// `sheets` to list its tables and `simulate` for random null-model networks.
package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/netrobust/config"
	"github.com/katalvlaran/netrobust/pipeline"
	"github.com/katalvlaran/netrobust/sheet"
)

// ErrTablesFailed is returned when at least one table could not be analyzed.
var ErrTablesFailed = errors.New("cli: some tables failed")

type rootFlags struct {
	verbose    bool
	configPath string
	sheets     []string
	output     string
	plotDir    string
	plotFormat string
	workers    int
	denom      string
	nonZero    bool
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	rf := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:          "netrobust [workbook]",
		Short:        "Robustness curves of plant-pollinator networks under targeted pollinator loss.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         newRunAction(ctx, rf),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&rf.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if rf.verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	def := config.Default()
	rootCmd.Flags().StringVarP(&rf.configPath, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringSliceVarP(&rf.sheets, "sheet", "s", nil, "table to analyze (repeatable, default all)")
	rootCmd.Flags().StringVarP(&rf.output, "output", "o", def.Output, "result file (.xlsx or .csv)")
	rootCmd.Flags().StringVar(&rf.plotDir, "plot-dir", "", "directory for one chart per table")
	rootCmd.Flags().StringVar(&rf.plotFormat, "plot-format", def.PlotFormat, "chart format: png, svg or pdf")
	rootCmd.Flags().IntVarP(&rf.workers, "workers", "w", 0, "tables processed concurrently (0 = one per CPU)")
	rootCmd.Flags().StringVar(&rf.denom, "denominator", def.Denominator, "x-axis denominator: plants or pollinators")
	rootCmd.Flags().BoolVar(&rf.nonZero, "nonzero", false, "treat any non-zero cell as an interaction")

	rootCmd.AddCommand(newSheetsCommand(ctx), newSimulateCommand())

	return rootCmd
}

func newRunAction(ctx context.Context, rf *rootFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags(), rf, args)
		if err != nil {
			return err
		}
		if err = cfg.Validate(); err != nil {
			return err
		}
		log.Debugf("Reading networks from %s", cfg.Input)

		src, err := sheet.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer src.Close()

		inputs, err := pipeline.Collect(ctx, src, cfg.Sheets)
		if err != nil {
			return err
		}
		results, err := pipeline.Run(ctx, inputs, pipeline.Options{
			Workers: cfg.Workers,
			Builder: cfg.BuilderOptions(),
			Engine:  cfg.EngineOptions(),
			Logger:  log.StandardLogger(),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(out, "%s\terror: %v\n", r.Name, r.Err)
				continue
			}
			if math.IsNaN(r.Area) {
				fmt.Fprintf(out, "%s\tR=%.4f\n", r.Name, r.Score)
				continue
			}
			fmt.Fprintf(out, "%s\tR=%.4f\tarea=%.4f\n", r.Name, r.Score, r.Area)
		}

		if err = pipeline.Export(cfg.Output, results); err != nil {
			return err
		}
		log.Infof("Results written to %s", cfg.Output)

		if cfg.PlotDir != "" {
			paths, err := pipeline.Plot(ctx, cfg.PlotDir, cfg.PlotFormat, results)
			if err != nil {
				return err
			}
			log.Debugf("Wrote %d charts to %s", len(paths), cfg.PlotDir)
		}

		if failed := pipeline.Failed(results); len(failed) > 0 {
			return fmt.Errorf("%d of %d tables: %w", len(failed), len(results), ErrTablesFailed)
		}

		return nil
	}
}

// resolveConfig layers: defaults, then the config file, then explicitly set
// flags, then the positional workbook argument.
func resolveConfig(fs *pflag.FlagSet, rf *rootFlags, args []string) (config.Config, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		var err error
		if cfg, err = config.Load(rf.configPath); err != nil {
			return cfg, err
		}
	}

	if fs.Changed("sheet") {
		cfg.Sheets = rf.sheets
	}
	if fs.Changed("output") {
		cfg.Output = rf.output
	}
	if fs.Changed("plot-dir") {
		cfg.PlotDir = rf.plotDir
	}
	if fs.Changed("plot-format") {
		cfg.PlotFormat = rf.plotFormat
	}
	if fs.Changed("workers") {
		cfg.Workers = rf.workers
	}
	if fs.Changed("denominator") {
		cfg.Denominator = rf.denom
	}
	if fs.Changed("nonzero") {
		cfg.NonZeroEdges = rf.nonZero
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	return cfg, nil
}
