// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsq/config"
	"github.com/katalvlaran/magicsq/logging"
)

// rootOptions holds the flags shared by the analysis commands.
type rootOptions struct {
	configPath  string
	gridFile    string
	out         string
	findingsOut string
	metricsOut  string
	threshold   float64
	workers     int
	pretty      bool
	watch       bool
	noTimestamp bool
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:   "magicsq",
		Short: "Search a magic-square grid for hidden text and numeric patterns",
		Long: `magicsq extracts sequences from an N×N grid (strides, transposes, rows,
columns, diagonals, spirals, rotations, key-derived positions), runs them
through numeric transforms, decodes them as ASCII and reports every
finding ranked by printable-character validity.

Without --grid-file or a grid in the config file the 5×5 reference
square (magic constant 3301) is analyzed.

Examples:
  # Analyze the reference square
  magicsq

  # Analyze a grid file with a lower threshold, rendering to the terminal
  magicsq analyze --grid-file square.txt --threshold 0.6 --pretty

  # Re-run whenever the grid or config changes
  magicsq --config magicsq.yaml --watch`,
		Version:       version,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, o)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pf.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&o.logFormat, "log-format", "", "log format: console or json")

	addAnalysisFlags(root, o)

	analyze := &cobra.Command{
		Use:   "analyze",
		Short: "Run the analysis and write the report (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, o)
		},
	}
	addAnalysisFlags(analyze, o)

	root.AddCommand(analyze, newProvisionCmd(o), newVersionCmd())

	return root
}

func addAnalysisFlags(cmd *cobra.Command, o *rootOptions) {
	f := cmd.Flags()
	f.StringVarP(&o.gridFile, "grid-file", "g", "", "text grid file to analyze")
	f.StringVarP(&o.out, "out", "o", "", "report path (default "+config.DefaultOutputPath+")")
	f.StringVar(&o.findingsOut, "findings-out", "", "also export findings as YAML to this path")
	f.StringVar(&o.metricsOut, "metrics-out", "", "also write Prometheus metrics in textfile format to this path")
	f.Float64VarP(&o.threshold, "threshold", "t", 0, "validity threshold in [0,1] (default 0.8)")
	f.IntVarP(&o.workers, "workers", "w", 0, "parallel stride-sweep workers (default 1)")
	f.BoolVar(&o.pretty, "pretty", false, "render the report to stdout")
	f.BoolVar(&o.watch, "watch", false, "re-run when the config or grid file changes")
	f.BoolVar(&o.noTimestamp, "no-timestamp", false, "omit time, elapsed time and run ID from the report")
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("grid-file") {
		cfg.GridFile = o.gridFile
		cfg.Grid = nil
	}
	if changed("out") {
		cfg.Output.Path = o.out
	}
	if changed("findings-out") {
		cfg.Output.FindingsPath = o.findingsOut
	}
	if changed("metrics-out") {
		cfg.Output.MetricsPath = o.metricsOut
	}
	if changed("threshold") {
		cfg.Analysis.Threshold = o.threshold
	}
	if changed("workers") {
		cfg.Analysis.Workers = o.workers
	}
	if o.noTimestamp {
		cfg.Output.Timestamp = false
	}
	o.applyLogging(&cfg.Logging)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (o *rootOptions) applyLogging(c *logging.Config) {
	if o.logLevel != "" {
		c.Level = o.logLevel
	}
	if o.logFormat != "" {
		c.Format = o.logFormat
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "magicsq %s\n", version)
			return err
		},
	}
}
