// Package main provides the CLI entry point for figplot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot"
	"github.com/ukaji3/figplot-go/pkg/figplot/config"
)

var (
	configPath       string
	logLevel         string
	keepIntermediate bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "figplot",
		Short: "Render a styled line chart as SVG",
		Long: `figplot reads plot_config.json, loads the data table it names
(.csv, .xlsx or the clipboard) and writes the chart as an SVG file.`,
		Args:             cobra.NoArgs,
		SilenceUsage:     true,
		PersistentPreRun: configureLogging,
		RunE:             run,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file (.json or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().BoolVar(&keepIntermediate, "keep-intermediate", false, "Keep the intermediate PDF next to the SVG")

	rootCmd.AddCommand(newWatchCmd())
	return rootCmd
}

func configureLogging(cmd *cobra.Command, _ []string) {
	log.Configure(log.Config{Level: logLevel, Output: cmd.ErrOrStderr()})
}

// options builds the run options from the flags. An unset
// --keep-intermediate leaves the decision to the config file.
func options(cmd *cobra.Command) figplot.Options {
	opts := figplot.DefaultOptions()
	opts.ConfigPath = configPath
	if cmd.Flags().Changed("keep-intermediate") {
		keep := keepIntermediate
		opts.KeepIntermediate = &keep
	}
	return opts
}

func run(cmd *cobra.Command, _ []string) error {
	res, err := figplot.Render(options(cmd))
	if err != nil {
		return err
	}
	printSaved(cmd, res)
	return nil
}

func printSaved(cmd *cobra.Command, res *figplot.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "SVG file saved to: %s\n", res.SVGPath)
}
