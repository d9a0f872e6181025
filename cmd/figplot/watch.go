package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the config or data file changes",
		Long: `watch renders once and then again each time the configuration
file or the data file it names is saved. Render errors are logged and
watching continues. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.WithComponent("cli")
	return figplot.Watch(ctx, options(cmd), func(res *figplot.Result, err error) {
		if err != nil {
			logger.Error().Err(err).Msg("render failed")
			return
		}
		printSaved(cmd, res)
	})
}
