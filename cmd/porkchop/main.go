package main

import (
	"io"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"
)

func newLogger(w io.Writer, verbose bool) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func newRootCmd() *cobra.Command {
	var verbose bool
	var logger kitlog.Logger
	root := &cobra.Command{
		Use:           "porkchop",
		Short:         "Battin Lambert solver and porkchop plot generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug records")
	getLogger := func() kitlog.Logger { return logger }
	root.AddCommand(newSolveCmd(), newGridCmd(getLogger), newFetchCmd(getLogger))
	return root
}

func logFailure(w io.Writer, err error) {
	level.Error(newLogger(w, false)).Log("err", err)
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logFailure(os.Stderr, err)
		os.Exit(1)
	}
}
