package main

import (
	"bytes"
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/hydrogendeuteride/lambert"
	"github.com/hydrogendeuteride/lambert/ephemeris"
	"github.com/spf13/cobra"
)

// horizonsCommand accepts a body name of the catalog or a raw Horizons identifier.
func horizonsCommand(body string) string {
	if obj, err := lambert.CelestialObjectFromString(body); err == nil {
		return obj.HorizonsID
	}
	return body
}

func newFetchCmd(getLogger func() kitlog.Logger) *cobra.Command {
	var q ephemeris.Query
	var body, out string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a Horizons VECTORS table usable as a scenario ephemeris file",
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Command = horizonsCommand(body)
			c := ephemeris.NewClient(getLogger())
			raw, err := c.Fetch(cmd.Context(), q)
			if err != nil {
				return err
			}
			// Make sure the table is usable before saving it.
			if _, err := ephemeris.Parse(bytes.NewReader(raw)); err != nil {
				return fmt.Errorf("%s: %w", body, err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			return os.WriteFile(out, raw, 0o644)
		},
	}
	f := cmd.Flags()
	f.StringVar(&body, "body", "", "body name (e.g. mars) or Horizons identifier (e.g. 499)")
	f.StringVar(&q.Start, "start", "", "start date, e.g. 2026-01-01")
	f.StringVar(&q.Stop, "stop", "", "stop date")
	f.StringVar(&q.Step, "step", "1d", "step size, e.g. 1d or 12h")
	f.StringVarP(&out, "out", "o", "", "output file, stdout if empty")
	cmd.MarkFlagRequired("body")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("stop")
	return cmd
}
