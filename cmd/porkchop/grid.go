package main

import (
	"fmt"
	"os"
	"path/filepath"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/hydrogendeuteride/lambert/ephemeris"
	"github.com/hydrogendeuteride/lambert/porkchop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const dtFormat = "2006-01-02 15:04:05"

func newGridCmd(getLogger func() kitlog.Logger) *cobra.Command {
	v := viper.New()
	var scenarioFile string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Compute a porkchop plot from a scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := kitlog.With(getLogger(), "subsys", "grid")
			v.SetConfigFile(scenarioFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading scenario: %w", err)
			}
			sc, err := loadScenario(v)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			req, err := sc.request(ctx, ephemeris.NewClient(getLogger()))
			if err != nil {
				return err
			}
			level.Info(logger).Log("departure", sc.departure.body, "arrival", sc.arrival.body,
				"departures", req.Departure.Len(), "arrivals", req.Arrival.Len(), "workers", sc.workers)

			e := porkchop.NewEvaluator()
			e.Solver = sc.solver
			e.Limits = sc.limits
			e.Prograde = sc.prograde
			e.Workers = sc.workers
			e.Logger = logger
			var reg *prometheus.Registry
			if sc.metrics != "" {
				reg = prometheus.NewRegistry()
				e.Metrics = porkchop.NewMetrics(reg)
			}
			evaluate := e.Evaluate
			if sc.vectorized {
				evaluate = e.EvaluateLanes
			}
			res, err := evaluate(ctx, req)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(sc.outdir, 0o755); err != nil {
				return err
			}
			if err := porkchop.Export(sc.outdir, sc.prefix, req, res); err != nil {
				return err
			}
			if sc.csv != "" {
				if err := writeCSVFile(filepath.Join(sc.outdir, sc.csv), req, res); err != nil {
					return err
				}
			}
			if reg != nil {
				if err := prometheus.WriteToTextfile(filepath.Join(sc.outdir, sc.metrics), reg); err != nil {
					return err
				}
			}
			printOptimum(cmd, req, res, sc.limits)
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "scenario file (TOML, YAML or JSON)")
	cmd.Flags().Int("workers", 0, "number of rows evaluated concurrently, overrides general.workers")
	cmd.Flags().String("outdir", "", "output directory, overrides general.outdir")
	v.BindPFlag("general.workers", cmd.Flags().Lookup("workers"))
	v.BindPFlag("general.outdir", cmd.Flags().Lookup("outdir"))
	cmd.MarkFlagRequired("scenario")
	return cmd
}

func writeCSVFile(name string, req porkchop.Request, res *porkchop.Result) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := porkchop.WriteCSV(f, req, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printOptimum(cmd *cobra.Command, req porkchop.Request, res *porkchop.Result, l porkchop.Limits) {
	w := cmd.OutOrStdout()
	s := res.Summary(l)
	fmt.Fprintf(w, "cells: %d evaluated, %d clamped, %d unevaluated, %d invalid\n", s.Evaluated, s.Clamped, s.Unevaluated, s.Invalid)
	i, j, ok := res.Optimum()
	if ok && res.At(i, j).TotalDV >= l.MaxDV {
		// Only ceiling cells are left.
		ok = false
	}
	if !ok {
		fmt.Fprintln(w, "no transfer found")
		return
	}
	c := res.At(i, j)
	dep, arr := req.Departure.Epochs[i], req.Arrival.Epochs[j]
	fmt.Fprintf(w, "=== OPTIMUM ===\ndeparture: %s (JD %.3f)\narrival:   %s (JD %.3f)\ntof: %.1f days\n",
		julian.JDToTime(dep).Format(dtFormat), dep, julian.JDToTime(arr).Format(dtFormat), arr, arr-dep)
	fmt.Fprintf(w, "c3 = %.3f km^2/s^2\tdv1 = %.3f km/s\ttotal dv = %.3f km/s\n", c.C3, c.DepartureDV, c.TotalDV)
	if s.Evaluated > 1 {
		fmt.Fprintf(w, "total dv over the evaluated cells: mean %.3f, std %.3f km/s\n", s.MeanTotalDV, s.StdTotalDV)
	}
}
