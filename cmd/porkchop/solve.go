package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/hydrogendeuteride/lambert"
	"github.com/spf13/cobra"
)

type solveOutput struct {
	Transfer string     `json:"transfer"`
	V1       [3]float64 `json:"v1"`
	V2       [3]float64 `json:"v2"`
	Conic    string     `json:"conic"`
	MissR    *float64   `json:"miss_r,omitempty"`
	MissV    *float64   `json:"miss_v,omitempty"`
}

func newSolveCmd() *cobra.Command {
	var (
		mu                     float64
		central                string
		r1, r2                 []float64
		tof                    float64
		retrograde, long, asJS bool
		revs                   int
		verify                 uint64
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single Lambert transfer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(r1) != 3 || len(r2) != 3 {
				return fmt.Errorf("r1 and r2 need three components, got %d and %d", len(r1), len(r2))
			}
			if mu == 0 {
				body, err := lambert.CelestialObjectFromString(central)
				if err != nil {
					return err
				}
				mu = body.GM()
			}
			t := lambert.NewTransfer(mu, lambert.NewVector3(r1), lambert.NewVector3(r2), tof)
			t.Prograde = !retrograde
			t.ShortPath = !long
			t.Revolutions = revs
			sol := lambert.Battin(t, lambert.DefaultSolverConfig())
			out := solveOutput{
				Transfer: t.String(),
				V1:       [3]float64{sol.V1.X, sol.V1.Y, sol.V1.Z},
				V2:       [3]float64{sol.V2.X, sol.V2.Y, sol.V2.Z},
				Conic:    lambert.NewConic(t.R1, sol.V1, mu).String(),
			}
			if verify > 0 {
				Δr, Δv, err := lambert.Residual(t, sol, verify)
				if err != nil {
					return err
				}
				out.MissR, out.MissV = &Δr, &Δv
			}
			w := cmd.OutOrStdout()
			if asJS {
				return json.NewEncoder(w).Encode(out)
			}
			fmt.Fprintf(w, "%s\nv1 = %+v\nv2 = %+v\n%s\n", out.Transfer, sol.V1, sol.V2, out.Conic)
			if out.MissR != nil {
				fmt.Fprintf(w, "propagation miss: Δr = %g, Δv = %g\n", *out.MissR, *out.MissV)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&mu, "mu", 0, "gravitational parameter, overrides --central")
	f.StringVar(&central, "central", "sun", "central body")
	f.Float64SliceVar(&r1, "r1", nil, "departure position x,y,z")
	f.Float64SliceVar(&r2, "r2", nil, "arrival position x,y,z")
	f.Float64Var(&tof, "tof", 0, "time of flight, in the time unit of mu")
	f.BoolVar(&retrograde, "retrograde", false, "retrograde transfer")
	f.BoolVar(&long, "long", false, "long path transfer")
	f.IntVar(&revs, "revs", 0, "number of complete revolutions")
	f.Uint64Var(&verify, "verify", 0, "propagate the solution with this many RK4 steps and report the miss")
	f.BoolVar(&asJS, "json", false, "JSON output")
	cmd.MarkFlagRequired("r1")
	cmd.MarkFlagRequired("r2")
	cmd.MarkFlagRequired("tof")
	return cmd
}
