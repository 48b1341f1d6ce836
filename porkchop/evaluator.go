package porkchop

import (
	"context"
	"runtime"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/hydrogendeuteride/lambert"
	"golang.org/x/sync/errgroup"
)

// Evaluator computes porkchop grids. Its fields must not be changed during an evaluation.
type Evaluator struct {
	Solver   lambert.SolverConfig
	Limits   Limits
	Prograde bool
	Workers  int // Maximum number of rows evaluated concurrently, at least one.
	Logger   kitlog.Logger
	Metrics  *Metrics // Optional.
}

// NewEvaluator returns a prograde evaluator with the default solver and limits, one worker per
// CPU and no logging.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Solver:   lambert.DefaultSolverConfig(),
		Limits:   DefaultLimits(),
		Prograde: true,
		Workers:  runtime.GOMAXPROCS(0),
		Logger:   kitlog.NewNopLogger(),
	}
}

type rowFunc func(req *Request, res *Result, i int) tally

// Evaluate computes every cell of the grid, one scalar cell at a time.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (*Result, error) {
	res := NewResult(req.Departure.Len(), req.Arrival.Len(), e.Limits.Unevaluated)
	return res, e.run(ctx, "scalar", &req, res, e.scalarRow)
}

// EvaluateLanes computes the same grid as Evaluate, two arrival epochs at a time.
func (e *Evaluator) EvaluateLanes(ctx context.Context, req Request) (*Result, error) {
	res := NewResult(req.Departure.Len(), req.Arrival.Len(), e.Limits.Unevaluated)
	return res, e.run(ctx, "lanes", &req, res, e.lanesRow)
}

// run validates the request and partitions the departure rows across the workers. Each row only
// writes its own slice of the result.
func (e *Evaluator) run(ctx context.Context, variant string, req *Request, res *Result, row rowFunc) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if res.NumDeparture != req.Departure.Len() || res.NumArrival != req.Arrival.Len() {
		return ErrShape
	}
	start := time.Now()
	tallies := make([]tally, res.NumDeparture)
	g, ctx := errgroup.WithContext(ctx)
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for i := 0; i < res.NumDeparture; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tallies[i] = row(req, res, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var total tally
	for _, t := range tallies {
		total.add(t)
	}
	elapsed := time.Since(start)
	if e.Metrics != nil {
		e.Metrics.observe(variant, total, elapsed)
	}
	if e.Logger != nil {
		level.Debug(e.Logger).Log("subsys", "porkchop", "variant", variant,
			"departures", res.NumDeparture, "arrivals", res.NumArrival,
			"evaluated", total.outcomes[Evaluated], "skipped", total.outcomes[Skipped], "infeasible", total.outcomes[Infeasible],
			"short", total.paths[ShortPath], "long", total.paths[LongPath], "elapsed", elapsed)
	}
	return nil
}

// cell runs one scalar cell and stores it.
func (e *Evaluator) cell(req *Request, res *Result, i, j int, depT float64, t *tally) {
	arrT := JulianToSeconds(req.Arrival.Epochs[j])
	o, feasible := e.Limits.classify(depT, arrT)
	t.outcomes[o]++
	switch {
	case feasible:
		c, p := e.solve(req, i, j, arrT-depT)
		t.paths[p]++
		res.set(i, j, c)
	case o == Infeasible:
		res.set(i, j, e.Limits.ceilings())
	default:
		res.set(i, j, e.Limits.unevaluated())
	}
}

func (e *Evaluator) scalarRow(req *Request, res *Result, i int) (t tally) {
	depT := JulianToSeconds(req.Departure.Epochs[i])
	for j := 0; j < res.NumArrival; j++ {
		e.cell(req, res, i, j, depT, &t)
	}
	return
}

// lanesRow converts epochs and builds the feasibility masks two lanes at a time. The solver has a
// data dependent iteration count, so each solved lane still goes through the scalar solve. An odd
// last arrival falls back to the scalar cell.
func (e *Evaluator) lanesRow(req *Request, res *Result, i int) (t tally) {
	depT := JulianToSeconds(req.Departure.Epochs[i])
	depLanes := splat(depT)
	minTOF := splat(e.Limits.MinTOF)
	skipBelow := splat(e.Limits.SkipBelow)
	n := res.NumArrival
	j := 0
	for ; j+1 < n; j += 2 {
		arrT := julianToSeconds2(load2(req.Arrival.Epochs[j:]))
		tof := arrT.sub(depLanes)
		infeasible := arrT.le(depLanes).or(tof.lt(minTOF))
		skipped := tof.lt(skipBelow)
		c3, dv1, total := splat(e.Limits.Unevaluated), splat(e.Limits.Unevaluated), splat(e.Limits.Unevaluated)
		for k := 0; k < 2; k++ {
			switch {
			case infeasible[k]:
				t.outcomes[Infeasible]++
			case skipped[k]:
				t.outcomes[Skipped]++
			default:
				t.outcomes[Evaluated]++
				c, p := e.solve(req, i, j+k, tof[k])
				t.paths[p]++
				c3[k], dv1[k], total[k] = c.C3, c.DepartureDV, c.TotalDV
			}
		}
		if infeasible.any() {
			c3 = blend(infeasible, splat(e.Limits.MaxC3), c3)
			dv1 = blend(infeasible, splat(e.Limits.MaxDV), dv1)
			total = blend(infeasible, splat(e.Limits.MaxDV), total)
		}
		idx := res.Index(i, j)
		c3.store(res.C3[idx:])
		dv1.store(res.DepartureDV[idx:])
		total.store(res.TotalDV[idx:])
	}
	if j < n {
		e.cell(req, res, i, j, depT, &t)
	}
	return
}
