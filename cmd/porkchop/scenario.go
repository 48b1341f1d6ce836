package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/hydrogendeuteride/lambert"
	"github.com/hydrogendeuteride/lambert/ephemeris"
	"github.com/hydrogendeuteride/lambert/porkchop"
	"github.com/spf13/viper"
)

// side is the departure or arrival section of a scenario.
type side struct {
	body     lambert.CelestialObject
	altitude float64
	file     string // Horizons table, fetched from the API if empty.
	query    ephemeris.Query
}

func (s side) parking() porkchop.Parking {
	return porkchop.NewParking(s.body, s.altitude)
}

// states reads the ephemeris file or queries Horizons.
func (s side) states(ctx context.Context, client *ephemeris.Client) (porkchop.States, error) {
	var (
		states []ephemeris.State
		err    error
	)
	if s.file != "" {
		f, ferr := os.Open(s.file)
		if ferr != nil {
			return porkchop.States{}, ferr
		}
		defer f.Close()
		states, err = ephemeris.Parse(f)
	} else {
		states, err = client.Vectors(ctx, s.query)
	}
	if err != nil {
		return porkchop.States{}, fmt.Errorf("%s: %w", s.body.Name, err)
	}
	r, v, jd := ephemeris.Flatten(states)
	return porkchop.States{Positions: r, Velocities: v, Epochs: jd}, nil
}

type scenario struct {
	prefix     string
	outdir     string
	csv        string
	metrics    string
	workers    int
	vectorized bool
	prograde   bool
	mu         float64
	solver     lambert.SolverConfig
	limits     porkchop.Limits
	departure  side
	arrival    side
}

func readSide(v *viper.Viper, key string) (side, error) {
	body, err := lambert.CelestialObjectFromString(v.GetString(key + ".body"))
	if err != nil {
		return side{}, fmt.Errorf("%s.body: %w", key, err)
	}
	s := side{
		body:     body,
		altitude: v.GetFloat64(key + ".altitude"),
		file:     v.GetString(key + ".file"),
		query: ephemeris.Query{
			Command: body.HorizonsID,
			Start:   v.GetString(key + ".start"),
			Stop:    v.GetString(key + ".stop"),
			Step:    v.GetString(key + ".step"),
		},
	}
	if s.file == "" && (s.query.Start == "" || s.query.Stop == "") {
		return side{}, fmt.Errorf("%s needs either a file or a start and stop date", key)
	}
	return s, nil
}

func loadScenario(v *viper.Viper) (sc scenario, err error) {
	v.SetDefault("general.prefix", "porkchop")
	v.SetDefault("general.outdir", ".")
	v.SetDefault("general.vectorized", true)
	v.SetDefault("general.prograde", true)
	v.SetDefault("central.body", "sun")
	sc = scenario{
		prefix:     v.GetString("general.prefix"),
		outdir:     v.GetString("general.outdir"),
		csv:        v.GetString("general.csv"),
		metrics:    v.GetString("general.metrics"),
		workers:    v.GetInt("general.workers"),
		vectorized: v.GetBool("general.vectorized"),
		prograde:   v.GetBool("general.prograde"),
		mu:         v.GetFloat64("central.mu"),
	}
	if sc.workers <= 0 {
		sc.workers = runtime.GOMAXPROCS(0)
	}
	if sc.mu == 0 {
		central, cerr := lambert.CelestialObjectFromString(v.GetString("central.body"))
		if cerr != nil {
			return sc, fmt.Errorf("central.body: %w", cerr)
		}
		sc.mu = central.GM()
	}
	if sc.solver, err = lambert.SolverConfigFromViper(v, "solver"); err != nil {
		return
	}
	if sc.limits, err = porkchop.LimitsFromViper(v, "limits"); err != nil {
		return
	}
	if sc.departure, err = readSide(v, "departure"); err != nil {
		return
	}
	sc.arrival, err = readSide(v, "arrival")
	return
}

// request loads both ephemerides.
func (sc scenario) request(ctx context.Context, client *ephemeris.Client) (porkchop.Request, error) {
	dep, err := sc.departure.states(ctx, client)
	if err != nil {
		return porkchop.Request{}, err
	}
	arr, err := sc.arrival.states(ctx, client)
	if err != nil {
		return porkchop.Request{}, err
	}
	return porkchop.Request{
		Mu:             sc.mu,
		Departure:      dep,
		Arrival:        arr,
		DepartureOrbit: sc.departure.parking(),
		ArrivalOrbit:   sc.arrival.parking(),
	}, nil
}
