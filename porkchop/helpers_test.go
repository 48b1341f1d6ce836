package porkchop

import (
	"math"

	"github.com/hydrogendeuteride/lambert"
)

// circular returns the states of a body on a slightly inclined circular heliocentric orbit.
func circular(radius, periodDays, phase float64, epochs []float64) States {
	s := States{Epochs: epochs}
	vc := math.Sqrt(lambert.Sun.GM() / radius)
	for _, jd := range epochs {
		θ := phase + 2*math.Pi*(jd-J2000)/periodDays
		sθ, cθ := math.Sincos(θ)
		s.Positions = append(s.Positions, radius*cθ, radius*sθ, 0.03*radius*sθ)
		s.Velocities = append(s.Velocities, -vc*sθ, vc*cθ, 0.03*vc*cθ)
	}
	return s
}

// earthMars is a 4x7 grid with one skipped cell, six infeasible cells and 21 evaluated cells.
func earthMars() Request {
	dep := []float64{2460000, 2460010, 2460020, 2460030}
	arr := []float64{2460000.5, 2460010.02, 2460150, 2460200, 2460250, 2460300, 2460350}
	return Request{
		Mu:             lambert.Sun.GM(),
		Departure:      circular(lambert.AU, 365.25, 0.2, dep),
		Arrival:        circular(1.524*lambert.AU, 686.98, 1.1, arr),
		DepartureOrbit: NewParking(lambert.Earth, 200),
		ArrivalOrbit:   NewParking(lambert.Mars, 300),
	}
}

// branchTotals independently computes the c3, departure Δv and total Δv of both branches.
func branchTotals(req Request, i, j int, l Limits) (short, long Cell) {
	tof := JulianToSeconds(req.Arrival.Epochs[j]) - JulianToSeconds(req.Departure.Epochs[i])
	cells := make([]Cell, 2)
	for k, shortPath := range []bool{true, false} {
		t := lambert.NewTransfer(req.Mu, req.Departure.Position(i), req.Arrival.Position(j), tof)
		t.ShortPath = shortPath
		sol := lambert.Battin(t, lambert.DefaultSolverConfig())
		c3 := math.Pow(sol.V1.Sub(req.Departure.Velocity(i)).Norm(), 2)
		if c3 > l.MaxC3 {
			c3 = l.MaxC3
		}
		vcd := req.DepartureOrbit.CircularVelocity()
		vca := req.ArrivalOrbit.CircularVelocity()
		c3a := math.Pow(req.Arrival.Velocity(j).Sub(sol.V2).Norm(), 2)
		dv1 := math.Sqrt(2*vcd*vcd+c3) - vcd
		cells[k] = Cell{C3: c3, DepartureDV: dv1, TotalDV: dv1 + math.Sqrt(2*vca*vca+c3a) - vca}
	}
	return cells[0], cells[1]
}
