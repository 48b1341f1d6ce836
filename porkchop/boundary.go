package porkchop

import "context"

// ComputeInto is the flat grid boundary: positions and velocities are 3*n arrays, epochs are
// Julian dates and the three outputs have numDeparture*numArrival cells. It uses the two lane
// evaluator with the default configuration and only fails on inconsistent lengths.
func ComputeInto(
	mu float64,
	r1, v1, r2, v2, d1, d2 []float64,
	numDeparture, numArrival int,
	departureMu, arrivalMu, departureRadius, arrivalRadius float64,
	c3, dv1, totalDV []float64,
) error {
	req := Request{
		Mu:             mu,
		Departure:      States{Positions: r1, Velocities: v1, Epochs: d1},
		Arrival:        States{Positions: r2, Velocities: v2, Epochs: d2},
		DepartureOrbit: Parking{Mu: departureMu, Radius: departureRadius},
		ArrivalOrbit:   Parking{Mu: arrivalMu, Radius: arrivalRadius},
	}
	n := numDeparture * numArrival
	if req.Departure.Len() != numDeparture || req.Arrival.Len() != numArrival ||
		len(c3) != n || len(dv1) != n || len(totalDV) != n {
		return ErrShape
	}
	e := NewEvaluator()
	res := &Result{NumDeparture: numDeparture, NumArrival: numArrival, C3: c3, DepartureDV: dv1, TotalDV: totalDV}
	return e.run(context.Background(), "lanes", &req, res, e.lanesRow)
}
