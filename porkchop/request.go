package porkchop

import (
	"errors"
	"fmt"
	"math"

	"github.com/hydrogendeuteride/lambert"
)

// ErrShape is returned when the arrays of a Request do not agree with each other.
var ErrShape = errors.New("inconsistent grid shape")

// States are the body states along one axis of the grid, flattened as [x0 y0 z0 x1 y1 z1 ...].
type States struct {
	Positions  []float64 // km
	Velocities []float64 // km/s
	Epochs     []float64 // Julian days
}

// Len returns the number of epochs.
func (s States) Len() int {
	return len(s.Epochs)
}

// Position returns the i-th position.
func (s States) Position(i int) lambert.Vector3 {
	return lambert.NewVector3(s.Positions[3*i:])
}

// Velocity returns the i-th velocity.
func (s States) Velocity(i int) lambert.Vector3 {
	return lambert.NewVector3(s.Velocities[3*i:])
}

func (s States) validate(name string) error {
	n := s.Len()
	if len(s.Positions) != 3*n {
		return fmt.Errorf("%w: %s has %d position components for %d epochs", ErrShape, name, len(s.Positions), n)
	}
	if len(s.Velocities) != 3*n {
		return fmt.Errorf("%w: %s has %d velocity components for %d epochs", ErrShape, name, len(s.Velocities), n)
	}
	return nil
}

// Parking is the circular orbit the transfer starts or ends at.
type Parking struct {
	Mu     float64 // Gravitational parameter of the body, km³/s²
	Radius float64 // Orbit radius, km
}

// NewParking returns the parking orbit at the provided altitude above the body.
func NewParking(body lambert.CelestialObject, altitude float64) Parking {
	return Parking{Mu: body.GM(), Radius: body.ParkingRadius(altitude)}
}

// CircularVelocity returns √(μ/r).
func (p Parking) CircularVelocity() float64 {
	return math.Sqrt(p.Mu / p.Radius)
}

// escape returns the Δv from the parking orbit to a hyperbola of characteristic energy c3.
func (p Parking) escape(c3 float64) float64 {
	vc := p.CircularVelocity()
	return math.Sqrt(2*vc*vc+c3) - vc
}

// Request is a departure epoch × arrival epoch grid. It is read only during the evaluation.
type Request struct {
	Mu             float64 // Central body gravitational parameter, km³/s²
	Departure      States
	Arrival        States
	DepartureOrbit Parking
	ArrivalOrbit   Parking
}

// Validate checks the shape of the request. Numerical content is never validated.
func (r Request) Validate() error {
	if err := r.Departure.validate("departure"); err != nil {
		return err
	}
	return r.Arrival.validate("arrival")
}
