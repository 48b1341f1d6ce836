package integrator

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// decay integrates dy/dt = -y from y(0) = 1.
type decay struct {
	state []float64
	steps uint64
}

func (d *decay) GetState() []float64 {
	return d.state
}

func (d *decay) SetState(i uint64, s []float64) {
	d.state = s
}

func (d *decay) Stop(i uint64) bool {
	return i >= d.steps
}

func (d *decay) Func(t float64, s []float64) []float64 {
	return []float64{-s[0]}
}

// oscillator integrates a second derivative of -x from x(0) = 1 at rest.
type oscillator struct {
	state []float64
	steps uint64
}

func (o *oscillator) GetState() []float64 {
	return o.state
}

func (o *oscillator) SetState(i uint64, s []float64) {
	o.state = s
}

func (o *oscillator) Stop(i uint64) bool {
	return i >= o.steps
}

func (o *oscillator) Func(t float64, s []float64) []float64 {
	return []float64{s[1], -s[0]}
}

func TestRK4Decay(t *testing.T) {
	d := &decay{state: []float64{1}, steps: 100}
	rk, err := NewRK4(0, 0.01, d)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	iterNum, xi := rk.Solve()
	if iterNum != 100 {
		t.Fatalf("expected 100 iterations, got %d", iterNum)
	}
	if !scalar.EqualWithinAbs(xi, 1, 1e-12) {
		t.Fatalf("final x=%f expected 1", xi)
	}
	if !scalar.EqualWithinAbs(d.state[0], math.Exp(-1), 1e-9) {
		t.Fatalf("y(1)=%.12f expected %.12f", d.state[0], math.Exp(-1))
	}
}

func TestRK4Oscillator(t *testing.T) {
	o := &oscillator{state: []float64{1, 0}, steps: 1000}
	rk, err := NewRK4(0, 2*math.Pi/1000, o)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	rk.Solve()
	if !floats.EqualApprox(o.state, []float64{1, 0}, 1e-8) {
		t.Fatalf("state after one period %+v", o.state)
	}
}

func TestRK4Errors(t *testing.T) {
	if _, err := NewRK4(0, 0, &decay{}); err == nil {
		t.Fatal("err should not be nil for a zero step size")
	}
	if _, err := NewRK4(0, 1, nil); err == nil {
		t.Fatal("err should not be nil for a nil integrable")
	}
}
