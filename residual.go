package lambert

import (
	"math"

	"github.com/hydrogendeuteride/lambert/integrator"
)

// twoBody is an integrator.Integrable of the Keplerian state [r v].
type twoBody struct {
	μ     float64
	state []float64
	steps uint64
}

func (b *twoBody) GetState() []float64 {
	return b.state
}

func (b *twoBody) SetState(i uint64, s []float64) {
	b.state = s
}

func (b *twoBody) Stop(i uint64) bool {
	return i >= b.steps
}

func (b *twoBody) Func(t float64, s []float64) []float64 {
	r := math.Sqrt(s[0]*s[0] + s[1]*s[1] + s[2]*s[2])
	k := -b.μ / (r * r * r)
	return []float64{s[3], s[4], s[5], k * s[0], k * s[1], k * s[2]}
}

// Residual propagates (R1, V1) over the time of flight under two-body gravity and returns the
// distance to R2 and the velocity difference to V2 at arrival.
// It is a diagnostic: non converged or singular solutions simply show up as large (or NaN) misses.
func Residual(t Transfer, sol Solution, steps uint64) (Δr, Δv float64, err error) {
	if steps == 0 {
		steps = 1000
	}
	b := &twoBody{μ: t.Mu, state: append(t.R1.Slice(), sol.V1.Slice()...), steps: steps}
	rk, err := integrator.NewRK4(0, t.TOF/float64(steps), b)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	rk.Solve()
	rf, vf := NewVector3(b.state[:3]), NewVector3(b.state[3:])
	return rf.Sub(t.R2).Norm(), vf.Sub(sol.V2).Norm(), nil
}
