package lambert

import "math"

// Xi evaluates Battin's ξ(x) continued fraction.
// It always terminates: either the running term falls under XiTolerance or the depth reaches XiLevels.
func (c SolverConfig) Xi(x float64) float64 {
	sq := math.Sqrt(1+x) + 1
	η := x / (sq * sq)
	δ, u, σ, m := 0., 1., 1., 1.
	for math.Abs(u) > c.XiTolerance && m <= float64(c.XiLevels) {
		m++
		γ := (m + 3) * (m + 3) / (4*(m+3)*(m+3) - 1)
		if c.XiRecurrence == Additive {
			δ = 1 / (1 + γ + η + δ)
		} else {
			δ = 1 / (1 + γ*η*δ)
		}
		u *= δ - 1
		σ += u
	}
	return 8 * sq / (3 + 1/(5+η+(9*η/7)*σ))
}

// K evaluates Battin's K(u) continued fraction.
// The first level uses γ = 4/27, each further level n adds two terms with alternating
// coefficients. It terminates when |u0| falls under KTolerance or n exceeds KLevels.
func (c SolverConfig) K(u float64) float64 {
	δ, u0, σ := 1., 1., 1.
	step := func(γ float64) {
		δ = 1 / (1 - γ*u*δ)
		u0 *= δ - 1
		σ += u0
	}
	for n := 0.; math.Abs(u0) > c.KTolerance && n <= float64(c.KLevels); n++ {
		if n == 0 {
			step(4. / 27)
			continue
		}
		denom := 9 * (4*n - 1) * (4*n + 1)
		step(2 * (3*n + 1) * (6*n - 1) / denom)
		step(2 * (3*n + 2) * (6*n + 1) / denom)
	}
	return (σ / 3) * (σ / 3)
}
