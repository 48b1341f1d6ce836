package lambert

import (
	"fmt"
	"math"
)

// Transfer defines a Lambert boundary value problem.
type Transfer struct {
	Mu          float64 // Gravitational parameter of the central body.
	R1, R2      Vector3
	TOF         float64 // Time of flight, in the time unit of Mu.
	Prograde    bool
	ShortPath   bool
	Revolutions int
}

// NewTransfer returns a prograde, short path, zero revolution transfer.
func NewTransfer(μ float64, r1, r2 Vector3, tof float64) Transfer {
	return Transfer{Mu: μ, R1: r1, R2: r2, TOF: tof, Prograde: true, ShortPath: true}
}

// Angle returns the transfer angle including the 2π per revolution.
func (t Transfer) Angle(tol float64) float64 {
	Δθ := TransferAngle(t.R1, t.R2, t.Prograde, t.ShortPath, tol)
	if t.Revolutions > 0 {
		Δθ += 2 * math.Pi * float64(t.Revolutions)
	}
	return Δθ
}

func (t Transfer) String() string {
	path := "short"
	if !t.ShortPath {
		path = "long"
	}
	sense := "prograde"
	if !t.Prograde {
		sense = "retrograde"
	}
	return fmt.Sprintf("%+v -> %+v in %g (%s, %s, %d rev)", t.R1, t.R2, t.TOF, sense, path, t.Revolutions)
}

// Solution holds the departure and arrival velocities of a transfer.
type Solution struct {
	V1, V2 Vector3
}

// Parameters are Battin's closed-form geometric parameters of a transfer.
type Parameters struct {
	Chord         float64
	Semiperimeter float64
	Lambda        float64 // λ, negative for Δθ >= π. λ -> -1 is singular and is propagated as is.
	L1            float64 // ((1-λ)/(1+λ))²
	M             float64 // 8μ tof² / (s³ (1+λ)⁶)
}

// NewParameters computes the Battin parameters from the transfer and its resolved angle.
func NewParameters(μ float64, r1, r2 Vector3, tof, Δθ float64) Parameters {
	c := r2.Sub(r1).Norm()
	s := (r1.Norm() + r2.Norm() + c) / 2
	λ := math.Abs(math.Sqrt(s*(s-c)) / s)
	if Δθ >= math.Pi {
		λ = -λ
	}
	l1 := (1 - λ) / (1 + λ)
	onePλ2 := (1 + λ) * (1 + λ)
	return Parameters{
		Chord:         c,
		Semiperimeter: s,
		Lambda:        λ,
		L1:            l1 * l1,
		M:             8 * μ * tof * tof / (s * s * s * onePλ2 * onePλ2 * onePλ2),
	}
}

// initialX returns l1 if the normalized time of flight exceeds the parabolic one, zero otherwise.
func (p Parameters) initialX(μ, tof float64) float64 {
	s := p.Semiperimeter
	T := math.Sqrt(8*μ/(s*s*s)) * tof
	Tp := (4. / 3) * (1 - p.Lambda*p.Lambda*p.Lambda)
	if T > Tp {
		return p.L1
	}
	return 0
}

// h returns Battin's h1 and h2 at x.
func (c SolverConfig) h(x, l1, m float64) (h1, h2 float64) {
	ξ := c.Xi(x)
	denom := (1 + 2*x + l1) * (4*x + ξ*(3+x))
	h1 = (l1 + x) * (l1 + x) * (1 + 0.3*x + ξ) / denom
	h2 = m * (x - l1 + ξ) / denom
	return
}

// iterate runs the fixed point iteration until |x - x0| <= Tolerance or MaxIter is reached.
// Both outcomes return the last iterate: non convergence is never reported.
func (c SolverConfig) iterate(x0, l1, m float64) (x, y float64) {
	for i := 0; i < c.MaxIter; i++ {
		h1, h2 := c.h(x0, l1, m)
		onePh1 := 1 + h1
		B := 27 * h2 / (4 + onePh1*onePh1*onePh1)
		u := -B / (2*math.Sqrt(1+B) + 1)
		K := c.K(u)
		y = (onePh1 / 3) * (2 + math.Sqrt(B+1)/(1-2*u*K))
		hl1 := (1 - l1) / 2
		x = math.Sqrt(hl1*hl1+m/(y*y)) - (1+l1)/2
		if math.Abs(x-x0) <= c.Tolerance {
			break
		}
		x0 = x
	}
	return
}

// velocities maps the converged (x, y) pair back to the endpoint velocities.
func (p Parameters) velocities(x, y, tof float64, r1, r2 Vector3) Solution {
	λ := p.Lambda
	onePλ2 := (1 + λ) * (1 + λ)
	r11 := onePλ2 / (4 * tof * λ)
	s11 := y * (1 + x)
	t11 := p.M * p.Semiperimeter * onePλ2 / s11
	Δr := r1.Sub(r2).Scale(s11)
	return Solution{
		V1: Δr.Sub(r1.Scale(t11 / r1.Norm())).Scale(-r11),
		V2: Δr.Add(r2.Scale(t11 / r2.Norm())).Scale(-r11),
	}
}

// Battin solves the Lambert problem with Battin's 1984 method.
// It never fails: degenerate geometries propagate infinities or NaNs in the returned velocities.
func Battin(t Transfer, conf SolverConfig) Solution {
	p := NewParameters(t.Mu, t.R1, t.R2, t.TOF, t.Angle(conf.CollinearTolerance))
	x, y := conf.iterate(p.initialX(t.Mu, t.TOF), p.L1, p.M)
	return p.velocities(x, y, t.TOF, t.R1, t.R2)
}

// SolveInto solves a short path, zero revolution transfer with the default configuration and writes
// [v1x v1y v1z v2x v2y v2z] into out.
func SolveInto(μ float64, r1, r2 []float64, tof float64, prograde bool, out []float64) {
	t := NewTransfer(μ, NewVector3(r1), NewVector3(r2), tof)
	t.Prograde = prograde
	sol := Battin(t, DefaultSolverConfig())
	out[0], out[1], out[2] = sol.V1.X, sol.V1.Y, sol.V1.Z
	out[3], out[4], out[5] = sol.V2.X, sol.V2.Y, sol.V2.Z
}
