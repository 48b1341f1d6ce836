package lambert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Conic defines a transfer arc via its classical orbital elements, angles in radians.
type Conic struct {
	a, e, i, Ω, ω, ν float64
	μ                float64
}

// NewConic returns the orbital elements from the R and V vectors.
// Hyperbolic arcs have a negative semi major axis.
func NewConic(r, v Vector3, μ float64) Conic {
	// From Vallado's RV2COE, page 113
	hVec := r.Cross(v)
	n := ẑ.Cross(hVec)
	vN := v.Norm()
	rN := r.Norm()
	ξ := (vN*vN)/2 - μ/rN
	a := -μ / (2 * ξ)
	eVec := r.Scale(vN*vN - μ/rN).Sub(v.Scale(r.Dot(v))).Scale(1 / μ)
	e := eVec.Norm()
	i := math.Acos(hVec.Z / hVec.Norm())
	ω := math.Acos(n.Dot(eVec) / (n.Norm() * e))
	if math.IsNaN(ω) {
		ω = 0
	}
	if eVec.Z < 0 {
		ω = 2*math.Pi - ω
	}
	Ω := math.Acos(n.X / n.Norm())
	if math.IsNaN(Ω) {
		// Equatorial
		Ω = 0
	}
	if n.Y < 0 {
		Ω = 2*math.Pi - Ω
	}
	cosν := eVec.Dot(r) / (e * rN)
	if abscosν := math.Abs(cosν); abscosν > 1 && scalar.EqualWithinAbs(abscosν, 1, 1e-12) {
		cosν = sign(cosν)
	}
	ν := math.Acos(cosν)
	if r.Dot(v) < 0 {
		ν = 2*math.Pi - ν
	}
	// Fix rounding errors.
	i = math.Mod(i, 2*math.Pi)
	Ω = math.Mod(Ω, 2*math.Pi)
	ω = math.Mod(ω, 2*math.Pi)
	ν = math.Mod(ν, 2*math.Pi)
	return Conic{a, e, i, Ω, ω, ν, μ}
}

// Elements returns the six classical orbital elements.
func (o Conic) Elements() (a, e, i, Ω, ω, ν float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.ν
}

// Energyξ returns the specific mechanical energy ξ.
func (o Conic) Energyξ() float64 {
	return -o.μ / (2 * o.a)
}

// Periapsis returns the periapsis radius.
func (o Conic) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// Period returns the period of this orbit in the time unit of μ, or +Inf for open conics.
func (o Conic) Period() float64 {
	if o.e >= 1 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(o.a*o.a*o.a/o.μ)
}

func (o Conic) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.ν))
}
