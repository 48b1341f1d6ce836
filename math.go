package lambert

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
)

// Vector3 is a Cartesian 3-vector. It is a value type and none of its methods mutate the receiver.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns a Vector3 from the first three components of s.
func NewVector3(s []float64) Vector3 {
	return Vector3{s[0], s[1], s[2]}
}

// Slice returns the components as a new slice.
func (v Vector3) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Add returns v+w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns k*v.
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{k * v.X, k * v.Y, k * v.Z}
}

// Dot returns the inner product.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X}
}

// Norm returns the Euclidean norm.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns the unit vector of v, or the nil vector if the norm of v is zero.
func (v Vector3) Unit() Vector3 {
	n := v.Norm()
	if scalar.EqualWithinAbs(n, 0, 1e-12) {
		return Vector3{}
	}
	return v.Scale(1 / n)
}

// IsZero returns whether every component is within tol of zero.
func (v Vector3) IsZero(tol float64) bool {
	return scalar.EqualWithinAbs(v.X, 0, tol) && scalar.EqualWithinAbs(v.Y, 0, tol) && scalar.EqualWithinAbs(v.Z, 0, tol)
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if scalar.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
