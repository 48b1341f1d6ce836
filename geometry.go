package lambert

import "math"

// ẑ is the reference axis against which the sense of motion is resolved.
var ẑ = Vector3{0, 0, 1}

// TransferAngle returns the transfer angle Δθ in [0, 2π) between r1 and r2.
// Collinear vectors (every component of r1 x r2 within tol of zero) return 0 if they point the
// same way and π otherwise. The shortPath flag reflects Δθ into [0, π], its negation into [π, 2π).
// Revolutions are not accounted for here, cf. Transfer.Angle.
func TransferAngle(r1, r2 Vector3, prograde, shortPath bool, tol float64) float64 {
	h := r1.Cross(r2)
	if h.IsZero(tol) {
		if r1.Dot(r2) >= 0 {
			return 0
		}
		return math.Pi
	}
	α := ẑ.Dot(h.Unit())
	cosθ := math.Max(-1, math.Min(1, r1.Dot(r2)/(r1.Norm()*r2.Norm())))
	θ0 := math.Acos(cosθ)

	var Δθ float64
	if prograde {
		if α > 0 {
			Δθ = θ0
		} else {
			Δθ = 2*math.Pi - θ0
		}
	} else {
		if α < 0 {
			Δθ = θ0
		} else {
			Δθ = 2*math.Pi - θ0
		}
	}

	if shortPath {
		if Δθ > math.Pi {
			Δθ = 2*math.Pi - Δθ
		}
	} else if Δθ < math.Pi {
		Δθ = 2*math.Pi - Δθ
	}
	return Δθ
}
