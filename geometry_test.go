package lambert

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTransferAngleCollinear(t *testing.T) {
	r1 := Vector3{15945.34, 0, 0}
	for _, prograde := range []bool{true, false} {
		for _, short := range []bool{true, false} {
			if Δθ := TransferAngle(r1, r1.Scale(2.5), prograde, short, collinearε); Δθ != 0 {
				t.Fatalf("same sense collinear vectors should return 0, got %f", Δθ)
			}
			if Δθ := TransferAngle(r1, r1.Scale(-0.3), prograde, short, collinearε); Δθ != math.Pi {
				t.Fatalf("opposite sense collinear vectors should return π, got %f", Δθ)
			}
		}
	}
}

func TestTransferAngleResolution(t *testing.T) {
	r1 := Vector3{1, 0, 0}
	r2 := Vector3{0, 1, 0}
	if Δθ := TransferAngle(r1, r2, true, true, collinearε); !scalar.EqualWithinAbs(Δθ, math.Pi/2, 1e-14) {
		t.Fatalf("prograde short Δθ=%f", Δθ)
	}
	if Δθ := TransferAngle(r1, r2, true, false, collinearε); !scalar.EqualWithinAbs(Δθ, 3*math.Pi/2, 1e-14) {
		t.Fatalf("prograde long Δθ=%f", Δθ)
	}
	if Δθ := TransferAngle(r1, r2, false, true, collinearε); !scalar.EqualWithinAbs(Δθ, math.Pi/2, 1e-14) {
		t.Fatalf("retrograde short Δθ=%f", Δθ)
	}
	if Δθ := TransferAngle(r1, r2, false, false, collinearε); !scalar.EqualWithinAbs(Δθ, 3*math.Pi/2, 1e-14) {
		t.Fatalf("retrograde long Δθ=%f", Δθ)
	}
	// With the angular momentum along -z, the prograde sense is the long way around.
	r2 = Vector3{1, -1, 0}
	if Δθ := TransferAngle(r1, r2, true, false, collinearε); !scalar.EqualWithinAbs(Δθ, 7*math.Pi/4, 1e-14) {
		t.Fatalf("prograde long Δθ=%f", Δθ)
	}
	if Δθ := TransferAngle(r1, r2, false, true, collinearε); !scalar.EqualWithinAbs(Δθ, math.Pi/4, 1e-14) {
		t.Fatalf("retrograde short Δθ=%f", Δθ)
	}
}

func TestTransferAngleRevolutions(t *testing.T) {
	tr := NewTransfer(1, Vector3{1, 0, 0}, Vector3{0, 1, 0}, 1)
	tr.Revolutions = 2
	if Δθ := tr.Angle(collinearε); !scalar.EqualWithinAbs(Δθ, math.Pi/2+4*math.Pi, 1e-14) {
		t.Fatalf("Δθ=%f with two revolutions", Δθ)
	}
}

func TestTransferAngleClamped(t *testing.T) {
	// Nearly parallel and antiparallel vectors which only differ by rounding.
	base := Vector3{0.159321004, 0.579266185, 0.052359607}
	for _, k := range []float64{1, -1, 3, -7, 1e8, -1e-8} {
		for _, ε := range []float64{1e-15, 1e-13, 1e-11} {
			r2 := base.Scale(k).Add(Vector3{ε, -ε, ε})
			for _, short := range []bool{true, false} {
				if Δθ := TransferAngle(base, r2, true, short, 0); math.IsNaN(Δθ) {
					t.Fatalf("NaN transfer angle for k=%g ε=%g", k, ε)
				}
			}
		}
	}
}

func TestLambdaSign(t *testing.T) {
	r1 := Vector3{1, 0, 0}
	for θ := 0.05; θ < 2*math.Pi; θ += 0.1 {
		s, c := math.Sincos(θ)
		r2 := Vector3{1.5 * c, 1.5 * s, 0.1}
		for _, short := range []bool{true, false} {
			Δθ := TransferAngle(r1, r2, true, short, collinearε)
			p := NewParameters(1, r1, r2, 1, Δθ)
			if Δθ < math.Pi && p.Lambda <= 0 {
				t.Fatalf("λ=%f should be positive for Δθ=%f", p.Lambda, Δθ)
			}
			if Δθ >= math.Pi && p.Lambda >= 0 {
				t.Fatalf("λ=%f should be negative for Δθ=%f", p.Lambda, Δθ)
			}
			if math.Abs(p.Lambda) >= 1 {
				t.Fatalf("|λ|=%f should be within (-1, 1)", p.Lambda)
			}
		}
	}
}

func TestParameters(t *testing.T) {
	r1 := Vector3{22592.145603, -1599.915239, -19783.950506}
	r2 := Vector3{1922.067697, 4054.157051, -8925.727465}
	p := NewParameters(398600, r1, r2, 36000, TransferAngle(r1, r2, true, true, collinearε))
	if !scalar.EqualWithinAbs(p.Chord, 24023.35658705416, 1e-6) {
		t.Fatalf("c=%f", p.Chord)
	}
	if !scalar.EqualWithinAbs(p.Semiperimeter, 32043.022536124583, 1e-6) {
		t.Fatalf("s=%f", p.Semiperimeter)
	}
	if !scalar.EqualWithinAbs(p.Lambda, 0.5002779962060031, 1e-12) {
		t.Fatalf("λ=%f", p.Lambda)
	}
	if !scalar.EqualWithinAbs(p.L1, 0.11094646418373216, 1e-12) {
		t.Fatalf("l1=%f", p.L1)
	}
	if !scalar.EqualWithinAbsOrRel(p.M, 11.015429080283914, 1e-10, 1e-10) {
		t.Fatalf("m=%f", p.M)
	}
	if x0 := p.initialX(398600, 36000); x0 != p.L1 {
		t.Fatalf("x0=%f should be l1 for an elliptic transfer", x0)
	}
}

func TestParametersSingular(t *testing.T) {
	// Antiparallel endpoints at equal radii give c = s, so λ = 0 and the reconstruction divides by zero.
	r1 := Vector3{1, 0, 0}
	r2 := Vector3{-1, 0, 0}
	tr := NewTransfer(1, r1, r2, 1)
	Battin(tr, DefaultSolverConfig()) // Must not panic.
	p := NewParameters(1, r1, r2, 1, math.Pi)
	if p.Lambda != 0 {
		t.Fatalf("λ=%f expected 0", p.Lambda)
	}
}
