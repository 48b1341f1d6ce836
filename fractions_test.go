package lambert

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestFractionLimits(t *testing.T) {
	conf := DefaultSolverConfig()
	// ξ(0) = 8*2/(3+1/5) = 5 and K(0) = (1/3)².
	if ξ := conf.Xi(0); !scalar.EqualWithinAbs(ξ, 5, 1e-15) {
		t.Fatalf("ξ(0)=%.16f expected 5", ξ)
	}
	if K := conf.K(0); !scalar.EqualWithinAbs(K, 1/9., 1e-15) {
		t.Fatalf("K(0)=%.16f expected 1/9", K)
	}
}

func TestXi(t *testing.T) {
	conf := DefaultSolverConfig()
	for _, c := range []struct{ x, ξ float64 }{
		{0.001, 5.0012853891945035},
		{0.5, 5.577249209661652},
		{2, 6.877030216371802},
		{19.5, 14.01709279213303},
		{-0.5, 4.245185571996769},
	} {
		if ξ := conf.Xi(c.x); !scalar.EqualWithinAbs(ξ, c.ξ, 1e-12) {
			t.Fatalf("ξ(%f)=%.16f expected %.16f", c.x, ξ, c.ξ)
		}
	}
}

func TestXiRecurrence(t *testing.T) {
	conf := DefaultSolverConfig()
	mult := conf.Xi(0.5)
	conf.XiRecurrence = Additive
	add := conf.Xi(0.5)
	if scalar.EqualWithinAbs(mult, add, 1e-4) {
		t.Fatalf("additive (%f) and multiplicative (%f) recurrences should differ", add, mult)
	}
	if !scalar.EqualWithinAbs(add, 5.575860234123529, 1e-12) {
		t.Fatalf("additive ξ(0.5)=%.16f", add)
	}
	if conf.Xi(0) != 5 {
		t.Fatal("both recurrences agree at zero")
	}
}

func TestK(t *testing.T) {
	conf := DefaultSolverConfig()
	if K := conf.K(-0.1); !scalar.EqualWithinAbs(K, 0.10797713248750608, 1e-14) {
		t.Fatalf("K(-0.1)=%.16f", K)
	}
	if K := conf.K(0.2); !scalar.EqualWithinAbs(K, 0.11851595598368378, 1e-14) {
		t.Fatalf("K(0.2)=%.16f", K)
	}
}

func TestFractionCaps(t *testing.T) {
	conf := DefaultSolverConfig()
	conf.KLevels = 0
	// Only the 4/27 level is evaluated.
	if K := conf.K(-0.1); !scalar.EqualWithinAbs(K, 0.1078906707869359, 1e-15) {
		t.Fatalf("K(-0.1)=%.16f with a single level", K)
	}
	conf.XiLevels = 0
	conf.XiRecurrence = Additive
	// No level at all: σ = 1.
	x := 0.5
	η := x / math.Pow(math.Sqrt(1+x)+1, 2)
	exp := 8 * (math.Sqrt(1+x) + 1) / (3 + 1/(5+η+(9*η/7)))
	if ξ := conf.Xi(x); !scalar.EqualWithinAbs(ξ, exp, 1e-14) {
		t.Fatalf("ξ(0.5)=%.16f without any level, expected %.16f", ξ, exp)
	}
	// A divergent argument must still terminate.
	conf = DefaultSolverConfig()
	conf.K(1e3)
	conf.Xi(-1)
}
