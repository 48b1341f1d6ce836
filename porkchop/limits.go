package porkchop

import (
	"fmt"

	"github.com/spf13/viper"
)

// Limits holds the feasibility thresholds and the sentinels written into a Result.
type Limits struct {
	MinTOF      float64 // Seconds; shorter transfers are infeasible and get the ceilings.
	SkipBelow   float64 // Seconds; shorter transfers are left at Unevaluated.
	MaxC3       float64 // km²/s²
	MaxDV       float64 // km/s
	Unevaluated float64 // Marker of cells never solved, must differ from both ceilings.
}

// DefaultLimits returns a one hour floor, a one day skip threshold, a c3 ceiling of 200 km²/s²,
// a Δv ceiling of 50 km/s and -1 as the unevaluated marker.
func DefaultLimits() Limits {
	return Limits{
		MinTOF:      3600,
		SkipBelow:   86400,
		MaxC3:       200,
		MaxDV:       50,
		Unevaluated: -1,
	}
}

// Validate returns an error if the unevaluated marker cannot be told apart from a ceiling.
func (l Limits) Validate() error {
	if l.Unevaluated == l.MaxC3 || l.Unevaluated == l.MaxDV {
		return fmt.Errorf("unevaluated marker %g collides with a ceiling (c3 %g, Δv %g)", l.Unevaluated, l.MaxC3, l.MaxDV)
	}
	return nil
}

// LimitsFromViper returns the default limits overridden by whatever is set under key.
func LimitsFromViper(v *viper.Viper, key string) (Limits, error) {
	l := DefaultLimits()
	if sub := v.Sub(key); sub != nil {
		for name, dst := range map[string]*float64{
			"mintof":      &l.MinTOF,
			"skipbelow":   &l.SkipBelow,
			"maxc3":       &l.MaxC3,
			"maxdv":       &l.MaxDV,
			"unevaluated": &l.Unevaluated,
		} {
			if sub.IsSet(name) {
				*dst = sub.GetFloat64(name)
			}
		}
	}
	return l, l.Validate()
}
