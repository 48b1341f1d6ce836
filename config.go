package lambert

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Recurrence selects the form of the ξ continued fraction recurrence.
type Recurrence uint8

const (
	// Multiplicative is the published Battin recurrence δ = 1/(1+γηδ).
	Multiplicative Recurrence = iota
	// Additive is the legacy recurrence δ = 1/(1+γ+η+δ). It converges to a different value and
	// only exists for parity with old outputs.
	Additive
)

func (r Recurrence) String() string {
	switch r {
	case Multiplicative:
		return "multiplicative"
	case Additive:
		return "additive"
	default:
		panic("unknown recurrence")
	}
}

// RecurrenceFromString returns the recurrence from its name.
func RecurrenceFromString(name string) (Recurrence, error) {
	switch strings.ToLower(name) {
	case "", "multiplicative":
		return Multiplicative, nil
	case "additive":
		return Additive, nil
	default:
		return Multiplicative, fmt.Errorf("undefined recurrence '%s'", name)
	}
}

const (
	// DefaultMaxIter is the default cap of the fixed point iteration.
	DefaultMaxIter = 100
	// DefaultTolerance is the default convergence tolerance on x.
	DefaultTolerance = 1e-10
	xiLevels         = 125
	kLevels          = 1000
	fractionε        = 1e-18 // Continued fraction term tolerance
	collinearε       = 1e-10 // Component tolerance on r1 x r2
)

// SolverConfig holds every tunable of the Battin solver.
type SolverConfig struct {
	MaxIter            int     // Fixed point iteration cap, zero means no iteration at all.
	Tolerance          float64 // Convergence tolerance on |x_{n+1} - x_n|.
	XiLevels           int     // ξ continued fraction depth cap.
	XiTolerance        float64 // ξ term tolerance.
	KLevels            int     // K continued fraction depth cap.
	KTolerance         float64 // K term tolerance.
	CollinearTolerance float64
	XiRecurrence       Recurrence
}

// DefaultSolverConfig returns the configuration used by the single transfer boundary and the grid.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxIter:            DefaultMaxIter,
		Tolerance:          DefaultTolerance,
		XiLevels:           xiLevels,
		XiTolerance:        fractionε,
		KLevels:            kLevels,
		KTolerance:         fractionε,
		CollinearTolerance: collinearε,
		XiRecurrence:       Multiplicative,
	}
}

// SolverConfigFromViper returns the default configuration overridden by whatever is set under the
// provided key (e.g. "solver.maxiter").
func SolverConfigFromViper(v *viper.Viper, key string) (SolverConfig, error) {
	conf := DefaultSolverConfig()
	sub := v.Sub(key)
	if sub == nil {
		return conf, nil
	}
	for name, dst := range map[string]*int{
		"maxiter":  &conf.MaxIter,
		"xilevels": &conf.XiLevels,
		"klevels":  &conf.KLevels,
	} {
		if sub.IsSet(name) {
			*dst = sub.GetInt(name)
		}
	}
	for name, dst := range map[string]*float64{
		"tolerance":          &conf.Tolerance,
		"xitolerance":        &conf.XiTolerance,
		"ktolerance":         &conf.KTolerance,
		"collineartolerance": &conf.CollinearTolerance,
	} {
		if sub.IsSet(name) {
			*dst = sub.GetFloat64(name)
		}
	}
	if sub.IsSet("recurrence") {
		rec, err := RecurrenceFromString(sub.GetString("recurrence"))
		if err != nil {
			return conf, err
		}
		conf.XiRecurrence = rec
	}
	if conf.MaxIter < 0 {
		return conf, fmt.Errorf("%s.maxiter must be positive or zero, got %d", key, conf.MaxIter)
	}
	return conf, nil
}
