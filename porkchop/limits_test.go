package porkchop

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLimitsFromViper(t *testing.T) {
	v := viper.New()
	v.Set("limits.maxc3", 100)
	v.Set("limits.skipbelow", 0)
	l, err := LimitsFromViper(v, "limits")
	if err != nil {
		t.Fatalf("err %s", err)
	}
	exp := DefaultLimits()
	exp.MaxC3 = 100
	exp.SkipBelow = 0
	if l != exp {
		t.Fatalf("got %+v expected %+v", l, exp)
	}
	if l, err := LimitsFromViper(viper.New(), "limits"); err != nil || l != DefaultLimits() {
		t.Fatalf("defaults %+v %v", l, err)
	}
	v.Set("limits.unevaluated", 50)
	if _, err := LimitsFromViper(v, "limits"); err == nil {
		t.Fatal("an unevaluated marker equal to the Δv ceiling should fail")
	}
}
