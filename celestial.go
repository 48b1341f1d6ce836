package lambert

import (
	"fmt"
	"math"
	"strings"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// CelestialObject defines a celestial object.
type CelestialObject struct {
	Name       string
	HorizonsID string // JPL Horizons COMMAND identifier
	Radius     float64
	μ          float64
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// ParkingRadius returns the radius of a circular parking orbit at the provided altitude.
func (c CelestialObject) ParkingRadius(altitude float64) float64 {
	return c.Radius + altitude
}

// CircularVelocity returns the circular orbit velocity at the provided radius.
func (c CelestialObject) CircularVelocity(radius float64) float64 {
	return math.Sqrt(c.μ / radius)
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined planet '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", "10", 695700, 1.32712440018e11}

// Mercury is hot.
var Mercury = CelestialObject{"Mercury", "199", 2439.7, 2.2032e4}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", "299", 6051.8, 3.24858599e5}

// Earth is home.
var Earth = CelestialObject{"Earth", "399", 6378.1363, 3.986004418e5}

// Moon is where we went.
var Moon = CelestialObject{"Moon", "301", 1737.4, 4.9028e3}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", "499", 3396.19, 4.28283100e4}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", "599", 71492.0, 1.266865361e8}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", "699", 60268.0, 3.7931208e7}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", "799", 25559.0, 5.7939513e6}

// Neptune is windy.
var Neptune = CelestialObject{"Neptune", "899", 24764.0, 6.836529e6}

// Pluto is not a planet and had that down ranking coming. It should have stayed in its lane.
var Pluto = CelestialObject{"Pluto", "999", 1188.3, 8.71e2}
