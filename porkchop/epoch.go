package porkchop

// J2000 is the Julian date of the J2000 epoch.
const J2000 = 2451545.0

const secondsPerDay = 86400.0

// JulianToSeconds converts a Julian date into seconds past J2000.
// The product is explicitly rounded so that it is never fused with a later subtraction.
func JulianToSeconds(jd float64) float64 {
	return float64((jd - J2000) * secondsPerDay)
}
