package porkchop

// lane2 is a two wide float64 register. Every operation is lane wise.
type lane2 [2]float64

// mask2 is the per lane result of a comparison.
type mask2 [2]bool

func splat(x float64) lane2 {
	return lane2{x, x}
}

func load2(s []float64) lane2 {
	return lane2{s[0], s[1]}
}

func (a lane2) store(dst []float64) {
	dst[0], dst[1] = a[0], a[1]
}

func (a lane2) sub(b lane2) lane2 {
	return lane2{a[0] - b[0], a[1] - b[1]}
}

// mul rounds each product, cf. JulianToSeconds.
func (a lane2) mul(b lane2) lane2 {
	return lane2{float64(a[0] * b[0]), float64(a[1] * b[1])}
}

func (a lane2) le(b lane2) mask2 {
	return mask2{a[0] <= b[0], a[1] <= b[1]}
}

func (a lane2) lt(b lane2) mask2 {
	return mask2{a[0] < b[0], a[1] < b[1]}
}

func (m mask2) or(n mask2) mask2 {
	return mask2{m[0] || n[0], m[1] || n[1]}
}

func (m mask2) any() bool {
	return m[0] || m[1]
}

// blend returns ifSet in the lanes where m is set and ifUnset elsewhere.
func blend(m mask2, ifSet, ifUnset lane2) lane2 {
	r := ifUnset
	for k := range m {
		if m[k] {
			r[k] = ifSet[k]
		}
	}
	return r
}

var (
	j2000Lanes         = splat(J2000)
	secondsPerDayLanes = splat(secondsPerDay)
)

// julianToSeconds2 is the two lane JulianToSeconds.
func julianToSeconds2(jd lane2) lane2 {
	return jd.sub(j2000Lanes).mul(secondsPerDayLanes)
}
