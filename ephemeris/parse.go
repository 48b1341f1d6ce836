// Package ephemeris reads JPL Horizons VECTORS tables, either from a file or from the Horizons API.
package ephemeris

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/hydrogendeuteride/lambert"
	"github.com/soniakeys/meeus/v3/julian"
)

// ErrNoData is returned when the input holds no $$SOE/$$EOE block.
var ErrNoData = errors.New("no ephemeris data")

const (
	startOfEphemeris = "$$SOE"
	endOfEphemeris   = "$$EOE"
)

var (
	dateLine     = regexp.MustCompile(`^(\d+\.\d+)\s*=\s*A\.D\.\s*([\d\-A-Za-z\s:\.]+)`)
	positionLine = regexp.MustCompile(`X\s*=\s*([eE\d\.\-\+]+)\s*Y\s*=\s*([eE\d\.\-\+]+)\s*Z\s*=\s*([eE\d\.\-\+]+)`)
	velocityLine = regexp.MustCompile(`VX\s*=\s*([eE\d\.\-\+]+)\s*VY\s*=\s*([eE\d\.\-\+]+)\s*VZ\s*=\s*([eE\d\.\-\+]+)`)
)

// State is one row of a VECTORS table.
type State struct {
	JD       float64
	Calendar string // As printed by Horizons, e.g. "2023-Feb-25 00:00:00.0000 TDB".
	R        lambert.Vector3
	V        lambert.Vector3
}

// Time returns the epoch as a time.Time.
func (s State) Time() time.Time {
	return julian.JDToTime(s.JD)
}

// envelope is the body of a Horizons API response.
type envelope struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// Parse reads a VECTORS table, or the JSON envelope of the Horizons API around one, and returns
// its states in order. Lines such as LT/RG/RR between states are ignored.
func Parse(r io.Reader) ([]State, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decoding horizons response: %w", err)
		}
		if env.Error != "" {
			return nil, fmt.Errorf("horizons: %s", strings.TrimSpace(env.Error))
		}
		raw = []byte(env.Result)
	}
	return parseTable(string(raw))
}

func parseTable(table string) ([]State, error) {
	start := strings.Index(table, startOfEphemeris)
	if start < 0 {
		return nil, ErrNoData
	}
	end := strings.Index(table[start:], endOfEphemeris)
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated %s block", ErrNoData, startOfEphemeris)
	}
	// Line numbers are relative to the whole table.
	lineNo := strings.Count(table[:start], "\n") + 1
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(table[start+len(startOfEphemeris) : start+end]))
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	var states []State
	for i := 0; i < len(lines); i++ {
		m := dateLine.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		if i+2 >= len(lines) {
			return nil, fmt.Errorf("line %d: truncated state", lineNo+i)
		}
		s := State{Calendar: strings.TrimSpace(m[2])}
		jd, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+i, err)
		}
		s.JD = jd
		if s.R, err = vector(positionLine, lines[i+1]); err != nil {
			return nil, fmt.Errorf("line %d: position: %w", lineNo+i+1, err)
		}
		if s.V, err = vector(velocityLine, lines[i+2]); err != nil {
			return nil, fmt.Errorf("line %d: velocity: %w", lineNo+i+2, err)
		}
		states = append(states, s)
		i += 2
	}
	if len(states) == 0 {
		return nil, ErrNoData
	}
	return states, nil
}

func vector(re *regexp.Regexp, line string) (lambert.Vector3, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return lambert.Vector3{}, fmt.Errorf("unexpected %q", line)
	}
	var c [3]float64
	for k := range c {
		v, err := strconv.ParseFloat(m[k+1], 64)
		if err != nil {
			return lambert.Vector3{}, err
		}
		c[k] = v
	}
	return lambert.NewVector3(c[:]), nil
}

// Flatten returns the positions and velocities as [x0 y0 z0 x1 ...] and the Julian dates.
func Flatten(states []State) (positions, velocities, epochs []float64) {
	positions = make([]float64, 0, 3*len(states))
	velocities = make([]float64, 0, 3*len(states))
	epochs = make([]float64, 0, len(states))
	for _, s := range states {
		positions = append(positions, s.R.Slice()...)
		velocities = append(velocities, s.V.Slice()...)
		epochs = append(epochs, s.JD)
	}
	return
}
