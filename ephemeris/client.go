package ephemeris

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Horizons API endpoint.
const DefaultBaseURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

// Query selects a VECTORS table of one body, heliocentric, in km and km/s on the ecliptic.
type Query struct {
	Command string // Horizons body identifier, e.g. "399" for Earth.
	Start   string // e.g. "2026-01-01"
	Stop    string
	Step    string // e.g. "1d", "12h"
}

func (q Query) values() url.Values {
	step := q.Step
	if step == "" {
		step = "1d"
	}
	return url.Values{
		"format":     {"json"},
		"COMMAND":    {q.Command},
		"EPHEM_TYPE": {"VECTORS"},
		"CENTER":     {"500@10"},
		"START_TIME": {q.Start},
		"STOP_TIME":  {q.Stop},
		"STEP_SIZE":  {step},
		"OUT_UNITS":  {"KM-S"},
		"REF_PLANE":  {"ECLIPTIC"},
	}
}

// Client fetches Horizons tables. Requests are rate limited and retried.
type Client struct {
	BaseURL string
	HTTP    *retryablehttp.Client
	Limiter *rate.Limiter
	logger  kitlog.Logger
}

// NewClient returns a client allowing one request per second.
func NewClient(logger kitlog.Logger) *Client {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	logger = kitlog.With(logger, "subsys", "horizons")
	hc := retryablehttp.NewClient()
	hc.RetryMax = 3
	hc.RetryWaitMin = 500 * time.Millisecond
	hc.RetryWaitMax = 5 * time.Second
	hc.HTTPClient.Timeout = 10 * time.Second
	hc.Logger = leveled{logger}
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    hc,
		Limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		logger:  logger,
	}
}

// Fetch returns the raw response body of the query.
func (c *Client) Fetch(ctx context.Context, q Query) ([]byte, error) {
	if q.Command == "" || q.Start == "" || q.Stop == "" {
		return nil, fmt.Errorf("incomplete query %+v", q)
	}
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.values().Encode(), nil)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	level.Info(c.logger).Log("command", q.Command, "start", q.Start, "stop", q.Stop, "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(start))
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("horizons returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// Vectors fetches and parses the query.
func (c *Client) Vectors(ctx context.Context, q Query) ([]State, error) {
	body, err := c.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	states, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", q.Command, err)
	}
	return states, nil
}

// leveled adapts a go-kit logger to retryablehttp.LeveledLogger.
type leveled struct {
	logger kitlog.Logger
}

func (l leveled) log(lvl func(kitlog.Logger) kitlog.Logger, msg string, keysAndValues []interface{}) {
	lvl(l.logger).Log(append([]interface{}{"msg", msg}, keysAndValues...)...)
}

func (l leveled) Error(msg string, keysAndValues ...interface{}) {
	l.log(level.Error, msg, keysAndValues)
}

func (l leveled) Info(msg string, keysAndValues ...interface{}) {
	l.log(level.Info, msg, keysAndValues)
}

func (l leveled) Debug(msg string, keysAndValues ...interface{}) {
	l.log(level.Debug, msg, keysAndValues)
}

func (l leveled) Warn(msg string, keysAndValues ...interface{}) {
	l.log(level.Warn, msg, keysAndValues)
}
