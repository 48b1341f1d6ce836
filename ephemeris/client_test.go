package ephemeris

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	kitlog "github.com/go-kit/kit/log"
	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

func testClient(url string, logs *bytes.Buffer) *Client {
	c := NewClient(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(logs)))
	c.BaseURL = url
	c.HTTP.RetryWaitMin = time.Millisecond
	c.HTTP.RetryWaitMax = time.Millisecond
	c.Limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestClientVectors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		q := r.URL.Query()
		for key, exp := range map[string]string{
			"format": "json", "COMMAND": "399", "EPHEM_TYPE": "VECTORS", "CENTER": "500@10",
			"START_TIME": "2023-02-25", "STOP_TIME": "2023-02-27", "STEP_SIZE": "1d",
			"OUT_UNITS": "KM-S", "REF_PLANE": "ECLIPTIC",
		} {
			if got := q.Get(key); got != exp {
				t.Errorf("%s=%q expected %q", key, got, exp)
			}
		}
		json.NewEncoder(w).Encode(map[string]string{"result": earthTable})
	}))
	defer srv.Close()

	var logs bytes.Buffer
	c := testClient(srv.URL, &logs)
	states, err := c.Vectors(context.Background(), Query{Command: "399", Start: "2023-02-25", Stop: "2023-02-27"})
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if len(states) != 2 {
		t.Fatalf("%d states", len(states))
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("%d calls, expected one retry", n)
	}
	if !strings.Contains(logs.String(), "subsys=horizons") || !strings.Contains(logs.String(), "status=200") {
		t.Fatalf("unexpected logs\n%s", logs.String())
	}
}

func TestClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("COMMAND") {
		case "bad":
			http.Error(w, "unknown body", http.StatusBadRequest)
		case "empty":
			w.Write([]byte(`{"result": "no ephemeris here"}`))
		default:
			http.Error(w, "down", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	var logs bytes.Buffer
	c := testClient(srv.URL, &logs)
	c.HTTP.RetryMax = 1
	ctx := context.Background()
	if _, err := c.Vectors(ctx, Query{Command: "bad", Start: "a", Stop: "b"}); err == nil || !strings.Contains(err.Error(), "unknown body") {
		t.Fatalf("expected a 400 error, got %v", err)
	}
	if _, err := c.Vectors(ctx, Query{Command: "empty", Start: "a", Stop: "b"}); err == nil || !strings.Contains(err.Error(), ErrNoData.Error()) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := c.Vectors(ctx, Query{Command: "down", Start: "a", Stop: "b"}); err == nil {
		t.Fatal("err should not be nil once the retries are exhausted")
	}
	if _, err := c.Vectors(ctx, Query{Command: "399"}); err == nil {
		t.Fatal("err should not be nil for an incomplete query")
	}
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := c.Vectors(cancelled, Query{Command: "399", Start: "a", Stop: "b"}); err == nil {
		t.Fatal("err should not be nil for a cancelled context")
	}
}
