package server

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/isleprint/internal/config"
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/ledger"
)

func testConfig() config.ServerConfig {
	return config.ServerConfig{Addr: ":0", Rate: 1000, Burst: 1000, MaxBodyBytes: 1 << 20}
}

func newTestServer(t *testing.T, cfg config.ServerConfig, load factors.LoadResult) *Server {
	t.Helper()
	s := New(Options{Config: cfg, Factors: load, Logger: zerolog.Nop()})
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	rec := do(t, s, http.MethodGet, "/api/health", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Version)
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	rec := do(t, s, http.MethodGet, "/api/catalog", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, key := range []string{"countries", "islands", "aircraft", "helicopters", "vehicles"} {
		assert.Contains(t, body, key)
	}
}

func TestFactors_Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factors:\n  electricity:\n    per_kWh: -1\n"), 0o600))

	s := newTestServer(t, testConfig(), factors.Load(path))
	rec := do(t, s, http.MethodGet, "/api/factors", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body factorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Fallback)
	assert.NotEmpty(t, body.Warning)
	assert.Equal(t, factors.SourceDefault, body.Source)
	assert.InDelta(t, 0.40, body.Factors.Lookup(factors.CategoryElectricity, factors.KeyPerKWh), 1e-12)
	assert.InDelta(t, 1.0, testutil.ToFloat64(s.Metrics().FactorsFallback), 0)
}

func TestPostTrip(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	payload := `{
		"trip": {"mode": "flight", "country": "United Kingdom", "round_trip": true},
		"island": {"vehicle": "Car (petrol)", "km_per_day": 30, "days": 3}
	}`
	rec := do(t, s, http.MethodPost, "/api/trip", strings.NewReader(payload), nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Trip struct {
			KgCO2e float64 `json:"kgco2e"`
		} `json:"trip"`
		TotalKg    float64           `json:"total_kgco2e"`
		Components []json.RawMessage `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 663.55, body.Trip.KgCO2e, 0.01)
	assert.InDelta(t, 663.55+16.2, body.TotalKg, 0.01)
	assert.Len(t, body.Components, 2)
}

func TestPostTrip_TravelerDefaults(t *testing.T) {
	type tripBody struct {
		Trip struct {
			Legs   int     `json:"legs"`
			KgCO2e float64 `json:"kgco2e"`
		} `json:"trip"`
		Island struct {
			Vehicle  string  `json:"vehicle"`
			KmPerDay float64 `json:"km_per_day"`
			Days     int     `json:"days"`
		} `json:"island"`
	}
	post := func(t *testing.T, s *Server, payload string) tripBody {
		t.Helper()
		rec := do(t, s, http.MethodPost, "/api/trip", strings.NewReader(payload), nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body tripBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("built-in defaults", func(t *testing.T) {
		s := newTestServer(t, testConfig(), factors.Load(""))
		body := post(t, s, `{"trip":{"mode":"flight"}}`)
		assert.Equal(t, 2, body.Trip.Legs)
		assert.InDelta(t, 663.55, body.Trip.KgCO2e, 0.01)
		assert.Equal(t, "Car (petrol)", body.Island.Vehicle)
		assert.Equal(t, 3, body.Island.Days)
		assert.InDelta(t, 30, body.Island.KmPerDay, 1e-9)
	})

	t.Run("configured defaults", func(t *testing.T) {
		traveler := config.Default().Traveler
		traveler.RoundTrip = false
		traveler.Days = 7
		traveler.Vehicle = "Bicycle"
		s := New(Options{Config: testConfig(), Factors: factors.Load(""), Logger: zerolog.Nop(), Traveler: traveler})
		t.Cleanup(s.Close)

		body := post(t, s, `{}`)
		assert.Equal(t, 1, body.Trip.Legs)
		assert.Equal(t, "Bicycle", body.Island.Vehicle)
		assert.Equal(t, 7, body.Island.Days)
	})

	t.Run("explicit fields win", func(t *testing.T) {
		s := newTestServer(t, testConfig(), factors.Load(""))
		body := post(t, s, `{"trip":{"round_trip":false},"island":{"days":1,"km_per_day":0}}`)
		assert.Equal(t, 1, body.Trip.Legs)
		assert.Equal(t, 1, body.Island.Days)
		assert.Zero(t, body.Island.KmPerDay)
	})
}

func TestPostTrip_Errors(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"unknown field", `{"trip":{}, "island":{"days":1}, "extra":1}`, http.StatusBadRequest},
		{"unknown country", `{"trip":{"country":"Atlantis"}, "island":{"days":1}}`, http.StatusBadRequest},
		{"zero days", `{"trip":{}, "island":{"days":0}}`, http.StatusBadRequest},
		{"bad mode", `{"trip":{"mode":"ferry"}, "island":{"days":1}}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/trip", strings.NewReader(tt.payload), nil)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestPostTrip_PDF(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	rec := do(t, s, http.MethodPost, "/api/trip?format=pdf",
		strings.NewReader(`{"trip":{"round_trip":true},"island":{"km_per_day":30,"days":3}}`), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestPostLedger_JSON(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	rec := do(t, s, http.MethodPost, "/api/ledger", bytes.NewReader(ledger.SampleCSV), nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		FactorsFallback bool `json:"factors_fallback"`
		Summary         struct {
			TotalT    float64 `json:"total_tco2e"`
			Records   int     `json:"records"`
			Unmatched int     `json:"unmatched_records"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.FactorsFallback)
	assert.Equal(t, 24, body.Summary.Records)
	assert.Equal(t, 1, body.Summary.Unmatched)
	assert.InDelta(t, 21632.095, body.Summary.TotalT, 1e-6)

	assert.InDelta(t, 24.0, testutil.ToFloat64(s.Metrics().RowsEvaluated), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(s.Metrics().UnmatchedRows), 0)
}

func TestPostLedger_CSV(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))

	for name, mod := range map[string]func() (string, map[string]string){
		"query":  func() (string, map[string]string) { return "/api/ledger?format=csv", nil },
		"accept": func() (string, map[string]string) { return "/api/ledger", map[string]string{"Accept": "text/csv"} },
	} {
		t.Run(name, func(t *testing.T) {
			target, header := mod()
			rec := do(t, s, http.MethodPost, target, bytes.NewReader(ledger.SampleCSV), header)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
			records, err := csv.NewReader(rec.Body).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, 25)
			assert.Equal(t, ledger.ColumnTCO2e, records[0][len(records[0])-1])
		})
	}
}

func TestPostLedger_PDF(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	rec := do(t, s, http.MethodPost, "/api/ledger?format=pdf", bytes.NewReader(ledger.SampleCSV), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestPostLedger_Errors(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))

	t.Run("missing columns", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/ledger", strings.NewReader("year,month\n2024,1\n"), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("empty body", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/ledger", strings.NewReader(""), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("unsupported format", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/ledger?format=yaml", bytes.NewReader(ledger.SampleCSV), nil)
		assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	})
}

func TestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 64
	s := newTestServer(t, cfg, factors.Load(""))

	rec := do(t, s, http.MethodPost, "/api/ledger", bytes.NewReader(ledger.SampleCSV), nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rate = 0.001
	cfg.Burst = 2
	s := newTestServer(t, cfg, factors.Load(""))

	body := `{"trip":{},"island":{"days":1}}`
	codes := make([]int, 0, 3)
	for range 3 {
		rec := do(t, s, http.MethodPost, "/api/trip", strings.NewReader(body), nil)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.InDelta(t, 1.0, testutil.ToFloat64(s.Metrics().RateLimitExceeded), 0)

	rec := do(t, s, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "read-only routes are not limited")
}

func TestRateLimiter_PerIPAndCleanup(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	defer rl.Stop()
	now := time.Now()
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "each IP has its own bucket")

	now = now.Add(visitorTTL + time.Second)
	rl.cleanup()
	rl.mu.Lock()
	assert.Empty(t, rl.visitors)
	rl.mu.Unlock()

	rl.Stop()
	rl.Stop()
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, testConfig(), factors.Load(""))
	do(t, s, http.MethodGet, "/api/health", nil, nil)

	rec := do(t, s, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, "isleprint_http_requests_total")
	assert.Contains(t, out, `route="/api/health"`)
	assert.Contains(t, out, "isleprint_ledger_rows_evaluated_total")
}

func TestRequestedFormat(t *testing.T) {
	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{"default", "/x", "", "json"},
		{"query wins", "/x?format=csv", "application/pdf", "csv"},
		{"accept csv", "/x", "text/csv", "csv"},
		{"accept with params", "/x", "text/html, application/pdf;q=0.9", "pdf"},
		{"unknown query kept", "/x?format=XML", "", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, string(requestedFormat(req, "json")))
		})
	}
}
