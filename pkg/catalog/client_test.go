package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/cache"
)

// tapBody mimics one TAP sync JSON response. Numeric columns deliberately mix
// plain numbers, quoted strings, and nulls.
const tapBody = `[
  {"pl_name": "Kepler-452 b", "hostname": "Kepler-452",
   "pl_bmasse": 5.0, "pl_orbper": 384.84, "pl_orbsmax": 1.046,
   "pl_orbeccen": null, "st_mass": 1.04, "st_teff": 5757, "pl_rade": 1.63},
  {"pl_name": "HD 209458 b", "hostname": "HD 209458",
   "pl_bmasse": "219.7", "pl_orbper": "3.52", "pl_orbsmax": "0.047",
   "pl_orbeccen": "0.01", "st_mass": "1.15", "st_teff": null, "pl_rade": null},
  {"pl_name": "broken b", "hostname": "broken",
   "pl_bmasse": null, "pl_orbper": 10.0, "pl_orbsmax": 0.1,
   "pl_orbeccen": 0, "st_mass": 1.0, "st_teff": 5000, "pl_rade": 1.0}
]`

func newTAPServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Contains(t, r.URL.Query().Get("query"), "SELECT TOP")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tapBody))
	}))
}

func TestFetch_CoercesMixedColumns(t *testing.T) {
	var hits int
	server := newTAPServer(t, &hits)
	defer server.Close()

	client := New(server.URL)
	records, err := client.Fetch(context.Background(), 100)
	require.NoError(t, err)

	// The null-mass row is dropped; the string-typed row survives.
	require.Len(t, records, 2)

	require.Equal(t, "Kepler-452 b", records[0].Name)
	require.Equal(t, 5.0, records[0].PlanetMassEarth)
	require.Equal(t, 0.0, records[0].Eccentricity)

	require.Equal(t, "HD 209458 b", records[1].Name)
	require.Equal(t, 219.7, records[1].PlanetMassEarth)
	require.Equal(t, 3.52, records[1].OrbitalPeriodDays)
	require.Equal(t, 0.0, records[1].StarEffTempK)
	require.False(t, records[1].HasStellarTemp())
}

func TestFetch_MemoizesPerLimit(t *testing.T) {
	var hits int
	server := newTAPServer(t, &hits)
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	first, err := client.Fetch(ctx, 100)
	require.NoError(t, err)
	second, err := client.Fetch(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, hits, "second fetch for the same limit must hit the cache")

	_, err = client.Fetch(ctx, 200)
	require.NoError(t, err)
	require.Equal(t, 2, hits, "a different limit is a different cache key")
}

func TestRefresh_BypassesCache(t *testing.T) {
	var hits int
	server := newTAPServer(t, &hits)
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	_, err := client.Fetch(ctx, 100)
	require.NoError(t, err)

	_, err = client.Refresh(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, 2, hits)

	// Refresh repopulates, so the next plain fetch is served locally.
	_, err = client.Fetch(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, 2, hits)
}

func TestFetch_ExpiredEntryRefetches(t *testing.T) {
	var hits int
	server := newTAPServer(t, &hits)
	defer server.Close()

	clock := struct{ t time.Time }{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	memo := cache.NewWithClock[[]types.PlanetRecord](time.Hour, func() time.Time { return clock.t })
	client := New(server.URL, WithCache(memo))
	ctx := context.Background()

	_, err := client.Fetch(ctx, 100)
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Hour)
	_, err = client.Fetch(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, 2, hits, "stale entry must trigger a remote fetch")
}

func TestFetch_ServesCacheWhileRemoteIsDown(t *testing.T) {
	healthy := true
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if !healthy {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(tapBody))
	}))
	defer server.Close()

	client := New(server.URL, WithMaxRetries(0))
	ctx := context.Background()

	records, err := client.Fetch(ctx, 100)
	require.NoError(t, err)

	// The remote goes down; the warm cache keeps serving within its window.
	healthy = false
	again, err := client.Fetch(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, records, again)
	require.Equal(t, 1, hits)

	// A forced refresh does reach the broken remote and fails.
	_, err = client.Refresh(ctx, 100)
	require.ErrorIs(t, err, ErrFetch)
}

func TestFetch_LimitValidation(t *testing.T) {
	client := New("http://unused.invalid")

	for _, limit := range []int{0, -5, 10001} {
		_, err := client.Fetch(context.Background(), limit)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrFetch)
	}
}

func TestFetch_RetriesThenFails(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL,
		WithMaxRetries(2),
		WithRetryDelay(time.Millisecond),
		WithMaxDelay(5*time.Millisecond),
	)

	_, err := client.Fetch(context.Background(), 100)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFetch)
	require.Equal(t, 3, hits, "initial attempt plus two retries")
}

func TestFetch_MalformedBodyFailsFast(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(server.URL, WithMaxRetries(3), WithRetryDelay(time.Millisecond))

	_, err := client.Fetch(context.Background(), 100)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadResponse)
	require.Equal(t, 1, hits, "a malformed body is not a transient failure")
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{"number", "1.5", 1.5, true},
		{"quoted number", `"219.7"`, 219.7, true},
		{"zero", "0", 0, true},
		{"null", "null", 0, false},
		{"absent", "", 0, false},
		{"empty string", `""`, 0, false},
		{"garbage", `"n/a"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceFloat(json.RawMessage(tt.raw))
			if got != tt.want || ok != tt.ok {
				t.Errorf("coerceFloat(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCoerceRows_NeverHalfPopulates(t *testing.T) {
	rows := []rawRow{
		{
			Name:   "partial b",
			Mass:   json.RawMessage("1.0"),
			Period: json.RawMessage("null"),
			SMA:    json.RawMessage("1.0"),
		},
	}

	require.Empty(t, coerceRows(rows))
}

func TestErrorsAreDistinguishable(t *testing.T) {
	require.False(t, errors.Is(ErrFetch, ErrBadResponse))
	require.False(t, errors.Is(ErrBadResponse, ErrFetch))
}
