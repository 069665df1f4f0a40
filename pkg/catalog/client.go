package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/cache"
)

// Default configuration values.
const (
	DefaultEndpoint    = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"
	DefaultTimeout     = 10 * time.Second
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 1 * time.Second
	DefaultMaxDelay    = 10 * time.Second
	DefaultBackoffMult = 2.0
	DefaultCacheTTL    = 1 * time.Hour
)

// Row limit bounds accepted by the archive's TAP sync endpoint.
const (
	MinLimit = 1
	MaxLimit = 10000
)

// Client fetches confirmed-planet rows from the exoplanet archive's TAP
// service and post-processes them into PlanetRecord values. Successful
// results are memoized per limit for a bounded duration.
type Client struct {
	endpoint    string
	client      *http.Client
	maxRetries  int
	retryDelay  time.Duration
	maxDelay    time.Duration
	backoffMult float64
	cache       *cache.Cache[[]types.PlanetRecord]
}

// Option configures Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithMaxRetries sets maximum retry attempts for transient failures.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the initial retry delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithMaxDelay caps the exponential backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Client) {
		c.maxDelay = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithCache injects the memoization cache. The default caches for
// DefaultCacheTTL on the wall clock.
func WithCache(memo *cache.Cache[[]types.PlanetRecord]) Option {
	return func(c *Client) {
		c.cache = memo
	}
}

// New creates a catalog client for the given TAP endpoint.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:    endpoint,
		client:      &http.Client{Timeout: DefaultTimeout},
		maxRetries:  DefaultMaxRetries,
		retryDelay:  DefaultRetryDelay,
		maxDelay:    DefaultMaxDelay,
		backoffMult: DefaultBackoffMult,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.New[[]types.PlanetRecord](DefaultCacheTTL)
	}
	return c
}

// Fetch returns up to limit planet records, serving from the memoization
// cache when the last fetch for the same limit is still within its validity
// window. All failures wrap ErrFetch or ErrBadResponse; the caller decides
// whether to keep showing prior data.
func (c *Client) Fetch(ctx context.Context, limit int) ([]types.PlanetRecord, error) {
	if limit < MinLimit || limit > MaxLimit {
		return nil, errorsmod.Wrapf(ErrFetch, "limit %d outside [%d, %d]", limit, MinLimit, MaxLimit)
	}

	key := strconv.Itoa(limit)
	if records, ok := c.cache.Get(key); ok {
		return records, nil
	}

	records, err := c.fetchRemote(ctx, limit)
	if err != nil {
		return nil, err
	}
	c.cache.Put(key, records)
	return records, nil
}

// Refresh forces a remote fetch regardless of cache state and repopulates
// the cache on success.
func (c *Client) Refresh(ctx context.Context, limit int) ([]types.PlanetRecord, error) {
	if limit < MinLimit || limit > MaxLimit {
		return nil, errorsmod.Wrapf(ErrFetch, "limit %d outside [%d, %d]", limit, MinLimit, MaxLimit)
	}

	records, err := c.fetchRemote(ctx, limit)
	if err != nil {
		return nil, err
	}
	c.cache.Put(strconv.Itoa(limit), records)
	return records, nil
}

// fetchRemote performs the TAP query with retries and exponential backoff.
func (c *Client) fetchRemote(ctx context.Context, limit int) ([]types.PlanetRecord, error) {
	params := url.Values{}
	params.Set("query", BuildQuery(limit))
	params.Set("format", "json")
	requestURL := c.endpoint + "?" + params.Encode()

	delay := c.retryDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, errorsmod.Wrap(ErrFetch, ctx.Err().Error())
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * c.backoffMult)
			if delay > c.maxDelay {
				delay = c.maxDelay
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrFetch, "create request: %v", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = errorsmod.Wrapf(ErrFetch, "unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			continue
		}

		var rows []rawRow
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, errorsmod.Wrapf(ErrBadResponse, "decode rows: %v", err)
		}

		records := coerceRows(rows)
		log.Printf("Fetched %d planet records (%d rows dropped) for limit=%d", len(records), len(rows)-len(records), limit)
		return records, nil
	}

	return nil, errorsmod.Wrapf(ErrFetch, "max retries exceeded: %v", lastErr)
}

// rawRow is the wire shape of one TAP result row. Numeric columns arrive as
// numbers, quoted strings, or null depending on the archive's mood, so they
// are kept raw until coercion.
type rawRow struct {
	Name     string          `json:"pl_name"`
	HostName string          `json:"hostname"`
	Mass     json.RawMessage `json:"pl_bmasse"`
	Period   json.RawMessage `json:"pl_orbper"`
	SMA      json.RawMessage `json:"pl_orbsmax"`
	Ecc      json.RawMessage `json:"pl_orbeccen"`
	StarMass json.RawMessage `json:"st_mass"`
	StarTeff json.RawMessage `json:"st_teff"`
	Radius   json.RawMessage `json:"pl_rade"`
}

// coerceRows converts raw rows to PlanetRecord values, dropping any row
// still missing a required field after coercion. Optional columns default
// to zero. Rows are never returned half-populated.
func coerceRows(rows []rawRow) []types.PlanetRecord {
	records := make([]types.PlanetRecord, 0, len(rows))
	for _, row := range rows {
		mass, okMass := coerceFloat(row.Mass)
		period, okPeriod := coerceFloat(row.Period)
		sma, okSMA := coerceFloat(row.SMA)
		starMass, okStarMass := coerceFloat(row.StarMass)
		if !okMass || !okPeriod || !okSMA || !okStarMass {
			continue
		}

		ecc, _ := coerceFloat(row.Ecc)
		teff, _ := coerceFloat(row.StarTeff)
		radius, _ := coerceFloat(row.Radius)

		records = append(records, types.PlanetRecord{
			Name:              row.Name,
			HostName:          row.HostName,
			PlanetMassEarth:   mass,
			OrbitalPeriodDays: period,
			SemiMajorAxisAU:   sma,
			Eccentricity:      ecc,
			StarMassSolar:     starMass,
			StarEffTempK:      teff,
			PlanetRadiusEarth: radius,
		})
	}
	return records
}

// coerceFloat parses a raw JSON column value as float64. Null, absent,
// non-parseable, and non-finite values all count as missing.
func coerceFloat(raw json.RawMessage) (float64, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
