package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/cache"
)

// Default configuration values for the generative text service.
const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel    = "gemini-2.0-flash-001"
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 1 * time.Hour
)

// ErrAdvice covers transport and generation failures of the advisory
// service. Advisory errors surface inline and never abort the session.
var ErrAdvice = errorsmod.Register("advisor", 2, "advisory service failed")

// Config configures the advisory adapter. The API key is injected here at
// construction and is never read from ambient state.
type Config struct {
	Endpoint   string
	Model      string
	APIKey     string
	HTTPClient *http.Client
	CacheTTL   time.Duration
}

// Adapter formats exoplanet prompts, delegates generation to the external
// text service, and memoizes responses per distinct prompt for a bounded
// duration.
type Adapter struct {
	cfg  Config
	memo *cache.Cache[string]
}

// New builds an advisory adapter. Zero-value config fields fall back to the
// package defaults.
func New(cfg Config) *Adapter {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &Adapter{
		cfg:  cfg,
		memo: cache.New[string](cfg.CacheTTL),
	}
}

// Ask answers a free-text exoplanet question through the text service.
func (a *Adapter) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errorsmod.Wrap(ErrAdvice, "question is empty")
	}

	prompt := fmt.Sprintf(`As an expert in exoplanetary science, provide a detailed and comprehensive answer to: %s

Include relevant scientific concepts, examples, and explanations where appropriate. Format the response with proper markdown for readability.`, question)

	return a.generate(ctx, prompt)
}

// Explain summarizes a single catalog record's key features. The prompt is
// deterministic: the record's numeric fields are embedded at two decimal
// places, so identical records hit the memoization cache.
func (a *Adapter) Explain(ctx context.Context, rec types.PlanetRecord) (string, error) {
	info := fmt.Sprintf(`Planet Name: %s
Host Star: %s
Planet Mass (Earth masses): %.2f
Orbital Period (days): %.2f
Semi-major Axis (AU): %.2f
Star Mass (Solar masses): %.2f`,
		rec.Name, rec.HostName, rec.PlanetMassEarth, rec.OrbitalPeriodDays,
		rec.SemiMajorAxisAU, rec.StarMassSolar)

	prompt := fmt.Sprintf("Analyze this exoplanet data and explain its key features in about 100 words:\n%s", info)
	return a.generate(ctx, prompt)
}

// generate sends one formatted prompt to the generateContent endpoint and
// returns the first candidate's text. Responses are memoized per prompt.
func (a *Adapter) generate(ctx context.Context, prompt string) (string, error) {
	if text, ok := a.memo.Get(prompt); ok {
		return text, nil
	}
	if strings.TrimSpace(a.cfg.APIKey) == "" {
		return "", errorsmod.Wrap(ErrAdvice, "api key is required")
	}

	requestBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errorsmod.Wrapf(ErrAdvice, "marshal request: %v", err)
	}

	// Key travels as a query parameter, the service's documented scheme. It
	// is never echoed in errors or logs.
	generateURL := fmt.Sprintf("%s/%s:generateContent?key=%s", a.cfg.Endpoint, a.cfg.Model, a.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, generateURL, bytes.NewReader(requestBody))
	if err != nil {
		return "", errorsmod.Wrapf(ErrAdvice, "build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", errorsmod.Wrapf(ErrAdvice, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", errorsmod.Wrapf(ErrAdvice, "status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errorsmod.Wrapf(ErrAdvice, "decode response: %v", err)
	}

	text := payload.text()
	if text == "" {
		return "", errorsmod.Wrap(ErrAdvice, "response missing candidate text")
	}

	a.memo.Put(prompt, text)
	return text, nil
}

// Wire types for the generateContent API.

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// text extracts the first non-empty candidate part.
func (r generateResponse) text() string {
	for _, candidate := range r.Candidates {
		for _, p := range candidate.Content.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return strings.TrimSpace(p.Text)
			}
		}
	}
	return ""
}
