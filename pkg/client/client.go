package client

import (
	"fmt"
	"time"

	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/advisor"
	"github.com/exoscope/exoscope-client/pkg/cache"
	"github.com/exoscope/exoscope-client/pkg/catalog"
	"github.com/exoscope/exoscope-client/pkg/utils"
)

// ExoscopeClient wires configuration into the catalog client and the
// advisory adapter. It is the single entry point the CLI commands use.
type ExoscopeClient struct {
	config  *utils.Config
	catalog *catalog.Client
	advisor *advisor.Adapter
}

// New loads the configuration and constructs the client components from it.
func New() (*ExoscopeClient, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(config), nil
}

// NewWithConfig constructs the client components from an explicit
// configuration, bypassing file discovery.
func NewWithConfig(config *utils.Config) *ExoscopeClient {
	catalogCache := cache.New[[]types.PlanetRecord](time.Duration(config.Catalog.CacheTTLMinutes) * time.Minute)

	return &ExoscopeClient{
		config: config,
		catalog: catalog.New(config.Catalog.Endpoint,
			catalog.WithTimeout(time.Duration(config.Catalog.TimeoutSeconds)*time.Second),
			catalog.WithMaxRetries(config.Catalog.MaxRetries),
			catalog.WithCache(catalogCache),
		),
		advisor: advisor.New(advisor.Config{
			Endpoint: config.Advisor.Endpoint,
			Model:    config.Advisor.Model,
			APIKey:   config.Advisor.APIKey,
			CacheTTL: time.Duration(config.Advisor.CacheTTLMinutes) * time.Minute,
		}),
	}
}

// Config returns the loaded configuration.
func (c *ExoscopeClient) Config() *utils.Config {
	return c.config
}

// Catalog returns the exoplanet archive client.
func (c *ExoscopeClient) Catalog() *catalog.Client {
	return c.catalog
}

// Advisor returns the advisory text adapter.
func (c *ExoscopeClient) Advisor() *advisor.Adapter {
	return c.advisor
}
