package wix

import "errors"

// Config holds configuration for the Wix Stores API integration
type Config struct {
	// APIKey is the Wix API key, sent verbatim in the Authorization header
	// (Wix API-key auth carries no Bearer prefix)
	APIKey string
	// SiteID identifies the Wix site, sent as the wix-site-id header
	SiteID string
	// BaseURL is the base URL for the Wix API (production or a test server)
	BaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// ProductionAPIURL is the production Wix API endpoint
const ProductionAPIURL = "https://www.wixapis.com"

// Errors for Wix configuration
var (
	ErrConfigMissingAPIKey = errors.New("wix: api key is required")
	ErrConfigMissingSiteID = errors.New("wix: site id is required")
)

// NewConfig creates a new Wix configuration with defaults
func NewConfig(apiKey, siteID string) *Config {
	return &Config{
		APIKey:         apiKey,
		SiteID:         siteID,
		BaseURL:        ProductionAPIURL,
		TimeoutSeconds: 30,
	}
}

// Validate validates the Wix configuration and fills in defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrConfigMissingAPIKey
	}
	if c.SiteID == "" {
		return ErrConfigMissingSiteID
	}
	if c.BaseURL == "" {
		c.BaseURL = ProductionAPIURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
