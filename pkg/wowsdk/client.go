package wowsdk

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	defaultRegion = "us"
	defaultLocale = "en_US"

	defaultTimeout = 30 * time.Second
)

// Config holds the credentials and defaults for a Client.
type Config struct {
	// ClientID and ClientSecret identify the registered application and
	// are used for the client_credentials grant. Both are required.
	ClientID     string
	ClientSecret string

	// Region selects the regional API and OAuth hosts (default "us").
	// Folded to lowercase.
	Region string

	// Locale is sent with every resource request (default "en_US").
	Locale string

	// APIBaseURL and TokenURL override the region-derived endpoints.
	// Mainly for tests and proxies; leave empty for normal use.
	APIBaseURL string
	TokenURL   string

	// HTTPClient overrides the default pooled client with a 30s timeout.
	HTTPClient *http.Client
}

// Validate checks that the required config fields are set.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("wowsdk: ClientID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("wowsdk: ClientSecret is required")
	}
	return nil
}

// Client is a client for the WoW community API. It is safe for
// concurrent use; the cached credential is the only shared state.
type Client struct {
	clientID     string
	clientSecret string
	region       string
	locale       string

	apiBase  string // trailing slash, includes the /wow/ prefix
	tokenURL string

	httpClient *http.Client

	mu    sync.RWMutex
	creds *credential

	now func() time.Time
}

// New creates a Client from cfg, applying region and locale defaults.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	region := strings.ToLower(cfg.Region)
	if region == "" {
		region = defaultRegion
	}

	locale := cfg.Locale
	if locale == "" {
		locale = defaultLocale
	}

	apiBase := cfg.APIBaseURL
	if apiBase == "" {
		apiBase = fmt.Sprintf("https://%s.api.battle.net", region)
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = fmt.Sprintf("https://%s.battle.net/oauth/token", region)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = defaultTimeout
	}

	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		region:       region,
		locale:       locale,
		apiBase:      strings.TrimSuffix(apiBase, "/") + "/wow/",
		tokenURL:     tokenURL,
		httpClient:   httpClient,
		now:          time.Now,
	}, nil
}

// Region returns the region the client was configured with.
func (c *Client) Region() string {
	return c.region
}

// Locale returns the locale sent with resource requests.
func (c *Client) Locale() string {
	return c.locale
}
