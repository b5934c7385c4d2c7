package recurly

import (
	"fmt"

	"github.com/recurly/recurly-client-go/internal/api"
)

// Version is the client library version reported in the User-Agent header.
const Version = "0.3.0"

// Client is the entry point to the Recurly API. It holds the site
// credentials for its lifetime and exposes one facade per resource
// collection. A Client is safe for concurrent use.
type Client struct {
	subdomain string
	requests  *api.Client

	// Accounts manages accounts.
	Accounts *Accounts
}

// New creates a client for the site at subdomain, authenticating with the
// site's private API key.
func New(subdomain, apiKey string, opts ...Option) (*Client, error) {
	if subdomain == "" {
		return nil, ErrMissingSubdomain
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:      fmt.Sprintf(defaultBaseURLFormat, subdomain),
		timeout:      defaultTimeout,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	requests, err := api.NewClient(api.Config{
		BaseURL:      cfg.baseURL,
		APIKey:       apiKey,
		UserAgent:    "Recurly Go Client v" + Version,
		HTTPClient:   cfg.httpClient,
		Timeout:      cfg.timeout,
		WriteTimeout: cfg.writeTimeout,
		Logger:       cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		subdomain: subdomain,
		requests:  requests,
		Accounts:  &Accounts{requests: requests},
	}, nil
}

// Subdomain returns the site subdomain the client was created for.
func (c *Client) Subdomain() string {
	return c.subdomain
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.requests.BaseURL().String()
}
