package api

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/recurly/recurly-client-go/internal/apierrors"
)

const (
	// APIVersion is sent as X-Api-Version on every request.
	APIVersion = "2.10"
	// DefaultTimeout bounds read requests.
	DefaultTimeout = 30 * time.Second
	// DefaultWriteTimeout bounds write requests, which the service may take
	// longer to answer.
	DefaultWriteTimeout = 60 * time.Second
	// DefaultUserAgent is used when Config.UserAgent is empty.
	DefaultUserAgent = "Recurly Go Client"
)

// Config holds the request factory settings.
type Config struct {
	// BaseURL is the absolute API root, e.g. https://sub.recurly.com/v2.
	BaseURL string
	// APIKey is the private API key, sent as HTTP basic auth.
	APIKey string
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// HTTPClient is the transport. Its own Timeout, if any, applies on top
	// of the per-request deadlines below.
	HTTPClient *http.Client
	// Timeout bounds read requests. Zero means DefaultTimeout.
	Timeout time.Duration
	// WriteTimeout bounds write requests. Zero means DefaultWriteTimeout.
	WriteTimeout time.Duration
	// Logger receives one debug entry per request. Nil discards.
	Logger logrus.FieldLogger
}

// Client builds, sends and classifies requests against one API root.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL      *url.URL
	authHeader   string
	userAgent    string
	httpClient   *http.Client
	timeout      time.Duration
	writeTimeout time.Duration
	logger       logrus.FieldLogger
}

// NewClient validates cfg and returns a Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %q", cfg.BaseURL)
	}
	// Relative parts resolve beneath the last path segment only when it
	// ends in a slash.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
		if base.RawPath != "" {
			base.RawPath += "/"
		}
	}

	c := &Client{
		baseURL:      base,
		authHeader:   "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.APIKey)),
		userAgent:    cfg.UserAgent,
		httpClient:   cfg.HTTPClient,
		timeout:      cfg.Timeout,
		writeTimeout: cfg.WriteTimeout,
		logger:       cfg.Logger,
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.writeTimeout <= 0 {
		c.writeTimeout = DefaultWriteTimeout
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}

	return c, nil
}

// BaseURL returns a copy of the normalized API root.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Timeout returns the read deadline.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// WriteTimeout returns the write deadline.
func (c *Client) WriteTimeout() time.Duration {
	return c.writeTimeout
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
