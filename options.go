package recurly

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// defaultBaseURLFormat takes the site subdomain.
	defaultBaseURLFormat = "https://%s.recurly.com/v2"
	defaultTimeout       = 30 * time.Second
	defaultWriteTimeout  = 60 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	writeTimeout time.Duration
	logger       logrus.FieldLogger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the API root derived from the subdomain.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Connection reuse, TLS and
// proxying are left to it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the deadline for read requests.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithWriteTimeout sets the deadline for write requests.
// Default: 60 seconds
func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.writeTimeout = timeout
	}
}

// WithLogger sets the logger that receives a debug entry per request and a
// warning for unreadable error bodies. By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
