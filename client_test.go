package recurly

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSubdomain(t *testing.T) {
	_, err := New("", "key")
	if !errors.Is(err, ErrMissingSubdomain) {
		t.Errorf("New() error = %v, want ErrMissingSubdomain", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("acme", "")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("New() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c, err := New("acme", "key")
	require.NoError(t, err)

	assert.Equal(t, "acme", c.Subdomain())
	assert.Equal(t, "https://acme.recurly.com/v2/", c.BaseURL())
	assert.NotNil(t, c.Accounts)
	assert.Equal(t, 30*time.Second, c.requests.Timeout())
	assert.Equal(t, 60*time.Second, c.requests.WriteTimeout())
}

func TestNew_Options(t *testing.T) {
	c, err := New("acme", "key",
		WithBaseURL("http://localhost:8080/v2"),
		WithTimeout(time.Second),
		WithWriteTimeout(2*time.Second),
	)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v2/", c.BaseURL())
	assert.Equal(t, time.Second, c.requests.Timeout())
	assert.Equal(t, 2*time.Second, c.requests.WriteTimeout())
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	_, err := New("acme", "key", WithBaseURL("/v2"))
	assert.Error(t, err)
}
