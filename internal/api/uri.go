package api

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// MakeRequestURI resolves parts one after the other, each against the URI
// built so far, starting from the API root. The result must stay beneath
// the root.
func (c *Client) MakeRequestURI(parts ...string) (*url.URL, error) {
	if len(parts) == 0 {
		return nil, errors.New("request URI must include at least one part")
	}

	result := c.baseURL
	for _, part := range parts {
		ref, err := url.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("invalid request URI part %q: %w", part, err)
		}
		result = result.ResolveReference(ref)
	}

	if result.Scheme != c.baseURL.Scheme || result.Host != c.baseURL.Host ||
		!strings.HasPrefix(result.EscapedPath(), c.baseURL.EscapedPath()) {
		return nil, fmt.Errorf("request URI %s is outside the API root %s", result, c.baseURL)
	}
	return result, nil
}

// EscapeDataString percent-encodes s for use as a single path segment.
// Everything outside the RFC 3986 unreserved set is encoded, spaces as %20,
// and the dot segments "." and ".." are encoded so they cannot climb the
// path during resolution.
func EscapeDataString(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	switch escaped {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return escaped
}
