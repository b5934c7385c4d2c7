package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/recurly/recurly-client-go/internal/apierrors"
	"github.com/recurly/recurly-client-go/internal/xmlutil"
)

const (
	xmlMediaType     = "application/xml"
	xmlContentType   = "application/xml; charset=utf-8"
	maxDrainBodySize = 64 << 10
)

// Result is the classified outcome of one request.
//
// Exactly one of Reader and Err is set, except for 404 where neither is and
// the outcome is carried by StatusCode alone. A non-nil Reader streams the
// response body and must be released with Close.
type Result struct {
	StatusCode int
	Reader     *xmlutil.Reader
	Err        error
}

// Outcome returns the classification of StatusCode.
func (r *Result) Outcome() apierrors.Outcome {
	return apierrors.Classify(r.StatusCode)
}

// Close releases the response body. It is safe to call on any Result.
func (r *Result) Close() error {
	if r == nil {
		return nil
	}
	return r.Reader.Close()
}

// Get sends a read request to uri.
func (c *Client) Get(ctx context.Context, uri *url.URL) (*Result, error) {
	return c.do(ctx, http.MethodGet, uri, nil, c.timeout)
}

// Post sends body as a write request to uri, under the write deadline.
func (c *Client) Post(ctx context.Context, uri *url.URL, body []byte) (*Result, error) {
	return c.do(ctx, http.MethodPost, uri, body, c.writeTimeout)
}

func (c *Client) do(ctx context.Context, method string, uri *url.URL, body []byte, timeout time.Duration) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri.String(), bodyReader)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Version", APIVersion)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", xmlMediaType)
	req.Header.Set("Authorization", c.authHeader)
	if body != nil {
		req.Header.Set("Content-Type", xmlContentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"uri":    uri.String(),
		}).WithError(err).Debug("recurly request failed")
		return nil, &apierrors.NetworkError{Err: err, URL: uri.String()}
	}

	log := c.logger.WithFields(logrus.Fields{
		"method":   method,
		"uri":      uri.String(),
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})
	log.Debug("recurly request completed")

	return classify(resp, cancel, log), nil
}

// classify turns resp into a Result. Error bodies are read and closed here;
// a success body is handed to the caller together with cancel.
func classify(resp *http.Response, cancel context.CancelFunc, log logrus.FieldLogger) *Result {
	result := &Result{StatusCode: resp.StatusCode}
	outcome := apierrors.Classify(resp.StatusCode)

	if outcome == apierrors.OutcomeSuccess {
		result.Reader = xmlutil.NewReadCloser(&cancelOnClose{ReadCloser: resp.Body, cancel: cancel})
		return result
	}

	defer cancel()
	defer drainAndClose(resp.Body)

	var errs *apierrors.Errors
	if outcome.HasErrorBody() {
		errs = readErrors(resp.Body, log)
	}
	result.Err = apierrors.FromStatus(resp.StatusCode, errs)
	return result
}

// readErrors parses an error envelope. A body that does not parse still
// yields whatever was read before the failure.
func readErrors(body io.Reader, log logrus.FieldLogger) *apierrors.Errors {
	errs, err := apierrors.ReadErrors(xmlutil.NewReader(body))
	if err != nil {
		log.WithError(err).Warn("unable to parse error response body")
	}
	return errs
}

// drainAndClose lets the transport reuse the connection.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBodySize))
	_ = body.Close()
}

// cancelOnClose ends the request context once the body is released.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
