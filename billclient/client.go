// Package billclient is a typed client for the billing gateway.
package billclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const idempotencyHeader = "X-Idempotency-Key"

type Client struct {
	baseURL  *url.URL
	token    string
	language string
	http     *http.Client
	log      logrus.FieldLogger
	newKey   func() string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithIdempotencyKeys overrides how create requests without a caller
// supplied key are keyed.
func WithIdempotencyKeys(fn func() string) Option {
	return func(c *Client) { c.newKey = fn }
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("billclient: base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("billclient: invalid base URL: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c := &Client{
		baseURL:  u,
		token:    cfg.Token,
		language: cfg.Language,
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      logger,
		newKey:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type request struct {
	method   string
	segments []string
	query    url.Values
	body     any
	headers  map[string]string
}

// endpoint appends segments to the base URL path. Each segment is escaped
// as a single path element.
func (c *Client) endpoint(segments []string) (*url.URL, error) {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		if seg == "" || seg == "." || seg == ".." {
			return nil, fmt.Errorf("%w %q", ErrInvalidPathSegment, seg)
		}
		escaped[i] = url.PathEscape(seg)
	}

	raw := strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	p, err := url.PathUnescape(raw)
	if err != nil {
		return nil, err
	}

	u := *c.baseURL
	u.Path = p
	u.RawPath = raw
	u.RawQuery = ""
	return &u, nil
}

// do performs one request and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, op string, r request) ([]byte, error) {
	u, err := c.endpoint(r.segments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var reqBody io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal request body: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	log := c.log.WithFields(logrus.Fields{"op": op, "method": r.method, "path": u.EscapedPath()})

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Warn("reading response failed")
		return nil, &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code, msg := errorMessage(body)
		log.WithFields(logrus.Fields{"status": resp.StatusCode, "code": code}).Info("server rejected request")
		return nil, &ServerError{Status: resp.StatusCode, Code: code, Message: msg}
	}

	log.WithField("status", resp.StatusCode).Debug("request succeeded")
	return body, nil
}
