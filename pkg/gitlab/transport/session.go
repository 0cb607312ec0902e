// Package transport provides the HTTP implementation of the gitlab.Connection
// interface: URL construction, authentication headers, retries with
// exponential backoff, and response decoding.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"

	"github.com/forge-tools/gitlab/pkg/gitlab"
)

const apiPrefix = "/api/v3"

// Config holds the session settings. BaseURL and one of Token or TokenSource
// are required; everything else has a sensible default.
type Config struct {
	// BaseURL is the server address, e.g. https://gitlab.example.com.
	BaseURL string

	// Token is a private token sent as the PRIVATE-TOKEN header.
	Token string

	// TokenSource supplies OAuth2 bearer tokens instead of a private token.
	TokenSource oauth2.TokenSource

	// Timeout bounds each HTTP request. Defaults to 30 seconds.
	Timeout time.Duration

	// RetryMax is the number of retries on connection failures and 5xx
	// responses. Defaults to 3.
	RetryMax int

	// HTTPClient overrides the default client, for tests and custom TLS.
	HTTPClient *http.Client

	Logger hclog.Logger
}

// Validate checks that the config can produce a working session.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Token, validation.Required.When(c.TokenSource == nil).
			Error("either Token or TokenSource must be set")),
		validation.Field(&c.RetryMax, validation.Min(0)),
	)
}

// Session is an authenticated connection to one GitLab server. It implements
// gitlab.Connection and is safe for concurrent use.
type Session struct {
	cfg    Config
	apiURL string
	client *http.Client
	logger hclog.Logger
}

var _ gitlab.Connection = (*Session)(nil)

// NewSession validates the config, applies defaults and returns a ready
// session. No request is made until the first call.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("transport: invalid config: %w", err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryMax == 0 {
		cfg.RetryMax = 3
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	return &Session{
		cfg:    cfg,
		apiURL: strings.TrimRight(cfg.BaseURL, "/") + apiPrefix,
		client: cfg.HTTPClient,
		logger: cfg.Logger.Named("gitlab.session"),
	}, nil
}

// Get implements gitlab.Connection.
func (s *Session) Get(ctx context.Context, desc *gitlab.Descriptor, id any, params gitlab.Params) (map[string]any, error) {
	path, err := desc.ResolvePath(params)
	if err != nil {
		return nil, err
	}
	if id != nil {
		path += "/" + url.PathEscape(gitlab.AttrString(id))
	}
	resp, err := s.do(ctx, http.MethodGet, path, queryParams(desc.Path, params), nil)
	if err != nil {
		return nil, err
	}
	if err := gitlab.CheckResponse(resp, gitlab.KindGet); err != nil {
		return nil, err
	}
	return resp.JSONMap()
}

// List implements gitlab.Connection.
func (s *Session) List(ctx context.Context, desc *gitlab.Descriptor, params gitlab.Params) ([]map[string]any, error) {
	path, err := desc.ResolveListPath(params)
	if err != nil {
		return nil, err
	}
	resp, err := s.do(ctx, http.MethodGet, path, queryParams(desc.ListPath(), params), nil)
	if err != nil {
		return nil, err
	}
	if err := gitlab.CheckResponse(resp, gitlab.KindList); err != nil {
		return nil, err
	}
	return resp.JSONList()
}

// Create implements gitlab.Connection.
func (s *Session) Create(ctx context.Context, obj *gitlab.Object, params gitlab.Params) (map[string]any, error) {
	desc := obj.Descriptor()
	args := obj.URLArgs(params)
	path, err := desc.ResolvePath(args)
	if err != nil {
		return nil, err
	}
	body := obj.Payload(false, bodyParams(desc.Path, params))
	resp, err := s.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	if err := gitlab.CheckResponse(resp, gitlab.KindCreate, 201); err != nil {
		return nil, err
	}
	return resp.JSONMap()
}

// Update implements gitlab.Connection.
func (s *Session) Update(ctx context.Context, obj *gitlab.Object, params gitlab.Params) (map[string]any, error) {
	desc := obj.Descriptor()
	args := obj.URLArgs(params)
	path, err := desc.ResolvePath(args)
	if err != nil {
		return nil, err
	}
	if !desc.NoIDInUpdateURL {
		path += "/" + url.PathEscape(gitlab.AttrString(obj.ID()))
	}
	body := obj.Payload(true, bodyParams(desc.Path, params))
	resp, err := s.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return nil, err
	}
	if err := gitlab.CheckResponse(resp, gitlab.KindUpdate); err != nil {
		return nil, err
	}
	return resp.JSONMap()
}

// Delete implements gitlab.Connection.
func (s *Session) Delete(ctx context.Context, desc *gitlab.Descriptor, id any, params gitlab.Params) error {
	path, err := desc.ResolvePath(params)
	if err != nil {
		return err
	}
	query := queryParams(desc.Path, params)
	if id != nil {
		// Types that keep the identifier out of the URL (labels, files) take
		// it as a parameter instead.
		if desc.NoIDInDeleteURL {
			query.Set(desc.IDAttr, gitlab.AttrString(id))
		} else {
			path += "/" + url.PathEscape(gitlab.AttrString(id))
		}
	}
	resp, err := s.do(ctx, http.MethodDelete, path, query, nil)
	if err != nil {
		return err
	}
	return gitlab.CheckResponse(resp, gitlab.KindDelete, 200, 204)
}

// RawGet implements gitlab.Connection.
func (s *Session) RawGet(ctx context.Context, path string, params gitlab.Params) (*gitlab.Response, error) {
	return s.do(ctx, http.MethodGet, path, queryParams("", params), nil)
}

// RawPost implements gitlab.Connection.
func (s *Session) RawPost(ctx context.Context, path string, body any, params gitlab.Params) (*gitlab.Response, error) {
	return s.do(ctx, http.MethodPost, path, queryParams("", params), body)
}

// RawPut implements gitlab.Connection.
func (s *Session) RawPut(ctx context.Context, path string, body any, params gitlab.Params) (*gitlab.Response, error) {
	return s.do(ctx, http.MethodPut, path, queryParams("", params), body)
}

// RawDelete implements gitlab.Connection.
func (s *Session) RawDelete(ctx context.Context, path string, params gitlab.Params) (*gitlab.Response, error) {
	return s.do(ctx, http.MethodDelete, path, queryParams("", params), nil)
}

// serverError marks a 5xx response so the retry loop can distinguish it from
// a network failure.
type serverError struct {
	status int
}

func (e *serverError) Error() string {
	return fmt.Sprintf("server returned status %d", e.status)
}

// do performs one HTTP request with retries. Connection failures and 5xx
// responses are retried with exponential backoff; any other response is
// returned as-is, whatever its status, so callers map status codes to error
// kinds themselves.
func (s *Session) do(ctx context.Context, method, path string, query url.Values, body any) (*gitlab.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("transport: encoding request body: %w", err)
		}
	}

	reqURL := s.apiURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var resp *gitlab.Response
	operation := func() error {
		r, err := s.roundTrip(ctx, method, reqURL, payload)
		if err != nil {
			return err
		}
		resp = r
		if r.StatusCode >= 500 {
			return &serverError{status: r.StatusCode}
		}
		return nil
	}
	notify := func(err error, wait time.Duration) {
		s.logger.Warn("retrying request",
			"method", method,
			"url", reqURL,
			"wait", wait,
			"error", err,
		)
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.cfg.RetryMax)),
		ctx,
	)
	if err := backoff.RetryNotify(operation, bo, notify); err != nil {
		var srvErr *serverError
		if errors.As(err, &srvErr) && resp != nil {
			// Retries exhausted on 5xx; hand the last response to the caller.
			return resp, nil
		}
		return nil, &gitlab.APIError{Kind: gitlab.KindConnection, Message: err.Error(), Err: err}
	}
	return resp, nil
}

func (s *Session) roundTrip(ctx context.Context, method, reqURL string, payload []byte) (*gitlab.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("transport: building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if err := s.authorize(req); err != nil {
		return nil, backoff.Permanent(err)
	}

	s.logger.Debug("request", "method", method, "url", reqURL)
	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	return &gitlab.Response{StatusCode: httpResp.StatusCode, Body: data}, nil
}

func (s *Session) authorize(req *http.Request) error {
	if s.cfg.TokenSource != nil {
		token, err := s.cfg.TokenSource.Token()
		if err != nil {
			return fmt.Errorf("transport: fetching oauth2 token: %w", err)
		}
		token.SetAuthHeader(req)
		return nil
	}
	req.Header.Set("PRIVATE-TOKEN", s.cfg.Token)
	return nil
}

// queryParams renders params as a query string, skipping the attributes the
// URL template consumed and nil values.
func queryParams(template string, params gitlab.Params) url.Values {
	skip := map[string]bool{}
	for _, attr := range gitlab.PathAttrs(template) {
		skip[attr] = true
	}
	query := url.Values{}
	for k, v := range params {
		if skip[k] || v == nil {
			continue
		}
		query.Set(k, gitlab.AttrString(v))
	}
	return query
}

// bodyParams returns the params that belong in a request body: everything the
// URL template did not consume.
func bodyParams(template string, params gitlab.Params) gitlab.Params {
	skip := map[string]bool{}
	for _, attr := range gitlab.PathAttrs(template) {
		skip[attr] = true
	}
	out := gitlab.Params{}
	for k, v := range params {
		if skip[k] || v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
