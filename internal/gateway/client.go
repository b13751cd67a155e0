// Package gateway is the single HTTP path between the client and the
// backend. Every outgoing request goes through the interceptor chain
// composed at construction time, and every failure comes back as a
// normalized *domain.Error regardless of what broke.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskpilot/client/domain"
	"github.com/taskpilot/client/pkg/logger"
)

// fallbackDetail is shown when a failure carries no server-supplied detail.
const fallbackDetail = "An error occurred"

const defaultTimeout = 10 * time.Second

// RequestInterceptor mutates an outgoing request before it is sent.
type RequestInterceptor interface {
	Intercept(req *fasthttp.Request)
}

// ResponseHook observes the status of a completed exchange before the
// result is handed back to the caller.
type ResponseHook interface {
	OnResponse(status int)
}

// Client wraps fasthttp with the backend base URL, the fixed request
// timeout, and the interceptor chain.
type Client struct {
	baseURL      string
	timeout      time.Duration
	http         *fasthttp.Client
	interceptors []RequestInterceptor
	hooks        []ResponseHook
	logger       *zap.Logger
}

type Option func(*Client)

// WithInterceptor appends a request interceptor to the chain.
func WithInterceptor(i RequestInterceptor) Option {
	return func(c *Client) { c.interceptors = append(c.interceptors, i) }
}

// WithResponseHook appends a response hook to the chain.
func WithResponseHook(h ResponseHook) Option {
	return func(c *Client) { c.hooks = append(c.hooks, h) }
}

// WithTimeout overrides the default 10 second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New builds a gateway client for the given backend base URL.
func New(baseURL string, log *zap.Logger, opts ...Option) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
		logger:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = &fasthttp.Client{
		ReadTimeout:  c.timeout,
		WriteTimeout: c.timeout,
	}
	return c
}

// Do issues one HTTP exchange and returns the raw response body.
func (c *Client) Do(ctx context.Context, method, path string, query map[string]string, body interface{}) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.SetContentType("application/json")
	for k, v := range query {
		req.URI().QueryArgs().Set(k, v)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, fallbackDetail, err)
		}
		req.SetBody(payload)
	}

	for _, i := range c.interceptors {
		i.Intercept(req)
	}

	if reqID := string(req.Header.Peek(headerRequestID)); reqID != "" {
		ctx = logger.ContextWithRequestID(ctx, reqID)
	}
	log := logger.WithRequestID(ctx, c.logger)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeNetwork, fallbackDetail, err)
	}

	status := resp.StatusCode()
	for _, h := range c.hooks {
		h.OnResponse(status)
	}

	if status >= http.StatusBadRequest {
		nerr := normalize(status, resp.Body())
		log.Debug("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("detail", nerr.Detail))
		return nil, nerr
	}

	return append([]byte(nil), resp.Body()...), nil
}

// Get issues a GET request; query entries are appended to the URL.
func (c *Client) Get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.Do(ctx, fasthttp.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.Do(ctx, fasthttp.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.Do(ctx, fasthttp.MethodPut, path, nil, body)
}

// Patch issues a bodyless PATCH request.
func (c *Client) Patch(ctx context.Context, path string) ([]byte, error) {
	return c.Do(ctx, fasthttp.MethodPatch, path, nil, nil)
}

func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.Do(ctx, fasthttp.MethodDelete, path, nil, nil)
}

// normalize turns an HTTP error response into the uniform error shape,
// preferring the server's {"detail": ...} field when present.
func normalize(status int, body []byte) *domain.Error {
	detail := fallbackDetail
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}
	return &domain.Error{
		Code:   codeForStatus(status),
		Detail: detail,
		Status: status,
	}
}

func codeForStatus(status int) domain.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrCodeUnauthorized
	case http.StatusNotFound:
		return domain.ErrCodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrCodeInvalid
	default:
		return domain.ErrCodeInternal
	}
}
