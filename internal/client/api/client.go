package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/outreach/internal/logging"
	"github.com/dmitrijs2005/outreach/internal/netx"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	PostMultipart(ctx context.Context, path string, form *netx.Form, out any) error
	PutMultipart(ctx context.Context, path string, form *netx.Form, out any) error
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     logging.Logger
}

// NewHTTPClient returns a transport rooted at baseURL. tokens may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

func (c *HTTPClient) PostMultipart(ctx context.Context, path string, form *netx.Form, out any) error {
	return c.doForm(ctx, http.MethodPost, path, form, out)
}

func (c *HTTPClient) PutMultipart(ctx context.Context, path string, form *netx.Form, out any) error {
	return c.doForm(ctx, http.MethodPut, path, form, out)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &Error{Method: method, Path: path, Message: "marshal request: " + err.Error(), Status: statusLocal, cause: err}
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", out)
}

func (c *HTTPClient) doForm(ctx context.Context, method, path string, form *netx.Form, out any) error {
	if form == nil {
		form = &netx.Form{}
	}
	body, contentType, err := form.Encode()
	if err != nil {
		return &Error{Method: method, Path: path, Message: err.Error(), Status: statusLocal, cause: err}
	}
	return c.do(ctx, method, path, body, contentType, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	requestID := uuid.NewString()
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Method: method, Path: path, Status: statusLocal, Message: "create request: " + err.Error(), cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &Error{Method: method, Path: path, Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Message: "read response: " + err.Error(), cause: err}
	}

	c.logger.Debug(ctx, "api request",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started))

	if resp.StatusCode >= 400 {
		return &Error{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: serverMessage(resp.StatusCode, respBody),
			Body:    respBody,
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode response: %v", err),
			Body:    respBody,
			cause:   err,
		}
	}
	return nil
}
