// Package httpapi implements the service.Service interface against the task
// REST API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"todo/internal/service"
)

// API paths. Task ids are appended to the id-scoped ones.
const (
	tasksPath    = "/api/tasks"
	completePath = "/api/tasks/"
	undoPath     = "/api/undoTask/"
	deletePath   = "/api/deleteTask/"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the API address, e.g. http://localhost:9000.
	BaseURL string

	// Token, when set, is sent as a bearer token.
	Token string

	// Timeout bounds each request. Zero disables it.
	Timeout time.Duration

	// HTTPClient is the base client. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Debug receives one line per request. Nil disables debug output.
	Debug *log.Logger
}

// Client implements service.Service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	debug   *log.Logger
}

var _ service.Service = (*Client)(nil)

// wireTask is the record shape used by the API.
type wireTask struct {
	ID     string `json:"_id"`
	Task   string `json:"task"`
	Status bool   `json:"status"`
}

type createRequest struct {
	Task string `json:"task"`
}

// New creates a new API client.
func New(ctx context.Context, opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url: %q", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.Token != "" {
		// oauth2.NewClient layers the token transport over the client in ctx
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: opts.Token,
			TokenType:   "Bearer",
		}))
	}

	return &Client{
		baseURL: strings.TrimRight(base.String(), "/"),
		http:    httpClient,
		timeout: opts.Timeout,
		debug:   opts.Debug,
	}, nil
}

// ListTasks returns every task in server order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	body, err := c.do(ctx, http.MethodGet, tasksPath, nil)
	if err != nil {
		return nil, err
	}

	// The server answers an empty collection with null or nothing at all.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []service.Task{}, nil
	}

	var records []wireTask
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: GET %s: malformed body: %w", service.ErrRequestFailed, tasksPath, err)
	}

	result := make([]service.Task, 0, len(records))
	for _, r := range records {
		result = append(result, service.Task{
			ID:   r.ID,
			Text: r.Task,
			Done: r.Status,
		})
	}
	return result, nil
}

// CreateTask creates a task with the given text.
func (c *Client) CreateTask(ctx context.Context, text string) error {
	payload, err := json.Marshal(createRequest{Task: text})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, tasksPath, payload)
	return err
}

// CompleteTask marks a task as done.
func (c *Client) CompleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, completePath+url.PathEscape(id), nil)
	return err
}

// UndoTask marks a task as not done.
func (c *Client) UndoTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, undoPath+url.PathEscape(id), nil)
	return err
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, deletePath+url.PathEscape(id), nil)
	return err
}

// do sends one request and returns the response body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, wrapError(method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logf("%s %s -> %v", method, path, err)
		return nil, wrapError(method, path, err)
	}
	defer resp.Body.Close()
	c.logf("%s %s -> %d", method, path, resp.StatusCode)

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, wrapError(method, path, err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(method, path, err)
	}
	return data, nil
}

func (c *Client) logf(format string, args ...any) {
	if c.debug != nil {
		c.debug.Printf("debug: "+format, args...)
	}
}

// wrapError tags err as a failed request, keeping the cause reachable.
func wrapError(method, path string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s: request timed out: %w", service.ErrRequestFailed, method, path, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s %s: token rejected (HTTP %d): %w", service.ErrRequestFailed, method, path, apiErr.Code, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s %s: not found: %w", service.ErrRequestFailed, method, path, err)
		}
	}

	return fmt.Errorf("%w: %s %s: %w", service.ErrRequestFailed, method, path, err)
}
