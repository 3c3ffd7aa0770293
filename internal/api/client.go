package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

// Client wraps the remote job-board API. The cookie jar holds the session
// credential the server sets on login; every later request carries it
// automatically. No timeout and no retry: a call either completes or
// fails with a typed error.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}, nil
}

// ResetCredential drops the stored session cookies. Used on logout so no
// stale credential survives into the next login.
func (c *Client) ResetCredential() {
	jar, _ := cookiejar.New(nil)
	c.http.Jar = jar
}

// Success predicates, one per operation class. The server is not fully
// consistent about which 2xx it returns, so each class accepts the set
// observed in practice rather than a per-call list.
func readOK(code int) bool   { return code == http.StatusOK }
func createOK(code int) bool { return code == http.StatusOK || code == http.StatusCreated }
func updateOK(code int) bool { return code == http.StatusOK || code == http.StatusNoContent }
func deleteOK(code int) bool { return code == http.StatusNoContent }

// Get fetches path and decodes the 200 body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, readOK)
}

// Post issues a create-class request; the response body, if any, is
// decoded into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, createOK)
}

// Put issues an update-class request. Responses are typically empty.
func (c *Client) Put(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPut, path, body, nil, updateOK)
}

// Delete issues a delete-class request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, deleteOK)
}

// PostRead is for POST endpoints that answer 200 only (login, logout).
func (c *Client) PostRead(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPost, path, body, nil, readOK)
}

// DeleteRead is for DELETE endpoints that answer 200 only (account delete).
func (c *Client) DeleteRead(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, readOK)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, ok func(int) bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &ConnectionError{Err: err}
	}

	if !ok(res.StatusCode) {
		return &FetchError{StatusCode: res.StatusCode, Message: serverMessage(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &FetchError{StatusCode: res.StatusCode, Message: "malformed response: " + err.Error()}
		}
	}
	return nil
}
