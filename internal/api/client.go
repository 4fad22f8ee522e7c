// Package api is the client for the remote books API. Every request
// carries the session manager's auth headers; no call site builds its
// own Authorization header.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an authenticated books API client.
type Client struct {
	baseURL string
	headers func() map[string]string
	http    *http.Client
}

// New creates a Client for the API at baseURL. headers supplies the
// per-request auth headers (the session manager's AuthHeaders).
func New(baseURL string, headers func() map[string]string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		http: &http.Client{
			Timeout: 5 * time.Minute, // no per-call cancellation; a hung call leaves the spinner up
		},
	}
}

// do executes the request with the session's headers applied.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	for k, v := range c.headers() {
		req.Header.Set(k, v)
	}
	return c.http.Do(req)
}

// doJSON sends a request and decodes the JSON response into out.
func (c *Client) doJSON(method, url string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("books API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
