// Package api is the HTTP client for the remote document store.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ourstory-app/ourstory/internal/common"
)

// Document is one stored document: its id plus its raw field set.
type Document struct {
	ID     string          `json:"id"`
	Fields json.RawMessage `json:"fields"`
}

// PresignResult is the server's answer to a presign request.
type PresignResult struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// Client talks to the server. Safe for concurrent use; the session token
// is set once by Login and read by every request.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Login exchanges the shared passcode for a session token and stores it
// for subsequent requests.
func (c *Client) Login(ctx context.Context, passcode string) error {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/session", map[string]string{"passcode": passcode}, &resp)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = resp.AccessToken
	c.mu.Unlock()
	return nil
}

// SetToken installs a previously obtained session token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// HasToken reports whether a session token is installed.
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// ListAll returns every document in the collection.
func (c *Client) ListAll(ctx context.Context, collection string) ([]Document, error) {
	var resp struct {
		Documents []Document `json:"documents"`
	}
	err := c.do(ctx, http.MethodGet, "/api/collections/"+collection, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// Get returns one document's fields.
func (c *Client) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var fields json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/collections/"+collection+"/"+id, nil, &fields)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// Put writes (or with merge, shallow-merges) a document's fields.
func (c *Client) Put(ctx context.Context, collection, id string, fields any, merge bool) error {
	path := "/api/collections/" + collection + "/" + id
	if merge {
		path += "?merge=1"
	}
	return c.do(ctx, http.MethodPut, path, fields, nil)
}

// Delete removes one document.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/collections/"+collection+"/"+id, nil, nil)
}

// DeleteAll removes every document in the collection.
func (c *Client) DeleteAll(ctx context.Context, collection string) error {
	return c.do(ctx, http.MethodDelete, "/api/collections/"+collection, nil, nil)
}

// Presign asks the server for a one-shot upload URL for a record image.
func (c *Client) Presign(ctx context.Context, recordID, fileName string) (PresignResult, error) {
	var resp PresignResult
	req := map[string]string{"record_id": recordID, "file_name": fileName}
	err := c.do(ctx, http.MethodPost, "/api/media/presign", req, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("request encode error: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrorNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: unexpected status %d", common.ErrorInternal, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("response decode error: %w", err)
		}
	}
	return nil
}
