package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var (
	// ErrNotFound means the document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrPermissionDenied means the store's access-control rules rejected the call.
	ErrPermissionDenied = errors.New("permission denied by document store")
)

// Client is the HTTP wrapper for the document store REST API.
// Documents live in named collections and support partial field updates.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new document store HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// GetDocument fetches a single document by ID and decodes it into out.
func (c *Client) GetDocument(ctx context.Context, collection, id string, out any) error {
	endpoint := fmt.Sprintf("%s/api/v1/collections/%s/documents/%s", c.baseURL, collection, id)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build get document request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call document store get API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "get"); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode get document response: %w", err)
	}
	return nil
}

// ListDocuments lists documents in a collection with optional query
// filters and decodes the response body into out. The store returns
// {"documents": [...]}, so out should match that envelope.
func (c *Client) ListDocuments(ctx context.Context, collection string, filter url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/api/v1/collections/%s/documents", c.baseURL, collection)
	if len(filter) > 0 {
		endpoint += "?" + filter.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build list documents request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call document store list API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "list"); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode list documents response: %w", err)
	}
	return nil
}

// PatchDocument applies a partial field update to a document. Only the
// keys present in fields are rewritten; dotted keys address nested
// fields (e.g. "courseData.assignments").
func (c *Client) PatchDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	endpoint := fmt.Sprintf("%s/api/v1/collections/%s/documents/%s", c.baseURL, collection, id)

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal patch document request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build patch document request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call document store patch API: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp, "patch")
}

func checkStatus(resp *http.Response, op string) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrPermissionDenied
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("document store %s error %d: %s", op, resp.StatusCode, string(raw))
	}
}
