package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// QueryResponse represents the standard response format from the HTTP API
type QueryResponse struct {
	Data        json.RawMessage `json:"data"`
	Height      int64           `json:"height"`
	LastFetched time.Time       `json:"last_fetched"`
}

// ErrorResponse represents an error response from the HTTP API
type ErrorResponse struct {
	Error string `json:"error"`
}

// nodeClient talks to the query server of a running node.
type nodeClient struct {
	baseURL string
	http    *http.Client
}

func newNodeClient(baseURL string) *nodeClient {
	return &nodeClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *nodeClient) get(path string, query url.Values) (*QueryResponse, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *nodeClient) post(path string, body interface{}) (*QueryResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *nodeClient) do(req *http.Request) (*QueryResponse, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach node at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
			return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
	}

	var queryResp QueryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &queryResp, nil
}
