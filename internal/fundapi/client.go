package fundapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/epeers/fundmanager/internal/models"
	log "github.com/sirupsen/logrus"
)

// BasePath is appended to the configured backend root
const BasePath = "/fundapi"

// Client is an HTTP client for the fund backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend rooted at root
func NewClient(root string) *Client {
	return &Client{
		baseURL: strings.TrimRight(root, "/") + BasePath,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListFunds fetches every fund record
func (c *Client) ListFunds(ctx context.Context) ([]models.Fund, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/all", nil)
	if err != nil {
		return nil, err
	}

	var funds []models.Fund
	if err := json.Unmarshal(body, &funds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fund list: %w", err)
	}
	if funds == nil {
		funds = []models.Fund{}
	}
	return funds, nil
}

// AddFund creates a fund record
func (c *Client) AddFund(ctx context.Context, payload models.FundPayload) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/add", payload)
	return err
}

// UpdateFund replaces the record whose fundId is carried in the payload
func (c *Client) UpdateFund(ctx context.Context, payload models.FundPayload) error {
	_, err := c.doRequest(ctx, http.MethodPut, "/update", payload)
	return err
}

// DeleteFund removes a fund record and returns the backend's response body
func (c *Client) DeleteFund(ctx context.Context, id int64) ([]byte, error) {
	return c.doRequest(ctx, http.MethodDelete, "/delete/"+strconv.FormatInt(id, 10), nil)
}

// GetFund fetches one record by the id exactly as typed. A successful empty
// body yields a nil lookup.
func (c *Client) GetFund(ctx context.Context, id string) (*models.Lookup, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/get/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var fund models.Fund
	if err := json.Unmarshal(body, &fund); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fund: %w", err)
	}
	return &models.Lookup{Fund: fund, Raw: json.RawMessage(body)}, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	log.Debugf("%s %s begins (fund backend)", method, path)

	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	log.Debugf("%s %s ends (fund backend, status %d)", method, path, resp.StatusCode)
	return body, nil
}
