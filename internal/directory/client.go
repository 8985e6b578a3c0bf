package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/Veraticus/nuban/internal/common"
	"github.com/Veraticus/nuban/internal/config"
	"github.com/Veraticus/nuban/internal/model"
)

// maxErrorBody bounds how much of an error response is copied into errors.
const maxErrorBody = 512

// Client implements Directory against a Paystack-style bank listing API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// bankListResponse is the envelope returned by GET /bank.
type bankListResponse struct {
	Message string       `json:"message"`
	Data    []bankRecord `json:"data"`
	Status  bool         `json:"status"`
}

// bankRecord carries the fields of a directory entry this package reads.
// The API returns more (slug, currency, type, ...) which are ignored.
type bankRecord struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active *bool  `json:"active,omitempty"`
}

// NewClient creates a directory client. The token is sent as a bearer
// token on every request.
func NewClient(cfg config.DirectoryConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     slog.Default().With("component", "directory"),
	}, nil
}

// ListBanks fetches every bank the directory knows about. Inactive banks
// are dropped; entries keep the order the directory returned them in.
func (c *Client) ListBanks(ctx context.Context) ([]model.Bank, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	endpoint := c.baseURL + "/bank?country=nigeria&perPage=100"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Requesting bank list", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDirectoryConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", common.ErrDirectoryUnauthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %d - %s", common.ErrDirectoryConnection, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload bankListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !payload.Status {
		return nil, fmt.Errorf("%w: %s", common.ErrDirectoryConnection, payload.Message)
	}

	banks := toBanks(payload.Data)
	if len(banks) == 0 {
		return nil, common.ErrEmptyBankList
	}

	c.logger.Info("Fetched bank list", "count", len(banks))
	return banks, nil
}

func toBanks(records []bankRecord) []model.Bank {
	banks := make([]model.Bank, 0, len(records))
	for _, r := range records {
		if r.Active != nil && !*r.Active {
			continue
		}
		banks = append(banks, model.Bank{
			Name: strings.TrimSpace(r.Name),
			Code: strings.TrimSpace(r.Code),
		})
	}
	return banks
}

// Ensure Client implements Directory interface.
var _ Directory = (*Client)(nil)
