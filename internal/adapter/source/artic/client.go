package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/vitrine/internal/domain"
)

const (
	// DefaultBaseURL is the public Art Institute of Chicago API
	DefaultBaseURL = "https://api.artic.edu/api/v1"
	// DefaultLimit is the largest page the API serves
	DefaultLimit = 100

	DefaultTimeout = 30 * time.Second
	maxBodyBytes   = 8 << 20
)

var (
	summaryFields = []string{"id", "title", "artist_display", "image_id", "artwork_type_title"}
	detailFields  = []string{
		"id", "title", "artist_display", "image_id",
		"date_display", "medium_display", "description", "dimensions", "credit_line",
	}
)

// Client reads artworks from the Art Institute of Chicago API.
// Each call issues exactly one HTTP request; failures are not retried.
type Client struct {
	baseURL    string
	limit      int
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithLimit sets the collection page size
func WithLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithTimeout bounds each request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the AIC-User-Agent header the API asks clients to send
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new collection API client
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   DefaultLimit,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs a single GET against the API and returns the body of
// a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("AIC-User-Agent", c.userAgent)
	}

	c.logger.Debug("artic request", "url", reqURL)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Error("artic request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("artic response", "url", reqURL, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrArtworkNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("artic request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: %d %s", domain.ErrUnexpectedStatus, resp.StatusCode, apiErrorDetail(body))
	}

	return body, nil
}

// apiErrorDetail extracts the message from an API error body, if any
func apiErrorDetail(body []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}

// FetchCollection returns up to the configured limit of artwork summaries.
// Records without an artwork type are dropped.
func (c *Client) FetchCollection(ctx context.Context) ([]domain.ArtworkSummary, error) {
	query := url.Values{}
	query.Set("fields", strings.Join(summaryFields, ","))
	query.Set("limit", strconv.Itoa(c.limit))

	body, err := c.doRequest(ctx, "/artworks", query)
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.KindCollection, Err: err}
	}

	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.FetchError{
			Kind: domain.KindCollection,
			Err:  fmt.Errorf("failed to parse response: %w", err),
		}
	}

	items := MapSummaries(resp.Data)
	if resp.Pagination != nil {
		c.logger.Debug("collection page", "total", resp.Pagination.Total, "limit", resp.Pagination.Limit)
	}
	c.logger.Info("collection fetched", "received", len(resp.Data), "kept", len(items))
	return items, nil
}

// FetchDetail returns the full record for one artwork
func (c *Client) FetchDetail(ctx context.Context, id int) (*domain.ArtworkDetail, error) {
	query := url.Values{}
	query.Set("fields", strings.Join(detailFields, ","))

	body, err := c.doRequest(ctx, "/artworks/"+strconv.Itoa(id), query)
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.KindDetail, ID: id, Err: err}
	}

	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.FetchError{
			Kind: domain.KindDetail,
			ID:   id,
			Err:  fmt.Errorf("failed to parse response: %w", err),
		}
	}
	if resp.Data == nil {
		return nil, &domain.FetchError{Kind: domain.KindDetail, ID: id, Err: domain.ErrArtworkNotFound}
	}

	return MapDetail(*resp.Data), nil
}
