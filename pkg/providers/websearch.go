package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dealdesk/dealdesk/pkg/config"
)

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchClient queries a web search API for qualitative context (news,
// litigation, market commentary). A nil client is valid and returns no
// results, so search stays optional.
type SearchClient struct {
	baseURL    string
	apiKeyEnv  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSearchClient builds the client, or returns nil when search is not
// configured.
func NewSearchClient(cfg *config.DataSourceConfig) *SearchClient {
	if cfg.SearchBaseURL == "" {
		return nil
	}
	return &SearchClient{
		baseURL:    cfg.SearchBaseURL,
		apiKeyEnv:  cfg.SearchAPIKeyEnv,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(2), 2),
	}
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Search runs a query and returns up to maxResults hits.
func (c *SearchClient) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if c == nil {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(searchRequest{Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKeyEnv != "" {
		if key := os.Getenv(c.apiKeyEnv); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{Source: "search-api", StatusCode: res.StatusCode, Body: string(resBody)}
	}

	var parsed searchResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return nil, fmt.Errorf("search-api: failed to decode response: %w", err)
	}
	return parsed.Results, nil
}
