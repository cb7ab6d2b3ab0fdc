package news

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultSerperURL is the Serper news search endpoint.
const DefaultSerperURL = "https://google.serper.dev/news"

// serperRequest is the search request payload sent to Serper.
type serperRequest struct {
	Query    string `json:"q"`
	Num      int    `json:"num"`
	Language string `json:"hl"`
	Region   string `json:"gl"`
}

// serperResponse is the subset of the Serper response we consume.
type serperResponse struct {
	News []serperItem `json:"news"`
}

// serperItem is one news result as returned by Serper.
type serperItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Source  string `json:"source"`
	Date    string `json:"date"`
}

// SerperClient fetches news from the Serper API. It requires an API key;
// an unconfigured client reports itself unavailable so the searcher can
// skip straight to the fallback provider.
type SerperClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewSerperClient creates a new Serper API client.
func NewSerperClient(apiURL, apiKey string) *SerperClient {
	if apiURL == "" {
		apiURL = DefaultSerperURL
	}
	return &SerperClient{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Available reports whether the client has a credential configured.
func (c *SerperClient) Available() bool {
	return c.apiKey != ""
}

// SearchNews fetches up to num news results for the given query.
// Returns the normalized records or an error for any non-200 response.
func (c *SerperClient) SearchNews(ctx context.Context, query string, num int) ([]Record, error) {
	payload := serperRequest{
		Query:    query,
		Num:      num,
		Language: "en",
		Region:   "us",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search request")
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - parse response below
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, errors.Errorf("authentication error (HTTP %d): API key invalid or expired", resp.StatusCode)
	case http.StatusTooManyRequests:
		return nil, errors.New("rate limit exceeded (HTTP 429): too many requests")
	default:
		return nil, errors.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	var searchResp serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, errors.Wrap(err, "failed to parse search response")
	}

	records := make([]Record, 0, len(searchResp.News))
	for _, item := range searchResp.News {
		records = append(records, Record{
			Title:     item.Title,
			Snippet:   item.Snippet,
			Link:      item.Link,
			Source:    item.Source,
			Published: item.Date,
			Origin:    OriginSerper,
		})
	}

	return records, nil
}
