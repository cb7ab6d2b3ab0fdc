package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DefaultDuckDuckGoURL is the DuckDuckGo news search endpoint.
const DefaultDuckDuckGoURL = "https://duckduckgo.com/news.js"

// snippetLimit bounds the excerpt length taken from DuckDuckGo article bodies.
const snippetLimit = 200

// duckDuckGoResponse is the subset of the DuckDuckGo response we consume.
type duckDuckGoResponse struct {
	Results []duckDuckGoItem `json:"results"`
}

// duckDuckGoItem is one news result as returned by DuckDuckGo.
type duckDuckGoItem struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

// DuckDuckGoClient fetches news from DuckDuckGo. It requires no credential,
// which makes it the backup provider when Serper is unconfigured or fails.
type DuckDuckGoClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewDuckDuckGoClient creates a new DuckDuckGo news client.
func NewDuckDuckGoClient(apiURL string) *DuckDuckGoClient {
	if apiURL == "" {
		apiURL = DefaultDuckDuckGoURL
	}
	return &DuckDuckGoClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchNews fetches up to num news results for the given query.
func (c *DuckDuckGoClient) SearchNews(ctx context.Context, query string, num int) ([]Record, error) {
	reqURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid DuckDuckGo URL")
	}

	params := reqURL.Query()
	params.Set("q", query)
	params.Set("max_results", strconv.Itoa(num))
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	var searchResp duckDuckGoResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, errors.Wrap(err, "failed to parse search response")
	}

	records := make([]Record, 0, len(searchResp.Results))
	for _, item := range searchResp.Results {
		if len(records) >= num {
			break
		}

		source := item.Source
		if source == "" {
			source = "DuckDuckGo"
		}
		published := item.Date
		if published == "" {
			published = "Recent"
		}

		records = append(records, Record{
			Title:     item.Title,
			Snippet:   truncateSnippet(item.Body, snippetLimit),
			Link:      item.URL,
			Source:    source,
			Published: published,
			Origin:    OriginDuckDuckGo,
		})
	}

	return records, nil
}

// truncateSnippet bounds text to limit characters, appending an ellipsis
// when anything was cut.
func truncateSnippet(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
