package news

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// dedupeKeyLength is how many characters of the normalized title form the
// deduplication key.
const dedupeKeyLength = 50

// Provider is a news source that can be queried for articles.
type Provider interface {
	SearchNews(ctx context.Context, query string, num int) ([]Record, error)
}

// Searcher retrieves location-relevant disaster news. It tries the primary
// provider first, falls back to the secondary provider, and finally to
// static placeholder records so downstream stages always receive input.
type Searcher struct {
	primary   *SerperClient
	secondary Provider
	logger    *zap.SugaredLogger
}

// NewSearcher creates a new searcher over the given providers.
func NewSearcher(primary *SerperClient, secondary Provider, logger *zap.SugaredLogger) *Searcher {
	return &Searcher{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// searchQueries builds the fixed query set for a location.
func searchQueries(location string) []string {
	return []string{
		fmt.Sprintf("%s disaster emergency alert", location),
		fmt.Sprintf("%s earthquake flood hurricane", location),
		fmt.Sprintf("%s weather warning evacuation", location),
	}
}

// Search retrieves up to maxResults deduplicated news records for a location.
// Per-query provider errors are logged and skipped; the search as a whole
// never fails and never returns an empty slice.
//
// Each query requests maxResults divided by the query count, so a
// maxResults below the query count yields zero items per query and the
// placeholder set is returned. Known limitation, kept for parity with the
// deployed behavior.
func (s *Searcher) Search(ctx context.Context, location string, maxResults int) []Record {
	queries := searchQueries(location)
	perQuery := maxResults / len(queries)

	var records []Record

	if s.primary != nil && s.primary.Available() {
		s.logger.Debugw("Searching with primary provider", "location", location)
		records = s.runQueries(ctx, s.primary, queries, perQuery)
	}

	if len(records) == 0 && s.secondary != nil {
		s.logger.Debugw("Falling back to secondary provider", "location", location)
		records = s.runQueries(ctx, s.secondary, queries, perQuery)
	}

	if len(records) == 0 {
		s.logger.Infow("All providers unavailable, using placeholder records", "location", location)
		records = PlaceholderRecords(location)
	}

	unique := Deduplicate(records)
	if len(unique) > maxResults {
		unique = unique[:maxResults]
	}
	return unique
}

// Capabilities reports which retrieval paths are currently available.
// Placeholder data is always available by construction.
func (s *Searcher) Capabilities() map[string]bool {
	return map[string]bool{
		"serper_api": s.primary != nil && s.primary.Available(),
		"duckduckgo": s.secondary != nil,
		"mock_data":  true,
	}
}

// runQueries executes each query against a provider, accumulating results
// and degrading gracefully query-by-query.
func (s *Searcher) runQueries(ctx context.Context, provider Provider, queries []string, perQuery int) []Record {
	var records []Record
	for _, query := range queries {
		found, err := provider.SearchNews(ctx, query, perQuery)
		if err != nil {
			s.logger.Warnw("News query failed", "query", query, "error", err)
			continue
		}
		records = append(records, found...)
	}
	return records
}

// Deduplicate removes records whose titles agree, case-insensitively, in
// their first 50 characters. The first occurrence wins and ordering is
// preserved.
func Deduplicate(records []Record) []Record {
	unique := make([]Record, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, record := range records {
		key := strings.TrimSpace(strings.ToLower(record.Title))
		if len(key) > dedupeKeyLength {
			key = key[:dedupeKeyLength]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, record)
	}

	return unique
}
