// Package seen tells which discovered posting links were already extracted,
// based on the source_url of postings saved in the output directory.
package seen

import (
	"net/url"
	"strings"

	"github.com/jimezsa/jobextract/internal/models"
)

// DiffStats captures stats for filtering discovered links.
type DiffStats struct {
	TotalLinks int
	TotalSeen  int
	Invalid    int
	Unseen     int
}

// Key normalizes a posting URL: scheme and host are lower-cased, a leading
// "www." and the fragment are dropped, and trailing slashes are trimmed.
func Key(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	path := strings.TrimRight(parsed.EscapedPath(), "/")
	key := strings.ToLower(parsed.Scheme) + "://" + host + path
	if parsed.RawQuery != "" {
		key += "?" + parsed.RawQuery
	}
	return key, true
}

// Keys returns the set of keys for postings' source URLs.
func Keys(postings []models.SavedPosting) map[string]struct{} {
	keys := make(map[string]struct{}, len(postings))
	for _, posting := range postings {
		if key, ok := Key(posting.SourceURL); ok {
			keys[key] = struct{}{}
		}
	}
	return keys
}

// Diff returns the links that no saved posting was extracted from, keeping
// their order. Invalid links are dropped.
func Diff(links []string, postings []models.SavedPosting) ([]string, DiffStats) {
	stats := DiffStats{TotalLinks: len(links), TotalSeen: len(postings)}
	keys := Keys(postings)

	unseen := make([]string, 0, len(links))
	for _, link := range links {
		key, ok := Key(link)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		unseen = append(unseen, link)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}
