package scraper

import (
	"context"
	"errors"
)

var ErrUnknownSite = errors.New("unknown listing site")

// Lister discovers posting URLs on a job board's listing page.
type Lister interface {
	Name() string
	LatestLinks(ctx context.Context, n int) ([]string, error)
}
