package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/jimezsa/jobextract/internal/network"
)

const listingTimeout = 10 * time.Second

// Board lists postings from a single listing page whose anchors share a path
// prefix. There is no pagination.
type Board struct {
	name    string
	listURL string
	baseURL string
	prefix  string
	client  *network.Client
}

func NewBoard(name, listURL, baseURL, prefix string, client *network.Client) *Board {
	if baseURL == "" {
		baseURL = listURL
	}
	return &Board{
		name:    name,
		listURL: listURL,
		baseURL: baseURL,
		prefix:  prefix,
		client:  client,
	}
}

func (b *Board) Name() string {
	return b.name
}

func (b *Board) LatestLinks(ctx context.Context, n int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, listingTimeout)
	defer cancel()

	doc, err := fetchDocument(ctx, b.client, b.listURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}
	return collectLinks(doc, prefixSelector(b.prefix), b.baseURL, n), nil
}
