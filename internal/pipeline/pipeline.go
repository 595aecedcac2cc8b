// Package pipeline runs a single posting through fetch, extraction,
// enrichment and persistence.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jimezsa/jobextract/internal/condense"
	"github.com/jimezsa/jobextract/internal/models"
	"github.com/jimezsa/jobextract/internal/output"
	"github.com/rs/zerolog"
)

// Fetcher retrieves the raw HTML of a posting.
type Fetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
}

// Extractor turns posting HTML into a validated record.
type Extractor interface {
	Extract(ctx context.Context, html string) (models.JobRecord, error)
}

// Options control a Driver.
type Options struct {
	OutDir   string
	Condense bool
}

type Driver struct {
	fetcher   Fetcher
	extractor Extractor
	opts      Options
	logger    zerolog.Logger
	now       func() time.Time
}

func New(fetcher Fetcher, extractor Extractor, opts Options, logger zerolog.Logger) *Driver {
	return &Driver{
		fetcher:   fetcher,
		extractor: extractor,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

// Run extracts the posting at sourceURL and returns the path it was written
// to. Nothing is written when fetching or extraction fails.
func (d *Driver) Run(ctx context.Context, sourceURL string) (string, error) {
	d.logger.Debug().Str("url", sourceURL).Msg("fetching posting")
	html, err := d.fetcher.FetchHTML(ctx, sourceURL)
	if err != nil {
		return "", err
	}
	d.logger.Debug().Int("bytes", len(html)).Msg("fetched posting")

	if d.opts.Condense {
		condensed, err := condense.HTML(html)
		if err != nil {
			return "", fmt.Errorf("condense: %w", err)
		}
		d.logger.Debug().Int("before", len(html)).Int("after", len(condensed)).Msg("condensed page")
		html = condensed
	}

	record, err := d.extractor.Extract(ctx, html)
	if err != nil {
		return "", err
	}

	now := d.now().UTC()
	posting := models.Posting{
		JobRecord: record,
		SourceURL: sourceURL,
		ScrapedAt: now.Format(time.RFC3339Nano),
	}

	path, err := output.ResolvePath(record, sourceURL, d.opts.OutDir, now)
	if err != nil {
		return "", err
	}
	d.logger.Debug().Str("path", path).Msg("writing posting")

	if err := output.WriteRecord(path, posting); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
