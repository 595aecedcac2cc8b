package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jimezsa/jobextract/internal/output"
	"github.com/jimezsa/jobextract/internal/scraper"
	"github.com/jimezsa/jobextract/internal/seen"
)

type LinksCmd struct {
	Limit   int    `short:"n" help:"Maximum number of links." default:"10"`
	Site    string `help:"Listing site: golangprojects or custom (default from config)."`
	NewOnly bool   `help:"Skip links already extracted into --out."`
	Out     string `name:"out" short:"o" help:"Output directory checked by --new-only (default ./jobs)." env:"JOBEXTRACT_OUT"`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBEXTRACT_PROXIES"`
}

func (l *LinksCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	client, err := ctx.httpClient(l.Proxies)
	if err != nil {
		return err
	}

	registry := scraper.Registry(client, scraper.CustomBoard{
		ListURL: cfg.ListingURL,
		Prefix:  cfg.ListingPrefix,
	})
	lister, err := scraper.Select(registry, firstNonEmpty(l.Site, cfg.ListingSite, scraper.SiteGolangProjects))
	if err != nil {
		return err
	}

	ctx.Logger.Debug().Str("site", lister.Name()).Int("limit", l.Limit).Msg("discovering links")
	links, err := lister.LatestLinks(context.Background(), l.Limit)
	if err != nil {
		return err
	}

	if l.NewOnly {
		saved, err := output.ReadRecords(firstNonEmpty(l.Out, cfg.OutDir))
		if err != nil {
			return fmt.Errorf("read --out: %w", err)
		}
		var stats seen.DiffStats
		links, stats = seen.Diff(links, saved)
		printLinksSummary(ctx, stats)
	}

	return writeLinks(ctx, links)
}

func writeLinks(ctx *Context, links []string) error {
	if ctx.JSONOutput {
		if links == nil {
			links = []string{}
		}
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(links)
	}
	if len(links) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(ctx.Out, strings.Join(links, "\n"))
	return err
}

func printLinksSummary(ctx *Context, stats seen.DiffStats) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(ctx.Err, "summary: links=%d saved=%d invalid=%d new=%d\n",
		stats.TotalLinks, stats.TotalSeen, stats.Invalid, stats.Unseen)
}
