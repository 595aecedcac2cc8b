package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jimezsa/jobextract/internal/config"
	"github.com/jimezsa/jobextract/internal/extract"
	"github.com/jimezsa/jobextract/internal/pipeline"
)

type ExtractCmd struct {
	URL      string `arg:"" help:"Job posting URL."`
	Out      string `name:"out" short:"o" help:"Output directory (default ./jobs)." env:"JOBEXTRACT_OUT"`
	Condense bool   `help:"Strip boilerplate and send Markdown instead of raw HTML." env:"JOBEXTRACT_CONDENSE"`
	Provider string `help:"Completion provider: gemini or openai." enum:",gemini,openai" default:""`
	Model    string `help:"Model name for the completion provider."`
	Proxies  string `help:"Comma-separated proxy URLs." env:"JOBEXTRACT_PROXIES"`
}

func (e *ExtractCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	cfg.Provider = firstNonEmpty(e.Provider, cfg.Provider)
	cfg.Model = firstNonEmpty(e.Model, cfg.Model)

	settings, err := cfg.LLMSettings()
	if err != nil {
		return err
	}
	if err := validatePostingURL(e.URL); err != nil {
		return err
	}

	runCtx := context.Background()
	completer, err := ctx.completer(runCtx, settings)
	if err != nil {
		return err
	}
	client, err := ctx.httpClient(e.Proxies)
	if err != nil {
		return err
	}

	driver := pipeline.New(
		client,
		extract.New(completer, ctx.Logger),
		pipeline.Options{
			OutDir:   e.outDir(cfg),
			Condense: e.Condense || cfg.Condense,
		},
		ctx.Logger,
	)

	path, err := driver.Run(runCtx, e.URL)
	if err != nil {
		return err
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(extractResult{Path: path})
	}
	ctx.UI.Successf("wrote %s", path)
	return nil
}

type extractResult struct {
	Path string `json:"path"`
}

// outDir is --out, then the configured directory, then ./jobs.
func (e *ExtractCmd) outDir(cfg config.Config) string {
	return firstNonEmpty(e.Out, cfg.OutDir, config.DefaultOutDir)
}

func validatePostingURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", raw)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
