package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/jimezsa/jobextract/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Create config.json and proxies.txt with defaults."`
	Path PathConfigCmd `cmd:"" help:"Print the config directory."`
	Show ShowConfigCmd `cmd:"" help:"Print the effective settings after env overrides."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

type ShowConfigCmd struct{}

func (c *InitConfigCmd) Run(ctx *Context) error {
	paths, err := config.Init(ctx.ConfigDir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		ctx.UI.Successf("created %s", path)
	}
	if len(paths) == 0 {
		ctx.UI.Infof("config already present in %s", ctx.ConfigDir)
	}
	if _, err := ctx.Config.APIKey(); err != nil {
		ctx.UI.Warnf("%v", err)
	}
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Out, ctx.ConfigDir)
	return err
}

// effectiveConfig is what `config show` reports. The credential itself is
// never printed, only whether it is set.
type effectiveConfig struct {
	config.Config
	Credential    string `json:"credential"`
	CredentialSet bool   `json:"credential_set"`
}

func (c *ShowConfigCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	_, keyErr := cfg.APIKey()
	shown := effectiveConfig{
		Config:        cfg,
		Credential:    cfg.CredentialEnv(),
		CredentialSet: keyErr == nil,
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(shown)
	}

	credential := "missing"
	if shown.CredentialSet {
		credential = "set"
	}
	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "provider\t%s\n", cfg.Provider)
	fmt.Fprintf(tw, "model\t%s\n", cfg.Model)
	if cfg.BaseURL != "" {
		fmt.Fprintf(tw, "base_url\t%s\n", cfg.BaseURL)
	}
	fmt.Fprintf(tw, "%s\t%s\n", shown.Credential, credential)
	fmt.Fprintf(tw, "out_dir\t%s\n", cfg.OutDir)
	fmt.Fprintf(tw, "fetch_timeout\t%s\n", cfg.FetchTimeout())
	fmt.Fprintf(tw, "condense\t%t\n", cfg.Condense)
	fmt.Fprintf(tw, "listing_site\t%s\n", cfg.ListingSite)
	if cfg.ListingURL != "" {
		fmt.Fprintf(tw, "listing_url\t%s\n", cfg.ListingURL)
		fmt.Fprintf(tw, "listing_prefix\t%s\n", cfg.ListingPrefix)
	}
	return tw.Flush()
}
