package cmd

import (
	"context"
	"io"
	"time"

	"github.com/jimezsa/jobextract/internal/config"
	"github.com/jimezsa/jobextract/internal/llm"
	"github.com/jimezsa/jobextract/internal/network"
	"github.com/jimezsa/jobextract/internal/ui"
	"github.com/rs/zerolog"
)

// CompleterFactory builds the completion service from resolved settings.
type CompleterFactory func(ctx context.Context, settings llm.Settings) (llm.Completer, error)

type Context struct {
	Out          io.Writer
	Err          io.Writer
	UI           *ui.UI
	Config       config.Config
	ConfigDir    string
	Logger       zerolog.Logger
	Verbose      bool
	JSONOutput   bool
	PlainText    bool
	Version      string
	ColorMode    ui.ColorMode
	NewCompleter CompleterFactory
}

// DefaultCompleter builds a langchaingo-backed completer.
func DefaultCompleter(ctx context.Context, settings llm.Settings) (llm.Completer, error) {
	return llm.New(ctx, settings)
}

func (c *Context) completer(ctx context.Context, settings llm.Settings) (llm.Completer, error) {
	if c.NewCompleter != nil {
		return c.NewCompleter(ctx, settings)
	}
	return DefaultCompleter(ctx, settings)
}

// httpClient builds a fetch client, rotating through proxies from the flag,
// the environment or proxies.txt when any are configured.
func (c *Context) httpClient(proxiesFlag string) (*network.Client, error) {
	proxies, err := config.LoadProxies(proxiesFlag, c.ConfigDir)
	if err != nil {
		return nil, err
	}
	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
	}
	return network.NewClient(rotator, c.Config.FetchTimeout())
}
