package cmd

import (
	"io"

	"github.com/jimezsa/jobextract/internal/export"
	"github.com/jimezsa/jobextract/internal/output"
	"github.com/muesli/termenv"
)

type ListCmd struct {
	Out    string `name:"out" short:"o" help:"Directory holding extracted postings (default ./jobs)." env:"JOBEXTRACT_OUT"`
	Format string `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
}

func (l *ListCmd) Run(ctx *Context) error {
	postings, err := output.ReadRecords(firstNonEmpty(l.Out, ctx.Config.OutDir))
	if err != nil {
		return err
	}

	format, err := resolveFormat(ctx, l.Format)
	if err != nil {
		return err
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	return export.WritePostings(ctx.Out, postings, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(ctx.Out),
	})
}

func resolveFormat(ctx *Context, flag string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
