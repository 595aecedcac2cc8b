// Package export renders saved postings for the list command.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/jobextract/internal/models"
	"github.com/jimezsa/jobextract/internal/ui"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func WritePostings(w io.Writer, postings []models.SavedPosting, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, postings)
	case FormatCSV:
		return writeCSV(w, postings, ',')
	case FormatTSV:
		return writeCSV(w, postings, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, postings)
	default:
		return writeTable(w, postings, opts)
	}
}

func writeJSON(w io.Writer, postings []models.SavedPosting) error {
	out := make([]models.Posting, 0, len(postings))
	for _, posting := range postings {
		out = append(out, posting.Posting)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, postings []models.SavedPosting, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(header()); err != nil {
		return err
	}
	for _, posting := range postings {
		if err := writer.Write(row(posting)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, postings []models.SavedPosting, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "posted\ttitle\tcompany\tclassification\turl")
	output := termenv.NewOutput(w)
	for _, posting := range postings {
		link := dash(posting.SourceURL)
		if posting.SourceURL != "" {
			link = ui.ColorizeLink(output, opts.ColorEnabled, link)
			if opts.Hyperlinks {
				link = hyperlink(posting.SourceURL, link)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			dash(posting.PostedDate.OrElse("")),
			dash(posting.JobTitle.OrElse("")),
			dash(posting.Company.OrElse("")),
			classificationLabel(posting.Classification),
			link,
		)
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, postings []models.SavedPosting) error {
	if len(postings) == 0 {
		_, err := fmt.Fprintln(w, "No postings.")
		return err
	}
	for _, posting := range postings {
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", dash(posting.JobTitle.OrElse("")), dash(posting.Company.OrElse(""))),
			fmt.Sprintf("  Posted: %s", dash(posting.PostedDate.OrElse(""))),
			fmt.Sprintf("  Remote: %s", classificationLabel(posting.Classification)),
		}
		if salary, ok := posting.SalaryAnnual.Get(); ok {
			lines = append(lines, fmt.Sprintf("  Salary: %s", salary))
		}
		if country, ok := posting.CompanyCountry.Get(); ok {
			lines = append(lines, fmt.Sprintf("  Country: %s", country))
		}
		if posting.SourceURL != "" {
			lines = append(lines, fmt.Sprintf("  URL: [Open posting](<%s>)", posting.SourceURL))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func header() []string {
	return []string{
		"posted_date",
		"job_title",
		"company",
		"classification",
		"salary_annual",
		"company_country",
		"source_url",
		"scraped_at",
		"path",
	}
}

func row(posting models.SavedPosting) []string {
	classification, _ := posting.Classification.Get()
	return []string{
		posting.PostedDate.OrElse(""),
		posting.JobTitle.OrElse(""),
		posting.Company.OrElse(""),
		string(classification),
		posting.SalaryAnnual.OrElse(""),
		posting.CompanyCountry.OrElse(""),
		posting.SourceURL,
		posting.ScrapedAt,
		posting.Path,
	}
}

func classificationLabel(value models.Optional[models.Classification]) string {
	classification, ok := value.Get()
	if !ok {
		return "-"
	}
	return strings.ReplaceAll(string(classification), "_", " ")
}

func dash(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	return value
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}
