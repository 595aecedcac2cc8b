// Package condense shrinks a posting page before it is handed to the model:
// boilerplate elements are dropped with goquery and what remains is converted
// to Markdown.
package condense

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

var noiseSelectors = []string{
	"script:not([type='application/ld+json'])", "style", "noscript",
	"nav", "footer",
	"img", "picture", "svg", "canvas",
	"iframe", "video", "audio",
	"form", "button", "input", "select", "textarea",
}

// HTML returns a Markdown rendering of the main content of page. JSON-LD
// blocks are kept verbatim since they often carry the posting date and
// salary.
func HTML(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var structured []string
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			structured = append(structured, text)
		}
	}).Remove()

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	content := doc.Find("body").First()
	if content.Length() == 0 {
		content = doc.Selection
	}
	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(markdown))
	for _, block := range structured {
		b.WriteString("\n\n```json\n")
		b.WriteString(block)
		b.WriteString("\n```")
	}
	return b.String(), nil
}
