package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobextract/internal/network"
)

func fetchDocument(ctx context.Context, client *network.Client, target string) (*goquery.Document, error) {
	resp, err := client.Get(ctx, target, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return goquery.NewDocumentFromReader(resp.Body)
}

// collectLinks resolves the href of every anchor matched by selector against
// base, keeping first-seen order and stopping after limit unique links.
// A limit of zero or less collects everything.
func collectLinks(doc *goquery.Document, selector string, base string, limit int) []string {
	var links []string
	seen := map[string]struct{}{}

	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		link := absoluteURL(base, href)
		if link == "" {
			return true
		}
		if _, ok := seen[link]; ok {
			return true
		}
		seen[link] = struct{}{}
		links = append(links, link)
		return limit <= 0 || len(links) < limit
	})

	return links
}

func absoluteURL(base string, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func prefixSelector(prefix string) string {
	return "a[href^='" + strings.ReplaceAll(prefix, "'", `\'`) + "']"
}
