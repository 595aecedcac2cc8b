// Package output derives file names for extracted postings and reads and
// writes them under the output directory.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jimezsa/jobextract/internal/models"
)

const (
	// DefaultDir is where postings are written when no directory is given.
	DefaultDir = "jobs"

	// PlaceholderSlug names files for URLs without a final path segment.
	PlaceholderSlug = "index"

	maxSlugLen = 40
	dateLayout = "2006-01-02"
	fileExt    = ".json"
)

// ResolvePath returns baseDir/{date}-{slug}.json for the posting, creating
// baseDir when needed. The date is the posted date, or today's UTC date from
// now when the record has none.
func ResolvePath(record models.JobRecord, sourceURL string, baseDir string, now time.Time) (string, error) {
	if strings.TrimSpace(baseDir) == "" {
		baseDir = DefaultDir
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	datePart := record.PostedDate.OrElse(now.UTC().Format(dateLayout))
	name := fmt.Sprintf("%s-%s%s", datePart, Slug(sourceURL), fileExt)
	return filepath.Join(baseDir, name), nil
}

// Slug returns a filesystem-safe fragment of the URL's last path segment with
// its extension stripped, at most 40 characters long.
func Slug(rawURL string) string {
	segment := ""
	if parsed, err := url.Parse(strings.TrimSpace(rawURL)); err == nil {
		segment = path.Base(parsed.Path)
	}
	if segment == "." || segment == "/" {
		segment = ""
	}
	segment = strings.TrimSuffix(segment, path.Ext(segment))

	var b strings.Builder
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	if strings.Trim(slug, ".-_") == "" {
		return PlaceholderSlug
	}
	return slug
}
