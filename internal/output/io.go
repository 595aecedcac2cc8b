package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jimezsa/jobextract/internal/models"
)

// WriteRecord writes posting as indented JSON to path, leaving &, < and >
// unescaped. The data goes to a temporary file in the same directory first
// and is renamed into place, so an existing file is replaced in one step.
func WriteRecord(path string, posting models.Posting) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posting); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadRecord reads a single posting file.
func ReadRecord(path string) (models.Posting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Posting{}, err
	}
	var posting models.Posting
	if err := json.Unmarshal(data, &posting); err != nil {
		return models.Posting{}, fmt.Errorf("%s: %w", path, err)
	}
	return posting, nil
}

// ReadRecords reads every *.json posting in dir, newest posted date first.
// Postings without a date sort last; ties keep file name order. A missing
// directory yields no postings.
func ReadRecords(dir string) ([]models.SavedPosting, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*"+fileExt))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			return nil, statErr
		}
		return []models.SavedPosting{}, nil
	}
	sort.Strings(paths)

	postings := make([]models.SavedPosting, 0, len(paths))
	for _, path := range paths {
		posting, err := ReadRecord(path)
		if err != nil {
			return nil, err
		}
		postings = append(postings, models.SavedPosting{Posting: posting, Path: path})
	}

	sort.SliceStable(postings, func(i, j int) bool {
		return postings[i].PostedDate.OrElse("") > postings[j].PostedDate.OrElse("")
	})
	return postings, nil
}
