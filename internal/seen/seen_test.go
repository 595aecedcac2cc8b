package seen

import (
	"reflect"
	"testing"

	"github.com/jimezsa/jobextract/internal/models"
)

func TestKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://www.GolangProjects.com/golang-go-job-1.html", "https://golangprojects.com/golang-go-job-1.html", true},
		{"HTTPS://x.com/jobs/42/#apply", "https://x.com/jobs/42", true},
		{"https://x.com/jobs?id=7", "https://x.com/jobs?id=7", true},
		{"/relative/path", "", false},
		{"  ", "", false},
	}
	for _, tc := range cases {
		got, ok := Key(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Key(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDiff(t *testing.T) {
	saved := []models.SavedPosting{
		{Posting: models.Posting{SourceURL: "https://www.golangprojects.com/golang-go-job-2.html"}},
		{Posting: models.Posting{SourceURL: ""}},
	}
	links := []string{
		"https://www.golangprojects.com/golang-go-job-1.html",
		"https://golangprojects.com/golang-go-job-2.html",
		"not a url",
		"https://www.golangprojects.com/golang-go-job-3.html",
		"https://www.golangprojects.com/golang-go-job-1.html",
	}

	unseen, stats := Diff(links, saved)
	want := []string{
		"https://www.golangprojects.com/golang-go-job-1.html",
		"https://www.golangprojects.com/golang-go-job-3.html",
	}
	if !reflect.DeepEqual(unseen, want) {
		t.Fatalf("Diff() = %#v, want %#v", unseen, want)
	}
	if stats.TotalLinks != 5 || stats.TotalSeen != 2 || stats.Invalid != 1 || stats.Unseen != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
