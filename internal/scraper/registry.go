package scraper

import (
	"fmt"
	"strings"

	"github.com/jimezsa/jobextract/internal/network"
)

const (
	SiteGolangProjects = "golangprojects"
	SiteCustom         = "custom"

	golangProjectsBase   = "https://www.golangprojects.com"
	golangProjectsList   = golangProjectsBase + "/golang-remote-jobs.html"
	golangProjectsPrefix = "/golang-go-job-"
)

// CustomBoard describes a listing page configured by the user.
type CustomBoard struct {
	ListURL string
	Prefix  string
}

func NewGolangProjects(client *network.Client) *Board {
	return NewBoard(SiteGolangProjects, golangProjectsList, golangProjectsBase, golangProjectsPrefix, client)
}

// Registry returns the listers known for client. The custom board is only
// registered when it has both a URL and a prefix.
func Registry(client *network.Client, custom CustomBoard) map[string]Lister {
	registry := map[string]Lister{
		SiteGolangProjects: NewGolangProjects(client),
	}
	if strings.TrimSpace(custom.ListURL) != "" && strings.TrimSpace(custom.Prefix) != "" {
		registry[SiteCustom] = NewBoard(SiteCustom, custom.ListURL, "", custom.Prefix, client)
	}
	return registry
}

// Select looks up site in registry after normalizing its name.
func Select(registry map[string]Lister, site string) (Lister, error) {
	name := NormalizeSite(site)
	switch name {
	case "golangprojects.com", "golang-projects":
		name = SiteGolangProjects
	}
	lister, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSite, site)
	}
	return lister, nil
}

func NormalizeSite(site string) string {
	site = strings.ToLower(strings.TrimSpace(site))
	return strings.TrimPrefix(site, "www.")
}
