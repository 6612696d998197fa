package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// DescriptionFallback is shown for upstream repositories without a description.
	DescriptionFallback = "Sin descripción"
	// LanguageFallback is shown for upstream repositories without a primary language.
	LanguageFallback = "No especificado"

	repoCacheTTL     = 5 * time.Second
	reposKey         = "github_repos"
	reposLastGoodKey = "github_repos_last_good"
)

// Repository is the summary of one upstream repository as the rest of the
// application consumes it.
type Repository struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	URL          string             `json:"url"`
	Language     string             `json:"language"`
	Languages    map[string]float64 `json:"languages"` // language -> percentage
	AllLanguages []string           `json:"all_languages_list"`
	Stars        int                `json:"stars"`
	UpdatedAt    string             `json:"updated_at"`
	GithubURL    string             `json:"github_url"`
	Featured     bool               `json:"featured"`
}

// SortedLanguages returns the language names of the breakdown, largest share
// first.
func (r Repository) SortedLanguages() []string {
	names := make([]string, 0, len(r.Languages))
	for name := range r.Languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if r.Languages[names[i]] != r.Languages[names[j]] {
			return r.Languages[names[i]] > r.Languages[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// apiRepo mirrors the fields we read from the upstream repository listing.
type apiRepo struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	URL             string  `json:"url"`
	HTMLURL         string  `json:"html_url"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
	UpdatedAt       string  `json:"updated_at"`
}

// GitHubService lists a fixed account's repositories with a per-repository
// language breakdown. The combined result is memoized process-wide for a few
// seconds so page loads don't burn through the unauthenticated rate limit
// (60 requests/hour).
type GitHubService struct {
	Username string
	BaseURL  string

	client *http.Client
	cache  *gocache.Cache
}

// NewGitHubService creates a fetcher for the given account. baseURL is the API
// root, normally https://api.github.com; tests point it at a local server.
func NewGitHubService(username, baseURL string) *GitHubService {
	return &GitHubService{
		Username: username,
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		client:   &http.Client{Timeout: 5 * time.Second},
		cache:    gocache.New(repoCacheTTL, 10*time.Minute),
	}
}

// GetRepositories returns the repository list, served from cache when the
// cached copy is younger than the TTL. On upstream failure it degrades to the
// last successful result if one exists, else an empty list. It never returns
// an error to the caller.
func (s *GitHubService) GetRepositories() []Repository {
	if v, found := s.cache.Get(reposKey); found {
		return v.([]Repository)
	}

	repos, err := s.fetchRepositories()
	if err != nil {
		log.Printf("Error conectando a GitHub API: %v", err)
		if v, found := s.cache.Get(reposLastGoodKey); found {
			return v.([]Repository)
		}
		return []Repository{}
	}

	s.cache.Set(reposKey, repos, gocache.DefaultExpiration)
	s.cache.Set(reposLastGoodKey, repos, gocache.NoExpiration)
	return repos
}

// ClearCache drops both the fresh and the last-good entries, forcing the next
// call to hit the upstream API regardless of the TTL.
func (s *GitHubService) ClearCache() {
	s.cache.Flush()
}

func (s *GitHubService) fetchRepositories() ([]Repository, error) {
	listURL := fmt.Sprintf("%s/users/%s/repos", s.BaseURL, s.Username)
	params := url.Values{}
	params.Set("sort", "updated")
	params.Set("per_page", "100")
	params.Set("type", "owner")

	resp, err := s.client.Get(listURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d listing repositories", resp.StatusCode)
	}

	var upstream []apiRepo
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to decode repository listing: %w", err)
	}

	repos := make([]Repository, 0, len(upstream))
	for _, raw := range upstream {
		languages := s.languagePercentages(raw.URL)

		description := DescriptionFallback
		if raw.Description != nil && *raw.Description != "" {
			description = *raw.Description
		}
		primary := LanguageFallback
		if raw.Language != nil && *raw.Language != "" {
			primary = *raw.Language
		}

		all := make([]string, 0, len(languages))
		for lang := range languages {
			all = append(all, lang)
		}
		sort.Strings(all)
		if len(all) == 0 {
			all = []string{primary}
		}

		repos = append(repos, Repository{
			ID:           raw.ID,
			Name:         raw.Name,
			Description:  description,
			URL:          raw.HTMLURL,
			Language:     primary,
			Languages:    languages,
			AllLanguages: all,
			Stars:        raw.StargazersCount,
			UpdatedAt:    raw.UpdatedAt,
			GithubURL:    raw.HTMLURL,
			Featured:     false,
		})
	}
	return repos, nil
}

// languagePercentages fetches the byte-count breakdown of one repository and
// converts it to percentages rounded to one decimal place. Errors yield an
// empty map; a repository with no recorded bytes does too.
func (s *GitHubService) languagePercentages(repoURL string) map[string]float64 {
	resp, err := s.client.Get(repoURL + "/languages")
	if err != nil {
		log.Printf("Error obteniendo lenguajes de %s: %v", repoURL, err)
		return map[string]float64{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return map[string]float64{}
	}

	var byteCounts map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&byteCounts); err != nil {
		log.Printf("Error obteniendo lenguajes de %s: %v", repoURL, err)
		return map[string]float64{}
	}

	var total int64
	for _, b := range byteCounts {
		total += b
	}
	if total == 0 {
		return map[string]float64{}
	}

	percentages := make(map[string]float64, len(byteCounts))
	for lang, b := range byteCounts {
		percentages[lang] = math.Round(float64(b)/float64(total)*1000) / 10
	}
	return percentages
}
