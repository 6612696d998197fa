package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGitHub is a minimal upstream: a repo listing plus one languages
// endpoint per repo, with switchable failure and call counting.
type fakeGitHub struct {
	listCalls int64
	failing   int32

	server *httptest.Server
	repos  []map[string]interface{}
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()
	f := &fakeGitHub{}

	mux := http.NewServeMux()
	mux.HandleFunc("/users/tester/repos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.listCalls, 1)
		if atomic.LoadInt32(&f.failing) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(f.repos)
	})
	mux.HandleFunc("/repos/tester/demo/languages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int64{"Go": 750, "HTML": 250})
	})
	mux.HandleFunc("/repos/tester/thirds/languages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int64{"Python": 1, "Ruby": 1, "Shell": 1})
	})
	mux.HandleFunc("/repos/tester/empty/languages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int64{})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	f.repos = []map[string]interface{}{
		{
			"id":               int64(1),
			"name":             "demo",
			"description":      "Un proyecto de ejemplo",
			"url":              f.server.URL + "/repos/tester/demo",
			"html_url":         "https://github.com/tester/demo",
			"language":         "Go",
			"stargazers_count": 7,
			"updated_at":       "2026-08-01T10:00:00Z",
		},
		{
			"id":               int64(2),
			"name":             "empty",
			"description":      nil,
			"url":              f.server.URL + "/repos/tester/empty",
			"html_url":         "https://github.com/tester/empty",
			"language":         nil,
			"stargazers_count": 0,
			"updated_at":       "2026-07-01T10:00:00Z",
		},
	}
	return f
}

func (f *fakeGitHub) service() *GitHubService {
	return NewGitHubService("tester", f.server.URL)
}

func TestGetRepositoriesFormatsUpstreamData(t *testing.T) {
	f := newFakeGitHub(t)
	svc := f.service()

	repos := svc.GetRepositories()
	require.Len(t, repos, 2)

	demo := repos[0]
	assert.Equal(t, int64(1), demo.ID)
	assert.Equal(t, "demo", demo.Name)
	assert.Equal(t, "Un proyecto de ejemplo", demo.Description)
	assert.Equal(t, "Go", demo.Language)
	assert.Equal(t, 7, demo.Stars)
	assert.Equal(t, "https://github.com/tester/demo", demo.GithubURL)
	assert.False(t, demo.Featured)
	assert.Equal(t, map[string]float64{"Go": 75.0, "HTML": 25.0}, demo.Languages)
	assert.Equal(t, []string{"Go", "HTML"}, demo.SortedLanguages())

	empty := repos[1]
	assert.Equal(t, DescriptionFallback, empty.Description)
	assert.Equal(t, LanguageFallback, empty.Language)
	assert.Empty(t, empty.Languages)
	// with no recorded bytes the language list falls back to the primary
	assert.Equal(t, []string{LanguageFallback}, empty.AllLanguages)
}

func TestGetRepositoriesCachesWithinWindow(t *testing.T) {
	f := newFakeGitHub(t)
	svc := f.service()

	first := svc.GetRepositories()
	second := svc.GetRepositories()

	assert.Equal(t, int64(1), atomic.LoadInt64(&f.listCalls), "second call within the window must not hit upstream")
	assert.Equal(t, first, second)
}

func TestClearCacheForcesRefetch(t *testing.T) {
	f := newFakeGitHub(t)
	svc := f.service()

	svc.GetRepositories()
	svc.ClearCache()
	svc.GetRepositories()

	assert.Equal(t, int64(2), atomic.LoadInt64(&f.listCalls))
}

func TestGetRepositoriesServesStaleOnUpstreamFailure(t *testing.T) {
	f := newFakeGitHub(t)
	svc := f.service()

	good := svc.GetRepositories()
	require.NotEmpty(t, good)

	// keep the last-good entry but drop the fresh one, then break upstream
	atomic.StoreInt32(&f.failing, 1)
	svc.cache.Delete(reposKey)

	stale := svc.GetRepositories()
	assert.Equal(t, int64(2), atomic.LoadInt64(&f.listCalls), "expected a refetch attempt")
	assert.Equal(t, good, stale, "failure must degrade to the previous result")
}

func TestGetRepositoriesColdFailureReturnsEmptyList(t *testing.T) {
	f := newFakeGitHub(t)
	atomic.StoreInt32(&f.failing, 1)
	svc := f.service()

	repos := svc.GetRepositories()
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestLanguagePercentagesRounding(t *testing.T) {
	f := newFakeGitHub(t)
	svc := f.service()

	got := svc.languagePercentages(fmt.Sprintf("%s/repos/tester/thirds", f.server.URL))
	assert.Equal(t, map[string]float64{"Python": 33.3, "Ruby": 33.3, "Shell": 33.3}, got)
}
