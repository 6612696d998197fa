package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnorato/portfoliobackend/models"
	"github.com/nnorato/portfoliobackend/repository"
	"github.com/nnorato/portfoliobackend/services"
)

// newUpstreamGitHub serves a single-repo listing; language endpoints 404 so
// breakdowns stay empty.
func newUpstreamGitHub(t *testing.T) *httptest.Server {
	t.Helper()
	var serverURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/tester/repos", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id":               int64(10),
				"name":             "go-web-server",
				"description":      "Servidor HTTP minimalista",
				"url":              serverURL + "/repos/tester/go-web-server",
				"html_url":         "https://github.com/tester/go-web-server",
				"language":         "Go",
				"stargazers_count": 3,
				"updated_at":       "2026-08-01T10:00:00Z",
			},
		})
	})
	server := httptest.NewServer(mux)
	serverURL = server.URL
	t.Cleanup(server.Close)
	return server
}

func newProjectTestHandler(t *testing.T) *ProjectHandler {
	t.Helper()
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)

	flask := models.Project{
		Title:        "Chatbot con IA",
		Description:  "Chatbot que integra la API de OpenAI",
		Technologies: "Python, Flask",
		Featured:     true,
	}
	require.NoError(t, projectRepo.Create(&flask))
	hidden := models.Project{Title: "Borrador", Description: "no destacado", Technologies: "Go", Featured: false}
	require.NoError(t, projectRepo.Create(&hidden))

	upstream := newUpstreamGitHub(t)
	return &ProjectHandler{
		Projects: projectRepo,
		GitHub:   services.NewGitHubService("tester", upstream.URL),
		Renderer: newTestRenderer(t),
	}
}

func filteredProjects(t *testing.T, h *ProjectHandler, query string) []projectView {
	t.Helper()
	rr := httptest.NewRecorder()
	h.FilteredProjects(rr, httptest.NewRequest(http.MethodGet, "/api/proyectos-filtrado"+query, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var views []projectView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	return views
}

func TestFilteredProjectsMergesGitHubFirst(t *testing.T) {
	h := newProjectTestHandler(t)

	views := filteredProjects(t, h, "")
	require.Len(t, views, 2, "github repo plus one featured row; non-featured rows excluded")
	assert.True(t, views[0].IsGitHub)
	assert.Equal(t, "go-web-server", views[0].Title)
	assert.False(t, views[1].IsGitHub)
	assert.Equal(t, "Chatbot con IA", views[1].Title)
}

func TestFilteredProjectsSearchIsCaseInsensitive(t *testing.T) {
	h := newProjectTestHandler(t)

	views := filteredProjects(t, h, "?search=CHATBOT")
	require.Len(t, views, 1)
	assert.Equal(t, "Chatbot con IA", views[0].Title)

	// matches descriptions too
	views = filteredProjects(t, h, "?search=servidor")
	require.Len(t, views, 1)
	assert.Equal(t, "go-web-server", views[0].Title)

	views = filteredProjects(t, h, "?search=inexistente")
	assert.Empty(t, views)
}

func TestFilteredProjectsTechTokenMatch(t *testing.T) {
	h := newProjectTestHandler(t)

	views := filteredProjects(t, h, "?tech=Flask")
	require.Len(t, views, 1)
	assert.Equal(t, "Chatbot con IA", views[0].Title)

	views = filteredProjects(t, h, "?tech=Go")
	require.Len(t, views, 1)
	assert.Equal(t, "go-web-server", views[0].Title)

	// substring of a token is not a match
	views = filteredProjects(t, h, "?tech=Fla")
	assert.Empty(t, views)
}

func TestAPIProjectsListsAllRows(t *testing.T) {
	h := newProjectTestHandler(t)

	rr := httptest.NewRecorder()
	h.APIProjects(rr, httptest.NewRequest(http.MethodGet, "/api/proyectos", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var out []apiProject
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out, 2)

	var chatbot *apiProject
	for i := range out {
		if out[i].Title == "Chatbot con IA" {
			chatbot = &out[i]
		}
	}
	require.NotNil(t, chatbot)
	assert.Equal(t, []string{"Python", "Flask"}, chatbot.Technologies)
	assert.True(t, chatbot.Featured)
}
