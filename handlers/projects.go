package handlers

import (
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/nnorato/portfoliobackend/models"
	"github.com/nnorato/portfoliobackend/repository"
	"github.com/nnorato/portfoliobackend/services"
)

// ProjectHandler serves the project listing page and the project JSON API.
// Listings merge two sources: dynamically fetched GitHub repositories first,
// curated featured rows from the database second, without deduplication.
type ProjectHandler struct {
	Projects *repository.ProjectRepository
	GitHub   *services.GitHubService
	Renderer *Renderer
}

type languageView struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
}

type projectView struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Technologies string         `json:"technologies"`
	Languages    []languageView `json:"languages,omitempty"`
	GithubURL    *string        `json:"github_url"`
	LiveURL      *string        `json:"live_url"`
	ImageURL     *string        `json:"image_url"`
	Featured     bool           `json:"featured"`
	IsGitHub     bool           `json:"is_github"`
	Stars        int            `json:"stars,omitempty"`
}

func repoToView(repo services.Repository, withLanguages bool) projectView {
	githubURL := repo.GithubURL
	view := projectView{
		Title:        repo.Name,
		Description:  repo.Description,
		Technologies: repo.Language,
		GithubURL:    &githubURL,
		Featured:     false,
		IsGitHub:     true,
		Stars:        repo.Stars,
	}
	if withLanguages {
		for _, name := range repo.SortedLanguages() {
			view.Languages = append(view.Languages, languageView{
				Name:       name,
				Color:      services.LanguageColor(name),
				Percentage: repo.Languages[name],
			})
		}
	}
	return view
}

func dbProjectToView(p models.Project) projectView {
	return projectView{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		ImageURL:     p.ImageURL,
		Featured:     true,
		IsGitHub:     false,
	}
}

type proyectosPageData struct {
	Projects     []projectView
	Technologies []string
}

// Proyectos renders the project listing page from the freshly fetched GitHub
// repositories, with color-decorated language breakdowns and the unique set
// of technologies for the client-side filters.
func (h *ProjectHandler) Proyectos(w http.ResponseWriter, r *http.Request) {
	var views []projectView
	for _, repo := range h.GitHub.GetRepositories() {
		views = append(views, repoToView(repo, true))
	}

	techSet := make(map[string]struct{})
	for _, v := range views {
		for _, tech := range models.SplitTechnologies(v.Technologies) {
			techSet[tech] = struct{}{}
		}
	}
	technologies := make([]string, 0, len(techSet))
	for tech := range techSet {
		technologies = append(technologies, tech)
	}
	sort.Strings(technologies)

	h.Renderer.Render(w, http.StatusOK, "proyectos.html", proyectosPageData{
		Projects:     views,
		Technologies: technologies,
	})
}

// FilteredProjects is the search endpoint: it re-fetches the GitHub
// repositories, appends the featured database rows, then applies a
// case-insensitive substring search on title/description and an exact-token
// technology filter.
func (h *ProjectHandler) FilteredProjects(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))
	tech := strings.TrimSpace(r.URL.Query().Get("tech"))

	var views []projectView
	for _, repo := range h.GitHub.GetRepositories() {
		views = append(views, repoToView(repo, false))
	}

	featured, err := h.Projects.ListFeatured(0)
	if err != nil {
		log.Printf("Error listing featured projects: %v", err)
	}
	for _, p := range featured {
		views = append(views, dbProjectToView(p))
	}

	if search != "" {
		filtered := views[:0]
		for _, v := range views {
			if strings.Contains(strings.ToLower(v.Title), search) ||
				strings.Contains(strings.ToLower(v.Description), search) {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	if tech != "" {
		var filtered []projectView
		for _, v := range views {
			for _, t := range models.SplitTechnologies(v.Technologies) {
				if t == tech {
					filtered = append(filtered, v)
					break
				}
			}
		}
		views = filtered
	}

	if views == nil {
		views = []projectView{}
	}
	writeJSON(w, http.StatusOK, views)
}

type apiProject struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	ImageURL     *string  `json:"image_url"`
	Featured     bool     `json:"featured"`
}

// APIProjects returns the curated database projects as a JSON array.
func (h *ProjectHandler) APIProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.ListAll()
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve projects"})
		return
	}

	out := make([]apiProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, apiProject{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.TechnologyList(),
			GithubURL:    p.GithubURL,
			LiveURL:      p.LiveURL,
			ImageURL:     p.ImageURL,
			Featured:     p.Featured,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
