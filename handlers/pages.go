package handlers

import (
	"log"
	"net/http"

	"github.com/nnorato/portfoliobackend/models"
	"github.com/nnorato/portfoliobackend/repository"
)

// PageHandler serves the informational pages backed only by the database.
type PageHandler struct {
	Projects    *repository.ProjectRepository
	Skills      *repository.SkillRepository
	Experiences *repository.ExperienceRepository
	Educations  *repository.EducationRepository
	Renderer    *Renderer
}

type indexPageData struct {
	FeaturedProjects []models.Project
}

// Home renders the landing page with up to three featured projects.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.Projects.ListFeatured(3)
	if err != nil {
		log.Printf("Error listing featured projects: %v", err)
		featured = nil
	}
	h.Renderer.Render(w, http.StatusOK, "index.html", indexPageData{FeaturedProjects: featured})
}

type aboutPageData struct {
	SkillGroups []repository.SkillGroup
	Experiences []models.Experience
	Educations  []models.Education
}

// SobreMi renders the about page: skills grouped by category, work
// experience and education.
func (h *PageHandler) SobreMi(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Skills.ListGroupedByCategory()
	if err != nil {
		log.Printf("Error grouping skills: %v", err)
	}
	experiences, err := h.Experiences.ListAll()
	if err != nil {
		log.Printf("Error listing experiences: %v", err)
	}
	educations, err := h.Educations.ListAll()
	if err != nil {
		log.Printf("Error listing educations: %v", err)
	}

	h.Renderer.Render(w, http.StatusOK, "sobre_mi.html", aboutPageData{
		SkillGroups: groups,
		Experiences: experiences,
		Educations:  educations,
	})
}

type apiSkill struct {
	ID          uint   `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

// APISkills returns all skills as a flat JSON array.
func (h *PageHandler) APISkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Skills.ListAll()
	if err != nil {
		log.Printf("Error listing skills: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve skills"})
		return
	}

	out := make([]apiSkill, 0, len(skills))
	for _, s := range skills {
		out = append(out, apiSkill{ID: s.ID, Category: s.Category, Name: s.Name, Proficiency: s.Proficiency})
	}
	writeJSON(w, http.StatusOK, out)
}
