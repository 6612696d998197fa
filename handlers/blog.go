package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
	"github.com/nnorato/portfoliobackend/repository"
)

// BlogHandler serves the public blog pages.
type BlogHandler struct {
	Blog     *repository.BlogRepository
	Renderer *Renderer
}

type blogPageData struct {
	Posts []models.BlogPost
}

// List renders the blog index, newest post first.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Blog.ListAll()
	if err != nil {
		log.Printf("Error listing blog posts: %v", err)
	}
	h.Renderer.Render(w, http.StatusOK, "blog.html", blogPageData{Posts: posts})
}

type blogPostPageData struct {
	Post *models.BlogPost
}

// Show renders a single blog post; unknown ids get a 404.
func (h *BlogHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Blog.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Error getting blog post %d: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "blog_post.html", blogPostPageData{Post: post})
}
