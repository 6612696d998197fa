package handlers

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
	"github.com/nnorato/portfoliobackend/repository"
)

// AdminHandler implements the password-gated admin panel: login/logout and
// blog post CRUD. There are no per-user accounts, only the single shared
// secret and the session flag it unlocks.
type AdminHandler struct {
	Blog     *repository.BlogRepository
	Renderer *Renderer
	Store    sessions.Store

	// plain secret, and the bcrypt hash that takes precedence when configured
	AdminPassword     string
	AdminPasswordHash string
}

func (h *AdminHandler) checkPassword(password string) bool {
	if h.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(h.AdminPassword)) == 1
}

type adminLoginPageData struct {
	Error string
}

// ShowLogin renders the login form.
func (h *AdminHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "admin_login.html", adminLoginPageData{})
}

// Login checks the submitted password and, on success, sets the admin session
// flag and redirects to the panel.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.Render(w, http.StatusBadRequest, "admin_login.html", adminLoginPageData{Error: "Contraseña incorrecta"})
		return
	}

	password := r.PostFormValue("password")
	if !h.checkPassword(password) {
		h.Renderer.Render(w, http.StatusOK, "admin_login.html", adminLoginPageData{Error: "Contraseña incorrecta"})
		return
	}

	session, _ := h.Store.Get(r, SessionName)
	session.Values[sessionKeyAdminAuth] = true
	if err := session.Save(r, w); err != nil {
		log.Printf("Error saving admin session: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Logout clears the session flag and returns to the home page.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, SessionName)
	delete(session.Values, sessionKeyAdminAuth)
	if err := session.Save(r, w); err != nil {
		log.Printf("Error clearing admin session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

type adminPanelPageData struct {
	Posts []models.BlogPost
}

// Panel renders the post management overview.
func (h *AdminHandler) Panel(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Blog.ListAll()
	if err != nil {
		log.Printf("Error listing blog posts for admin panel: %v", err)
	}
	h.Renderer.Render(w, http.StatusOK, "admin.html", adminPanelPageData{Posts: posts})
}

type adminCreatePageData struct {
	Error   string
	Title   string
	Content string
	Summary string
}

// ShowCreate renders the empty post form.
func (h *AdminHandler) ShowCreate(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "admin_create.html", adminCreatePageData{})
}

// Create validates and stores a new blog post, then returns to the panel.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.Render(w, http.StatusBadRequest, "admin_create.html", adminCreatePageData{Error: "Título y contenido son requeridos"})
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	content := strings.TrimSpace(r.PostFormValue("content"))
	summary := strings.TrimSpace(r.PostFormValue("summary"))

	if title == "" || content == "" {
		h.Renderer.Render(w, http.StatusOK, "admin_create.html", adminCreatePageData{
			Error:   "Título y contenido son requeridos",
			Title:   title,
			Content: content,
			Summary: summary,
		})
		return
	}

	post := &models.BlogPost{Title: title, Content: content, Summary: summary}
	if err := h.Blog.Create(post); err != nil {
		log.Printf("Error creating blog post: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

type adminEditPageData struct {
	Post  *models.BlogPost
	Error string
}

func (h *AdminHandler) postFromURL(w http.ResponseWriter, r *http.Request) *models.BlogPost {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return nil
	}
	post, err := h.Blog.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return nil
		}
		log.Printf("Error getting blog post %d: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	return post
}

// ShowEdit renders the edit form for an existing post.
func (h *AdminHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	post := h.postFromURL(w, r)
	if post == nil {
		return
	}
	h.Renderer.Render(w, http.StatusOK, "admin_edit.html", adminEditPageData{Post: post})
}

// Edit validates and applies a post update, then returns to the panel.
func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	post := h.postFromURL(w, r)
	if post == nil {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.Renderer.Render(w, http.StatusBadRequest, "admin_edit.html", adminEditPageData{Post: post, Error: "Título y contenido son requeridos"})
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	content := strings.TrimSpace(r.PostFormValue("content"))
	summary := strings.TrimSpace(r.PostFormValue("summary"))

	if title == "" || content == "" {
		post.Title = title
		post.Content = content
		post.Summary = summary
		h.Renderer.Render(w, http.StatusOK, "admin_edit.html", adminEditPageData{
			Post:  post,
			Error: "Título y contenido son requeridos",
		})
		return
	}

	if err := h.Blog.Update(post.ID, title, content, summary); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Error updating blog post %d: %v", post.ID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Delete removes a post and returns to the panel.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.Blog.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Error deleting blog post %d: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}
