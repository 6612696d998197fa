package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
)

// pageFiles are the page templates; each is parsed together with the shared
// base layout.
var pageFiles = []string{
	"index.html",
	"proyectos.html",
	"sobre_mi.html",
	"contacto.html",
	"blog.html",
	"blog_post.html",
	"admin_login.html",
	"admin.html",
	"admin_create.html",
	"admin_edit.html",
}

// Renderer holds the parsed template set, one entry per page.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page template under dir against the base layout.
func NewRenderer(dir string) (*Renderer, error) {
	base := filepath.Join(dir, "base.html")
	templates := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		t, err := template.ParseFiles(base, filepath.Join(dir, page))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page with the given status and data.
func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	t, ok := rd.templates[page]
	if !ok {
		log.Printf("Error rendering page: unknown template %s", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Error executing template %s: %v", page, err)
	}
}
