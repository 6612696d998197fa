package handlers

import (
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/nnorato/portfoliobackend/mailer"
	"github.com/nnorato/portfoliobackend/models"
	"github.com/nnorato/portfoliobackend/repository"
)

const minMessageLength = 10

// ContactHandler serves the contact page and processes submissions: validate,
// persist, then best-effort send a notification and a confirmation email.
type ContactHandler struct {
	Contacts *repository.ContactRepository
	Mailer   mailer.Mailer
	Renderer *Renderer
}

type contactPageData struct {
	Error   string
	Success string
}

// Show renders the empty contact form.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "contacto.html", contactPageData{})
}

// Submit validates and persists a contact form submission. Mail failures are
// logged and swallowed; once the row is stored the submitter always sees
// success.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.Render(w, http.StatusBadRequest, "contacto.html", contactPageData{
			Error: "Todos los campos son requeridos",
		})
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	subject := strings.TrimSpace(r.PostFormValue("subject"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	if name == "" || email == "" || subject == "" || message == "" {
		h.Renderer.Render(w, http.StatusOK, "contacto.html", contactPageData{
			Error: "Todos los campos son requeridos",
		})
		return
	}
	if utf8.RuneCountInString(message) < minMessageLength {
		h.Renderer.Render(w, http.StatusOK, "contacto.html", contactPageData{
			Error: "El mensaje debe tener al menos 10 caracteres",
		})
		return
	}

	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := h.Contacts.Create(msg); err != nil {
		log.Printf("Error al procesar contacto: %v", err)
		h.Renderer.Render(w, http.StatusOK, "contacto.html", contactPageData{
			Error: "Hubo un error al procesar tu mensaje. Intenta de nuevo.",
		})
		return
	}

	if err := h.Mailer.SendContactNotification(msg); err != nil {
		log.Printf("Error al enviar email: %v", err)
	}
	if err := h.Mailer.SendContactConfirmation(msg); err != nil {
		log.Printf("Error al enviar email: %v", err)
	}

	h.Renderer.Render(w, http.StatusOK, "contacto.html", contactPageData{
		Success: "¡Mensaje enviado exitosamente! Me pondré en contacto pronto.",
	})
}
