package handlers

import (
	"fmt"
	"log"
	"net/http"

	"eventgate/internal/services"
	"eventgate/web/templates/pages"
)

// ContactHandler handles contact form requests
type ContactHandler struct {
	contactService services.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactPage displays the contact form
func (h *ContactHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	component := pages.ContactPage()
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// SubmitContact forwards a contact form submission to the backend
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := &services.ContactRequest{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		http.Error(w, "Name, email and message are required", http.StatusBadRequest)
		return
	}

	if err := h.contactService.CreateContact(r.Context(), req); err != nil {
		log.Printf("Contact submission failed: %v", err)
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `
		<div class="contact-notice contact-notice-success">
			<p>Thanks for reaching out! We'll get back to you soon.</p>
		</div>
	`)
}
