package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/givers/contact/internal/contactform"
	"github.com/givers/contact/internal/formspec"
	"github.com/givers/contact/internal/model"
	"github.com/givers/contact/internal/repository"
	"github.com/givers/contact/internal/service"
)

const maxFormBytes = 64 << 10

// ContactHandler serves the contact page and its change and submit events.
type ContactHandler struct {
	contactService service.ContactService
	spec           *formspec.Spec
}

// NewContactHandler creates a ContactHandler with the given service and page copy.
func NewContactHandler(contactService service.ContactService, spec *formspec.Spec) *ContactHandler {
	return &ContactHandler{contactService: contactService, spec: spec}
}

// Open handles GET /contact: every visit starts a fresh, idle view.
func (h *ContactHandler) Open(w http.ResponseWriter, r *http.Request) {
	view, err := h.contactService.Open(r.Context())
	if err != nil {
		slog.Error("open contact view", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	renderPage(w, http.StatusOK, newPageData(h.spec, view, ""))
}

// Show handles GET /contact/{id}. Expired views start over at /contact.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	view, err := h.contactService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("load contact view", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	renderPage(w, http.StatusOK, newPageData(h.spec, view, ""))
}

// Change handles POST /contact/{id}/fields with form values field and value.
func (h *ContactHandler) Change(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_form")
		return
	}

	field, err := model.ParseField(r.PostFormValue("field"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "unknown_field")
		return
	}

	_, err = h.contactService.Change(r.Context(), r.PathValue("id"), field, r.PostFormValue("value"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "view_not_found")
		return
	case err != nil:
		slog.Error("change contact field", "error", err, "field", field)
		writeJSONError(w, http.StatusInternalServerError, "change_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Submit handles POST /contact/{id}. The posted name, email and message replace
// the view's values before submission.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	posted := model.ContactForm{
		Name:    r.PostFormValue(string(model.FieldName)),
		Email:   r.PostFormValue(string(model.FieldEmail)),
		Message: r.PostFormValue(string(model.FieldMessage)),
	}

	view, err := h.contactService.Submit(r.Context(), r.PathValue("id"), posted)
	var rerr *contactform.RequiredFieldsError
	switch {
	case err == nil:
		renderPage(w, http.StatusOK, newPageData(h.spec, view, ""))
	case errors.As(err, &rerr) && view != nil:
		renderPage(w, http.StatusUnprocessableEntity, newPageData(h.spec, view, rerr.First()))
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "this contact form has expired, please reload the page", http.StatusNotFound)
	default:
		slog.Error("submit contact form", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
