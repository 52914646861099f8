package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/term"
	"github.com/salarybook/salarybook-backend-go/internal/handler/http/response"
)

type TermHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ResolveLabels(w http.ResponseWriter, r *http.Request)
}

type TermHandlerImpl struct {
	termService term.TermService
}

func NewTermHandler(termService term.TermService) TermHandler {
	return &TermHandlerImpl{termService: termService}
}

// List implements TermHandler.
func (t *TermHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	terms, err := t.termService.List(r.Context())
	if err != nil {
		slog.Error("ListTerms service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, terms)
}

// Create implements TermHandler.
func (t *TermHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req term.CreateTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTerm decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.termService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateTerm service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Term created successfully", created)
}

// GetByID implements TermHandler.
func (t *TermHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	termData, err := t.termService.Get(r.Context(), chi.URLParam(r, "termID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, termData)
}

// Update implements TermHandler.
func (t *TermHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req term.UpdateTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTerm decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "termID")

	updated, err := t.termService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateTerm service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Term updated successfully", updated)
}

// Delete implements TermHandler.
func (t *TermHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := t.termService.Delete(r.Context(), chi.URLParam(r, "termID")); err != nil {
		slog.Error("DeleteTerm service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Term deleted successfully", nil)
}

// ResolveLabels implements TermHandler. The locale defaults to English.
func (t *TermHandlerImpl) ResolveLabels(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = "en"
	}

	labels, err := t.termService.ResolveLabels(r.Context(), locale)
	if err != nil {
		slog.Error("ResolveLabels service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, labels)
}
