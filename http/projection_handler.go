package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"help-projector/domain"
	"help-projector/report"
	"help-projector/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
}

func NewProjectionHandler(service *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{service: service}
}

// Project answers POST /help/projection with the JSON projection.
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeProjectionInput(w, r)
	if !ok {
		return
	}

	result, err := h.service.Project(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}

// Table answers POST /help/projection/table with a plain-text breakdown.
func (h *ProjectionHandler) Table(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeProjectionInput(w, r)
	if !ok {
		return
	}

	result, err := h.service.Project(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteTable(&buf, result); err != nil {
		slog.Error("failed to render projection table", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

// Defaults answers GET /help/defaults with the calculator's reset values.
func (h *ProjectionHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, domain.ProjectionInput{
		Parameters:        domain.DefaultParameters(),
		Promotions:        []domain.Promotion{},
		Reductions:        []domain.IncomeReduction{},
		Breaks:            []domain.WorkBreak{},
		VoluntaryPayments: []domain.VoluntaryPayment{},
	})
}

func decodeProjectionInput(w http.ResponseWriter, r *http.Request) (domain.ProjectionInput, bool) {
	var input domain.ProjectionInput

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return input, false
	}

	// Validar Content-Type
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return input, false
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		slog.Debug("error decoding request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return input, false
	}

	return input, true
}

// writeJSON codifica en buffer primero para evitar escribir header si falla
func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("error writing response", "error", err)
	}
}
