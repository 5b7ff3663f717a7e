package http

import (
	"net/http"

	"help-projector/service"
)

type ComparisonHandler struct {
	service *service.ComparisonService
}

func NewComparisonHandler(service *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeProjectionInput(w, r)
	if !ok {
		return
	}

	result, err := h.service.Compare(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}
