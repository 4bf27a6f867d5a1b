package api

import (
	"encoding/json"
	"net/http"

	"skilleat/internal/entities"
	"skilleat/internal/service"
)

type ContactHandler struct {
	Service *service.InquiryService
}

func NewContactHandler(svc *service.InquiryService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitInquiry handles POST /api/contact.
func (h *ContactHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var inq entities.Inquiry
	// A malformed or absent body is treated as an empty submission and
	// fails the required-fields check.
	_ = json.NewDecoder(r.Body).Decode(&inq)

	if err := h.Service.Submit(r.Context(), &inq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ContactResponse{OK: true})
}
