package controller

import (
	"io"
	"net/http"

	"github.com/crowdfuel/backend/internal/service"
)

const webhookBodyLimit = 1024 * 1024 // 1MiB

type WebhookController struct {
	webhookService *service.WebhookService
}

func NewWebhookController(webhookService *service.WebhookService) *WebhookController {
	return &WebhookController{webhookService: webhookService}
}

// Handle reads the raw body before any JSON decoding; signature verification
// operates on the exact bytes Stripe signed. A non-2xx response leaves
// redelivery to Stripe's retry policy.
func (h *WebhookController) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, webhookBodyLimit)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	if err := h.webhookService.Process(payload, r.Header.Get("Stripe-Signature")); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, WebhookAckResponse{Received: true})
}
