package controller

import (
	"net/http"
	"time"
)

const healthStatus = "CrowdFuel Backend Running"

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health always succeeds; it is the only endpoint expected to work when the
// Stripe secret key is missing.
func (h *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    healthStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
