package controller

import (
	"net/http"

	"github.com/crowdfuel/backend/internal/service"
)

type ConnectController struct {
	connectService *service.ConnectService
}

func NewConnectController(connectService *service.ConnectService) *ConnectController {
	return &ConnectController{connectService: connectService}
}

func (h *ConnectController) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateConnectAccountRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bandId and email are required"})
		return
	}

	result, err := h.connectService.CreateConnectAccount(r.Context(), req.BandID, req.Email, req.Country)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ConnectAccountResponse{
		AccountID:     result.AccountID,
		OnboardingURL: result.OnboardingURL,
	})
}

func (h *ConnectController) AccountStatus(w http.ResponseWriter, r *http.Request) {
	var req AccountStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "accountId is required"})
		return
	}

	status, err := h.connectService.GetAccountStatus(r.Context(), req.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AccountStatusResponse{
		ChargesEnabled:   status.ChargesEnabled,
		PayoutsEnabled:   status.PayoutsEnabled,
		DetailsSubmitted: status.DetailsSubmitted,
	})
}

func (h *ConnectController) DashboardLink(w http.ResponseWriter, r *http.Request) {
	var req AccountStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "accountId is required"})
		return
	}

	url, err := h.connectService.CreateDashboardLink(r.Context(), req.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DashboardLinkResponse{URL: url})
}
