package controller

import (
	"net/http"

	"github.com/crowdfuel/backend/internal/service"
)

type PaymentController struct {
	paymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

func (h *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "amount and bandStripeAccountId are required"})
		return
	}

	result, err := h.paymentService.CreatePaymentIntent(r.Context(), service.CreatePaymentIntentRequest{
		AmountCents:          req.Amount,
		Currency:             req.Currency,
		DestinationAccountID: req.BandStripeAccountID,
		Description:          req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PaymentIntentResponse{
		ClientSecret:    result.ClientSecret,
		PaymentIntentID: result.PaymentIntentID,
		PlatformFee:     result.PlatformFee,
		BandAmount:      result.BandAmount,
	})
}
