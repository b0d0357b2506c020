package handler

import (
	"net/http"

	"github.com/PilYeooong/nuber-eats-backend/internal/api"
	"github.com/PilYeooong/nuber-eats-backend/internal/errors"
	"github.com/PilYeooong/nuber-eats-backend/internal/middleware"
	"github.com/PilYeooong/nuber-eats-backend/internal/utils"
)

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserFromContext(r)
	if owner == nil {
		writeError(w, errors.Unauthorized("Please sign-in"))
		return
	}

	var body api.CreatePaymentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	if err := h.payment.CreatePayment(*owner, body.TransactionId, body.RestaurantId); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreatePaymentResponse{Response: api.OK()})
}

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		writeError(w, errors.Unauthorized("Please sign-in"))
		return
	}

	payments, err := h.payment.GetPayments(user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]api.Payment, 0, len(payments))
	for _, payment := range payments {
		views = append(views, api.PaymentFromDomain(payment))
	}
	writeJSON(w, http.StatusOK, api.GetPaymentsResponse{Response: api.OK(), Payments: views})
}
