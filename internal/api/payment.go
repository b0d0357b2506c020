package api

import (
	"time"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
)

type CreatePaymentRequest struct {
	TransactionId string              `json:"transactionId" validate:"required"`
	RestaurantId  domain.RestaurantId `json:"restaurantId" validate:"required"`
}

type Payment struct {
	Id            domain.PaymentId    `json:"id"`
	TransactionId string              `json:"transactionId"`
	RestaurantId  domain.RestaurantId `json:"restaurantId"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func PaymentFromDomain(payment domain.Payment) Payment {
	return Payment{
		Id:            payment.Id,
		TransactionId: payment.TransactionId,
		RestaurantId:  payment.RestaurantId,
		CreatedAt:     payment.CreatedAt,
	}
}

type CreatePaymentResponse struct {
	Response
}

type GetPaymentsResponse struct {
	Response
	Payments []Payment `json:"payments,omitempty"`
}
