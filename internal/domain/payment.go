package domain

import "time"

type Payment struct {
	Id            PaymentId
	TransactionId string
	UserId        UserId
	RestaurantId  RestaurantId
	CreatedAt     time.Time
}
