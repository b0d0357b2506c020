package domain

type (
	Email    = string
	Password = string
	UserId   = int64

	RestaurantId = int64
	PaymentId    = int64
)
