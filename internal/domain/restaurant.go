package domain

import "time"

type Restaurant struct {
	Id            RestaurantId
	Name          string
	Address       string
	IsVegan       bool
	OwnerId       UserId
	IsPromoted    bool
	PromotedUntil *time.Time
}
