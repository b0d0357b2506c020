package api

import (
	"time"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
)

type CreateRestaurantRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	IsVegan bool   `json:"isVegan"`
}

type Restaurant struct {
	Id            domain.RestaurantId `json:"id"`
	Name          string              `json:"name"`
	Address       string              `json:"address"`
	IsVegan       bool                `json:"isVegan"`
	IsPromoted    bool                `json:"isPromoted"`
	PromotedUntil *time.Time          `json:"promotedUntil,omitempty"`
}

func RestaurantFromDomain(restaurant domain.Restaurant) Restaurant {
	return Restaurant{
		Id:            restaurant.Id,
		Name:          restaurant.Name,
		Address:       restaurant.Address,
		IsVegan:       restaurant.IsVegan,
		IsPromoted:    restaurant.IsPromoted,
		PromotedUntil: restaurant.PromotedUntil,
	}
}

type CreateRestaurantResponse struct {
	Response
	Id domain.RestaurantId `json:"id,omitempty"`
}

type RestaurantResponse struct {
	Response
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}
