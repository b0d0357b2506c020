package service

import (
	"net/http"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	"github.com/PilYeooong/nuber-eats-backend/internal/errors"
	"github.com/PilYeooong/nuber-eats-backend/internal/logger"
	"github.com/PilYeooong/nuber-eats-backend/internal/service/utils"
)

type RestaurantService interface {
	Create(owner domain.User, name, address string, isVegan bool) (domain.RestaurantId, error)
	Get(id domain.RestaurantId) (domain.Restaurant, error)
}

type RestaurantStorage interface {
	SaveRestaurant(restaurant domain.Restaurant) (domain.RestaurantId, error)
	RestaurantById(id domain.RestaurantId) (domain.Restaurant, error)
}

type Restaurant struct {
	storage RestaurantStorage
}

func NewRestaurant(storage RestaurantStorage) *Restaurant {
	return &Restaurant{storage: storage}
}

func (r *Restaurant) Create(owner domain.User, name, address string, isVegan bool) (domain.RestaurantId, error) {
	name = utils.SanitizeText(name)
	address = utils.SanitizeText(address)
	if name == "" {
		return -1, errors.BadRequest("Restaurant name is required")
	}
	if address == "" {
		return -1, errors.BadRequest("Restaurant address is required")
	}

	id, err := r.storage.SaveRestaurant(domain.Restaurant{
		Name:    name,
		Address: address,
		IsVegan: isVegan,
		OwnerId: owner.Id,
	})
	if err != nil {
		logger.Log.Error("failed to save restaurant", "error", err)
		return -1, &errors.ErrorWithStatusCode{Message: "cannot create restaurant", StatusCode: http.StatusInternalServerError}
	}
	return id, nil
}

func (r *Restaurant) Get(id domain.RestaurantId) (domain.Restaurant, error) {
	restaurant, err := r.storage.RestaurantById(id)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.Restaurant{}, errors.NotFound("cannot find restaurant")
		}
		logger.Log.Error("failed to look up restaurant", "restaurant_id", id, "error", err)
		return domain.Restaurant{}, err
	}
	return restaurant, nil
}
