package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PilYeooong/nuber-eats-backend/internal/api"
	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	"github.com/PilYeooong/nuber-eats-backend/internal/errors"
	"github.com/PilYeooong/nuber-eats-backend/internal/middleware"
	"github.com/PilYeooong/nuber-eats-backend/internal/utils"
)

func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserFromContext(r)
	if owner == nil {
		writeError(w, errors.Unauthorized("Please sign-in"))
		return
	}

	var body api.CreateRestaurantRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.restaurant.Create(*owner, body.Name, body.Address, body.IsVegan)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateRestaurantResponse{Response: api.OK(), Id: id})
}

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "restaurant id")
	if err != nil {
		writeError(w, errors.BadRequest(err.Error()))
		return
	}

	restaurant, err := h.restaurant.Get(domain.RestaurantId(id))
	if err != nil {
		writeError(w, err)
		return
	}

	view := api.RestaurantFromDomain(restaurant)
	writeJSON(w, http.StatusOK, api.RestaurantResponse{Response: api.OK(), Restaurant: &view})
}
