package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PilYeooong/nuber-eats-backend/internal/api"
	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
)

func TestCreateRestaurantHandler(t *testing.T) {
	owner := &domain.User{Id: 10, Role: domain.RoleOwner}

	t.Run("201 with the new id", func(t *testing.T) {
		d := newTestDeps()

		d.restaurant.CreateFunc = func(got domain.User, name, address string, isVegan bool) (domain.RestaurantId, error) {
			assert.Equal(t, owner.Id, got.Id)
			assert.Equal(t, "pizza place", name)
			assert.Equal(t, "seoul", address)
			assert.True(t, isVegan)
			return 7, nil
		}

		w := d.do(t, http.MethodPost, "/v1/restaurants", api.CreateRestaurantRequest{
			Name:    "pizza place",
			Address: "seoul",
			IsVegan: true,
		}, owner)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, float64(7), body["id"])
	})

	t.Run("400 on missing fields", func(t *testing.T) {
		d := newTestDeps()
		w := d.do(t, http.MethodPost, "/v1/restaurants", api.CreateRestaurantRequest{Name: "pizza place"}, owner)
		requireFail(t, w, http.StatusBadRequest, "Required fields missing")
	})

	t.Run("401 when anonymous", func(t *testing.T) {
		d := newTestDeps()
		w := d.do(t, http.MethodPost, "/v1/restaurants", api.CreateRestaurantRequest{
			Name:    "pizza place",
			Address: "seoul",
		}, nil)
		requireFail(t, w, http.StatusUnauthorized, "Please sign-in")
	})
}

func TestGetRestaurantHandler(t *testing.T) {
	t.Run("returns the restaurant", func(t *testing.T) {
		d := newTestDeps()
		d.restaurant.GetFunc = func(id domain.RestaurantId) (domain.Restaurant, error) {
			return domain.Restaurant{Id: id, Name: "pizza place", Address: "seoul"}, nil
		}

		w := d.do(t, http.MethodGet, "/v1/restaurants/7", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		restaurant, ok := body["restaurant"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "pizza place", restaurant["name"])
	})

	t.Run("404 for unknown restaurant", func(t *testing.T) {
		d := newTestDeps()
		w := d.do(t, http.MethodGet, "/v1/restaurants/7", nil, nil)
		requireFail(t, w, http.StatusNotFound, "cannot find restaurant")
	})

	t.Run("400 for a non-numeric id", func(t *testing.T) {
		d := newTestDeps()
		w := d.do(t, http.MethodGet, "/v1/restaurants/abc", nil, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
