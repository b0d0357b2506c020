package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	internal_errors "github.com/PilYeooong/nuber-eats-backend/internal/errors"
)

type MockRestaurantStorage struct {
	SaveRestaurantFunc func(restaurant domain.Restaurant) (domain.RestaurantId, error)
	RestaurantByIdFunc func(id domain.RestaurantId) (domain.Restaurant, error)
}

func (m *MockRestaurantStorage) SaveRestaurant(restaurant domain.Restaurant) (domain.RestaurantId, error) {
	if m.SaveRestaurantFunc != nil {
		return m.SaveRestaurantFunc(restaurant)
	}
	return 1, nil
}

func (m *MockRestaurantStorage) RestaurantById(id domain.RestaurantId) (domain.Restaurant, error) {
	if m.RestaurantByIdFunc != nil {
		return m.RestaurantByIdFunc(id)
	}
	return domain.Restaurant{}, notFound("Restaurant not found")
}

func TestRestaurantCreate(t *testing.T) {
	owner := domain.User{Id: 10, Role: domain.RoleOwner}

	t.Run("creates restaurant for its owner", func(t *testing.T) {
		storage := &MockRestaurantStorage{}
		service := NewRestaurant(storage)

		var saved domain.Restaurant
		storage.SaveRestaurantFunc = func(restaurant domain.Restaurant) (domain.RestaurantId, error) {
			saved = restaurant
			return 7, nil
		}

		id, err := service.Create(owner, "pizza place", "seoul", true)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, owner.Id, saved.OwnerId)
		assert.True(t, saved.IsVegan)
	})

	t.Run("strips markup from name and address", func(t *testing.T) {
		storage := &MockRestaurantStorage{}
		service := NewRestaurant(storage)

		var saved domain.Restaurant
		storage.SaveRestaurantFunc = func(restaurant domain.Restaurant) (domain.RestaurantId, error) {
			saved = restaurant
			return 7, nil
		}

		_, err := service.Create(owner, "<b>pizza place</b>", "<script>x()</script>seoul", false)
		require.NoError(t, err)
		assert.Equal(t, "pizza place", saved.Name)
		assert.Equal(t, "seoul", saved.Address)
	})

	t.Run("rejects a name that is markup only", func(t *testing.T) {
		service := NewRestaurant(&MockRestaurantStorage{})

		_, err := service.Create(owner, "<script>alert(1)</script>", "seoul", false)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
	})

	t.Run("fails on persistence error", func(t *testing.T) {
		storage := &MockRestaurantStorage{}
		service := NewRestaurant(storage)

		storage.SaveRestaurantFunc = func(restaurant domain.Restaurant) (domain.RestaurantId, error) {
			return -1, errors.New("insert failed")
		}

		_, err := service.Create(owner, "pizza place", "seoul", false)
		require.Error(t, err)
		assert.Equal(t, "cannot create restaurant", err.Error())
	})
}

func TestRestaurantGet(t *testing.T) {
	t.Run("returns restaurant", func(t *testing.T) {
		storage := &MockRestaurantStorage{}
		service := NewRestaurant(storage)

		storage.RestaurantByIdFunc = func(id domain.RestaurantId) (domain.Restaurant, error) {
			return domain.Restaurant{Id: id, Name: "pizza place"}, nil
		}

		restaurant, err := service.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "pizza place", restaurant.Name)
	})

	t.Run("fails if restaurant does not exist", func(t *testing.T) {
		service := NewRestaurant(&MockRestaurantStorage{})

		_, err := service.Get(1)
		require.Error(t, err)
		assert.Equal(t, "cannot find restaurant", err.Error())
		assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))
	})
}
