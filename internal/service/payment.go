package service

import (
	"context"
	"net/http"
	"time"

	"github.com/PilYeooong/nuber-eats-backend/internal/config"
	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	"github.com/PilYeooong/nuber-eats-backend/internal/errors"
	"github.com/PilYeooong/nuber-eats-backend/internal/logger"
)

type PaymentService interface {
	CreatePayment(owner domain.User, transactionId string, restaurantId domain.RestaurantId) error
	GetPayments(userId domain.UserId) ([]domain.Payment, error)
}

type PaymentStorage interface {
	SavePayment(payment domain.Payment) (domain.PaymentId, error)
	PaymentsByUser(userId domain.UserId) ([]domain.Payment, error)
	RestaurantById(id domain.RestaurantId) (domain.Restaurant, error)
	UpdateRestaurantPromotion(restaurant domain.Restaurant) error
	ExpiredPromotedRestaurants(now time.Time) ([]domain.Restaurant, error)
}

type Payment struct {
	storage PaymentStorage
	cfg     *config.Public
}

func NewPayment(storage PaymentStorage, cfg *config.Public) *Payment {
	return &Payment{storage: storage, cfg: cfg}
}

// CreatePayment records a promotion payment and opens the restaurant's
// promotion window. Only the restaurant's owner may pay for it.
func (p *Payment) CreatePayment(owner domain.User, transactionId string, restaurantId domain.RestaurantId) error {
	restaurant, err := p.storage.RestaurantById(restaurantId)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NotFound("cannot find restaurant")
		}
		logger.Log.Error("failed to look up restaurant for payment", "restaurant_id", restaurantId, "error", err)
		return &errors.ErrorWithStatusCode{Message: "cannot create payment", StatusCode: http.StatusInternalServerError}
	}
	if restaurant.OwnerId != owner.Id {
		return &errors.ErrorWithStatusCode{Message: "you can not access", StatusCode: http.StatusForbidden}
	}

	promotedUntil := time.Now().UTC().Add(p.cfg.PromotionDuration.Std())
	restaurant.IsPromoted = true
	restaurant.PromotedUntil = &promotedUntil
	if err := p.storage.UpdateRestaurantPromotion(restaurant); err != nil {
		logger.Log.Error("failed to promote restaurant", "restaurant_id", restaurantId, "error", err)
		return &errors.ErrorWithStatusCode{Message: "cannot create payment", StatusCode: http.StatusInternalServerError}
	}

	payment := domain.Payment{
		TransactionId: transactionId,
		UserId:        owner.Id,
		RestaurantId:  restaurantId,
	}
	if _, err := p.storage.SavePayment(payment); err != nil {
		logger.Log.Error("failed to save payment", "restaurant_id", restaurantId, "error", err)
		return &errors.ErrorWithStatusCode{Message: "cannot create payment", StatusCode: http.StatusInternalServerError}
	}

	return nil
}

func (p *Payment) GetPayments(userId domain.UserId) ([]domain.Payment, error) {
	payments, err := p.storage.PaymentsByUser(userId)
	if err != nil {
		logger.Log.Error("failed to list payments", "user_id", userId, "error", err)
		return nil, &errors.ErrorWithStatusCode{Message: "cannot get payments", StatusCode: http.StatusInternalServerError}
	}
	return payments, nil
}

// StartPromotionSweep runs CheckPromotedRestaurants on a fixed wall-clock
// interval for the lifetime of ctx. No jitter, no catch-up for missed ticks.
func (p *Payment) StartPromotionSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started promotion sweep", "interval", interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := p.CheckPromotedRestaurants(); err != nil {
					logger.Log.Error("promotion sweep failed", "error", err)
				}
			case <-ctx.Done():
				logger.Log.Info("promotion sweep shutting down")
				return
			}
		}
	}()
}

// CheckPromotedRestaurants un-promotes every restaurant whose window has
// elapsed. A failure on one restaurant is logged and does not block the rest.
func (p *Payment) CheckPromotedRestaurants() error {
	restaurants, err := p.storage.ExpiredPromotedRestaurants(time.Now().UTC())
	if err != nil {
		return err
	}

	cleared := 0
	for _, restaurant := range restaurants {
		restaurant.IsPromoted = false
		restaurant.PromotedUntil = nil
		if err := p.storage.UpdateRestaurantPromotion(restaurant); err != nil {
			logger.Log.Error("failed to unpromote restaurant", "restaurant_id", restaurant.Id, "error", err)
			continue
		}
		cleared++
	}
	if len(restaurants) > 0 {
		logger.Log.Info("promotion sweep tick", "expired", len(restaurants), "cleared", cleared)
	}
	return nil
}
