package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	internal_errors "github.com/PilYeooong/nuber-eats-backend/internal/errors"
)

// SaveRestaurant inserts a new restaurant and returns its generated id.
func (s *Storage) SaveRestaurant(restaurant domain.Restaurant) (domain.RestaurantId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id domain.RestaurantId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveRestaurant(tx, restaurant)
		return err
	})
	return id, err
}

// RestaurantById fetches a restaurant by id.
func (s *Storage) RestaurantById(id domain.RestaurantId) (domain.Restaurant, error) {
	row := s.db.QueryRow(`
        SELECT id, name, address, is_vegan, owner_id, is_promoted, promoted_until
        FROM restaurants WHERE id = $1`, id)
	restaurant, err := scanRestaurant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Restaurant{}, &internal_errors.ErrorWithStatusCode{Message: "Restaurant not found", StatusCode: http.StatusNotFound}
		}
		return domain.Restaurant{}, fmt.Errorf("failed to query restaurant: %w", err)
	}
	return restaurant, nil
}

// UpdateRestaurantPromotion persists only the promotion window fields.
func (s *Storage) UpdateRestaurantPromotion(restaurant domain.Restaurant) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
            UPDATE restaurants SET is_promoted = $1, promoted_until = $2
            WHERE id = $3`,
			restaurant.IsPromoted, restaurant.PromotedUntil, restaurant.Id,
		)
		if err != nil {
			return fmt.Errorf("failed to update restaurant promotion: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for promotion update: %w", err)
		}
		if rowsAffected == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Restaurant not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}

// ExpiredPromotedRestaurants lists every restaurant whose promotion window
// has elapsed as of now. Used by the promotion sweeper.
func (s *Storage) ExpiredPromotedRestaurants(now time.Time) ([]domain.Restaurant, error) {
	rows, err := s.db.Query(`
        SELECT id, name, address, is_vegan, owner_id, is_promoted, promoted_until
        FROM restaurants
        WHERE is_promoted = TRUE AND promoted_until < $1`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired promotions: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}
	return restaurants, nil
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var promotedUntil sql.NullTime
	err := row.Scan(
		&restaurant.Id, &restaurant.Name, &restaurant.Address, &restaurant.IsVegan,
		&restaurant.OwnerId, &restaurant.IsPromoted, &promotedUntil,
	)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if promotedUntil.Valid {
		restaurant.PromotedUntil = &promotedUntil.Time
	}
	return restaurant, nil
}

func (s *Storage) saveRestaurant(q Querier, restaurant domain.Restaurant) (domain.RestaurantId, error) {
	var id domain.RestaurantId
	err := q.QueryRow(`
        INSERT INTO restaurants(name, address, is_vegan, owner_id, is_promoted, promoted_until)
        VALUES($1, $2, $3, $4, $5, $6) RETURNING id`,
		restaurant.Name, restaurant.Address, restaurant.IsVegan,
		restaurant.OwnerId, restaurant.IsPromoted, restaurant.PromotedUntil,
	).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert restaurant: %w", err)
	}
	return id, nil
}
