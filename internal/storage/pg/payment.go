package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
)

// SavePayment inserts a payment record and returns its generated id.
func (s *Storage) SavePayment(payment domain.Payment) (domain.PaymentId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id domain.PaymentId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRow(`
            INSERT INTO payments(transaction_id, user_id, restaurant_id)
            VALUES($1, $2, $3) RETURNING id`,
			payment.TransactionId, payment.UserId, payment.RestaurantId,
		).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("failed to insert payment: %w", err)
	}
	return id, nil
}

// PaymentsByUser lists the payments made by a user, newest first.
func (s *Storage) PaymentsByUser(userId domain.UserId) ([]domain.Payment, error) {
	rows, err := s.db.Query(`
        SELECT id, transaction_id, user_id, restaurant_id, created_at
        FROM payments WHERE user_id = $1
        ORDER BY created_at DESC`, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(&payment.Id, &payment.TransactionId, &payment.UserId, &payment.RestaurantId, &payment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}
