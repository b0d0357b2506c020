package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	internal_errors "github.com/PilYeooong/nuber-eats-backend/internal/errors"
)

// SaveVerification stores a fresh verification code for a user, replacing
// any previous code (most-recent-wins).
func (s *Storage) SaveVerification(verification domain.Verification) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.deleteVerificationsByUser(tx, verification.UserId); err != nil {
			return err
		}
		return s.saveVerification(tx, verification)
	})
}

// VerificationByCode fetches a verification record together with its owning user.
func (s *Storage) VerificationByCode(code string) (domain.Verification, domain.User, error) {
	var verification domain.Verification
	var user domain.User
	var role string
	err := s.db.QueryRow(`
        SELECT v.id, v.code, v.user_id, (v.expires_at at time zone 'utc'),
               u.id, u.email, u.password_hash, u.role, u.verified, u.created_at
        FROM verifications v
        JOIN users u ON u.id = v.user_id
        WHERE v.code = $1`,
		code,
	).Scan(
		&verification.Id, &verification.Code, &verification.UserId, &verification.Expires,
		&user.Id, &user.Email, &user.PassHash, &role, &user.Verified, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Verification{}, domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Verification not found", StatusCode: http.StatusNotFound}
		}
		return domain.Verification{}, domain.User{}, fmt.Errorf("failed to query verification: %w", err)
	}
	user.Role = domain.Role(role)
	return verification, user, nil
}

// ConsumeVerification flips the owning user's verified flag and deletes the
// code within a single transaction, so a crash can't leave the two halves
// disagreeing.
func (s *Storage) ConsumeVerification(verificationId int64, userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("UPDATE users SET verified = TRUE WHERE id = $1", userId)
		if err != nil {
			return fmt.Errorf("failed to mark user verified: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for verification: %w", err)
		}
		if rowsAffected == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}

		return s.deleteVerification(tx, verificationId)
	})
}

// DeleteVerificationsByUser removes any live codes for the user.
func (s *Storage) DeleteVerificationsByUser(userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteVerificationsByUser(tx, userId)
	})
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) saveVerification(q Querier, verification domain.Verification) error {
	_, err := q.Exec(`
        INSERT INTO verifications(code, user_id, expires_at)
        VALUES($1, $2, $3)`,
		verification.Code, verification.UserId, verification.Expires,
	)
	if err != nil {
		return fmt.Errorf("failed to insert verification: %w", err)
	}
	return nil
}

func (s *Storage) deleteVerification(q Querier, id int64) error {
	result, err := q.Exec("DELETE FROM verifications WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete verification: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for verification deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Verification not found", StatusCode: http.StatusNotFound}
	}
	return nil
}

func (s *Storage) deleteVerificationsByUser(q Querier, userId domain.UserId) error {
	if _, err := q.Exec("DELETE FROM verifications WHERE user_id = $1", userId); err != nil {
		return fmt.Errorf("failed to delete verifications for user: %w", err)
	}
	return nil
}
