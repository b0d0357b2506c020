package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	internal_errors "github.com/PilYeooong/nuber-eats-backend/internal/errors"
)

// Exercised against a throwaway postgres container, see TestMain.
func requireIntegration(t *testing.T) *Storage {
	t.Helper()
	if integrationStorage == nil {
		t.Skip("set INTEGRATION=1 to run against a postgres container")
	}
	return integrationStorage
}

func mustSaveUser(t *testing.T, s *Storage, email string, role domain.Role) domain.UserId {
	t.Helper()
	id, err := s.SaveUser(domain.User{Email: email, PassHash: "hash", Role: role})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))
	return id
}

func TestIntegrationUserLifecycle(t *testing.T) {
	s := requireIntegration(t)

	id := mustSaveUser(t, s, "lifecycle@example.com", domain.RoleClient)

	_, err := s.SaveUser(domain.User{Email: "lifecycle@example.com", PassHash: "hash", Role: domain.RoleClient})
	require.Error(t, err, "saving the same email twice should conflict")
	assert.Equal(t, 409, internal_errors.StatusCode(err))

	user, err := s.UserByEmail("lifecycle@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.Id)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.False(t, user.Verified)
	assert.False(t, user.CreatedAt.IsZero())

	user.Email = "renamed@example.com"
	user.Verified = true
	require.NoError(t, s.UpdateUser(user))

	updated, err := s.UserById(id)
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", updated.Email)
	assert.True(t, updated.Verified)

	_, err = s.UserByEmail("nonexistent@example.com")
	require.Error(t, err)
	assert.Equal(t, 404, internal_errors.StatusCode(err))
}

func TestIntegrationVerificationFlow(t *testing.T) {
	s := requireIntegration(t)

	id := mustSaveUser(t, s, "verify@example.com", domain.RoleClient)
	expires := time.Now().UTC().Add(24 * time.Hour)

	require.NoError(t, s.SaveVerification(domain.Verification{Code: "first-code", UserId: id, Expires: expires}))
	// a reissued code replaces the old one
	require.NoError(t, s.SaveVerification(domain.Verification{Code: "second-code", UserId: id, Expires: expires}))

	_, _, err := s.VerificationByCode("first-code")
	require.Error(t, err, "replaced code should be gone")
	assert.Equal(t, 404, internal_errors.StatusCode(err))

	verification, user, err := s.VerificationByCode("second-code")
	require.NoError(t, err)
	assert.Equal(t, id, verification.UserId)
	assert.Equal(t, id, user.Id)
	assert.False(t, user.Verified)

	require.NoError(t, s.ConsumeVerification(verification.Id, user.Id))

	verified, err := s.UserById(id)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	_, _, err = s.VerificationByCode("second-code")
	require.Error(t, err, "consumed code should be gone")
}

func TestIntegrationPromotionSweepQuery(t *testing.T) {
	s := requireIntegration(t)

	ownerId := mustSaveUser(t, s, "sweep-owner@example.com", domain.RoleOwner)

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	expiredId, err := s.SaveRestaurant(domain.Restaurant{Name: "expired", Address: "seoul", OwnerId: ownerId, IsPromoted: true, PromotedUntil: &past})
	require.NoError(t, err)
	liveId, err := s.SaveRestaurant(domain.Restaurant{Name: "live", Address: "seoul", OwnerId: ownerId, IsPromoted: true, PromotedUntil: &future})
	require.NoError(t, err)

	expired, err := s.ExpiredPromotedRestaurants(time.Now().UTC())
	require.NoError(t, err)

	ids := make(map[domain.RestaurantId]bool)
	for _, r := range expired {
		ids[r.Id] = true
	}
	assert.True(t, ids[expiredId], "elapsed window should be listed")
	assert.False(t, ids[liveId], "future window must not be listed")

	cleared, err := s.RestaurantById(expiredId)
	require.NoError(t, err)
	cleared.IsPromoted = false
	cleared.PromotedUntil = nil
	require.NoError(t, s.UpdateRestaurantPromotion(cleared))

	got, err := s.RestaurantById(expiredId)
	require.NoError(t, err)
	assert.False(t, got.IsPromoted)
	assert.Nil(t, got.PromotedUntil)
}

func TestIntegrationPayments(t *testing.T) {
	s := requireIntegration(t)

	ownerId := mustSaveUser(t, s, "payments-owner@example.com", domain.RoleOwner)
	restaurantId, err := s.SaveRestaurant(domain.Restaurant{Name: "paid", Address: "seoul", OwnerId: ownerId})
	require.NoError(t, err)

	first, err := s.SavePayment(domain.Payment{TransactionId: "tx-1", UserId: ownerId, RestaurantId: restaurantId})
	require.NoError(t, err)
	require.Greater(t, first, int64(0))
	_, err = s.SavePayment(domain.Payment{TransactionId: "tx-2", UserId: ownerId, RestaurantId: restaurantId})
	require.NoError(t, err)

	payments, err := s.PaymentsByUser(ownerId)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	for _, p := range payments {
		assert.Equal(t, ownerId, p.UserId)
		assert.False(t, p.CreatedAt.IsZero())
	}
}
