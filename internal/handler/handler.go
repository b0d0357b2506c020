package handler

import (
	"encoding/json"
	"net/http"

	"github.com/PilYeooong/nuber-eats-backend/internal/api"
	"github.com/PilYeooong/nuber-eats-backend/internal/config"
	"github.com/PilYeooong/nuber-eats-backend/internal/errors"
	"github.com/PilYeooong/nuber-eats-backend/internal/logger"
	"github.com/PilYeooong/nuber-eats-backend/internal/service"
)

type Handler struct {
	user       service.UserService
	restaurant service.RestaurantService
	payment    service.PaymentService
	cfg        *config.Config
}

func New(user service.UserService, restaurant service.RestaurantService, payment service.PaymentService, cfg *config.Config) *Handler {
	return &Handler{user, restaurant, payment, cfg}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// writeError maps a service error onto the response envelope. Unknown
// errors become a generic 500 with the cause logged, not surfaced.
func writeError(w http.ResponseWriter, err error) {
	status := errors.StatusCode(err)
	message := err.Error()
	if _, ok := err.(*errors.ErrorWithStatusCode); !ok {
		logger.Log.Error("unexpected handler error", "error", err)
		message = "Internal server error"
	}
	writeJSON(w, status, api.Fail(message))
}
