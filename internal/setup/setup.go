package setup

import (
	"github.com/PilYeooong/nuber-eats-backend/internal/config"
	"github.com/PilYeooong/nuber-eats-backend/internal/handler"
	"github.com/PilYeooong/nuber-eats-backend/internal/jwt"
	"github.com/PilYeooong/nuber-eats-backend/internal/mail"
	"github.com/PilYeooong/nuber-eats-backend/internal/service"
	"github.com/PilYeooong/nuber-eats-backend/internal/storage/pg"
)

// Dependencies holds all initialized collaborators. Construction is
// explicit: every component receives what it needs, no ambient lookup.
type Dependencies struct {
	Cfg            *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            *jwt.Jwt
	UserService    *service.User
	PaymentService *service.Payment
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	mailer := mail.New(&cfg.Private.Mailgun)
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	user := service.NewUser(storage, mailer, jwtService, &cfg.Public)
	restaurant := service.NewRestaurant(storage)
	payment := service.NewPayment(storage, &cfg.Public)

	h := handler.New(user, restaurant, payment, cfg)

	return &Dependencies{
		Cfg:            cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		UserService:    user,
		PaymentService: payment,
	}, nil
}
