package service

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/PilYeooong/nuber-eats-backend/internal/config"
	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	"github.com/PilYeooong/nuber-eats-backend/internal/errors"
	"github.com/PilYeooong/nuber-eats-backend/internal/logger"
	"github.com/PilYeooong/nuber-eats-backend/internal/utils"
)

type UserService interface {
	CreateAccount(email domain.Email, password domain.Password, role domain.Role) error
	Login(email domain.Email, password domain.Password) (string, error)
	FindById(id domain.UserId) (domain.User, error)
	EditProfile(id domain.UserId, update domain.ProfileUpdate) error
	VerifyEmail(code string) error
}

type UserStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	UserByEmail(email domain.Email) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	UpdateUser(user domain.User) error
	SaveVerification(verification domain.Verification) error
	VerificationByCode(code string) (domain.Verification, domain.User, error)
	ConsumeVerification(verificationId int64, userId domain.UserId) error
	DeleteVerificationsByUser(userId domain.UserId) error
}

// Mailer dispatches a verification email. The boolean result is a
// delivery hint for logs only, failures never surface to callers.
type Mailer interface {
	SendVerificationEmail(recipientEmail domain.Email, code string) bool
}

type Jwt interface {
	NewToken(userId domain.UserId) (string, error)
}

type User struct {
	storage UserStorage
	mail    Mailer
	jwt     Jwt
	cfg     *config.Public
}

func NewUser(storage UserStorage, mail Mailer, jwt Jwt, cfg *config.Public) *User {
	return &User{
		storage: storage,
		mail:    mail,
		jwt:     jwt,
		cfg:     cfg,
	}
}

// CreateAccount registers an unverified account, persists a fresh
// verification code and dispatches the verification email best-effort.
func (u *User) CreateAccount(email domain.Email, password domain.Password, role domain.Role) error {
	email = strings.ToLower(email)

	if !role.Valid() {
		return errors.BadRequest("Invalid role")
	}

	// duplicate check comes first so the caller gets a precise error
	_, err := u.storage.UserByEmail(email)
	if err == nil {
		return errors.Conflict("There is a user with that email already")
	}
	if !errors.IsNotFound(err) {
		logger.Log.Error("failed to check existing user", "error", err)
		return &errors.ErrorWithStatusCode{Message: "cannot create account", StatusCode: http.StatusInternalServerError}
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return &errors.ErrorWithStatusCode{Message: "cannot create account", StatusCode: http.StatusInternalServerError}
	}

	userId, err := u.storage.SaveUser(domain.User{Email: email, PassHash: string(passHash), Role: role})
	if err != nil {
		if errors.StatusCode(err) == http.StatusConflict {
			return err // concurrent signup won the uniqueness race
		}
		logger.Log.Error("failed to save user", "error", err)
		return &errors.ErrorWithStatusCode{Message: "cannot create account", StatusCode: http.StatusInternalServerError}
	}

	if err := u.issueVerification(userId, email); err != nil {
		logger.Log.Error("failed to save verification code", "user_id", userId, "error", err)
		return &errors.ErrorWithStatusCode{Message: "cannot create account", StatusCode: http.StatusInternalServerError}
	}

	return nil
}

// Login checks credentials and returns an access token keyed on the user id.
func (u *User) Login(email domain.Email, password domain.Password) (string, error) {
	email = strings.ToLower(email)

	user, err := u.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.NotFound("User not found")
		}
		logger.Log.Error("failed to look up user for login", "error", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", errors.Unauthorized("Wrong Password")
	}

	token, err := u.jwt.NewToken(user.Id)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}

// FindById keeps "no such user" distinct from storage failures: the former
// is a 404, the latter surfaces as an internal error.
func (u *User) FindById(id domain.UserId) (domain.User, error) {
	user, err := u.storage.UserById(id)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.User{}, errors.NotFound("User Not Found")
		}
		logger.Log.Error("failed to look up user", "user_id", id, "error", err)
		return domain.User{}, err
	}
	return user, nil
}

// EditProfile merges the supplied fields into the account. An email change
// resets the verified flag and re-triggers verification; the password is
// re-hashed only when explicitly supplied.
func (u *User) EditProfile(id domain.UserId, update domain.ProfileUpdate) error {
	user, err := u.storage.UserById(id)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NotFound("User Not Found")
		}
		logger.Log.Error("failed to load user for edit", "user_id", id, "error", err)
		return &errors.ErrorWithStatusCode{Message: "Could not update profile", StatusCode: http.StatusInternalServerError}
	}

	emailChanged := false
	if update.Email != nil {
		newEmail := strings.ToLower(*update.Email)
		if newEmail != user.Email {
			user.Email = newEmail
			user.Verified = false
			emailChanged = true
		}
	}
	if update.Password != nil {
		passHash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Error("failed to hash password", "user_id", id, "error", err)
			return &errors.ErrorWithStatusCode{Message: "Could not update profile", StatusCode: http.StatusInternalServerError}
		}
		user.PassHash = string(passHash)
	}
	if update.Role != nil {
		if !update.Role.Valid() {
			return errors.BadRequest("Invalid role")
		}
		user.Role = *update.Role
	}

	if err := u.storage.UpdateUser(user); err != nil {
		if errors.StatusCode(err) == http.StatusConflict {
			return err
		}
		logger.Log.Error("failed to update user", "user_id", id, "error", err)
		return &errors.ErrorWithStatusCode{Message: "Could not update profile", StatusCode: http.StatusInternalServerError}
	}

	if emailChanged {
		if err := u.issueVerification(user.Id, user.Email); err != nil {
			logger.Log.Error("failed to reissue verification code", "user_id", id, "error", err)
			return &errors.ErrorWithStatusCode{Message: "Could not update profile", StatusCode: http.StatusInternalServerError}
		}
	}

	return nil
}

// VerifyEmail consumes a verification code: exactly one success per code.
func (u *User) VerifyEmail(code string) error {
	verification, user, err := u.storage.VerificationByCode(code)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.BadRequest("Not a valid verification code")
		}
		logger.Log.Error("failed to look up verification", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Could not verify Email", StatusCode: http.StatusInternalServerError}
	}

	if verification.Expired(time.Now().UTC()) {
		if err := u.storage.DeleteVerificationsByUser(user.Id); err != nil {
			logger.Log.Warn("failed to delete expired verification", "user_id", user.Id, "error", err)
		}
		return errors.BadRequest("Not a valid verification code")
	}

	if err := u.storage.ConsumeVerification(verification.Id, user.Id); err != nil {
		logger.Log.Error("failed to consume verification", "user_id", user.Id, "error", err)
		return &errors.ErrorWithStatusCode{Message: "Could not verify Email", StatusCode: http.StatusInternalServerError}
	}

	return nil
}

func (u *User) issueVerification(userId domain.UserId, email domain.Email) error {
	code := utils.GenerateVerificationCode(u.cfg.VerificationCodeLen)
	verification := domain.Verification{
		Code:    code,
		UserId:  userId,
		Expires: time.Now().UTC().Add(u.cfg.VerificationCodeTTL.Std()),
	}
	if err := u.storage.SaveVerification(verification); err != nil {
		return err
	}

	if ok := u.mail.SendVerificationEmail(email, code); !ok {
		// fire-and-forget contract: account state stands even if the email
		// never goes out
		logger.Log.Warn("verification email was not delivered", "email", email)
	}
	return nil
}
