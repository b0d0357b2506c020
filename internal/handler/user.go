package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PilYeooong/nuber-eats-backend/internal/api"
	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	"github.com/PilYeooong/nuber-eats-backend/internal/errors"
	"github.com/PilYeooong/nuber-eats-backend/internal/middleware"
	"github.com/PilYeooong/nuber-eats-backend/internal/utils"
)

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var body api.CreateAccountRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	if err := h.user.CreateAccount(body.Email, body.Password, domain.Role(body.Role)); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateAccountResponse{Response: api.OK()})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.user.Login(body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{Response: api.OK(), Token: token})
}

// Me returns the identity the resolver attached to this request.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		writeError(w, errors.Unauthorized("Please sign-in"))
		return
	}

	view := api.UserFromDomain(*user)
	writeJSON(w, http.StatusOK, api.UserProfileResponse{Response: api.OK(), User: &view})
}

func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "user id")
	if err != nil {
		writeError(w, errors.BadRequest(err.Error()))
		return
	}

	user, err := h.user.FindById(domain.UserId(id))
	if err != nil {
		writeError(w, err)
		return
	}

	view := api.UserFromDomain(user)
	writeJSON(w, http.StatusOK, api.UserProfileResponse{Response: api.OK(), User: &view})
}

func (h *Handler) EditProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		writeError(w, errors.Unauthorized("Please sign-in"))
		return
	}

	var body api.EditProfileRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	update := domain.ProfileUpdate{
		Email:    body.Email,
		Password: body.Password,
	}
	if body.Role != nil {
		role := domain.Role(*body.Role)
		update.Role = &role
	}

	if err := h.user.EditProfile(user.Id, update); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.EditProfileResponse{Response: api.OK()})
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var body api.VerifyEmailRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	if err := h.user.VerifyEmail(body.Code); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.VerifyEmailResponse{Response: api.OK()})
}
