package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/dto"
	pkgauth "github.com/fortunapp/fortuna/pkg/auth"
	"github.com/fortunapp/fortuna/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	ActivatePremium(ctx context.Context, userID int) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create an account, its balance row, a one-time referral code, and credit the welcome bonus.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AuthRequestDTO	true	"Credentials"
//	@Success		200		{object}	dto.AuthResponseDTO	"Token issued"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		409		{object}	utils.Response		"Login already taken"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Login == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{Token: token})
}

// Login godoc
//
//	@Summary		Authenticate a user
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AuthRequestDTO	true	"Credentials"
//	@Success		200		{object}	dto.AuthResponseDTO	"Token issued"
//	@Failure		401		{object}	utils.Response		"Invalid credentials"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{Token: token})
}

// GetMe godoc
//
//	@Summary		Get current user profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/me [get]
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		ID:            user.ID,
		Login:         user.Login,
		ReferralCode:  user.ReferralCode,
		ReferralCount: user.ReferralCount,
		Premium:       user.Premium,
	})
}

// ActivatePremium godoc
//
//	@Summary		Activate the premium tier
//	@Description	Consumes the billing validator's post-validation subscription event.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Premium activated"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/premium [post]
func (h *AuthHandler) ActivatePremium(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	if err := h.authService.ActivatePremium(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "premium activated"})
}
