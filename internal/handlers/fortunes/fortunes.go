package fortunes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/dto"
	fortuneservice "github.com/fortunapp/fortuna/internal/service/fortuneservice"
	ledgerservice "github.com/fortunapp/fortuna/internal/service/ledgerservice"
	"github.com/fortunapp/fortuna/pkg/auth"
	"github.com/fortunapp/fortuna/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, userID int, category string, cost int) (*domain.FortuneRequest, error)
	Accelerate(ctx context.Context, userID int, fortuneID string) (*fortuneservice.AccelerationResult, error)
	List(ctx context.Context, userID int, premium bool) ([]domain.FortuneRequest, error)
	Delete(ctx context.Context, userID int, fortuneID string) error
}

type UserService interface {
	GetUser(ctx context.Context, userID int) (*domain.User, error)
}

type FortuneHandler struct {
	fortuneService Service
	userService    UserService
}

func New(fortuneService Service, userService UserService) *FortuneHandler {
	return &FortuneHandler{
		fortuneService: fortuneService,
		userService:    userService,
	}
}

// Submit godoc
//
//	@Summary		Purchase a fortune request
//	@Description	Debits the cost and queues the request for review; the debit and the creation are one atomic unit.
//	@Tags			Fortunes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitFortuneRequestDTO	true	"Category and cost"
//	@Success		201		{object}	dto.FortuneResponseDTO		"Request queued"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/fortunes [post]
func (h *FortuneHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitFortuneRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" || req.Cost <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "category and positive cost are required")
		return
	}

	fortune, err := h.fortuneService.Submit(r.Context(), userID, req.Category, req.Cost)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toFortuneDTO(fortune))
}

// List godoc
//
//	@Summary		List fortune requests
//	@Description	Runs the reconciliation sweep, then returns the user's requests. Non-premium users see the latest 3.
//	@Tags			Fortunes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.FortuneResponseDTO
//	@Failure		204	{object}	utils.Response	"No requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/fortunes [get]
func (h *FortuneHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	fortunes, err := h.fortuneService.List(r.Context(), userID, user.Premium)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(fortunes) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No fortune requests")
		return
	}

	response := make([]dto.FortuneResponseDTO, len(fortunes))
	for i := range fortunes {
		response[i] = toFortuneDTO(&fortunes[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Accelerate godoc
//
//	@Summary		Accelerate a fortune request with a verified ad view
//	@Description	Two qualifying views shorten the reveal delay once; further attempts are rejected.
//	@Tags			Fortunes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccelerateResponseDTO	"Counter state and ETA"
//	@Failure		404	{object}	utils.Response				"Request not found"
//	@Failure		409	{object}	utils.Response				"Already accelerated or not eligible"
//	@Router			/api/user/fortunes/{id}/accelerate [post]
func (h *FortuneHandler) Accelerate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	fortuneID := chi.URLParam(r, "id")

	result, err := h.fortuneService.Accelerate(r.Context(), userID, fortuneID)
	if err != nil {
		switch {
		case errors.Is(err, fortuneservice.ErrFortuneNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, fortuneservice.ErrAlreadyAccelerated), errors.Is(err, fortuneservice.ErrNotEligible):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccelerateResponseDTO{
		AdsWatched:   result.AdsWatched,
		ProcessAfter: result.ProcessAfter,
	})
}

// Delete godoc
//
//	@Summary		Delete a fortune request
//	@Description	Hard delete, no token refund.
//	@Tags			Fortunes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Deleted"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Router			/api/user/fortunes/{id} [delete]
func (h *FortuneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	fortuneID := chi.URLParam(r, "id")

	if err := h.fortuneService.Delete(r.Context(), userID, fortuneID); err != nil {
		switch {
		case errors.Is(err, fortuneservice.ErrFortuneNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "fortune request deleted"})
}

func toFortuneDTO(f *domain.FortuneRequest) dto.FortuneResponseDTO {
	return dto.FortuneResponseDTO{
		ID:           f.ID,
		Category:     f.Category,
		TokenAmount:  f.TokenAmount,
		Status:       string(f.Status),
		ProcessAfter: f.ProcessAfter,
		CompletedAt:  f.CompletedAt,
		AdsWatched:   f.AdsWatched,
		CreatedAt:    f.CreatedAt,
	}
}
