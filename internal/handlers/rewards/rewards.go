package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/dto"
	rewardservice "github.com/fortunapp/fortuna/internal/service/rewardservice"
	"github.com/fortunapp/fortuna/pkg/auth"
	"github.com/fortunapp/fortuna/pkg/utils"
	"github.com/fortunapp/fortuna/pkg/validate"
)

type Service interface {
	RecordProgress(ctx context.Context, userID int, metric string, increment int) error
	GetDailyProgress(ctx context.Context, userID int) ([]rewardservice.TierProgress, error)
	ClaimDaily(ctx context.Context, userID int, tier int) (int, error)
	ReportSocialAction(ctx context.Context, userID int, task string) error
	ClaimSocial(ctx context.Context, userID int, task string) (int, error)
	RegisterAdView(ctx context.Context, userID int) (*domain.Balance, error)
	ProcessReferral(ctx context.Context, userID int, code string) error
}

type RewardHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// RecordEvent godoc
//
//	@Summary		Record a progress event
//	@Description	Feed one user action (post liked, interaction, ...) into the open daily tiers.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProgressEventRequestDTO	true	"Event payload"
//	@Success		200		{object}	utils.Response				"Progress recorded"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		422		{object}	utils.Response				"Unknown metric"
//	@Router			/api/user/rewards/events [post]
func (h *RewardHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ProgressEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.rewardService.RecordProgress(r.Context(), userID, req.Metric, req.Increment)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrUnknownMetric):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "progress recorded"})
}

// GetProgress godoc
//
//	@Summary		Get daily tier progress
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TierProgressResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rewards [get]
func (h *RewardHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	progress, err := h.rewardService.GetDailyProgress(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TierProgressResponseDTO, len(progress))
	for i, tp := range progress {
		response[i] = dto.TierProgressResponseDTO{
			Tier:         tp.Tier,
			Requirements: tp.Requirements,
			Counters:     tp.Counters,
			Reward:       tp.Reward,
			Completed:    tp.Completed,
			Claimed:      tp.Claimed,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ClaimDaily godoc
//
//	@Summary		Claim a completed daily tier
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO		true	"Tier to claim"
//	@Success		200		{object}	dto.ClaimResponseDTO	"Tokens credited"
//	@Failure		409		{object}	utils.Response			"Not completed or already claimed"
//	@Failure		422		{object}	utils.Response			"Unknown tier"
//	@Router			/api/user/rewards/claim [post]
func (h *RewardHandler) ClaimDaily(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reward, err := h.rewardService.ClaimDaily(r.Context(), userID, req.Tier)
	if err != nil {
		respondClaimError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{Reward: reward})
}

// ReportSocial godoc
//
//	@Summary		Report a social task action
//	@Description	Opens the verification window for the task; completion becomes claimable after the delay.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Action recorded"
//	@Failure		422	{object}	utils.Response	"Unknown task"
//	@Router			/api/user/rewards/social/{task}/report [post]
func (h *RewardHandler) ReportSocial(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	task := chi.URLParam(r, "task")

	err := h.rewardService.ReportSocialAction(r.Context(), userID, task)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrUnknownTask):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "action recorded"})
}

// ClaimSocial godoc
//
//	@Summary		Claim a verified social task
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ClaimResponseDTO	"Tokens credited"
//	@Failure		409	{object}	utils.Response			"Not verified yet or already claimed"
//	@Failure		422	{object}	utils.Response			"Unknown task"
//	@Router			/api/user/rewards/social/{task}/claim [post]
func (h *RewardHandler) ClaimSocial(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	task := chi.URLParam(r, "task")

	reward, err := h.rewardService.ClaimSocial(r.Context(), userID, task)
	if err != nil {
		respondClaimError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{Reward: reward})
}

// RegisterAdView godoc
//
//	@Summary		Register a verified rewarded ad view
//	@Description	Credits one token, capped at 10 views per calendar day.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdViewResponseDTO	"New balance"
//	@Failure		429	{object}	utils.Response			"Daily ad limit reached"
//	@Router			/api/user/rewards/ads [post]
func (h *RewardHandler) RegisterAdView(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.rewardService.RegisterAdView(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrDailyCapReached):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdViewResponseDTO{Balance: balance.TokenBalance})
}

// ProcessReferral godoc
//
//	@Summary		Consume a referral code
//	@Description	Marks the caller as referred and credits both parties the referral bonus.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReferralRequestDTO	true	"Referral code"
//	@Success		200		{object}	utils.Response			"Referral processed"
//	@Failure		409		{object}	utils.Response			"Already referred"
//	@Failure		422		{object}	utils.Response			"Invalid or own code"
//	@Router			/api/user/referral [post]
func (h *RewardHandler) ProcessReferral(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsReferralCode(req.Code) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid referral code")
		return
	}

	err := h.rewardService.ProcessReferral(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrInvalidCode), errors.Is(err, rewardservice.ErrSelfReferral):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, rewardservice.ErrAlreadyReferred):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "referral processed"})
}

func respondClaimError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rewardservice.ErrAlreadyClaimed), errors.Is(err, rewardservice.ErrNotEligible):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, rewardservice.ErrUnknownTier), errors.Is(err, rewardservice.ErrUnknownTask):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
