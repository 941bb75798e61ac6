package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fortunapp/fortuna/internal/dto"
	chatservice "github.com/fortunapp/fortuna/internal/service/chatservice"
	ledgerservice "github.com/fortunapp/fortuna/internal/service/ledgerservice"
	"github.com/fortunapp/fortuna/pkg/auth"
	"github.com/fortunapp/fortuna/pkg/utils"
)

type Service interface {
	SendMessage(ctx context.Context, userID int, text string, history []string) (*chatservice.Reply, error)
}

type ChatHandler struct {
	chatService Service
}

func New(chatService Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// SendMessage godoc
//
//	@Summary		Send a chat message
//	@Description	Debits the per-message price and returns the generated reply; replies themselves are free.
//	@Tags			Chat
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChatMessageRequestDTO	true	"Message payload"
//	@Success		200		{object}	dto.ChatMessageResponseDTO	"Generated reply"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Router			/api/user/chat/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ChatMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "text is required")
		return
	}

	reply, err := h.chatService.SendMessage(r.Context(), userID, req.Text, req.History)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ChatMessageResponseDTO{
		Reply:   reply.Text,
		Balance: reply.Balance,
	})
}
