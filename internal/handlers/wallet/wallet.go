package wallet

import (
	"context"
	"net/http"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/dto"
	"github.com/fortunapp/fortuna/pkg/auth"
	"github.com/fortunapp/fortuna/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type WalletHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current token balance
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current token balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil || balance == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance.TokenBalance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get token transaction history
//	@Description	Returns the append-only transaction log, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Amount:    tx.Amount,
			Type:      string(tx.Type),
			CreatedAt: tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
