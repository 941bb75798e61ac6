package chatservice

import (
	"context"

	"github.com/fortunapp/fortuna/internal/domain"
	"go.uber.org/zap"
)

type Ledger interface {
	Debit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error)
}

// Generator is the opaque text-generation collaborator. Producing a reply
// costs nothing; only the inbound message is priced.
type Generator interface {
	Generate(ctx context.Context, prompt string, history []string) (string, error)
}

type Service struct {
	ledger       Ledger
	generator    Generator
	messagePrice int
}

func New(ledger Ledger, generator Generator, messagePrice int) *Service {
	return &Service{
		ledger:       ledger,
		generator:    generator,
		messagePrice: messagePrice,
	}
}

type Reply struct {
	Text    string
	Balance int
}

// SendMessage debits the configured per-message price, then asks the
// generator for a reply. Insufficient balance surfaces before any generation
// happens; a generation failure after the debit stands unrefunded.
func (s *Service) SendMessage(ctx context.Context, userID int, text string, history []string) (*Reply, error) {
	balance, err := s.ledger.Debit(ctx, userID, s.messagePrice, domain.TxChatMessagePurchase, nil)
	if err != nil {
		return nil, err
	}

	reply, err := s.generator.Generate(ctx, text, history)
	if err != nil {
		zap.L().Error("text generation failed", zap.Error(err))
		return nil, err
	}

	return &Reply{Text: reply, Balance: balance.TokenBalance}, nil
}
