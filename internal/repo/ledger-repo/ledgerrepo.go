package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, token_balance
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.TokenBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, token_balance)
        VALUES ($1, 0)
        RETURNING id, user_id, token_balance
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.TokenBalance)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit increments the balance row and appends the matching transaction in
// one database transaction. The increment is a single server-side UPDATE, so
// concurrent credits never lose updates.
func (r *Repository) Credit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error) {
	var balance domain.Balance
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			UPDATE balances
			SET token_balance = token_balance + $1
			WHERE user_id = $2
			RETURNING id, user_id, token_balance
		`
		row := r.db.QueryRow(ctx, query, amount, userID)
		if err := row.Scan(&balance.ID, &balance.UserID, &balance.TokenBalance); err != nil {
			zap.L().Error("failed to credit balance", zap.Error(err))
			return err
		}
		return r.appendTransaction(ctx, userID, amount, txType, referenceID)
	})
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// Debit performs the balance check inside the UPDATE's WHERE clause. When the
// balance is too low no row matches and (nil, nil) is returned; nothing is
// written in that case.
func (r *Repository) Debit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error) {
	var balance domain.Balance
	insufficient := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			UPDATE balances
			SET token_balance = token_balance - $1
			WHERE user_id = $2 AND token_balance >= $1
			RETURNING id, user_id, token_balance
		`
		row := r.db.QueryRow(ctx, query, amount, userID)
		err := row.Scan(&balance.ID, &balance.UserID, &balance.TokenBalance)
		if errors.Is(err, pgx.ErrNoRows) {
			insufficient = true
			return nil
		}
		if err != nil {
			zap.L().Error("failed to debit balance", zap.Error(err))
			return err
		}
		return r.appendTransaction(ctx, userID, -amount, txType, referenceID)
	})
	if err != nil {
		return nil, err
	}
	if insufficient {
		return nil, nil
	}
	return &balance, nil
}

func (r *Repository) appendTransaction(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) error {
	query := `
		INSERT INTO token_transactions (user_id, amount, transaction_type, reference_id)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query, userID, amount, string(txType), referenceID); err != nil {
		zap.L().Error("failed to append transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, transaction_type, reference_id, created_at
        FROM token_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.ReferenceID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
