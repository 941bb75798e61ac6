package userrepo

import (
	"context"
	"errors"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, referral_code, referred_by_code, referral_count, premium FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.ReferralCode, &user.ReferredByCode, &user.ReferralCount, &user.Premium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, referral_code, referred_by_code, referral_count, premium FROM users WHERE id = $1", userID).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.ReferralCode, &user.ReferredByCode, &user.ReferralCount, &user.Premium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, referral_code, referred_by_code, referral_count, premium FROM users WHERE referral_code = $1", code).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.ReferralCode, &user.ReferredByCode, &user.ReferralCount, &user.Premium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by referral code", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, referral_code)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.ReferralCode).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// MarkReferred consumes a referral code for the user. The conditional update
// only matches while referred_by_code is still unset, so a code can be
// consumed at most once per user.
func (repo *Repository) MarkReferred(ctx context.Context, userID int, code string) (bool, error) {
	query := `
		UPDATE users
		SET referred_by_code = $2
		WHERE id = $1 AND referred_by_code IS NULL
	`
	tag, err := repo.db.Exec(ctx, query, userID, code)
	if err != nil {
		zap.L().Error("can't mark user as referred", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) IncrementReferralCount(ctx context.Context, userID int) (int, error) {
	query := `
		UPDATE users
		SET referral_count = referral_count + 1
		WHERE id = $1
		RETURNING referral_count
	`
	var count int
	if err := repo.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't increment referral count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (repo *Repository) SetPremium(ctx context.Context, userID int, premium bool) error {
	query := `
        UPDATE users
        SET premium = $2
        WHERE id = $1
    `
	if _, err := repo.db.Exec(ctx, query, userID, premium); err != nil {
		zap.L().Error("can't set premium flag", zap.Error(err))
		return err
	}
	return nil
}
