package fortunerepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) Save(ctx context.Context, req *domain.FortuneRequest) error {
	query := `
        INSERT INTO fortune_requests (id, user_id, category, token_amount, status, process_after, ads_watched, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		req.ID, req.UserID, req.Category, req.TokenAmount, string(req.Status), req.ProcessAfter, req.AdsWatched, req.CreatedAt)
	if err != nil {
		zap.L().Error("can't save fortune request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string, userID int) (*domain.FortuneRequest, error) {
	query := `
        SELECT id, user_id, category, token_amount, status, process_after, completed_at, ads_watched, created_at
        FROM fortune_requests
        WHERE id = $1 AND user_id = $2
    `
	row := r.db.QueryRow(ctx, query, id, userID)

	var req domain.FortuneRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Category, &req.TokenAmount, &req.Status, &req.ProcessAfter, &req.CompletedAt, &req.AdsWatched, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find fortune request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// FindByUserID returns the user's requests, newest first. limit 0 means all.
func (r *Repository) FindByUserID(ctx context.Context, userID int, limit int) ([]domain.FortuneRequest, error) {
	query := `
        SELECT id, user_id, category, token_amount, status, process_after, completed_at, ads_watched, created_at
        FROM fortune_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get fortune requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.FortuneRequest
	for rows.Next() {
		var req domain.FortuneRequest
		err := rows.Scan(&req.ID, &req.UserID, &req.Category, &req.TokenAmount, &req.Status, &req.ProcessAfter, &req.CompletedAt, &req.AdsWatched, &req.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan fortune request row", zap.Error(err))
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// RecordAdView advances the acceleration counter while it is below 2 and the
// request is still in review. At the limit no row matches and (nil, nil) is
// returned, so the counter can never pass 2.
func (r *Repository) RecordAdView(ctx context.Context, id string, userID int) (*domain.FortuneRequest, error) {
	query := `
		UPDATE fortune_requests
		SET ads_watched = ads_watched + 1
		WHERE id = $1 AND user_id = $2 AND ads_watched < 2 AND status = $3
		RETURNING id, user_id, category, token_amount, status, process_after, completed_at, ads_watched, created_at
	`
	row := r.db.QueryRow(ctx, query, id, userID, string(domain.FortuneInReview))

	var req domain.FortuneRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Category, &req.TokenAmount, &req.Status, &req.ProcessAfter, &req.CompletedAt, &req.AdsWatched, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't record fortune ad view", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Reschedule(ctx context.Context, id string, processAfter time.Time) error {
	query := `
        UPDATE fortune_requests
        SET process_after = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, processAfter, id); err != nil {
		zap.L().Error("can't reschedule fortune request", zap.Error(err))
		return err
	}
	return nil
}

// CompleteExpired transitions every overdue in-review request of the user in
// one statement. Requests already completed have completed_at set and never
// match again, which makes the sweep idempotent.
func (r *Repository) CompleteExpired(ctx context.Context, userID int) ([]domain.FortuneRequest, error) {
	query := `
		UPDATE fortune_requests
		SET status = $2, completed_at = NOW()
		WHERE user_id = $1 AND status = $3 AND process_after <= NOW() AND completed_at IS NULL
		RETURNING id, user_id, category, token_amount, status, process_after, completed_at, ads_watched, created_at
	`
	rows, err := r.db.Query(ctx, query, userID, string(domain.FortuneCompleted), string(domain.FortuneInReview))
	if err != nil {
		zap.L().Error("can't complete expired fortune requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.FortuneRequest
	for rows.Next() {
		var req domain.FortuneRequest
		err := rows.Scan(&req.ID, &req.UserID, &req.Category, &req.TokenAmount, &req.Status, &req.ProcessAfter, &req.CompletedAt, &req.AdsWatched, &req.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan completed fortune row", zap.Error(err))
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (r *Repository) Delete(ctx context.Context, id string, userID int) (bool, error) {
	query := `
        DELETE FROM fortune_requests
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't delete fortune request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
