package rewardrepo

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

// IncrementCounter upserts the counter row with a server-side addition, so N
// concurrent increments of 1 always land on N.
func (r *Repository) IncrementCounter(ctx context.Context, userID int, source domain.RewardSource, tier int, metric string, delta int) (int, error) {
	query := `
		INSERT INTO reward_counters (user_id, source, tier, metric, count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, source, tier, metric)
		DO UPDATE SET count = reward_counters.count + EXCLUDED.count
		RETURNING count
	`
	var count int
	row := r.db.QueryRow(ctx, query, userID, string(source), tier, metric, delta)
	if err := row.Scan(&count); err != nil {
		zap.L().Error("failed to increment reward counter", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) GetCounters(ctx context.Context, userID int, source domain.RewardSource, tier int) (map[string]int, error) {
	query := `
        SELECT metric, count
        FROM reward_counters
        WHERE user_id = $1 AND source = $2 AND tier = $3
    `
	rows, err := r.db.Query(ctx, query, userID, string(source), tier)
	if err != nil {
		zap.L().Error("failed to fetch reward counters", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var metric string
		var count int
		if err := rows.Scan(&metric, &count); err != nil {
			zap.L().Error("failed to scan reward counter row", zap.Error(err))
			return nil, err
		}
		counters[metric] = count
	}
	return counters, nil
}

// InsertClaim is the exactly-once guard: the primary key rejects a second
// claim and the conflict is swallowed, reported as inserted=false.
func (r *Repository) InsertClaim(ctx context.Context, userID int, source domain.RewardSource, tier int) (bool, error) {
	query := `
		INSERT INTO reward_claims (user_id, source, tier)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, source, tier) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, userID, string(source), tier)
	if err != nil {
		zap.L().Error("failed to insert reward claim", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) GetClaim(ctx context.Context, userID int, source domain.RewardSource, tier int) (*domain.RewardClaim, error) {
	query := `
        SELECT user_id, source, tier, claimed_at
        FROM reward_claims
        WHERE user_id = $1 AND source = $2 AND tier = $3
    `
	row := r.db.QueryRow(ctx, query, userID, string(source), tier)
	var claim domain.RewardClaim
	err := row.Scan(&claim.UserID, &claim.Source, &claim.Tier, &claim.ClaimedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get reward claim", zap.Error(err))
		return nil, err
	}
	return &claim, nil
}

// MarkSocialAction records the "action taken" notification once; a repeated
// report keeps the original timestamp.
func (r *Repository) MarkSocialAction(ctx context.Context, userID int, task string) (bool, error) {
	query := `
		INSERT INTO social_tasks (user_id, task, action_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, task) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, userID, task)
	if err != nil {
		zap.L().Error("failed to mark social action", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) GetSocialTask(ctx context.Context, userID int, task string) (*domain.SocialTask, error) {
	query := `
        SELECT user_id, task, action_at, claimed
        FROM social_tasks
        WHERE user_id = $1 AND task = $2
    `
	row := r.db.QueryRow(ctx, query, userID, task)
	var st domain.SocialTask
	err := row.Scan(&st.UserID, &st.Task, &st.ActionAt, &st.Claimed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get social task", zap.Error(err))
		return nil, err
	}
	return &st, nil
}

// ClaimSocialTask flips claimed only when the verification window has passed
// and the task is not already claimed, all inside one conditional UPDATE.
func (r *Repository) ClaimSocialTask(ctx context.Context, userID int, task string, verificationDelay time.Duration) (bool, error) {
	query := `
		UPDATE social_tasks
		SET claimed = TRUE
		WHERE user_id = $1 AND task = $2 AND claimed = FALSE
			AND action_at IS NOT NULL AND action_at + make_interval(secs => $3) <= NOW()
	`
	tag, err := r.db.Exec(ctx, query, userID, task, verificationDelay.Seconds())
	if err != nil {
		zap.L().Error("failed to claim social task", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// IncrementDailyAdCount is the atomic check-and-increment for the daily cap.
// The upsert only applies while the stored count is under the cap; at the cap
// no row comes back and (0, false) is returned.
func (r *Repository) IncrementDailyAdCount(ctx context.Context, userID int, cap int) (int, bool, error) {
	query := `
		INSERT INTO ad_views (user_id, view_date, count)
		VALUES ($1, CURRENT_DATE, 1)
		ON CONFLICT (user_id, view_date)
		DO UPDATE SET count = ad_views.count + 1
		WHERE ad_views.count < $2
		RETURNING count
	`
	var count int
	row := r.db.QueryRow(ctx, query, userID, cap)
	err := row.Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		zap.L().Error("failed to increment daily ad count", zap.Error(err))
		return 0, false, err
	}
	return count, true, nil
}
