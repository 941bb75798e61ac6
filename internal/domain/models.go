package domain

import "time"

type User struct {
	ID             int       `db:"id"`
	Login          string    `db:"login"`
	PasswordHash   string    `db:"password_hash"`
	ReferralCode   string    `db:"referral_code"`
	ReferredByCode *string   `db:"referred_by_code"`
	ReferralCount  int       `db:"referral_count"`
	Premium        bool      `db:"premium"`
	CreatedAt      time.Time `db:"created_at"`
}

type Balance struct {
	ID           int `db:"id"`
	UserID       int `db:"user_id"`
	TokenBalance int `db:"token_balance"`
}

type TransactionType string

const (
	TxWelcomeBonus        TransactionType = "welcome_bonus"
	TxAdReward            TransactionType = "ad_reward"
	TxDailyTaskReward     TransactionType = "daily_task_reward"
	TxSocialTaskReward    TransactionType = "social_task_reward"
	TxReferralBonus       TransactionType = "referral_bonus"
	TxFortunePurchase     TransactionType = "fortune_purchase"
	TxChatMessagePurchase TransactionType = "chat_message_purchase"
)

// Transaction is an append-only audit record. The sum of a user's
// transactions always equals the balance row.
type Transaction struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      int             `db:"amount"`
	Type        TransactionType `db:"transaction_type"`
	ReferenceID *string         `db:"reference_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type RewardSource string

const (
	SourceDaily  RewardSource = "daily"
	SourceSocial RewardSource = "social"
)

type RewardCounter struct {
	UserID int          `db:"user_id"`
	Source RewardSource `db:"source"`
	Tier   int          `db:"tier"`
	Metric string       `db:"metric"`
	Count  int          `db:"count"`
}

type RewardClaim struct {
	UserID    int          `db:"user_id"`
	Source    RewardSource `db:"source"`
	Tier      int          `db:"tier"`
	ClaimedAt time.Time    `db:"claimed_at"`
}

type SocialTask struct {
	UserID   int        `db:"user_id"`
	Task     string     `db:"task"`
	ActionAt *time.Time `db:"action_at"`
	Claimed  bool       `db:"claimed"`
}

type AdViewCounter struct {
	UserID   int       `db:"user_id"`
	ViewDate time.Time `db:"view_date"`
	Count    int       `db:"count"`
}

type FortuneStatus string

const (
	FortunePending   FortuneStatus = "pending"
	FortuneInReview  FortuneStatus = "in_review"
	FortuneCompleted FortuneStatus = "completed"
)

type FortuneRequest struct {
	ID           string        `db:"id"`
	UserID       int           `db:"user_id"`
	Category     string        `db:"category"`
	TokenAmount  int           `db:"token_amount"`
	Status       FortuneStatus `db:"status"`
	ProcessAfter time.Time     `db:"process_after"`
	CompletedAt  *time.Time    `db:"completed_at"`
	AdsWatched   int           `db:"ads_watched"`
	CreatedAt    time.Time     `db:"created_at"`
}
