package rewardservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/pg"
	"github.com/fortunapp/fortuna/pkg/validate"
	"go.uber.org/zap"
)

type RewardRepo interface {
	IncrementCounter(ctx context.Context, userID int, source domain.RewardSource, tier int, metric string, delta int) (int, error)
	GetCounters(ctx context.Context, userID int, source domain.RewardSource, tier int) (map[string]int, error)
	InsertClaim(ctx context.Context, userID int, source domain.RewardSource, tier int) (bool, error)
	GetClaim(ctx context.Context, userID int, source domain.RewardSource, tier int) (*domain.RewardClaim, error)
	MarkSocialAction(ctx context.Context, userID int, task string) (bool, error)
	GetSocialTask(ctx context.Context, userID int, task string) (*domain.SocialTask, error)
	ClaimSocialTask(ctx context.Context, userID int, task string, verificationDelay time.Duration) (bool, error)
	IncrementDailyAdCount(ctx context.Context, userID int, cap int) (int, bool, error)
}

type UserRepo interface {
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	MarkReferred(ctx context.Context, userID int, code string) (bool, error)
	IncrementReferralCount(ctx context.Context, userID int) (int, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error)
}

type Service struct {
	rewardRepo RewardRepo
	userRepo   UserRepo
	ledger     Ledger
	txManager  pg.TXManager
}

func New(rewardRepo RewardRepo, userRepo UserRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
		ledger:     ledger,
		txManager:  txManager,
	}
}

var (
	ErrNotEligible     = errors.New("reward not eligible for claim")
	ErrAlreadyClaimed  = errors.New("reward already claimed")
	ErrSelfReferral    = errors.New("can't use own referral code")
	ErrAlreadyReferred = errors.New("referral code already consumed")
	ErrInvalidCode     = errors.New("invalid referral code")
	ErrDailyCapReached = errors.New("daily ad limit reached")
	ErrUnknownTier     = errors.New("unknown reward tier")
	ErrUnknownTask     = errors.New("unknown social task")
	ErrUnknownMetric   = errors.New("unknown progress metric")
)

// Progress metrics fed by user actions.
const (
	MetricFortunesSent = "fortunes_sent"
	MetricPostsLiked   = "posts_liked"
	MetricAdsWatched   = "ads_watched"
	MetricInteractions = "interactions"
)

// TierConfig describes one daily tier as data: target counts per metric and
// the token reward. The claim state machine is the same for every tier.
type TierConfig struct {
	Requirements map[string]int
	Reward       int
}

var dailyTiers = map[int]TierConfig{
	1: {Requirements: map[string]int{MetricFortunesSent: 2, MetricPostsLiked: 2, MetricAdsWatched: 3}, Reward: 2},
	2: {Requirements: map[string]int{MetricFortunesSent: 3, MetricAdsWatched: 5}, Reward: 3},
	3: {Requirements: map[string]int{MetricFortunesSent: 4, MetricInteractions: 2, MetricAdsWatched: 5}, Reward: 5},
}

const (
	TaskFollowA    = "follow_a"
	TaskFollowB    = "follow_b"
	TaskShareStory = "share_story"
)

var socialRewards = map[string]int{
	TaskFollowA:    2,
	TaskFollowB:    2,
	TaskShareStory: 5,
}

const (
	// Window between "action taken" and claimable completion, standing in
	// for the external platform check.
	socialVerificationDelay = time.Minute

	adDailyCap    = 10
	adReward      = 1
	referralBonus = 5
)

var dailyMetrics = map[string]struct{}{
	MetricFortunesSent: {},
	MetricPostsLiked:   {},
	MetricAdsWatched:   {},
	MetricInteractions: {},
}

// RecordProgress fans one event out to every daily tier tracking the metric.
// Increments are server-side, so concurrent events never lose updates.
func (s *Service) RecordProgress(ctx context.Context, userID int, metric string, increment int) error {
	if _, ok := dailyMetrics[metric]; !ok {
		return ErrUnknownMetric
	}
	if increment <= 0 {
		increment = 1
	}
	for tier, cfg := range dailyTiers {
		if _, tracked := cfg.Requirements[metric]; !tracked {
			continue
		}
		if _, err := s.rewardRepo.IncrementCounter(ctx, userID, domain.SourceDaily, tier, metric, increment); err != nil {
			zap.L().Error("failed to record progress", zap.Error(err), zap.String("metric", metric), zap.Int("tier", tier))
			return err
		}
	}
	return nil
}

type TierProgress struct {
	Tier         int
	Requirements map[string]int
	Counters     map[string]int
	Reward       int
	Completed    bool
	Claimed      bool
}

func (s *Service) GetDailyProgress(ctx context.Context, userID int) ([]TierProgress, error) {
	progress := make([]TierProgress, 0, len(dailyTiers))
	for tier := 1; tier <= len(dailyTiers); tier++ {
		cfg := dailyTiers[tier]
		counters, err := s.rewardRepo.GetCounters(ctx, userID, domain.SourceDaily, tier)
		if err != nil {
			return nil, err
		}
		claim, err := s.rewardRepo.GetClaim(ctx, userID, domain.SourceDaily, tier)
		if err != nil {
			return nil, err
		}
		progress = append(progress, TierProgress{
			Tier:         tier,
			Requirements: cfg.Requirements,
			Counters:     counters,
			Reward:       cfg.Reward,
			Completed:    meetsRequirements(counters, cfg.Requirements),
			Claimed:      claim != nil,
		})
	}
	return progress, nil
}

func meetsRequirements(counters, requirements map[string]int) bool {
	for metric, target := range requirements {
		if counters[metric] < target {
			return false
		}
	}
	return true
}

// ClaimDaily marks the tier claimed and credits the reward in one database
// transaction. The claim row's primary key makes a second concurrent claim
// lose; a lost claim credits nothing.
func (s *Service) ClaimDaily(ctx context.Context, userID int, tier int) (int, error) {
	cfg, ok := dailyTiers[tier]
	if !ok {
		return 0, ErrUnknownTier
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		counters, err := s.rewardRepo.GetCounters(ctx, userID, domain.SourceDaily, tier)
		if err != nil {
			return err
		}
		if !meetsRequirements(counters, cfg.Requirements) {
			return ErrNotEligible
		}
		inserted, err := s.rewardRepo.InsertClaim(ctx, userID, domain.SourceDaily, tier)
		if err != nil {
			return err
		}
		if !inserted {
			return ErrAlreadyClaimed
		}
		ref := fmt.Sprintf("daily:%d", tier)
		if _, err := s.ledger.Credit(ctx, userID, cfg.Reward, domain.TxDailyTaskReward, &ref); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("daily tier claimed", zap.Int("userID", userID), zap.Int("tier", tier), zap.Int("reward", cfg.Reward))
	return cfg.Reward, nil
}

// ReportSocialAction records "action taken" and opens the verification
// window. Reporting twice is a no-op.
func (s *Service) ReportSocialAction(ctx context.Context, userID int, task string) error {
	if _, ok := socialRewards[task]; !ok {
		return ErrUnknownTask
	}
	if _, err := s.rewardRepo.MarkSocialAction(ctx, userID, task); err != nil {
		return err
	}
	return nil
}

func (s *Service) ClaimSocial(ctx context.Context, userID int, task string) (int, error) {
	reward, ok := socialRewards[task]
	if !ok {
		return 0, ErrUnknownTask
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		st, err := s.rewardRepo.GetSocialTask(ctx, userID, task)
		if err != nil {
			return err
		}
		if st == nil || st.ActionAt == nil {
			return ErrNotEligible
		}
		if st.Claimed {
			return ErrAlreadyClaimed
		}
		claimed, err := s.rewardRepo.ClaimSocialTask(ctx, userID, task, socialVerificationDelay)
		if err != nil {
			return err
		}
		if !claimed {
			// Window not elapsed yet, or a concurrent claim won.
			return ErrNotEligible
		}
		ref := "social:" + task
		if _, err := s.ledger.Credit(ctx, userID, reward, domain.TxSocialTaskReward, &ref); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("social task claimed", zap.Int("userID", userID), zap.String("task", task), zap.Int("reward", reward))
	return reward, nil
}

// RegisterAdView credits one token per verified ad view, capped per calendar
// day. The cap check and the increment are one conditional upsert, and the
// credit commits with it or not at all. The view also feeds the daily-tier
// ads_watched metric.
func (s *Service) RegisterAdView(ctx context.Context, userID int) (*domain.Balance, error) {
	var balance *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, ok, err := s.rewardRepo.IncrementDailyAdCount(ctx, userID, adDailyCap)
		if err != nil {
			return err
		}
		if !ok {
			return ErrDailyCapReached
		}
		ref := "ad_view"
		balance, err = s.ledger.Credit(ctx, userID, adReward, domain.TxAdReward, &ref)
		if err != nil {
			return err
		}
		return s.RecordProgress(ctx, userID, MetricAdsWatched, 1)
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// ProcessReferral consumes a referral code: marks the caller referred,
// bumps the code owner's count and credits both parties, all in one
// transaction.
func (s *Service) ProcessReferral(ctx context.Context, userID int, code string) error {
	if !validate.IsReferralCode(code) {
		return ErrInvalidCode
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		owner, err := s.userRepo.FindByReferralCode(ctx, code)
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrInvalidCode
		}
		if owner.ID == userID {
			return ErrSelfReferral
		}
		marked, err := s.userRepo.MarkReferred(ctx, userID, code)
		if err != nil {
			return err
		}
		if !marked {
			return ErrAlreadyReferred
		}
		if _, err := s.userRepo.IncrementReferralCount(ctx, owner.ID); err != nil {
			return err
		}
		ref := "referral:" + code
		if _, err := s.ledger.Credit(ctx, userID, referralBonus, domain.TxReferralBonus, &ref); err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, owner.ID, referralBonus, domain.TxReferralBonus, &ref); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	zap.L().Info("referral processed", zap.Int("userID", userID))
	return nil
}
