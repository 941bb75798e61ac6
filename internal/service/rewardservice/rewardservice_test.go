package rewardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRewardRepo, *MockUserRepo, *MockLedger, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	rewardRepo := NewMockRewardRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(rewardRepo, userRepo, ledger, txManager)
	defer ctrl.Finish()
	return service, rewardRepo, userRepo, ledger, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRecordProgress(t *testing.T) {
	service, rewardRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		metric        string
		increment     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Metric fans out to every tracking tier",
			metric:    MetricAdsWatched,
			increment: 1,
			prepareMock: func() {
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 1, MetricAdsWatched, 1).Return(1, nil)
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 2, MetricAdsWatched, 1).Return(1, nil)
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 3, MetricAdsWatched, 1).Return(1, nil)
			},
		},
		{
			name:      "Metric tracked by a single tier",
			metric:    MetricPostsLiked,
			increment: 1,
			prepareMock: func() {
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 1, MetricPostsLiked, 1).Return(2, nil)
			},
		},
		{
			name:      "Non-positive increment defaults to one",
			metric:    MetricInteractions,
			increment: 0,
			prepareMock: func() {
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 3, MetricInteractions, 1).Return(1, nil)
			},
		},
		{
			name:          "Unknown metric rejected",
			metric:        "steps_walked",
			increment:     1,
			prepareMock:   func() {},
			expectedError: ErrUnknownMetric,
		},
		{
			name:      "Repo error propagates",
			metric:    MetricPostsLiked,
			increment: 1,
			prepareMock: func() {
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 1, MetricPostsLiked, 1).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.RecordProgress(context.Background(), 1, tt.metric, tt.increment)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDailyProgress(t *testing.T) {
	service, rewardRepo, _, _, _ := NewMock(t)

	rewardRepo.EXPECT().GetCounters(gomock.Any(), 1, domain.SourceDaily, 1).
		Return(map[string]int{MetricFortunesSent: 2, MetricPostsLiked: 2, MetricAdsWatched: 3}, nil)
	rewardRepo.EXPECT().GetClaim(gomock.Any(), 1, domain.SourceDaily, 1).
		Return(&domain.RewardClaim{UserID: 1, Source: domain.SourceDaily, Tier: 1}, nil)
	rewardRepo.EXPECT().GetCounters(gomock.Any(), 1, domain.SourceDaily, 2).
		Return(map[string]int{MetricFortunesSent: 1}, nil)
	rewardRepo.EXPECT().GetClaim(gomock.Any(), 1, domain.SourceDaily, 2).Return(nil, nil)
	rewardRepo.EXPECT().GetCounters(gomock.Any(), 1, domain.SourceDaily, 3).Return(map[string]int{}, nil)
	rewardRepo.EXPECT().GetClaim(gomock.Any(), 1, domain.SourceDaily, 3).Return(nil, nil)

	progress, err := service.GetDailyProgress(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, progress, 3)

	assert.Equal(t, 1, progress[0].Tier)
	assert.True(t, progress[0].Completed)
	assert.True(t, progress[0].Claimed)
	assert.Equal(t, 2, progress[0].Reward)

	assert.Equal(t, 2, progress[1].Tier)
	assert.False(t, progress[1].Completed)
	assert.False(t, progress[1].Claimed)

	assert.Equal(t, 3, progress[2].Tier)
	assert.False(t, progress[2].Completed)
}

func TestClaimDaily(t *testing.T) {
	service, rewardRepo, _, ledger, txManager := NewMock(t)
	ref := "daily:1"
	completed := map[string]int{MetricFortunesSent: 2, MetricPostsLiked: 2, MetricAdsWatched: 3}

	tests := []struct {
		name           string
		tier           int
		prepareMock    func()
		expectedReward int
		expectedError  error
	}{
		{
			name: "Successful claim credits the reward",
			tier: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetCounters(gomock.Any(), 1, domain.SourceDaily, 1).Return(completed, nil)
				rewardRepo.EXPECT().InsertClaim(gomock.Any(), 1, domain.SourceDaily, 1).Return(true, nil)
				ledger.EXPECT().Credit(gomock.Any(), 1, 2, domain.TxDailyTaskReward, &ref).
					Return(&domain.Balance{UserID: 1, TokenBalance: 7}, nil)
			},
			expectedReward: 2,
		},
		{
			name: "Requirements not met",
			tier: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetCounters(gomock.Any(), 1, domain.SourceDaily, 1).
					Return(map[string]int{MetricFortunesSent: 1}, nil)
			},
			expectedError: ErrNotEligible,
		},
		{
			name: "Second claim loses and credits nothing",
			tier: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetCounters(gomock.Any(), 1, domain.SourceDaily, 1).Return(completed, nil)
				rewardRepo.EXPECT().InsertClaim(gomock.Any(), 1, domain.SourceDaily, 1).Return(false, nil)
			},
			expectedError: ErrAlreadyClaimed,
		},
		{
			name:          "Unknown tier",
			tier:          9,
			prepareMock:   func() {},
			expectedError: ErrUnknownTier,
		},
		{
			name: "Credit failure rolls the claim back",
			tier: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetCounters(gomock.Any(), 1, domain.SourceDaily, 1).Return(completed, nil)
				rewardRepo.EXPECT().InsertClaim(gomock.Any(), 1, domain.SourceDaily, 1).Return(true, nil)
				ledger.EXPECT().Credit(gomock.Any(), 1, 2, domain.TxDailyTaskReward, &ref).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			reward, err := service.ClaimDaily(context.Background(), 1, tt.tier)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Zero(t, reward)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedReward, reward)
			}
		})
	}
}

func TestReportSocialAction(t *testing.T) {
	service, rewardRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		task          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Action recorded",
			task: TaskFollowA,
			prepareMock: func() {
				rewardRepo.EXPECT().MarkSocialAction(gomock.Any(), 1, TaskFollowA).Return(true, nil)
			},
		},
		{
			name: "Repeated report is a no-op",
			task: TaskFollowA,
			prepareMock: func() {
				rewardRepo.EXPECT().MarkSocialAction(gomock.Any(), 1, TaskFollowA).Return(false, nil)
			},
		},
		{
			name:          "Unknown task rejected",
			task:          "follow_c",
			prepareMock:   func() {},
			expectedError: ErrUnknownTask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ReportSocialAction(context.Background(), 1, tt.task)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClaimSocial(t *testing.T) {
	service, rewardRepo, _, ledger, txManager := NewMock(t)
	ref := "social:" + TaskShareStory
	actionAt := time.Now().Add(-2 * time.Minute)

	tests := []struct {
		name           string
		task           string
		prepareMock    func()
		expectedReward int
		expectedError  error
	}{
		{
			name: "Verified task pays out once",
			task: TaskShareStory,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetSocialTask(gomock.Any(), 1, TaskShareStory).
					Return(&domain.SocialTask{UserID: 1, Task: TaskShareStory, ActionAt: &actionAt}, nil)
				rewardRepo.EXPECT().ClaimSocialTask(gomock.Any(), 1, TaskShareStory, socialVerificationDelay).Return(true, nil)
				ledger.EXPECT().Credit(gomock.Any(), 1, 5, domain.TxSocialTaskReward, &ref).
					Return(&domain.Balance{UserID: 1, TokenBalance: 10}, nil)
			},
			expectedReward: 5,
		},
		{
			name: "No action reported yet",
			task: TaskShareStory,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetSocialTask(gomock.Any(), 1, TaskShareStory).Return(nil, nil)
			},
			expectedError: ErrNotEligible,
		},
		{
			name: "Already claimed",
			task: TaskShareStory,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetSocialTask(gomock.Any(), 1, TaskShareStory).
					Return(&domain.SocialTask{UserID: 1, Task: TaskShareStory, ActionAt: &actionAt, Claimed: true}, nil)
			},
			expectedError: ErrAlreadyClaimed,
		},
		{
			name: "Verification window not elapsed",
			task: TaskShareStory,
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().GetSocialTask(gomock.Any(), 1, TaskShareStory).
					Return(&domain.SocialTask{UserID: 1, Task: TaskShareStory, ActionAt: &actionAt}, nil)
				rewardRepo.EXPECT().ClaimSocialTask(gomock.Any(), 1, TaskShareStory, socialVerificationDelay).Return(false, nil)
			},
			expectedError: ErrNotEligible,
		},
		{
			name:          "Unknown task",
			task:          "retweet",
			prepareMock:   func() {},
			expectedError: ErrUnknownTask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			reward, err := service.ClaimSocial(context.Background(), 1, tt.task)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedReward, reward)
			}
		})
	}
}

func TestRegisterAdView(t *testing.T) {
	service, rewardRepo, _, ledger, txManager := NewMock(t)
	ref := "ad_view"

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name: "View credits one token and feeds the daily metric",
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().IncrementDailyAdCount(gomock.Any(), 1, adDailyCap).Return(4, true, nil)
				ledger.EXPECT().Credit(gomock.Any(), 1, adReward, domain.TxAdReward, &ref).
					Return(&domain.Balance{UserID: 1, TokenBalance: 9}, nil)
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 1, MetricAdsWatched, 1).Return(4, nil)
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 2, MetricAdsWatched, 1).Return(4, nil)
				rewardRepo.EXPECT().IncrementCounter(gomock.Any(), 1, domain.SourceDaily, 3, MetricAdsWatched, 1).Return(4, nil)
			},
			expectedBalance: &domain.Balance{UserID: 1, TokenBalance: 9},
		},
		{
			name: "Daily cap reached credits nothing",
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().IncrementDailyAdCount(gomock.Any(), 1, adDailyCap).Return(0, false, nil)
			},
			expectedError: ErrDailyCapReached,
		},
		{
			name: "Repo error propagates",
			prepareMock: func() {
				passthroughTx(txManager)
				rewardRepo.EXPECT().IncrementDailyAdCount(gomock.Any(), 1, adDailyCap).Return(0, false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.RegisterAdView(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestProcessReferral(t *testing.T) {
	service, _, userRepo, ledger, txManager := NewMock(t)
	code := "7992739871"
	ref := "referral:" + code
	owner := &domain.User{ID: 2, Login: "owner", ReferralCode: code}

	tests := []struct {
		name          string
		userID        int
		code          string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful referral credits both parties",
			userID: 1,
			code:   code,
			prepareMock: func() {
				passthroughTx(txManager)
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), code).Return(owner, nil)
				userRepo.EXPECT().MarkReferred(gomock.Any(), 1, code).Return(true, nil)
				userRepo.EXPECT().IncrementReferralCount(gomock.Any(), 2).Return(1, nil)
				ledger.EXPECT().Credit(gomock.Any(), 1, referralBonus, domain.TxReferralBonus, &ref).
					Return(&domain.Balance{UserID: 1, TokenBalance: 10}, nil)
				ledger.EXPECT().Credit(gomock.Any(), 2, referralBonus, domain.TxReferralBonus, &ref).
					Return(&domain.Balance{UserID: 2, TokenBalance: 25}, nil)
			},
		},
		{
			name:          "Malformed code rejected before any lookup",
			userID:        1,
			code:          "1234567890",
			prepareMock:   func() {},
			expectedError: ErrInvalidCode,
		},
		{
			name:   "Unknown code",
			userID: 1,
			code:   code,
			prepareMock: func() {
				passthroughTx(txManager)
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), code).Return(nil, nil)
			},
			expectedError: ErrInvalidCode,
		},
		{
			name:   "Own code rejected",
			userID: 2,
			code:   code,
			prepareMock: func() {
				passthroughTx(txManager)
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), code).Return(owner, nil)
			},
			expectedError: ErrSelfReferral,
		},
		{
			name:   "Second referral rejected",
			userID: 1,
			code:   code,
			prepareMock: func() {
				passthroughTx(txManager)
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), code).Return(owner, nil)
				userRepo.EXPECT().MarkReferred(gomock.Any(), 1, code).Return(false, nil)
			},
			expectedError: ErrAlreadyReferred,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ProcessReferral(context.Background(), tt.userID, tt.code)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
