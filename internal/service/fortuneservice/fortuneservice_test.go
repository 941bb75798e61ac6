package fortuneservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/notify"
	"github.com/fortunapp/fortuna/internal/pg"
	"github.com/fortunapp/fortuna/internal/service/ledgerservice"
	"github.com/fortunapp/fortuna/internal/service/rewardservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockFortuneRepo, *MockLedger, *MockProgressRecorder, *MockNotifier, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	fortuneRepo := NewMockFortuneRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	progress := NewMockProgressRecorder(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(fortuneRepo, ledger, progress, notifier, txManager)
	defer ctrl.Finish()
	return service, fortuneRepo, ledger, progress, notifier, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestSubmit(t *testing.T) {
	service, fortuneRepo, ledger, progress, _, txManager := NewMock(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	t.Run("Debit and creation commit together", func(t *testing.T) {
		passthroughTx(txManager)

		var saved *domain.FortuneRequest
		ledger.EXPECT().
			Debit(gomock.Any(), 1, 10, domain.TxFortunePurchase, gomock.Any()).
			Return(&domain.Balance{UserID: 1, TokenBalance: 5}, nil)
		fortuneRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *domain.FortuneRequest) error {
			saved = req
			return nil
		})
		progress.EXPECT().RecordProgress(gomock.Any(), 1, rewardservice.MetricFortunesSent, 1).Return(nil)

		req, err := service.Submit(context.Background(), 1, "love", 10)
		assert.NoError(t, err)
		assert.NotNil(t, req)
		assert.Equal(t, saved, req)
		assert.NotEmpty(t, req.ID)
		assert.Equal(t, domain.FortuneInReview, req.Status)
		assert.Equal(t, 10, req.TokenAmount)
		assert.Equal(t, 0, req.AdsWatched)

		window := req.ProcessAfter.Sub(now)
		assert.GreaterOrEqual(t, window, 45*time.Minute)
		assert.LessOrEqual(t, window, 90*time.Minute)
	})

	t.Run("Insufficient balance creates nothing", func(t *testing.T) {
		passthroughTx(txManager)

		ledger.EXPECT().
			Debit(gomock.Any(), 1, 10, domain.TxFortunePurchase, gomock.Any()).
			Return(nil, ledgerservice.ErrInsufficientBalance)

		req, err := service.Submit(context.Background(), 1, "career", 10)
		assert.ErrorIs(t, err, ledgerservice.ErrInsufficientBalance)
		assert.Nil(t, req)
	})

	t.Run("Failed insert rolls the debit back", func(t *testing.T) {
		passthroughTx(txManager)

		ledger.EXPECT().
			Debit(gomock.Any(), 1, 10, domain.TxFortunePurchase, gomock.Any()).
			Return(&domain.Balance{UserID: 1, TokenBalance: 5}, nil)
		fortuneRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		req, err := service.Submit(context.Background(), 1, "career", 10)
		assert.Error(t, err)
		assert.Nil(t, req)
	})

	t.Run("Progress failure does not fail the purchase", func(t *testing.T) {
		passthroughTx(txManager)

		ledger.EXPECT().
			Debit(gomock.Any(), 1, 10, domain.TxFortunePurchase, gomock.Any()).
			Return(&domain.Balance{UserID: 1, TokenBalance: 5}, nil)
		fortuneRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		progress.EXPECT().RecordProgress(gomock.Any(), 1, rewardservice.MetricFortunesSent, 1).Return(errors.New("db error"))

		req, err := service.Submit(context.Background(), 1, "daily", 10)
		assert.NoError(t, err)
		assert.NotNil(t, req)
	})
}

func TestAccelerate(t *testing.T) {
	service, fortuneRepo, _, _, _, txManager := NewMock(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }
	fortuneID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	t.Run("First view only advances the counter", func(t *testing.T) {
		passthroughTx(txManager)

		eta := now.Add(40 * time.Minute)
		fortuneRepo.EXPECT().RecordAdView(gomock.Any(), fortuneID, 1).
			Return(&domain.FortuneRequest{ID: fortuneID, UserID: 1, AdsWatched: 1, ProcessAfter: eta, Status: domain.FortuneInReview}, nil)

		result, err := service.Accelerate(context.Background(), 1, fortuneID)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.AdsWatched)
		assert.Equal(t, eta, result.ProcessAfter)
	})

	t.Run("Second view reschedules exactly once", func(t *testing.T) {
		passthroughTx(txManager)

		eta := now.Add(40 * time.Minute)
		fortuneRepo.EXPECT().RecordAdView(gomock.Any(), fortuneID, 1).
			Return(&domain.FortuneRequest{ID: fortuneID, UserID: 1, AdsWatched: 2, ProcessAfter: eta, Status: domain.FortuneInReview}, nil)

		var rescheduled time.Time
		fortuneRepo.EXPECT().Reschedule(gomock.Any(), fortuneID, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, processAfter time.Time) error {
			rescheduled = processAfter
			return nil
		})

		result, err := service.Accelerate(context.Background(), 1, fortuneID)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.AdsWatched)
		assert.Equal(t, rescheduled, result.ProcessAfter)
		assert.GreaterOrEqual(t, rescheduled.Sub(now), 10*time.Minute)
		assert.LessOrEqual(t, rescheduled.Sub(now), 20*time.Minute)
	})

	t.Run("Short remaining delay collapses to two minutes", func(t *testing.T) {
		passthroughTx(txManager)

		eta := now.Add(5 * time.Minute)
		fortuneRepo.EXPECT().RecordAdView(gomock.Any(), fortuneID, 1).
			Return(&domain.FortuneRequest{ID: fortuneID, UserID: 1, AdsWatched: 2, ProcessAfter: eta, Status: domain.FortuneInReview}, nil)
		fortuneRepo.EXPECT().Reschedule(gomock.Any(), fortuneID, now.Add(2*time.Minute)).Return(nil)

		result, err := service.Accelerate(context.Background(), 1, fortuneID)
		assert.NoError(t, err)
		assert.Equal(t, now.Add(2*time.Minute), result.ProcessAfter)
	})

	t.Run("Unknown request", func(t *testing.T) {
		passthroughTx(txManager)

		fortuneRepo.EXPECT().RecordAdView(gomock.Any(), fortuneID, 1).Return(nil, nil)
		fortuneRepo.EXPECT().FindByID(gomock.Any(), fortuneID, 1).Return(nil, nil)

		_, err := service.Accelerate(context.Background(), 1, fortuneID)
		assert.ErrorIs(t, err, ErrFortuneNotFound)
	})

	t.Run("Third view reports already accelerated", func(t *testing.T) {
		passthroughTx(txManager)

		fortuneRepo.EXPECT().RecordAdView(gomock.Any(), fortuneID, 1).Return(nil, nil)
		fortuneRepo.EXPECT().FindByID(gomock.Any(), fortuneID, 1).
			Return(&domain.FortuneRequest{ID: fortuneID, UserID: 1, AdsWatched: 2, Status: domain.FortuneInReview}, nil)

		_, err := service.Accelerate(context.Background(), 1, fortuneID)
		assert.ErrorIs(t, err, ErrAlreadyAccelerated)
	})

	t.Run("Completed request is not eligible", func(t *testing.T) {
		passthroughTx(txManager)

		fortuneRepo.EXPECT().RecordAdView(gomock.Any(), fortuneID, 1).Return(nil, nil)
		fortuneRepo.EXPECT().FindByID(gomock.Any(), fortuneID, 1).
			Return(&domain.FortuneRequest{ID: fortuneID, UserID: 1, AdsWatched: 1, Status: domain.FortuneCompleted}, nil)

		_, err := service.Accelerate(context.Background(), 1, fortuneID)
		assert.ErrorIs(t, err, ErrNotEligible)
	})
}

func TestList(t *testing.T) {
	service, fortuneRepo, _, _, notifier, _ := NewMock(t)
	now := time.Now()

	t.Run("Sweep completes overdue requests and notifies in one batch", func(t *testing.T) {
		completed := []domain.FortuneRequest{
			{ID: "a", UserID: 1, Category: "love", Status: domain.FortuneCompleted, CompletedAt: &now},
			{ID: "b", UserID: 1, Category: "daily", Status: domain.FortuneCompleted, CompletedAt: &now},
		}
		fortuneRepo.EXPECT().CompleteExpired(gomock.Any(), 1).Return(completed, nil)
		notifier.EXPECT().NotifyBatch([]notify.Event{
			{UserID: 1, Kind: "fortune_ready", Payload: map[string]string{"fortune_id": "a", "category": "love"}},
			{UserID: 1, Kind: "fortune_ready", Payload: map[string]string{"fortune_id": "b", "category": "daily"}},
		})
		fortuneRepo.EXPECT().FindByUserID(gomock.Any(), 1, 3).Return(completed, nil)

		reqs, err := service.List(context.Background(), 1, false)
		assert.NoError(t, err)
		assert.Len(t, reqs, 2)
	})

	t.Run("Quiet sweep sends no batch", func(t *testing.T) {
		fortuneRepo.EXPECT().CompleteExpired(gomock.Any(), 1).Return(nil, nil)
		fortuneRepo.EXPECT().FindByUserID(gomock.Any(), 1, 3).Return([]domain.FortuneRequest{}, nil)

		reqs, err := service.List(context.Background(), 1, false)
		assert.NoError(t, err)
		assert.Empty(t, reqs)
	})

	t.Run("Premium users see the full history", func(t *testing.T) {
		fortuneRepo.EXPECT().CompleteExpired(gomock.Any(), 1).Return(nil, nil)
		fortuneRepo.EXPECT().FindByUserID(gomock.Any(), 1, 0).Return([]domain.FortuneRequest{}, nil)

		reqs, err := service.List(context.Background(), 1, true)
		assert.NoError(t, err)
		assert.Empty(t, reqs)
	})

	t.Run("Sweep failure aborts the read", func(t *testing.T) {
		fortuneRepo.EXPECT().CompleteExpired(gomock.Any(), 1).Return(nil, errors.New("db error"))

		_, err := service.List(context.Background(), 1, false)
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	service, fortuneRepo, _, _, _, _ := NewMock(t)
	fortuneID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful delete",
			prepareMock: func() {
				fortuneRepo.EXPECT().Delete(gomock.Any(), fortuneID, 1).Return(true, nil)
			},
		},
		{
			name: "Unknown request",
			prepareMock: func() {
				fortuneRepo.EXPECT().Delete(gomock.Any(), fortuneID, 1).Return(false, nil)
			},
			expectedError: ErrFortuneNotFound,
		},
		{
			name: "Repo error propagates",
			prepareMock: func() {
				fortuneRepo.EXPECT().Delete(gomock.Any(), fortuneID, 1).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), 1, fortuneID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
