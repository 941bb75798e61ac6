package fortuneservice

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/notify"
	"github.com/fortunapp/fortuna/internal/pg"
	"github.com/fortunapp/fortuna/internal/service/rewardservice"
	"go.uber.org/zap"
)

type FortuneRepo interface {
	Save(ctx context.Context, req *domain.FortuneRequest) error
	FindByID(ctx context.Context, id string, userID int) (*domain.FortuneRequest, error)
	FindByUserID(ctx context.Context, userID int, limit int) ([]domain.FortuneRequest, error)
	RecordAdView(ctx context.Context, id string, userID int) (*domain.FortuneRequest, error)
	Reschedule(ctx context.Context, id string, processAfter time.Time) error
	CompleteExpired(ctx context.Context, userID int) ([]domain.FortuneRequest, error)
	Delete(ctx context.Context, id string, userID int) (bool, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error)
}

type ProgressRecorder interface {
	RecordProgress(ctx context.Context, userID int, metric string, increment int) error
}

type Notifier interface {
	NotifyBatch(events []notify.Event)
}

type Service struct {
	fortuneRepo FortuneRepo
	ledger      Ledger
	progress    ProgressRecorder
	notifier    Notifier
	txManager   pg.TXManager
	now         func() time.Time
}

func New(fortuneRepo FortuneRepo, ledger Ledger, progress ProgressRecorder, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		fortuneRepo: fortuneRepo,
		ledger:      ledger,
		progress:    progress,
		notifier:    notifier,
		txManager:   txManager,
		now:         time.Now,
	}
}

var (
	ErrFortuneNotFound    = errors.New("fortune request not found")
	ErrAlreadyAccelerated = errors.New("fortune request already accelerated")
	ErrNotEligible        = errors.New("fortune request is not eligible for acceleration")
)

const (
	maxAccelerationAds = 2

	// Recomputation policy for a fully accelerated request.
	shortRemainingThreshold = 10 * time.Minute
	shortRescheduleDelay    = 2 * time.Minute
	rescheduleWindowMin     = 10 * time.Minute
	rescheduleWindowMax     = 20 * time.Minute

	notifyKindFortuneReady = "fortune_ready"
)

type categoryWindow struct {
	min, max time.Duration
}

var defaultWindow = categoryWindow{min: 30 * time.Minute, max: 60 * time.Minute}

// Processing windows are deliberately variable so the "in review" delay feels
// organic to the user.
var categoryWindows = map[string]categoryWindow{
	"love":   {min: 45 * time.Minute, max: 90 * time.Minute},
	"career": {min: 30 * time.Minute, max: 60 * time.Minute},
	"daily":  {min: 15 * time.Minute, max: 30 * time.Minute},
}

func processingWindow(category string) time.Duration {
	w, ok := categoryWindows[category]
	if !ok {
		w = defaultWindow
	}
	return w.min + time.Duration(rand.Int63n(int64(w.max-w.min)))
}

// Submit debits the cost and creates the request as one transaction; a failed
// insert rolls the debit back and an insufficient balance creates nothing.
func (s *Service) Submit(ctx context.Context, userID int, category string, cost int) (*domain.FortuneRequest, error) {
	req := &domain.FortuneRequest{
		ID:           uuid.NewString(),
		UserID:       userID,
		Category:     category,
		TokenAmount:  cost,
		Status:       domain.FortuneInReview,
		ProcessAfter: s.now().Add(processingWindow(category)),
		CreatedAt:    s.now(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.Debit(ctx, userID, cost, domain.TxFortunePurchase, &req.ID); err != nil {
			return err
		}
		return s.fortuneRepo.Save(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	if err := s.progress.RecordProgress(ctx, userID, rewardservice.MetricFortunesSent, 1); err != nil {
		zap.L().Error("failed to record fortune progress", zap.Error(err))
	}

	zap.L().Info("fortune request submitted", zap.Int("userID", userID), zap.String("id", req.ID), zap.String("category", category))
	return req, nil
}

type AccelerationResult struct {
	AdsWatched   int
	ProcessAfter time.Time
}

// Accelerate consumes one verified ad view. The counter advance is a guarded
// UPDATE that stops at 2; reaching 2 recomputes process_after exactly once,
// after which every further attempt reports already accelerated.
func (s *Service) Accelerate(ctx context.Context, userID int, fortuneID string) (*AccelerationResult, error) {
	var result AccelerationResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.fortuneRepo.RecordAdView(ctx, fortuneID, userID)
		if err != nil {
			return err
		}
		if req == nil {
			existing, err := s.fortuneRepo.FindByID(ctx, fortuneID, userID)
			if err != nil {
				return err
			}
			if existing == nil {
				return ErrFortuneNotFound
			}
			if existing.AdsWatched >= maxAccelerationAds {
				return ErrAlreadyAccelerated
			}
			return ErrNotEligible
		}

		result.AdsWatched = req.AdsWatched
		result.ProcessAfter = req.ProcessAfter
		if req.AdsWatched == maxAccelerationAds {
			eta := s.reschedule(req.ProcessAfter)
			if err := s.fortuneRepo.Reschedule(ctx, fortuneID, eta); err != nil {
				return err
			}
			result.ProcessAfter = eta
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) reschedule(processAfter time.Time) time.Time {
	now := s.now()
	if processAfter.Sub(now) <= shortRemainingThreshold {
		return now.Add(shortRescheduleDelay)
	}
	jitter := time.Duration(rand.Int63n(int64(rescheduleWindowMax - rescheduleWindowMin)))
	return now.Add(rescheduleWindowMin + jitter)
}

// List runs the reconciliation sweep before reading: overdue in-review
// requests flip to completed, and the transitions fan out as one batch of
// fortune_ready notifications. The batch is dispatched after the transitions
// are committed and never affects them.
func (s *Service) List(ctx context.Context, userID int, premium bool) ([]domain.FortuneRequest, error) {
	completed, err := s.fortuneRepo.CompleteExpired(ctx, userID)
	if err != nil {
		zap.L().Error("reconciliation sweep failed", zap.Error(err))
		return nil, err
	}
	if len(completed) > 0 {
		events := make([]notify.Event, 0, len(completed))
		for _, req := range completed {
			events = append(events, notify.Event{
				UserID: userID,
				Kind:   notifyKindFortuneReady,
				Payload: map[string]string{
					"fortune_id": req.ID,
					"category":   req.Category,
				},
			})
		}
		s.notifier.NotifyBatch(events)
	}

	limit := 3
	if premium {
		limit = 0
	}
	return s.fortuneRepo.FindByUserID(ctx, userID, limit)
}

// Delete is a hard delete with no refund.
func (s *Service) Delete(ctx context.Context, userID int, fortuneID string) error {
	deleted, err := s.fortuneRepo.Delete(ctx, fortuneID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFortuneNotFound
	}
	zap.L().Info("fortune request deleted", zap.Int("userID", userID), zap.String("id", fortuneID))
	return nil
}
