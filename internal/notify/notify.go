package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fortunapp/fortuna/internal/config"
	"github.com/fortunapp/fortuna/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Event struct {
	UserID  int    `json:"user_id"`
	Kind    string `json:"kind"`
	Payload any    `json:"payload,omitempty"`
}

// Service pushes events to the external notification dispatcher. Delivery is
// best effort: a failed push is logged and dropped, it never propagates back
// to the state transition that produced the event.
type Service struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI

	ctx context.Context
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.NotifierAddress,
		client:     client,
		workerPool: NewWorkerPool(10),
		ctx:        context.Background(),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notification dispatcher started")
	s.ctx = ctx
	go func() {
		<-ctx.Done()
		s.workerPool.Close()
	}()
}

// Notify queues one event for delivery and returns immediately.
func (s *Service) Notify(userID int, kind string, payload any) {
	event := Event{UserID: userID, Kind: kind, Payload: payload}
	err := s.workerPool.AddTask(s.ctx, func() error {
		return s.deliver(event)
	})
	if err != nil {
		zap.L().Warn("notification dropped", zap.Int("userID", userID), zap.String("kind", kind), zap.Error(err))
	}
}

// NotifyBatch queues a set of events concurrently, e.g. after a sweep
// completed several requests at once.
func (s *Service) NotifyBatch(events []Event) {
	var g errgroup.Group
	for _, event := range events {
		event := event
		g.Go(func() error {
			return s.workerPool.AddTask(s.ctx, func() error {
				return s.deliver(event)
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("notification batch partially dropped", zap.Error(err))
	}
}

func (s *Service) deliver(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	url := s.url + "/api/notify"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, err := s.client.Post(url, nil, body)
		if err == nil && statusCode < http.StatusInternalServerError {
			return nil
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to deliver notification after %d retries: %w", maxRetries, err)
		}
		return fmt.Errorf("notification dispatcher returned status %d", statusCode)
	}
	return nil
}
