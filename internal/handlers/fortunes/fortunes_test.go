package fortunes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/internal/dto"
	fortuneservice "github.com/fortunapp/fortuna/internal/service/fortuneservice"
	ledgerservice "github.com/fortunapp/fortuna/internal/service/ledgerservice"
	"github.com/fortunapp/fortuna/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*FortuneHandler, *MockService, *MockUserService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	userService := NewMockUserService(ctrl)
	handler := New(service, userService)
	defer ctrl.Finish()
	return handler, service, userService
}

func fortuneContext(id string) context.Context {
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestSubmitHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful submission",
			body: `{"category":"love","cost":10}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "love", 10).
					Return(&domain.FortuneRequest{
						ID:           "7c9e6679-7425-40de-944b-e07fc1f90ae7",
						UserID:       1,
						Category:     "love",
						TokenAmount:  10,
						Status:       domain.FortuneInReview,
						ProcessAfter: now.Add(time.Hour),
						CreatedAt:    now,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"category":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing category",
			body:          `{"cost":10}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "category and positive cost are required",
		},
		{
			name: "Insufficient balance",
			body: `{"category":"love","cost":10}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "love", 10).
					Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance",
		},
		{
			name: "Internal server error",
			body: `{"category":"love","cost":10}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "love", 10).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/fortunes", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service, userService := NewMock(t)
	now := time.Now()
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Non-premium user sees the capped history",
			prepareMock: func() {
				userService.EXPECT().GetUser(ctx, 1).Return(&domain.User{ID: 1}, nil)
				service.EXPECT().List(ctx, 1, false).Return([]domain.FortuneRequest{
					{ID: "id-2", UserID: 1, Category: "career", Status: domain.FortuneInReview, ProcessAfter: now.Add(time.Hour), CreatedAt: now},
					{ID: "id-1", UserID: 1, Category: "love", Status: domain.FortuneCompleted, ProcessAfter: now.Add(-time.Hour), CompletedAt: &now, CreatedAt: now.Add(-2 * time.Hour)},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Premium user requests the full history",
			prepareMock: func() {
				userService.EXPECT().GetUser(ctx, 1).Return(&domain.User{ID: 1, Premium: true}, nil)
				service.EXPECT().List(ctx, 1, true).Return([]domain.FortuneRequest{
					{ID: "id-1", UserID: 1, Category: "love", Status: domain.FortuneInReview, ProcessAfter: now.Add(time.Hour), CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No requests",
			prepareMock: func() {
				userService.EXPECT().GetUser(ctx, 1).Return(&domain.User{ID: 1}, nil)
				service.EXPECT().List(ctx, 1, false).Return([]domain.FortuneRequest{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userService.EXPECT().GetUser(ctx, 1).Return(nil, nil)
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				userService.EXPECT().GetUser(ctx, 1).Return(&domain.User{ID: 1}, nil)
				service.EXPECT().List(ctx, 1, false).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/fortunes", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.FortuneResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestAccelerateHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	id := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	ctx := fortuneContext(id)
	processAfter := time.Now().Add(15 * time.Minute)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Second view reschedules the reveal",
			prepareMock: func() {
				service.EXPECT().
					Accelerate(ctx, 1, id).
					Return(&fortuneservice.AccelerationResult{AdsWatched: 2, ProcessAfter: processAfter}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request not found",
			prepareMock: func() {
				service.EXPECT().
					Accelerate(ctx, 1, id).
					Return(nil, fortuneservice.ErrFortuneNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "fortune request not found",
		},
		{
			name: "Already accelerated",
			prepareMock: func() {
				service.EXPECT().
					Accelerate(ctx, 1, id).
					Return(nil, fortuneservice.ErrAlreadyAccelerated)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already accelerated",
		},
		{
			name: "Completed request is not eligible",
			prepareMock: func() {
				service.EXPECT().
					Accelerate(ctx, 1, id).
					Return(nil, fortuneservice.ErrNotEligible)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "not eligible",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Accelerate(ctx, 1, id).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/fortunes/"+id+"/accelerate", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Accelerate(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AccelerateResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 2, body.AdsWatched)
				assert.True(t, processAfter.Equal(body.ProcessAfter))
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	id := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	ctx := fortuneContext(id)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deletion",
			prepareMock: func() {
				service.EXPECT().Delete(ctx, 1, id).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request not found",
			prepareMock: func() {
				service.EXPECT().Delete(ctx, 1, id).Return(fortuneservice.ErrFortuneNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "fortune request not found",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Delete(ctx, 1, id).Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodDelete, "/fortunes/"+id, nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Delete(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
