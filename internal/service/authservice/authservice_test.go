package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedger, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, ledger, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, ledger, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, ledger, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration with welcome bonus",
			login:    "user",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, "user", user.Login)
					assert.Equal(t, "hashedPassword", user.PasswordHash)
					assert.Len(t, user.ReferralCode, 10)
					user.ID = 1
					return user, nil
				})
				ledger.EXPECT().CreateBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				ledger.EXPECT().Credit(gomock.Any(), 1, 5, domain.TxWelcomeBonus, gomock.Nil()).
					Return(&domain.Balance{UserID: 1, TokenBalance: 5}, nil)
			},
		},
		{
			name:     "Username already taken",
			login:    "user",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(&domain.User{ID: 1, Login: "user"}, nil)
			},
			expectedError: errors.New("username already taken"),
		},
		{
			name:     "Hashing failure",
			login:    "user",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
		{
			name:     "Create failure",
			login:    "user",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:     "Balance creation failure",
			login:    "user",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				ledger.EXPECT().CreateBalance(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:     "Welcome bonus failure",
			login:    "user",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				ledger.EXPECT().CreateBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				ledger.EXPECT().Credit(gomock.Any(), 1, 5, domain.TxWelcomeBonus, gomock.Nil()).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").
					Return(&domain.User{ID: 1, Login: "user", PasswordHash: "hashedPassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedPassword", "password").Return(true)
			},
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
			},
			expectedError: errors.New("invalid credentials"),
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").
					Return(&domain.User{ID: 1, Login: "user", PasswordHash: "hashedPassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedPassword", "password").Return(false)
			},
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "user", "password")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Token generated",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name: "Generation failure",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("sign error"))
			},
			expectedError: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	service, userRepo, _, _, _ := NewMock(t)

	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Login: "user", Premium: true}, nil)
	user, err := service.GetUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, user.Premium)

	userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, errors.New("db error"))
	user, err = service.GetUser(context.Background(), 2)
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestActivatePremium(t *testing.T) {
	service, userRepo, _, _, _ := NewMock(t)

	userRepo.EXPECT().SetPremium(gomock.Any(), 1, true).Return(nil)
	assert.NoError(t, service.ActivatePremium(context.Background(), 1))

	userRepo.EXPECT().SetPremium(gomock.Any(), 1, true).Return(errors.New("db error"))
	assert.Error(t, service.ActivatePremium(context.Background(), 1))
}
