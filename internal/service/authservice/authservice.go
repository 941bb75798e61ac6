package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"

	"github.com/fortunapp/fortuna/internal/domain"
	"github.com/fortunapp/fortuna/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SetPremium(ctx context.Context, userID int, premium bool) error
}

type Ledger interface {
	CreateBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error)
}

type Service struct {
	userRepo    Repo
	ledger      Ledger
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, ledger Ledger, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		ledger:      ledger,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

const (
	welcomeBonus       = 5
	referralCodeLength = 10
)

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		// Generated once here; immutable afterwards.
		ReferralCode: goluhn.Generate(referralCodeLength),
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.ledger.CreateBalance(ctx, newUser.ID)
	if err != nil {
		zap.L().Error("can't create balance: ", zap.Error(err))
		return nil, err
	}

	if _, err := s.ledger.Credit(ctx, newUser.ID, welcomeBonus, domain.TxWelcomeBonus, nil); err != nil {
		zap.L().Error("can't credit welcome bonus: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user: ", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ActivatePremium consumes the billing validator's "activate subscription
// tier" event. Receipt validation itself happens upstream.
func (s *Service) ActivatePremium(ctx context.Context, userID int) error {
	if err := s.userRepo.SetPremium(ctx, userID, true); err != nil {
		zap.L().Error("can't activate premium: ", zap.Error(err))
		return err
	}
	zap.L().Info("premium activated", zap.Int("userID", userID))
	return nil
}
