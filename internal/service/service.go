package service

import (
	"github.com/fortunapp/fortuna/internal/config"
	"github.com/fortunapp/fortuna/internal/generator"
	"github.com/fortunapp/fortuna/internal/handlers/auth"
	"github.com/fortunapp/fortuna/internal/handlers/chat"
	"github.com/fortunapp/fortuna/internal/handlers/fortunes"
	"github.com/fortunapp/fortuna/internal/handlers/rewards"
	"github.com/fortunapp/fortuna/internal/handlers/wallet"
	"github.com/fortunapp/fortuna/internal/notify"
	"github.com/fortunapp/fortuna/internal/pg"
	"github.com/fortunapp/fortuna/internal/repo"

	pkgauth "github.com/fortunapp/fortuna/pkg/auth"

	authservice "github.com/fortunapp/fortuna/internal/service/authservice"
	chatservice "github.com/fortunapp/fortuna/internal/service/chatservice"
	fortuneservice "github.com/fortunapp/fortuna/internal/service/fortuneservice"
	ledgerservice "github.com/fortunapp/fortuna/internal/service/ledgerservice"
	rewardservice "github.com/fortunapp/fortuna/internal/service/rewardservice"
)

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.Service
	RewardService  rewards.Service
	FortuneService fortunes.Service
	ChatService    chat.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, notifier *notify.Service, gen *generator.Client) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	rewardService := rewardservice.New(repo.RewardRepo, repo.UserRepo, ledgerService, txManager)
	fortuneService := fortuneservice.New(repo.FortuneRepo, ledgerService, rewardService, notifier, txManager)
	chatService := chatservice.New(ledgerService, gen, cfg.ChatMessagePrice)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		WalletService:  ledgerService,
		RewardService:  rewardService,
		FortuneService: fortuneService,
		ChatService:    chatService,
	}
}
