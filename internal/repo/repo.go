package repo

import (
	"github.com/fortunapp/fortuna/internal/pg"
	fortunerepo "github.com/fortunapp/fortuna/internal/repo/fortune-repo"
	ledgerrepo "github.com/fortunapp/fortuna/internal/repo/ledger-repo"
	rewardrepo "github.com/fortunapp/fortuna/internal/repo/reward-repo"
	userrepo "github.com/fortunapp/fortuna/internal/repo/user-repo"
	"github.com/fortunapp/fortuna/internal/service/fortuneservice"
	"github.com/fortunapp/fortuna/internal/service/ledgerservice"
	"github.com/fortunapp/fortuna/internal/service/rewardservice"
)

type Repositories struct {
	// UserRepo serves both the auth service and the referral path of the
	// reward service.
	UserRepo    *userrepo.Repository
	LedgerRepo  ledgerservice.LedgerRepo
	RewardRepo  rewardservice.RewardRepo
	FortuneRepo fortuneservice.FortuneRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		LedgerRepo:  ledgerrepo.New(conn, txManager),
		RewardRepo:  rewardrepo.New(conn, txManager),
		FortuneRepo: fortunerepo.New(conn, txManager),
	}
}
