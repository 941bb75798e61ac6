package handlers

import (
	"net/http"

	_ "github.com/fortunapp/fortuna/docs"
	authhandlers "github.com/fortunapp/fortuna/internal/handlers/auth"
	chathandlers "github.com/fortunapp/fortuna/internal/handlers/chat"
	fortunehandlers "github.com/fortunapp/fortuna/internal/handlers/fortunes"
	rewardhandlers "github.com/fortunapp/fortuna/internal/handlers/rewards"
	wallethandlers "github.com/fortunapp/fortuna/internal/handlers/wallet"
	"github.com/fortunapp/fortuna/internal/service"
	"github.com/fortunapp/fortuna/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	ActivatePremium(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	RecordEvent(w http.ResponseWriter, r *http.Request)
	GetProgress(w http.ResponseWriter, r *http.Request)
	ClaimDaily(w http.ResponseWriter, r *http.Request)
	ReportSocial(w http.ResponseWriter, r *http.Request)
	ClaimSocial(w http.ResponseWriter, r *http.Request)
	RegisterAdView(w http.ResponseWriter, r *http.Request)
	ProcessReferral(w http.ResponseWriter, r *http.Request)
}

type FortuneHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Accelerate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	RewardHandler  RewardHandler
	FortuneHandler FortuneHandler
	ChatHandler    ChatHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		RewardHandler:  rewardhandlers.New(s.RewardService),
		FortuneHandler: fortunehandlers.New(s.FortuneService, s.AuthService),
		ChatHandler:    chathandlers.New(s.ChatService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/me", h.AuthHandler.GetMe)
			r.Post("/premium", h.AuthHandler.ActivatePremium)
			r.Get("/balance", h.WalletHandler.GetBalance)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", h.RewardHandler.GetProgress)
				r.Post("/events", h.RewardHandler.RecordEvent)
				r.Post("/claim", h.RewardHandler.ClaimDaily)
				r.Post("/ads", h.RewardHandler.RegisterAdView)
				r.Post("/social/{task}/report", h.RewardHandler.ReportSocial)
				r.Post("/social/{task}/claim", h.RewardHandler.ClaimSocial)
			})
			r.Post("/referral", h.RewardHandler.ProcessReferral)
			r.Route("/fortunes", func(r chi.Router) {
				r.Post("/", h.FortuneHandler.Submit)
				r.Get("/", h.FortuneHandler.List)
				r.Post("/{id}/accelerate", h.FortuneHandler.Accelerate)
				r.Delete("/{id}", h.FortuneHandler.Delete)
			})
			r.Post("/chat/messages", h.ChatHandler.SendMessage)
		})
	})

	return r
}
