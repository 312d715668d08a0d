package handlers

import (
	"net/http"

	_ "github.com/amigomontador/backend/docs"
	"github.com/amigomontador/backend/internal/domain"
	applicationhandlers "github.com/amigomontador/backend/internal/handlers/applications"
	authhandlers "github.com/amigomontador/backend/internal/handlers/auth"
	bankhandlers "github.com/amigomontador/backend/internal/handlers/bankaccounts"
	messagehandlers "github.com/amigomontador/backend/internal/handlers/messages"
	profilehandlers "github.com/amigomontador/backend/internal/handlers/profile"
	ratinghandlers "github.com/amigomontador/backend/internal/handlers/ratings"
	servicehandlers "github.com/amigomontador/backend/internal/handlers/services"
	wshandlers "github.com/amigomontador/backend/internal/handlers/ws"
	"github.com/amigomontador/backend/internal/notify"
	"github.com/amigomontador/backend/internal/service"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ServiceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Browse(w http.ResponseWriter, r *http.Request)
	Active(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListForService(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
}

type RatingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListForService(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
}

type BankAccountHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WSHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ProfileHandler     ProfileHandler
	ServiceHandler     ServiceHandler
	ApplicationHandler ApplicationHandler
	MessageHandler     MessageHandler
	RatingHandler      RatingHandler
	BankAccountHandler BankAccountHandler
	WSHandler          WSHandler
}

func New(s *service.Services, registry *notify.Registry) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ProfileHandler:     profilehandlers.New(s.ProfileService),
		ServiceHandler:     servicehandlers.New(s.ServiceService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		MessageHandler:     messagehandlers.New(s.ChatService),
		RatingHandler:      ratinghandlers.New(s.RatingService),
		BankAccountHandler: bankhandlers.New(s.BankService),
		WSHandler:          wshandlers.New(registry, &auth.JWTService{}),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/ws", h.WSHandler.Connect)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/profile", h.ProfileHandler.Get)
			r.Patch("/profile", h.ProfileHandler.Update)
			r.Get("/users/{id}/profile", h.ProfileHandler.GetByID)

			r.Route("/services", func(r chi.Router) {
				r.With(auth.RequireUserType(domain.UserTypeLojista)).Post("/", h.ServiceHandler.Create)
				r.With(auth.RequireUserType(domain.UserTypeMontador)).Get("/", h.ServiceHandler.Browse)
				r.Get("/active", h.ServiceHandler.Active)
				r.Get("/history", h.ServiceHandler.History)
				r.Get("/pending-evaluations", h.RatingHandler.Pending)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.ServiceHandler.Get)
					r.With(auth.RequireUserType(domain.UserTypeLojista)).Patch("/", h.ServiceHandler.Edit)
					r.With(auth.RequireUserType(domain.UserTypeLojista)).Delete("/", h.ServiceHandler.Delete)
					r.With(auth.RequireUserType(domain.UserTypeLojista)).Patch("/status", h.ServiceHandler.UpdateStatus)
					r.With(auth.RequireUserType(domain.UserTypeLojista)).Post("/complete", h.ServiceHandler.Complete)

					r.With(auth.RequireUserType(domain.UserTypeMontador)).Post("/apply", h.ApplicationHandler.Apply)
					r.With(auth.RequireUserType(domain.UserTypeLojista)).Get("/applications", h.ApplicationHandler.ListForService)

					r.Get("/messages", h.MessageHandler.List)
					r.Post("/messages", h.MessageHandler.Send)
					r.Post("/messages/read", h.MessageHandler.MarkRead)

					r.Post("/rate", h.RatingHandler.Create)
					r.Get("/ratings", h.RatingHandler.ListForService)
				})
			})

			r.Route("/applications/{id}", func(r chi.Router) {
				r.With(auth.RequireUserType(domain.UserTypeLojista)).Post("/accept", h.ApplicationHandler.Accept)
				r.With(auth.RequireUserType(domain.UserTypeLojista)).Post("/reject", h.ApplicationHandler.Reject)
			})

			r.Get("/messages/unread-count", h.MessageHandler.UnreadCount)

			r.Route("/bank-accounts", func(r chi.Router) {
				r.Get("/", h.BankAccountHandler.List)
				r.Post("/", h.BankAccountHandler.Create)
				r.Get("/{id}", h.BankAccountHandler.Get)
				r.Patch("/{id}", h.BankAccountHandler.Update)
				r.Delete("/{id}", h.BankAccountHandler.Delete)
			})
		})
	})

	return r
}
