package service

import (
	"github.com/amigomontador/backend/internal/geo"
	"github.com/amigomontador/backend/internal/handlers/applications"
	"github.com/amigomontador/backend/internal/handlers/auth"
	"github.com/amigomontador/backend/internal/handlers/bankaccounts"
	"github.com/amigomontador/backend/internal/handlers/messages"
	"github.com/amigomontador/backend/internal/handlers/profile"
	"github.com/amigomontador/backend/internal/handlers/ratings"
	"github.com/amigomontador/backend/internal/handlers/services"
	"github.com/amigomontador/backend/internal/notify"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/amigomontador/backend/internal/repo"
	"github.com/amigomontador/backend/internal/service/applicationservice"
	"github.com/amigomontador/backend/internal/service/authservice"
	"github.com/amigomontador/backend/internal/service/bankservice"
	"github.com/amigomontador/backend/internal/service/chatservice"
	"github.com/amigomontador/backend/internal/service/profileservice"
	"github.com/amigomontador/backend/internal/service/ratingservice"
	"github.com/amigomontador/backend/internal/service/servicesvc"

	pkgauth "github.com/amigomontador/backend/pkg/auth"
)

type Services struct {
	AuthService        auth.Service
	ProfileService     profile.Service
	ServiceService     services.Service
	ApplicationService applications.Service
	ChatService        messages.Service
	RatingService      ratings.Service
	BankService        bankaccounts.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager, geocoder *geo.Geocoder, notifier *notify.Notifier) *Services {
	authService := authservice.New(repos.UserRepo, repos.StoreRepo, repos.AssemblerRepo, geocoder,
		&pkgauth.HashService{}, &pkgauth.JWTService{}, txManager)
	profileService := profileservice.New(repos.UserRepo, repos.StoreRepo, repos.AssemblerRepo, geocoder, txManager)
	serviceService := servicesvc.New(repos.ServiceRepo, repos.StoreRepo, repos.AssemblerRepo,
		repos.ApplicationRepo, repos.RatingRepo, geocoder, notifier)
	applicationService := applicationservice.New(repos.ApplicationRepo, repos.ServiceRepo, repos.StoreRepo,
		repos.AssemblerRepo, repos.UserRepo, repos.MessageRepo, repos.RatingRepo, txManager, notifier)
	chatService := chatservice.New(repos.MessageRepo, repos.ServiceRepo, repos.AssemblerRepo,
		repos.ApplicationRepo, notifier)
	ratingService := ratingservice.New(repos.RatingRepo, repos.ServiceRepo, repos.AssemblerRepo,
		txManager, notifier)
	bankService := bankservice.New(repos.BankRepo)

	return &Services{
		AuthService:        authService,
		ProfileService:     profileService,
		ServiceService:     serviceService,
		ApplicationService: applicationService,
		ChatService:        chatService,
		RatingService:      ratingService,
		BankService:        bankService,
	}
}
