package ratingservice

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/notify"
	"github.com/amigomontador/backend/internal/pg"
	ratingrepo "github.com/amigomontador/backend/internal/repo/rating-repo"
	"go.uber.org/zap"
)

type RatingRepo interface {
	Save(ctx context.Context, rating *domain.Rating) error
	FindByServiceID(ctx context.Context, serviceID int) ([]domain.Rating, error)
	FindPendingEvaluations(ctx context.Context, userID int) ([]domain.PendingEvaluation, error)
}

type ServiceRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Service, error)
	FindParticipants(ctx context.Context, serviceID int) (storeUserID, assemblerUserID int, err error)
}

type AssemblerRepo interface {
	AddRating(ctx context.Context, userID int, rating int) error
}

type Notifier interface {
	Send(ctx context.Context, userID int, notification notify.Notification) bool
}

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceNotCompleted = errors.New("only completed services can be rated")
	ErrNotParticipant      = errors.New("not a participant of this service")
	ErrInvalidTarget       = errors.New("rating target is not the service counterpart")
	ErrDuplicateRating     = errors.New("rating already submitted")
)

type Service struct {
	ratingRepo    RatingRepo
	serviceRepo   ServiceRepo
	assemblerRepo AssemblerRepo
	txManager     pg.TXManager
	notifier      Notifier
}

func New(ratingRepo RatingRepo, serviceRepo ServiceRepo, assemblerRepo AssemblerRepo,
	txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		ratingRepo:    ratingRepo,
		serviceRepo:   serviceRepo,
		assemblerRepo: assemblerRepo,
		txManager:     txManager,
		notifier:      notifier,
	}
}

// Create stores a rating between the two participants of a completed
// service. The unique index backs the one-rating-per-direction rule; an
// assembler's running average moves in the same transaction.
func (s *Service) Create(ctx context.Context, fromUserID int, rating *domain.Rating) error {
	service, err := s.serviceRepo.FindByID(ctx, rating.ServiceID)
	if err != nil {
		return err
	}
	if service == nil {
		return ErrServiceNotFound
	}
	if service.Status != domain.ServiceStatusCompleted {
		return ErrServiceNotCompleted
	}

	storeUserID, assemblerUserID, err := s.serviceRepo.FindParticipants(ctx, rating.ServiceID)
	if err != nil {
		return err
	}
	if fromUserID != storeUserID && fromUserID != assemblerUserID {
		return ErrNotParticipant
	}
	counterpart := storeUserID
	if fromUserID == storeUserID {
		counterpart = assemblerUserID
	}
	if counterpart == 0 || rating.ToUserID != counterpart {
		return ErrInvalidTarget
	}

	rating.FromUserID = fromUserID
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ratingRepo.Save(ctx, rating); err != nil {
			if errors.Is(err, ratingrepo.ErrDuplicate) {
				return ErrDuplicateRating
			}
			return err
		}
		// only assemblers carry a public running average
		if rating.ToUserID == assemblerUserID {
			return s.assemblerRepo.AddRating(ctx, rating.ToUserID, rating.Rating)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateRating) {
			zap.L().Error("can't create rating", zap.Int("serviceID", rating.ServiceID), zap.Error(err))
		}
		return err
	}

	zap.L().Info("rating created",
		zap.Int("serviceID", rating.ServiceID), zap.Int("toUserID", rating.ToUserID))
	s.notifier.Send(ctx, rating.ToUserID, notify.NewNotification(notify.TypeNewRating, rating.ServiceID,
		"Você recebeu uma nova avaliação pelo serviço \""+service.Title+"\"."))
	return nil
}

// ListForService returns the ratings of a service, visible to both
// participants.
func (s *Service) ListForService(ctx context.Context, userID, serviceID int) ([]domain.Rating, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	storeUserID, assemblerUserID, err := s.serviceRepo.FindParticipants(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if userID != storeUserID && userID != assemblerUserID {
		return nil, ErrNotParticipant
	}
	return s.ratingRepo.FindByServiceID(ctx, serviceID)
}

// Pending lists the completed services still waiting for userID's rating.
// A non-empty result blocks posting and applying elsewhere.
func (s *Service) Pending(ctx context.Context, userID int) ([]domain.PendingEvaluation, error) {
	return s.ratingRepo.FindPendingEvaluations(ctx, userID)
}
