package applicationservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/notify"
	"github.com/amigomontador/backend/internal/pg"
	applicationrepo "github.com/amigomontador/backend/internal/repo/application-repo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ApplicationRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Application, error)
	FindByServiceAndAssembler(ctx context.Context, serviceID, assemblerID int) (*domain.Application, error)
	FindByServiceID(ctx context.Context, serviceID int) ([]domain.Application, error)
	Save(ctx context.Context, a *domain.Application) error
	Accept(ctx context.Context, id, serviceID int) (bool, error)
	RejectSiblings(ctx context.Context, serviceID, acceptedID int) error
	Reject(ctx context.Context, id int) (bool, error)
	CountActive(ctx context.Context, serviceID int) (int, error)
}

type ServiceRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Service, error)
	UpdateStatus(ctx context.Context, id int, fromStatuses []string, to string) (bool, error)
	FindParticipants(ctx context.Context, serviceID int) (storeUserID, assemblerUserID int, err error)
}

type StoreRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Store, error)
	FindByID(ctx context.Context, id int) (*domain.Store, error)
}

type AssemblerRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Assembler, error)
	FindByID(ctx context.Context, id int) (*domain.Assembler, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type MessageRepo interface {
	Save(ctx context.Context, m *domain.Message) error
}

type RatingRepo interface {
	FindPendingEvaluations(ctx context.Context, userID int) ([]domain.PendingEvaluation, error)
}

type Notifier interface {
	Send(ctx context.Context, userID int, notification notify.Notification) bool
}

var (
	ErrAssemblerNotFound   = errors.New("assembler profile not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceUnavailable  = errors.New("service no longer accepts applications")
	ErrAlreadyApplied      = errors.New("already applied to this service")
	ErrPendingEvaluations  = errors.New("pending evaluations must be submitted first")
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotOwner            = errors.New("service belongs to another store")
	ErrAlreadyDecided      = errors.New("application already decided")
)

// ApplicationDetails joins an application with the applying assembler for
// the store owner's listing.
type ApplicationDetails struct {
	Application   domain.Application
	AssemblerName string
	RatingAvg     float64
	RatingCount   int
	City          string
	State         string
}

type Service struct {
	applicationRepo ApplicationRepo
	serviceRepo     ServiceRepo
	storeRepo       StoreRepo
	assemblerRepo   AssemblerRepo
	userRepo        UserRepo
	messageRepo     MessageRepo
	ratingRepo      RatingRepo
	txManager       pg.TXManager
	notifier        Notifier
}

func New(applicationRepo ApplicationRepo, serviceRepo ServiceRepo, storeRepo StoreRepo,
	assemblerRepo AssemblerRepo, userRepo UserRepo, messageRepo MessageRepo,
	ratingRepo RatingRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		applicationRepo: applicationRepo,
		serviceRepo:     serviceRepo,
		storeRepo:       storeRepo,
		assemblerRepo:   assemblerRepo,
		userRepo:        userRepo,
		messageRepo:     messageRepo,
		ratingRepo:      ratingRepo,
		txManager:       txManager,
		notifier:        notifier,
	}
}

// Apply registers the assembler's candidacy: the application, the opening
// chat message and the open -> in-progress flip land in one transaction.
// An assembler owing ratings for completed services may not apply.
func (s *Service) Apply(ctx context.Context, userID, serviceID int) (*domain.Application, error) {
	assembler, err := s.assemblerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assembler == nil {
		return nil, ErrAssemblerNotFound
	}

	pending, err := s.ratingRepo.FindPendingEvaluations(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		zap.L().Info("application blocked by pending evaluations",
			zap.Int("userID", userID), zap.Int("pending", len(pending)))
		return nil, ErrPendingEvaluations
	}

	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	if service.Status != domain.ServiceStatusOpen && service.Status != domain.ServiceStatusInProgress {
		return nil, ErrServiceUnavailable
	}

	existing, err := s.applicationRepo.FindByServiceAndAssembler(ctx, serviceID, assembler.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	application := &domain.Application{
		ServiceID:   serviceID,
		AssemblerID: assembler.ID,
		Status:      domain.ApplicationStatusPending,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.applicationRepo.Save(ctx, application); err != nil {
			return err
		}
		// first applicant flips the service off the open listing
		if _, err := s.serviceRepo.UpdateStatus(ctx, serviceID,
			[]string{domain.ServiceStatusOpen}, domain.ServiceStatusInProgress); err != nil {
			return err
		}
		opening := &domain.Message{
			ServiceID: serviceID,
			SenderID:  userID,
			Content: fmt.Sprintf(
				"Olá! Eu sou %s e me candidatei para realizar este serviço. Estou à disposição para conversarmos.",
				user.Name),
		}
		return s.messageRepo.Save(ctx, opening)
	})
	if err != nil {
		zap.L().Error("can't apply to service", zap.Int("serviceID", serviceID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("application created",
		zap.Int("applicationID", application.ID), zap.Int("serviceID", serviceID))

	if store, err := s.storeRepo.FindByID(ctx, service.StoreID); err == nil && store != nil {
		s.notifier.Send(ctx, store.UserID, notify.NewNotification(notify.TypeNewApplication, serviceID,
			fmt.Sprintf("%s se candidatou ao serviço \"%s\".", user.Name, service.Title)))
	}
	return application, nil
}

// Accept picks one pending application as the winner: the conditional
// update guards against a sibling that already won, the remaining pending
// siblings are rejected and the service is pinned in progress.
func (s *Service) Accept(ctx context.Context, userID, applicationID int) error {
	application, service, err := s.ownedApplication(ctx, userID, applicationID)
	if err != nil {
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		accepted, err := s.applicationRepo.Accept(ctx, applicationID, application.ServiceID)
		if errors.Is(err, applicationrepo.ErrSiblingAccepted) {
			return ErrAlreadyDecided
		}
		if err != nil {
			return err
		}
		if !accepted {
			return ErrAlreadyDecided
		}
		if err := s.applicationRepo.RejectSiblings(ctx, application.ServiceID, applicationID); err != nil {
			return err
		}
		_, err = s.serviceRepo.UpdateStatus(ctx, application.ServiceID,
			[]string{domain.ServiceStatusOpen}, domain.ServiceStatusInProgress)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyDecided) {
			zap.L().Error("can't accept application", zap.Int("applicationID", applicationID), zap.Error(err))
		}
		return err
	}

	zap.L().Info("application accepted",
		zap.Int("applicationID", applicationID), zap.Int("serviceID", application.ServiceID))
	s.notifyAssembler(ctx, application.AssemblerID, notify.TypeApplicationAccepted, service,
		fmt.Sprintf("Sua candidatura ao serviço \"%s\" foi aceita!", service.Title))
	return nil
}

// Reject declines one pending application. When no pending or accepted
// application remains, the service returns to the open listing.
func (s *Service) Reject(ctx context.Context, userID, applicationID int) error {
	application, service, err := s.ownedApplication(ctx, userID, applicationID)
	if err != nil {
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		rejected, err := s.applicationRepo.Reject(ctx, applicationID)
		if err != nil {
			return err
		}
		if !rejected {
			return ErrAlreadyDecided
		}
		active, err := s.applicationRepo.CountActive(ctx, application.ServiceID)
		if err != nil {
			return err
		}
		if active == 0 {
			_, err = s.serviceRepo.UpdateStatus(ctx, application.ServiceID,
				[]string{domain.ServiceStatusInProgress}, domain.ServiceStatusOpen)
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyDecided) {
			zap.L().Error("can't reject application", zap.Int("applicationID", applicationID), zap.Error(err))
		}
		return err
	}

	zap.L().Info("application rejected",
		zap.Int("applicationID", applicationID), zap.Int("serviceID", application.ServiceID))
	s.notifyAssembler(ctx, application.AssemblerID, notify.TypeApplicationRejected, service,
		fmt.Sprintf("Sua candidatura ao serviço \"%s\" não foi aceita.", service.Title))
	return nil
}

// ListForService returns the service's applications with each assembler's
// name and rating, for the store owner.
func (s *Service) ListForService(ctx context.Context, userID, serviceID int) ([]ApplicationDetails, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	store, err := s.storeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if store == nil || store.ID != service.StoreID {
		return nil, ErrNotOwner
	}

	applications, err := s.applicationRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	details := make([]ApplicationDetails, len(applications))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, application := range applications {
		g.Go(func() error {
			item := ApplicationDetails{Application: application}
			assembler, err := s.assemblerRepo.FindByID(ctx, application.AssemblerID)
			if err != nil {
				return err
			}
			if assembler != nil {
				item.RatingAvg = assembler.RatingAvg
				item.RatingCount = assembler.RatingCount
				item.City = assembler.City
				item.State = assembler.State
				if user, err := s.userRepo.FindByID(ctx, assembler.UserID); err == nil && user != nil {
					item.AssemblerName = user.Name
				}
			}
			details[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *Service) ownedApplication(ctx context.Context, userID, applicationID int) (*domain.Application, *domain.Service, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	if application == nil {
		return nil, nil, ErrApplicationNotFound
	}
	service, err := s.serviceRepo.FindByID(ctx, application.ServiceID)
	if err != nil {
		return nil, nil, err
	}
	if service == nil {
		return nil, nil, ErrServiceNotFound
	}
	store, err := s.storeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if store == nil || store.ID != service.StoreID {
		return nil, nil, ErrNotOwner
	}
	return application, service, nil
}

func (s *Service) notifyAssembler(ctx context.Context, assemblerID int, notificationType string, service *domain.Service, message string) {
	assembler, err := s.assemblerRepo.FindByID(ctx, assemblerID)
	if err != nil || assembler == nil {
		return
	}
	s.notifier.Send(ctx, assembler.UserID, notify.NewNotification(notificationType, service.ID, message))
}
