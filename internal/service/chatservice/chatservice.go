package chatservice

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/notify"
	"go.uber.org/zap"
)

type MessageRepo interface {
	FindByServiceID(ctx context.Context, serviceID int) ([]domain.Message, error)
	Save(ctx context.Context, m *domain.Message) error
	MarkRead(ctx context.Context, serviceID, userID int) error
	CountUnread(ctx context.Context, userID int) (int, error)
}

type ServiceRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Service, error)
	FindParticipants(ctx context.Context, serviceID int) (storeUserID, assemblerUserID int, err error)
}

type AssemblerRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Assembler, error)
}

type ApplicationRepo interface {
	FindByServiceAndAssembler(ctx context.Context, serviceID, assemblerID int) (*domain.Application, error)
}

type Notifier interface {
	Send(ctx context.Context, userID int, notification notify.Notification) bool
}

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrNotParticipant   = errors.New("not a participant of this service")
	ErrServiceCancelled = errors.New("service was cancelled")
)

// Service is the per-service chat between the store owner and the
// assemblers who applied.
type Service struct {
	messageRepo     MessageRepo
	serviceRepo     ServiceRepo
	assemblerRepo   AssemblerRepo
	applicationRepo ApplicationRepo
	notifier        Notifier
}

func New(messageRepo MessageRepo, serviceRepo ServiceRepo, assemblerRepo AssemblerRepo,
	applicationRepo ApplicationRepo, notifier Notifier) *Service {
	return &Service{
		messageRepo:     messageRepo,
		serviceRepo:     serviceRepo,
		assemblerRepo:   assemblerRepo,
		applicationRepo: applicationRepo,
		notifier:        notifier,
	}
}

func (s *Service) List(ctx context.Context, userID, serviceID int) ([]domain.Message, error) {
	if _, err := s.requireParticipant(ctx, userID, serviceID); err != nil {
		return nil, err
	}
	return s.messageRepo.FindByServiceID(ctx, serviceID)
}

// Send stores a message and pushes a new_message event to the counterpart.
// Cancelled services are read-only.
func (s *Service) Send(ctx context.Context, userID, serviceID int, content string) (*domain.Message, error) {
	service, err := s.requireParticipant(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	if service.Status == domain.ServiceStatusCancelled {
		return nil, ErrServiceCancelled
	}

	message := &domain.Message{
		ServiceID: serviceID,
		SenderID:  userID,
		Content:   content,
	}
	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	s.notifyCounterpart(ctx, userID, service)
	return message, nil
}

// MarkRead records read receipts for every message the counterpart sent in
// this service.
func (s *Service) MarkRead(ctx context.Context, userID, serviceID int) error {
	if _, err := s.requireParticipant(ctx, userID, serviceID); err != nil {
		return err
	}
	return s.messageRepo.MarkRead(ctx, serviceID, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID int) (int, error) {
	return s.messageRepo.CountUnread(ctx, userID)
}

// requireParticipant admits the store owner and any assembler with an
// application that was not rejected. Applicants chat before acceptance.
func (s *Service) requireParticipant(ctx context.Context, userID, serviceID int) (*domain.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	storeUserID, _, err := s.serviceRepo.FindParticipants(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if userID == storeUserID {
		return service, nil
	}

	assembler, err := s.assemblerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assembler != nil {
		application, err := s.applicationRepo.FindByServiceAndAssembler(ctx, serviceID, assembler.ID)
		if err != nil {
			return nil, err
		}
		if application != nil && application.Status != domain.ApplicationStatusRejected {
			return service, nil
		}
	}
	return nil, ErrNotParticipant
}

// notifyCounterpart pushes new_message to the other side: the accepted
// assembler when the store owner writes, the store owner otherwise.
func (s *Service) notifyCounterpart(ctx context.Context, senderID int, service *domain.Service) {
	storeUserID, assemblerUserID, err := s.serviceRepo.FindParticipants(ctx, service.ID)
	if err != nil {
		zap.L().Warn("can't resolve chat counterpart", zap.Int("serviceID", service.ID), zap.Error(err))
		return
	}

	recipient := storeUserID
	if senderID == storeUserID {
		if assemblerUserID == 0 {
			return
		}
		recipient = assemblerUserID
	}
	s.notifier.Send(ctx, recipient, notify.NewNotification(notify.TypeNewMessage, service.ID,
		"Nova mensagem no serviço \""+service.Title+"\"."))
}
