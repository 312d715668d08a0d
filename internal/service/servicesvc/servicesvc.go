package servicesvc

import (
	"context"
	"errors"
	"sort"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/geo"
	"github.com/amigomontador/backend/internal/notify"
	"go.uber.org/zap"
)

type ServiceRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Service, error)
	Save(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, service *domain.Service) (bool, error)
	FindOpenByMaterialTypes(ctx context.Context, materialTypes []string) ([]domain.Service, error)
	FindByStoreID(ctx context.Context, storeID int, statuses []string) ([]domain.Service, error)
	FindByAssemblerID(ctx context.Context, assemblerID int, statuses []string) ([]domain.Service, error)
	UpdateStatus(ctx context.Context, id int, fromStatuses []string, to string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	FindParticipants(ctx context.Context, serviceID int) (storeUserID, assemblerUserID int, err error)
}

type StoreRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Store, error)
}

type AssemblerRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Assembler, error)
}

type ApplicationRepo interface {
	FindByServiceAndAssembler(ctx context.Context, serviceID, assemblerID int) (*domain.Application, error)
}

type RatingRepo interface {
	FindPendingEvaluations(ctx context.Context, userID int) ([]domain.PendingEvaluation, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, cep string) (*geo.Coordinates, error)
}

type Notifier interface {
	Send(ctx context.Context, userID int, notification notify.Notification) bool
}

var (
	ErrStoreNotFound      = errors.New("store profile not found")
	ErrAssemblerNotFound  = errors.New("assembler profile not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrNotOwner           = errors.New("service belongs to another store")
	ErrNotAllowed         = errors.New("no access to this service")
	ErrServiceNotOpen     = errors.New("service is no longer open")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrPendingEvaluations = errors.New("pending evaluations must be submitted first")
)

// transitions lists the legal status edges a store owner may request.
var transitions = map[string][]string{
	domain.ServiceStatusInProgress: {domain.ServiceStatusOpen},
	domain.ServiceStatusCompleted:  {domain.ServiceStatusInProgress},
	domain.ServiceStatusCancelled:  {domain.ServiceStatusOpen, domain.ServiceStatusInProgress},
}

type Service struct {
	serviceRepo     ServiceRepo
	storeRepo       StoreRepo
	assemblerRepo   AssemblerRepo
	applicationRepo ApplicationRepo
	ratingRepo      RatingRepo
	geocoder        Geocoder
	notifier        Notifier
}

func New(serviceRepo ServiceRepo, storeRepo StoreRepo, assemblerRepo AssemblerRepo,
	applicationRepo ApplicationRepo, ratingRepo RatingRepo, geocoder Geocoder, notifier Notifier) *Service {
	return &Service{
		serviceRepo:     serviceRepo,
		storeRepo:       storeRepo,
		assemblerRepo:   assemblerRepo,
		applicationRepo: applicationRepo,
		ratingRepo:      ratingRepo,
		geocoder:        geocoder,
		notifier:        notifier,
	}
}

// Create posts a new service for the store owned by userID. A store with
// unsubmitted ratings for completed services may not post new work.
func (s *Service) Create(ctx context.Context, userID int, service *domain.Service) error {
	store, err := s.storeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrStoreNotFound
	}

	pending, err := s.ratingRepo.FindPendingEvaluations(ctx, userID)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		zap.L().Info("service creation blocked by pending evaluations",
			zap.Int("userID", userID), zap.Int("pending", len(pending)))
		return ErrPendingEvaluations
	}

	service.StoreID = store.ID
	service.Status = domain.ServiceStatusOpen
	if service.Latitude == 0 && service.Longitude == 0 {
		coords, err := s.geocoder.Resolve(ctx, service.CEP)
		if err != nil {
			zap.L().Warn("can't geocode service CEP", zap.String("cep", service.CEP), zap.Error(err))
		} else {
			service.Latitude = coords.Latitude
			service.Longitude = coords.Longitude
		}
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return err
	}
	zap.L().Info("service created", zap.Int("serviceID", service.ID), zap.Int("storeID", store.ID))
	return nil
}

// Edit carries the editable service fields; zero values leave the stored
// field untouched.
type Edit struct {
	Title        string
	Description  string
	Location     string
	StartDate    string
	EndDate      string
	Price        float64
	MaterialType string
}

// EditService rewrites the editable fields of a service that is still open,
// on behalf of its store owner. Work underway only changes through status
// transitions.
func (s *Service) EditService(ctx context.Context, userID, serviceID int, upd Edit) (*domain.Service, error) {
	service, err := s.ownedService(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	if service.Status != domain.ServiceStatusOpen {
		return nil, ErrServiceNotOpen
	}

	applyServiceEdit(service, upd)
	changed, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrServiceNotOpen
	}
	zap.L().Info("service updated", zap.Int("serviceID", serviceID))
	return service, nil
}

func applyServiceEdit(dst *domain.Service, upd Edit) {
	if upd.Title != "" {
		dst.Title = upd.Title
	}
	if upd.Description != "" {
		dst.Description = upd.Description
	}
	if upd.Location != "" {
		dst.Location = upd.Location
	}
	if upd.StartDate != "" {
		dst.StartDate = upd.StartDate
	}
	if upd.EndDate != "" {
		dst.EndDate = upd.EndDate
	}
	if upd.Price > 0 {
		dst.Price = upd.Price
	}
	if upd.MaterialType != "" {
		dst.MaterialType = upd.MaterialType
	}
}

// Browse lists open services matching the assembler's specialties, within
// the assembler's work radius, closest first. Services without coordinates
// are kept at the end of the list.
func (s *Service) Browse(ctx context.Context, userID int) ([]domain.ServiceWithDistance, error) {
	assembler, err := s.assemblerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assembler == nil {
		return nil, ErrAssemblerNotFound
	}

	services, err := s.serviceRepo.FindOpenByMaterialTypes(ctx, assembler.Specialties)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ServiceWithDistance, 0, len(services))
	for _, svc := range services {
		item := domain.ServiceWithDistance{Service: svc, DistanceKm: -1}
		if svc.Latitude != 0 || svc.Longitude != 0 {
			item.DistanceKm = geo.Distance(assembler.Latitude, assembler.Longitude, svc.Latitude, svc.Longitude)
			if assembler.WorkRadiusKm > 0 && item.DistanceKm > float64(assembler.WorkRadiusKm) {
				continue
			}
		}
		result = append(result, item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].DistanceKm < 0 || result[j].DistanceKm < 0 {
			return result[j].DistanceKm < 0 && result[i].DistanceKm >= 0
		}
		return result[i].DistanceKm < result[j].DistanceKm
	})
	return result, nil
}

// Active lists the user's open and in-progress services: posted ones for a
// store owner, applied-to ones for an assembler.
func (s *Service) Active(ctx context.Context, userID int, userType string) ([]domain.Service, error) {
	statuses := []string{domain.ServiceStatusOpen, domain.ServiceStatusInProgress}
	switch userType {
	case domain.UserTypeLojista:
		store, err := s.storeRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, ErrStoreNotFound
		}
		return s.serviceRepo.FindByStoreID(ctx, store.ID, statuses)
	case domain.UserTypeMontador:
		assembler, err := s.assemblerRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if assembler == nil {
			return nil, ErrAssemblerNotFound
		}
		return s.serviceRepo.FindByAssemblerID(ctx, assembler.ID, statuses)
	}
	return nil, nil
}

// History lists the user's completed and cancelled services.
func (s *Service) History(ctx context.Context, userID int, userType string) ([]domain.Service, error) {
	statuses := []string{domain.ServiceStatusCompleted, domain.ServiceStatusCancelled}
	switch userType {
	case domain.UserTypeLojista:
		store, err := s.storeRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, ErrStoreNotFound
		}
		return s.serviceRepo.FindByStoreID(ctx, store.ID, statuses)
	case domain.UserTypeMontador:
		assembler, err := s.assemblerRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if assembler == nil {
			return nil, ErrAssemblerNotFound
		}
		return s.serviceRepo.FindByAssemblerID(ctx, assembler.ID, statuses)
	}
	return nil, nil
}

// Get returns a service visible to userID: its store owner, any assembler
// while the service is open, or an assembler who applied to it.
func (s *Service) Get(ctx context.Context, userID int, serviceID int) (*domain.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	if service.Status == domain.ServiceStatusOpen {
		return service, nil
	}

	storeUserID, assemblerUserID, err := s.serviceRepo.FindParticipants(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if userID == storeUserID || (assemblerUserID != 0 && userID == assemblerUserID) {
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
		if application != nil {
			return service, nil
		}
	}
	return nil, ErrNotAllowed
}

// Transition moves a service along a legal status edge on behalf of its
// store owner. The conditional update loses quietly when a racing request
// already moved the service.
func (s *Service) Transition(ctx context.Context, userID, serviceID int, to string) error {
	fromStatuses, ok := transitions[to]
	if !ok {
		return ErrInvalidTransition
	}

	service, err := s.ownedService(ctx, userID, serviceID)
	if err != nil {
		return err
	}

	changed, err := s.serviceRepo.UpdateStatus(ctx, serviceID, fromStatuses, to)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidTransition
	}

	zap.L().Info("service status changed",
		zap.Int("serviceID", serviceID), zap.String("from", service.Status), zap.String("to", to))

	if to == domain.ServiceStatusCompleted {
		s.notifyCompleted(ctx, service)
	}
	return nil
}

// Complete is the in-progress -> completed edge, after which both sides owe
// each other a rating.
func (s *Service) Complete(ctx context.Context, userID, serviceID int) error {
	return s.Transition(ctx, userID, serviceID, domain.ServiceStatusCompleted)
}

// Delete removes an open service. Services with work underway are cancelled
// through Transition instead.
func (s *Service) Delete(ctx context.Context, userID, serviceID int) error {
	if _, err := s.ownedService(ctx, userID, serviceID); err != nil {
		return err
	}
	deleted, err := s.serviceRepo.Delete(ctx, serviceID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceNotOpen
	}
	zap.L().Info("service deleted", zap.Int("serviceID", serviceID))
	return nil
}

func (s *Service) ownedService(ctx context.Context, userID, serviceID int) (*domain.Service, error) {
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
	return service, nil
}

// notifyCompleted tells both participants the service finished and a rating
// is now owed. Best-effort.
func (s *Service) notifyCompleted(ctx context.Context, service *domain.Service) {
	storeUserID, assemblerUserID, err := s.serviceRepo.FindParticipants(ctx, service.ID)
	if err != nil {
		return
	}

	message := "O serviço \"" + service.Title + "\" foi concluído. Avalie sua experiência!"
	s.notifier.Send(ctx, storeUserID, notify.NewNotification(notify.TypeServiceCompleted, service.ID, message))
	if assemblerUserID != 0 {
		s.notifier.Send(ctx, assemblerUserID, notify.NewNotification(notify.TypeServiceCompleted, service.ID, message))
	}
}
