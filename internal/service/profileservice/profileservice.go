package profileservice

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/geo"
	"github.com/amigomontador/backend/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type StoreRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) error
}

type AssemblerRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Assembler, error)
	Update(ctx context.Context, a *domain.Assembler) error
}

type Geocoder interface {
	Resolve(ctx context.Context, cep string) (*geo.Coordinates, error)
}

var ErrUserNotFound = errors.New("user not found")

// Profile aggregates the user row with its role profile. Exactly one of
// Store/Assembler is non-nil, matching the user type.
type Profile struct {
	User      *domain.User
	Store     *domain.Store
	Assembler *domain.Assembler
}

// Update carries the mutable profile fields; nil sub-structs are left
// untouched.
type Update struct {
	Name      string
	Email     string
	Phone     string
	Store     *domain.Store
	Assembler *domain.Assembler
}

type Service struct {
	userRepo      UserRepo
	storeRepo     StoreRepo
	assemblerRepo AssemblerRepo
	geocoder      Geocoder
	txManager     pg.TXManager
}

func New(userRepo UserRepo, storeRepo StoreRepo, assemblerRepo AssemblerRepo, geocoder Geocoder, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:      userRepo,
		storeRepo:     storeRepo,
		assemblerRepo: assemblerRepo,
		geocoder:      geocoder,
		txManager:     txManager,
	}
}

func (s *Service) Get(ctx context.Context, userID int) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := &Profile{User: user}
	switch user.UserType {
	case domain.UserTypeLojista:
		profile.Store, err = s.storeRepo.FindByUserID(ctx, userID)
	case domain.UserTypeMontador:
		profile.Assembler, err = s.assemblerRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		zap.L().Error("can't load role profile", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (s *Service) Update(ctx context.Context, userID int, upd Update) (*Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != "" {
		profile.User.Name = upd.Name
	}
	if upd.Email != "" {
		profile.User.Email = upd.Email
	}
	if upd.Phone != "" {
		profile.User.Phone = upd.Phone
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Update(ctx, profile.User); err != nil {
			return err
		}
		if upd.Store != nil && profile.Store != nil {
			previousCEP := profile.Store.CEP
			applyStoreUpdate(profile.Store, upd.Store)
			if profile.Store.CEP != previousCEP {
				s.regeocode(ctx, profile.Store.CEP, &profile.Store.Latitude, &profile.Store.Longitude)
			}
			if err := s.storeRepo.Update(ctx, profile.Store); err != nil {
				return err
			}
		}
		if upd.Assembler != nil && profile.Assembler != nil {
			previousCEP := profile.Assembler.CEP
			applyAssemblerUpdate(profile.Assembler, upd.Assembler)
			if profile.Assembler.CEP != previousCEP {
				s.regeocode(ctx, profile.Assembler.CEP, &profile.Assembler.Latitude, &profile.Assembler.Longitude)
			}
			if err := s.assemblerRepo.Update(ctx, profile.Assembler); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't update profile", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// regeocode refreshes coordinates after a CEP change. The old coordinates
// are dropped even when the lookup fails: distance filtering then treats
// the profile as unlocated instead of using the previous address.
func (s *Service) regeocode(ctx context.Context, cep string, lat, lng *float64) {
	*lat, *lng = 0, 0
	coords, err := s.geocoder.Resolve(ctx, cep)
	if err != nil {
		zap.L().Warn("can't geocode profile CEP", zap.String("cep", cep), zap.Error(err))
		return
	}
	*lat = coords.Latitude
	*lng = coords.Longitude
}

func applyStoreUpdate(dst, src *domain.Store) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Address != "" {
		dst.Address = src.Address
	}
	if src.City != "" {
		dst.City = src.City
	}
	if src.State != "" {
		dst.State = src.State
	}
	if src.CEP != "" {
		dst.CEP = src.CEP
	}
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.LogoURL != "" {
		dst.LogoURL = src.LogoURL
	}
	if src.MaterialTypes != nil {
		dst.MaterialTypes = src.MaterialTypes
	}
}

func applyAssemblerUpdate(dst, src *domain.Assembler) {
	if src.Address != "" {
		dst.Address = src.Address
	}
	if src.City != "" {
		dst.City = src.City
	}
	if src.State != "" {
		dst.State = src.State
	}
	if src.CEP != "" {
		dst.CEP = src.CEP
	}
	if src.Specialties != nil {
		dst.Specialties = src.Specialties
	}
	if src.Experience != "" {
		dst.Experience = src.Experience
	}
	if src.WorkRadiusKm > 0 {
		dst.WorkRadiusKm = src.WorkRadiusKm
	}
	if src.Documents != nil {
		dst.Documents = src.Documents
	}
	dst.TechnicalAssistance = src.TechnicalAssistance
}
