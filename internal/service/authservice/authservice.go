package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/geo"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/validate"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type StoreRepo interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
}

type AssemblerRepo interface {
	Create(ctx context.Context, assembler *domain.Assembler) (*domain.Assembler, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, cep string) (*geo.Coordinates, error)
}

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrMissingProfile  = errors.New("profile data missing for user type")
	ErrInvalidDocument = errors.New("invalid document number")
	ErrInvalidCreds    = errors.New("invalid credentials")
)

// Registration carries the profile created together with the user. Exactly
// one of Store/Assembler must be set, matching the user type.
type Registration struct {
	User      *domain.User
	Password  string
	Store     *domain.Store
	Assembler *domain.Assembler
}

type Service struct {
	userRepo      UserRepo
	storeRepo     StoreRepo
	assemblerRepo AssemblerRepo
	geocoder      Geocoder
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	txManager     pg.TXManager
}

func New(userRepo UserRepo, storeRepo StoreRepo, assemblerRepo AssemblerRepo, geocoder Geocoder,
	hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:      userRepo,
		storeRepo:     storeRepo,
		assemblerRepo: assemblerRepo,
		geocoder:      geocoder,
		hashService:   hashService,
		jwtService:    jwtService,
		txManager:     txManager,
	}
}

func (s *Service) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, reg.User.Username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", reg.User.Username))
		return nil, ErrUsernameTaken
	}

	switch reg.User.UserType {
	case domain.UserTypeLojista:
		if reg.Store == nil {
			return nil, ErrMissingProfile
		}
		if !validDocument(reg.Store.DocumentType, reg.Store.DocumentNumber) {
			return nil, ErrInvalidDocument
		}
	case domain.UserTypeMontador:
		if reg.Assembler == nil {
			return nil, ErrMissingProfile
		}
	}

	hashedPassword, err := s.hashService.HashPassword(reg.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	reg.User.PasswordHash = hashedPassword

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newUser, err := s.userRepo.Create(ctx, reg.User)
		if err != nil {
			return err
		}
		switch reg.User.UserType {
		case domain.UserTypeLojista:
			reg.Store.UserID = newUser.ID
			s.geocodeProfile(ctx, reg.Store.CEP, &reg.Store.Latitude, &reg.Store.Longitude)
			if _, err := s.storeRepo.Create(ctx, reg.Store); err != nil {
				return err
			}
		case domain.UserTypeMontador:
			reg.Assembler.UserID = newUser.ID
			s.geocodeProfile(ctx, reg.Assembler.CEP, &reg.Assembler.Latitude, &reg.Assembler.Longitude)
			if _, err := s.assemblerRepo.Create(ctx, reg.Assembler); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered",
		zap.String("username", reg.User.Username), zap.String("userType", reg.User.UserType))
	return reg.User, nil
}

// geocodeProfile fills coordinates from the CEP, best-effort. A profile
// without coordinates still registers; distance filtering degrades for it.
func (s *Service) geocodeProfile(ctx context.Context, cep string, lat, lng *float64) {
	if *lat != 0 || *lng != 0 {
		return
	}
	coords, err := s.geocoder.Resolve(ctx, cep)
	if err != nil {
		zap.L().Warn("can't geocode profile CEP", zap.String("cep", cep), zap.Error(err))
		return
	}
	*lat = coords.Latitude
	*lng = coords.Longitude
}

func validDocument(documentType, documentNumber string) bool {
	switch documentType {
	case "cpf":
		return validate.IsCPF(documentNumber)
	case "cnpj":
		return validate.IsCNPJ(documentNumber)
	default:
		return false
	}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCreds
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCreds
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(userID int, userType string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, userType, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
