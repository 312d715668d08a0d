package bankservice

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/pkg/validate"
	"go.uber.org/zap"
)

type BankRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.BankAccount, error)
	FindByID(ctx context.Context, id int) (*domain.BankAccount, error)
	Save(ctx context.Context, b *domain.BankAccount) error
	Update(ctx context.Context, b *domain.BankAccount) error
	Delete(ctx context.Context, id int) error
}

var (
	ErrAccountNotFound = errors.New("bank account not found")
	ErrNotOwner        = errors.New("bank account belongs to another user")
	ErrInvalidPixKey   = errors.New("PIX key does not match its declared type")
)

type Service struct {
	bankRepo BankRepo
}

func New(bankRepo BankRepo) *Service {
	return &Service{
		bankRepo: bankRepo,
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.BankAccount, error) {
	return s.bankRepo.FindByUserID(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, accountID int) (*domain.BankAccount, error) {
	return s.ownedAccount(ctx, userID, accountID)
}

func (s *Service) Create(ctx context.Context, userID int, account *domain.BankAccount) error {
	if account.PixKey != "" && !validate.IsPixKey(account.PixKeyType, account.PixKey) {
		return ErrInvalidPixKey
	}
	account.UserID = userID
	if err := s.bankRepo.Save(ctx, account); err != nil {
		return err
	}
	zap.L().Info("bank account created", zap.Int("accountID", account.ID), zap.Int("userID", userID))
	return nil
}

func (s *Service) Update(ctx context.Context, userID int, account *domain.BankAccount) error {
	existing, err := s.ownedAccount(ctx, userID, account.ID)
	if err != nil {
		return err
	}
	if account.PixKey != "" && !validate.IsPixKey(account.PixKeyType, account.PixKey) {
		return ErrInvalidPixKey
	}
	account.UserID = existing.UserID
	return s.bankRepo.Update(ctx, account)
}

func (s *Service) Delete(ctx context.Context, userID, accountID int) error {
	if _, err := s.ownedAccount(ctx, userID, accountID); err != nil {
		return err
	}
	return s.bankRepo.Delete(ctx, accountID)
}

func (s *Service) ownedAccount(ctx context.Context, userID, accountID int) (*domain.BankAccount, error) {
	account, err := s.bankRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.UserID != userID {
		return nil, ErrNotOwner
	}
	return account, nil
}
