package bankrepo

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bankColumns = `id, user_id, bank_name, account_type, agency, account_number,
        holder_name, holder_document, pix_key_type, pix_key, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.BankAccount, error) {
	var b domain.BankAccount
	err := row.Scan(
		&b.ID, &b.UserID, &b.BankName, &b.AccountType, &b.Agency, &b.AccountNumber,
		&b.HolderName, &b.HolderDocument, &b.PixKeyType, &b.PixKey, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankColumns + ` FROM bank_accounts WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get bank accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan bank account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.BankAccount, error) {
	account, err := scanAccount(r.db.QueryRow(ctx,
		`SELECT `+bankColumns+` FROM bank_accounts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bank account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Save(ctx context.Context, b *domain.BankAccount) error {
	query := `
        INSERT INTO bank_accounts (user_id, bank_name, account_type, agency, account_number,
            holder_name, holder_document, pix_key_type, pix_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		b.UserID, b.BankName, b.AccountType, b.Agency, b.AccountNumber,
		b.HolderName, b.HolderDocument, b.PixKeyType, b.PixKey,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		zap.L().Error("can't save bank account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, b *domain.BankAccount) error {
	query := `
        UPDATE bank_accounts
        SET bank_name = $1, account_type = $2, agency = $3, account_number = $4,
            holder_name = $5, holder_document = $6, pix_key_type = $7, pix_key = $8
        WHERE id = $9
    `
	_, err := r.db.Exec(ctx, query,
		b.BankName, b.AccountType, b.Agency, b.AccountNumber,
		b.HolderName, b.HolderDocument, b.PixKeyType, b.PixKey, b.ID,
	)
	if err != nil {
		zap.L().Error("can't update bank account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id); err != nil {
		zap.L().Error("can't delete bank account", zap.Error(err))
		return err
	}
	return nil
}
