package storerepo

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const storeColumns = `id, user_id, name, document_type, document_number, address,
        city, state, cep, latitude, longitude, phone, logo_url, material_types`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanStore(row pgx.Row) (*domain.Store, error) {
	var store domain.Store
	err := row.Scan(
		&store.ID, &store.UserID, &store.Name, &store.DocumentType, &store.DocumentNumber,
		&store.Address, &store.City, &store.State, &store.CEP,
		&store.Latitude, &store.Longitude, &store.Phone, &store.LogoURL, &store.MaterialTypes,
	)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Store, error) {
	store, err := scanStore(r.db.QueryRow(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find store by user id", zap.Error(err))
		return nil, err
	}
	return store, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Store, error) {
	store, err := scanStore(r.db.QueryRow(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find store by id", zap.Error(err))
		return nil, err
	}
	return store, nil
}

func (r *Repository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	query := `
        INSERT INTO stores (user_id, name, document_type, document_number, address,
            city, state, cep, latitude, longitude, phone, logo_url, material_types)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		store.UserID, store.Name, store.DocumentType, store.DocumentNumber, store.Address,
		store.City, store.State, store.CEP, store.Latitude, store.Longitude,
		store.Phone, store.LogoURL, store.MaterialTypes,
	).Scan(&store.ID)
	if err != nil {
		zap.L().Error("can't save store", zap.Error(err))
		return nil, err
	}
	return store, nil
}

func (r *Repository) Update(ctx context.Context, store *domain.Store) error {
	query := `
        UPDATE stores
        SET name = $1, document_type = $2, document_number = $3, address = $4,
            city = $5, state = $6, cep = $7, latitude = $8, longitude = $9,
            phone = $10, logo_url = $11, material_types = $12
        WHERE id = $13
    `
	_, err := r.db.Exec(ctx, query,
		store.Name, store.DocumentType, store.DocumentNumber, store.Address,
		store.City, store.State, store.CEP, store.Latitude, store.Longitude,
		store.Phone, store.LogoURL, store.MaterialTypes, store.ID,
	)
	if err != nil {
		zap.L().Error("can't update store", zap.Error(err))
		return err
	}
	return nil
}
