package assemblerrepo

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const assemblerColumns = `id, user_id, address, city, state, cep, latitude, longitude,
        specialties, technical_assistance, experience, work_radius_km,
        rating_avg, rating_count, documents`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAssembler(row pgx.Row) (*domain.Assembler, error) {
	var a domain.Assembler
	err := row.Scan(
		&a.ID, &a.UserID, &a.Address, &a.City, &a.State, &a.CEP,
		&a.Latitude, &a.Longitude, &a.Specialties, &a.TechnicalAssistance,
		&a.Experience, &a.WorkRadiusKm, &a.RatingAvg, &a.RatingCount, &a.Documents,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Assembler, error) {
	assembler, err := scanAssembler(r.db.QueryRow(ctx,
		`SELECT `+assemblerColumns+` FROM assemblers WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find assembler by user id", zap.Error(err))
		return nil, err
	}
	return assembler, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Assembler, error) {
	assembler, err := scanAssembler(r.db.QueryRow(ctx,
		`SELECT `+assemblerColumns+` FROM assemblers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find assembler by id", zap.Error(err))
		return nil, err
	}
	return assembler, nil
}

func (r *Repository) Create(ctx context.Context, a *domain.Assembler) (*domain.Assembler, error) {
	query := `
        INSERT INTO assemblers (user_id, address, city, state, cep, latitude, longitude,
            specialties, technical_assistance, experience, work_radius_km, documents)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		a.UserID, a.Address, a.City, a.State, a.CEP, a.Latitude, a.Longitude,
		a.Specialties, a.TechnicalAssistance, a.Experience, a.WorkRadiusKm, a.Documents,
	).Scan(&a.ID)
	if err != nil {
		zap.L().Error("can't save assembler", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) Update(ctx context.Context, a *domain.Assembler) error {
	query := `
        UPDATE assemblers
        SET address = $1, city = $2, state = $3, cep = $4, latitude = $5, longitude = $6,
            specialties = $7, technical_assistance = $8, experience = $9,
            work_radius_km = $10, documents = $11
        WHERE id = $12
    `
	_, err := r.db.Exec(ctx, query,
		a.Address, a.City, a.State, a.CEP, a.Latitude, a.Longitude,
		a.Specialties, a.TechnicalAssistance, a.Experience,
		a.WorkRadiusKm, a.Documents, a.ID,
	)
	if err != nil {
		zap.L().Error("can't update assembler", zap.Error(err))
		return err
	}
	return nil
}

// AddRating folds one more rating into the stored aggregate for the
// assembler owned by userID.
func (r *Repository) AddRating(ctx context.Context, userID int, rating int) error {
	query := `
        UPDATE assemblers
        SET rating_avg = (rating_avg * rating_count + $1) / (rating_count + 1),
            rating_count = rating_count + 1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, rating, userID)
	if err != nil {
		zap.L().Error("can't update assembler rating", zap.Error(err))
		return err
	}
	return nil
}
