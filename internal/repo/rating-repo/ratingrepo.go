package ratingrepo

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate is returned when a (service, fromUser, toUser) rating
// already exists. The unique index is the authority, not a prior SELECT.
var ErrDuplicate = errors.New("rating already exists")

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, rating *domain.Rating) error {
	query := `
        INSERT INTO ratings (service_id, from_user_id, to_user_id, rating, comment)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		rating.ServiceID, rating.FromUserID, rating.ToUserID, rating.Rating, rating.Comment,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		zap.L().Error("can't save rating", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByServiceID(ctx context.Context, serviceID int) ([]domain.Rating, error) {
	query := `
        SELECT id, service_id, from_user_id, to_user_id, rating, comment, created_at
        FROM ratings
        WHERE service_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't get ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.ServiceID, &rt.FromUserID, &rt.ToUserID, &rt.Rating, &rt.Comment, &rt.CreatedAt); err != nil {
			zap.L().Error("can't scan rating row", zap.Error(err))
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

// FindPendingEvaluations lists completed services where userID participated
// (as store owner or as accepted assembler) and has not yet rated the
// counterpart.
func (r *Repository) FindPendingEvaluations(ctx context.Context, userID int) ([]domain.PendingEvaluation, error) {
	query := `
        SELECT s.id, s.title, u.id, u.name, u.user_type
        FROM services s
        JOIN stores st ON st.id = s.store_id
        JOIN applications a ON a.service_id = s.id AND a.status = 'accepted'
        JOIN assemblers asm ON asm.id = a.assembler_id
        JOIN users u ON u.id = asm.user_id
        WHERE s.status = 'completed' AND st.user_id = $1
          AND NOT EXISTS (
            SELECT 1 FROM ratings r
            WHERE r.service_id = s.id AND r.from_user_id = $1 AND r.to_user_id = u.id
          )
        UNION ALL
        SELECT s.id, s.title, u.id, u.name, u.user_type
        FROM services s
        JOIN applications a ON a.service_id = s.id AND a.status = 'accepted'
        JOIN assemblers asm ON asm.id = a.assembler_id AND asm.user_id = $1
        JOIN stores st ON st.id = s.store_id
        JOIN users u ON u.id = st.user_id
        WHERE s.status = 'completed'
          AND NOT EXISTS (
            SELECT 1 FROM ratings r
            WHERE r.service_id = s.id AND r.from_user_id = $1 AND r.to_user_id = u.id
          )
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get pending evaluations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingEvaluation
	for rows.Next() {
		var p domain.PendingEvaluation
		if err := rows.Scan(&p.ServiceID, &p.ServiceTitle, &p.OtherUserID, &p.OtherUserName, &p.OtherUserType); err != nil {
			zap.L().Error("can't scan pending evaluation row", zap.Error(err))
			return nil, err
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}
