package applicationrepo

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrSiblingAccepted is returned when the partial unique index fires: two
// accepts raced past the NOT EXISTS guard in separate transactions and the
// other one committed first.
var ErrSiblingAccepted = errors.New("another application already accepted")

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Application, error) {
	query := `
        SELECT id, service_id, assembler_id, status, created_at
        FROM applications
        WHERE id = $1
    `
	var a domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.ServiceID, &a.AssemblerID, &a.Status, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByServiceAndAssembler(ctx context.Context, serviceID, assemblerID int) (*domain.Application, error) {
	query := `
        SELECT id, service_id, assembler_id, status, created_at
        FROM applications
        WHERE service_id = $1 AND assembler_id = $2
    `
	var a domain.Application
	err := r.db.QueryRow(ctx, query, serviceID, assemblerID).Scan(&a.ID, &a.ServiceID, &a.AssemblerID, &a.Status, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find application by service and assembler", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByServiceID(ctx context.Context, serviceID int) ([]domain.Application, error) {
	query := `
        SELECT id, service_id, assembler_id, status, created_at
        FROM applications
        WHERE service_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.ServiceID, &a.AssemblerID, &a.Status, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (r *Repository) Save(ctx context.Context, a *domain.Application) error {
	query := `
        INSERT INTO applications (service_id, assembler_id, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, a.ServiceID, a.AssemblerID, a.Status).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		zap.L().Error("can't save application", zap.Error(err))
		return err
	}
	return nil
}

// Accept flips one pending application to accepted, guarded against a
// sibling that already won. Reports whether the row changed.
func (r *Repository) Accept(ctx context.Context, id, serviceID int) (bool, error) {
	query := `
        UPDATE applications
        SET status = 'accepted'
        WHERE id = $1 AND status = 'pending'
          AND NOT EXISTS (
            SELECT 1 FROM applications
            WHERE service_id = $2 AND status = 'accepted'
          )
    `
	tag, err := r.db.Exec(ctx, query, id, serviceID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return false, ErrSiblingAccepted
		}
		zap.L().Error("can't accept application", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RejectSiblings rejects every other pending application of the service.
func (r *Repository) RejectSiblings(ctx context.Context, serviceID, acceptedID int) error {
	query := `
        UPDATE applications
        SET status = 'rejected'
        WHERE service_id = $1 AND id <> $2 AND status = 'pending'
    `
	if _, err := r.db.Exec(ctx, query, serviceID, acceptedID); err != nil {
		zap.L().Error("can't reject sibling applications", zap.Error(err))
		return err
	}
	return nil
}

// Reject flips one pending application to rejected. Reports whether the
// row changed.
func (r *Repository) Reject(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE applications
        SET status = 'rejected'
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't reject application", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountActive counts pending plus accepted applications for a service.
func (r *Repository) CountActive(ctx context.Context, serviceID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM applications
        WHERE service_id = $1 AND status IN ('pending', 'accepted')
    `
	var count int
	if err := r.db.QueryRow(ctx, query, serviceID).Scan(&count); err != nil {
		zap.L().Error("can't count active applications", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindAcceptedByServiceID(ctx context.Context, serviceID int) (*domain.Application, error) {
	query := `
        SELECT id, service_id, assembler_id, status, created_at
        FROM applications
        WHERE service_id = $1 AND status = 'accepted'
    `
	var a domain.Application
	err := r.db.QueryRow(ctx, query, serviceID).Scan(&a.ID, &a.ServiceID, &a.AssemblerID, &a.Status, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find accepted application", zap.Error(err))
		return nil, err
	}
	return &a, nil
}
