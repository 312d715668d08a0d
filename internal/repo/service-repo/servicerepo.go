package servicerepo

import (
	"context"
	"errors"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const serviceColumns = `id, store_id, title, description, location, cep, latitude, longitude,
        start_date, end_date, price, status, material_type, project_files, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID, &s.StoreID, &s.Title, &s.Description, &s.Location, &s.CEP,
		&s.Latitude, &s.Longitude, &s.StartDate, &s.EndDate, &s.Price,
		&s.Status, &s.MaterialType, &s.ProjectFiles, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Service, error) {
	service, err := scanService(r.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	return service, nil
}

func (r *Repository) Save(ctx context.Context, service *domain.Service) error {
	query := `
        INSERT INTO services (store_id, title, description, location, cep, latitude, longitude,
            start_date, end_date, price, status, material_type, project_files)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		service.StoreID, service.Title, service.Description, service.Location, service.CEP,
		service.Latitude, service.Longitude, service.StartDate, service.EndDate,
		service.Price, service.Status, service.MaterialType, service.ProjectFiles,
	).Scan(&service.ID, &service.CreatedAt)
	if err != nil {
		zap.L().Error("can't save service", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) queryServices(ctx context.Context, query string, args ...any) ([]domain.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			zap.L().Error("can't scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, *service)
	}
	return services, rows.Err()
}

// FindOpenByMaterialTypes lists open services whose material type is among
// the given specialties, newest first.
func (r *Repository) FindOpenByMaterialTypes(ctx context.Context, materialTypes []string) ([]domain.Service, error) {
	query := `
        SELECT ` + serviceColumns + `
        FROM services
        WHERE status = 'open' AND material_type = ANY($1)
        ORDER BY created_at DESC
    `
	return r.queryServices(ctx, query, materialTypes)
}

func (r *Repository) FindByStoreID(ctx context.Context, storeID int, statuses []string) ([]domain.Service, error) {
	query := `
        SELECT ` + serviceColumns + `
        FROM services
        WHERE store_id = $1 AND status = ANY($2)
        ORDER BY created_at DESC
    `
	return r.queryServices(ctx, query, storeID, statuses)
}

// FindByAssemblerID lists services the assembler applied to, restricted to
// the given service statuses.
func (r *Repository) FindByAssemblerID(ctx context.Context, assemblerID int, statuses []string) ([]domain.Service, error) {
	query := `
        SELECT ` + serviceColumns + `
        FROM services s
        WHERE s.status = ANY($2)
          AND EXISTS (
            SELECT 1 FROM applications a
            WHERE a.service_id = s.id
              AND a.assembler_id = $1
              AND a.status IN ('pending', 'accepted')
          )
        ORDER BY s.created_at DESC
    `
	return r.queryServices(ctx, query, assemblerID, statuses)
}

// Update rewrites the editable columns of a service that is still open.
// Reports whether a row changed; a service that left the open status in the
// meantime is not touched.
func (r *Repository) Update(ctx context.Context, service *domain.Service) (bool, error) {
	query := `
        UPDATE services
        SET title = $1, description = $2, location = $3, start_date = $4,
            end_date = $5, price = $6, material_type = $7
        WHERE id = $8 AND status = 'open'
    `
	tag, err := r.db.Exec(ctx, query,
		service.Title, service.Description, service.Location, service.StartDate,
		service.EndDate, service.Price, service.MaterialType, service.ID,
	)
	if err != nil {
		zap.L().Error("can't update service", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStatus performs a conditional transition and reports whether a row
// changed. The WHERE clause is the concurrency guard: two racing callers
// cannot both win the same edge.
func (r *Repository) UpdateStatus(ctx context.Context, id int, fromStatuses []string, to string) (bool, error) {
	query := `
        UPDATE services
        SET status = $1
        WHERE id = $2 AND status = ANY($3)
    `
	tag, err := r.db.Exec(ctx, query, to, id, fromStatuses)
	if err != nil {
		zap.L().Error("can't update service status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1 AND status = 'open'`, id)
	if err != nil {
		zap.L().Error("can't delete service", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindParticipants resolves the store-owner user and, when an application
// has been accepted, the assembler user of a service. assemblerUserID is 0
// while no application is accepted.
func (r *Repository) FindParticipants(ctx context.Context, serviceID int) (storeUserID, assemblerUserID int, err error) {
	query := `
        SELECT st.user_id, COALESCE(asm.user_id, 0)
        FROM services s
        JOIN stores st ON st.id = s.store_id
        LEFT JOIN applications a ON a.service_id = s.id AND a.status = 'accepted'
        LEFT JOIN assemblers asm ON asm.id = a.assembler_id
        WHERE s.id = $1
    `
	err = r.db.QueryRow(ctx, query, serviceID).Scan(&storeUserID, &assemblerUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, nil
	}
	if err != nil {
		zap.L().Error("can't find service participants", zap.Error(err))
		return 0, 0, err
	}
	return storeUserID, assemblerUserID, nil
}
