package messagerepo

import (
	"context"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByServiceID(ctx context.Context, serviceID int) ([]domain.Message, error) {
	query := `
        SELECT id, service_id, sender_id, content, sent_at
        FROM messages
        WHERE service_id = $1
        ORDER BY sent_at ASC
    `
	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't get messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ServiceID, &m.SenderID, &m.Content, &m.SentAt); err != nil {
			zap.L().Error("can't scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *Repository) Save(ctx context.Context, m *domain.Message) error {
	query := `
        INSERT INTO messages (service_id, sender_id, content)
        VALUES ($1, $2, $3)
        RETURNING id, sent_at
    `
	err := r.db.QueryRow(ctx, query, m.ServiceID, m.SenderID, m.Content).Scan(&m.ID, &m.SentAt)
	if err != nil {
		zap.L().Error("can't save message", zap.Error(err))
		return err
	}
	return nil
}

// MarkRead records that userID has read every message of the service sent
// by the other side. Idempotent.
func (r *Repository) MarkRead(ctx context.Context, serviceID, userID int) error {
	query := `
        INSERT INTO message_reads (message_id, user_id)
        SELECT m.id, $2
        FROM messages m
        WHERE m.service_id = $1 AND m.sender_id <> $2
        ON CONFLICT DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, serviceID, userID); err != nil {
		zap.L().Error("can't mark messages read", zap.Error(err))
		return err
	}
	return nil
}

// CountUnread counts messages addressed to userID (services where the user
// is the store owner or the accepted assembler) without a read receipt.
func (r *Repository) CountUnread(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM messages m
        JOIN services s ON s.id = m.service_id
        JOIN stores st ON st.id = s.store_id
        LEFT JOIN applications a ON a.service_id = s.id AND a.status = 'accepted'
        LEFT JOIN assemblers asm ON asm.id = a.assembler_id
        WHERE m.sender_id <> $1
          AND (st.user_id = $1 OR asm.user_id = $1)
          AND NOT EXISTS (
            SELECT 1 FROM message_reads mr
            WHERE mr.message_id = m.id AND mr.user_id = $1
          )
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count unread messages", zap.Error(err))
		return 0, err
	}
	return count, nil
}
