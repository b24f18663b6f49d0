package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/hrworks/hr-backend-go/internal/domain/notification"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (id, user_id, type, title, message, ref_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.RefID,
	).Scan(&n.CreatedAt)
	if err != nil {
		return notification.Notification{}, err
	}

	return n, nil
}

func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, title, message, ref_id, read, created_at
		FROM notifications
		WHERE user_id = $1
	`
	if unreadOnly {
		query += " AND read = FALSE"
	}
	query += " ORDER BY created_at DESC LIMIT 100"

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.RefID, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
	`

	commandTag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE user_id = $1 AND read = FALSE
	`

	_, err := q.Exec(ctx, query, userID)
	return err
}

func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND read = FALSE
	`

	var total int64
	if err := q.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}
