package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/schoolerp/internal/app/models"
)

// NotificationRepository handles the notification outbox rows.
type NotificationRepository struct {
	db DBTX
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts an unsent notification row. The outbox dispatcher picks it
// up later; the creating request never waits for delivery.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (school_id, title, message, target_role, target_user_id, is_sent)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, n.SchoolID, n.Title, n.Message, n.TargetRole, n.TargetUserID).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// GetUnsent returns up to limit unsent notifications across all tenants,
// oldest first. Dispatcher use only.
func (r *NotificationRepository) GetUnsent(ctx context.Context, limit int) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, title, message, target_role, target_user_id, is_sent, sent_at, created_at
		 FROM notifications WHERE is_sent = FALSE ORDER BY created_at LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.SchoolID, &n.Title, &n.Message, &n.TargetRole,
			&n.TargetUserID, &n.IsSent, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

// MarkSent flips a notification to sent. Idempotent: a row already sent is
// left untouched.
func (r *NotificationRepository) MarkSent(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_sent = TRUE, sent_at = NOW() WHERE id = $1 AND is_sent = FALSE`,
		id)
	if err != nil {
		return fmt.Errorf("error marking notification sent: %w", err)
	}

	return nil
}

// GetForTarget lists notifications visible to a user with a role: rows
// targeted at the role plus rows targeted directly at the user.
func (r *NotificationRepository) GetForTarget(ctx context.Context, schoolID int64, role models.RoleType, userID int64) ([]*models.Notification, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, school_id, title, message, target_role, target_user_id, is_sent, sent_at, created_at
		FROM notifications
		WHERE school_id = $1 AND (target_role = $2 OR target_user_id = $3)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, schoolID, role, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.SchoolID, &n.Title, &n.Message, &n.TargetRole,
			&n.TargetUserID, &n.IsSent, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}
