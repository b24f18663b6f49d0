package notification

import "context"

type NotificationService interface {
	List(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)

	// NotifyTimesheetSubmitted and friends are best effort: a failed
	// notification never fails the triggering operation.
	NotifyTimesheetSubmitted(ctx context.Context, managerID *string, employeeName, timesheetID string)
	NotifyTimesheetDecided(ctx context.Context, ownerID string, approved bool, timesheetID string)
}
