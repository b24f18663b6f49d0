package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrworks/hr-backend-go/internal/domain/notification"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
)

type NotificationServiceImpl struct {
	db     *database.DB
	logger *slog.Logger
	notification.NotificationRepository
}

func NewNotificationService(db *database.DB, logger *slog.Logger, repository notification.NotificationRepository) notification.NotificationService {
	return &NotificationServiceImpl{
		db:                     db,
		logger:                 logger,
		NotificationRepository: repository,
	}
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	return s.NotificationRepository.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id, userID string) error {
	return s.NotificationRepository.MarkRead(ctx, id, userID)
}

// MarkAllRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	return s.NotificationRepository.MarkAllRead(ctx, userID)
}

// CountUnread implements notification.NotificationService.
func (s *NotificationServiceImpl) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.NotificationRepository.CountUnread(ctx, userID)
}

// NotifyTimesheetSubmitted implements notification.NotificationService.
func (s *NotificationServiceImpl) NotifyTimesheetSubmitted(ctx context.Context, managerID *string, employeeName, timesheetID string) {
	if managerID == nil {
		return
	}

	_, err := s.NotificationRepository.Create(ctx, notification.Notification{
		UserID:  *managerID,
		Type:    notification.TypeTimesheetSubmitted,
		Title:   "Timesheet submitted",
		Message: fmt.Sprintf("%s submitted a timesheet for approval", employeeName),
		RefID:   &timesheetID,
	})
	if err != nil {
		s.logger.Warn("failed to create submission notification",
			slog.String("timesheet_id", timesheetID),
			slog.String("error", err.Error()),
		)
	}
}

// NotifyTimesheetDecided implements notification.NotificationService.
func (s *NotificationServiceImpl) NotifyTimesheetDecided(ctx context.Context, ownerID string, approved bool, timesheetID string) {
	notifType := notification.TypeTimesheetRejected
	title := "Timesheet rejected"
	message := "Your timesheet was rejected"
	if approved {
		notifType = notification.TypeTimesheetApproved
		title = "Timesheet approved"
		message = "Your timesheet was approved"
	}

	_, err := s.NotificationRepository.Create(ctx, notification.Notification{
		UserID:  ownerID,
		Type:    notifType,
		Title:   title,
		Message: message,
		RefID:   &timesheetID,
	})
	if err != nil {
		s.logger.Warn("failed to create decision notification",
			slog.String("timesheet_id", timesheetID),
			slog.String("error", err.Error()),
		)
	}
}
