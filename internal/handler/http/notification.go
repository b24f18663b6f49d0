package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrworks/hr-backend-go/internal/domain/notification"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	CountUnread(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// List implements NotificationHandler.
func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.notificationService.List(r.Context(), principal.ID, unreadOnly)
	if err != nil {
		slog.Error("ListNotifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.notificationService.MarkRead(r.Context(), id, principal.ID); err != nil {
		slog.Error("MarkNotificationRead service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// MarkAllRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), principal.ID); err != nil {
		slog.Error("MarkAllNotificationsRead service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

// CountUnread implements NotificationHandler.
func (h *NotificationHandlerImpl) CountUnread(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	count, err := h.notificationService.CountUnread(r.Context(), principal.ID)
	if err != nil {
		slog.Error("CountUnreadNotifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int64{"unread": count})
}
