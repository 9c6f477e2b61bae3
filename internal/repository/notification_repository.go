package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Dias221467/Alumni_Connect/internal/models"
)

type NotificationRepository struct {
	client *Client
}

func NewNotificationRepository(client *Client) *NotificationRepository {
	return &NotificationRepository{client: client}
}

// GetUserNotifications returns all notifications for a user
func (r *NotificationRepository) GetUserNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	data, err := r.client.do(ctx, "list_notifications", http.MethodGet, fmt.Sprintf("/notifications/%d", userID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return decodeList[models.Notification]("list_notifications", data)
}

// MarkAllAsRead flags every notification of the user as read
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	if _, err := r.client.do(ctx, "mark_all_read", http.MethodPut, fmt.Sprintf("/notifications/%d/read-all", userID), nil); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
