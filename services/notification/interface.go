package notification

import (
	"context"
	"fmt"

	staffRepo "stayflow/database/repository/staff"
	"stayflow/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes to staff.
type NotificationService interface {
	SendStaffPush(ctx context.Context, staffID, title, body string, data map[string]string) error
	SendRolePush(ctx context.Context, role, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Staff staffRepo.StaffRepository
}

// SendStaffPush looks up a staff member's FCM token and sends a push.
func (s *DefaultNotificationService) SendStaffPush(ctx context.Context, staffID, title, body string, data map[string]string) error {
	member, err := s.Staff.GetByID(staffID)
	if err != nil {
		return fmt.Errorf("SendStaffPush: could not find staff %s: %w", staffID, err)
	}
	if member == nil || member.FCMToken == "" {
		return fmt.Errorf("SendStaffPush: staff %s has no FCM token", staffID)
	}
	return s.send(ctx, member.FCMToken, title, body, data)
}

// SendRolePush fans a push out to every staff member holding the role.
// Members without a token are skipped; the first send error wins.
func (s *DefaultNotificationService) SendRolePush(ctx context.Context, role, title, body string, data map[string]string) error {
	members, err := s.Staff.GetByRole(role)
	if err != nil {
		return fmt.Errorf("SendRolePush: could not list staff for role %s: %w", role, err)
	}
	var firstErr error
	for _, m := range members {
		if m.FCMToken == "" {
			continue
		}
		if err := s.send(ctx, m.FCMToken, title, body, data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *DefaultNotificationService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("notification: FCM client not initialized")
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("notification: failed to send push: %w", err)
	}
	return nil
}
