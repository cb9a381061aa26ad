package store

import (
	"github.com/google/uuid"

	"github.com/handup/handup-api/schema"
)

// CreateNotification records a help offer addressed to a request's author.
// Nothing prevents sender and recipient from being the same account.
func (s *HandUpStore) CreateNotification(recipientID, senderID uuid.UUID, requestID *uuid.UUID, message string) (*schema.Notification, error) {
	n := schema.Notification{
		RecipientID:   recipientID,
		SenderID:      senderID,
		HelpRequestID: requestID,
		Message:       message,
	}

	if err := s.ormDB.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListNotifications returns the notifications addressed to an account,
// newest first.
func (s *HandUpStore) ListNotifications(recipientID uuid.UUID) ([]schema.Notification, error) {
	notifications := []schema.Notification{}

	if err := s.ormDB.Preload("Sender").Preload("HelpRequest").
		Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	return notifications, nil
}
