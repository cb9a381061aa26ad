package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateNotification(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	recipientID := uuid.New()
	senderID := uuid.New()
	requestID := uuid.New()
	notificationID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(notificationID.String()))
	mock.ExpectCommit()

	n, err := s.CreateNotification(recipientID, senderID, &requestID, "hello")
	assert.NoError(t, err)
	assert.Equal(t, recipientID, n.RecipientID)
	assert.Equal(t, senderID, n.SenderID)
	assert.Equal(t, &requestID, n.HelpRequestID)
	assert.False(t, n.IsRead, "notifications start unread")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotificationsScopedToRecipient(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	recipientID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "notifications"\s+WHERE \(recipient_id = \$1\)\s+ORDER BY created_at desc`).
		WithArgs(recipientID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.ListNotifications(recipientID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
