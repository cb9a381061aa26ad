package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/handup/handup-api/schema"
)

// handup main datastore
type HandUpCore interface {
	Ping() error

	// Account
	CreateAccount(params AccountParams) (*schema.Account, error)
	AuthenticateAccount(username, password string) (*schema.Account, error)
	GetAccount(username string) (*schema.Account, error)
	EnsureProfile(account *schema.Account) (*schema.Profile, error)

	// Help requests
	CreateRequest(accountID uuid.UUID, title, description, category string) (*schema.HelpRequest, error)
	GetRequest(requestID string) (*schema.HelpRequest, error)
	ListRequests(category string, limit int) ([]schema.HelpRequest, error)
	ListAccountRequests(accountID uuid.UUID, limit int) ([]schema.HelpRequest, error)
	CountAccountRequests(accountID uuid.UUID) (int, error)
	CountRequestsByCategory(accountID uuid.UUID) ([]CategoryCount, error)
	AcceptRequest(requestID string) error
	CompleteRequest(requestID string) error

	// Notifications
	CreateNotification(recipientID, senderID uuid.UUID, requestID *uuid.UUID, message string) (*schema.Notification, error)
	ListNotifications(recipientID uuid.UUID) ([]schema.Notification, error)
}

// HandUpStore is an implementation of HandUpCore
type HandUpStore struct {
	ormDB *gorm.DB
}

func NewHandUpStore(ormDB *gorm.DB) *HandUpStore {
	return &HandUpStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *HandUpStore) Ping() error {
	return s.ormDB.DB().Ping()
}
