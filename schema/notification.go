package schema

import (
	"time"

	"github.com/google/uuid"
)

// Notification is delivered to a request's author when another account
// offers help. The request link is optional so a notification survives
// outside the context of any particular request.
type Notification struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RecipientID   uuid.UUID    `json:"-" gorm:"type:uuid;index;not null"`
	Recipient     Account      `json:"recipient" gorm:"foreignkey:RecipientID"`
	SenderID      uuid.UUID    `json:"-" gorm:"type:uuid;not null"`
	Sender        Account      `json:"sender" gorm:"foreignkey:SenderID"`
	HelpRequestID *uuid.UUID   `json:"-" gorm:"type:uuid"`
	HelpRequest   *HelpRequest `json:"help_request,omitempty" gorm:"foreignkey:HelpRequestID"`
	Message       string       `json:"message"`
	IsRead        bool         `json:"is_read" sql:"default:false"`
	CreatedAt     time.Time    `json:"created_at"`
}
