package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusOpen = "open"

	UrgencyNormal = "normal"

	// CategoryGeneral is the bucket for requests created without a category.
	CategoryGeneral = "General"
)

type HelpRequest struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID   uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	Account     Account   `json:"author" gorm:"foreignkey:AccountID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Urgency     string    `json:"urgency" sql:"default:'normal'"`
	Status      string    `json:"status" sql:"default:'open'"`
	IsAccepted  bool      `json:"is_accepted" sql:"default:false"`
	IsCompleted bool      `json:"is_completed" sql:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryName returns the category for display, never empty.
func (r HelpRequest) CategoryName() string {
	if r.Category == "" {
		return CategoryGeneral
	}
	return r.Category
}
