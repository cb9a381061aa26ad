package schema

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Username       string    `json:"username" gorm:"unique_index;not null"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-" gorm:"column:password_digest;not null"`
	Profile        Profile   `json:"profile" gorm:"foreignkey:AccountID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Profile holds the extended attributes and derived counters shown on the
// profile page. Exactly one per account. It is normally created together
// with the account at signup, but may also be created lazily on the first
// profile visit for accounts that predate the profile table.
type Profile struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID        uuid.UUID `json:"-" gorm:"type:uuid;index"`
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone"`
	Location         string    `json:"location"`
	TotalHelps       int       `json:"total_helps" sql:"default:0"`
	ReputationPoints int       `json:"reputation_points" sql:"default:0"`
	JoinedDate       time.Time `json:"joined_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
