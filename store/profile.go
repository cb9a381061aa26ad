package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/handup/handup-api/schema"
)

// EnsureProfile returns the profile for an account, creating one with the
// current time as joined date when it is missing. Accounts created through
// signup always have a profile already; this covers the lazy path for
// records that predate profiles.
func (s *HandUpStore) EnsureProfile(account *schema.Account) (*schema.Profile, error) {
	var p schema.Profile
	err := s.ormDB.Where("account_id = ?", account.ID).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	p = schema.Profile{
		AccountID:  account.ID,
		JoinedDate: time.Now(),
	}
	if err := s.ormDB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
