package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/handup/handup-api/schema"
)

var (
	ErrUsernameTaken      = fmt.Errorf("this username has been registered or has been taken")
	ErrAccountNotFound    = fmt.Errorf("account not found")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
)

// AccountParams carries the signup form fields into account creation.
// Password is the plaintext submitted by the user; it is hashed here and
// never persisted as-is.
type AccountParams struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
	Location string
}

// CreateAccount registers an account together with its profile. The nested
// profile makes gorm run both inserts inside a single transaction, so a
// failed profile insert never leaves a profile-less account behind.
func (s *HandUpStore) CreateAccount(params AccountParams) (*schema.Account, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := schema.Account{
		Username:       params.Username,
		Email:          params.Email,
		PasswordDigest: string(digest),
		Profile: schema.Profile{
			FullName:   params.FullName,
			Phone:      params.Phone,
			Location:   params.Location,
			JoinedDate: time.Now(),
		},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &a, nil
}

// AuthenticateAccount checks a username/password pair. Unknown usernames
// and wrong passwords both come back as ErrInvalidCredentials.
func (s *HandUpStore) AuthenticateAccount(username, password string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("username = ?", username).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordDigest), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &a, nil
}

// GetAccount returns an account instance of a given username
func (s *HandUpStore) GetAccount(username string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("username = ?", username).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
