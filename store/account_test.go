package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateAccountWithProfile(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	accountID := uuid.New()
	profileID := uuid.New()

	// account and profile inserts share one transaction
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(accountID.String()))
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(profileID.String()))
	mock.ExpectCommit()

	a, err := s.CreateAccount(AccountParams{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
		Phone:    "555-0100",
		Location: "Springfield",
	})
	assert.NoError(t, err)
	assert.Equal(t, accountID, a.ID)
	assert.Equal(t, profileID, a.Profile.ID)
	assert.Equal(t, "555-0100", a.Profile.Phone)
	assert.False(t, a.Profile.JoinedDate.IsZero(), "joined date must be set")

	assert.NotEqual(t, "hunter22", a.PasswordDigest, "password may not be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordDigest), []byte("hunter22")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountUsernameTaken(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := s.CreateAccount(AccountParams{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	assert.Equal(t, ErrUsernameTaken, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func accountRows(t *testing.T, username, password string) *sqlmock.Rows {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	return sqlmock.NewRows([]string{"username", "password_digest"}).
		AddRow(username, string(digest))
}

func TestAuthenticateAccount(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT (.+) FROM "accounts"`).
		WithArgs("alice").
		WillReturnRows(accountRows(t, "alice", "hunter22"))

	a, err := s.AuthenticateAccount("alice", "hunter22")
	assert.NoError(t, err)
	assert.Equal(t, "alice", a.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateAccountWrongPassword(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT (.+) FROM "accounts"`).
		WithArgs("alice").
		WillReturnRows(accountRows(t, "alice", "hunter22"))

	_, err := s.AuthenticateAccount("alice", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthenticateAccountUnknownUsername(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT (.+) FROM "accounts"`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password_digest"}))

	// an unknown username is indistinguishable from a wrong password
	_, err := s.AuthenticateAccount("ghost", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}
