package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/handup/handup-api/schema"
)

func TestEnsureProfileExisting(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	accountID := uuid.New()
	profileID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "profiles"`).
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "location"}).
			AddRow(profileID.String(), accountID.String(), "Springfield"))

	p, err := s.EnsureProfile(&schema.Account{ID: accountID})
	assert.NoError(t, err)
	assert.Equal(t, profileID, p.ID)
	assert.Equal(t, "Springfield", p.Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureProfileCreatesMissing(t *testing.T) {
	s, mock, closeDB := newTestStore(t)
	defer closeDB()

	accountID := uuid.New()
	profileID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "profiles"`).
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(profileID.String()))
	mock.ExpectCommit()

	before := time.Now()
	p, err := s.EnsureProfile(&schema.Account{ID: accountID})
	assert.NoError(t, err)
	assert.Equal(t, accountID, p.AccountID)
	assert.False(t, p.JoinedDate.Before(before), "joined date must default to now")
	assert.NoError(t, mock.ExpectationsWereMet())
}
