package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/handup/handup-api/schema"
)

var ErrRequestNotFound = fmt.Errorf("help request not found")

// CategoryCount is one row of the per-category aggregation backing the
// profile progress bars.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CreateRequest creates a help request owned by the given account. Status
// flags start at their defaults; there is no edit or delete path.
func (s *HandUpStore) CreateRequest(accountID uuid.UUID, title, description, category string) (*schema.HelpRequest, error) {
	r := schema.HelpRequest{
		AccountID:   accountID,
		Title:       title,
		Description: description,
		Category:    category,
		Urgency:     schema.UrgencyNormal,
		Status:      schema.RequestStatusOpen,
	}

	if err := s.ormDB.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *HandUpStore) GetRequest(requestID string) (*schema.HelpRequest, error) {
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, ErrRequestNotFound
	}

	var r schema.HelpRequest
	if err := s.ormDB.Preload("Account").Where("id = ?", requestID).First(&r).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &r, nil
}

// ListRequests returns requests newest first. An empty category or the
// "All" sentinel returns every request; limit <= 0 means no limit.
func (s *HandUpStore) ListRequests(category string, limit int) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	query := s.ormDB.Preload("Account").Order("created_at desc")
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *HandUpStore) ListAccountRequests(accountID uuid.UUID, limit int) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	query := s.ormDB.Preload("Account").
		Where("account_id = ?", accountID).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *HandUpStore) CountAccountRequests(accountID uuid.UUID) (int, error) {
	var count int
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountRequestsByCategory aggregates an account's requests per category.
// Requests saved without a category are bucketed as "General".
func (s *HandUpStore) CountRequestsByCategory(accountID uuid.UUID) ([]CategoryCount, error) {
	counts := []CategoryCount{}

	if err := s.ormDB.Raw(
		`SELECT COALESCE(NULLIF(category, ''), ?) AS category, count(*) AS count
		FROM help_requests
		WHERE account_id = ?
		GROUP BY 1
		ORDER BY count DESC, category;`,
		schema.CategoryGeneral,
		accountID,
	).Scan(&counts).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

// AcceptRequest marks a request as accepted. The update is unconditional:
// any authenticated account may accept any request, and repeated calls are
// no-ops after the first.
func (s *HandUpStore) AcceptRequest(requestID string) error {
	return s.setRequestFlag(requestID, "is_accepted")
}

// CompleteRequest marks a request as completed. Completion is not gated on
// acceptance; the two flags are independent.
func (s *HandUpStore) CompleteRequest(requestID string) error {
	return s.setRequestFlag(requestID, "is_completed")
}

func (s *HandUpStore) setRequestFlag(requestID, column string) error {
	if _, err := uuid.Parse(requestID); err != nil {
		return ErrRequestNotFound
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ?", requestID).
		Update(column, true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}
