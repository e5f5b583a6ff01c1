package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// CreateRenovationRequestRequest is the intake payload a homeowner submits.
type CreateRenovationRequestRequest struct {
	CustomerID  string   `json:"customer_id" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	BudgetRange string   `json:"budget_range" binding:"required"`
	Timeline    string   `json:"timeline" binding:"required"`
	PostalCode  string   `json:"postal_code" binding:"required"`
	Address     string   `json:"address"`
	Description string   `json:"description" binding:"required"`
	PhotoKeys   []string `json:"photo_keys"`
}

// ScheduleInspectionRequest carries the admin's inspection booking. The date
// accepts RFC 3339 or a bare YYYY-MM-DD day.
type ScheduleInspectionRequest struct {
	InspectionDate string `json:"inspection_date" binding:"required"`
	Notes          string `json:"notes"`
}

func (r ScheduleInspectionRequest) ResolveInspectionDate() (time.Time, error) {
	return parseDate(r.InspectionDate)
}

// CancelInspectionRequest identifies the acting homeowner.
type CancelInspectionRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

// InspectionInterestRequest registers or refreshes a contractor's intent to
// attend the site visit. WillParticipate is a pointer so an explicit false
// still binds.
type InspectionInterestRequest struct {
	ContractorID    string `json:"contractor_id" binding:"required"`
	WillParticipate *bool  `json:"will_participate" binding:"required"`
}

// SelectContractorRequest carries the customer's winner choice.
type SelectContractorRequest struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	ContractorID string `json:"contractor_id" binding:"required"`
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
