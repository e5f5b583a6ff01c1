package entities

import "time"

// RequestStatus represents the lifecycle of a renovation request.
//
// Domain notes:
//   - The marketplace core is the source of truth for request state.
//   - Every status change goes through the lifecycle use case; no caller
//     writes the status attribute directly.
//
// The legal transitions live in requestTransitions below. A withdrawal to
// StatusClosed is allowed from any non-terminal state.

type RequestStatus string

const (
	StatusOpen                RequestStatus = "open"
	StatusInspectionPending   RequestStatus = "inspection_pending"
	StatusInspectionScheduled RequestStatus = "inspection_scheduled"
	StatusBiddingOpen         RequestStatus = "bidding_open"
	StatusBiddingClosed       RequestStatus = "bidding_closed"
	StatusContractorSelected  RequestStatus = "contractor_selected"
	StatusCompleted           RequestStatus = "completed"
	StatusClosed              RequestStatus = "closed"
)

// RequestCategory enumerates the renovation categories a customer can pick.
type RequestCategory string

const (
	CategoryKitchen   RequestCategory = "kitchen"
	CategoryBathroom  RequestCategory = "bathroom"
	CategoryBasement  RequestCategory = "basement"
	CategoryFlooring  RequestCategory = "flooring"
	CategoryPainting  RequestCategory = "painting"
	CategoryRoofing   RequestCategory = "roofing"
	CategoryAddition  RequestCategory = "addition"
	CategoryWholeHome RequestCategory = "whole_home"
	CategoryOther     RequestCategory = "other"
)

// BudgetRange buckets the customer's budget; exact figures stay in the bids.
type BudgetRange string

const (
	BudgetUnder10k  BudgetRange = "under_10k"
	Budget10kTo25k  BudgetRange = "10k_25k"
	Budget25kTo50k  BudgetRange = "25k_50k"
	Budget50kTo100k BudgetRange = "50k_100k"
	BudgetOver100k  BudgetRange = "over_100k"
)

// TimelinePreference captures how soon the customer wants work to start.
type TimelinePreference string

const (
	TimelineASAP       TimelinePreference = "asap"
	TimelineOneToThree TimelinePreference = "1_3_months"
	TimelineThreeToSix TimelinePreference = "3_6_months"
	TimelineFlexible   TimelinePreference = "flexible"
)

// BiddingWindowDuration is how long the bidding window stays open after the
// scheduled inspection date.
const BiddingWindowDuration = 7 * 24 * time.Hour

// RenovationRequest is the customer's renovation request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//   - GSI2 (customer_id-index): customer_id
//
// InspectionDate, BiddingStartDate and BiddingEndDate are only present from
// StatusInspectionScheduled onwards; cancelling an inspection removes them.
// SelectedContractorID is only present from StatusContractorSelected onwards.

type RenovationRequest struct {
	ID          string             `json:"id"`
	CustomerID  string             `json:"customer_id"`
	Category    RequestCategory    `json:"category"`
	BudgetRange BudgetRange        `json:"budget_range"`
	Timeline    TimelinePreference `json:"timeline"`
	PostalCode  string             `json:"postal_code"`
	Address     string             `json:"address"`
	Description string             `json:"description"`
	PhotoKeys   []string           `json:"photo_keys,omitempty"`

	Status               RequestStatus `json:"status"`
	InspectionDate       *time.Time    `json:"inspection_date,omitempty"`
	InspectionNotes      string        `json:"inspection_notes,omitempty"`
	BiddingStartDate     *time.Time    `json:"bidding_start_date,omitempty"`
	BiddingEndDate       *time.Time    `json:"bidding_end_date,omitempty"`
	SelectedContractorID string        `json:"selected_contractor_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// requestTransitions is the single authority for legal status changes.
// StatusClosed is handled in CanTransitionTo: an admin withdrawal may close a
// request from any non-terminal state.
var requestTransitions = map[RequestStatus][]RequestStatus{
	StatusOpen:                {StatusInspectionPending},
	StatusInspectionPending:   {StatusInspectionScheduled},
	StatusInspectionScheduled: {StatusInspectionPending, StatusBiddingOpen},
	StatusBiddingOpen:         {StatusBiddingClosed},
	StatusBiddingClosed:       {StatusContractorSelected},
	StatusContractorSelected:  {StatusCompleted},
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	if target == StatusClosed {
		return s != StatusClosed && s != StatusCompleted
	}
	for _, next := range requestTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s RequestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusClosed
}

// ValidCategory reports whether c is a known renovation category.
func ValidCategory(c RequestCategory) bool {
	switch c {
	case CategoryKitchen, CategoryBathroom, CategoryBasement, CategoryFlooring,
		CategoryPainting, CategoryRoofing, CategoryAddition, CategoryWholeHome, CategoryOther:
		return true
	}
	return false
}

// ValidBudgetRange reports whether b is a known budget bucket.
func ValidBudgetRange(b BudgetRange) bool {
	switch b {
	case BudgetUnder10k, Budget10kTo25k, Budget25kTo50k, Budget50kTo100k, BudgetOver100k:
		return true
	}
	return false
}

// ValidTimeline reports whether t is a known timeline preference.
func ValidTimeline(t TimelinePreference) bool {
	switch t {
	case TimelineASAP, TimelineOneToThree, TimelineThreeToSix, TimelineFlexible:
		return true
	}
	return false
}
