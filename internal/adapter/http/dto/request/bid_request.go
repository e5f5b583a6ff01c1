package request

import "time"

// SubmitBidRequest is a contractor's offer on a request in bidding_open.
type SubmitBidRequest struct {
	ContractorID    string  `json:"contractor_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	TimelineWeeks   int     `json:"timeline_weeks" binding:"required"`
	StartDate       string  `json:"start_date"`
	Notes           string  `json:"notes"`
	EstimateFileKey string  `json:"estimate_file_key"`
}

// ResolveStartDate parses the optional proposed start date; absence is not
// an error.
func (r SubmitBidRequest) ResolveStartDate() (*time.Time, error) {
	if r.StartDate == "" {
		return nil, nil
	}
	t, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
