package entities

import "time"

// InspectionInterest is a contractor's declared intent to attend the site
// inspection for a request.
//
// Storage model (DynamoDB):
//   - PK: request_id
//   - SK: contractor_id
//
// Interests are upserted while the request is open for inspection and are
// bulk-deleted when a scheduled inspection is cancelled.

type InspectionInterest struct {
	RequestID       string    `json:"request_id"`
	ContractorID    string    `json:"contractor_id"`
	WillParticipate bool      `json:"will_participate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
