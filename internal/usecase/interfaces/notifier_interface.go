package interfaces

import "context"

// Notification templates dispatched on lifecycle transitions.
const (
	TemplateInspectionScheduled = "inspection_scheduled"
	TemplateInspectionCancelled = "inspection_cancelled"
	TemplateBiddingClosed       = "bidding_closed"
	TemplateBidAccepted         = "bid_accepted"
	TemplateBidRejected         = "bid_rejected"
)

// INotifier abstracts the transactional-email provider (e.g. Amazon SES).
//
// Delivery is best-effort: callers log failures and never roll back a
// committed state transition because of them.
type INotifier interface {
	Send(ctx context.Context, recipient string, template string, data map[string]string) error
}
