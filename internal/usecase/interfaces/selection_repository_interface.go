package interfaces

import "context"

// ISelectionRepository commits the winner-selection write set atomically.
//
// CommitSelection must, in one transaction: move the request from
// bidding_closed to contractor_selected with the selected contractor id,
// mark the winning bid accepted, and mark every bid in rejectedContractorIDs
// rejected. It returns false (with a nil error) when a conditional check
// fails — the request already left bidding_closed or the winning bid is no
// longer pending — leaving every record untouched.

type ISelectionRepository interface {
	CommitSelection(ctx context.Context, requestID, contractorID, acceptedBidID string, rejectedContractorIDs []string) (bool, error)
}
