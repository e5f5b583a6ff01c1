package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"
)

// SweepSummary reports one bidding-window sweep run.
type SweepSummary struct {
	Found  int `json:"found"`
	Closed int `json:"closed"`
	Failed int `json:"failed"`
}

// ISweepUseCase is the entry point for the scheduled job that closes expired
// bidding windows.

type ISweepUseCase interface {
	SweepExpiredBidding(ctx context.Context, now time.Time) (SweepSummary, error)
}

type SweepUseCase struct {
	requestRepo interfaces.IRenovationRequestRepository
	lifecycle   IRequestLifecycleUseCase
}

var _ ISweepUseCase = (*SweepUseCase)(nil)

func NewSweepUseCase(requestRepo interfaces.IRenovationRequestRepository, lifecycle IRequestLifecycleUseCase) *SweepUseCase {
	return &SweepUseCase{requestRepo: requestRepo, lifecycle: lifecycle}
}

// SweepExpiredBidding finds every bidding_open request whose bidding end date
// is strictly before now and drives each through the lifecycle's
// bidding_open -> bidding_closed transition.
//
// The sweep is idempotent: requests closed by an earlier run (or by a
// concurrent run) are simply absent from the candidate set, and a lost
// conditional-update race counts as a per-item failure without aborting the
// rest of the sweep.
func (u *SweepUseCase) SweepExpiredBidding(ctx context.Context, now time.Time) (SweepSummary, error) {
	open, err := u.requestRepo.ListByStatus(ctx, entities.StatusBiddingOpen)
	if err != nil {
		return SweepSummary{}, err
	}

	var summary SweepSummary
	for _, r := range open {
		if r.BiddingEndDate == nil || !r.BiddingEndDate.Before(now) {
			continue
		}
		summary.Found++

		if _, err := u.lifecycle.CloseBidding(ctx, r.ID); err != nil {
			summary.Failed++
			if errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidTransition) {
				log.Printf("[sweep][usecase] request already transitioned request_id=%s err=%v", r.ID, err)
			} else {
				log.Printf("[sweep][usecase] failed closing bidding request_id=%s err=%v", r.ID, err)
			}
			continue
		}
		summary.Closed++
	}

	log.Printf("[sweep][usecase] sweep done found=%d closed=%d failed=%d", summary.Found, summary.Closed, summary.Failed)
	return summary, nil
}
