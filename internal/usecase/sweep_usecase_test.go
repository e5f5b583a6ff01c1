package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"
	mock_interfaces "renovahub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSweepUseCase_SweepExpiredBidding(t *testing.T) {
	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)

	t.Run("list error aborts the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSweepUseCase(repo, nil)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.StatusBiddingOpen).Return(nil, errors.New("db"))

		_, err := uc.SweepExpiredBidding(context.Background(), testNow)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("future deadlines are left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSweepUseCase(repo, NewRequestLifecycleUseCase(repo, nil, nil, nil, WithClock(fixedClock)))

		repo.EXPECT().ListByStatus(gomock.Any(), entities.StatusBiddingOpen).Return([]entities.RenovationRequest{
			{ID: "req-1", Status: entities.StatusBiddingOpen, BiddingEndDate: &future},
			{ID: "req-2", Status: entities.StatusBiddingOpen}, // no deadline yet
		}, nil)

		summary, err := uc.SweepExpiredBidding(context.Background(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Found != 0 || summary.Closed != 0 || summary.Failed != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("expired windows are closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSweepUseCase(repo, NewRequestLifecycleUseCase(repo, nil, nil, nil, WithClock(fixedClock)))

		repo.EXPECT().ListByStatus(gomock.Any(), entities.StatusBiddingOpen).Return([]entities.RenovationRequest{
			{ID: "req-1", Status: entities.StatusBiddingOpen, BiddingEndDate: &past},
			{ID: "req-2", Status: entities.StatusBiddingOpen, BiddingEndDate: &future},
		}, nil)

		// CloseBidding re-reads before its conditional update.
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{
			ID: "req-1", Status: entities.StatusBiddingOpen, BiddingEndDate: &past,
		}, nil)
		repo.EXPECT().UpdateStatusIf(gomock.Any(), "req-1", entities.StatusBiddingOpen, entities.StatusBiddingClosed, interfaces.RequestPatch{}).
			Return(entities.RenovationRequest{ID: "req-1", Status: entities.StatusBiddingClosed}, nil)

		summary, err := uc.SweepExpiredBidding(context.Background(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Found != 1 || summary.Closed != 1 || summary.Failed != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("request closed by a concurrent run counts as failed without aborting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSweepUseCase(repo, NewRequestLifecycleUseCase(repo, nil, nil, nil, WithClock(fixedClock)))

		repo.EXPECT().ListByStatus(gomock.Any(), entities.StatusBiddingOpen).Return([]entities.RenovationRequest{
			{ID: "req-1", Status: entities.StatusBiddingOpen, BiddingEndDate: &past},
			{ID: "req-2", Status: entities.StatusBiddingOpen, BiddingEndDate: &past},
		}, nil)

		// req-1 already transitioned between the listing and the re-read.
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{
			ID: "req-1", Status: entities.StatusBiddingClosed, BiddingEndDate: &past,
		}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-2").Return(entities.RenovationRequest{
			ID: "req-2", Status: entities.StatusBiddingOpen, BiddingEndDate: &past,
		}, nil)
		repo.EXPECT().UpdateStatusIf(gomock.Any(), "req-2", entities.StatusBiddingOpen, entities.StatusBiddingClosed, interfaces.RequestPatch{}).
			Return(entities.RenovationRequest{ID: "req-2", Status: entities.StatusBiddingClosed}, nil)

		summary, err := uc.SweepExpiredBidding(context.Background(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Found != 2 || summary.Closed != 1 || summary.Failed != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("sweeping twice is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSweepUseCase(repo, NewRequestLifecycleUseCase(repo, nil, nil, nil, WithClock(fixedClock)))

		// Second run: the request already left bidding_open, so the listing
		// no longer returns it.
		repo.EXPECT().ListByStatus(gomock.Any(), entities.StatusBiddingOpen).Return(nil, nil)

		summary, err := uc.SweepExpiredBidding(context.Background(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Found != 0 || summary.Closed != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})
}
