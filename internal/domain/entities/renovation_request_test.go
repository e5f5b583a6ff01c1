package entities

import "testing"

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to RequestStatus }{
		{StatusOpen, StatusInspectionPending},
		{StatusInspectionPending, StatusInspectionScheduled},
		{StatusInspectionScheduled, StatusInspectionPending},
		{StatusInspectionScheduled, StatusBiddingOpen},
		{StatusBiddingOpen, StatusBiddingClosed},
		{StatusBiddingClosed, StatusContractorSelected},
		{StatusContractorSelected, StatusCompleted},
		{StatusOpen, StatusClosed},
		{StatusBiddingOpen, StatusClosed},
		{StatusContractorSelected, StatusClosed},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to RequestStatus }{
		{StatusOpen, StatusBiddingOpen},
		{StatusOpen, StatusInspectionScheduled},
		{StatusInspectionPending, StatusBiddingOpen},
		{StatusBiddingOpen, StatusContractorSelected},
		{StatusBiddingClosed, StatusBiddingOpen},
		{StatusCompleted, StatusClosed},
		{StatusClosed, StatusClosed},
		{StatusClosed, StatusOpen},
		{StatusContractorSelected, StatusBiddingClosed},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestRequestStatus_Terminal(t *testing.T) {
	if !StatusCompleted.Terminal() || !StatusClosed.Terminal() {
		t.Fatalf("expected completed and closed to be terminal")
	}
	for _, s := range []RequestStatus{StatusOpen, StatusInspectionPending, StatusInspectionScheduled, StatusBiddingOpen, StatusBiddingClosed, StatusContractorSelected} {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestValidators(t *testing.T) {
	if !ValidCategory(CategoryBathroom) || ValidCategory("spaceship") {
		t.Fatalf("category validation broken")
	}
	if !ValidBudgetRange(BudgetOver100k) || ValidBudgetRange("priceless") {
		t.Fatalf("budget validation broken")
	}
	if !ValidTimeline(TimelineASAP) || ValidTimeline("whenever") {
		t.Fatalf("timeline validation broken")
	}
}
