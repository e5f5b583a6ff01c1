package response

import (
	"testing"
	"time"

	"renovahub/internal/domain/entities"
)

func TestFromRenovationRequest(t *testing.T) {
	now := time.Now().UTC()
	inspection := now.Add(48 * time.Hour)
	end := inspection.Add(entities.BiddingWindowDuration)
	r := entities.RenovationRequest{
		ID:               "req-1",
		CustomerID:       "cust-1",
		Category:         entities.CategoryKitchen,
		BudgetRange:      entities.Budget25kTo50k,
		Timeline:         entities.TimelineFlexible,
		PostalCode:       "94110",
		Description:      "Full kitchen remodel",
		Status:           entities.StatusInspectionScheduled,
		InspectionDate:   &inspection,
		BiddingStartDate: &inspection,
		BiddingEndDate:   &end,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromRenovationRequest(r)
	if res.ID != "req-1" || res.CustomerID != "cust-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Category != "kitchen" || res.BudgetRange != "25k_50k" || res.Timeline != "flexible" {
		t.Fatalf("unexpected enums: %+v", res)
	}
	if res.Status != "inspection_scheduled" {
		t.Fatalf("unexpected status: %+v", res)
	}
	if res.InspectionDate == nil || !res.InspectionDate.Equal(inspection) {
		t.Fatalf("unexpected inspection date: %+v", res.InspectionDate)
	}
	if res.BiddingEndDate == nil || !res.BiddingEndDate.Equal(end) {
		t.Fatalf("unexpected bidding end: %+v", res.BiddingEndDate)
	}
}

func TestFromRenovationRequests(t *testing.T) {
	out := FromRenovationRequests([]entities.RenovationRequest{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected slice: %+v", out)
	}

	if out := FromRenovationRequests(nil); len(out) != 0 {
		t.Fatalf("expected empty slice, got %+v", out)
	}
}
