package domain

import "testing"

func TestNormalizeReservationRequest(t *testing.T) {
	raw := map[string]any{
		"id":          float64(12),
		"common_area": "3",
		"resident":    float64(8),
		"date":        "2026-09-01",
		"start_time":  "10:00",
		"end_time":    "12:00",
		"status":      " Approved ",
	}

	request, ok := NormalizeReservationRequest(raw)
	if !ok {
		t.Fatal("expected reservation request")
	}
	if request.CommonAreaID != 3 || request.ResidentID != 8 {
		t.Fatalf("unexpected references: %+v", request)
	}
	if request.Status != ReservationStatusApproved {
		t.Fatalf("unexpected status: %s", request.Status)
	}
}

func TestNormalizeReservationRequest_StateFallback(t *testing.T) {
	request, ok := NormalizeReservationRequest(map[string]any{"id": float64(1), "state": "pending"})
	if !ok {
		t.Fatal("expected reservation request")
	}
	if request.Status != ReservationStatusPending {
		t.Fatalf("unexpected status: %s", request.Status)
	}
}

func TestNormalizeReservationRequest_AreaKeySpellings(t *testing.T) {
	request, ok := NormalizeReservationRequest(map[string]any{"id": float64(2), "commonArea": float64(5)})
	if !ok {
		t.Fatal("expected reservation request")
	}
	if request.CommonAreaID != 5 {
		t.Fatalf("expected camelCase area key resolved, got %d", request.CommonAreaID)
	}
}

func TestReservationRequestCells(t *testing.T) {
	request := ReservationRequest{ID: 12, CommonAreaID: 3, Date: "2026-09-01", Status: ReservationStatusApproved}
	cells := request.Cells()
	if cells["common_area"] != 3 {
		t.Fatalf("unexpected area cell: %v", cells["common_area"])
	}
	if cells["status"] != "approved" {
		t.Fatalf("unexpected status cell: %v", cells["status"])
	}
	if _, ok := cells["resident"]; ok {
		t.Fatal("expected missing resident reference omitted")
	}
}

func TestNormalizeReservationRequest_MissingID(t *testing.T) {
	if _, ok := NormalizeReservationRequest(map[string]any{"status": "pending"}); ok {
		t.Fatal("expected rejection without id")
	}
}

func TestNormalizeReservationStatus_KeepsUnknownValues(t *testing.T) {
	if got := NormalizeReservationStatus("ON_HOLD"); got != ReservationStatus("on_hold") {
		t.Fatalf("unexpected status: %s", got)
	}
	if got := NormalizeReservationStatus(42); got != ReservationStatusUnknown {
		t.Fatalf("expected unknown for non-string, got %s", got)
	}
}
