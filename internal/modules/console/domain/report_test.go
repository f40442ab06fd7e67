package domain

import (
	"testing"
	"time"
)

func TestBuildUsageReport(t *testing.T) {
	areas := []Row{
		{"id": float64(1), "name": "Pool"},
		{"id": float64(2), "name": "Gym"},
	}
	reservations := []Row{
		{"id": float64(10), "common_area": float64(1), "status": "approved", "date": "2026-07-01"},
		{"id": float64(11), "common_area": float64(1), "status": "pending", "date": "2026-07-15"},
		{"id": float64(12), "common_area": float64(2), "status": "APPROVED", "date": "2026-08-02"},
		{"id": float64(13), "status": "rejected", "date": "2026-08-03"},
	}

	report := BuildUsageReport(reservations, areas, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	if report.TotalReservations != 4 {
		t.Fatalf("expected 4 reservations, got %d", report.TotalReservations)
	}
	if report.StatusTotals["approved"] != 2 {
		t.Fatalf("expected 2 approved, got %d", report.StatusTotals["approved"])
	}
	if report.StatusTotals["rejected"] != 1 {
		t.Fatalf("expected 1 rejected, got %d", report.StatusTotals["rejected"])
	}

	if len(report.Areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(report.Areas))
	}
	if report.Areas[0].AreaName != "Pool" || report.Areas[0].Reservations != 2 {
		t.Fatalf("expected Pool with 2 reservations first, got %+v", report.Areas[0])
	}
	if report.Areas[0].Approved != 1 {
		t.Fatalf("expected 1 approved for Pool, got %d", report.Areas[0].Approved)
	}

	if len(report.Monthly) != 2 {
		t.Fatalf("expected 2 months, got %d", len(report.Monthly))
	}
	if report.Monthly[0].Month != "2026-07" || report.Monthly[0].Count != 2 {
		t.Fatalf("unexpected first month: %+v", report.Monthly[0])
	}
}

func TestBuildUsageReport_NormalizesLegacyRows(t *testing.T) {
	areas := []Row{{"id": float64(1), "name": "Pool"}}
	reservations := []Row{
		{"id": float64(1), "commonArea": float64(1), "state": " Approved ", "date": "2026-06-05"},
		{"common_area": float64(1), "status": "pending"},
	}

	report := BuildUsageReport(reservations, areas, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	if report.TotalReservations != 2 {
		t.Fatalf("expected both rows counted, got %d", report.TotalReservations)
	}
	if report.StatusTotals["approved"] != 1 {
		t.Fatalf("expected state fallback counted as approved, got %v", report.StatusTotals)
	}
	if report.StatusTotals["unknown"] != 1 {
		t.Fatalf("expected row without id counted as unknown, got %v", report.StatusTotals)
	}
	if report.Areas[0].Reservations != 1 || report.Areas[0].Approved != 1 {
		t.Fatalf("expected camelCase area key resolved, got %+v", report.Areas[0])
	}
	if len(report.Monthly) != 1 || report.Monthly[0].Month != "2026-06" {
		t.Fatalf("unexpected monthly totals: %+v", report.Monthly)
	}
}

func TestBuildUsageReport_UnknownStatusAndArea(t *testing.T) {
	reservations := []Row{
		{"id": float64(1), "common_area": float64(9)},
	}

	report := BuildUsageReport(reservations, nil, time.Now())

	if report.StatusTotals["unknown"] != 1 {
		t.Fatalf("expected unknown status counted, got %v", report.StatusTotals)
	}
	if len(report.Areas) != 1 || report.Areas[0].AreaID != 9 {
		t.Fatalf("expected unnamed area kept, got %+v", report.Areas)
	}
}
