package domain

import (
	"sort"
	"time"

	amenities "condoYaAdmin/internal/modules/amenities/domain"
	"condoYaAdmin/internal/shared/normalization"
)

// AreaUsage aggregates reservation activity for a single common area.
type AreaUsage struct {
	AreaID       int
	AreaName     string
	Reservations int
	Approved     int
}

// MonthlyUsage counts reservations that fall in one calendar month.
type MonthlyUsage struct {
	Month string // "2006-01"
	Count int
}

// UsageReport is the console-side aggregation over bulk-fetched reservation
// requests and common areas. Nothing here is authoritative; it is a view over
// whatever rows the backend returned.
type UsageReport struct {
	GeneratedAt       time.Time
	TotalReservations int
	Areas             []AreaUsage
	StatusTotals      map[string]int
	Monthly           []MonthlyUsage
}

// BuildUsageReport folds reservation rows against the common-area rows that name
// them, normalizing both through the amenities records so status casing and FK
// spellings resolve the same way the CRUD screens resolve them. Rows the
// records reject still count in the totals, under the unknown status.
func BuildUsageReport(reservations, areas []Row, now time.Time) UsageReport {
	report := UsageReport{
		GeneratedAt:  now.UTC(),
		StatusTotals: make(map[string]int),
	}

	usage := make(map[int]*AreaUsage, len(areas))
	for _, row := range areas {
		area, ok := amenities.NormalizeCommonArea(row)
		if !ok {
			continue
		}
		usage[area.ID] = &AreaUsage{AreaID: area.ID, AreaName: area.Name}
	}

	monthly := make(map[string]int)
	for _, row := range reservations {
		report.TotalReservations++

		request, ok := amenities.NormalizeReservationRequest(row)
		status := string(request.Status)
		if !ok || status == "" {
			status = "unknown"
		}
		report.StatusTotals[status]++

		if month := reservationMonth(request.Date, row); month != "" {
			monthly[month]++
		}

		entry, known := usage[request.CommonAreaID]
		if !known {
			if request.CommonAreaID == 0 {
				continue
			}
			entry = &AreaUsage{AreaID: request.CommonAreaID}
			usage[request.CommonAreaID] = entry
		}
		entry.Reservations++
		if request.Status == amenities.ReservationStatusApproved {
			entry.Approved++
		}
	}

	report.Areas = make([]AreaUsage, 0, len(usage))
	for _, entry := range usage {
		report.Areas = append(report.Areas, *entry)
	}
	sort.Slice(report.Areas, func(i, j int) bool {
		if report.Areas[i].Reservations != report.Areas[j].Reservations {
			return report.Areas[i].Reservations > report.Areas[j].Reservations
		}
		return report.Areas[i].AreaName < report.Areas[j].AreaName
	})

	report.Monthly = make([]MonthlyUsage, 0, len(monthly))
	for month, count := range monthly {
		report.Monthly = append(report.Monthly, MonthlyUsage{Month: month, Count: count})
	}
	sort.Slice(report.Monthly, func(i, j int) bool {
		return report.Monthly[i].Month < report.Monthly[j].Month
	})

	return report
}

// reservationMonth prefers the normalized reservation date; legacy rows that
// serialize the date elsewhere fall back to the raw keys.
func reservationMonth(date string, reservation Row) string {
	candidates := []string{date}
	for _, key := range []string{"reservation_date", "created_at"} {
		candidates = append(candidates, normalization.AsString(reservation[key]))
	}
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if parsed, err := time.Parse(layout, raw); err == nil {
				return parsed.Format("2006-01")
			}
		}
		if len(raw) >= 7 {
			return raw[:7]
		}
	}
	return ""
}
