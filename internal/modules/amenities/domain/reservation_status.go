package domain

import "strings"

// ReservationStatus is the lifecycle of a reservation request as exposed by
// the REST API. The backend serializes lowercase strings.
type ReservationStatus string

const (
	ReservationStatusUnknown   ReservationStatus = ""
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusApproved  ReservationStatus = "approved"
	ReservationStatusRejected  ReservationStatus = "rejected"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

var allowedReservationStatuses = map[string]ReservationStatus{
	string(ReservationStatusPending):   ReservationStatusPending,
	string(ReservationStatusApproved):  ReservationStatusApproved,
	string(ReservationStatusRejected):  ReservationStatusRejected,
	string(ReservationStatusCancelled): ReservationStatusCancelled,
}

// NormalizeReservationStatus returns the canonical ReservationStatus for the
// given input. Unknown statuses are lowercased and returned as-is to avoid
// data loss.
func NormalizeReservationStatus(value any) ReservationStatus {
	s, ok := value.(string)
	if !ok {
		return ReservationStatusUnknown
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return ReservationStatusUnknown
	}
	if status, ok := allowedReservationStatuses[trimmed]; ok {
		return status
	}
	return ReservationStatus(trimmed)
}
