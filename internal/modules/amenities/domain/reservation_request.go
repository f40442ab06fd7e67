package domain

import "condoYaAdmin/internal/shared/normalization"

// ReservationRequest is a resident's request to use a common area.
type ReservationRequest struct {
	ID           int
	CommonAreaID int
	ResidentID   int
	Date         string // "2006-01-02"
	StartTime    string // "15:04"
	EndTime      string
	Status       ReservationStatus
	Notes        string
}

// NormalizeReservationRequest constructs a ReservationRequest from a loosely
// typed map.
func NormalizeReservationRequest(raw map[string]any) (ReservationRequest, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return ReservationRequest{}, false
	}

	areaID := normalization.AsInt(raw["common_area"])
	if areaID == 0 {
		areaID = normalization.AsInt(raw["common_area_id"])
	}
	if areaID == 0 {
		areaID = normalization.AsInt(raw["commonArea"])
	}
	residentID := normalization.AsInt(raw["resident"])
	if residentID == 0 {
		residentID = normalization.AsInt(raw["resident_id"])
	}

	request := ReservationRequest{
		ID:           id,
		CommonAreaID: areaID,
		ResidentID:   residentID,
		Date:         normalization.AsString(raw["date"]),
		StartTime:    normalization.AsString(raw["start_time"]),
		EndTime:      normalization.AsString(raw["end_time"]),
		Notes:        normalization.AsString(raw["notes"]),
	}

	status := NormalizeReservationStatus(raw["status"])
	if status == ReservationStatusUnknown {
		status = NormalizeReservationStatus(raw["state"])
	}
	request.Status = status

	return request, true
}

// Cells projects the record into the row map the console screens render.
func (r ReservationRequest) Cells() map[string]any {
	cells := map[string]any{
		"id":         r.ID,
		"date":       r.Date,
		"start_time": r.StartTime,
		"end_time":   r.EndTime,
		"status":     string(r.Status),
		"notes":      r.Notes,
	}
	if r.CommonAreaID != 0 {
		cells["common_area"] = r.CommonAreaID
	}
	if r.ResidentID != 0 {
		cells["resident"] = r.ResidentID
	}
	return cells
}
