package domain

import "condoYaAdmin/internal/shared/normalization"

// CommonArea is a reservable shared space (pool, gym, event hall).
type CommonArea struct {
	ID          int
	Name        string
	Description string
	Capacity    int
	OpensAt     string // "15:04" as the backend serializes times
	ClosesAt    string
	Photo       string
}

// NormalizeCommonArea constructs a CommonArea from a loosely typed map.
func NormalizeCommonArea(raw map[string]any) (CommonArea, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return CommonArea{}, false
	}
	return CommonArea{
		ID:          id,
		Name:        normalization.AsString(raw["name"]),
		Description: normalization.AsString(raw["description"]),
		Capacity:    normalization.AsInt(raw["capacity"]),
		OpensAt:     normalization.AsString(raw["opens_at"]),
		ClosesAt:    normalization.AsString(raw["closes_at"]),
		Photo:       normalization.AsString(raw["photo"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (a CommonArea) Cells() map[string]any {
	cells := map[string]any{
		"id":          a.ID,
		"name":        a.Name,
		"description": a.Description,
		"capacity":    a.Capacity,
		"opens_at":    a.OpensAt,
		"closes_at":   a.ClosesAt,
	}
	if a.Photo != "" {
		cells["photo"] = a.Photo
	}
	return cells
}
