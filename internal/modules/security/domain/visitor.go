package domain

import "condoYaAdmin/internal/shared/normalization"

// Visitor is one gate entry logged against a unit.
type Visitor struct {
	ID       int
	FullName string
	Document string
	UnitID   int
	Reason   string
	EntryAt  string // ISO timestamps, rendered as-is
	ExitAt   string
}

// NormalizeVisitor constructs a Visitor from a loosely typed map.
func NormalizeVisitor(raw map[string]any) (Visitor, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Visitor{}, false
	}
	unitID := normalization.AsInt(raw["unit"])
	if unitID == 0 {
		unitID = normalization.AsInt(raw["unit_id"])
	}
	return Visitor{
		ID:       id,
		FullName: normalization.AsString(raw["full_name"]),
		Document: normalization.AsString(raw["document"]),
		UnitID:   unitID,
		Reason:   normalization.AsString(raw["reason"]),
		EntryAt:  normalization.AsString(raw["entry_at"]),
		ExitAt:   normalization.AsString(raw["exit_at"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (v Visitor) Cells() map[string]any {
	cells := map[string]any{
		"id":        v.ID,
		"full_name": v.FullName,
		"document":  v.Document,
		"reason":    v.Reason,
		"entry_at":  v.EntryAt,
		"exit_at":   v.ExitAt,
	}
	if v.UnitID != 0 {
		cells["unit"] = v.UnitID
	}
	return cells
}
