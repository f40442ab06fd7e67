package domain

import "condoYaAdmin/internal/shared/normalization"

// CoOwner is a property owner tied to a housing unit.
type CoOwner struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Document  string
	UnitID    int
	Photo     string
}

// NormalizeCoOwner constructs a CoOwner from a loosely typed map.
func NormalizeCoOwner(raw map[string]any) (CoOwner, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return CoOwner{}, false
	}
	unitID := normalization.AsInt(raw["unit"])
	if unitID == 0 {
		unitID = normalization.AsInt(raw["unit_id"])
	}
	return CoOwner{
		ID:        id,
		FirstName: normalization.AsString(raw["first_name"]),
		LastName:  normalization.AsString(raw["last_name"]),
		Email:     normalization.AsString(raw["email"]),
		Phone:     normalization.AsString(raw["phone"]),
		Document:  normalization.AsString(raw["document"]),
		UnitID:    unitID,
		Photo:     normalization.AsString(raw["photo"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (o CoOwner) Cells() map[string]any {
	cells := map[string]any{
		"id":         o.ID,
		"first_name": o.FirstName,
		"last_name":  o.LastName,
		"email":      o.Email,
		"phone":      o.Phone,
		"document":   o.Document,
	}
	if o.UnitID != 0 {
		cells["unit"] = o.UnitID
	}
	if o.Photo != "" {
		cells["photo"] = o.Photo
	}
	return cells
}
