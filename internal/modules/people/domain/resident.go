package domain

import "condoYaAdmin/internal/shared/normalization"

// Resident lives in a housing unit without necessarily owning it.
type Resident struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate string // "2006-01-02" as the backend serializes it
	UnitID    int
	Photo     string
}

// NormalizeResident constructs a Resident from a loosely typed map.
func NormalizeResident(raw map[string]any) (Resident, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Resident{}, false
	}
	unitID := normalization.AsInt(raw["unit"])
	if unitID == 0 {
		unitID = normalization.AsInt(raw["unit_id"])
	}
	return Resident{
		ID:        id,
		FirstName: normalization.AsString(raw["first_name"]),
		LastName:  normalization.AsString(raw["last_name"]),
		Email:     normalization.AsString(raw["email"]),
		Phone:     normalization.AsString(raw["phone"]),
		BirthDate: normalization.AsString(raw["birth_date"]),
		UnitID:    unitID,
		Photo:     normalization.AsString(raw["photo"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (r Resident) Cells() map[string]any {
	cells := map[string]any{
		"id":         r.ID,
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"email":      r.Email,
		"phone":      r.Phone,
		"birth_date": r.BirthDate,
	}
	if r.UnitID != 0 {
		cells["unit"] = r.UnitID
	}
	if r.Photo != "" {
		cells["photo"] = r.Photo
	}
	return cells
}
