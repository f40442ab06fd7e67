package domain

import "condoYaAdmin/internal/shared/normalization"

// Pet is an animal registered against a unit.
type Pet struct {
	ID      int
	Name    string
	Species string
	Breed   string
	UnitID  int
	Photo   string
}

// NormalizePet constructs a Pet from a loosely typed map.
func NormalizePet(raw map[string]any) (Pet, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Pet{}, false
	}
	unitID := normalization.AsInt(raw["unit"])
	if unitID == 0 {
		unitID = normalization.AsInt(raw["unit_id"])
	}
	return Pet{
		ID:      id,
		Name:    normalization.AsString(raw["name"]),
		Species: normalization.AsString(raw["species"]),
		Breed:   normalization.AsString(raw["breed"]),
		UnitID:  unitID,
		Photo:   normalization.AsString(raw["photo"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (p Pet) Cells() map[string]any {
	cells := map[string]any{
		"id":      p.ID,
		"name":    p.Name,
		"species": p.Species,
		"breed":   p.Breed,
	}
	if p.UnitID != 0 {
		cells["unit"] = p.UnitID
	}
	if p.Photo != "" {
		cells["photo"] = p.Photo
	}
	return cells
}
