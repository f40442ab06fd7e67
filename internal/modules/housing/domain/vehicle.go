package domain

import "condoYaAdmin/internal/shared/normalization"

// Vehicle is a resident vehicle registered against a unit.
type Vehicle struct {
	ID     int
	Plate  string
	Brand  string
	Model  string
	Color  string
	UnitID int
	Photo  string
}

// NormalizeVehicle constructs a Vehicle from a loosely typed map.
func NormalizeVehicle(raw map[string]any) (Vehicle, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Vehicle{}, false
	}
	unitID := normalization.AsInt(raw["unit"])
	if unitID == 0 {
		unitID = normalization.AsInt(raw["unit_id"])
	}
	return Vehicle{
		ID:     id,
		Plate:  normalization.AsString(raw["plate"]),
		Brand:  normalization.AsString(raw["brand"]),
		Model:  normalization.AsString(raw["model"]),
		Color:  normalization.AsString(raw["color"]),
		UnitID: unitID,
		Photo:  normalization.AsString(raw["photo"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (v Vehicle) Cells() map[string]any {
	cells := map[string]any{
		"id":    v.ID,
		"plate": v.Plate,
		"brand": v.Brand,
		"model": v.Model,
		"color": v.Color,
	}
	if v.UnitID != 0 {
		cells["unit"] = v.UnitID
	}
	if v.Photo != "" {
		cells["photo"] = v.Photo
	}
	return cells
}
