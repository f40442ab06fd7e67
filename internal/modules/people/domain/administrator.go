package domain

import "condoYaAdmin/internal/shared/normalization"

// Administrator represents a platform administrator account as exposed by the
// REST API.
type Administrator struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Photo     string // base64, passed through untouched
}

// NormalizeAdministrator constructs an Administrator from a loosely typed map.
func NormalizeAdministrator(raw map[string]any) (Administrator, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Administrator{}, false
	}
	return Administrator{
		ID:        id,
		FirstName: normalization.AsString(raw["first_name"]),
		LastName:  normalization.AsString(raw["last_name"]),
		Email:     normalization.AsString(raw["email"]),
		Phone:     normalization.AsString(raw["phone"]),
		Photo:     normalization.AsString(raw["photo"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (a Administrator) Cells() map[string]any {
	cells := map[string]any{
		"id":         a.ID,
		"first_name": a.FirstName,
		"last_name":  a.LastName,
		"full_name":  a.FullName(),
		"email":      a.Email,
		"phone":      a.Phone,
	}
	if a.Photo != "" {
		cells["photo"] = a.Photo
	}
	return cells
}

// FullName joins the name fields the way list screens display them.
func (a Administrator) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
