package domain

import (
	"strings"

	"condoYaAdmin/internal/shared/normalization"
)

// GuardShift is the backend's lowercase shift string.
type GuardShift string

const (
	GuardShiftUnknown GuardShift = ""
	GuardShiftDay     GuardShift = "day"
	GuardShiftNight   GuardShift = "night"
)

// NormalizeGuardShift returns the canonical GuardShift for the given input.
func NormalizeGuardShift(value any) GuardShift {
	s, ok := value.(string)
	if !ok {
		return GuardShiftUnknown
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	switch trimmed {
	case "":
		return GuardShiftUnknown
	case string(GuardShiftDay):
		return GuardShiftDay
	case string(GuardShiftNight):
		return GuardShiftNight
	}
	return GuardShift(trimmed)
}

// Guard is a security guard on the condominium payroll.
type Guard struct {
	ID        int
	FirstName string
	LastName  string
	Phone     string
	Shift     GuardShift
	Photo     string
}

// NormalizeGuard constructs a Guard from a loosely typed map.
func NormalizeGuard(raw map[string]any) (Guard, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Guard{}, false
	}
	return Guard{
		ID:        id,
		FirstName: normalization.AsString(raw["first_name"]),
		LastName:  normalization.AsString(raw["last_name"]),
		Phone:     normalization.AsString(raw["phone"]),
		Shift:     NormalizeGuardShift(raw["shift"]),
		Photo:     normalization.AsString(raw["photo"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (g Guard) Cells() map[string]any {
	cells := map[string]any{
		"id":         g.ID,
		"first_name": g.FirstName,
		"last_name":  g.LastName,
		"phone":      g.Phone,
		"shift":      string(g.Shift),
	}
	if g.Photo != "" {
		cells["photo"] = g.Photo
	}
	return cells
}
