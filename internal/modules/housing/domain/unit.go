package domain

import (
	"strings"

	"condoYaAdmin/internal/shared/normalization"
)

// UnitKind distinguishes houses from apartments; the backend serializes it as a
// lowercase string.
type UnitKind string

const (
	UnitKindUnknown   UnitKind = ""
	UnitKindHouse     UnitKind = "house"
	UnitKindApartment UnitKind = "apartment"
)

// NormalizeUnitKind returns the canonical UnitKind for the given input.
// Unknown kinds are lowercased and returned as-is to avoid data loss.
func NormalizeUnitKind(value any) UnitKind {
	s, ok := value.(string)
	if !ok {
		return UnitKindUnknown
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	switch trimmed {
	case "":
		return UnitKindUnknown
	case string(UnitKindHouse):
		return UnitKindHouse
	case string(UnitKindApartment):
		return UnitKindApartment
	}
	return UnitKind(trimmed)
}

// Unit is one house or apartment in the condominium.
type Unit struct {
	ID           int
	Code         string
	Kind         UnitKind
	Block        string
	Number       string
	Floor        int
	SquareMeters float64
	Occupied     bool
}

// NormalizeUnit constructs a Unit from a loosely typed map.
func NormalizeUnit(raw map[string]any) (Unit, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Unit{}, false
	}
	return Unit{
		ID:           id,
		Code:         normalization.AsString(raw["code"]),
		Kind:         NormalizeUnitKind(raw["kind"]),
		Block:        normalization.AsString(raw["block"]),
		Number:       normalization.AsString(raw["number"]),
		Floor:        normalization.AsInt(raw["floor"]),
		SquareMeters: normalization.AsFloat64(raw["square_meters"]),
		Occupied:     normalization.AsBool(raw["occupied"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (u Unit) Cells() map[string]any {
	return map[string]any{
		"id":            u.ID,
		"code":          u.Code,
		"kind":          string(u.Kind),
		"block":         u.Block,
		"number":        u.Number,
		"floor":         u.Floor,
		"square_meters": u.SquareMeters,
		"occupied":      u.Occupied,
	}
}
