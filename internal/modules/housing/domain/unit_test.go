package domain

import "testing"

func TestNormalizeUnit(t *testing.T) {
	raw := map[string]any{
		"id":            float64(5),
		"code":          " A-101 ",
		"kind":          "Apartment",
		"floor":         "3",
		"square_meters": float64(82.5),
		"occupied":      true,
	}

	unit, ok := NormalizeUnit(raw)
	if !ok {
		t.Fatal("expected unit")
	}
	if unit.Code != "A-101" {
		t.Fatalf("unexpected code: %q", unit.Code)
	}
	if unit.Kind != UnitKindApartment {
		t.Fatalf("unexpected kind: %s", unit.Kind)
	}
	if unit.Floor != 3 || unit.SquareMeters != 82.5 {
		t.Fatalf("unexpected measures: %+v", unit)
	}
	if !unit.Occupied {
		t.Fatal("expected occupied")
	}
}

func TestNormalizeUnit_MissingID(t *testing.T) {
	if _, ok := NormalizeUnit(map[string]any{"code": "A-101"}); ok {
		t.Fatal("expected rejection without id")
	}
}

func TestNormalizeUnitKind_KeepsUnknownValues(t *testing.T) {
	if got := NormalizeUnitKind("Penthouse"); got != UnitKind("penthouse") {
		t.Fatalf("unexpected kind: %s", got)
	}
	if got := NormalizeUnitKind(nil); got != UnitKindUnknown {
		t.Fatalf("expected unknown, got %s", got)
	}
}
