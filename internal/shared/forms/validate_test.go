package forms

import "testing"

type sampleCommand struct {
	Code         string  `form:"code" validate:"required"`
	SquareMeters float64 `form:"square_meters" validate:"gt=0"`
	Kind         string  `form:"kind" validate:"oneof=house apartment"`
}

func TestFieldErrors_KeyedByFormTag(t *testing.T) {
	fields := FieldErrors(sampleCommand{Kind: "castle"})
	if fields == nil {
		t.Fatal("expected validation errors")
	}
	if fields["code"] != "code is required" {
		t.Fatalf("unexpected code message: %q", fields["code"])
	}
	if fields["square_meters"] != "square_meters must be positive" {
		t.Fatalf("expected form-tag key, got %v", fields)
	}
	if fields["kind"] != "kind must be one of: house apartment" {
		t.Fatalf("unexpected kind message: %q", fields["kind"])
	}
}

func TestFieldErrors_NilWhenValid(t *testing.T) {
	valid := sampleCommand{Code: "A-101", SquareMeters: 82.5, Kind: "apartment"}
	if fields := FieldErrors(valid); fields != nil {
		t.Fatalf("expected nil, got %v", fields)
	}
}
