package domain

// UnitCommand carries the create/edit form fields for a housing unit.
type UnitCommand struct {
	Code         string  `form:"code" validate:"required,max=20"`
	Kind         string  `form:"kind" validate:"required,oneof=house apartment"`
	Block        string  `form:"block" validate:"max=10"`
	Number       string  `form:"number" validate:"required,max=10"`
	Floor        int     `form:"floor" validate:"gte=0"`
	SquareMeters float64 `form:"square_meters" validate:"gt=0"`
	Occupied     bool    `form:"occupied"`
}

// Payload projects the command into the JSON body the backend expects.
func (c UnitCommand) Payload() map[string]any {
	return map[string]any{
		"code":          c.Code,
		"kind":          c.Kind,
		"block":         c.Block,
		"number":        c.Number,
		"floor":         c.Floor,
		"square_meters": c.SquareMeters,
		"occupied":      c.Occupied,
	}
}

// VehicleCommand carries the create/edit form fields for a vehicle.
type VehicleCommand struct {
	Plate string `form:"plate" validate:"required,max=10"`
	Brand string `form:"brand" validate:"max=40"`
	Model string `form:"model" validate:"max=40"`
	Color string `form:"color" validate:"max=20"`
	Unit  int    `form:"unit" validate:"required,gt=0"`
	Photo string `form:"photo"`
}

func (c VehicleCommand) Payload() map[string]any {
	payload := map[string]any{
		"plate": c.Plate,
		"brand": c.Brand,
		"model": c.Model,
		"color": c.Color,
		"unit":  c.Unit,
	}
	if c.Photo != "" {
		payload["photo"] = c.Photo
	}
	return payload
}

// PetCommand carries the create/edit form fields for a pet.
type PetCommand struct {
	Name    string `form:"name" validate:"required,max=40"`
	Species string `form:"species" validate:"required,max=30"`
	Breed   string `form:"breed" validate:"max=40"`
	Unit    int    `form:"unit" validate:"required,gt=0"`
	Photo   string `form:"photo"`
}

func (c PetCommand) Payload() map[string]any {
	payload := map[string]any{
		"name":    c.Name,
		"species": c.Species,
		"breed":   c.Breed,
		"unit":    c.Unit,
	}
	if c.Photo != "" {
		payload["photo"] = c.Photo
	}
	return payload
}
