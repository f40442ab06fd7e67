package domain

// AdministratorCommand carries the create/edit form fields for an administrator.
type AdministratorCommand struct {
	FirstName string `form:"first_name" validate:"required,max=80"`
	LastName  string `form:"last_name" validate:"required,max=80"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"max=20"`
	Photo     string `form:"photo"`
}

// Payload projects the command into the JSON body the backend expects.
func (c AdministratorCommand) Payload() map[string]any {
	payload := map[string]any{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
	}
	if c.Photo != "" {
		payload["photo"] = c.Photo
	}
	return payload
}

// CoOwnerCommand carries the create/edit form fields for a co-owner.
type CoOwnerCommand struct {
	FirstName string `form:"first_name" validate:"required,max=80"`
	LastName  string `form:"last_name" validate:"required,max=80"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"max=20"`
	Document  string `form:"document" validate:"required,max=20"`
	Unit      int    `form:"unit" validate:"required,gt=0"`
	Photo     string `form:"photo"`
}

func (c CoOwnerCommand) Payload() map[string]any {
	payload := map[string]any{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
		"document":   c.Document,
		"unit":       c.Unit,
	}
	if c.Photo != "" {
		payload["photo"] = c.Photo
	}
	return payload
}

// ResidentCommand carries the create/edit form fields for a resident.
type ResidentCommand struct {
	FirstName string `form:"first_name" validate:"required,max=80"`
	LastName  string `form:"last_name" validate:"required,max=80"`
	Email     string `form:"email" validate:"omitempty,email"`
	Phone     string `form:"phone" validate:"max=20"`
	BirthDate string `form:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Unit      int    `form:"unit" validate:"required,gt=0"`
	Photo     string `form:"photo"`
}

func (c ResidentCommand) Payload() map[string]any {
	payload := map[string]any{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
		"unit":       c.Unit,
	}
	if c.BirthDate != "" {
		payload["birth_date"] = c.BirthDate
	}
	if c.Photo != "" {
		payload["photo"] = c.Photo
	}
	return payload
}
