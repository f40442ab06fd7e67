package domain

// GuardCommand carries the create/edit form fields for a guard.
type GuardCommand struct {
	FirstName string `form:"first_name" validate:"required,max=80"`
	LastName  string `form:"last_name" validate:"required,max=80"`
	Phone     string `form:"phone" validate:"max=20"`
	Shift     string `form:"shift" validate:"required,oneof=day night"`
	Photo     string `form:"photo"`
}

// Payload projects the command into the JSON body the backend expects.
func (c GuardCommand) Payload() map[string]any {
	payload := map[string]any{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"phone":      c.Phone,
		"shift":      c.Shift,
	}
	if c.Photo != "" {
		payload["photo"] = c.Photo
	}
	return payload
}

// VisitorCommand carries the create/edit form fields for a visitor entry.
type VisitorCommand struct {
	FullName string `form:"full_name" validate:"required,max=120"`
	Document string `form:"document" validate:"required,max=20"`
	Unit     int    `form:"unit" validate:"required,gt=0"`
	Reason   string `form:"reason" validate:"max=200"`
	EntryAt  string `form:"entry_at" validate:"omitempty,datetime=2006-01-02T15:04"`
	ExitAt   string `form:"exit_at" validate:"omitempty,datetime=2006-01-02T15:04"`
}

func (c VisitorCommand) Payload() map[string]any {
	payload := map[string]any{
		"full_name": c.FullName,
		"document":  c.Document,
		"unit":      c.Unit,
		"reason":    c.Reason,
	}
	if c.EntryAt != "" {
		payload["entry_at"] = c.EntryAt
	}
	if c.ExitAt != "" {
		payload["exit_at"] = c.ExitAt
	}
	return payload
}
