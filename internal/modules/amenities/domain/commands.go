package domain

// CommonAreaCommand carries the create/edit form fields for a common area.
type CommonAreaCommand struct {
	Name        string `form:"name" validate:"required,max=80"`
	Description string `form:"description" validate:"max=400"`
	Capacity    int    `form:"capacity" validate:"required,gt=0"`
	OpensAt     string `form:"opens_at" validate:"omitempty,datetime=15:04"`
	ClosesAt    string `form:"closes_at" validate:"omitempty,datetime=15:04"`
	Photo       string `form:"photo"`
}

// Payload projects the command into the JSON body the backend expects.
func (c CommonAreaCommand) Payload() map[string]any {
	payload := map[string]any{
		"name":        c.Name,
		"description": c.Description,
		"capacity":    c.Capacity,
	}
	if c.OpensAt != "" {
		payload["opens_at"] = c.OpensAt
	}
	if c.ClosesAt != "" {
		payload["closes_at"] = c.ClosesAt
	}
	if c.Photo != "" {
		payload["photo"] = c.Photo
	}
	return payload
}

// ReservationRequestCommand carries the create/edit form fields for a
// reservation request.
type ReservationRequestCommand struct {
	CommonArea int    `form:"common_area" validate:"required,gt=0"`
	Resident   int    `form:"resident" validate:"required,gt=0"`
	Date       string `form:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `form:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `form:"end_time" validate:"required,datetime=15:04"`
	Status     string `form:"status" validate:"omitempty,oneof=pending approved rejected cancelled"`
	Notes      string `form:"notes" validate:"max=400"`
}

func (c ReservationRequestCommand) Payload() map[string]any {
	payload := map[string]any{
		"common_area": c.CommonArea,
		"resident":    c.Resident,
		"date":        c.Date,
		"start_time":  c.StartTime,
		"end_time":    c.EndTime,
		"notes":       c.Notes,
	}
	if c.Status != "" {
		payload["status"] = c.Status
	}
	return payload
}
