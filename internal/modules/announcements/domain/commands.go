package domain

// AnnouncementCommand carries the create/edit form fields for an announcement.
type AnnouncementCommand struct {
	Title  string `form:"title" validate:"required,max=120"`
	Body   string `form:"body" validate:"required,max=2000"`
	Urgent bool   `form:"urgent"`
	Image  string `form:"image"`
}

// Payload projects the command into the JSON body the backend expects.
func (c AnnouncementCommand) Payload() map[string]any {
	payload := map[string]any{
		"title":  c.Title,
		"body":   c.Body,
		"urgent": c.Urgent,
	}
	if c.Image != "" {
		payload["image"] = c.Image
	}
	return payload
}
