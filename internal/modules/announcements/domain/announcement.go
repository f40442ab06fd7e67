package domain

import "condoYaAdmin/internal/shared/normalization"

// Announcement is a notice the administration publishes to residents.
type Announcement struct {
	ID          int
	Title       string
	Body        string
	Urgent      bool
	PublishedAt string // ISO timestamp, rendered as-is
	Image       string
}

// NormalizeAnnouncement constructs an Announcement from a loosely typed map.
func NormalizeAnnouncement(raw map[string]any) (Announcement, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Announcement{}, false
	}
	return Announcement{
		ID:          id,
		Title:       normalization.AsString(raw["title"]),
		Body:        normalization.AsString(raw["body"]),
		Urgent:      normalization.AsBool(raw["urgent"]),
		PublishedAt: normalization.AsString(raw["published_at"]),
		Image:       normalization.AsString(raw["image"]),
	}, true
}

// Cells projects the record into the row map the console screens render.
func (a Announcement) Cells() map[string]any {
	cells := map[string]any{
		"id":           a.ID,
		"title":        a.Title,
		"body":         a.Body,
		"urgent":       a.Urgent,
		"published_at": a.PublishedAt,
	}
	if a.Image != "" {
		cells["image"] = a.Image
	}
	return cells
}
