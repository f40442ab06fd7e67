package transport

import (
	"github.com/labstack/echo/v4"

	amenitiesdomain "condoYaAdmin/internal/modules/amenities/domain"
	announcementsdomain "condoYaAdmin/internal/modules/announcements/domain"
	"condoYaAdmin/internal/modules/console/domain"
	housingdomain "condoYaAdmin/internal/modules/housing/domain"
	peopledomain "condoYaAdmin/internal/modules/people/domain"
	securitydomain "condoYaAdmin/internal/modules/security/domain"
	"condoYaAdmin/internal/shared/forms"
)

// Column is one table header on a list screen.
type Column struct {
	Key   string
	Label string
}

// Field describes one input on a create/edit form. Input is the HTML input
// type; Options feed a select.
type Field struct {
	Key      string
	Label    string
	Input    string
	Options  []string
	Required bool
}

// FormParser turns the submitted form into the backend payload, or into
// per-field validation messages.
type FormParser func(c echo.Context) (map[string]any, map[string]string, error)

// EntityDescriptor drives the generic CRUD screens for one entity. Key doubles
// as the URL slug and the endpoint-registry key.
type EntityDescriptor struct {
	Key      string
	Title    string
	Singular string
	Columns  []Column
	Fields   []Field
	Parse    FormParser
	Present  func(domain.Row) domain.Row
}

// present runs the backend row through the entity's typed record before a
// screen renders it; rows the record rejects render raw.
func (d EntityDescriptor) present(row domain.Row) domain.Row {
	if d.Present == nil || row == nil {
		return row
	}
	return d.Present(row)
}

type formCommand interface {
	Payload() map[string]any
}

type rowRecord interface {
	Cells() map[string]any
}

// parseCommand binds the entity's command struct, validates it console-side,
// and projects it into the backend payload.
func parseCommand[C formCommand](c echo.Context) (map[string]any, map[string]string, error) {
	var command C
	if err := c.Bind(&command); err != nil {
		return nil, nil, err
	}
	if fields := forms.FieldErrors(command); fields != nil {
		return nil, fields, nil
	}
	return command.Payload(), nil, nil
}

// presentAs projects rows through the entity's record so screens show
// canonical cell values: trimmed strings, lowercase enums, FK values resolved
// across the backend's key spellings.
func presentAs[R rowRecord](normalize func(map[string]any) (R, bool)) func(domain.Row) domain.Row {
	return func(row domain.Row) domain.Row {
		record, ok := normalize(row)
		if !ok {
			return row
		}
		return domain.Row(record.Cells())
	}
}

var entityDescriptors = []EntityDescriptor{
	{
		Key:      "administrators",
		Title:    "Administrators",
		Singular: "administrator",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "first_name", Label: "First name"},
			{Key: "last_name", Label: "Last name"},
			{Key: "email", Label: "Email"},
			{Key: "phone", Label: "Phone"},
		},
		Fields: []Field{
			{Key: "first_name", Label: "First name", Input: "text", Required: true},
			{Key: "last_name", Label: "Last name", Input: "text", Required: true},
			{Key: "email", Label: "Email", Input: "email", Required: true},
			{Key: "phone", Label: "Phone", Input: "text"},
			{Key: "photo", Label: "Photo (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[peopledomain.AdministratorCommand],
		Present: presentAs(peopledomain.NormalizeAdministrator),
	},
	{
		Key:      "co-owners",
		Title:    "Co-owners",
		Singular: "co-owner",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "first_name", Label: "First name"},
			{Key: "last_name", Label: "Last name"},
			{Key: "email", Label: "Email"},
			{Key: "document", Label: "Document"},
			{Key: "unit", Label: "Unit"},
		},
		Fields: []Field{
			{Key: "first_name", Label: "First name", Input: "text", Required: true},
			{Key: "last_name", Label: "Last name", Input: "text", Required: true},
			{Key: "email", Label: "Email", Input: "email", Required: true},
			{Key: "phone", Label: "Phone", Input: "text"},
			{Key: "document", Label: "Document", Input: "text", Required: true},
			{Key: "unit", Label: "Unit ID", Input: "number", Required: true},
			{Key: "photo", Label: "Photo (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[peopledomain.CoOwnerCommand],
		Present: presentAs(peopledomain.NormalizeCoOwner),
	},
	{
		Key:      "residents",
		Title:    "Residents",
		Singular: "resident",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "first_name", Label: "First name"},
			{Key: "last_name", Label: "Last name"},
			{Key: "email", Label: "Email"},
			{Key: "unit", Label: "Unit"},
			{Key: "birth_date", Label: "Birth date"},
		},
		Fields: []Field{
			{Key: "first_name", Label: "First name", Input: "text", Required: true},
			{Key: "last_name", Label: "Last name", Input: "text", Required: true},
			{Key: "email", Label: "Email", Input: "email"},
			{Key: "phone", Label: "Phone", Input: "text"},
			{Key: "birth_date", Label: "Birth date", Input: "date"},
			{Key: "unit", Label: "Unit ID", Input: "number", Required: true},
			{Key: "photo", Label: "Photo (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[peopledomain.ResidentCommand],
		Present: presentAs(peopledomain.NormalizeResident),
	},
	{
		Key:      "units",
		Title:    "Houses & apartments",
		Singular: "unit",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "code", Label: "Code"},
			{Key: "kind", Label: "Kind"},
			{Key: "block", Label: "Block"},
			{Key: "number", Label: "Number"},
			{Key: "floor", Label: "Floor"},
			{Key: "occupied", Label: "Occupied"},
		},
		Fields: []Field{
			{Key: "code", Label: "Code", Input: "text", Required: true},
			{Key: "kind", Label: "Kind", Input: "select", Options: []string{"house", "apartment"}, Required: true},
			{Key: "block", Label: "Block", Input: "text"},
			{Key: "number", Label: "Number", Input: "text", Required: true},
			{Key: "floor", Label: "Floor", Input: "number"},
			{Key: "square_meters", Label: "Square meters", Input: "number", Required: true},
			{Key: "occupied", Label: "Occupied", Input: "checkbox"},
		},
		Parse:   parseCommand[housingdomain.UnitCommand],
		Present: presentAs(housingdomain.NormalizeUnit),
	},
	{
		Key:      "vehicles",
		Title:    "Vehicles",
		Singular: "vehicle",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "plate", Label: "Plate"},
			{Key: "brand", Label: "Brand"},
			{Key: "model", Label: "Model"},
			{Key: "color", Label: "Color"},
			{Key: "unit", Label: "Unit"},
		},
		Fields: []Field{
			{Key: "plate", Label: "Plate", Input: "text", Required: true},
			{Key: "brand", Label: "Brand", Input: "text"},
			{Key: "model", Label: "Model", Input: "text"},
			{Key: "color", Label: "Color", Input: "text"},
			{Key: "unit", Label: "Unit ID", Input: "number", Required: true},
			{Key: "photo", Label: "Photo (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[housingdomain.VehicleCommand],
		Present: presentAs(housingdomain.NormalizeVehicle),
	},
	{
		Key:      "pets",
		Title:    "Pets",
		Singular: "pet",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Name"},
			{Key: "species", Label: "Species"},
			{Key: "breed", Label: "Breed"},
			{Key: "unit", Label: "Unit"},
		},
		Fields: []Field{
			{Key: "name", Label: "Name", Input: "text", Required: true},
			{Key: "species", Label: "Species", Input: "text", Required: true},
			{Key: "breed", Label: "Breed", Input: "text"},
			{Key: "unit", Label: "Unit ID", Input: "number", Required: true},
			{Key: "photo", Label: "Photo (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[housingdomain.PetCommand],
		Present: presentAs(housingdomain.NormalizePet),
	},
	{
		Key:      "guards",
		Title:    "Guards",
		Singular: "guard",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "first_name", Label: "First name"},
			{Key: "last_name", Label: "Last name"},
			{Key: "phone", Label: "Phone"},
			{Key: "shift", Label: "Shift"},
		},
		Fields: []Field{
			{Key: "first_name", Label: "First name", Input: "text", Required: true},
			{Key: "last_name", Label: "Last name", Input: "text", Required: true},
			{Key: "phone", Label: "Phone", Input: "text"},
			{Key: "shift", Label: "Shift", Input: "select", Options: []string{"day", "night"}, Required: true},
			{Key: "photo", Label: "Photo (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[securitydomain.GuardCommand],
		Present: presentAs(securitydomain.NormalizeGuard),
	},
	{
		Key:      "visitors",
		Title:    "Visitors",
		Singular: "visitor",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "full_name", Label: "Full name"},
			{Key: "document", Label: "Document"},
			{Key: "unit", Label: "Unit"},
			{Key: "entry_at", Label: "Entry"},
			{Key: "exit_at", Label: "Exit"},
		},
		Fields: []Field{
			{Key: "full_name", Label: "Full name", Input: "text", Required: true},
			{Key: "document", Label: "Document", Input: "text", Required: true},
			{Key: "unit", Label: "Unit ID", Input: "number", Required: true},
			{Key: "reason", Label: "Reason", Input: "text"},
			{Key: "entry_at", Label: "Entry", Input: "datetime-local"},
			{Key: "exit_at", Label: "Exit", Input: "datetime-local"},
		},
		Parse:   parseCommand[securitydomain.VisitorCommand],
		Present: presentAs(securitydomain.NormalizeVisitor),
	},
	{
		Key:      "common-areas",
		Title:    "Common areas",
		Singular: "common area",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Name"},
			{Key: "capacity", Label: "Capacity"},
			{Key: "opens_at", Label: "Opens"},
			{Key: "closes_at", Label: "Closes"},
		},
		Fields: []Field{
			{Key: "name", Label: "Name", Input: "text", Required: true},
			{Key: "description", Label: "Description", Input: "textarea"},
			{Key: "capacity", Label: "Capacity", Input: "number", Required: true},
			{Key: "opens_at", Label: "Opens at", Input: "time"},
			{Key: "closes_at", Label: "Closes at", Input: "time"},
			{Key: "photo", Label: "Photo (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[amenitiesdomain.CommonAreaCommand],
		Present: presentAs(amenitiesdomain.NormalizeCommonArea),
	},
	{
		Key:      "announcements",
		Title:    "Announcements",
		Singular: "announcement",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "title", Label: "Title"},
			{Key: "urgent", Label: "Urgent"},
			{Key: "published_at", Label: "Published"},
		},
		Fields: []Field{
			{Key: "title", Label: "Title", Input: "text", Required: true},
			{Key: "body", Label: "Body", Input: "textarea", Required: true},
			{Key: "urgent", Label: "Urgent", Input: "checkbox"},
			{Key: "image", Label: "Image (base64)", Input: "textarea"},
		},
		Parse:   parseCommand[announcementsdomain.AnnouncementCommand],
		Present: presentAs(announcementsdomain.NormalizeAnnouncement),
	},
	{
		Key:      "reservations",
		Title:    "Reservation requests",
		Singular: "reservation request",
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "common_area", Label: "Area"},
			{Key: "resident", Label: "Resident"},
			{Key: "date", Label: "Date"},
			{Key: "start_time", Label: "From"},
			{Key: "end_time", Label: "To"},
			{Key: "status", Label: "Status"},
		},
		Fields: []Field{
			{Key: "common_area", Label: "Common area ID", Input: "number", Required: true},
			{Key: "resident", Label: "Resident ID", Input: "number", Required: true},
			{Key: "date", Label: "Date", Input: "date", Required: true},
			{Key: "start_time", Label: "From", Input: "time", Required: true},
			{Key: "end_time", Label: "To", Input: "time", Required: true},
			{Key: "status", Label: "Status", Input: "select", Options: []string{"pending", "approved", "rejected", "cancelled"}},
			{Key: "notes", Label: "Notes", Input: "textarea"},
		},
		Parse:   parseCommand[amenitiesdomain.ReservationRequestCommand],
		Present: presentAs(amenitiesdomain.NormalizeReservationRequest),
	},
}

var descriptorsByKey = func() map[string]EntityDescriptor {
	byKey := make(map[string]EntityDescriptor, len(entityDescriptors))
	for _, descriptor := range entityDescriptors {
		byKey[descriptor.Key] = descriptor
	}
	return byKey
}()

func lookupDescriptor(key string) (EntityDescriptor, bool) {
	descriptor, ok := descriptorsByKey[key]
	return descriptor, ok
}
