package infrastructure

import "strings"

// entityEndpoint describes how one console entity maps onto the backend's DRF
// router. Detail paths are always listPath + id + "/".
type entityEndpoint struct {
	listPath string
}

var entityEndpoints = map[string]entityEndpoint{
	"administrators": {listPath: "/api/administrators/"},
	"co-owners":      {listPath: "/api/co-owners/"},
	"residents":      {listPath: "/api/residents/"},
	"units":          {listPath: "/api/units/"},
	"vehicles":       {listPath: "/api/vehicles/"},
	"pets":           {listPath: "/api/pets/"},
	"guards":         {listPath: "/api/guards/"},
	"visitors":       {listPath: "/api/visitors/"},
	"common-areas":   {listPath: "/api/common-areas/"},
	"announcements":  {listPath: "/api/announcements/"},
	"reservations":   {listPath: "/api/reservations/"},
}

func (e entityEndpoint) detailPath(id string) string {
	return strings.TrimRight(e.listPath, "/") + "/" + strings.TrimSpace(id) + "/"
}

func lookupEndpoint(entity string) (entityEndpoint, bool) {
	endpoint, ok := entityEndpoints[strings.ToLower(strings.TrimSpace(entity))]
	return endpoint, ok
}
