package port

import (
	"context"
	"errors"
	"sort"
	"strings"

	"condoYaAdmin/internal/modules/console/domain"
)

var (
	// ErrUnauthorized marks a backend 401; the auth layer reacts with a token refresh.
	ErrUnauthorized = errors.New("backend rejected credentials")
	ErrForbidden    = errors.New("backend forbade the operation")
	ErrNotFound     = errors.New("resource not found")
	// ErrUnsupported marks an entity key absent from the endpoint registry.
	ErrUnsupported = errors.New("entity not supported")
	// ErrValidation is the sentinel unwrapped by ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries the per-field messages a form re-render needs. It comes
// either from console-side validation or from a backend 400 body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+e.Fields[key])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FieldErrors extracts the field map when err wraps a ValidationError.
func FieldErrors(err error) map[string]string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Fields
	}
	return nil
}

// Directory is the console's window onto the backend's CRUD endpoints. Every
// operation is a plain REST call; the console owns no entity state.
type Directory interface {
	// ListRows fetches the full row set for entity, following the backend's
	// pagination envelope until exhausted (or the configured page cap).
	ListRows(ctx context.Context, token, entity string) ([]domain.Row, error)
	GetRow(ctx context.Context, token, entity, id string) (domain.Row, error)
	CreateRow(ctx context.Context, token, entity string, payload map[string]any) (domain.Row, error)
	UpdateRow(ctx context.Context, token, entity, id string, payload map[string]any) (domain.Row, error)
	DeleteRow(ctx context.Context, token, entity, id string) error
}
