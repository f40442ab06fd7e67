package infrastructure

import (
	"encoding/json"
	"fmt"
	"io"

	"condoYaAdmin/internal/modules/console/domain"
	"condoYaAdmin/internal/shared/normalization"
)

// pageEnvelope mirrors the backend's pagination envelope:
// {count, next, previous, results}.
type pageEnvelope struct {
	Count    int          `json:"count"`
	Next     string       `json:"next"`
	Previous string       `json:"previous"`
	Results  []domain.Row `json:"results"`
}

// decodePage reads one list response. Enveloped responses keep their "next"
// link; bare arrays (unpaginated endpoints) decode to a single page.
func decodePage(body io.Reader) (pageEnvelope, error) {
	var payload any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return pageEnvelope{}, fmt.Errorf("decode page: %w", err)
	}

	switch typed := payload.(type) {
	case map[string]any:
		envelope := pageEnvelope{
			Count:    normalization.AsInt(typed["count"]),
			Next:     normalization.AsString(typed["next"]),
			Previous: normalization.AsString(typed["previous"]),
		}
		for _, item := range normalization.AsInterfaceSlice(typed["results"]) {
			if row, ok := item.(map[string]any); ok {
				envelope.Results = append(envelope.Results, domain.Row(row))
			}
		}
		return envelope, nil
	case []any:
		envelope := pageEnvelope{Count: len(typed)}
		for _, item := range typed {
			if row, ok := item.(map[string]any); ok {
				envelope.Results = append(envelope.Results, domain.Row(row))
			}
		}
		return envelope, nil
	default:
		return pageEnvelope{}, fmt.Errorf("unexpected page payload %T", payload)
	}
}

// decodeRow reads one detail/create/update response body.
func decodeRow(body io.Reader) (domain.Row, error) {
	var payload map[string]any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return domain.Row(payload), nil
}
