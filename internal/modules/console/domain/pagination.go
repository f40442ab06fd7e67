package domain

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// PagedQuery encapsulates paging, filtering, and sorting preferences shared by the
// entity list screens.
type PagedQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

// Normalize returns a sanitized copy applying defaults and bounds.
func (q PagedQuery) Normalize() PagedQuery {
	normalized := q
	if normalized.Page <= 0 {
		normalized.Page = 1
	}
	if normalized.Limit <= 0 {
		normalized.Limit = 20
	}
	if normalized.Limit > 100 {
		normalized.Limit = 100
	}

	normalized.Search = strings.TrimSpace(normalized.Search)
	normalized.SortBy = strings.TrimSpace(normalized.SortBy)
	normalized.SortOrder = strings.ToUpper(strings.TrimSpace(normalized.SortOrder))
	if normalized.SortOrder != "DESC" {
		normalized.SortOrder = "ASC"
	}

	if len(normalized.Filters) > 0 {
		normalized.Filters = sanitizeFilters(normalized.Filters)
	}

	return normalized
}

// CanonicalKey builds a stable cache key for the combination of paging parameters.
func (q PagedQuery) CanonicalKey() string {
	normalized := q.Normalize()
	search := strings.ToLower(normalized.Search)
	sortBy := strings.ToLower(normalized.SortBy)
	filtersKey := canonicalFiltersKey(normalized.Filters)

	var builder strings.Builder
	builder.Grow(len(search) + len(sortBy) + len(filtersKey) + 32)
	builder.WriteString("page=")
	builder.WriteString(strconv.Itoa(normalized.Page))
	builder.WriteString("&limit=")
	builder.WriteString(strconv.Itoa(normalized.Limit))
	builder.WriteString("&search=")
	builder.WriteString(search)
	builder.WriteString("&sortBy=")
	builder.WriteString(sortBy)
	builder.WriteString("&sortOrder=")
	builder.WriteString(normalized.SortOrder)
	if filtersKey != "" {
		builder.WriteString("&filters=")
		builder.WriteString(filtersKey)
	}

	return builder.String()
}

// FromURLValues reads the table state out of list-screen query parameters.
func FromURLValues(values url.Values) PagedQuery {
	query := PagedQuery{
		Search:    values.Get("q"),
		SortBy:    values.Get("sort"),
		SortOrder: values.Get("order"),
	}
	if page, err := strconv.Atoi(strings.TrimSpace(values.Get("page"))); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(strings.TrimSpace(values.Get("limit"))); err == nil {
		query.Limit = limit
	}
	return query.Normalize()
}

func sanitizeFilters(filters map[string]string) map[string]string {
	if len(filters) == 0 {
		return nil
	}
	sanitized := make(map[string]string, len(filters))
	for key, value := range filters {
		trimmedKey := strings.TrimSpace(key)
		trimmedValue := strings.TrimSpace(value)
		if trimmedKey == "" || trimmedValue == "" {
			continue
		}
		sanitized[strings.ToLower(trimmedKey)] = trimmedValue
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}

func canonicalFiltersKey(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var builder strings.Builder
	for index, key := range keys {
		if index > 0 {
			builder.WriteString(";")
		}
		builder.WriteString(key)
		builder.WriteString("=")
		builder.WriteString(filters[key])
	}
	return builder.String()
}
