package domain

import (
	"sort"
	"strings"

	"condoYaAdmin/internal/shared/normalization"
)

// Row is one backend record as rendered in a table. Rows keep the loosely typed
// shape returned by the REST layer; typed records exist only where forms need them.
type Row map[string]any

// TablePage is the slice of rows a list screen actually renders, plus the
// metadata the pagination widget needs.
type TablePage struct {
	Rows  []Row
	Total int
	Page  int
	Pages int
	Limit int
	Query PagedQuery
}

// Cell returns the row's value for column, tolerating the same key spellings
// lookupColumn does. Templates use it to render table cells.
func (r Row) Cell(column string) any {
	value, _ := lookupColumn(r, column)
	return value
}

// ApplyQuery runs the console-side pipeline over rows already fetched in bulk:
// substring search, column sort, then slice pagination. The backend is never
// consulted here.
func ApplyQuery(rows []Row, query PagedQuery) TablePage {
	normalized := query.Normalize()

	filtered := filterRows(rows, normalized.Search)
	filtered = applyColumnFilters(filtered, normalized.Filters)
	if normalized.SortBy != "" {
		sortRows(filtered, normalized.SortBy, normalized.SortOrder == "DESC")
	}

	total := len(filtered)
	pages := total / normalized.Limit
	if total%normalized.Limit != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	if normalized.Page > pages {
		normalized.Page = pages
	}

	start := (normalized.Page - 1) * normalized.Limit
	end := start + normalized.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return TablePage{
		Rows:  filtered[start:end],
		Total: total,
		Page:  normalized.Page,
		Pages: pages,
		Limit: normalized.Limit,
		Query: normalized,
	}
}

func filterRows(rows []Row, search string) []Row {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return append([]Row(nil), rows...)
	}
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func rowMatches(row Row, needle string) bool {
	for _, value := range row {
		cell := cellString(value)
		if cell == "" {
			continue
		}
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}

func applyColumnFilters(rows []Row, filters map[string]string) []Row {
	if len(filters) == 0 {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if rowSatisfiesFilters(row, filters) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func rowSatisfiesFilters(row Row, filters map[string]string) bool {
	for column, expected := range filters {
		value, ok := lookupColumn(row, column)
		if !ok {
			return false
		}
		if !strings.EqualFold(strings.TrimSpace(cellString(value)), strings.TrimSpace(expected)) {
			return false
		}
	}
	return true
}

func sortRows(rows []Row, column string, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		left, _ := lookupColumn(rows[i], column)
		right, _ := lookupColumn(rows[j], column)
		less := compareCells(left, right)
		if descending {
			return !less && !cellsEqual(left, right)
		}
		return less
	})
}

// lookupColumn tolerates the snake_case the backend serializers emit alongside
// the camelCase some screens use.
func lookupColumn(row Row, column string) (any, bool) {
	if value, ok := row[column]; ok {
		return value, true
	}
	target := strings.ToLower(strings.ReplaceAll(column, "_", ""))
	for key, value := range row {
		if strings.ToLower(strings.ReplaceAll(key, "_", "")) == target {
			return value, true
		}
	}
	return nil, false
}

func compareCells(left, right any) bool {
	if leftNum, rightNum, ok := numericPair(left, right); ok {
		return leftNum < rightNum
	}
	return strings.ToLower(cellString(left)) < strings.ToLower(cellString(right))
}

func cellsEqual(left, right any) bool {
	if leftNum, rightNum, ok := numericPair(left, right); ok {
		return leftNum == rightNum
	}
	return strings.EqualFold(cellString(left), cellString(right))
}

func numericPair(left, right any) (float64, float64, bool) {
	if !isNumeric(left) || !isNumeric(right) {
		return 0, 0, false
	}
	return normalization.AsFloat64(left), normalization.AsFloat64(right), true
}

func isNumeric(value any) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}

func cellString(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case bool:
		if typed {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		if isNumeric(value) {
			return normalization.AsString(normalization.AsFloat64(value))
		}
		return ""
	}
}
