package domain

import "testing"

func fixtureRows() []Row {
	return []Row{
		{"id": float64(1), "code": "A-101", "kind": "apartment", "floor": float64(1)},
		{"id": float64(2), "code": "B-201", "kind": "apartment", "floor": float64(2)},
		{"id": float64(3), "code": "H-001", "kind": "house", "floor": float64(0)},
		{"id": float64(4), "code": "B-202", "kind": "apartment", "floor": float64(2)},
	}
}

func TestApplyQuery_Search(t *testing.T) {
	page := ApplyQuery(fixtureRows(), PagedQuery{Search: "b-2"})

	if page.Total != 2 {
		t.Fatalf("expected 2 matches, got %d", page.Total)
	}
	for _, row := range page.Rows {
		if row.Cell("code") != "B-201" && row.Cell("code") != "B-202" {
			t.Fatalf("unexpected row in search result: %v", row)
		}
	}
}

func TestApplyQuery_SortDescending(t *testing.T) {
	page := ApplyQuery(fixtureRows(), PagedQuery{SortBy: "id", SortOrder: "desc"})

	if got := page.Rows[0].Cell("code"); got != "B-202" {
		t.Fatalf("expected B-202 first, got %v", got)
	}
	if got := page.Rows[len(page.Rows)-1].Cell("code"); got != "A-101" {
		t.Fatalf("expected A-101 last, got %v", got)
	}
}

func TestApplyQuery_Pagination(t *testing.T) {
	page := ApplyQuery(fixtureRows(), PagedQuery{Page: 2, Limit: 3, SortBy: "id"})

	if page.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", page.Pages)
	}
	if len(page.Rows) != 1 {
		t.Fatalf("expected 1 row on last page, got %d", len(page.Rows))
	}
	if page.Total != 4 {
		t.Fatalf("expected total 4, got %d", page.Total)
	}
}

func TestApplyQuery_PageBeyondEndClamps(t *testing.T) {
	page := ApplyQuery(fixtureRows(), PagedQuery{Page: 9, Limit: 3})

	if page.Page != 2 {
		t.Fatalf("expected clamp to page 2, got %d", page.Page)
	}
	if len(page.Rows) == 0 {
		t.Fatal("expected rows on clamped page")
	}
}

func TestApplyQuery_ColumnFilters(t *testing.T) {
	page := ApplyQuery(fixtureRows(), PagedQuery{Filters: map[string]string{"kind": "house"}})

	if page.Total != 1 {
		t.Fatalf("expected 1 house, got %d", page.Total)
	}
	if got := page.Rows[0].Cell("code"); got != "H-001" {
		t.Fatalf("unexpected row: %v", got)
	}
}

func TestRowCell_ToleratesKeySpellings(t *testing.T) {
	row := Row{"common_area": float64(7)}

	if got := row.Cell("commonArea"); got != float64(7) {
		t.Fatalf("expected camelCase lookup to resolve, got %v", got)
	}
	if got := row.Cell("missing"); got != nil {
		t.Fatalf("expected nil for unknown column, got %v", got)
	}
}
