package view

import (
	"testing"

	"github.com/ogurasousui/employee-roster/internal/core/state"
)

func TestBuild_ClampsPageBeyondRange(t *testing.T) {
	t.Parallel()

	records := makeRecords(23)
	p := Build(records, state.Pagination{CurrentPage: 9}, 20, 5)

	if p.Current != 2 {
		t.Fatalf("expected page clamped to 2, got %d", p.Current)
	}
	if len(p.Items) != 3 || p.Items[0].ID != "emp-21" {
		t.Fatalf("expected last page items, got %+v", p.Items)
	}
	if FormatWindow(p.Links) != "1 2" {
		t.Fatalf("unexpected links %q", FormatWindow(p.Links))
	}
}

func TestBuild_EmptyResultStaysOnFirstPage(t *testing.T) {
	t.Parallel()

	p := Build(makeRecords(5), state.Pagination{CurrentPage: 3, SearchQuery: "nobody"}, 20, 5)
	if p.Current != 1 || p.TotalPages != 0 || len(p.Items) != 0 {
		t.Fatalf("unexpected page %+v", p)
	}
	if p.Query != "nobody" {
		t.Fatalf("expected query to be carried, got %q", p.Query)
	}
	if len(p.Links) != 0 {
		t.Fatalf("expected no links, got %v", p.Links)
	}
}
