package view

import (
	"github.com/ogurasousui/employee-roster/internal/core/employee"
	"github.com/ogurasousui/employee-roster/internal/core/state"
)

// Page は一覧画面 1 枚分の表示内容です。
type Page struct {
	Projection
	Current int
	Query   string
	Links   []PageLink
}

// Build は pagination の現在ページを [1, max(1, totalPages)] に収めてから records を投影します。
func Build(records []employee.Employee, p state.Pagination, pageSize, width int) Page {
	first := Project(records, p.SearchQuery, p.CurrentPage, pageSize)
	current := ClampPage(p.CurrentPage, first.TotalPages)
	proj := first
	if current != p.CurrentPage {
		proj = Project(records, p.SearchQuery, current, pageSize)
	}
	return Page{
		Projection: proj,
		Current:    current,
		Query:      p.SearchQuery,
		Links:      Window(current, proj.TotalPages, width),
	}
}
