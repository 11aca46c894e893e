// Package view は社員一覧から表示用の部分集合を導出する純粋関数をまとめます。
package view

import (
	"strings"

	"github.com/ogurasousui/employee-roster/internal/core/employee"
	"golang.org/x/text/cases"
)

// DefaultPageSize は 1 ページあたりの既定件数です。
const DefaultPageSize = 20

// Projection は検索とページングを適用した結果です。
type Projection struct {
	Items      []employee.Employee
	TotalPages int
	Matched    int
}

// Project は records を query で絞り込み、page 番目 (1 始まり) の pageSize 件を返します。
// 並びは records の順序を保ちます。page が範囲外でもクランプはしません。
func Project(records []employee.Employee, query string, page, pageSize int) Projection {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	matched := Filter(records, query)
	total := (len(matched) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 {
		start = 0
	}
	if end > len(matched) {
		end = len(matched)
	}

	items := []employee.Employee{}
	if start < end {
		items = append(items, matched[start:end]...)
	}
	return Projection{Items: items, TotalPages: total, Matched: len(matched)}
}

// Filter は query を大文字小文字を区別せずに名・姓・メール・部署・役職の部分文字列として含む社員を返します。
// query が空なら records の複製を返します。
func Filter(records []employee.Employee, query string) []employee.Employee {
	if query == "" {
		return append([]employee.Employee{}, records...)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]employee.Employee, 0, len(records))
	for _, e := range records {
		if matches(fold, needle, e) {
			out = append(out, e)
		}
	}
	return out
}

// ClampPage は page を [1, max(1, totalPages)] に収めます。
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

func matches(fold cases.Caser, needle string, e employee.Employee) bool {
	fields := [...]string{e.FirstName, e.LastName, e.Email, string(e.Department), string(e.Position)}
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}
