// Package router はパス文字列を画面と SET_ROUTE intent に解決します。
package router

import (
	"strings"

	"github.com/ogurasousui/employee-roster/internal/core/state"
)

// Screen は表示する画面の種類です。
type Screen string

const (
	ScreenEmployeeList Screen = "employee-list"
	ScreenEmployeeForm Screen = "employee-form"
	ScreenNotFound     Screen = "not-found"
)

// HomePath はリダイレクト先の一覧画面のパスです。
const HomePath = "/employees"

// Match は Resolve の結果です。
// Intent が nil の場合はルート状態を更新しません。
type Match struct {
	Screen       Screen
	RedirectedTo string
	Intent       *state.SetRoute
}

// Resolve は path を画面に対応付けます。"/" は HomePath にリダイレクトされます。
func Resolve(path string) Match {
	path = normalize(path)
	if path == "/" {
		m := Resolve(HomePath)
		m.RedirectedTo = HomePath
		return m
	}

	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	switch {
	case len(segs) == 1 && segs[0] == "employees":
		return Match{Screen: ScreenEmployeeList, Intent: &state.SetRoute{Pathname: HomePath, Params: map[string]string{}}}
	case len(segs) == 2 && segs[0] == "employees" && segs[1] == "new":
		return Match{Screen: ScreenEmployeeForm, Intent: &state.SetRoute{Pathname: "/employees/new", Params: map[string]string{}}}
	case len(segs) == 3 && segs[0] == "employees" && segs[1] != "" && segs[2] == "edit":
		return Match{Screen: ScreenEmployeeForm, Intent: &state.SetRoute{Pathname: path, Params: map[string]string{"id": segs[1]}}}
	default:
		return Match{Screen: ScreenNotFound}
	}
}

// EditPath は社員編集画面のパスを返します。
func EditPath(id string) string {
	return HomePath + "/" + id + "/edit"
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
