package state

import (
	"maps"

	"github.com/google/uuid"
	"github.com/ogurasousui/employee-roster/internal/core/employee"
)

// IDGenerator は新規社員の ID を払い出します。プロセス生存中に同じ値を返してはいけません。
type IDGenerator func() string

func newUUID() string {
	return uuid.NewString()
}

// Reducer は (状態, intent) から次の状態を計算する純粋な遷移関数の集合です。
// ID 採番以外に隠れた入力はありません。
type Reducer struct {
	newID IDGenerator
}

// NewReducer は Reducer を生成します。newID が nil の場合は UUIDv4 を使います。
func NewReducer(newID IDGenerator) *Reducer {
	if newID == nil {
		newID = newUUID
	}
	return &Reducer{newID: newID}
}

// Reduce はすべてのスライスに intent を適用します。
// どのスライスも変化しなければ s をそのまま返します。
func (r *Reducer) Reduce(s *Snapshot, in Intent) *Snapshot {
	if s == nil || in == nil {
		return s
	}

	employees := r.reduceEmployees(s.Employees, in)
	app := reduceApp(s.App, in)
	route := reduceRoute(s.Route, in)

	if employees == s.Employees && app == s.App && route == s.Route {
		return s
	}
	return &Snapshot{Employees: employees, App: app, Route: route}
}

func (r *Reducer) reduceEmployees(s *EmployeesState, in Intent) *EmployeesState {
	switch in := in.(type) {
	case CreateEmployee:
		created := in.Employee
		created.ID = r.newID()
		list := make([]employee.Employee, 0, len(s.List)+1)
		list = append(list, created)
		list = append(list, s.List...)
		return &EmployeesState{List: list, Loading: s.Loading, Error: s.Error}
	case UpdateEmployee:
		list := make([]employee.Employee, len(s.List))
		for i, e := range s.List {
			if e.ID == in.Employee.ID {
				list[i] = in.Employee
				continue
			}
			list[i] = e
		}
		return &EmployeesState{List: list, Loading: s.Loading, Error: s.Error}
	case DeleteEmployee:
		list := make([]employee.Employee, 0, len(s.List))
		for _, e := range s.List {
			if e.ID != in.ID {
				list = append(list, e)
			}
		}
		return &EmployeesState{List: list, Loading: s.Loading, Error: s.Error}
	case ReplaceAllEmployees:
		list := make([]employee.Employee, len(in.Employees))
		copy(list, in.Employees)
		return &EmployeesState{List: list, Loading: false, Error: s.Error}
	case FetchEmployees:
		return &EmployeesState{List: s.List, Loading: true, Error: nil}
	case FetchEmployeesFailed:
		msg := in.Message
		return &EmployeesState{List: s.List, Loading: false, Error: &msg}
	default:
		return s
	}
}

func reduceApp(s *AppState, in Intent) *AppState {
	switch in := in.(type) {
	case SetLanguage:
		next := *s
		next.Language = in.Language
		return &next
	case SetDisplayMode:
		next := *s
		next.DisplayMode = in.Mode
		return &next
	case SetPagination:
		next := *s
		if in.CurrentPage != nil {
			next.Pagination.CurrentPage = *in.CurrentPage
		}
		if in.SearchQuery != nil {
			next.Pagination.SearchQuery = *in.SearchQuery
		}
		return &next
	default:
		return s
	}
}

func reduceRoute(s *RouteState, in Intent) *RouteState {
	switch in := in.(type) {
	case SetRoute:
		params := maps.Clone(in.Params)
		if params == nil {
			params = map[string]string{}
		}
		return &RouteState{Pathname: in.Pathname, Params: params}
	default:
		return s
	}
}
