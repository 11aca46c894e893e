package state

import (
	"maps"
	"slices"

	"github.com/ogurasousui/employee-roster/internal/core/employee"
)

// Language は UI の表示言語です。
type Language string

const (
	LanguageEN Language = "en"
	LanguageTR Language = "tr"
)

// IsValid は対応言語かを返します。
func (l Language) IsValid() bool {
	return l == LanguageEN || l == LanguageTR
}

// DisplayMode は一覧の表示形式です。
type DisplayMode string

const (
	DisplayTable DisplayMode = "table"
	DisplayList  DisplayMode = "list"
)

// IsValid は既知の表示形式かを返します。
func (m DisplayMode) IsValid() bool {
	return m == DisplayTable || m == DisplayList
}

// Pagination は一覧のページング・検索設定です。
type Pagination struct {
	CurrentPage int    `json:"currentPage"`
	SearchQuery string `json:"searchQuery"`
}

// EmployeesState は社員スライスです。List の並びがそのまま表示順になります。
type EmployeesState struct {
	List    []employee.Employee `json:"list"`
	Loading bool                `json:"loading"`
	Error   *string             `json:"error"`
}

// AppState は UI 設定スライスです。
type AppState struct {
	Language    Language    `json:"language"`
	DisplayMode DisplayMode `json:"displayMode"`
	Pagination  Pagination  `json:"pagination"`
}

// RouteState は現在のナビゲーション位置です。永続化されません。
type RouteState struct {
	Pathname string
	Params   map[string]string
}

// Snapshot はある時点の状態全体です。受け取った側は変更してはいけません。
type Snapshot struct {
	Employees *EmployeesState
	App       *AppState
	Route     *RouteState
}

// Durable は再起動をまたいで保持される部分集合です。
type Durable struct {
	Employees EmployeesState `json:"employees"`
	App       AppState       `json:"app"`
}

// DefaultApp は UI 設定の既定値を返します。
func DefaultApp(lang Language) AppState {
	if !lang.IsValid() {
		lang = LanguageEN
	}
	return AppState{
		Language:    lang,
		DisplayMode: DisplayTable,
		Pagination:  Pagination{CurrentPage: 1},
	}
}

// DefaultRoute はルートの初期値を返します。
func DefaultRoute() RouteState {
	return RouteState{Pathname: "/", Params: map[string]string{}}
}

// NewSnapshot は各スライスを複製して Snapshot を組み立てます。
func NewSnapshot(employees EmployeesState, app AppState, route RouteState) *Snapshot {
	employees.List = slices.Clone(employees.List)
	if employees.Error != nil {
		msg := *employees.Error
		employees.Error = &msg
	}
	route.Params = maps.Clone(route.Params)
	return &Snapshot{Employees: &employees, App: &app, Route: &route}
}

// Durable は Snapshot から永続化対象を複製して返します。
func (s *Snapshot) Durable() Durable {
	d := Durable{Employees: *s.Employees, App: *s.App}
	d.Employees.List = slices.Clone(s.Employees.List)
	if s.Employees.Error != nil {
		msg := *s.Employees.Error
		d.Employees.Error = &msg
	}
	return d
}

// Records は社員一覧を返します。
func (s *Snapshot) Records() []employee.Employee {
	return s.Employees.List
}
