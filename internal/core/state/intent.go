package state

import "github.com/ogurasousui/employee-roster/internal/core/employee"

// Kind はインテントの種別です。
type Kind string

const (
	KindCreateEmployee      Kind = "CREATE_EMPLOYEE"
	KindUpdateEmployee      Kind = "UPDATE_EMPLOYEE"
	KindDeleteEmployee      Kind = "DELETE_EMPLOYEE"
	KindReplaceAllEmployees Kind = "REPLACE_ALL_EMPLOYEES"
	KindFetchEmployees      Kind = "FETCH_EMPLOYEES_REQUEST"
	KindFetchEmployeesFail  Kind = "FETCH_EMPLOYEES_FAILURE"
	KindSetLanguage         Kind = "SET_LANGUAGE"
	KindSetDisplayMode      Kind = "SET_DISPLAY_MODE"
	KindSetPagination       Kind = "SET_PAGINATION"
	KindSetRoute            Kind = "SET_ROUTE"
)

// Intent は状態変更要求です。実装はこのパッケージ内の型に閉じています。
type Intent interface {
	Kind() Kind
	isIntent()
}

// CreateEmployee は社員を新規追加します。ID は Reducer が採番し、入力の ID は無視されます。
type CreateEmployee struct {
	Employee employee.Employee
}

// UpdateEmployee は ID が一致する社員を置き換えます。
type UpdateEmployee struct {
	Employee employee.Employee
}

// DeleteEmployee は ID が一致する社員を削除します。
type DeleteEmployee struct {
	ID string
}

// ReplaceAllEmployees は起動時に初期レコード集合を投入します。
type ReplaceAllEmployees struct {
	Employees []employee.Employee
}

// FetchEmployees は読み込み中フラグを立てます。
type FetchEmployees struct{}

// FetchEmployeesFailed は読み込み失敗を記録します。
type FetchEmployeesFailed struct {
	Message string
}

// SetLanguage は表示言語を変更します。
type SetLanguage struct {
	Language Language
}

// SetDisplayMode は一覧の表示形式を変更します。
type SetDisplayMode struct {
	Mode DisplayMode
}

// SetPagination は指定されたフィールドだけをページング設定にマージします。
type SetPagination struct {
	CurrentPage *int
	SearchQuery *string
}

// SetRoute は現在のルートを置き換えます。
type SetRoute struct {
	Pathname string
	Params   map[string]string
}

func (CreateEmployee) Kind() Kind       { return KindCreateEmployee }
func (UpdateEmployee) Kind() Kind       { return KindUpdateEmployee }
func (DeleteEmployee) Kind() Kind       { return KindDeleteEmployee }
func (ReplaceAllEmployees) Kind() Kind  { return KindReplaceAllEmployees }
func (FetchEmployees) Kind() Kind       { return KindFetchEmployees }
func (FetchEmployeesFailed) Kind() Kind { return KindFetchEmployeesFail }
func (SetLanguage) Kind() Kind          { return KindSetLanguage }
func (SetDisplayMode) Kind() Kind       { return KindSetDisplayMode }
func (SetPagination) Kind() Kind        { return KindSetPagination }
func (SetRoute) Kind() Kind             { return KindSetRoute }

func (CreateEmployee) isIntent()       {}
func (UpdateEmployee) isIntent()       {}
func (DeleteEmployee) isIntent()       {}
func (ReplaceAllEmployees) isIntent()  {}
func (FetchEmployees) isIntent()       {}
func (FetchEmployeesFailed) isIntent() {}
func (SetLanguage) isIntent()          {}
func (SetDisplayMode) isIntent()       {}
func (SetPagination) isIntent()        {}
func (SetRoute) isIntent()             {}

// Page は SetPagination 用に現在ページだけを指定する intent を返します。
func Page(n int) SetPagination {
	return SetPagination{CurrentPage: &n}
}

// Search は SetPagination 用に検索語を指定し、1 ページ目へ戻す intent を返します。
func Search(query string) SetPagination {
	page := 1
	return SetPagination{CurrentPage: &page, SearchQuery: &query}
}
