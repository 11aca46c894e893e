package state

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ogurasousui/employee-roster/internal/core/employee"
)

func sequenceIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

func seededSnapshot(list ...employee.Employee) *Snapshot {
	return NewSnapshot(EmployeesState{List: list}, DefaultApp(LanguageEN), DefaultRoute())
}

func sampleEmployee(id, email string) employee.Employee {
	return employee.Employee{
		ID:               id,
		FirstName:        "Grace",
		LastName:         "Hopper",
		DateOfEmployment: "2021-01-04",
		DateOfBirth:      "1985-12-09",
		PhoneNumber:      "+1 555 123 45 67",
		Email:            email,
		Department:       employee.DepartmentTech,
		Position:         employee.PositionMedior,
	}
}

func TestReducer_CreateTwiceAssignsDistinctIDsNewestFirst(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	s0 := seededSnapshot(sampleEmployee("emp-1", "old@company.com"))

	s1 := r.Reduce(s0, CreateEmployee{Employee: sampleEmployee("", "first@company.com")})
	s2 := r.Reduce(s1, CreateEmployee{Employee: sampleEmployee("", "second@company.com")})

	list := s2.Records()
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	if list[0].Email != "second@company.com" || list[1].Email != "first@company.com" {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if list[0].ID == "" || list[1].ID == "" || list[0].ID == list[1].ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", list[0].ID, list[1].ID)
	}
	if len(s0.Records()) != 1 || len(s1.Records()) != 2 {
		t.Fatal("previous snapshots must not be mutated")
	}
}

func TestReducer_CreateIgnoresSuppliedID(t *testing.T) {
	t.Parallel()

	r := NewReducer(sequenceIDs())
	s := r.Reduce(seededSnapshot(), CreateEmployee{Employee: sampleEmployee("emp-1", "a@company.com")})

	if got := s.Records()[0].ID; got != "gen-1" {
		t.Fatalf("expected generated id gen-1, got %s", got)
	}
}

func TestReducer_IDsNotReusedAfterDelete(t *testing.T) {
	t.Parallel()

	r := NewReducer(sequenceIDs())
	s := r.Reduce(seededSnapshot(), CreateEmployee{Employee: sampleEmployee("", "a@company.com")})
	first := s.Records()[0].ID
	s = r.Reduce(s, DeleteEmployee{ID: first})
	s = r.Reduce(s, CreateEmployee{Employee: sampleEmployee("", "a@company.com")})

	if s.Records()[0].ID == first {
		t.Fatalf("id %s was reused after deletion", first)
	}
}

func TestReducer_UpdateReplacesMatchingRecordOnly(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	a := sampleEmployee("a", "a@company.com")
	b := sampleEmployee("b", "b@company.com")
	s0 := seededSnapshot(a, b)

	changed := b
	changed.FirstName = "Barbara"
	s1 := r.Reduce(s0, UpdateEmployee{Employee: changed})

	if s1 == s0 || s1.Employees == s0.Employees {
		t.Fatal("expected new employees slice")
	}
	if s1.App != s0.App || s1.Route != s0.Route {
		t.Fatal("untouched slices must keep their reference")
	}
	if !reflect.DeepEqual(s1.Records()[0], a) {
		t.Fatalf("record a must be unchanged, got %+v", s1.Records()[0])
	}
	if s1.Records()[1].FirstName != "Barbara" {
		t.Fatalf("record b not updated: %+v", s1.Records()[1])
	}
	if s0.Records()[1].FirstName != "Grace" {
		t.Fatal("previous snapshot was mutated")
	}
}

func TestReducer_DeleteMissingIDReturnsNewEqualList(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	s0 := seededSnapshot(sampleEmployee("a", "a@company.com"), sampleEmployee("b", "b@company.com"))

	s1 := r.Reduce(s0, DeleteEmployee{ID: "missing"})

	if s1.Employees == s0.Employees {
		t.Fatal("expected a new employees slice")
	}
	if &s1.Records()[0] == &s0.Records()[0] {
		t.Fatal("expected a new backing list")
	}
	if !reflect.DeepEqual(s1.Records(), s0.Records()) {
		t.Fatalf("expected identical content, got %+v", s1.Records())
	}
}

func TestReducer_DeleteRemovesRecord(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	s := r.Reduce(seededSnapshot(sampleEmployee("a", "a@company.com"), sampleEmployee("b", "b@company.com")), DeleteEmployee{ID: "a"})

	if len(s.Records()) != 1 || s.Records()[0].ID != "b" {
		t.Fatalf("unexpected list after delete: %+v", s.Records())
	}
}

func TestReducer_ReplaceAllAndLoadingFlags(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	s := r.Reduce(seededSnapshot(), FetchEmployees{})
	if !s.Employees.Loading {
		t.Fatal("expected loading after fetch request")
	}

	records := []employee.Employee{sampleEmployee("x", "x@company.com")}
	s = r.Reduce(s, ReplaceAllEmployees{Employees: records})
	if s.Employees.Loading {
		t.Fatal("expected loading cleared after replace")
	}
	records[0].FirstName = "Mutated"
	if s.Records()[0].FirstName != "Grace" {
		t.Fatal("replace must copy the supplied records")
	}

	s = r.Reduce(s, FetchEmployeesFailed{Message: "boom"})
	if s.Employees.Error == nil || *s.Employees.Error != "boom" || s.Employees.Loading {
		t.Fatalf("unexpected failure state: %+v", s.Employees)
	}
}

func TestReducer_SetPaginationMergesFields(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	s := r.Reduce(seededSnapshot(), Search("tech"))
	s = r.Reduce(s, Page(3))

	if s.App.Pagination.CurrentPage != 3 || s.App.Pagination.SearchQuery != "tech" {
		t.Fatalf("unexpected pagination: %+v", s.App.Pagination)
	}

	query := ""
	s = r.Reduce(s, SetPagination{SearchQuery: &query})
	if s.App.Pagination.CurrentPage != 3 || s.App.Pagination.SearchQuery != "" {
		t.Fatalf("unexpected pagination after partial merge: %+v", s.App.Pagination)
	}
}

func TestReducer_LanguageAndDisplayMode(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	s0 := seededSnapshot()
	s1 := r.Reduce(s0, SetLanguage{Language: LanguageTR})
	s2 := r.Reduce(s1, SetDisplayMode{Mode: DisplayList})

	if s2.App.Language != LanguageTR || s2.App.DisplayMode != DisplayList {
		t.Fatalf("unexpected app state: %+v", s2.App)
	}
	if s0.App.Language != LanguageEN {
		t.Fatal("previous snapshot was mutated")
	}
	if s2.Employees != s0.Employees {
		t.Fatal("employees slice must keep its reference")
	}
}

func TestReducer_SetRouteReplaces(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	params := map[string]string{"id": "emp-7"}
	s := r.Reduce(seededSnapshot(), SetRoute{Pathname: "/employees/emp-7/edit", Params: params})
	params["id"] = "changed"

	if s.Route.Pathname != "/employees/emp-7/edit" || s.Route.Params["id"] != "emp-7" {
		t.Fatalf("unexpected route: %+v", s.Route)
	}

	s = r.Reduce(s, SetRoute{Pathname: "/employees"})
	if s.Route.Params == nil || len(s.Route.Params) != 0 {
		t.Fatalf("expected empty params, got %+v", s.Route.Params)
	}
}

type unknownIntent struct{}

func (unknownIntent) Kind() Kind { return "NOOP" }
func (unknownIntent) isIntent()  {}

func TestReducer_UnknownIntentKeepsReference(t *testing.T) {
	t.Parallel()

	r := NewReducer(nil)
	s := seededSnapshot(sampleEmployee("a", "a@company.com"))

	if got := r.Reduce(s, unknownIntent{}); got != s {
		t.Fatal("expected identical snapshot for unknown intent")
	}
	if got := r.Reduce(s, nil); got != s {
		t.Fatal("expected identical snapshot for nil intent")
	}
}
