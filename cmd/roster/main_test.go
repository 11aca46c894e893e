package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ogurasousui/employee-roster/internal/adapters/blob/memory"
	"github.com/ogurasousui/employee-roster/internal/app"
	"github.com/ogurasousui/employee-roster/internal/platform/config"
)

func TestRun(t *testing.T) {
	t.Parallel()

	seed := uint64(3)
	roster := app.New(context.Background(), memory.NewStore(), "", config.AppConfig{
		Language:      "en",
		PageSize:      5,
		PageWindow:    5,
		MockEmployees: 12,
		MockSeed:      &seed,
	}, app.Deps{})
	defer roster.Close()

	input := strings.Join([]string{
		`# comment lines are skipped`,
		`{"kind":"SET_PAGINATION","payload":{"currentPage":3}}`,
		`{"kind":"SET_LANGUAGE","payload":"tr"}`,
		`{"kind":"CREATE_EMPLOYEE","payload":{"firstName":""}}`,
		`{"kind":"SET_ROUTE","payload":{"pathname":"/employees/new","params":{}}}`,
		`{"kind":"BOGUS"}`,
	}, "\n")

	var out bytes.Buffer
	if err := run(context.Background(), roster, strings.NewReader(input), &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Page 3 of 3  [1 2 3]",
		"Sayfa 3 / 3  [1 2 3]",
		"rejected CREATE_EMPLOYEE:",
		"screen: employee-form",
		`error: "BOGUS": state: unknown intent kind`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
