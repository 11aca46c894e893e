// Package app は状態コンテナ・検証・永続化・ルーティングを束ねた社員名簿アプリケーションです。
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/ogurasousui/employee-roster/internal/core/employee"
	"github.com/ogurasousui/employee-roster/internal/core/persist"
	"github.com/ogurasousui/employee-roster/internal/core/state"
	"github.com/ogurasousui/employee-roster/internal/core/view"
	"github.com/ogurasousui/employee-roster/internal/i18n"
	"github.com/ogurasousui/employee-roster/internal/platform/config"
	"github.com/ogurasousui/employee-roster/internal/router"
)

// Deps は Roster の差し替え可能な依存です。ゼロ値のフィールドは既定の実装になります。
type Deps struct {
	Clock  employee.Clock
	NewID  state.IDGenerator
	Logger persist.Logger
	Rand   *rand.Rand
}

// Roster は社員名簿の操作窓口です。
type Roster struct {
	container *state.Container
	adapter   *persist.Adapter
	validator *employee.Validator

	pageSize   int
	pageWindow int
	location   string

	closeOnce   sync.Once
	unsubscribe []func()
	release     func() error
}

// New は store から状態を復元して Roster を組み立てます。
// 保存済みの状態がなければ settings.MockEmployees 件のダミー社員と既定の UI 設定で開始します。
func New(ctx context.Context, store persist.BlobStore, key string, settings config.AppConfig, deps Deps) *Roster {
	adapter := persist.NewAdapter(store, key, deps.Logger)

	app := state.DefaultApp(i18n.Match(settings.Language))
	var records []employee.Employee
	d, restored := adapter.Load(ctx)
	if restored {
		app = d.App
		records = d.Employees.List
	} else {
		rng := deps.Rand
		if rng == nil && settings.MockSeed != nil {
			rng = rand.New(rand.NewPCG(*settings.MockSeed, *settings.MockSeed))
		}
		records = employee.GenerateMock(settings.MockEmployees, rng)
	}

	initial := state.NewSnapshot(state.EmployeesState{List: []employee.Employee{}}, app, state.DefaultRoute())
	r := &Roster{
		container:  state.NewContainer(initial, state.NewReducer(deps.NewID)),
		adapter:    adapter,
		validator:  employee.NewValidator(deps.Clock),
		pageSize:   settings.PageSize,
		pageWindow: settings.PageWindow,
		location:   fmt.Sprintf("%s key=%s", Describe(store), adapter.Key()),
	}

	// 取得中の空リストで保存済みの名簿を上書きしないよう、購読は投入後に行う。
	r.container.Dispatch(state.FetchEmployees{})
	r.container.Dispatch(state.ReplaceAllEmployees{Employees: records})
	save := adapter.Listener(ctx)
	if !restored {
		save(r.State(), nil)
	}
	r.unsubscribe = append(r.unsubscribe, r.container.Subscribe(save))
	r.clampPage()
	return r
}

// Open は設定に従ってストアを開き、Roster を組み立てます。Close でストアも解放されます。
func Open(ctx context.Context, cfg *config.Config, deps Deps) (*Roster, error) {
	store, release, err := OpenStore(ctx, cfg.Storage, cfg.Database)
	if err != nil {
		return nil, err
	}
	r := New(ctx, store, cfg.Storage.Key, cfg.App, deps)
	r.release = release
	return r, nil
}

// State は現在の Snapshot を返します。
func (r *Roster) State() *state.Snapshot {
	return r.container.State()
}

// Location は保存先のドライバと位置を返します。
func (r *Roster) Location() string {
	return r.location
}

// Subscribe は状態変化の購読者を登録します。
func (r *Roster) Subscribe(fn state.Listener) func() {
	return r.container.Subscribe(fn)
}

// Submit は intent を適用します。社員の作成・更新は検証を通過した場合のみ適用され、
// 不合格ならフィールドごとのエラーを返して状態を変更しません。
func (r *Roster) Submit(in state.Intent) employee.ValidationErrors {
	switch in := in.(type) {
	case state.CreateEmployee:
		if errs := r.validator.Validate(in.Employee, r.State().Records(), false); !errs.OK() {
			return errs
		}
	case state.UpdateEmployee:
		if errs := r.validator.Validate(in.Employee, r.State().Records(), true); !errs.OK() {
			return errs
		}
	}

	r.container.Dispatch(in)
	r.clampPage()
	return nil
}

// Page は現在の検索条件とページ番号で一覧を投影します。
func (r *Roster) Page() view.Page {
	s := r.State()
	return view.Build(s.Records(), s.App.Pagination, r.pageSize, r.pageWindow)
}

// Navigate は path をルートに解決し、必要なら SET_ROUTE を発行します。
func (r *Roster) Navigate(path string) router.Match {
	m := router.Resolve(path)
	if m.Intent != nil {
		r.container.Dispatch(*m.Intent)
	}
	return m
}

// EditTarget は現在のルートが指す編集対象の社員を返します。
func (r *Roster) EditTarget() (employee.Employee, bool) {
	s := r.State()
	id, ok := s.Route.Params["id"]
	if !ok {
		return employee.Employee{}, false
	}
	return employee.FindByID(s.Records(), id)
}

// T は現在の表示言語で文言を返します。
func (r *Roster) T(key string) string {
	return i18n.T(r.State().App.Language, key)
}

// Close は購読を解除し、Open で開いたストアを解放します。
func (r *Roster) Close() error {
	var err error
	r.closeOnce.Do(func() {
		for _, unsubscribe := range r.unsubscribe {
			unsubscribe()
		}
		if r.release != nil {
			err = r.release()
		}
	})
	return err
}

// clampPage は削除や検索で現在ページが範囲外になった場合に範囲内へ戻します。
func (r *Roster) clampPage() {
	s := r.State()
	p := view.Build(s.Records(), s.App.Pagination, r.pageSize, r.pageWindow)
	if p.Current != s.App.Pagination.CurrentPage {
		r.container.Dispatch(state.Page(p.Current))
	}
}
