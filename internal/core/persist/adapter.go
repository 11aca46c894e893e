// Package persist は状態の永続化対象をバイト列ストアへ保存・復元します。
package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ogurasousui/employee-roster/internal/core/employee"
	"github.com/ogurasousui/employee-roster/internal/core/state"
)

// DefaultKey は状態を保存するエントリ名です。
const DefaultKey = "employeeAppState"

var (
	// ErrNotFound はキーに対応する値が存在しない場合に BlobStore が返却します。
	ErrNotFound = errors.New("persist: not found")
	// ErrMalformed は保存済みデータが解釈できない場合に返却されます。
	ErrMalformed = errors.New("persist: malformed state")
)

// BlobStore は名前付きバイト列の永続化の抽象です。
// Put は値全体を原子的に置き換え、Delete は存在しないキーに対してもエラーを返しません。
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Logger は内部で回復したエラーの出力先です。*log.Logger が満たします。
type Logger interface {
	Printf(format string, args ...any)
}

// Adapter は state.Durable の保存と復元を担います。
type Adapter struct {
	store  BlobStore
	key    string
	logger Logger
}

// NewAdapter は Adapter を生成します。key が空なら DefaultKey、logger が nil なら log.Default() を使います。
func NewAdapter(store BlobStore, key string, logger Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Adapter{store: store, key: key, logger: logger}
}

// Key は保存先のエントリ名を返します。
func (a *Adapter) Key() string {
	return a.key
}

// Save は永続化対象をシリアライズして保存します。
// シリアライズに失敗した場合はストアに触れないため、以前の保存内容はそのまま残ります。
func (a *Adapter) Save(ctx context.Context, d state.Durable) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("persist: encode state: %w", err)
	}
	if err := a.store.Put(ctx, a.key, data); err != nil {
		return fmt.Errorf("persist: write %s: %w", a.key, err)
	}
	return nil
}

// Load は保存済みの永続化対象を復元します。
// 未保存・破損・読み出し失敗のいずれでも false を返し、呼び出し側は既定値へフォールバックします。
// 破損したエントリは破棄されます。
func (a *Adapter) Load(ctx context.Context) (state.Durable, bool) {
	data, err := a.store.Get(ctx, a.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.Printf("persist: load %s: %v", a.key, err)
		}
		return state.Durable{}, false
	}

	d, err := Decode(data)
	if err != nil {
		a.logger.Printf("persist: discarding %s: %v", a.key, err)
		if delErr := a.store.Delete(ctx, a.key); delErr != nil {
			a.logger.Printf("persist: delete %s: %v", a.key, delErr)
		}
		return state.Durable{}, false
	}
	return d, true
}

// Listener は永続化対象が変化したときに保存する購読者を返します。
// 保存の失敗はログに残すだけで呼び出し元へは伝えません。
func (a *Adapter) Listener(ctx context.Context) state.Listener {
	return func(next, prev *state.Snapshot) {
		if prev != nil && next.Employees == prev.Employees && next.App == prev.App {
			return
		}
		if err := a.Save(ctx, next.Durable()); err != nil {
			a.logger.Printf("%v", err)
		}
	}
}

type storedApp struct {
	Language    *state.Language    `json:"language"`
	DisplayMode *state.DisplayMode `json:"displayMode"`
	Pagination  *state.Pagination  `json:"pagination"`
}

type storedState struct {
	Employees *state.EmployeesState `json:"employees"`
	App       *storedApp            `json:"app"`
}

// Decode は保存形式のバイト列を state.Durable に変換し、古い形式で欠けている UI 設定を既定値で補います。
func Decode(data []byte) (state.Durable, error) {
	var raw storedState
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return state.Durable{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return state.Durable{}, fmt.Errorf("%w: trailing content", ErrMalformed)
	}
	if raw.Employees == nil {
		return state.Durable{}, fmt.Errorf("%w: employees section missing", ErrMalformed)
	}
	if err := checkIdentity(raw.Employees.List); err != nil {
		return state.Durable{}, err
	}

	d := state.Durable{Employees: *raw.Employees, App: state.DefaultApp(state.LanguageEN)}
	if raw.App != nil {
		if raw.App.Language != nil && raw.App.Language.IsValid() {
			d.App.Language = *raw.App.Language
		}
		if raw.App.DisplayMode != nil && raw.App.DisplayMode.IsValid() {
			d.App.DisplayMode = *raw.App.DisplayMode
		}
		if raw.App.Pagination != nil {
			d.App.Pagination = *raw.App.Pagination
			if d.App.Pagination.CurrentPage < 1 {
				d.App.Pagination.CurrentPage = 1
			}
		}
	}
	return d, nil
}

func checkIdentity(list []employee.Employee) error {
	seen := make(map[string]struct{}, len(list))
	for i, e := range list {
		if e.ID == "" {
			return fmt.Errorf("%w: employee #%d has no id", ErrMalformed, i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate employee id %s", ErrMalformed, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
