package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ogurasousui/employee-roster/internal/core/employee"
)

var (
	// ErrUnknownIntent は未知の kind を受け取った場合に返却されます。
	ErrUnknownIntent = errors.New("state: unknown intent kind")
	// ErrInvalidPayload は payload が kind に合わない場合に返却されます。
	ErrInvalidPayload = errors.New("state: invalid intent payload")
)

// envelope は intent のワイヤ表現 {kind, payload} です。
type envelope struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type paginationPayload struct {
	CurrentPage *int    `json:"currentPage,omitempty"`
	SearchQuery *string `json:"searchQuery,omitempty"`
}

type routePayload struct {
	Pathname string            `json:"pathname"`
	Params   map[string]string `json:"params"`
}

// DecodeIntent は {kind, payload} 形式の JSON を Intent に変換します。
func DecodeIntent(data []byte) (Intent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("state: decode intent: %w", err)
	}

	switch env.Kind {
	case KindCreateEmployee:
		var e employee.Employee
		if err := decodePayload(env, &e); err != nil {
			return nil, err
		}
		return CreateEmployee{Employee: e}, nil
	case KindUpdateEmployee:
		var e employee.Employee
		if err := decodePayload(env, &e); err != nil {
			return nil, err
		}
		if e.ID == "" {
			return nil, fmt.Errorf("%s: id is required: %w", env.Kind, ErrInvalidPayload)
		}
		return UpdateEmployee{Employee: e}, nil
	case KindDeleteEmployee:
		var id string
		if err := decodePayload(env, &id); err != nil {
			return nil, err
		}
		return DeleteEmployee{ID: id}, nil
	case KindReplaceAllEmployees:
		var list []employee.Employee
		if err := decodePayload(env, &list); err != nil {
			return nil, err
		}
		return ReplaceAllEmployees{Employees: list}, nil
	case KindFetchEmployees:
		return FetchEmployees{}, nil
	case KindFetchEmployeesFail:
		var msg string
		if err := decodePayload(env, &msg); err != nil {
			return nil, err
		}
		return FetchEmployeesFailed{Message: msg}, nil
	case KindSetLanguage:
		var lang Language
		if err := decodePayload(env, &lang); err != nil {
			return nil, err
		}
		if !lang.IsValid() {
			return nil, fmt.Errorf("%s: unsupported language %q: %w", env.Kind, lang, ErrInvalidPayload)
		}
		return SetLanguage{Language: lang}, nil
	case KindSetDisplayMode:
		var mode DisplayMode
		if err := decodePayload(env, &mode); err != nil {
			return nil, err
		}
		if !mode.IsValid() {
			return nil, fmt.Errorf("%s: unsupported display mode %q: %w", env.Kind, mode, ErrInvalidPayload)
		}
		return SetDisplayMode{Mode: mode}, nil
	case KindSetPagination:
		var p paginationPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		if p.CurrentPage != nil && *p.CurrentPage < 1 {
			return nil, fmt.Errorf("%s: currentPage must be positive: %w", env.Kind, ErrInvalidPayload)
		}
		return SetPagination{CurrentPage: p.CurrentPage, SearchQuery: p.SearchQuery}, nil
	case KindSetRoute:
		var p routePayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return SetRoute{Pathname: p.Pathname, Params: p.Params}, nil
	default:
		return nil, fmt.Errorf("%q: %w", env.Kind, ErrUnknownIntent)
	}
}

// EncodeIntent は Intent を {kind, payload} 形式の JSON に変換します。
func EncodeIntent(in Intent) ([]byte, error) {
	var payload any
	switch in := in.(type) {
	case CreateEmployee:
		payload = in.Employee
	case UpdateEmployee:
		payload = in.Employee
	case DeleteEmployee:
		payload = in.ID
	case ReplaceAllEmployees:
		payload = in.Employees
	case FetchEmployees:
	case FetchEmployeesFailed:
		payload = in.Message
	case SetLanguage:
		payload = in.Language
	case SetDisplayMode:
		payload = in.Mode
	case SetPagination:
		payload = paginationPayload{CurrentPage: in.CurrentPage, SearchQuery: in.SearchQuery}
	case SetRoute:
		payload = routePayload{Pathname: in.Pathname, Params: in.Params}
	default:
		return nil, ErrUnknownIntent
	}

	env := envelope{Kind: in.Kind()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("state: encode %s: %w", in.Kind(), err)
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}

func decodePayload(env envelope, dst any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("%s: payload is required: %w", env.Kind, ErrInvalidPayload)
	}
	if err := json.Unmarshal(env.Payload, dst); err != nil {
		return fmt.Errorf("%s: %w: %v", env.Kind, ErrInvalidPayload, err)
	}
	return nil
}
