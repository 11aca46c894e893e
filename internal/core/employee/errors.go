package employee

import (
	"sort"
	"strings"
)

// フィールド名。ValidationErrors のキーとして使われます。
const (
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldDateOfEmployment = "dateOfEmployment"
	FieldDateOfBirth      = "dateOfBirth"
	FieldPhoneNumber      = "phoneNumber"
	FieldEmail            = "email"
	FieldDepartment       = "department"
	FieldPosition         = "position"
)

// Fields は検証対象フィールドを表示順に並べたものです。
var Fields = []string{
	FieldFirstName,
	FieldLastName,
	FieldDateOfEmployment,
	FieldDateOfBirth,
	FieldPhoneNumber,
	FieldEmail,
	FieldDepartment,
	FieldPosition,
}

// 検証エラーメッセージ。
const (
	MsgFirstNameRequired        = "First name is required"
	MsgLastNameRequired         = "Last name is required"
	MsgDateOfEmploymentRequired = "Date of employment is required"
	MsgDateOfEmploymentInvalid  = "Date of employment is not a valid date"
	MsgDateOfEmploymentFuture   = "Date of employment must be in the past"
	MsgDateOfBirthRequired      = "Date of birth is required"
	MsgDateOfBirthInvalid       = "Date of birth is not a valid date"
	MsgDateOfBirthFuture        = "Date of birth must be in the past"
	MsgUnderage                 = "Employee must be at least 18 years old"
	MsgPhoneNumberRequired      = "Phone number is required"
	MsgPhoneNumberFormat        = "Phone number format should be +XX XXX XXX XX XX"
	MsgEmailRequired            = "Email is required"
	MsgEmailInvalid             = "Email is not valid"
	MsgEmailInUse               = "Email is already in use"
	MsgDepartmentRequired       = "Department is required"
	MsgDepartmentUnknown        = "Department must be one of Analytics, Tech"
	MsgPositionRequired         = "Position is required"
	MsgPositionUnknown          = "Position must be one of Junior, Medior, Senior"
)

// ValidationErrors はフィールド名からエラーメッセージへの対応です。
// 空であれば候補レコードは書き込み可能です。
type ValidationErrors map[string]string

// OK は違反フィールドが一つもないかを返します。
func (v ValidationErrors) OK() bool {
	return len(v) == 0
}

// String は違反内容をフィールド名順に連結した文字列を返します。
func (v ValidationErrors) String() string {
	if len(v) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "employee: " + strings.Join(parts, "; ")
}
