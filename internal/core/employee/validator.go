package employee

import (
	"regexp"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

const minimumAge = 18

var (
	phonePattern = regexp.MustCompile(`^\+\d{1,3} \d{3} \d{3} \d{2} \d{2}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validator は社員レコードの書き込み前検証を行います。
type Validator struct {
	clock Clock
}

// NewValidator は Validator を生成します。clock が nil の場合はシステム時刻を使います。
func NewValidator(clock Clock) *Validator {
	if clock == nil {
		clock = realClock{}
	}
	return &Validator{clock: clock}
}

// Validate はシステム時刻で候補レコードを検証します。
func Validate(candidate Employee, existing []Employee, isUpdate bool) ValidationErrors {
	return NewValidator(nil).Validate(candidate, existing, isUpdate)
}

// Validate は候補レコードをフィールド規則と既存レコード集合に照らして検証します。
// すべての規則を評価し、違反したフィールドをまとめて返します。
// isUpdate が true の場合、候補自身の ID はメールアドレスの重複判定から除外されます。
func (v *Validator) Validate(candidate Employee, existing []Employee, isUpdate bool) ValidationErrors {
	errs := ValidationErrors{}
	today := dateOf(v.clock.Now())

	if isBlank(candidate.FirstName) {
		errs[FieldFirstName] = MsgFirstNameRequired
	}
	if isBlank(candidate.LastName) {
		errs[FieldLastName] = MsgLastNameRequired
	}

	if msg := checkEmployment(candidate.DateOfEmployment, today); msg != "" {
		errs[FieldDateOfEmployment] = msg
	}
	if msg := checkBirth(candidate.DateOfBirth, today); msg != "" {
		errs[FieldDateOfBirth] = msg
	}

	switch {
	case candidate.PhoneNumber == "":
		errs[FieldPhoneNumber] = MsgPhoneNumberRequired
	case !phonePattern.MatchString(candidate.PhoneNumber):
		errs[FieldPhoneNumber] = MsgPhoneNumberFormat
	}

	excludeID := ""
	if isUpdate {
		excludeID = candidate.ID
	}
	switch {
	case candidate.Email == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(strings.ToLower(candidate.Email)):
		errs[FieldEmail] = MsgEmailInvalid
	case !isUniqueEmail(candidate.Email, existing, excludeID):
		errs[FieldEmail] = MsgEmailInUse
	}

	switch {
	case candidate.Department == "":
		errs[FieldDepartment] = MsgDepartmentRequired
	case !IsValidDepartment(candidate.Department):
		errs[FieldDepartment] = MsgDepartmentUnknown
	}

	switch {
	case candidate.Position == "":
		errs[FieldPosition] = MsgPositionRequired
	case !IsValidPosition(candidate.Position):
		errs[FieldPosition] = MsgPositionUnknown
	}

	return errs
}

// AgeOn は誕生日 birth の人物の date 時点での満年齢を返します。
func AgeOn(birth, date time.Time) int {
	age := date.Year() - birth.Year()
	if date.Month() < birth.Month() || (date.Month() == birth.Month() && date.Day() < birth.Day()) {
		age--
	}
	return age
}

// ParseDate は DateLayout 形式の日付を解釈します。
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

func checkEmployment(raw string, today time.Time) string {
	if raw == "" {
		return MsgDateOfEmploymentRequired
	}
	d, err := ParseDate(raw)
	if err != nil {
		return MsgDateOfEmploymentInvalid
	}
	if d.After(today) {
		return MsgDateOfEmploymentFuture
	}
	return ""
}

func checkBirth(raw string, today time.Time) string {
	if raw == "" {
		return MsgDateOfBirthRequired
	}
	d, err := ParseDate(raw)
	if err != nil {
		return MsgDateOfBirthInvalid
	}
	if d.After(today) {
		return MsgDateOfBirthFuture
	}
	if AgeOn(d, today) < minimumAge {
		return MsgUnderage
	}
	return ""
}

func isUniqueEmail(email string, existing []Employee, excludeID string) bool {
	for _, e := range existing {
		if e.Email == email && (excludeID == "" || e.ID != excludeID) {
			return false
		}
	}
	return true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// dateOf は t の暦日を UTC の 0 時として返します。ParseDate の結果と比較するためです。
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
