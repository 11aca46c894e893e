package employee

// Department は所属部署を表します。
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Departments は選択可能な部署の一覧です。
var Departments = []Department{DepartmentAnalytics, DepartmentTech}

// Position は役職を表します。
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Positions は選択可能な役職の一覧です。
var Positions = []Position{PositionJunior, PositionMedior, PositionSenior}

// DateLayout は日付文字列 (ISO 8601 の日付部分) のレイアウトです。
const DateLayout = "2006-01-02"

// Employee は社員エンティティです。
// 日付は DateLayout 形式の文字列で保持します。
type Employee struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	PhoneNumber      string     `json:"phoneNumber"`
	Email            string     `json:"email"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
}

// IsValidDepartment は部署が既定の集合に含まれるかを判定します。
func IsValidDepartment(d Department) bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// IsValidPosition は役職が既定の集合に含まれるかを判定します。
func IsValidPosition(p Position) bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// FindByID は id に一致する社員を返します。
func FindByID(list []Employee, id string) (Employee, bool) {
	for _, e := range list {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}
