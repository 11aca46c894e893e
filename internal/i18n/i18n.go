// Package i18n は UI 文言の英語・トルコ語リソースと言語判定を提供します。
package i18n

import (
	"strings"

	"github.com/ogurasousui/employee-roster/internal/core/state"
	"golang.org/x/text/language"
)

var supported = []state.Language{state.LanguageEN, state.LanguageTR}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Turkish})

var resources = map[state.Language]map[string]string{
	state.LanguageEN: {
		"appTitle": "Employee Management",
		"language": "Language",

		"employees": "Employees",
		"addNew":    "Add New",

		"employeeList":     "Employee List",
		"tableView":        "Table View",
		"listView":         "List View",
		"search":           "Search",
		"noEmployeesFound": "No employees found",

		"firstName":        "First Name",
		"lastName":         "Last Name",
		"dateOfEmployment": "Date of Employment",
		"dateOfBirth":      "Date of Birth",
		"phoneNumber":      "Phone",
		"email":            "Email",
		"department":       "Department",
		"position":         "Position",

		"analytics":        "Analytics",
		"tech":             "Tech",
		"selectDepartment": "Select Department",

		"junior":         "Junior",
		"medior":         "Medior",
		"senior":         "Senior",
		"selectPosition": "Select Position",

		"actions": "Actions",
		"edit":    "Edit",
		"delete":  "Delete",
		"save":    "Save",
		"cancel":  "Cancel",
		"proceed": "Proceed",
		"goBack":  "Go Back",

		"addEmployee":  "Add Employee",
		"editEmployee": "Edit Employee",

		"confirmDelete":          "Are you sure?",
		"deleteConfirmationText": "Selected Employee record of {firstName} {lastName} will be deleted",
		"confirmUpdate":          "Update Employee?",
		"updateConfirmationText": "Are you sure you want to update this employee record?",

		"required":          "This field is required",
		"invalidEmail":      "Email is not valid",
		"emailInUse":        "Email is already in use",
		"invalidPhone":      "Phone number format should be +XX XXX XXX XX XX",
		"pastDateRequired":  "Date must be in the past",
		"atLeast18Required": "Employee must be at least 18 years old",

		"page": "Page",
		"of":   "of",

		"notFound":        "Page Not Found",
		"notFoundMessage": "The page you are looking for does not exist.",
		"returnHome":      "Return to Home",
	},
	state.LanguageTR: {
		"appTitle": "Çalışan Yönetimi",
		"language": "Dil",

		"employees": "Çalışanlar",
		"addNew":    "Yeni Ekle",

		"employeeList":     "Çalışan Listesi",
		"tableView":        "Tablo Görünümü",
		"listView":         "Liste Görünümü",
		"search":           "Ara",
		"noEmployeesFound": "Çalışan bulunamadı",

		"firstName":        "Ad",
		"lastName":         "Soyad",
		"dateOfEmployment": "İşe Başlama Tarihi",
		"dateOfBirth":      "Doğum Tarihi",
		"phoneNumber":      "Telefon",
		"email":            "E-posta",
		"department":       "Departman",
		"position":         "Pozisyon",

		"analytics":        "Analitik",
		"tech":             "Teknoloji",
		"selectDepartment": "Departman Seç",

		"junior":         "Junior",
		"medior":         "Medior",
		"senior":         "Senior",
		"selectPosition": "Pozisyon Seç",

		"actions": "İşlemler",
		"edit":    "Düzenle",
		"delete":  "Sil",
		"save":    "Kaydet",
		"cancel":  "İptal",
		"proceed": "Devam Et",
		"goBack":  "Geri Dön",

		"addEmployee":  "Çalışan Ekle",
		"editEmployee": "Çalışan Düzenle",

		"confirmDelete":          "Emin misiniz?",
		"deleteConfirmationText": "{firstName} {lastName} adlı çalışan kaydı silinecek",
		"confirmUpdate":          "Çalışan Güncellensin mi?",
		"updateConfirmationText": "Bu çalışan kaydını güncellemek istediğinize emin misiniz?",

		"required":          "Bu alan zorunludur",
		"invalidEmail":      "E-posta geçerli değil",
		"emailInUse":        "E-posta zaten kullanımda",
		"invalidPhone":      "Telefon numarası formatı +XX XXX XXX XX XX olmalıdır",
		"pastDateRequired":  "Tarih geçmiş bir tarih olmalıdır",
		"atLeast18Required": "Çalışan en az 18 yaşında olmalıdır",

		"page": "Sayfa",
		"of":   "/",

		"notFound":        "Sayfa Bulunamadı",
		"notFoundMessage": "Aradığınız sayfa mevcut değil.",
		"returnHome":      "Ana Sayfaya Dön",
	},
}

// T は lang の文言を返します。未対応の言語は英語、未知のキーはキー自身にフォールバックします。
func T(lang state.Language, key string) string {
	table, ok := resources[lang]
	if !ok {
		table = resources[state.LanguageEN]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Format は T の結果に含まれる {name} を args で置き換えます。
func Format(lang state.Language, key string, args map[string]string) string {
	s := T(lang, key)
	if len(args) == 0 {
		return s
	}
	pairs := make([]string, 0, len(args)*2)
	for name, v := range args {
		pairs = append(pairs, "{"+name+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Match は BCP 47 タグまたは POSIX ロケール文字列 (tr_TR.UTF-8 など) を対応言語に解決します。
func Match(locale string) state.Language {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || strings.EqualFold(locale, "C") || strings.EqualFold(locale, "POSIX") {
		return state.LanguageEN
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return state.LanguageEN
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return state.LanguageEN
	}
	return supported[idx]
}

