// Package validation содержит чистые предикаты над сырыми значениями полей форм.
package validation

import (
	"regexp"

	"github.com/avc-dev/url-shortener-console/internal/model"
	ozzo "github.com/go-ozzo/ozzo-validation"
)

// urlPattern схема http или https, затем "://" и хотя бы один символ
var urlPattern = regexp.MustCompile(`^https?://.+`)

// urlRules правила для полей url и newUrl. Match пропускает пустые строки,
// поэтому Required идёт первым.
var urlRules = []ozzo.Rule{ozzo.Required, ozzo.Match(urlPattern)}

// Required проверяет, что значение не пустое
func Required(value string) bool {
	return ozzo.Validate(value, ozzo.Required) == nil
}

// URLShape проверяет, что значение похоже на URL.
// Никакой нормализации не выполняется: строка проверяется как есть.
func URLShape(value string) bool {
	return ozzo.Validate(value, urlRules...) == nil
}

// ValidateCreateForm возвращает ошибки по полям формы сокращения
func ValidateCreateForm(f model.CreateForm) error {
	return ozzo.ValidateStruct(&f,
		ozzo.Field(&f.URL, urlRules...),
	)
}

// ValidateShortcodeForm возвращает ошибки по полям формы с кодом
func ValidateShortcodeForm(f model.ShortcodeForm) error {
	return ozzo.ValidateStruct(&f,
		ozzo.Field(&f.Shortcode, ozzo.Required),
	)
}

// ValidateUpdateForm возвращает ошибки по полям формы замены URL
func ValidateUpdateForm(f model.UpdateForm) error {
	return ozzo.ValidateStruct(&f,
		ozzo.Field(&f.Shortcode, ozzo.Required),
		ozzo.Field(&f.NewURL, urlRules...),
	)
}

// CreateFormValid форма сокращения допускает отправку только с корректным url
func CreateFormValid(f model.CreateForm) bool {
	return ValidateCreateForm(f) == nil
}

// ShortcodeFormValid форма с кодом допускает отправку только с непустым кодом
func ShortcodeFormValid(f model.ShortcodeForm) bool {
	return ValidateShortcodeForm(f) == nil
}

// UpdateFormValid форма замены требует и код, и корректный новый URL
func UpdateFormValid(f model.UpdateForm) bool {
	return ValidateUpdateForm(f) == nil
}
