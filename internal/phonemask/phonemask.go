// Package phonemask форматирует бразильские номера телефонов для полей ввода.
//
// Маска зависит только от последовательности цифр во входной строке:
// скобки, пробелы и дефисы, введенные пользователем, игнорируются.
// Все функции чистые и безопасны для конкурентного вызова.
package phonemask

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	// MinDigits минимальная длина валидного номера (DDD + 8 цифр, стационарный)
	MinDigits = 10
	// MaxDigits максимальная длина номера (DDD + 9 цифр, мобильный)
	MaxDigits = 11

	// DefaultRegion регион для нормализации в E.164
	DefaultRegion = "BR"

	dddLen = 2
)

// ErrInvalidPhone возвращается ToE164 для номеров, не прошедших проверку
var ErrInvalidPhone = errors.New("invalid phone number")

// StripMask возвращает цифры из value в исходном порядке
func StripMask(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ApplyMask форматирует value по шаблону (DD) NNNN-NNNN или (DD) NNNNN-NNNN.
// Частично введенные номера форматируются по мере ввода,
// цифры после одиннадцатой отбрасываются.
func ApplyMask(value string) string {
	d := StripMask(value)

	switch n := len(d); {
	case n == 0:
		return ""
	case n <= 2:
		return "(" + d
	case n <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case n <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:MaxDigits]
	}
}

// Validate сообщает, содержит ли value от 10 до 11 цифр
func Validate(value string) bool {
	n := len(StripMask(value))
	return n >= MinDigits && n <= MaxDigits
}

// DDD возвращает код региона (первые две цифры) или пустую строку
func DDD(value string) string {
	d := StripMask(value)
	if len(d) < dddLen {
		return ""
	}
	return d[:dddLen]
}

// ToE164 приводит номер к формату E.164 (+55...).
// Номер сначала проверяется через Validate, затем через libphonenumber.
func ToE164(value string) (string, error) {
	if !Validate(value) {
		return "", ErrInvalidPhone
	}

	num, err := phonenumbers.Parse(StripMask(value), DefaultRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
