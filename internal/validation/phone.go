package validation

import (
	"fmt"

	"github.com/iudanet/qrfeedback/internal/phonemask"
)

// ValidatePhone проверяет, что номер содержит DDD и 8-9 цифр.
// Маска и любые нецифровые символы допускаются.
func ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone cannot be empty")
	}

	if !phonemask.Validate(phone) {
		return fmt.Errorf("phone must contain %d or %d digits including area code",
			phonemask.MinDigits, phonemask.MaxDigits)
	}

	return nil
}

// ValidateOptionalPhone допускает пустой номер
func ValidateOptionalPhone(phone string) error {
	if phone == "" {
		return nil
	}
	return ValidatePhone(phone)
}
