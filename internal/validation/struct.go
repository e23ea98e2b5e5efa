package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/qrfeedback/internal/phonemask"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// instance возвращает общий validator с зарегистрированными тегами
func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// В сообщениях используем имена полей из json тегов
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// phone_br: 10 или 11 цифр, маска допускается
		_ = v.RegisterValidation("phone_br", func(fl validator.FieldLevel) bool {
			return phonemask.Validate(fl.Field().String())
		})
		// slug: формат slug зоны
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return SlugPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Struct проверяет структуру по тегам `validate`.
// Ошибки по полям склеиваются в одно сообщение.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "phone_br":
		return fmt.Sprintf("%s must contain %d or %d digits including area code",
			field, phonemask.MinDigits, phonemask.MaxDigits)
	case "slug":
		return field + " can only contain lowercase letters (a-z), numbers (0-9), and dashes (-)"
	case "email":
		return field + " must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
