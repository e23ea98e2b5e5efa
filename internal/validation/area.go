package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/qrfeedback/internal/models"
)

// SlugPattern определяет допустимый формат slug зоны
// Только строчные латинские буквы, цифры и дефис
// Длина: 3-64 символа
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]{3,64}$`)

const (
	// MinSlugLen минимальная длина slug
	MinSlugLen = 3
	// MaxSlugLen максимальная длина slug
	MaxSlugLen = 64
	// MaxNameLen максимальная длина имени зоны или пользователя
	MaxNameLen = 100
	// MaxCommentLen максимальная длина комментария в отзыве
	MaxCommentLen = 2000
)

// ValidateSlug проверяет slug, который кодируется в QR-код
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if len(slug) < MinSlugLen {
		return fmt.Errorf("slug must be at least %d characters long", MinSlugLen)
	}

	if len(slug) > MaxSlugLen {
		return fmt.Errorf("slug must not exceed %d characters", MaxSlugLen)
	}

	if !SlugPattern.MatchString(slug) {
		return fmt.Errorf("slug can only contain lowercase letters (a-z), numbers (0-9), and dashes (-)")
	}

	return nil
}

// ValidateName проверяет отображаемое имя
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}

// ValidateRating проверяет оценку
func ValidateRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	return nil
}

// ValidateComment проверяет длину комментария (пустой допустим)
func ValidateComment(comment string) error {
	if utf8.RuneCountInString(comment) > MaxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", MaxCommentLen)
	}
	return nil
}
