package teacher

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

// ValidateRequest checks a raw request and returns its normalized form: the
// word trimmed and lowercased, style and level defaulted when absent or empty.
// All field problems are collected into one *domain.ValidationError.
func ValidateRequest(raw domain.RawRequest) (domain.WordRequest, error) {
	var errs []domain.FieldError

	var word string
	if raw.Word != nil {
		word = strings.TrimSpace(*raw.Word)
	}
	switch {
	case word == "":
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	case len(word) > domain.MaxWordLength:
		errs = append(errs, domain.FieldError{
			Field:   "word",
			Message: fmt.Sprintf("max %d characters", domain.MaxWordLength),
		})
	case !domain.IsWellFormedWord(word):
		errs = append(errs, domain.FieldError{
			Field:   "word",
			Message: fmt.Sprintf("invalid word %q: only letters, apostrophes and hyphens are allowed", word),
		})
	}

	style := domain.DefaultStyle
	if raw.Style != nil && *raw.Style != "" {
		style = domain.Style(*raw.Style)
		if !style.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   "style",
				Message: fmt.Sprintf("invalid style %q: must be one of %s", *raw.Style, joinValues(domain.Styles)),
			})
		}
	}

	level := domain.DefaultLevel
	if raw.Level != nil && *raw.Level != "" {
		level = domain.Level(*raw.Level)
		if !level.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   "level",
				Message: fmt.Sprintf("invalid level %q: must be one of %s", *raw.Level, joinValues(domain.Levels)),
			})
		}
	}

	if len(errs) > 0 {
		return domain.WordRequest{}, domain.NewValidationErrors(errs)
	}

	return domain.WordRequest{
		Word:  domain.NormalizeWord(word),
		Style: style,
		Level: level,
	}, nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
