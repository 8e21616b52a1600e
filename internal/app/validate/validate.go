// Package validate holds the pure input validators. They check shape only —
// lengths, required fields, numeric ranges, enumerated e-mail domains — and
// never touch storage, so every request fails fast before any I/O.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/campusmap/campus-api/internal/app/domain/question"
	apperrors "github.com/campusmap/campus-api/internal/errors"
)

const (
	TitleMinLen = 5
	TitleMaxLen = 255
	TextMinLen  = 10
	TextMaxLen  = 10000
)

// ID checks that an entity identifier is a positive integer.
func ID(id int64) error {
	if id <= 0 {
		return apperrors.Validation("id must be a positive integer")
	}
	return nil
}

// QuestionTitle checks title length bounds. Bounds count runes, not bytes,
// so multibyte scripts are measured the way users see them.
func QuestionTitle(title string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(title))
	if length < TitleMinLen {
		return apperrors.Validation(fmt.Sprintf("title must be at least %d characters", TitleMinLen))
	}
	if length > TitleMaxLen {
		return apperrors.Validation(fmt.Sprintf("title must be at most %d characters", TitleMaxLen))
	}
	return nil
}

// Text checks body-text length bounds, shared by questions and answers.
func Text(text string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(text))
	if length < TextMinLen {
		return apperrors.Validation(fmt.Sprintf("text must be at least %d characters", TextMinLen))
	}
	if length > TextMaxLen {
		return apperrors.Validation(fmt.Sprintf("text must be at most %d characters", TextMaxLen))
	}
	return nil
}

// QuestionCreate checks the full shape of a new question.
func QuestionCreate(title, text string) error {
	if err := QuestionTitle(title); err != nil {
		return err
	}
	return Text(text)
}

// QuestionPatch checks a partial update. Supplied fields are re-checked
// against the same bounds as creation; an empty patch is rejected.
func QuestionPatch(patch question.Patch) error {
	if patch.Title == nil && patch.Text == nil {
		return apperrors.Validation("at least one of title or text must be provided")
	}
	if patch.Title != nil {
		if err := QuestionTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Text != nil {
		if err := Text(*patch.Text); err != nil {
			return err
		}
	}
	return nil
}

// AnswerCreate checks the full shape of a new answer.
func AnswerCreate(questionID int64, text string) error {
	if questionID <= 0 {
		return apperrors.Validation("question_id must be a positive integer")
	}
	return Text(text)
}

// Email checks basic address shape and, when suffixes is non-empty, that the
// domain ends in one of the allowed suffixes.
func Email(address string, suffixes []string) error {
	trimmed := strings.TrimSpace(address)
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 || strings.Count(trimmed, "@") != 1 {
		return apperrors.Validation("email is malformed")
	}
	if len(suffixes) == 0 {
		return nil
	}
	domain := trimmed[at+1:]
	for _, suffix := range suffixes {
		if strings.HasSuffix(domain, strings.TrimPrefix(suffix, "@")) {
			return nil
		}
	}
	return apperrors.Validation("email domain is not allowed").WithDetails("allowed_suffixes", suffixes)
}

// Password checks credential strength bounds.
func Password(password string) error {
	if len(password) < 8 {
		return apperrors.Validation("password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return apperrors.Validation("password must be at most 72 characters")
	}
	return nil
}

// Required checks a non-empty string field.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validation(field + " is required")
	}
	return nil
}
