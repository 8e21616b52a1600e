package validate

import (
	"strings"
	"testing"

	"github.com/campusmap/campus-api/internal/app/domain/question"
	apperrors "github.com/campusmap/campus-api/internal/errors"
)

func TestID(t *testing.T) {
	if err := ID(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []int64{0, -1} {
		if err := ID(id); !apperrors.IsValidation(err) {
			t.Fatalf("expected validation error for %d, got %v", id, err)
		}
	}
}

func TestQuestionCreate(t *testing.T) {
	if err := QuestionCreate("Where is room B204?", "I cannot find it anywhere."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := QuestionCreate("Hi", "I cannot find it anywhere."); !apperrors.IsValidation(err) {
		t.Fatalf("expected short-title rejection, got %v", err)
	}
	if err := QuestionCreate("Where is room B204?", "short"); !apperrors.IsValidation(err) {
		t.Fatalf("expected short-text rejection, got %v", err)
	}
	long := strings.Repeat("x", TitleMaxLen+1)
	if err := QuestionCreate(long, "I cannot find it anywhere."); !apperrors.IsValidation(err) {
		t.Fatalf("expected long-title rejection, got %v", err)
	}
	// Whitespace does not count toward the minimum.
	if err := QuestionCreate("     a    ", "I cannot find it anywhere."); !apperrors.IsValidation(err) {
		t.Fatalf("expected padded-title rejection, got %v", err)
	}
}

func TestLengthBoundsCountRunes(t *testing.T) {
	// 130 Cyrillic characters are 260 bytes; the title is still well under
	// the 255-character ceiling.
	if err := QuestionTitle(strings.Repeat("я", 130)); err != nil {
		t.Fatalf("multibyte title within bounds rejected: %v", err)
	}
	if err := QuestionTitle(strings.Repeat("я", TitleMaxLen+1)); !apperrors.IsValidation(err) {
		t.Fatalf("expected long multibyte title rejection, got %v", err)
	}
	// Five Cyrillic characters are 10 bytes but still too short.
	if err := Text(strings.Repeat("я", 5)); !apperrors.IsValidation(err) {
		t.Fatalf("expected short multibyte text rejection, got %v", err)
	}
	if err := Text(strings.Repeat("я", TextMinLen)); err != nil {
		t.Fatalf("multibyte text at minimum rejected: %v", err)
	}
}

func TestQuestionPatch(t *testing.T) {
	if err := QuestionPatch(question.Patch{}); !apperrors.IsValidation(err) {
		t.Fatalf("expected empty-patch rejection, got %v", err)
	}
	title := "A valid question title"
	if err := QuestionPatch(question.Patch{Title: &title}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := "Hi"
	if err := QuestionPatch(question.Patch{Title: &bad}); !apperrors.IsValidation(err) {
		t.Fatalf("expected short-title rejection, got %v", err)
	}
}

func TestAnswerCreate(t *testing.T) {
	if err := AnswerCreate(1, "Take the east stairwell."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AnswerCreate(0, "Take the east stairwell."); !apperrors.IsValidation(err) {
		t.Fatalf("expected bad question_id rejection, got %v", err)
	}
	if err := AnswerCreate(1, "short"); !apperrors.IsValidation(err) {
		t.Fatalf("expected short-text rejection, got %v", err)
	}
}

func TestEmail(t *testing.T) {
	if err := Email("alice@example.com", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "plain", "@example.com", "alice@", "a@b@c"} {
		if err := Email(bad, nil); !apperrors.IsValidation(err) {
			t.Fatalf("expected rejection for %q, got %v", bad, err)
		}
	}

	suffixes := []string{"@university.edu"}
	if err := Email("prof@cs.university.edu", suffixes); err != nil {
		t.Fatalf("suffix match failed: %v", err)
	}
	if err := Email("prof@gmail.com", suffixes); !apperrors.IsValidation(err) {
		t.Fatalf("expected domain rejection, got %v", err)
	}
}

func TestPassword(t *testing.T) {
	if err := Password("longenough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Password("short"); !apperrors.IsValidation(err) {
		t.Fatalf("expected short-password rejection, got %v", err)
	}
	if err := Password(strings.Repeat("x", 73)); !apperrors.IsValidation(err) {
		t.Fatalf("expected long-password rejection, got %v", err)
	}
}
