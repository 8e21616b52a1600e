package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/campusmap/campus-api/internal/app/domain/answer"
	"github.com/campusmap/campus-api/internal/app/domain/question"
	"github.com/campusmap/campus-api/internal/app/domain/user"
	"github.com/campusmap/campus-api/internal/app/storage"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestCreateUserInsertsRoleInSameTx(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice@example.com", "Alice", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO roles").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u, err := store.CreateUser(context.Background(), user.User{Email: "Alice@Example.com", Name: "Alice", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("expected id 7, got %d", u.ID)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email must be normalised, got %q", u.Email)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateUserRollsBackOnRoleFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO roles").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	if _, err := store.CreateUser(context.Background(), user.User{Email: "alice@example.com", Name: "Alice", PasswordHash: "hash"}); err == nil {
		t.Fatalf("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetQuestionNotFoundPropagates(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, user_id, title, text, is_closed, created_at").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetQuestion(context.Background(), 99)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound passthrough, got %v", err)
	}
}

func TestUpdateQuestionZeroRowsIsNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE questions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := store.UpdateQuestion(context.Background(), question.Question{ID: 99, Title: "Some title", Text: "Some text here"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestionExists(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := store.QuestionExists(context.Background(), 5)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected true")
	}
}

func TestMarkSolutionFlipsSiblingSet(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now().UTC()

	// One statement updates every answer under the question.
	mock.ExpectExec(`UPDATE answers\s+SET is_solution = \(id = \$2\)\s+WHERE question_id = \$1`).
		WithArgs(int64(3), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("SELECT id, question_id, user_id, text, is_solution, created_at").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "question_id", "user_id", "text", "is_solution", "created_at"}).
			AddRow(11, 3, 2, "East stairwell.", true, now))

	a, err := store.MarkSolution(context.Background(), 3, 11)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !a.IsSolution {
		t.Fatalf("expected solution mark")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestMarkSolutionMissingAnswer(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE answers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := store.MarkSolution(context.Background(), 3, 99)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetAdminMissingUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE roles").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := store.SetAdmin(context.Background(), 99, true)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAnswer(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO answers").
		WithArgs(int64(3), int64(2), "East stairwell.", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	a, err := store.CreateAnswer(context.Background(), answer.Answer{QuestionID: 3, UserID: 2, Text: "East stairwell."})
	if err != nil {
		t.Fatalf("create answer: %v", err)
	}
	if a.ID != 11 {
		t.Fatalf("expected id 11, got %d", a.ID)
	}
}
