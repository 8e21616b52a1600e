package answers

import (
	"context"
	"testing"

	"github.com/campusmap/campus-api/internal/app/domain/question"
	"github.com/campusmap/campus-api/internal/app/domain/user"
	"github.com/campusmap/campus-api/internal/app/storage/memory"
	apperrors "github.com/campusmap/campus-api/internal/errors"
)

func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return New(store, store, store, nil), store
}

func seedUser(t *testing.T, store *memory.Store, email string, admin bool) user.User {
	t.Helper()
	u, err := store.CreateUser(context.Background(), user.User{Email: email, Name: "test", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if admin {
		if _, err := store.SetAdmin(context.Background(), u.ID, true); err != nil {
			t.Fatalf("set admin: %v", err)
		}
	}
	return u
}

func seedQuestion(t *testing.T, store *memory.Store, ownerID int64) question.Question {
	t.Helper()
	q, err := store.CreateQuestion(context.Background(), question.Question{
		UserID: ownerID,
		Title:  "Where is room B204?",
		Text:   "I cannot find it on the second floor map.",
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return q
}

func TestCreateAndList(t *testing.T) {
	svc, store := newService(t)
	asker := seedUser(t, store, "asker@example.com", false)
	helper := seedUser(t, store, "helper@example.com", false)
	q := seedQuestion(t, store, asker.ID)

	a, err := svc.Create(context.Background(), helper.ID, q.ID, "Take the east stairwell to the second floor.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.QuestionID != q.ID || a.UserID != helper.ID {
		t.Fatalf("unexpected ownership: %+v", a)
	}
	if a.IsSolution {
		t.Fatalf("new answer must not be a solution")
	}

	list, err := svc.ListByQuestion(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(list))
	}
}

func TestCreateMissingQuestion(t *testing.T) {
	svc, store := newService(t)
	helper := seedUser(t, store, "helper@example.com", false)

	// The question must exist before any row is written.
	_, err := svc.Create(context.Background(), helper.ID, 9999, "Take the east stairwell upstairs.")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListMissingQuestion(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.ListByQuestion(context.Background(), 9999); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateAuthorOnly(t *testing.T) {
	svc, store := newService(t)
	asker := seedUser(t, store, "asker@example.com", false)
	helper := seedUser(t, store, "helper@example.com", false)
	q := seedQuestion(t, store, asker.ID)

	a, err := svc.Create(context.Background(), helper.ID, q.ID, "Take the east stairwell to the second floor.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), a.ID, "Take the west stairwell to the second floor.", helper.ID)
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Text == a.Text {
		t.Fatalf("text not updated")
	}

	if _, err := svc.Update(context.Background(), a.ID, "Another long enough answer text.", asker.ID); !apperrors.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 9999, "Another long enough answer text.", helper.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAuthorOrAdmin(t *testing.T) {
	svc, store := newService(t)
	asker := seedUser(t, store, "asker@example.com", false)
	helper := seedUser(t, store, "helper@example.com", false)
	admin := seedUser(t, store, "admin@example.com", true)
	q := seedQuestion(t, store, asker.ID)

	a1, err := svc.Create(context.Background(), helper.ID, q.ID, "Take the east stairwell to the second floor.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	a2, err := svc.Create(context.Background(), helper.ID, q.ID, "Use the elevator next to the cafeteria.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The question's author does not own the answer.
	if err := svc.Delete(context.Background(), a1.ID, asker.ID); !apperrors.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), a1.ID, helper.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if err := svc.Delete(context.Background(), a2.ID, admin.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestMarkSolutionExactlyOne(t *testing.T) {
	svc, store := newService(t)
	u1 := seedUser(t, store, "u1@example.com", false)
	u2 := seedUser(t, store, "u2@example.com", false)
	u3 := seedUser(t, store, "u3@example.com", false)
	q1 := seedQuestion(t, store, u1.ID)

	a1, err := svc.Create(context.Background(), u2.ID, q1.ID, "Take the east stairwell to the second floor.")
	if err != nil {
		t.Fatalf("create a1: %v", err)
	}
	a2, err := svc.Create(context.Background(), u3.ID, q1.ID, "Use the elevator next to the cafeteria.")
	if err != nil {
		t.Fatalf("create a2: %v", err)
	}

	solutions := func() (int, int64) {
		t.Helper()
		list, err := svc.ListByQuestion(context.Background(), q1.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		count := 0
		var id int64
		for _, a := range list {
			if a.IsSolution {
				count++
				id = a.ID
			}
		}
		return count, id
	}

	marked, err := svc.MarkSolution(context.Background(), a1.ID, u1.ID)
	if err != nil {
		t.Fatalf("mark a1: %v", err)
	}
	if !marked.IsSolution {
		t.Fatalf("returned answer must carry the mark")
	}
	if count, id := solutions(); count != 1 || id != a1.ID {
		t.Fatalf("expected a1 to be the single solution, got count=%d id=%d", count, id)
	}

	// Re-marking the same answer is idempotent.
	if _, err := svc.MarkSolution(context.Background(), a1.ID, u1.ID); err != nil {
		t.Fatalf("re-mark a1: %v", err)
	}
	if count, id := solutions(); count != 1 || id != a1.ID {
		t.Fatalf("expected a1 to stay the single solution, got count=%d id=%d", count, id)
	}

	// Moving the mark unmarks the previous solution in the same mutation.
	if _, err := svc.MarkSolution(context.Background(), a2.ID, u1.ID); err != nil {
		t.Fatalf("mark a2: %v", err)
	}
	if count, id := solutions(); count != 1 || id != a2.ID {
		t.Fatalf("expected a2 to be the single solution, got count=%d id=%d", count, id)
	}

	// Only the question's author may mark, not the answer's author.
	if _, err := svc.MarkSolution(context.Background(), a1.ID, u2.ID); !apperrors.IsForbidden(err) {
		t.Fatalf("expected forbidden for answer author, got %v", err)
	}
}

func TestMarkSolutionMissingAnswer(t *testing.T) {
	svc, store := newService(t)
	u1 := seedUser(t, store, "u1@example.com", false)

	if _, err := svc.MarkSolution(context.Background(), 9999, u1.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
