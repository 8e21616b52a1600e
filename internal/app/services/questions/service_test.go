package questions

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
	return New(store, store, nil), store
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

func TestCreateAndGet(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)

	q, err := svc.Create(context.Background(), author.ID, "Where is room B204?", "I cannot find it on the second floor map.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}
	if q.UserID != author.ID {
		t.Fatalf("expected owner %d, got %d", author.ID, q.UserID)
	}
	if q.IsClosed {
		t.Fatalf("new question must be open")
	}

	got, err := svc.Get(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != q.Title {
		t.Fatalf("title mismatch")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)

	_, err := svc.Create(context.Background(), author.ID, "Hi", "too short title but long enough text")
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.Create(context.Background(), author.ID, "A valid title here", "short")
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateOwnerOnly(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)
	other := seedUser(t, store, "other@example.com", false)
	admin := seedUser(t, store, "admin@example.com", true)

	q, err := svc.Create(context.Background(), author.ID, "Where is room B204?", "I cannot find it on the second floor map.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Where exactly is room B204?"
	updated, err := svc.Update(context.Background(), q.ID, question.Patch{Title: &title}, author.ID)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("title not applied")
	}
	if updated.Text != q.Text {
		t.Fatalf("omitted field must keep its value")
	}

	// Not even an admin may edit someone else's question.
	for _, uid := range []int64{other.ID, admin.ID} {
		if _, err := svc.Update(context.Background(), q.ID, question.Patch{Title: &title}, uid); !apperrors.IsForbidden(err) {
			t.Fatalf("expected forbidden for user %d, got %v", uid, err)
		}
	}
}

func TestUpdateEmptyPatchRejected(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)

	q, err := svc.Create(context.Background(), author.ID, "Where is room B204?", "I cannot find it on the second floor map.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(context.Background(), q.ID, question.Patch{}, author.ID); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for empty patch, got %v", err)
	}
}

func TestUpdateMissingIsNotFoundNotForbidden(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)

	title := "A perfectly valid title"
	_, err := svc.Update(context.Background(), 9999, question.Patch{Title: &title}, author.ID)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestToggleStatus(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)
	admin := seedUser(t, store, "admin@example.com", true)

	q, err := svc.Create(context.Background(), author.ID, "Where is room B204?", "I cannot find it on the second floor map.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	closed, err := svc.ToggleStatus(context.Background(), q.ID, true, author.ID)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if !closed.IsClosed {
		t.Fatalf("expected question to be closed")
	}

	reopened, err := svc.ToggleStatus(context.Background(), q.ID, false, author.ID)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.IsClosed {
		t.Fatalf("expected question to be open")
	}

	// Status is author-only; admins have no override here.
	if _, err := svc.ToggleStatus(context.Background(), q.ID, true, admin.ID); !apperrors.IsForbidden(err) {
		t.Fatalf("expected forbidden for admin, got %v", err)
	}
}

func TestDeleteOwnerOrAdmin(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)
	other := seedUser(t, store, "other@example.com", false)
	admin := seedUser(t, store, "admin@example.com", true)

	q1, err := svc.Create(context.Background(), author.ID, "Where is room B204?", "I cannot find it on the second floor map.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	q2, err := svc.Create(context.Background(), author.ID, "Where is the library?", "The ground floor plan does not mention it.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), q1.ID, other.ID); !apperrors.IsForbidden(err) {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}
	if err := svc.Delete(context.Background(), q1.ID, author.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(context.Background(), q2.ID, admin.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), q1.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected q1 to be gone, got %v", err)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	svc, store := newService(t)
	other := seedUser(t, store, "other@example.com", false)

	// Existence is checked before ownership.
	if err := svc.Delete(context.Background(), 12345, other.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRequesterWithoutRoleIsForbidden(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)

	q, err := svc.Create(context.Background(), author.ID, "Where is room B204?", "I cannot find it on the second floor map.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A requester with no role record is treated as non-admin.
	if err := svc.Delete(context.Background(), q.ID, 777); !apperrors.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestList(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author@example.com", false)

	for _, title := range []string{"Where is room B204?", "Where is the library?"} {
		if _, err := svc.Create(context.Background(), author.ID, title, "Some sufficiently long question text."); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(list))
	}
}
