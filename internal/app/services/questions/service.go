// Package questions orchestrates the question use cases: shape validation,
// existence and ownership preconditions, then the store mutation. Existence is
// always checked before ownership, so a missing question reports NotFound and
// never Forbidden.
package questions

import (
	"context"
	"errors"

	"github.com/campusmap/campus-api/internal/app/domain/question"
	"github.com/campusmap/campus-api/internal/app/storage"
	"github.com/campusmap/campus-api/internal/app/validate"
	apperrors "github.com/campusmap/campus-api/internal/errors"
	"github.com/campusmap/campus-api/internal/logging"
)

// Service manages questions.
type Service struct {
	store storage.QuestionStore
	users storage.UserStore
	log   *logging.Logger
}

// New constructs a question service.
func New(store storage.QuestionStore, users storage.UserStore, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("questions")
	}
	return &Service{store: store, users: users, log: log}
}

// Create persists a new question owned by the requester.
func (s *Service) Create(ctx context.Context, requesterID int64, title, text string) (question.Question, error) {
	if err := validate.QuestionCreate(title, text); err != nil {
		return question.Question{}, err
	}

	created, err := s.store.CreateQuestion(ctx, question.Question{
		UserID:   requesterID,
		Title:    title,
		Text:     text,
		IsClosed: false,
	})
	if err != nil {
		return question.Question{}, apperrors.Internal("Failed to create question", err)
	}
	s.log.WithContext(ctx).Infof("question %d created", created.ID)
	return created, nil
}

// Get returns a single question.
func (s *Service) Get(ctx context.Context, id int64) (question.Question, error) {
	if err := validate.ID(id); err != nil {
		return question.Question{}, err
	}
	q, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return question.Question{}, mapStoreError(err, "Failed to get question")
	}
	return q, nil
}

// List returns every question.
func (s *Service) List(ctx context.Context) ([]question.Question, error) {
	list, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list questions", err)
	}
	return list, nil
}

// Update applies a partial patch. Only the owning author may update; omitted
// fields keep their previous value. The patch is validated before any store
// round-trip.
func (s *Service) Update(ctx context.Context, id int64, patch question.Patch, requesterID int64) (question.Question, error) {
	if err := validate.ID(id); err != nil {
		return question.Question{}, err
	}
	if err := validate.QuestionPatch(patch); err != nil {
		return question.Question{}, err
	}

	existing, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return question.Question{}, mapStoreError(err, "Failed to update question")
	}
	if existing.UserID != requesterID {
		return question.Question{}, apperrors.Forbidden("Only the author may update this question")
	}

	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Text != nil {
		existing.Text = *patch.Text
	}

	updated, err := s.store.UpdateQuestion(ctx, existing)
	if err != nil {
		return question.Question{}, mapStoreError(err, "Failed to update question")
	}
	return updated, nil
}

// ToggleStatus sets the is_closed flag. Author only; there is no admin
// override for closing or reopening.
func (s *Service) ToggleStatus(ctx context.Context, id int64, isClosed bool, requesterID int64) (question.Question, error) {
	if err := validate.ID(id); err != nil {
		return question.Question{}, err
	}

	existing, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return question.Question{}, mapStoreError(err, "Failed to update question status")
	}
	if existing.UserID != requesterID {
		return question.Question{}, apperrors.Forbidden("Only the author may change this question's status")
	}

	existing.IsClosed = isClosed
	updated, err := s.store.UpdateQuestion(ctx, existing)
	if err != nil {
		return question.Question{}, mapStoreError(err, "Failed to update question status")
	}
	return updated, nil
}

// Delete removes a question. Permitted for the owning author or any admin;
// the role record is consulted only after the ownership check fails.
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}

	existing, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return mapStoreError(err, "Failed to delete question")
	}

	if existing.UserID != requesterID {
		role, err := s.users.GetRole(ctx, requesterID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.Forbidden("Only the author or an admin may delete this question")
			}
			return apperrors.Internal("Failed to delete question", err)
		}
		if !role.IsAdmin {
			return apperrors.Forbidden("Only the author or an admin may delete this question")
		}
	}

	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		return mapStoreError(err, "Failed to delete question")
	}
	s.log.WithContext(ctx).Infof("question %d deleted by user %d", id, requesterID)
	return nil
}

func mapStoreError(err error, internalMsg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.NotFound("Question not found")
	}
	return apperrors.Internal(internalMsg, err)
}
