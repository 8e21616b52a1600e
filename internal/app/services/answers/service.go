// Package answers orchestrates the answer use cases, including the
// solution-marking flow reserved for the parent question's author.
package answers

import (
	"context"
	"errors"

	"github.com/campusmap/campus-api/internal/app/domain/answer"
	"github.com/campusmap/campus-api/internal/app/storage"
	"github.com/campusmap/campus-api/internal/app/validate"
	apperrors "github.com/campusmap/campus-api/internal/errors"
	"github.com/campusmap/campus-api/internal/logging"
)

// Service manages answers.
type Service struct {
	store     storage.AnswerStore
	questions storage.QuestionStore
	users     storage.UserStore
	log       *logging.Logger
}

// New constructs an answer service.
func New(store storage.AnswerStore, questions storage.QuestionStore, users storage.UserStore, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("answers")
	}
	return &Service{store: store, questions: questions, users: users, log: log}
}

// Create persists a new answer owned by the requester. The referenced
// question must exist; the check runs before any row is written.
func (s *Service) Create(ctx context.Context, requesterID, questionID int64, text string) (answer.Answer, error) {
	if err := validate.AnswerCreate(questionID, text); err != nil {
		return answer.Answer{}, err
	}

	exists, err := s.questions.QuestionExists(ctx, questionID)
	if err != nil {
		return answer.Answer{}, apperrors.Internal("Failed to create answer", err)
	}
	if !exists {
		return answer.Answer{}, apperrors.NotFound("Question not found")
	}

	created, err := s.store.CreateAnswer(ctx, answer.Answer{
		QuestionID: questionID,
		UserID:     requesterID,
		Text:       text,
	})
	if err != nil {
		return answer.Answer{}, apperrors.Internal("Failed to create answer", err)
	}
	s.log.WithContext(ctx).Infof("answer %d created for question %d", created.ID, questionID)
	return created, nil
}

// ListByQuestion returns every answer under a question, oldest first. The
// question must exist.
func (s *Service) ListByQuestion(ctx context.Context, questionID int64) ([]answer.Answer, error) {
	if err := validate.ID(questionID); err != nil {
		return nil, err
	}

	exists, err := s.questions.QuestionExists(ctx, questionID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list answers", err)
	}
	if !exists {
		return nil, apperrors.NotFound("Question not found")
	}

	list, err := s.store.ListAnswersByQuestion(ctx, questionID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list answers", err)
	}
	return list, nil
}

// Update replaces the answer text. Author only.
func (s *Service) Update(ctx context.Context, id int64, text string, requesterID int64) (answer.Answer, error) {
	if err := validate.ID(id); err != nil {
		return answer.Answer{}, err
	}
	if err := validate.Text(text); err != nil {
		return answer.Answer{}, err
	}

	existing, err := s.store.GetAnswer(ctx, id)
	if err != nil {
		return answer.Answer{}, mapStoreError(err, "Failed to update answer")
	}
	if existing.UserID != requesterID {
		return answer.Answer{}, apperrors.Forbidden("Only the author may update this answer")
	}

	existing.Text = text
	updated, err := s.store.UpdateAnswer(ctx, existing)
	if err != nil {
		return answer.Answer{}, mapStoreError(err, "Failed to update answer")
	}
	return updated, nil
}

// Delete removes an answer. Permitted for the owning author or any admin;
// the role record is consulted only after the ownership check fails.
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}

	existing, err := s.store.GetAnswer(ctx, id)
	if err != nil {
		return mapStoreError(err, "Failed to delete answer")
	}

	if existing.UserID != requesterID {
		role, err := s.users.GetRole(ctx, requesterID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.Forbidden("Only the author or an admin may delete this answer")
			}
			return apperrors.Internal("Failed to delete answer", err)
		}
		if !role.IsAdmin {
			return apperrors.Forbidden("Only the author or an admin may delete this answer")
		}
	}

	if err := s.store.DeleteAnswer(ctx, id); err != nil {
		return mapStoreError(err, "Failed to delete answer")
	}
	s.log.WithContext(ctx).Infof("answer %d deleted by user %d", id, requesterID)
	return nil
}

// MarkSolution makes the answer the single accepted solution under its
// question. Only the question's author may mark — not the answer's author.
// The store flips the whole sibling set in one statement, so at most one
// answer per question carries the mark.
func (s *Service) MarkSolution(ctx context.Context, id int64, requesterID int64) (answer.Answer, error) {
	if err := validate.ID(id); err != nil {
		return answer.Answer{}, err
	}

	target, err := s.store.GetAnswer(ctx, id)
	if err != nil {
		return answer.Answer{}, mapStoreError(err, "Failed to mark solution")
	}

	parent, err := s.questions.GetQuestion(ctx, target.QuestionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return answer.Answer{}, apperrors.NotFound("Question not found")
		}
		return answer.Answer{}, apperrors.Internal("Failed to mark solution", err)
	}
	if parent.UserID != requesterID {
		return answer.Answer{}, apperrors.Forbidden("Only the question's author may mark a solution")
	}

	marked, err := s.store.MarkSolution(ctx, target.QuestionID, id)
	if err != nil {
		return answer.Answer{}, mapStoreError(err, "Failed to mark solution")
	}
	s.log.WithContext(ctx).Infof("answer %d marked as solution for question %d", id, target.QuestionID)
	return marked, nil
}

func mapStoreError(err error, internalMsg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.NotFound("Answer not found")
	}
	return apperrors.Internal(internalMsg, err)
}
