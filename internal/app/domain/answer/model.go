// Package answer defines the Q&A answer entity.
package answer

import "time"

// Answer is a user-authored answer to a question. At most one answer per
// question carries IsSolution at any time; only the question's author may
// move the mark.
type Answer struct {
	ID         int64     `json:"answer_id"`
	QuestionID int64     `json:"question_id"`
	UserID     int64     `json:"user_id"`
	Text       string    `json:"text"`
	IsSolution bool      `json:"is_solution"`
	CreatedAt  time.Time `json:"created_at"`
}
