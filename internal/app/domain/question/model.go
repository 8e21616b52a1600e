// Package question defines the Q&A question entity.
package question

import "time"

// Question is a user-authored question. The owner is fixed at creation; text
// fields are mutable by the owner only, deletion additionally by admins.
type Question struct {
	ID        int64     `json:"question_id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	IsClosed  bool      `json:"is_closed"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch carries a partial update. Nil fields keep their previous value.
type Patch struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}
