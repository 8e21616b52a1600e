// Package storage defines the persistence interfaces the services depend on.
// Implementations are mechanical translations to the database and must not
// apply business rules; gateway failures propagate unchanged.
package storage

import (
	"context"
	"database/sql"

	"github.com/campusmap/campus-api/internal/app/domain/answer"
	"github.com/campusmap/campus-api/internal/app/domain/directory"
	"github.com/campusmap/campus-api/internal/app/domain/question"
	"github.com/campusmap/campus-api/internal/app/domain/user"
)

// ErrNotFound is what stores return for a missing row. It aliases
// sql.ErrNoRows so the SQL implementation forwards driver errors untouched.
var ErrNotFound = sql.ErrNoRows

// UserStore persists users and their role records.
type UserStore interface {
	// CreateUser inserts the user together with its default (non-admin) role.
	CreateUser(ctx context.Context, u user.User) (user.User, error)
	GetUser(ctx context.Context, id int64) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	GetRole(ctx context.Context, userID int64) (user.Role, error)
	SetAdmin(ctx context.Context, userID int64, isAdmin bool) (user.Role, error)
}

// QuestionStore persists questions.
type QuestionStore interface {
	CreateQuestion(ctx context.Context, q question.Question) (question.Question, error)
	UpdateQuestion(ctx context.Context, q question.Question) (question.Question, error)
	GetQuestion(ctx context.Context, id int64) (question.Question, error)
	ListQuestions(ctx context.Context) ([]question.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	QuestionExists(ctx context.Context, id int64) (bool, error)
}

// AnswerStore persists answers.
type AnswerStore interface {
	CreateAnswer(ctx context.Context, a answer.Answer) (answer.Answer, error)
	UpdateAnswer(ctx context.Context, a answer.Answer) (answer.Answer, error)
	GetAnswer(ctx context.Context, id int64) (answer.Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionID int64) ([]answer.Answer, error)
	DeleteAnswer(ctx context.Context, id int64) error
	// MarkSolution atomically makes answerID the only solution under
	// questionID: every sibling is unmarked in the same statement.
	MarkSolution(ctx context.Context, questionID, answerID int64) (answer.Answer, error)
}

// DirectoryStore persists the campus-navigation entities.
type DirectoryStore interface {
	CreateFloor(ctx context.Context, f directory.Floor) (directory.Floor, error)
	UpdateFloor(ctx context.Context, f directory.Floor) (directory.Floor, error)
	GetFloor(ctx context.Context, id int64) (directory.Floor, error)
	ListFloors(ctx context.Context) ([]directory.Floor, error)
	DeleteFloor(ctx context.Context, id int64) error

	CreateRoom(ctx context.Context, r directory.Room) (directory.Room, error)
	UpdateRoom(ctx context.Context, r directory.Room) (directory.Room, error)
	GetRoom(ctx context.Context, id int64) (directory.Room, error)
	ListRooms(ctx context.Context, floorID int64) ([]directory.Room, error)
	DeleteRoom(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, l directory.Location) (directory.Location, error)
	UpdateLocation(ctx context.Context, l directory.Location) (directory.Location, error)
	GetLocation(ctx context.Context, id int64) (directory.Location, error)
	ListLocations(ctx context.Context) ([]directory.Location, error)
	DeleteLocation(ctx context.Context, id int64) error

	CreateTeacher(ctx context.Context, t directory.Teacher) (directory.Teacher, error)
	UpdateTeacher(ctx context.Context, t directory.Teacher) (directory.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (directory.Teacher, error)
	ListTeachers(ctx context.Context) ([]directory.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error

	CreateStaff(ctx context.Context, s directory.Staff) (directory.Staff, error)
	UpdateStaff(ctx context.Context, s directory.Staff) (directory.Staff, error)
	GetStaff(ctx context.Context, id int64) (directory.Staff, error)
	ListStaff(ctx context.Context) ([]directory.Staff, error)
	DeleteStaff(ctx context.Context, id int64) error

	CreateContact(ctx context.Context, c directory.Contact) (directory.Contact, error)
	UpdateContact(ctx context.Context, c directory.Contact) (directory.Contact, error)
	GetContact(ctx context.Context, id int64) (directory.Contact, error)
	ListContacts(ctx context.Context) ([]directory.Contact, error)
	DeleteContact(ctx context.Context, id int64) error

	CreateClub(ctx context.Context, c directory.Club) (directory.Club, error)
	UpdateClub(ctx context.Context, c directory.Club) (directory.Club, error)
	GetClub(ctx context.Context, id int64) (directory.Club, error)
	ListClubs(ctx context.Context) ([]directory.Club, error)
	DeleteClub(ctx context.Context, id int64) error

	CreateFAQ(ctx context.Context, f directory.FAQ) (directory.FAQ, error)
	UpdateFAQ(ctx context.Context, f directory.FAQ) (directory.FAQ, error)
	GetFAQ(ctx context.Context, id int64) (directory.FAQ, error)
	ListFAQ(ctx context.Context) ([]directory.FAQ, error)
	DeleteFAQ(ctx context.Context, id int64) error
}
