// Package app wires the domain services to their stores and exposes the
// assembled application to the transport layer.
package app

import (
	"github.com/campusmap/campus-api/internal/app/services/answers"
	"github.com/campusmap/campus-api/internal/app/services/catalog"
	"github.com/campusmap/campus-api/internal/app/services/questions"
	"github.com/campusmap/campus-api/internal/app/services/users"
	"github.com/campusmap/campus-api/internal/app/storage"
	"github.com/campusmap/campus-api/internal/app/storage/memory"
	"github.com/campusmap/campus-api/internal/auth"
	"github.com/campusmap/campus-api/internal/logging"
)

// Stores encapsulates persistence dependencies. Nil stores default to the
// in-memory implementation.
type Stores struct {
	Users     storage.UserStore
	Questions storage.QuestionStore
	Answers   storage.AnswerStore
	Directory storage.DirectoryStore
}

// Options carries the non-store dependencies of the application.
type Options struct {
	Tokens *auth.Manager
	// TeacherEmailSuffixes restricts staff e-mail domains when non-empty.
	TeacherEmailSuffixes []string
}

// Application ties the domain services together.
type Application struct {
	log *logging.Logger

	Users     *users.Service
	Questions *questions.Service
	Answers   *answers.Service
	Catalog   *catalog.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, opts Options, log *logging.Logger) *Application {
	if log == nil {
		log = logging.NewDefault("app")
	}

	mem := memory.New()
	if stores.Users == nil {
		stores.Users = mem
	}
	if stores.Questions == nil {
		stores.Questions = mem
	}
	if stores.Answers == nil {
		stores.Answers = mem
	}
	if stores.Directory == nil {
		stores.Directory = mem
	}

	return &Application{
		log:       log,
		Users:     users.New(stores.Users, opts.Tokens, log),
		Questions: questions.New(stores.Questions, stores.Users, log),
		Answers:   answers.New(stores.Answers, stores.Questions, stores.Users, log),
		Catalog:   catalog.New(stores.Directory, opts.TeacherEmailSuffixes, log),
	}
}
