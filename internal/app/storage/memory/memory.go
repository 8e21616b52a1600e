// Package memory is an in-memory implementation of the storage interfaces.
// It is safe for concurrent use and is primarily intended for tests and local
// development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/campusmap/campus-api/internal/app/domain/answer"
	"github.com/campusmap/campus-api/internal/app/domain/directory"
	"github.com/campusmap/campus-api/internal/app/domain/question"
	"github.com/campusmap/campus-api/internal/app/domain/user"
	"github.com/campusmap/campus-api/internal/app/storage"
)

// Store keeps every entity in mutex-guarded maps.
type Store struct {
	mu     sync.RWMutex
	nextID int64

	users        map[int64]user.User
	usersByEmail map[string]int64
	roles        map[int64]user.Role
	questions    map[int64]question.Question
	answers      map[int64]answer.Answer

	floors    map[int64]directory.Floor
	rooms     map[int64]directory.Room
	locations map[int64]directory.Location
	teachers  map[int64]directory.Teacher
	staff     map[int64]directory.Staff
	contacts  map[int64]directory.Contact
	clubs     map[int64]directory.Club
	faq       map[int64]directory.FAQ
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.QuestionStore = (*Store)(nil)
var _ storage.AnswerStore = (*Store)(nil)
var _ storage.DirectoryStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		nextID:       1,
		users:        make(map[int64]user.User),
		usersByEmail: make(map[string]int64),
		roles:        make(map[int64]user.Role),
		questions:    make(map[int64]question.Question),
		answers:      make(map[int64]answer.Answer),
		floors:       make(map[int64]directory.Floor),
		rooms:        make(map[int64]directory.Room),
		locations:    make(map[int64]directory.Location),
		teachers:     make(map[int64]directory.Teacher),
		staff:        make(map[int64]directory.Staff),
		contacts:     make(map[int64]directory.Contact),
		clubs:        make(map[int64]directory.Club),
		faq:          make(map[int64]directory.FAQ),
	}
}

func (s *Store) nextIDLocked() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, storage.ErrNotFound)
}

// UserStore implementation ----------------------------------------------------

func (s *Store) CreateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := s.usersByEmail[key]; exists {
		return user.User{}, fmt.Errorf("user with email %s already exists", u.Email)
	}

	u.ID = s.nextIDLocked()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	s.users[u.ID] = u
	s.usersByEmail[key] = u.ID
	s.roles[u.ID] = user.Role{UserID: u.ID, IsAdmin: false}
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id int64) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, notFound("user", id)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, fmt.Errorf("user %s: %w", email, storage.ErrNotFound)
	}
	return s.users[id], nil
}

func (s *Store) GetRole(_ context.Context, userID int64) (user.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, ok := s.roles[userID]
	if !ok {
		return user.Role{}, notFound("role for user", userID)
	}
	return role, nil
}

func (s *Store) SetAdmin(_ context.Context, userID int64, isAdmin bool) (user.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, ok := s.roles[userID]
	if !ok {
		return user.Role{}, notFound("role for user", userID)
	}
	role.IsAdmin = isAdmin
	s.roles[userID] = role
	return role, nil
}

// QuestionStore implementation ------------------------------------------------

func (s *Store) CreateQuestion(_ context.Context, q question.Question) (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q.ID = s.nextIDLocked()
	q.CreatedAt = time.Now().UTC()
	s.questions[q.ID] = q
	return q, nil
}

func (s *Store) UpdateQuestion(_ context.Context, q question.Question) (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.questions[q.ID]
	if !ok {
		return question.Question{}, notFound("question", q.ID)
	}
	q.UserID = existing.UserID
	q.CreatedAt = existing.CreatedAt
	s.questions[q.ID] = q
	return q, nil
}

func (s *Store) GetQuestion(_ context.Context, id int64) (question.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return question.Question{}, notFound("question", id)
	}
	return q, nil
}

func (s *Store) ListQuestions(_ context.Context) ([]question.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]question.Question, 0, len(s.questions))
	for _, q := range s.questions {
		result = append(result, q)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteQuestion(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return notFound("question", id)
	}
	delete(s.questions, id)
	for aid, a := range s.answers {
		if a.QuestionID == id {
			delete(s.answers, aid)
		}
	}
	return nil
}

func (s *Store) QuestionExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.questions[id]
	return ok, nil
}

// AnswerStore implementation --------------------------------------------------

func (s *Store) CreateAnswer(_ context.Context, a answer.Answer) (answer.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextIDLocked()
	a.CreatedAt = time.Now().UTC()
	a.IsSolution = false
	s.answers[a.ID] = a
	return a, nil
}

func (s *Store) UpdateAnswer(_ context.Context, a answer.Answer) (answer.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.answers[a.ID]
	if !ok {
		return answer.Answer{}, notFound("answer", a.ID)
	}
	a.QuestionID = existing.QuestionID
	a.UserID = existing.UserID
	a.CreatedAt = existing.CreatedAt
	a.IsSolution = existing.IsSolution
	s.answers[a.ID] = a
	return a, nil
}

func (s *Store) GetAnswer(_ context.Context, id int64) (answer.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.answers[id]
	if !ok {
		return answer.Answer{}, notFound("answer", id)
	}
	return a, nil
}

func (s *Store) ListAnswersByQuestion(_ context.Context, questionID int64) ([]answer.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []answer.Answer
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteAnswer(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.answers[id]; !ok {
		return notFound("answer", id)
	}
	delete(s.answers, id)
	return nil
}

func (s *Store) MarkSolution(_ context.Context, questionID, answerID int64) (answer.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.answers[answerID]
	if !ok || target.QuestionID != questionID {
		return answer.Answer{}, notFound("answer", answerID)
	}

	for id, a := range s.answers {
		if a.QuestionID == questionID {
			a.IsSolution = id == answerID
			s.answers[id] = a
		}
	}
	return s.answers[answerID], nil
}

// DirectoryStore implementation -----------------------------------------------

func (s *Store) CreateFloor(_ context.Context, f directory.Floor) (directory.Floor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextIDLocked()
	f.CreatedAt = time.Now().UTC()
	s.floors[f.ID] = f
	return f, nil
}

func (s *Store) UpdateFloor(_ context.Context, f directory.Floor) (directory.Floor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.floors[f.ID]
	if !ok {
		return directory.Floor{}, notFound("floor", f.ID)
	}
	f.CreatedAt = existing.CreatedAt
	s.floors[f.ID] = f
	return f, nil
}

func (s *Store) GetFloor(_ context.Context, id int64) (directory.Floor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.floors[id]
	if !ok {
		return directory.Floor{}, notFound("floor", id)
	}
	return f, nil
}

func (s *Store) ListFloors(_ context.Context) ([]directory.Floor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]directory.Floor, 0, len(s.floors))
	for _, f := range s.floors {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteFloor(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.floors[id]; !ok {
		return notFound("floor", id)
	}
	delete(s.floors, id)
	return nil
}

func (s *Store) CreateRoom(_ context.Context, r directory.Room) (directory.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextIDLocked()
	r.CreatedAt = time.Now().UTC()
	s.rooms[r.ID] = r
	return r, nil
}

func (s *Store) UpdateRoom(_ context.Context, r directory.Room) (directory.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rooms[r.ID]
	if !ok {
		return directory.Room{}, notFound("room", r.ID)
	}
	r.CreatedAt = existing.CreatedAt
	s.rooms[r.ID] = r
	return r, nil
}

func (s *Store) GetRoom(_ context.Context, id int64) (directory.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return directory.Room{}, notFound("room", id)
	}
	return r, nil
}

func (s *Store) ListRooms(_ context.Context, floorID int64) ([]directory.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []directory.Room
	for _, r := range s.rooms {
		if floorID == 0 || r.FloorID == floorID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteRoom(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return notFound("room", id)
	}
	delete(s.rooms, id)
	return nil
}

func (s *Store) CreateLocation(_ context.Context, l directory.Location) (directory.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = s.nextIDLocked()
	l.CreatedAt = time.Now().UTC()
	s.locations[l.ID] = l
	return l, nil
}

func (s *Store) UpdateLocation(_ context.Context, l directory.Location) (directory.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.locations[l.ID]
	if !ok {
		return directory.Location{}, notFound("location", l.ID)
	}
	l.CreatedAt = existing.CreatedAt
	s.locations[l.ID] = l
	return l, nil
}

func (s *Store) GetLocation(_ context.Context, id int64) (directory.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.locations[id]
	if !ok {
		return directory.Location{}, notFound("location", id)
	}
	return l, nil
}

func (s *Store) ListLocations(_ context.Context) ([]directory.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]directory.Location, 0, len(s.locations))
	for _, l := range s.locations {
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteLocation(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.locations[id]; !ok {
		return notFound("location", id)
	}
	delete(s.locations, id)
	return nil
}

func (s *Store) CreateTeacher(_ context.Context, t directory.Teacher) (directory.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextIDLocked()
	t.CreatedAt = time.Now().UTC()
	s.teachers[t.ID] = t
	return t, nil
}

func (s *Store) UpdateTeacher(_ context.Context, t directory.Teacher) (directory.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teachers[t.ID]
	if !ok {
		return directory.Teacher{}, notFound("teacher", t.ID)
	}
	t.CreatedAt = existing.CreatedAt
	s.teachers[t.ID] = t
	return t, nil
}

func (s *Store) GetTeacher(_ context.Context, id int64) (directory.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teachers[id]
	if !ok {
		return directory.Teacher{}, notFound("teacher", id)
	}
	return t, nil
}

func (s *Store) ListTeachers(_ context.Context) ([]directory.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]directory.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteTeacher(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teachers[id]; !ok {
		return notFound("teacher", id)
	}
	delete(s.teachers, id)
	return nil
}

func (s *Store) CreateStaff(_ context.Context, st directory.Staff) (directory.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.ID = s.nextIDLocked()
	st.CreatedAt = time.Now().UTC()
	s.staff[st.ID] = st
	return st, nil
}

func (s *Store) UpdateStaff(_ context.Context, st directory.Staff) (directory.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.staff[st.ID]
	if !ok {
		return directory.Staff{}, notFound("staff", st.ID)
	}
	st.CreatedAt = existing.CreatedAt
	s.staff[st.ID] = st
	return st, nil
}

func (s *Store) GetStaff(_ context.Context, id int64) (directory.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.staff[id]
	if !ok {
		return directory.Staff{}, notFound("staff", id)
	}
	return st, nil
}

func (s *Store) ListStaff(_ context.Context) ([]directory.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]directory.Staff, 0, len(s.staff))
	for _, st := range s.staff {
		result = append(result, st)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteStaff(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.staff[id]; !ok {
		return notFound("staff", id)
	}
	delete(s.staff, id)
	return nil
}

func (s *Store) CreateContact(_ context.Context, c directory.Contact) (directory.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextIDLocked()
	c.CreatedAt = time.Now().UTC()
	s.contacts[c.ID] = c
	return c, nil
}

func (s *Store) UpdateContact(_ context.Context, c directory.Contact) (directory.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contacts[c.ID]
	if !ok {
		return directory.Contact{}, notFound("contact", c.ID)
	}
	c.CreatedAt = existing.CreatedAt
	s.contacts[c.ID] = c
	return c, nil
}

func (s *Store) GetContact(_ context.Context, id int64) (directory.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contacts[id]
	if !ok {
		return directory.Contact{}, notFound("contact", id)
	}
	return c, nil
}

func (s *Store) ListContacts(_ context.Context) ([]directory.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]directory.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteContact(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		return notFound("contact", id)
	}
	delete(s.contacts, id)
	return nil
}

func (s *Store) CreateClub(_ context.Context, c directory.Club) (directory.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextIDLocked()
	c.CreatedAt = time.Now().UTC()
	s.clubs[c.ID] = c
	return c, nil
}

func (s *Store) UpdateClub(_ context.Context, c directory.Club) (directory.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clubs[c.ID]
	if !ok {
		return directory.Club{}, notFound("club", c.ID)
	}
	c.CreatedAt = existing.CreatedAt
	s.clubs[c.ID] = c
	return c, nil
}

func (s *Store) GetClub(_ context.Context, id int64) (directory.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clubs[id]
	if !ok {
		return directory.Club{}, notFound("club", id)
	}
	return c, nil
}

func (s *Store) ListClubs(_ context.Context) ([]directory.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]directory.Club, 0, len(s.clubs))
	for _, c := range s.clubs {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteClub(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clubs[id]; !ok {
		return notFound("club", id)
	}
	delete(s.clubs, id)
	return nil
}

func (s *Store) CreateFAQ(_ context.Context, f directory.FAQ) (directory.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextIDLocked()
	f.CreatedAt = time.Now().UTC()
	s.faq[f.ID] = f
	return f, nil
}

func (s *Store) UpdateFAQ(_ context.Context, f directory.FAQ) (directory.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.faq[f.ID]
	if !ok {
		return directory.FAQ{}, notFound("faq entry", f.ID)
	}
	f.CreatedAt = existing.CreatedAt
	s.faq[f.ID] = f
	return f, nil
}

func (s *Store) GetFAQ(_ context.Context, id int64) (directory.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.faq[id]
	if !ok {
		return directory.FAQ{}, notFound("faq entry", id)
	}
	return f, nil
}

func (s *Store) ListFAQ(_ context.Context) ([]directory.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]directory.FAQ, 0, len(s.faq))
	for _, f := range s.faq {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) DeleteFAQ(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.faq[id]; !ok {
		return notFound("faq entry", id)
	}
	delete(s.faq, id)
	return nil
}
