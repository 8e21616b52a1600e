// Package postgres implements the storage interfaces backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/campusmap/campus-api/internal/app/domain/answer"
	"github.com/campusmap/campus-api/internal/app/domain/directory"
	"github.com/campusmap/campus-api/internal/app/domain/question"
	"github.com/campusmap/campus-api/internal/app/domain/user"
	"github.com/campusmap/campus-api/internal/app/storage"
)

// Store implements the storage interfaces over a shared *sql.DB pool.
type Store struct {
	db *sql.DB
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.QuestionStore = (*Store)(nil)
var _ storage.AnswerStore = (*Store)(nil)
var _ storage.DirectoryStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// --- UserStore ---------------------------------------------------------------

func (s *Store) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	now := time.Now().UTC()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.CreatedAt = now
	u.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return user.User{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		return user.User{}, err
	}

	// Role row is created with the user; a user without a role never exists.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO roles (user_id, is_admin) VALUES ($1, false)
	`, u.ID)
	if err != nil {
		return user.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (user.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email)))

	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *Store) GetRole(ctx context.Context, userID int64) (user.Role, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, is_admin FROM roles WHERE user_id = $1
	`, userID)

	var role user.Role
	if err := row.Scan(&role.UserID, &role.IsAdmin); err != nil {
		return user.Role{}, err
	}
	return role, nil
}

func (s *Store) SetAdmin(ctx context.Context, userID int64, isAdmin bool) (user.Role, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE roles SET is_admin = $2 WHERE user_id = $1
	`, userID, isAdmin)
	if err != nil {
		return user.Role{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return user.Role{}, sql.ErrNoRows
	}
	return user.Role{UserID: userID, IsAdmin: isAdmin}, nil
}

// --- QuestionStore -----------------------------------------------------------

func (s *Store) CreateQuestion(ctx context.Context, q question.Question) (question.Question, error) {
	q.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (user_id, title, text, is_closed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, q.UserID, q.Title, q.Text, q.IsClosed, q.CreatedAt).Scan(&q.ID)
	if err != nil {
		return question.Question{}, err
	}
	return q, nil
}

func (s *Store) UpdateQuestion(ctx context.Context, q question.Question) (question.Question, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE questions
		SET title = $2, text = $3, is_closed = $4
		WHERE id = $1
	`, q.ID, q.Title, q.Text, q.IsClosed)
	if err != nil {
		return question.Question{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return question.Question{}, sql.ErrNoRows
	}
	return s.GetQuestion(ctx, q.ID)
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (question.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, text, is_closed, created_at
		FROM questions
		WHERE id = $1
	`, id)

	var q question.Question
	if err := row.Scan(&q.ID, &q.UserID, &q.Title, &q.Text, &q.IsClosed, &q.CreatedAt); err != nil {
		return question.Question{}, err
	}
	return q, nil
}

func (s *Store) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, text, is_closed, created_at
		FROM questions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []question.Question
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &q.Text, &q.IsClosed, &q.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	return result, rows.Err()
}

func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) QuestionExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

// --- AnswerStore -------------------------------------------------------------

func (s *Store) CreateAnswer(ctx context.Context, a answer.Answer) (answer.Answer, error) {
	a.CreatedAt = time.Now().UTC()
	a.IsSolution = false
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO answers (question_id, user_id, text, is_solution, created_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING id
	`, a.QuestionID, a.UserID, a.Text, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return answer.Answer{}, err
	}
	return a, nil
}

func (s *Store) UpdateAnswer(ctx context.Context, a answer.Answer) (answer.Answer, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE answers SET text = $2 WHERE id = $1
	`, a.ID, a.Text)
	if err != nil {
		return answer.Answer{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return answer.Answer{}, sql.ErrNoRows
	}
	return s.GetAnswer(ctx, a.ID)
}

func (s *Store) GetAnswer(ctx context.Context, id int64) (answer.Answer, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, question_id, user_id, text, is_solution, created_at
		FROM answers
		WHERE id = $1
	`, id)

	var a answer.Answer
	if err := row.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Text, &a.IsSolution, &a.CreatedAt); err != nil {
		return answer.Answer{}, err
	}
	return a, nil
}

func (s *Store) ListAnswersByQuestion(ctx context.Context, questionID int64) ([]answer.Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, user_id, text, is_solution, created_at
		FROM answers
		WHERE question_id = $1
		ORDER BY created_at
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []answer.Answer
	for rows.Next() {
		var a answer.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Text, &a.IsSolution, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (s *Store) DeleteAnswer(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) MarkSolution(ctx context.Context, questionID, answerID int64) (answer.Answer, error) {
	// One conditional statement flips the whole sibling set, so exactly one
	// answer ends up marked no matter how calls interleave.
	result, err := s.db.ExecContext(ctx, `
		UPDATE answers
		SET is_solution = (id = $2)
		WHERE question_id = $1
	`, questionID, answerID)
	if err != nil {
		return answer.Answer{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return answer.Answer{}, sql.ErrNoRows
	}
	return s.GetAnswer(ctx, answerID)
}

// --- DirectoryStore ----------------------------------------------------------

func (s *Store) CreateFloor(ctx context.Context, f directory.Floor) (directory.Floor, error) {
	f.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO floors (number, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, f.Number, f.Description, f.CreatedAt).Scan(&f.ID)
	if err != nil {
		return directory.Floor{}, err
	}
	return f, nil
}

func (s *Store) UpdateFloor(ctx context.Context, f directory.Floor) (directory.Floor, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE floors SET number = $2, description = $3 WHERE id = $1
	`, f.ID, f.Number, f.Description)
	if err != nil {
		return directory.Floor{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.Floor{}, sql.ErrNoRows
	}
	return s.GetFloor(ctx, f.ID)
}

func (s *Store) GetFloor(ctx context.Context, id int64) (directory.Floor, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, number, description, created_at FROM floors WHERE id = $1
	`, id)

	var f directory.Floor
	if err := row.Scan(&f.ID, &f.Number, &f.Description, &f.CreatedAt); err != nil {
		return directory.Floor{}, err
	}
	return f, nil
}

func (s *Store) ListFloors(ctx context.Context) ([]directory.Floor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, description, created_at FROM floors ORDER BY number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.Floor
	for rows.Next() {
		var f directory.Floor
		if err := rows.Scan(&f.ID, &f.Number, &f.Description, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (s *Store) DeleteFloor(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "floors", id)
}

func (s *Store) CreateRoom(ctx context.Context, r directory.Room) (directory.Room, error) {
	r.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO rooms (floor_id, number, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, r.FloorID, r.Number, r.Name, r.Description, r.CreatedAt).Scan(&r.ID)
	if err != nil {
		return directory.Room{}, err
	}
	return r, nil
}

func (s *Store) UpdateRoom(ctx context.Context, r directory.Room) (directory.Room, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE rooms SET floor_id = $2, number = $3, name = $4, description = $5 WHERE id = $1
	`, r.ID, r.FloorID, r.Number, r.Name, r.Description)
	if err != nil {
		return directory.Room{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.Room{}, sql.ErrNoRows
	}
	return s.GetRoom(ctx, r.ID)
}

func (s *Store) GetRoom(ctx context.Context, id int64) (directory.Room, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, floor_id, number, name, description, created_at FROM rooms WHERE id = $1
	`, id)

	var r directory.Room
	if err := row.Scan(&r.ID, &r.FloorID, &r.Number, &r.Name, &r.Description, &r.CreatedAt); err != nil {
		return directory.Room{}, err
	}
	return r, nil
}

func (s *Store) ListRooms(ctx context.Context, floorID int64) ([]directory.Room, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, floor_id, number, name, description, created_at
		FROM rooms
		WHERE $1 = 0 OR floor_id = $1
		ORDER BY number
	`, floorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.Room
	for rows.Next() {
		var r directory.Room
		if err := rows.Scan(&r.ID, &r.FloorID, &r.Number, &r.Name, &r.Description, &r.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *Store) DeleteRoom(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "rooms", id)
}

func (s *Store) CreateLocation(ctx context.Context, l directory.Location) (directory.Location, error) {
	l.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO locations (floor_id, room_id, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, l.FloorID, l.RoomID, l.Name, l.Description, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		return directory.Location{}, err
	}
	return l, nil
}

func (s *Store) UpdateLocation(ctx context.Context, l directory.Location) (directory.Location, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE locations SET floor_id = $2, room_id = $3, name = $4, description = $5 WHERE id = $1
	`, l.ID, l.FloorID, l.RoomID, l.Name, l.Description)
	if err != nil {
		return directory.Location{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.Location{}, sql.ErrNoRows
	}
	return s.GetLocation(ctx, l.ID)
}

func (s *Store) GetLocation(ctx context.Context, id int64) (directory.Location, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, floor_id, room_id, name, description, created_at FROM locations WHERE id = $1
	`, id)

	var (
		l      directory.Location
		roomID sql.NullInt64
	)
	if err := row.Scan(&l.ID, &l.FloorID, &roomID, &l.Name, &l.Description, &l.CreatedAt); err != nil {
		return directory.Location{}, err
	}
	if roomID.Valid {
		l.RoomID = &roomID.Int64
	}
	return l, nil
}

func (s *Store) ListLocations(ctx context.Context) ([]directory.Location, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, floor_id, room_id, name, description, created_at FROM locations ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.Location
	for rows.Next() {
		var (
			l      directory.Location
			roomID sql.NullInt64
		)
		if err := rows.Scan(&l.ID, &l.FloorID, &roomID, &l.Name, &l.Description, &l.CreatedAt); err != nil {
			return nil, err
		}
		if roomID.Valid {
			l.RoomID = &roomID.Int64
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (s *Store) DeleteLocation(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "locations", id)
}

func (s *Store) CreateTeacher(ctx context.Context, t directory.Teacher) (directory.Teacher, error) {
	t.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO teachers (full_name, email, department, room_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, t.FullName, t.Email, t.Department, t.RoomID, t.CreatedAt).Scan(&t.ID)
	if err != nil {
		return directory.Teacher{}, err
	}
	return t, nil
}

func (s *Store) UpdateTeacher(ctx context.Context, t directory.Teacher) (directory.Teacher, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE teachers SET full_name = $2, email = $3, department = $4, room_id = $5 WHERE id = $1
	`, t.ID, t.FullName, t.Email, t.Department, t.RoomID)
	if err != nil {
		return directory.Teacher{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.Teacher{}, sql.ErrNoRows
	}
	return s.GetTeacher(ctx, t.ID)
}

func (s *Store) GetTeacher(ctx context.Context, id int64) (directory.Teacher, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, department, room_id, created_at FROM teachers WHERE id = $1
	`, id)

	var (
		t      directory.Teacher
		roomID sql.NullInt64
	)
	if err := row.Scan(&t.ID, &t.FullName, &t.Email, &t.Department, &roomID, &t.CreatedAt); err != nil {
		return directory.Teacher{}, err
	}
	if roomID.Valid {
		t.RoomID = &roomID.Int64
	}
	return t, nil
}

func (s *Store) ListTeachers(ctx context.Context) ([]directory.Teacher, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, full_name, email, department, room_id, created_at FROM teachers ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.Teacher
	for rows.Next() {
		var (
			t      directory.Teacher
			roomID sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.FullName, &t.Email, &t.Department, &roomID, &t.CreatedAt); err != nil {
			return nil, err
		}
		if roomID.Valid {
			t.RoomID = &roomID.Int64
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (s *Store) DeleteTeacher(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "teachers", id)
}

func (s *Store) CreateStaff(ctx context.Context, st directory.Staff) (directory.Staff, error) {
	st.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO administration_staff (full_name, email, position, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, st.FullName, st.Email, st.Position, st.CreatedAt).Scan(&st.ID)
	if err != nil {
		return directory.Staff{}, err
	}
	return st, nil
}

func (s *Store) UpdateStaff(ctx context.Context, st directory.Staff) (directory.Staff, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE administration_staff SET full_name = $2, email = $3, position = $4 WHERE id = $1
	`, st.ID, st.FullName, st.Email, st.Position)
	if err != nil {
		return directory.Staff{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.Staff{}, sql.ErrNoRows
	}
	return s.GetStaff(ctx, st.ID)
}

func (s *Store) GetStaff(ctx context.Context, id int64) (directory.Staff, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, position, created_at FROM administration_staff WHERE id = $1
	`, id)

	var st directory.Staff
	if err := row.Scan(&st.ID, &st.FullName, &st.Email, &st.Position, &st.CreatedAt); err != nil {
		return directory.Staff{}, err
	}
	return st, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]directory.Staff, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, full_name, email, position, created_at FROM administration_staff ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.Staff
	for rows.Next() {
		var st directory.Staff
		if err := rows.Scan(&st.ID, &st.FullName, &st.Email, &st.Position, &st.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (s *Store) DeleteStaff(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "administration_staff", id)
}

func (s *Store) CreateContact(ctx context.Context, c directory.Contact) (directory.Contact, error) {
	c.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contacts (label, value, kind, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Label, c.Value, c.Kind, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return directory.Contact{}, err
	}
	return c, nil
}

func (s *Store) UpdateContact(ctx context.Context, c directory.Contact) (directory.Contact, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE contacts SET label = $2, value = $3, kind = $4 WHERE id = $1
	`, c.ID, c.Label, c.Value, c.Kind)
	if err != nil {
		return directory.Contact{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.Contact{}, sql.ErrNoRows
	}
	return s.GetContact(ctx, c.ID)
}

func (s *Store) GetContact(ctx context.Context, id int64) (directory.Contact, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, label, value, kind, created_at FROM contacts WHERE id = $1
	`, id)

	var c directory.Contact
	if err := row.Scan(&c.ID, &c.Label, &c.Value, &c.Kind, &c.CreatedAt); err != nil {
		return directory.Contact{}, err
	}
	return c, nil
}

func (s *Store) ListContacts(ctx context.Context) ([]directory.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, value, kind, created_at FROM contacts ORDER BY label
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.Contact
	for rows.Next() {
		var c directory.Contact
		if err := rows.Scan(&c.ID, &c.Label, &c.Value, &c.Kind, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (s *Store) DeleteContact(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "contacts", id)
}

func (s *Store) CreateClub(ctx context.Context, c directory.Club) (directory.Club, error) {
	c.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO clubs (name, description, contact, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Name, c.Description, c.Contact, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return directory.Club{}, err
	}
	return c, nil
}

func (s *Store) UpdateClub(ctx context.Context, c directory.Club) (directory.Club, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE clubs SET name = $2, description = $3, contact = $4 WHERE id = $1
	`, c.ID, c.Name, c.Description, c.Contact)
	if err != nil {
		return directory.Club{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.Club{}, sql.ErrNoRows
	}
	return s.GetClub(ctx, c.ID)
}

func (s *Store) GetClub(ctx context.Context, id int64) (directory.Club, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, contact, created_at FROM clubs WHERE id = $1
	`, id)

	var c directory.Club
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Contact, &c.CreatedAt); err != nil {
		return directory.Club{}, err
	}
	return c, nil
}

func (s *Store) ListClubs(ctx context.Context) ([]directory.Club, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, contact, created_at FROM clubs ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.Club
	for rows.Next() {
		var c directory.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Contact, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (s *Store) DeleteClub(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "clubs", id)
}

func (s *Store) CreateFAQ(ctx context.Context, f directory.FAQ) (directory.FAQ, error) {
	f.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO faq_entries (question, answer, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, f.Question, f.Answer, f.CreatedAt).Scan(&f.ID)
	if err != nil {
		return directory.FAQ{}, err
	}
	return f, nil
}

func (s *Store) UpdateFAQ(ctx context.Context, f directory.FAQ) (directory.FAQ, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE faq_entries SET question = $2, answer = $3 WHERE id = $1
	`, f.ID, f.Question, f.Answer)
	if err != nil {
		return directory.FAQ{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return directory.FAQ{}, sql.ErrNoRows
	}
	return s.GetFAQ(ctx, f.ID)
}

func (s *Store) GetFAQ(ctx context.Context, id int64) (directory.FAQ, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, question, answer, created_at FROM faq_entries WHERE id = $1
	`, id)

	var f directory.FAQ
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.CreatedAt); err != nil {
		return directory.FAQ{}, err
	}
	return f, nil
}

func (s *Store) ListFAQ(ctx context.Context) ([]directory.FAQ, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, answer, created_at FROM faq_entries ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []directory.FAQ
	for rows.Next() {
		var f directory.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (s *Store) DeleteFAQ(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "faq_entries", id)
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
