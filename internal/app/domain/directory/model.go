// Package directory defines the campus-navigation entities: floors, rooms,
// locations, teaching and administration staff, contacts, clubs and FAQ
// entries. They are uniform CRUD records with existence checks on their
// foreign keys.
package directory

import "time"

// Floor is one level of a campus building.
type Floor struct {
	ID          int64     `json:"floor_id"`
	Number      int       `json:"number"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Room is a numbered room on a floor.
type Room struct {
	ID          int64     `json:"room_id"`
	FloorID     int64     `json:"floor_id"`
	Number      string    `json:"number"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Location is a named point of interest, optionally anchored to a room.
type Location struct {
	ID          int64     `json:"location_id"`
	FloorID     int64     `json:"floor_id"`
	RoomID      *int64    `json:"room_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Teacher is a member of the teaching staff.
type Teacher struct {
	ID         int64     `json:"teacher_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	RoomID     *int64    `json:"room_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Staff is a member of the administration.
type Staff struct {
	ID        int64     `json:"staff_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact is a general-purpose contact channel (phone, e-mail, URL).
type Contact struct {
	ID        int64     `json:"contact_id"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Club is a student club listing.
type Club struct {
	ID          int64     `json:"club_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	CreatedAt   time.Time `json:"created_at"`
}

// FAQ is a frequently-asked-question entry.
type FAQ struct {
	ID        int64     `json:"faq_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
