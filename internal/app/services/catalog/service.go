// Package catalog orchestrates the campus-directory use cases: floors,
// rooms, locations, staff, contacts, clubs and FAQ entries. The operations
// are uniform: validate shape, check referenced entities exist, then call
// the store.
package catalog

import (
	"context"
	"errors"

	"github.com/campusmap/campus-api/internal/app/domain/directory"
	"github.com/campusmap/campus-api/internal/app/storage"
	"github.com/campusmap/campus-api/internal/app/validate"
	apperrors "github.com/campusmap/campus-api/internal/errors"
	"github.com/campusmap/campus-api/internal/logging"
)

// Service manages the campus directory.
type Service struct {
	store storage.DirectoryStore
	log   *logging.Logger

	// emailSuffixes restricts staff e-mail domains when non-empty.
	emailSuffixes []string
}

// New constructs a catalog service.
func New(store storage.DirectoryStore, emailSuffixes []string, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("catalog")
	}
	return &Service{store: store, emailSuffixes: emailSuffixes, log: log}
}

func storeErr(err error, entity, internalMsg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.NotFound(entity + " not found")
	}
	return apperrors.Internal(internalMsg, err)
}

// Floors -----------------------------------------------------------------

func (s *Service) CreateFloor(ctx context.Context, f directory.Floor) (directory.Floor, error) {
	created, err := s.store.CreateFloor(ctx, f)
	if err != nil {
		return directory.Floor{}, apperrors.Internal("Failed to create floor", err)
	}
	return created, nil
}

func (s *Service) UpdateFloor(ctx context.Context, f directory.Floor) (directory.Floor, error) {
	if err := validate.ID(f.ID); err != nil {
		return directory.Floor{}, err
	}
	updated, err := s.store.UpdateFloor(ctx, f)
	if err != nil {
		return directory.Floor{}, storeErr(err, "Floor", "Failed to update floor")
	}
	return updated, nil
}

func (s *Service) GetFloor(ctx context.Context, id int64) (directory.Floor, error) {
	if err := validate.ID(id); err != nil {
		return directory.Floor{}, err
	}
	f, err := s.store.GetFloor(ctx, id)
	if err != nil {
		return directory.Floor{}, storeErr(err, "Floor", "Failed to get floor")
	}
	return f, nil
}

func (s *Service) ListFloors(ctx context.Context) ([]directory.Floor, error) {
	list, err := s.store.ListFloors(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list floors", err)
	}
	return list, nil
}

func (s *Service) DeleteFloor(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteFloor(ctx, id); err != nil {
		return storeErr(err, "Floor", "Failed to delete floor")
	}
	return nil
}

// Rooms ------------------------------------------------------------------

func (s *Service) CreateRoom(ctx context.Context, r directory.Room) (directory.Room, error) {
	if err := validate.Required("number", r.Number); err != nil {
		return directory.Room{}, err
	}
	if _, err := s.store.GetFloor(ctx, r.FloorID); err != nil {
		return directory.Room{}, storeErr(err, "Floor", "Failed to create room")
	}
	created, err := s.store.CreateRoom(ctx, r)
	if err != nil {
		return directory.Room{}, apperrors.Internal("Failed to create room", err)
	}
	return created, nil
}

func (s *Service) UpdateRoom(ctx context.Context, r directory.Room) (directory.Room, error) {
	if err := validate.ID(r.ID); err != nil {
		return directory.Room{}, err
	}
	if err := validate.Required("number", r.Number); err != nil {
		return directory.Room{}, err
	}
	if _, err := s.store.GetFloor(ctx, r.FloorID); err != nil {
		return directory.Room{}, storeErr(err, "Floor", "Failed to update room")
	}
	updated, err := s.store.UpdateRoom(ctx, r)
	if err != nil {
		return directory.Room{}, storeErr(err, "Room", "Failed to update room")
	}
	return updated, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (directory.Room, error) {
	if err := validate.ID(id); err != nil {
		return directory.Room{}, err
	}
	r, err := s.store.GetRoom(ctx, id)
	if err != nil {
		return directory.Room{}, storeErr(err, "Room", "Failed to get room")
	}
	return r, nil
}

func (s *Service) ListRooms(ctx context.Context, floorID int64) ([]directory.Room, error) {
	list, err := s.store.ListRooms(ctx, floorID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list rooms", err)
	}
	return list, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteRoom(ctx, id); err != nil {
		return storeErr(err, "Room", "Failed to delete room")
	}
	return nil
}

// Locations --------------------------------------------------------------

func (s *Service) CreateLocation(ctx context.Context, l directory.Location) (directory.Location, error) {
	if err := validate.Required("name", l.Name); err != nil {
		return directory.Location{}, err
	}
	if _, err := s.store.GetFloor(ctx, l.FloorID); err != nil {
		return directory.Location{}, storeErr(err, "Floor", "Failed to create location")
	}
	if l.RoomID != nil {
		if _, err := s.store.GetRoom(ctx, *l.RoomID); err != nil {
			return directory.Location{}, storeErr(err, "Room", "Failed to create location")
		}
	}
	created, err := s.store.CreateLocation(ctx, l)
	if err != nil {
		return directory.Location{}, apperrors.Internal("Failed to create location", err)
	}
	return created, nil
}

func (s *Service) UpdateLocation(ctx context.Context, l directory.Location) (directory.Location, error) {
	if err := validate.ID(l.ID); err != nil {
		return directory.Location{}, err
	}
	if err := validate.Required("name", l.Name); err != nil {
		return directory.Location{}, err
	}
	if _, err := s.store.GetFloor(ctx, l.FloorID); err != nil {
		return directory.Location{}, storeErr(err, "Floor", "Failed to update location")
	}
	if l.RoomID != nil {
		if _, err := s.store.GetRoom(ctx, *l.RoomID); err != nil {
			return directory.Location{}, storeErr(err, "Room", "Failed to update location")
		}
	}
	updated, err := s.store.UpdateLocation(ctx, l)
	if err != nil {
		return directory.Location{}, storeErr(err, "Location", "Failed to update location")
	}
	return updated, nil
}

func (s *Service) GetLocation(ctx context.Context, id int64) (directory.Location, error) {
	if err := validate.ID(id); err != nil {
		return directory.Location{}, err
	}
	l, err := s.store.GetLocation(ctx, id)
	if err != nil {
		return directory.Location{}, storeErr(err, "Location", "Failed to get location")
	}
	return l, nil
}

func (s *Service) ListLocations(ctx context.Context) ([]directory.Location, error) {
	list, err := s.store.ListLocations(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list locations", err)
	}
	return list, nil
}

func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteLocation(ctx, id); err != nil {
		return storeErr(err, "Location", "Failed to delete location")
	}
	return nil
}

// Teachers ---------------------------------------------------------------

func (s *Service) validateTeacher(ctx context.Context, t directory.Teacher) error {
	if err := validate.Required("full_name", t.FullName); err != nil {
		return err
	}
	if err := validate.Email(t.Email, s.emailSuffixes); err != nil {
		return err
	}
	if t.RoomID != nil {
		if _, err := s.store.GetRoom(ctx, *t.RoomID); err != nil {
			return storeErr(err, "Room", "Failed to validate teacher")
		}
	}
	return nil
}

func (s *Service) CreateTeacher(ctx context.Context, t directory.Teacher) (directory.Teacher, error) {
	if err := s.validateTeacher(ctx, t); err != nil {
		return directory.Teacher{}, err
	}
	created, err := s.store.CreateTeacher(ctx, t)
	if err != nil {
		return directory.Teacher{}, apperrors.Internal("Failed to create teacher", err)
	}
	return created, nil
}

func (s *Service) UpdateTeacher(ctx context.Context, t directory.Teacher) (directory.Teacher, error) {
	if err := validate.ID(t.ID); err != nil {
		return directory.Teacher{}, err
	}
	if err := s.validateTeacher(ctx, t); err != nil {
		return directory.Teacher{}, err
	}
	updated, err := s.store.UpdateTeacher(ctx, t)
	if err != nil {
		return directory.Teacher{}, storeErr(err, "Teacher", "Failed to update teacher")
	}
	return updated, nil
}

func (s *Service) GetTeacher(ctx context.Context, id int64) (directory.Teacher, error) {
	if err := validate.ID(id); err != nil {
		return directory.Teacher{}, err
	}
	t, err := s.store.GetTeacher(ctx, id)
	if err != nil {
		return directory.Teacher{}, storeErr(err, "Teacher", "Failed to get teacher")
	}
	return t, nil
}

func (s *Service) ListTeachers(ctx context.Context) ([]directory.Teacher, error) {
	list, err := s.store.ListTeachers(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list teachers", err)
	}
	return list, nil
}

func (s *Service) DeleteTeacher(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteTeacher(ctx, id); err != nil {
		return storeErr(err, "Teacher", "Failed to delete teacher")
	}
	return nil
}

// Administration staff ---------------------------------------------------

func (s *Service) CreateStaff(ctx context.Context, st directory.Staff) (directory.Staff, error) {
	if err := validate.Required("full_name", st.FullName); err != nil {
		return directory.Staff{}, err
	}
	if err := validate.Email(st.Email, s.emailSuffixes); err != nil {
		return directory.Staff{}, err
	}
	created, err := s.store.CreateStaff(ctx, st)
	if err != nil {
		return directory.Staff{}, apperrors.Internal("Failed to create staff member", err)
	}
	return created, nil
}

func (s *Service) UpdateStaff(ctx context.Context, st directory.Staff) (directory.Staff, error) {
	if err := validate.ID(st.ID); err != nil {
		return directory.Staff{}, err
	}
	if err := validate.Required("full_name", st.FullName); err != nil {
		return directory.Staff{}, err
	}
	if err := validate.Email(st.Email, s.emailSuffixes); err != nil {
		return directory.Staff{}, err
	}
	updated, err := s.store.UpdateStaff(ctx, st)
	if err != nil {
		return directory.Staff{}, storeErr(err, "Staff member", "Failed to update staff member")
	}
	return updated, nil
}

func (s *Service) GetStaff(ctx context.Context, id int64) (directory.Staff, error) {
	if err := validate.ID(id); err != nil {
		return directory.Staff{}, err
	}
	st, err := s.store.GetStaff(ctx, id)
	if err != nil {
		return directory.Staff{}, storeErr(err, "Staff member", "Failed to get staff member")
	}
	return st, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]directory.Staff, error) {
	list, err := s.store.ListStaff(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list staff", err)
	}
	return list, nil
}

func (s *Service) DeleteStaff(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteStaff(ctx, id); err != nil {
		return storeErr(err, "Staff member", "Failed to delete staff member")
	}
	return nil
}

// Contacts ---------------------------------------------------------------

func (s *Service) CreateContact(ctx context.Context, c directory.Contact) (directory.Contact, error) {
	if err := validate.Required("label", c.Label); err != nil {
		return directory.Contact{}, err
	}
	if err := validate.Required("value", c.Value); err != nil {
		return directory.Contact{}, err
	}
	created, err := s.store.CreateContact(ctx, c)
	if err != nil {
		return directory.Contact{}, apperrors.Internal("Failed to create contact", err)
	}
	return created, nil
}

func (s *Service) UpdateContact(ctx context.Context, c directory.Contact) (directory.Contact, error) {
	if err := validate.ID(c.ID); err != nil {
		return directory.Contact{}, err
	}
	if err := validate.Required("label", c.Label); err != nil {
		return directory.Contact{}, err
	}
	if err := validate.Required("value", c.Value); err != nil {
		return directory.Contact{}, err
	}
	updated, err := s.store.UpdateContact(ctx, c)
	if err != nil {
		return directory.Contact{}, storeErr(err, "Contact", "Failed to update contact")
	}
	return updated, nil
}

func (s *Service) GetContact(ctx context.Context, id int64) (directory.Contact, error) {
	if err := validate.ID(id); err != nil {
		return directory.Contact{}, err
	}
	c, err := s.store.GetContact(ctx, id)
	if err != nil {
		return directory.Contact{}, storeErr(err, "Contact", "Failed to get contact")
	}
	return c, nil
}

func (s *Service) ListContacts(ctx context.Context) ([]directory.Contact, error) {
	list, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list contacts", err)
	}
	return list, nil
}

func (s *Service) DeleteContact(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteContact(ctx, id); err != nil {
		return storeErr(err, "Contact", "Failed to delete contact")
	}
	return nil
}

// Clubs ------------------------------------------------------------------

func (s *Service) CreateClub(ctx context.Context, c directory.Club) (directory.Club, error) {
	if err := validate.Required("name", c.Name); err != nil {
		return directory.Club{}, err
	}
	created, err := s.store.CreateClub(ctx, c)
	if err != nil {
		return directory.Club{}, apperrors.Internal("Failed to create club", err)
	}
	return created, nil
}

func (s *Service) UpdateClub(ctx context.Context, c directory.Club) (directory.Club, error) {
	if err := validate.ID(c.ID); err != nil {
		return directory.Club{}, err
	}
	if err := validate.Required("name", c.Name); err != nil {
		return directory.Club{}, err
	}
	updated, err := s.store.UpdateClub(ctx, c)
	if err != nil {
		return directory.Club{}, storeErr(err, "Club", "Failed to update club")
	}
	return updated, nil
}

func (s *Service) GetClub(ctx context.Context, id int64) (directory.Club, error) {
	if err := validate.ID(id); err != nil {
		return directory.Club{}, err
	}
	c, err := s.store.GetClub(ctx, id)
	if err != nil {
		return directory.Club{}, storeErr(err, "Club", "Failed to get club")
	}
	return c, nil
}

func (s *Service) ListClubs(ctx context.Context) ([]directory.Club, error) {
	list, err := s.store.ListClubs(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list clubs", err)
	}
	return list, nil
}

func (s *Service) DeleteClub(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteClub(ctx, id); err != nil {
		return storeErr(err, "Club", "Failed to delete club")
	}
	return nil
}

// FAQ --------------------------------------------------------------------

func (s *Service) CreateFAQ(ctx context.Context, f directory.FAQ) (directory.FAQ, error) {
	if err := validate.Required("question", f.Question); err != nil {
		return directory.FAQ{}, err
	}
	if err := validate.Required("answer", f.Answer); err != nil {
		return directory.FAQ{}, err
	}
	created, err := s.store.CreateFAQ(ctx, f)
	if err != nil {
		return directory.FAQ{}, apperrors.Internal("Failed to create FAQ entry", err)
	}
	return created, nil
}

func (s *Service) UpdateFAQ(ctx context.Context, f directory.FAQ) (directory.FAQ, error) {
	if err := validate.ID(f.ID); err != nil {
		return directory.FAQ{}, err
	}
	if err := validate.Required("question", f.Question); err != nil {
		return directory.FAQ{}, err
	}
	if err := validate.Required("answer", f.Answer); err != nil {
		return directory.FAQ{}, err
	}
	updated, err := s.store.UpdateFAQ(ctx, f)
	if err != nil {
		return directory.FAQ{}, storeErr(err, "FAQ entry", "Failed to update FAQ entry")
	}
	return updated, nil
}

func (s *Service) GetFAQ(ctx context.Context, id int64) (directory.FAQ, error) {
	if err := validate.ID(id); err != nil {
		return directory.FAQ{}, err
	}
	f, err := s.store.GetFAQ(ctx, id)
	if err != nil {
		return directory.FAQ{}, storeErr(err, "FAQ entry", "Failed to get FAQ entry")
	}
	return f, nil
}

func (s *Service) ListFAQ(ctx context.Context) ([]directory.FAQ, error) {
	list, err := s.store.ListFAQ(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list FAQ entries", err)
	}
	return list, nil
}

func (s *Service) DeleteFAQ(ctx context.Context, id int64) error {
	if err := validate.ID(id); err != nil {
		return err
	}
	if err := s.store.DeleteFAQ(ctx, id); err != nil {
		return storeErr(err, "FAQ entry", "Failed to delete FAQ entry")
	}
	return nil
}
