package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusmap/campus-api/internal/app/domain/directory"
	apperrors "github.com/campusmap/campus-api/internal/errors"
	"github.com/campusmap/campus-api/internal/httputil"
)

// registerCatalogRoutes mounts the campus-directory CRUD endpoints. Reads are
// open to any authenticated user; writes require the admin role.
func (h *handler) registerCatalogRoutes(api *mux.Router, requireAdmin mux.MiddlewareFunc) {
	admin := func(fn http.HandlerFunc) http.Handler { return requireAdmin(fn) }

	api.HandleFunc("/floors", h.listFloors).Methods(http.MethodGet)
	api.HandleFunc("/floors/{id}", h.getFloor).Methods(http.MethodGet)
	api.Handle("/floors", admin(h.createFloor)).Methods(http.MethodPost)
	api.Handle("/floors/{id}", admin(h.updateFloor)).Methods(http.MethodPut)
	api.Handle("/floors/{id}", admin(h.deleteFloor)).Methods(http.MethodDelete)

	api.HandleFunc("/rooms", h.listRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", h.getRoom).Methods(http.MethodGet)
	api.Handle("/rooms", admin(h.createRoom)).Methods(http.MethodPost)
	api.Handle("/rooms/{id}", admin(h.updateRoom)).Methods(http.MethodPut)
	api.Handle("/rooms/{id}", admin(h.deleteRoom)).Methods(http.MethodDelete)

	api.HandleFunc("/locations", h.listLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", h.getLocation).Methods(http.MethodGet)
	api.Handle("/locations", admin(h.createLocation)).Methods(http.MethodPost)
	api.Handle("/locations/{id}", admin(h.updateLocation)).Methods(http.MethodPut)
	api.Handle("/locations/{id}", admin(h.deleteLocation)).Methods(http.MethodDelete)

	api.HandleFunc("/teachers", h.listTeachers).Methods(http.MethodGet)
	api.HandleFunc("/teachers/{id}", h.getTeacher).Methods(http.MethodGet)
	api.Handle("/teachers", admin(h.createTeacher)).Methods(http.MethodPost)
	api.Handle("/teachers/{id}", admin(h.updateTeacher)).Methods(http.MethodPut)
	api.Handle("/teachers/{id}", admin(h.deleteTeacher)).Methods(http.MethodDelete)

	api.HandleFunc("/administration", h.listStaff).Methods(http.MethodGet)
	api.HandleFunc("/administration/{id}", h.getStaff).Methods(http.MethodGet)
	api.Handle("/administration", admin(h.createStaff)).Methods(http.MethodPost)
	api.Handle("/administration/{id}", admin(h.updateStaff)).Methods(http.MethodPut)
	api.Handle("/administration/{id}", admin(h.deleteStaff)).Methods(http.MethodDelete)

	api.HandleFunc("/contacts", h.listContacts).Methods(http.MethodGet)
	api.HandleFunc("/contacts/{id}", h.getContact).Methods(http.MethodGet)
	api.Handle("/contacts", admin(h.createContact)).Methods(http.MethodPost)
	api.Handle("/contacts/{id}", admin(h.updateContact)).Methods(http.MethodPut)
	api.Handle("/contacts/{id}", admin(h.deleteContact)).Methods(http.MethodDelete)

	api.HandleFunc("/clubs", h.listClubs).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}", h.getClub).Methods(http.MethodGet)
	api.Handle("/clubs", admin(h.createClub)).Methods(http.MethodPost)
	api.Handle("/clubs/{id}", admin(h.updateClub)).Methods(http.MethodPut)
	api.Handle("/clubs/{id}", admin(h.deleteClub)).Methods(http.MethodDelete)

	api.HandleFunc("/faq", h.listFAQ).Methods(http.MethodGet)
	api.HandleFunc("/faq/{id}", h.getFAQ).Methods(http.MethodGet)
	api.Handle("/faq", admin(h.createFAQ)).Methods(http.MethodPost)
	api.Handle("/faq/{id}", admin(h.updateFAQ)).Methods(http.MethodPut)
	api.Handle("/faq/{id}", admin(h.deleteFAQ)).Methods(http.MethodDelete)
}

// Floors

func (h *handler) createFloor(w http.ResponseWriter, r *http.Request) {
	var payload directory.Floor
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateFloor(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateFloor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.Floor
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateFloor(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getFloor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	f, err := h.app.Catalog.GetFloor(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, f)
}

func (h *handler) listFloors(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Catalog.ListFloors(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteFloor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteFloor(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Floor deleted")
}

// Rooms

func (h *handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var payload directory.Room
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateRoom(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.Room
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateRoom(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	room, err := h.app.Catalog.GetRoom(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, room)
}

func (h *handler) listRooms(w http.ResponseWriter, r *http.Request) {
	// Optional ?floor_id= narrows the listing to one floor.
	var floorID int64
	if raw := r.URL.Query().Get("floor_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			httputil.WriteError(w, r, apperrors.Validation("Invalid floor_id"))
			return
		}
		floorID = parsed
	}
	list, err := h.app.Catalog.ListRooms(r.Context(), floorID)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteRoom(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Room deleted")
}

// Locations

func (h *handler) createLocation(w http.ResponseWriter, r *http.Request) {
	var payload directory.Location
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateLocation(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.Location
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateLocation(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	l, err := h.app.Catalog.GetLocation(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, l)
}

func (h *handler) listLocations(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Catalog.ListLocations(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteLocation(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Location deleted")
}

// Teachers

func (h *handler) createTeacher(w http.ResponseWriter, r *http.Request) {
	var payload directory.Teacher
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateTeacher(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.Teacher
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateTeacher(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	t, err := h.app.Catalog.GetTeacher(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *handler) listTeachers(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Catalog.ListTeachers(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteTeacher(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Teacher deleted")
}

// Administration staff

func (h *handler) createStaff(w http.ResponseWriter, r *http.Request) {
	var payload directory.Staff
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateStaff(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.Staff
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateStaff(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	st, err := h.app.Catalog.GetStaff(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *handler) listStaff(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Catalog.ListStaff(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteStaff(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Staff member deleted")
}

// Contacts

func (h *handler) createContact(w http.ResponseWriter, r *http.Request) {
	var payload directory.Contact
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateContact(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.Contact
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateContact(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	c, err := h.app.Catalog.GetContact(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *handler) listContacts(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Catalog.ListContacts(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteContact(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Contact deleted")
}

// Clubs

func (h *handler) createClub(w http.ResponseWriter, r *http.Request) {
	var payload directory.Club
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateClub(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateClub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.Club
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateClub(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getClub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	c, err := h.app.Catalog.GetClub(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *handler) listClubs(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Catalog.ListClubs(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteClub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteClub(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Club deleted")
}

// FAQ

func (h *handler) createFAQ(w http.ResponseWriter, r *http.Request) {
	var payload directory.FAQ
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	created, err := h.app.Catalog.CreateFAQ(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *handler) updateFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload directory.FAQ
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	payload.ID = id
	updated, err := h.app.Catalog.UpdateFAQ(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *handler) getFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	f, err := h.app.Catalog.GetFAQ(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, f)
}

func (h *handler) listFAQ(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Catalog.ListFAQ(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) deleteFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Catalog.DeleteFAQ(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "FAQ entry deleted")
}
