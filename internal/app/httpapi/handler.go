// Package httpapi exposes the application services over REST.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	app "github.com/campusmap/campus-api/internal/app"
	"github.com/campusmap/campus-api/internal/app/domain/question"
	apperrors "github.com/campusmap/campus-api/internal/errors"
	"github.com/campusmap/campus-api/internal/httputil"
	"github.com/campusmap/campus-api/internal/logging"
)

// handler bundles the HTTP endpoints for the application services.
type handler struct {
	app *app.Application
}

// NewRouter returns a mux exposing the REST API under /api. The admin
// middleware guards directory writes; authentication itself is applied by the
// caller so public paths stay configurable in one place.
func NewRouter(application *app.Application, requireAdmin mux.MiddlewareFunc) *mux.Router {
	h := &handler{app: application}
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)

	api.HandleFunc("/questions", h.listQuestions).Methods(http.MethodGet)
	api.HandleFunc("/questions", h.createQuestion).Methods(http.MethodPost)
	api.HandleFunc("/questions/update/{id}", h.updateQuestion).Methods(http.MethodPut)
	api.HandleFunc("/questions/delete/{id}", h.deleteQuestion).Methods(http.MethodDelete)
	api.HandleFunc("/questions/{id}/status", h.toggleQuestionStatus).Methods(http.MethodPatch)
	api.HandleFunc("/questions/{id}", h.getQuestion).Methods(http.MethodGet)

	api.HandleFunc("/answers", h.createAnswer).Methods(http.MethodPost)
	api.HandleFunc("/answers/question/{questionId}", h.listAnswers).Methods(http.MethodGet)
	api.HandleFunc("/answers/{id}/solution", h.markSolution).Methods(http.MethodPatch)
	api.HandleFunc("/answers/{id}", h.updateAnswer).Methods(http.MethodPut)
	api.HandleFunc("/answers/{id}", h.deleteAnswer).Methods(http.MethodDelete)

	api.HandleFunc("/users/me", h.currentUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/role", h.setRole).Methods(http.MethodPatch)

	h.registerCatalogRoutes(api, requireAdmin)

	return r
}

// --- Auth ----------------------------------------------------------------

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	u, err := h.app.Users.Register(r.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	u, token, err := h.app.Users.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  u,
	})
}

// --- Questions -----------------------------------------------------------

func (h *handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := h.app.Questions.List(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, qs)
}

func (h *handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	q, err := h.app.Questions.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, q)
}

func (h *handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	q, err := h.app.Questions.Create(r.Context(), logging.GetUserID(r.Context()), payload.Title, payload.Text)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, q)
}

func (h *handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload struct {
		Title *string `json:"title"`
		Text  *string `json:"text"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	patch := question.Patch{Title: payload.Title, Text: payload.Text}
	q, err := h.app.Questions.Update(r.Context(), id, patch, logging.GetUserID(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, q)
}

func (h *handler) toggleQuestionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload struct {
		IsClosed *bool `json:"is_closed"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	// The flag is required and must be an explicit boolean.
	if payload.IsClosed == nil {
		httputil.WriteError(w, r, apperrors.Validation("is_closed is required and must be a boolean"))
		return
	}

	q, err := h.app.Questions.ToggleStatus(r.Context(), id, *payload.IsClosed, logging.GetUserID(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, q)
}

func (h *handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Questions.Delete(r.Context(), id, logging.GetUserID(r.Context())); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Question deleted")
}

// --- Answers -------------------------------------------------------------

func (h *handler) createAnswer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		QuestionID int64  `json:"question_id"`
		Text       string `json:"text"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	a, err := h.app.Answers.Create(r.Context(), logging.GetUserID(r.Context()), payload.QuestionID, payload.Text)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

func (h *handler) listAnswers(w http.ResponseWriter, r *http.Request) {
	questionID, err := pathID(r, "questionId")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	list, err := h.app.Answers.ListByQuestion(r.Context(), questionID)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *handler) updateAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	a, err := h.app.Answers.Update(r.Context(), id, payload.Text, logging.GetUserID(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *handler) markSolution(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	a, err := h.app.Answers.MarkSolution(r.Context(), id, logging.GetUserID(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *handler) deleteAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if err := h.app.Answers.Delete(r.Context(), id, logging.GetUserID(r.Context())); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Answer deleted")
}

// --- Users ---------------------------------------------------------------

func (h *handler) currentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.app.Users.Get(r.Context(), logging.GetUserID(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *handler) setRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	var payload struct {
		IsAdmin *bool `json:"is_admin"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if payload.IsAdmin == nil {
		httputil.WriteError(w, r, apperrors.Validation("is_admin is required and must be a boolean"))
		return
	}

	role, err := h.app.Users.SetAdmin(r.Context(), logging.GetUserID(r.Context()), id, *payload.IsAdmin)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, role)
}

// --- Helpers -------------------------------------------------------------

func decodeJSON(body io.Reader, v interface{}) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return apperrors.Validation("Invalid JSON body")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("Invalid id")
	}
	return id, nil
}
