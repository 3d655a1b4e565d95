package tournaments

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// RESTHandler serves the tournament API as plain JSON over HTTP
type RESTHandler struct {
	app TournamentsApp
}

// NewRESTHandler creates a new REST handler
func NewRESTHandler(app TournamentsApp) *RESTHandler {
	return &RESTHandler{
		app: app,
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

type addTeamRequest struct {
	TeamID *int64 `json:"teamId"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Routes mounts the tournament endpoints on r
func (h *RESTHandler) Routes(r chi.Router) {
	r.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.ListTournaments)
		r.Post("/", h.CreateTournament)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTournament)
			r.Put("/", h.UpdateTournament)
			r.Delete("/", h.DeleteTournament)
			r.Post("/teams", h.AddTeam)
		})
	})
}

func (h *RESTHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tournament, err := h.app.CreateTournament(r.Context(), req.Name)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tournament)
}

func (h *RESTHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tournament, err := h.app.GetTournament(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tournament)
}

func (h *RESTHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.app.ListTournaments(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tournaments)
}

func (h *RESTHandler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req nameRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tournament, err := h.app.UpdateTournament(r.Context(), id, req.Name)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tournament)
}

func (h *RESTHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.app.DeleteTournament(r.Context(), id); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RESTHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req addTeamRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.TeamID == nil {
		writeError(w, http.StatusBadRequest, "teamId is required")
		return
	}

	tournament, err := h.app.AddTeam(r.Context(), id, *req.TeamID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tournament)
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tournament id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var typeError *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &typeError):
			return fmt.Errorf("body contains incorrect JSON type for field %q", typeError.Field)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return fmt.Errorf("body contains unknown key %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeAppError maps domain errors onto HTTP statuses
func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateName), errors.Is(err, ErrTeamAlreadyInTournament):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidTeam), errors.Is(err, ErrNameRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("tournament request failed")
		writeError(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
	}
}
