package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/rmartel/grind/internal/logger"
	"github.com/rmartel/grind/internal/models"
)

type catalogStore interface {
	GetExercises() ([]models.Exercise, error)
	GetExerciseByName(name string) (models.Exercise, error)
}

// ErrorResponse is the body returned for failed lookups.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Handler serves read-only catalog endpoints.
type Handler struct {
	store catalogStore
}

func NewHandler(store catalogStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", h.HandleListExercises).Methods(http.MethodGet)
	r.HandleFunc("/exercises/{name}", h.HandleGetExercise).Methods(http.MethodGet)
}

func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.store.GetExercises()
	if err != nil {
		logger.Error("failed to list exercises", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "failed to load exercises"})
		return
	}

	if len(exercises) == 0 {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "No exercises found"})
		return
	}

	writeJSON(w, http.StatusOK, exercises)
}

func (h *Handler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "exercise name is required"})
		return
	}

	exercise, err := h.store.GetExerciseByName(name)
	if err == nil {
		writeJSON(w, http.StatusOK, exercise)
		return
	}

	all, listErr := h.store.GetExercises()
	if listErr != nil || len(all) == 0 {
		if listErr != nil {
			logger.Error("failed to load exercises for miss message", "error", listErr)
		}
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "No exercises found"})
		return
	}

	names := make([]string, 0, len(all))
	for _, e := range all {
		names = append(names, e.Name)
	}
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Detail: fmt.Sprintf("No exercise with name '%s'. Available exercises: %s", name, strings.Join(names, ", ")),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}
