package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmartel/grind/internal/models"
	"github.com/rmartel/grind/internal/storage"
)

type fakeCatalog struct {
	exercises []models.Exercise
	listErr   error
}

func (f *fakeCatalog) GetExercises() ([]models.Exercise, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.exercises, nil
}

func (f *fakeCatalog) GetExerciseByName(name string) (models.Exercise, error) {
	for _, e := range f.exercises {
		if e.Name == name {
			return e, nil
		}
	}
	return models.Exercise{}, storage.ErrExerciseNotFound
}

func newTestRouter(catalog *fakeCatalog) *mux.Router {
	router := mux.NewRouter()
	NewHandler(catalog).RegisterRoutes(router)
	return router
}

func TestHandleListExercises(t *testing.T) {
	t.Run("returns all exercises", func(t *testing.T) {
		catalog := &fakeCatalog{exercises: []models.Exercise{
			{ID: 1, Name: "Pushups", Description: "Standard pushups"},
			{ID: 2, Name: "Squats", Tags: []models.Tag{{ID: 1, Name: "Quads", Color: "#68D9CD"}}},
		}}

		req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
		rr := httptest.NewRecorder()
		newTestRouter(catalog).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var got []models.Exercise
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Pushups", got[0].Name)
		assert.Equal(t, "Quads", got[1].Tags[0].Name)
	})

	t.Run("empty catalog returns 404 detail", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
		rr := httptest.NewRecorder()
		newTestRouter(&fakeCatalog{}).ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "No exercises found", got.Detail)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		catalog := &fakeCatalog{listErr: errors.New("db gone")}

		req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
		rr := httptest.NewRecorder()
		newTestRouter(catalog).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestHandleGetExercise(t *testing.T) {
	catalog := &fakeCatalog{exercises: []models.Exercise{
		{ID: 1, Name: "Pushups"},
		{ID: 2, Name: "Planks"},
	}}

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/exercises/Planks", nil)
		rr := httptest.NewRecorder()
		newTestRouter(catalog).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Exercise
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 2, got.ID)
		assert.Equal(t, "Planks", got.Name)
	})

	t.Run("miss lists available names", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/exercises/Deadlifts", nil)
		rr := httptest.NewRecorder()
		newTestRouter(catalog).ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "No exercise with name 'Deadlifts'. Available exercises: Pushups, Planks", got.Detail)
	})
}
