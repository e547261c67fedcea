package exercises_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/gymload/internal/gymstats/exercises"
	"github.com/2beens/gymload/internal/workload"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const benchPressJson = `{
	"id": "bench",
	"name": "Bench Press",
	"target": {"id": "chest", "name": "Chest", "bodyPart": "upper"},
	"primaryPercent": 70,
	"secondary": [{"id": "triceps", "name": "Triceps", "bodyPart": "upper", "contributionPercent": 30}]
}`

func benchPress() exercises.Definition {
	primary := 70.0
	return exercises.Definition{
		ExerciseDefinition: workload.ExerciseDefinition{
			ID:             "bench",
			Name:           "Bench Press",
			Target:         workload.Muscle{ID: "chest", Name: "Chest", BodyPart: "upper"},
			PrimaryPercent: &primary,
			Secondary: []workload.SecondaryMuscle{
				{Muscle: workload.Muscle{ID: "triceps", Name: "Triceps", BodyPart: "upper"}, ContributionPercent: 30},
			},
		},
	}
}

func newHandler(t *testing.T) (*exercises.Handler, *MockdefinitionsRepo, *MockcatalogListener) {
	ctrl := gomock.NewController(t)
	repo := NewMockdefinitionsRepo(ctrl)
	listener := NewMockcatalogListener(ctrl)
	return exercises.NewHandler(repo, listener), repo, listener
}

func jsonRequest(t *testing.T, method, body string) *http.Request {
	req, err := http.NewRequest(method, "/", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_HandleAdd(t *testing.T) {
	handler, repo, listener := newHandler(t)

	repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, def exercises.Definition) (exercises.Definition, error) {
			assert.Equal(t, benchPress().ExerciseDefinition, def.ExerciseDefinition)
			return def, nil
		})
	listener.EXPECT().DefinitionsChanged(gomock.Any()).Times(1)

	rr := httptest.NewRecorder()
	handler.HandleAdd(rr, jsonRequest(t, http.MethodPost, benchPressJson))
	require.Equal(t, http.StatusCreated, rr.Code)

	var added exercises.Definition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, "bench", added.ID)
	assert.Equal(t, "Chest", added.Target.Name)
}

func TestHandler_HandleAdd_GeneratesID(t *testing.T) {
	handler, repo, listener := newHandler(t)

	repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, def exercises.Definition) (exercises.Definition, error) {
			_, err := uuid.Parse(def.ID)
			assert.NoError(t, err)
			return def, nil
		})
	listener.EXPECT().DefinitionsChanged(gomock.Any())

	body := `{"name": "Curl", "target": {"id": "biceps", "name": "Biceps"}}`
	rr := httptest.NewRecorder()
	handler.HandleAdd(rr, jsonRequest(t, http.MethodPost, body))
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestHandler_HandleAdd_Invalid(t *testing.T) {
	handler, _, _ := newHandler(t)

	t.Run("content type", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, benchPressJson)
		req.Header.Set("Content-Type", "text/plain")
		rr := httptest.NewRecorder()
		handler.HandleAdd(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("broken json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.HandleAdd(rr, jsonRequest(t, http.MethodPost, `{"id":`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("percents over 100", func(t *testing.T) {
		body := strings.Replace(benchPressJson, `"primaryPercent": 70`, `"primaryPercent": 90`, 1)
		rr := httptest.NewRecorder()
		handler.HandleAdd(rr, jsonRequest(t, http.MethodPost, body))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "add up to 120")
	})
}

func TestHandler_HandleAdd_Conflict(t *testing.T) {
	handler, repo, _ := newHandler(t)

	repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(exercises.Definition{}, exercises.ErrDefinitionExists)

	rr := httptest.NewRecorder()
	handler.HandleAdd(rr, jsonRequest(t, http.MethodPost, benchPressJson))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandler_HandleList(t *testing.T) {
	handler, repo, _ := newHandler(t)

	repo.EXPECT().
		List(gomock.Any(), exercises.ListParams{BodyPart: "upper"}).
		Return([]exercises.Definition{benchPress()}, nil)

	req, err := http.NewRequest(http.MethodGet, "/gymstats/exercises?bodyPart=upper", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var defs []exercises.Definition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &defs))
	require.Len(t, defs, 1)
	assert.Equal(t, benchPress().ExerciseDefinition, defs[0].ExerciseDefinition)
}

func TestHandler_HandleList_RepoError(t *testing.T) {
	handler, repo, _ := newHandler(t)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db gone"))

	req, err := http.NewRequest(http.MethodGet, "/gymstats/exercises", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_HandleGet(t *testing.T) {
	handler, repo, _ := newHandler(t)

	repo.EXPECT().Get(gomock.Any(), "bench").Return(benchPress(), nil)
	repo.EXPECT().Get(gomock.Any(), "nope").Return(exercises.Definition{}, exercises.ErrDefinitionNotFound)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.HandleGet(rr, mux.SetURLVars(req, map[string]string{"id": "bench"}))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.HandleGet(rr, mux.SetURLVars(req, map[string]string{"id": "nope"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_HandleSummary(t *testing.T) {
	handler, repo, _ := newHandler(t)

	repo.EXPECT().Get(gomock.Any(), "bench").Return(benchPress(), nil)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handler.HandleSummary(rr, mux.SetURLVars(req, map[string]string{"id": "bench"}))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp exercises.SummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, exercises.SummaryResponse{
		ID:      "bench",
		Name:    "Bench Press",
		Summary: "Chest (70%), Triceps (30%)",
	}, resp)
}

func TestHandler_HandleUpdate(t *testing.T) {
	handler, repo, listener := newHandler(t)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, def exercises.Definition) error {
			assert.Equal(t, "bench", def.ID)
			return nil
		})
	listener.EXPECT().DefinitionsChanged(gomock.Any())

	rr := httptest.NewRecorder()
	req := mux.SetURLVars(jsonRequest(t, http.MethodPut, benchPressJson), map[string]string{"id": "bench"})
	handler.HandleUpdate(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHandler_HandleUpdate_Errors(t *testing.T) {
	handler, repo, _ := newHandler(t)

	t.Run("id mismatch", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := mux.SetURLVars(jsonRequest(t, http.MethodPut, benchPressJson), map[string]string{"id": "squat"})
		handler.HandleUpdate(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(exercises.ErrDefinitionNotFound)
		rr := httptest.NewRecorder()
		req := mux.SetURLVars(jsonRequest(t, http.MethodPut, benchPressJson), map[string]string{"id": "bench"})
		handler.HandleUpdate(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandler_HandleDelete(t *testing.T) {
	handler, repo, listener := newHandler(t)

	repo.EXPECT().Delete(gomock.Any(), "bench").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "nope").Return(exercises.ErrDefinitionNotFound)
	listener.EXPECT().DefinitionsChanged(gomock.Any()).Times(1)

	req, err := http.NewRequest(http.MethodDelete, "/", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.HandleDelete(rr, mux.SetURLVars(req, map[string]string{"id": "bench"}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.HandleDelete(rr, mux.SetURLVars(req, map[string]string{"id": "nope"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
