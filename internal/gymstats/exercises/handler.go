package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/internal/workload"
	"github.com/2beens/gymload/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type definitionsRepo interface {
	Add(ctx context.Context, def Definition) (_ Definition, err error)
	Get(ctx context.Context, id string) (_ Definition, err error)
	List(ctx context.Context, params ListParams) (_ []Definition, err error)
	Update(ctx context.Context, def Definition) (err error)
	Delete(ctx context.Context, id string) (err error)
}

// catalogListener is told whenever a definition is added, changed or removed,
// since any of those can change the analysis of a stored program.
type catalogListener interface {
	DefinitionsChanged(ctx context.Context)
}

type Handler struct {
	repo     definitionsRepo
	listener catalogListener
}

func NewHandler(repo definitionsRepo, listener catalogListener) *Handler {
	return &Handler{
		repo:     repo,
		listener: listener,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.add")
	defer span.End()

	if !pkg.HasJSONBody(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var def Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		log.Errorf("add exercise definition, unmarshal json params: %s", err)
		http.Error(w, "add exercise definition failed", http.StatusBadRequest)
		return
	}

	if def.ID == "" {
		def.ID = uuid.NewString()
	}

	if err := workload.ValidateDefinition(def.ExerciseDefinition); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, def)
	if err != nil {
		if errors.Is(err, ErrDefinitionExists) {
			http.Error(w, "exercise definition already exists", http.StatusConflict)
			return
		}
		log.Errorf("add exercise definition: %s", err)
		http.Error(w, "add exercise definition failed", http.StatusInternalServerError)
		return
	}
	handler.listener.DefinitionsChanged(ctx)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal exercise definition: %s", err)
		http.Error(w, "add exercise definition failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise definition added: %s [%s]", added.Name, added.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.list")
	defer span.End()

	defs, err := handler.repo.List(ctx, ListParams{
		BodyPart: r.URL.Query().Get("bodyPart"),
	})
	if err != nil {
		log.Errorf("list exercise definitions: %s", err)
		http.Error(w, "list exercise definitions failed", http.StatusInternalServerError)
		return
	}

	defsJson, err := json.Marshal(defs)
	if err != nil {
		log.Errorf("marshal exercise definitions: %s", err)
		http.Error(w, "list exercise definitions failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, defsJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.get")
	defer span.End()

	def, ok := handler.getDefinition(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	defJson, err := json.Marshal(def)
	if err != nil {
		log.Errorf("marshal exercise definition: %s", err)
		http.Error(w, "get exercise definition failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, defJson, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.summary")
	defer span.End()

	def, ok := handler.getDefinition(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	summaryJson, err := json.Marshal(SummaryResponse{
		ID:      def.ID,
		Name:    def.Name,
		Summary: workload.SummarizeExerciseMuscles(def.ExerciseDefinition),
	})
	if err != nil {
		log.Errorf("marshal exercise summary: %s", err)
		http.Error(w, "get exercise summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.update")
	defer span.End()

	if !pkg.HasJSONBody(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var def Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		log.Errorf("update exercise definition, unmarshal json params: %s", err)
		http.Error(w, "update exercise definition failed", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	if def.ID == "" {
		def.ID = id
	}
	if def.ID != id {
		http.Error(w, "error, id in path and body differ", http.StatusBadRequest)
		return
	}

	if err := workload.ValidateDefinition(def.ExerciseDefinition); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, def); err != nil {
		if errors.Is(err, ErrDefinitionNotFound) {
			http.Error(w, "exercise definition not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise definition: %s", err)
		http.Error(w, "update exercise definition failed", http.StatusInternalServerError)
		return
	}
	handler.listener.DefinitionsChanged(ctx)

	log.Debugf("exercise definition updated: %s", def.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrDefinitionNotFound) {
			http.Error(w, "exercise definition not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise definition: %s", err)
		http.Error(w, "delete exercise definition failed", http.StatusInternalServerError)
		return
	}
	handler.listener.DefinitionsChanged(ctx)

	log.Debugf("exercise definition deleted: %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) getDefinition(ctx context.Context, w http.ResponseWriter, id string) (Definition, bool) {
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return Definition{}, false
	}

	def, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDefinitionNotFound) {
			http.Error(w, "exercise definition not found", http.StatusNotFound)
			return Definition{}, false
		}
		log.Errorf("get exercise definition [%s]: %s", id, err)
		http.Error(w, "get exercise definition failed", http.StatusInternalServerError)
		return Definition{}, false
	}

	return def, true
}
