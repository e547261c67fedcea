package programs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=programs_test

type programsRepo interface {
	Add(ctx context.Context, program Program) (_ Program, err error)
	Get(ctx context.Context, id string) (_ Program, err error)
	List(ctx context.Context) (_ []Program, err error)
	Delete(ctx context.Context, id string) (err error)
}

type programListener interface {
	ProgramChanged(ctx context.Context, programID string)
}

type Handler struct {
	repo     programsRepo
	listener programListener
}

func NewHandler(repo programsRepo, listener programListener) *Handler {
	return &Handler{
		repo:     repo,
		listener: listener,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.programs.add")
	defer span.End()

	if !pkg.HasJSONBody(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var program Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		log.Errorf("add program, unmarshal json params: %s", err)
		http.Error(w, "add program failed", http.StatusBadRequest)
		return
	}

	if err := program.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if program.ID == "" {
		program.ID = uuid.NewString()
	}

	added, err := handler.repo.Add(ctx, program)
	if err != nil {
		if errors.Is(err, ErrProgramExists) {
			http.Error(w, "program already exists", http.StatusConflict)
			return
		}
		log.Errorf("add program: %s", err)
		http.Error(w, "add program failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal program: %s", err)
		http.Error(w, "add program failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new program added: %s [%s], %d days", added.Name, added.ID, len(added.Days))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.programs.list")
	defer span.End()

	programs, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list programs: %s", err)
		http.Error(w, "list programs failed", http.StatusInternalServerError)
		return
	}

	programsJson, err := json.Marshal(programs)
	if err != nil {
		log.Errorf("marshal programs: %s", err)
		http.Error(w, "list programs failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programsJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.programs.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	program, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("get program [%s]: %s", id, err)
		http.Error(w, "get program failed", http.StatusInternalServerError)
		return
	}

	programJson, err := json.Marshal(program)
	if err != nil {
		log.Errorf("marshal program: %s", err)
		http.Error(w, "get program failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.programs.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete program: %s", err)
		http.Error(w, "delete program failed", http.StatusInternalServerError)
		return
	}
	handler.listener.ProgramChanged(ctx, id)

	log.Debugf("program deleted: %s", id)
	w.WriteHeader(http.StatusNoContent)
}
