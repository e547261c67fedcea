package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/gymload/internal/gymstats/programs"
	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/internal/workload"
	"github.com/2beens/gymload/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analysis_test

type analysisService interface {
	DayDistribution(ctx context.Context, programID string, day int) (_ DayDistribution, err error)
	AnalyzeProgram(ctx context.Context, programID string) (_ ProgramAnalysis, err error)
	AnalyzePrograms(ctx context.Context, programIDs []string) ([]ProgramAnalysis, error)
	AnalyzePlan(ctx context.Context, days []workload.Day) (_ workload.Analysis, err error)
}

// PlanRequest is the body of an ad-hoc analysis.
type PlanRequest struct {
	Days []workload.Day `json:"days"`
}

const maxComparedPrograms = 10

type Handler struct {
	service analysisService
}

func NewHandler(service analysisService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleDayDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.analysis.day_distribution")
	defer span.End()

	vars := mux.Vars(r)
	programID := vars["id"]
	day, err := strconv.Atoi(vars["day"])
	if programID == "" || err != nil {
		http.Error(w, "error, program id and numeric day are required", http.StatusBadRequest)
		return
	}

	dist, err := handler.service.DayDistribution(ctx, programID, day)
	if err != nil {
		handler.writeError(w, "day distribution", err)
		return
	}
	handler.writeJSON(w, "day distribution", dist)
}

func (handler *Handler) HandleProgramAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.analysis.program")
	defer span.End()

	programID := mux.Vars(r)["id"]
	if programID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	res, err := handler.service.AnalyzeProgram(ctx, programID)
	if err != nil {
		handler.writeError(w, "program analysis", err)
		return
	}
	handler.writeJSON(w, "program analysis", res)
}

// HandleComparePrograms analyzes up to maxComparedPrograms programs given as
// a comma separated ids query param.
func (handler *Handler) HandleComparePrograms(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.analysis.compare")
	defer span.End()

	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 || len(ids) > maxComparedPrograms {
		http.Error(w, "error, between 1 and 10 program ids are required", http.StatusBadRequest)
		return
	}

	res, err := handler.service.AnalyzePrograms(ctx, ids)
	if err != nil {
		handler.writeError(w, "compare programs", err)
		return
	}
	handler.writeJSON(w, "compare programs", res)
}

func (handler *Handler) HandleAnalyzePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.analysis.plan")
	defer span.End()

	if !pkg.HasJSONBody(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("analyze plan, unmarshal json params: %s", err)
		http.Error(w, "analyze plan failed", http.StatusBadRequest)
		return
	}

	var errs error
	for _, day := range req.Days {
		for _, entry := range day.Entries {
			errs = multierr.Append(errs, workload.ValidateEntry(entry))
		}
	}
	if errs != nil {
		http.Error(w, errs.Error(), http.StatusBadRequest)
		return
	}

	res, err := handler.service.AnalyzePlan(ctx, req.Days)
	if err != nil {
		handler.writeError(w, "analyze plan", err)
		return
	}
	handler.writeJSON(w, "analyze plan", res)
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, programs.ErrProgramNotFound):
		http.Error(w, "program not found", http.StatusNotFound)
	case errors.Is(err, ErrDayNotFound):
		http.Error(w, "program day not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}

func (handler *Handler) writeJSON(w http.ResponseWriter, op string, v any) {
	resJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("%s, marshal response: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, http.StatusOK)
}
