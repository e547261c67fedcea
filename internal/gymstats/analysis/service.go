// Package analysis runs the workload engine against stored programs and the
// exercise catalog, caching program results until the catalog or the program
// changes.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymload/internal/cache"
	"github.com/2beens/gymload/internal/gymstats/programs"
	"github.com/2beens/gymload/internal/telemetry/metrics"
	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/internal/workload"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

var ErrDayNotFound = errors.New("program day not found")

const catalogRevisionKey = "catalog::revision"

type definitionsRepo interface {
	GetByIDs(ctx context.Context, ids []string) (_ []workload.ExerciseDefinition, err error)
}

type programsRepo interface {
	Get(ctx context.Context, id string) (_ programs.Program, err error)
}

type DayDistribution struct {
	ProgramID      string                    `json:"programId,omitempty"`
	Day            int                       `json:"day"`
	DayName        string                    `json:"dayName"`
	TotalVolume    float64                   `json:"totalVolume"`
	Muscles        []workload.MuscleWorkload `json:"muscles"`
	SkippedEntries int                       `json:"skippedEntries"`
}

type ProgramAnalysis struct {
	ProgramID   string            `json:"programId"`
	ProgramName string            `json:"programName"`
	Analysis    workload.Analysis `json:"analysis"`
}

type NewServiceParams struct {
	Definitions    definitionsRepo
	Programs       programsRepo
	Cache          cache.Cache
	CacheTTL       time.Duration
	Options        workload.Options
	MetricsManager *metrics.Manager
}

type Service struct {
	definitions definitionsRepo
	programs    programsRepo
	cache       cache.Cache
	cacheTTL    time.Duration
	analyzer    *workload.Analyzer
	metrics     *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		definitions: params.Definitions,
		programs:    params.Programs,
		cache:       params.Cache,
		cacheTTL:    params.CacheTTL,
		analyzer:    workload.NewAnalyzer(params.Options),
		metrics:     params.MetricsManager,
	}
}

// Database loads every definition referenced by days. Ids missing from the
// catalog are simply absent, the engine skips their entries.
func (s *Service) Database(ctx context.Context, days []workload.Day) (workload.Database, error) {
	defs, err := s.definitions.GetByIDs(ctx, programs.ExerciseIDs(days))
	if err != nil {
		return nil, fmt.Errorf("load exercise definitions: %w", err)
	}
	return workload.NewDatabase(defs...), nil
}

// DayDistribution computes the muscle distribution of one day of a stored program.
func (s *Service) DayDistribution(ctx context.Context, programID string, day int) (_ DayDistribution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analysis.gymstats.day_distribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID), attribute.Int("program.day", day))

	program, err := s.programs.Get(ctx, programID)
	if err != nil {
		return DayDistribution{}, err
	}
	if day < 0 || day >= len(program.Days) {
		return DayDistribution{}, fmt.Errorf("%w: %d of %d", ErrDayNotFound, day, len(program.Days))
	}

	dist, err := s.Distribution(ctx, program.Days[day])
	if err != nil {
		return DayDistribution{}, err
	}
	dist.ProgramID = programID
	dist.Day = day
	return dist, nil
}

// Distribution computes the muscle distribution of a single day that is not stored.
func (s *Service) Distribution(ctx context.Context, day workload.Day) (DayDistribution, error) {
	start := time.Now()
	db, err := s.Database(ctx, []workload.Day{day})
	if err != nil {
		return DayDistribution{}, err
	}

	dist := NewDayDistribution(0, day, db)
	s.observe(metrics.KindDay, start, dist.SkippedEntries)
	return dist, nil
}

// NewDayDistribution runs the day aggregation for the day at index.
func NewDayDistribution(index int, day workload.Day, db workload.Database) DayDistribution {
	res := workload.AnalyzeDay(day.Entries, db)
	return DayDistribution{
		Day:            index,
		DayName:        day.Name,
		TotalVolume:    res.TotalVolume,
		Muscles:        res.Muscles,
		SkippedEntries: res.SkippedEntries,
	}
}

// AnalyzeProgram analyzes a stored program, serving repeated requests from cache.
func (s *Service) AnalyzeProgram(ctx context.Context, programID string) (_ ProgramAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analysis.gymstats.analyze_program")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	key := s.programKey(ctx, programID)
	if cached, ok := s.cached(ctx, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	program, err := s.programs.Get(ctx, programID)
	if err != nil {
		return ProgramAnalysis{}, err
	}

	a, err := s.analyze(ctx, metrics.KindProgram, program.Days)
	if err != nil {
		return ProgramAnalysis{}, err
	}
	result := ProgramAnalysis{
		ProgramID:   program.ID,
		ProgramName: program.Name,
		Analysis:    a,
	}

	s.store(ctx, key, result)
	return result, nil
}

// AnalyzePlan analyzes days that are not stored, nothing is cached.
func (s *Service) AnalyzePlan(ctx context.Context, days []workload.Day) (_ workload.Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analysis.gymstats.analyze_plan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.days", len(days)))

	return s.analyze(ctx, metrics.KindAdHoc, days)
}

// AnalyzePrograms analyzes every program concurrently. Results keep the
// order of programIDs; the first failure cancels the rest.
func (s *Service) AnalyzePrograms(ctx context.Context, programIDs []string) ([]ProgramAnalysis, error) {
	results := make([]ProgramAnalysis, len(programIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range programIDs {
		g.Go(func() error {
			res, err := s.AnalyzeProgram(gctx, id)
			if err != nil {
				return fmt.Errorf("analyze program [%s]: %w", id, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DefinitionsChanged drops every cached program analysis by moving the
// catalog to a new revision.
func (s *Service) DefinitionsChanged(ctx context.Context) {
	rev := uuid.NewString()
	if err := s.cache.Set(ctx, catalogRevisionKey, []byte(rev), 0); err != nil {
		log.Errorf("bump catalog revision: %s", err)
		return
	}
	log.Debugf("catalog revision is now %s", rev)
}

// ProgramChanged drops the cached analysis of one program.
func (s *Service) ProgramChanged(ctx context.Context, programID string) {
	if err := s.cache.Delete(ctx, s.programKey(ctx, programID)); err != nil {
		log.Errorf("forget cached analysis of program [%s]: %s", programID, err)
	}
}

func (s *Service) analyze(ctx context.Context, kind string, days []workload.Day) (workload.Analysis, error) {
	start := time.Now()
	db, err := s.Database(ctx, days)
	if err != nil {
		return workload.Analysis{}, err
	}

	a := s.analyzer.Analyze(days, db)
	s.observe(kind, start, a.SkippedEntries)
	return a, nil
}

func (s *Service) observe(kind string, start time.Time, skipped int) {
	if skipped > 0 {
		log.Warnf("%s analysis skipped %d planned entries with unknown exercises", kind, skipped)
	}
	if s.metrics == nil {
		return
	}
	s.metrics.CounterAnalyses.WithLabelValues(kind).Inc()
	s.metrics.CounterSkippedEntries.Add(float64(skipped))
	s.metrics.HistogramAnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// programKey embeds the current catalog revision, creating one if the cache
// has none yet.
func (s *Service) programKey(ctx context.Context, programID string) string {
	rev, err := s.cache.Get(ctx, catalogRevisionKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Errorf("get catalog revision: %s", err)
		}
		rev = []byte(uuid.NewString())
		if err := s.cache.Set(ctx, catalogRevisionKey, rev, 0); err != nil {
			log.Errorf("set catalog revision: %s", err)
		}
	}
	return fmt.Sprintf("program::%s::%s", programID, rev)
}

func (s *Service) cached(ctx context.Context, key string) (ProgramAnalysis, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Errorf("get cached analysis [%s]: %s", key, err)
		}
		s.countCache(false)
		return ProgramAnalysis{}, false
	}

	var res ProgramAnalysis
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Errorf("unmarshal cached analysis [%s]: %s", key, err)
		s.countCache(false)
		return ProgramAnalysis{}, false
	}
	s.countCache(true)
	return res, true
}

func (s *Service) store(ctx context.Context, key string, res ProgramAnalysis) {
	raw, err := json.Marshal(res)
	if err != nil {
		log.Errorf("marshal analysis [%s]: %s", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		if errors.Is(err, cache.ErrTooLarge) {
			// served uncached, raise analysis.cache_size_mb if this is frequent
			log.Warnf("analysis [%s] not cached: %s", key, err)
			return
		}
		log.Errorf("cache analysis [%s]: %s", key, err)
	}
}

func (s *Service) countCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CounterCacheHits.Inc()
	} else {
		s.metrics.CounterCacheMisses.Inc()
	}
}
