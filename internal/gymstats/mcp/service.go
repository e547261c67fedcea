package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymload/internal/gymstats/analysis"
	"github.com/2beens/gymload/internal/gymstats/exercises"
	"github.com/2beens/gymload/internal/workload"

	log "github.com/sirupsen/logrus"
)

// DefinitionsRepo provides the exercise catalog (for dependency injection and testing).
type DefinitionsRepo interface {
	Get(ctx context.Context, id string) (exercises.Definition, error)
	List(ctx context.Context, params exercises.ListParams) ([]exercises.Definition, error)
}

// analysisRunner runs the workload engine on stored or ad-hoc plans.
type analysisRunner interface {
	DayDistribution(ctx context.Context, programID string, day int) (analysis.DayDistribution, error)
	AnalyzeProgram(ctx context.Context, programID string) (analysis.ProgramAnalysis, error)
	AnalyzePlan(ctx context.Context, days []workload.Day) (workload.Analysis, error)
}

// contextService provides workload context data (schema, catalog, analyses).
// Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListDefinitions(ctx context.Context, params exercises.ListParams) ([]exercises.Definition, error)
	SummarizeExercise(ctx context.Context, exerciseID string) (exercises.SummaryResponse, error)
	GetDayDistribution(ctx context.Context, programID string, day int) (analysis.DayDistribution, error)
	AnalyzeProgram(ctx context.Context, programID string) (analysis.ProgramAnalysis, error)
	AnalyzePlan(ctx context.Context, days []workload.Day) (workload.Analysis, error)
}

// ContextService holds dependencies and implements the workload context business logic.
type ContextService struct {
	schema      SchemaRepo
	definitions DefinitionsRepo
	analysis    analysisRunner
}

// NewContextService builds a ContextService with the given dependencies.
func NewContextService(schemaRepo SchemaRepo, definitionsRepo DefinitionsRepo, runner analysisRunner) *ContextService {
	return &ContextService{
		schema:      schemaRepo,
		definitions: definitionsRepo,
		analysis:    runner,
	}
}

// GetSchema returns the DB schema (table names, columns, types) for the
// exercise_definition, program and program_day tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetWorkloadColumns(ctx)
	if err != nil {
		return "", err
	}
	estimates, err := s.schema.GetRowEstimates(ctx)
	if err != nil {
		// the schema alone is still useful
		log.Warnf("workload schema: row estimates unavailable: %s", err)
		estimates = nil
	}
	return formatWorkloadSchema(cols, estimates), nil
}

func formatWorkloadSchema(cols []SchemaColumn, estimates map[string]int64) string {
	if len(cols) == 0 {
		return "# Workload DB Schema\n\nNo workload tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Workload DB Schema\n\n")
	b.WriteString("Tables: exercise_definition, program, program_day (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		if n, ok := estimates[tableName]; ok {
			b.WriteString(fmt.Sprintf(" (~%d rows)", n))
		}
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// ListDefinitions returns catalog entries, optionally filtered by body part.
func (s *ContextService) ListDefinitions(ctx context.Context, params exercises.ListParams) ([]exercises.Definition, error) {
	return s.definitions.List(ctx, params)
}

// SummarizeExercise renders the muscle split of one catalog exercise.
func (s *ContextService) SummarizeExercise(ctx context.Context, exerciseID string) (exercises.SummaryResponse, error) {
	def, err := s.definitions.Get(ctx, exerciseID)
	if err != nil {
		return exercises.SummaryResponse{}, err
	}
	return exercises.SummaryResponse{
		ID:      def.ID,
		Name:    def.Name,
		Summary: workload.SummarizeExerciseMuscles(def.ExerciseDefinition),
	}, nil
}

func (s *ContextService) GetDayDistribution(ctx context.Context, programID string, day int) (analysis.DayDistribution, error) {
	return s.analysis.DayDistribution(ctx, programID, day)
}

func (s *ContextService) AnalyzeProgram(ctx context.Context, programID string) (analysis.ProgramAnalysis, error) {
	return s.analysis.AnalyzeProgram(ctx, programID)
}

func (s *ContextService) AnalyzePlan(ctx context.Context, days []workload.Day) (workload.Analysis, error) {
	return s.analysis.AnalyzePlan(ctx, days)
}
