package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with workload tools: schema, exercise catalog,
// exercise summaries, day distribution and program analysis.
// Used by the main backend when mounting MCP at /mcp (internal/server) and by cmd/workload_mcp.
func NewServer(schemaRepo SchemaRepo, definitionsRepo DefinitionsRepo, runner analysisRunner) *mcp.Server {
	svc := NewContextService(schemaRepo, definitionsRepo, runner)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymload-workload",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workload_context",
		Description: "Returns the DB schema of the workload tables (exercise_definition, program, program_day): table names, columns, types, nullable, default.",
	}, h.GetWorkloadContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_definitions",
		Description: "Returns the exercise catalog: for each exercise its target muscle, primary percent and secondary muscles with contribution percents. Optional filter: body_part.",
	}, h.GetExerciseDefinitionsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "summarize_exercise_muscles",
		Description: "Returns a one line summary of the muscles an exercise works, e.g. \"Chest (70%), Triceps (30%)\". Arg: exercise_id.",
	}, h.SummarizeExerciseMusclesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_day_distribution",
		Description: "Returns effective volume and sets per muscle for one day of a stored program, sorted by share of the day's volume. Args: program_id, day (zero based).",
	}, h.GetDayDistributionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "analyze_program",
		Description: "Returns the weekly workload analysis of a stored program: per muscle volume, sets and status (undertrained, optimal, overtrained), imbalance and overtraining warnings, and recommendations. Arg: program_id.",
	}, h.AnalyzeProgramTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "analyze_plan",
		Description: "Same as analyze_program for a plan that is not stored. Arg: days, each with entries of exerciseId, sets, minReps and maxReps.",
	}, h.AnalyzePlanTool())

	return s
}
