package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/gymload/internal/gymstats/exercises"
	"github.com/2beens/gymload/internal/workload"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

// GetWorkloadContextTool returns the MCP tool handler for get_workload_context.
func (h *Handler) GetWorkloadContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// ExerciseDefinitionsInput is the input for get_exercise_definitions.
type ExerciseDefinitionsInput struct {
	BodyPart string `json:"body_part,omitempty" jsonschema:"Filter by body part of the target muscle (e.g. upper, lower)"`
}

// GetExerciseDefinitionsTool returns the MCP tool handler for get_exercise_definitions.
func (h *Handler) GetExerciseDefinitionsTool() func(context.Context, *mcp.CallToolRequest, ExerciseDefinitionsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseDefinitionsInput) (*mcp.CallToolResult, any, error) {
		defs, err := h.service.ListDefinitions(ctx, exercises.ListParams{BodyPart: in.BodyPart})
		if err != nil {
			return errorResult("Error fetching exercise definitions: " + err.Error()), nil, nil
		}
		return jsonResult(defs), nil, nil
	}
}

// ExerciseInput is the input for summarize_exercise_muscles.
type ExerciseInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise definition id (e.g. bench_press)"`
}

// SummarizeExerciseMusclesTool returns the MCP tool handler for summarize_exercise_muscles.
func (h *Handler) SummarizeExerciseMusclesTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID == "" {
			return errorResult("exercise_id is required"), nil, nil
		}
		summary, err := h.service.SummarizeExercise(ctx, in.ExerciseID)
		if err != nil {
			return errorResult("Error summarizing exercise: " + err.Error()), nil, nil
		}
		return textResult(summary.Name + ": " + summary.Summary), nil, nil
	}
}

// DayDistributionInput is the input for get_day_distribution.
type DayDistributionInput struct {
	ProgramID string `json:"program_id" jsonschema:"Stored program id"`
	Day       int    `json:"day" jsonschema:"Zero based index of the day within the program"`
}

// GetDayDistributionTool returns the MCP tool handler for get_day_distribution.
func (h *Handler) GetDayDistributionTool() func(context.Context, *mcp.CallToolRequest, DayDistributionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DayDistributionInput) (*mcp.CallToolResult, any, error) {
		if in.ProgramID == "" {
			return errorResult("program_id is required"), nil, nil
		}
		dist, err := h.service.GetDayDistribution(ctx, in.ProgramID, in.Day)
		if err != nil {
			return errorResult("Error computing day distribution: " + err.Error()), nil, nil
		}
		return jsonResult(dist), nil, nil
	}
}

// ProgramInput is the input for analyze_program.
type ProgramInput struct {
	ProgramID string `json:"program_id" jsonschema:"Stored program id"`
}

// AnalyzeProgramTool returns the MCP tool handler for analyze_program.
func (h *Handler) AnalyzeProgramTool() func(context.Context, *mcp.CallToolRequest, ProgramInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgramInput) (*mcp.CallToolResult, any, error) {
		if in.ProgramID == "" {
			return errorResult("program_id is required"), nil, nil
		}
		res, err := h.service.AnalyzeProgram(ctx, in.ProgramID)
		if err != nil {
			return errorResult("Error analyzing program: " + err.Error()), nil, nil
		}
		return jsonResult(res), nil, nil
	}
}

// PlanInput is the input for analyze_plan.
type PlanInput struct {
	Days []workload.Day `json:"days" jsonschema:"Routine days, each with planned entries (exerciseId, sets, minReps, maxReps)"`
}

// AnalyzePlanTool returns the MCP tool handler for analyze_plan.
func (h *Handler) AnalyzePlanTool() func(context.Context, *mcp.CallToolRequest, PlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanInput) (*mcp.CallToolResult, any, error) {
		for _, day := range in.Days {
			for _, entry := range day.Entries {
				if err := workload.ValidateEntry(entry); err != nil {
					return errorResult("Invalid plan: " + err.Error()), nil, nil
				}
			}
		}
		res, err := h.service.AnalyzePlan(ctx, in.Days)
		if err != nil {
			return errorResult("Error analyzing plan: " + err.Error()), nil, nil
		}
		return jsonResult(res), nil, nil
	}
}
