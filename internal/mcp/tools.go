package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/run"
)

// registerTools registers all pipeline tools on the server. Input and output
// schemas are inferred from the typed params and results.
func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "decompose_brief",
		Description: "Decompose a free-text project brief into technical tasks with an execution plan and analysis",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params BriefParams) (*sdkmcp.CallToolResult, DecomposeBriefResult, error) {
		dec, err := services.Coordinator.Decompose(ctx, toBrief(params))
		if err != nil {
			return nil, DecomposeBriefResult{}, MapError(err)
		}
		return nil, DecomposeBriefResult{Decomposition: dec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "execute_brief",
		Description: "Decompose a project brief and synthesize artifacts (schema SQL, services, jobs, components) for every task",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params BriefParams) (*sdkmcp.CallToolResult, ExecuteBriefResult, error) {
		exec, err := services.Coordinator.Execute(ctx, toBrief(params))
		if err != nil {
			return nil, ExecuteBriefResult{}, MapError(err)
		}
		return nil, ExecuteBriefResult{Execution: exec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_runs",
		Description: "List past pipeline runs, newest first, optionally filtered by decomposition source",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ListRunsParams) (*sdkmcp.CallToolResult, ListRunsResult, error) {
		runs, err := services.Runs.List(ctx, run.ListOptions{
			Source: params.Source,
			Limit:  params.Limit,
			Offset: params.Offset,
		})
		if err != nil {
			return nil, ListRunsResult{}, MapError(err)
		}
		return nil, ListRunsResult{Runs: runs}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_run",
		Description: "Get one pipeline run with its tasks and generated artifact paths",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetRunParams) (*sdkmcp.CallToolResult, GetRunResult, error) {
		r, err := services.Runs.Get(ctx, params.ID)
		if err != nil {
			return nil, GetRunResult{}, MapError(err)
		}
		return nil, GetRunResult{Run: r}, nil
	})
}

func toBrief(params BriefParams) brief.ProjectBrief {
	return brief.ProjectBrief{
		Description:  params.Description,
		Requirements: params.Requirements,
		Constraints:  params.Constraints,
		Timeline:     params.Timeline,
	}
}
