package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `briefforge turns free-text project briefs into technical tasks and code artifacts.

Core concepts:
- Brief: a free-text project description, optionally with requirements, constraints and a timeline.
- Task: one unit of technical work (backend or frontend) with priority and acceptance criteria.
- Artifact: a generated source file (schema SQL, service module, scheduled job, component).
- Run: a recorded pipeline invocation with its tasks and artifact paths.

Workflow:
1) Call decompose_brief to preview the task breakdown, plan and analysis without generating code.
2) Call execute_brief to decompose AND generate artifacts for every task.
3) Browse history with list_runs, drill into one run with get_run.

Decomposition uses an external reasoning service when configured; when it is
unavailable or returns garbage, a deterministic rule-based decomposer takes
over and the analysis header says so.

Docs:
- briefforge://docs/index (what to read when)
- briefforge://docs/artifacts (what gets generated and where it lands)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "briefforge://docs/index",
		Name:        "docs_index",
		Title:       "briefforge docs index",
		Description: "Entry point for agent-facing docs.",
		Content: `# briefforge: Agent Docs Index

## Quick start

1. ` + "`decompose_brief`" + ` to preview tasks, plan and analysis. No code is generated.
2. ` + "`execute_brief`" + ` to run the full pipeline. The result carries one response per task plus the assembled artifact list.
3. ` + "`list_runs`" + ` / ` + "`get_run`" + ` for history.

## Reading results

- ` + "`source`" + ` tells you whether the task list came from the reasoning service (` + "`reasoning`" + `) or the rule-based decomposer (` + "`fallback`" + `).
- A failed task appears in ` + "`results`" + ` with ` + "`success: false`" + ` and an error; the other tasks still complete.
- Artifact paths are project-relative (backend/src/... and frontend/src/...).

## Limitations

- Generated code is a scaffold, not a finished application.
- Task execution is strictly sequential; large briefs take longer but results are deterministic in order.
`,
	},
	{
		URI:         "briefforge://docs/artifacts",
		Name:        "docs_artifacts",
		Title:       "Generated artifacts",
		Description: "What each synthesizer emits and where files land.",
		Content: `# Generated artifacts

## Schema (backend/src/models)

Every backend task gets a ` + "`schema.sql`" + ` inferred from its text: users,
tasks, comments, attachments, notifications, teams, categories and audit
tables appear when the task mentions them, joined by foreign keys that are
guaranteed to reference tables present in the same file. Tasks matching no
known concern get a single generic entity table named from the task title.

## Business logic (backend/src/services)

Task-lifecycle, sharing, notification, comment and attachment service modules,
each gated on keywords in the task text. A task mentioning none of these
generates no service files.

## Scheduling (backend/src/jobs)

A scheduler core plus queue processor whenever the task mentions scheduled or
recurring work, with reminder, cleanup, report and backup jobs added per
keyword.

## Optimization (backend/src/config, backend/src/utils)

Connection pooling, query helpers, an in-memory cache and maintenance helpers,
emitted when the task asks for performance or scale work. Content is fixed; it
does not vary with the task text.

## Frontend (frontend/src/components)

Login form, task list, comment thread and notification bell components per
matching concern in frontend tasks.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
