package mcp

import (
	"github.com/seedcode/briefforge/internal/coordinator"
	"github.com/seedcode/briefforge/internal/domain/run"
)

type BriefParams struct {
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
	Constraints  []string `json:"constraints,omitempty"`
	Timeline     string   `json:"timeline,omitempty"`
}

type ListRunsParams struct {
	Source string `json:"source,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type GetRunParams struct {
	ID string `json:"id"`
}

type DecomposeBriefResult struct {
	Decomposition *coordinator.Decomposition `json:"decomposition"`
}

type ExecuteBriefResult struct {
	Execution *coordinator.Execution `json:"execution"`
}

type ListRunsResult struct {
	Runs []run.Summary `json:"runs"`
}

type GetRunResult struct {
	Run *run.Run `json:"run"`
}
