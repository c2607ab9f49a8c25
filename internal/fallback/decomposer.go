// Package fallback provides the deterministic, rule-based brief decomposition
// used whenever the reasoning service is unavailable. It performs no I/O and
// never returns an empty task list for a non-empty brief.
package fallback

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// Decomposer converts a brief into tasks by keyword family matching.
type Decomposer struct {
	logger *slog.Logger
}

// NewDecomposer creates a fallback decomposer.
func NewDecomposer(logger *slog.Logger) *Decomposer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decomposer{logger: logger}
}

// Decompose scans the brief for fixed keyword families. Each matched family
// contributes its tasks with fixed priorities and hour estimates; when no
// family matches, the baseline project skeleton guarantees a non-empty
// result.
func (d *Decomposer) Decompose(b brief.ProjectBrief) []task.TechnicalTask {
	lowered := strings.ToLower(b.Description)

	tasks := make([]task.TechnicalTask, 0, 8)
	if containsAny(lowered, "auth", "login", "user") {
		tasks = append(tasks, authTasks()...)
	}
	if containsAny(lowered, "task", "todo") {
		tasks = append(tasks, taskManagementTasks()...)
	}
	if containsAny(lowered, "shop", "product") {
		tasks = append(tasks, commerceTasks()...)
	}
	if containsAny(lowered, "shar", "collaborat", "team") {
		tasks = append(tasks, collaborationTasks()...)
	}

	if len(tasks) == 0 {
		d.logger.Info("no keyword family matched brief, using baseline skeleton")
		tasks = baselineTasks()
	}

	d.logger.Info("fallback decomposition produced tasks", "count", len(tasks))
	return tasks
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func newTask(title, description string, typ task.Type, priority task.Priority, hours float64, criteria ...string) task.TechnicalTask {
	return task.TechnicalTask{
		ID:                 uuid.NewString(),
		Title:              title,
		Description:        description,
		Type:               typ,
		Priority:           priority,
		AcceptanceCriteria: criteria,
		EstimatedHours:     hours,
	}
}

func authTasks() []task.TechnicalTask {
	return []task.TechnicalTask{
		newTask(
			"User Authentication",
			"Implement registration, login, session management and password hashing.",
			task.TypeBackend, task.PriorityHigh, 16,
			"Users can register with email and password",
			"Passwords are stored hashed, never in plain text",
			"Login issues a session token with expiry",
			"Invalid credentials return a clear error without leaking which field failed",
			"Logout invalidates the active session",
		),
	}
}

func taskManagementTasks() []task.TechnicalTask {
	return []task.TechnicalTask{
		newTask(
			"Task Management API",
			"CRUD endpoints for tasks with status transitions, priorities and due dates.",
			task.TypeBackend, task.PriorityHigh, 20,
			"Tasks can be created, read, updated and deleted",
			"Status transitions are validated",
			"Tasks support priority and due date fields",
			"List endpoint supports filtering and pagination",
		),
		newTask(
			"Task Board UI",
			"Task list and detail views with inline status and priority editing.",
			task.TypeFrontend, task.PriorityMedium, 16,
			"Task list renders with status and priority badges",
			"Tasks can be edited inline",
			"Overdue tasks are visually flagged",
			"Empty states are handled",
		),
	}
}

func commerceTasks() []task.TechnicalTask {
	return []task.TechnicalTask{
		newTask(
			"Product Catalog API",
			"Product listing, detail and inventory endpoints with category filtering.",
			task.TypeBackend, task.PriorityHigh, 24,
			"Products expose name, price, description and stock",
			"Catalog supports category filtering and search",
			"Inventory decrements atomically on purchase",
			"Out-of-stock products cannot be ordered",
		),
		newTask(
			"Storefront UI",
			"Product grid, detail pages and a shopping cart flow.",
			task.TypeFrontend, task.PriorityMedium, 20,
			"Product grid paginates",
			"Cart contents persist across reloads",
			"Checkout validates the cart before submission",
			"Prices display in the configured currency",
		),
	}
}

func collaborationTasks() []task.TechnicalTask {
	return []task.TechnicalTask{
		newTask(
			"Sharing and Permissions",
			"Share resources between users with view, comment and edit permission tiers.",
			task.TypeBackend, task.PriorityMedium, 12,
			"Owners can share with other users at a chosen permission tier",
			"Permission checks guard every mutating endpoint",
			"Owners can revoke sharing",
			"Shared users see resources in their own lists",
		),
		newTask(
			"Team Workspaces",
			"Team creation, membership management and team-scoped resource visibility.",
			task.TypeBackend, task.PriorityMedium, 14,
			"Teams can be created with an owner",
			"Members can be invited and removed",
			"Team resources are visible to all members",
			"Leaving a team removes access immediately",
		),
	}
}

// baselineTasks is the fixed generic skeleton used when nothing matches, so
// the pipeline always has at least one task to synthesize against.
func baselineTasks() []task.TechnicalTask {
	return []task.TechnicalTask{
		newTask(
			"Database Schema and Backend Architecture",
			"Design the relational schema and service layout for the core domain.",
			task.TypeBackend, task.PriorityHigh, 16,
			"Schema covers the core entities",
			"Migrations apply cleanly from scratch",
			"Service boundaries are documented",
			"Connection pooling is configured",
		),
		newTask(
			"User Authentication",
			"Registration, login and session management.",
			task.TypeBackend, task.PriorityHigh, 16,
			"Users can register and log in",
			"Passwords are hashed",
			"Sessions expire",
			"Auth guards protect private endpoints",
		),
		newTask(
			"Core Business Logic",
			"Implement the primary domain workflows described in the brief.",
			task.TypeBackend, task.PriorityHigh, 24,
			"Primary workflows are implemented end to end",
			"Domain rules are enforced server-side",
			"Errors are reported consistently",
			"Edge cases are covered by tests",
		),
		newTask(
			"UI Components",
			"Build the main screens and reusable components.",
			task.TypeFrontend, task.PriorityMedium, 20,
			"Main screens render against the live API",
			"Components are reusable",
			"Loading and error states are handled",
			"Layout is responsive",
		),
		newTask(
			"State Management and API Integration",
			"Wire the frontend to the backend with consistent data fetching.",
			task.TypeFrontend, task.PriorityMedium, 12,
			"API client handles auth headers",
			"Stale data revalidates",
			"Failures surface user-friendly messages",
			"Optimistic updates roll back on error",
		),
		newTask(
			"Testing",
			"Unit and integration coverage for backend and frontend.",
			task.TypeBackend, task.PriorityMedium, 16,
			"Core services have unit tests",
			"API endpoints have integration tests",
			"CI runs the suite on every change",
			"Coverage is reported",
		),
		newTask(
			"Security and Performance",
			"Input validation, rate limiting and query optimization.",
			task.TypeBackend, task.PriorityMedium, 12,
			"Inputs are validated at the boundary",
			"Hot queries are indexed",
			"Rate limiting protects public endpoints",
			"Secrets are never logged",
		),
		newTask(
			"Deployment",
			"Containerize the services and set up a deploy pipeline.",
			task.TypeBackend, task.PriorityLow, 8,
			"Services build as containers",
			"Deploys are repeatable",
			"Health checks gate rollout",
			"Rollback is documented",
		),
	}
}
