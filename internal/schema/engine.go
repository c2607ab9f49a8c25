// Package schema infers relational table descriptors from task text and
// renders them as SQL. Inference is deterministic keyword matching against
// fixed table templates; the engine guarantees internal referential
// consistency of its output, not correctness against a live database.
package schema

import (
	"log/slog"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// Engine is the schema inference engine.
type Engine struct {
	classifier classify.Classifier
	logger     *slog.Logger
}

// NewEngine creates an engine using the given classifier.
func NewEngine(classifier classify.Classifier, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{classifier: classifier, logger: logger}
}

// InferSchema maps a task to a set of table descriptors. Families are
// evaluated independently in a fixed order and their results unioned; the
// first table to claim a name wins. Foreign keys whose target is absent from
// the batch are pruned so the emitted SQL never dangles.
func (e *Engine) InferSchema(t task.TechnicalTask) []DatabaseTable {
	text := t.CombinedText()

	tables := make([]DatabaseTable, 0, 8)
	add := func(tbl DatabaseTable) {
		for _, existing := range tables {
			if existing.Name == tbl.Name {
				return
			}
		}
		tables = append(tables, tbl)
	}

	hasUsers := e.classifier.Matches(text, classify.FamilyAuth)
	if hasUsers {
		add(usersTable())
	}
	if e.classifier.Matches(text, classify.FamilyTask) {
		add(tasksTable())
		// Sharing rows are meaningless without a users table to grant to.
		if hasUsers {
			add(taskSharesTable())
		}
	}
	if e.classifier.Matches(text, classify.FamilyComment) {
		add(commentsTable())
	}
	if e.classifier.Matches(text, classify.FamilyAttachment) {
		add(attachmentsTable())
	}
	if e.classifier.Matches(text, classify.FamilyNotification) {
		add(notificationsTable())
	}
	if e.classifier.Matches(text, classify.FamilyTeam) {
		add(teamsTable())
		add(teamMembersTable())
	}
	if e.classifier.Matches(text, classify.FamilyCategory) {
		add(categoriesTable())
		add(taskCategoriesTable())
	}
	if e.classifier.Matches(text, classify.FamilyAudit) {
		add(auditLogsTable())
	}

	if len(tables) == 0 {
		name := GenericTableName(t.Title)
		e.logger.Debug("no schema family matched, using generic entity",
			"task", t.ID, "table", name)
		tables = append(tables, genericEntityTable(name))
	}

	return pruneDanglingForeignKeys(tables)
}

// pruneDanglingForeignKeys drops any foreign key whose referenced table is
// not part of the same batch.
func pruneDanglingForeignKeys(tables []DatabaseTable) []DatabaseTable {
	present := make(map[string]bool, len(tables))
	for _, tbl := range tables {
		present[tbl.Name] = true
	}

	for i := range tables {
		kept := tables[i].ForeignKeys[:0]
		for _, fk := range tables[i].ForeignKeys {
			if present[fk.ReferencesTable] {
				kept = append(kept, fk)
			}
		}
		tables[i].ForeignKeys = kept
	}
	return tables
}
