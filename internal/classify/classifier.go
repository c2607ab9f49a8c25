// Package classify routes task text to synthesis families by substring
// matching. The Classifier interface exists so a better matcher (embeddings,
// rules engine) can replace keyword scanning without touching the
// synthesizers.
package classify

import "strings"

// Family identifies one keyword-triggered synthesis concern.
type Family string

const (
	FamilyAuth         Family = "auth"
	FamilyTask         Family = "task"
	FamilyComment      Family = "comment"
	FamilyAttachment   Family = "attachment"
	FamilyNotification Family = "notification"
	FamilyTeam         Family = "team"
	FamilyCategory     Family = "category"
	FamilyAudit        Family = "audit"
	FamilySharing      Family = "sharing"
	FamilyScheduling   Family = "scheduling"
	FamilyCleanup      Family = "cleanup"
	FamilyReport       Family = "report"
	FamilyBackup       Family = "backup"
	FamilyCommerce     Family = "commerce"
	FamilyOptimization Family = "optimization"
)

// Classifier decides which families a piece of task text activates.
type Classifier interface {
	// Matches reports whether text activates the given family.
	Matches(text string, family Family) bool
	// Families returns every family activated by text, in stable order.
	Families(text string) []Family
}

// Substring triggers per family. Stems are intentional ("shar" catches both
// "share" and "sharing", "collaborat" catches "collaborate"/"collaboration").
var keywords = map[Family][]string{
	FamilyAuth:         {"auth", "login", "user", "register", "password", "sign in", "signup"},
	FamilyTask:         {"task", "todo", "to-do", "assign", "workflow"},
	FamilyComment:      {"comment", "discuss", "repl", "thread"},
	FamilyAttachment:   {"attach", "upload", "file", "document"},
	FamilyNotification: {"notif", "alert", "remind", "email"},
	FamilyTeam:         {"team", "collaborat", "group", "member", "workspace"},
	FamilyCategory:     {"categor", "tag", "label", "organiz"},
	FamilyAudit:        {"audit", "history", "activity log", "track"},
	FamilySharing:      {"shar", "permission", "access control", "collaborat"},
	FamilyScheduling:   {"schedul", "cron", "daily", "weekly", "recurring", "remind", "cleanup", "report", "backup", "digest"},
	FamilyCleanup:      {"cleanup", "purge", "expire", "archiv"},
	FamilyReport:       {"report", "digest", "summary", "analytics"},
	FamilyBackup:       {"backup", "snapshot", "export"},
	FamilyCommerce:     {"shop", "product", "cart", "order", "payment", "commerce", "store"},
	FamilyOptimization: {"optimi", "performance", "cache", "scal", "database"},
}

// familyOrder is the stable evaluation order used by Families.
var familyOrder = []Family{
	FamilyAuth,
	FamilyTask,
	FamilyComment,
	FamilyAttachment,
	FamilyNotification,
	FamilyTeam,
	FamilyCategory,
	FamilyAudit,
	FamilySharing,
	FamilyScheduling,
	FamilyCleanup,
	FamilyReport,
	FamilyBackup,
	FamilyCommerce,
	FamilyOptimization,
}

// KeywordClassifier matches by lower-cased substring scan.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the default classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Matches implements Classifier.
func (c *KeywordClassifier) Matches(text string, family Family) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords[family] {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Families implements Classifier.
func (c *KeywordClassifier) Families(text string) []Family {
	lowered := strings.ToLower(text)
	matched := make([]Family, 0, 4)
	for _, family := range familyOrder {
		for _, kw := range keywords[family] {
			if strings.Contains(lowered, kw) {
				matched = append(matched, family)
				break
			}
		}
	}
	return matched
}
