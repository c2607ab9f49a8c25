package schema

import "strings"

// Verb and filler tokens stripped from a task title before deriving a generic
// entity name.
var strippedTokens = map[string]bool{
	"build": true, "create": true, "implement": true, "develop": true,
	"design": true, "setup": true, "set": true, "add": true, "make": true,
	"support": true, "enable": true, "integrate": true, "configure": true,
	"write": true, "define": true, "establish": true,
	"a": true, "an": true, "the": true, "for": true, "with": true,
	"and": true, "of": true, "to": true, "up": true, "new": true,
	"system": true, "feature": true, "functionality": true,
}

// GenericTableName derives a table name from a task title by removing a fixed
// set of verb tokens and pluralizing the first remaining word. The heuristic
// is deliberately naive; callers depend on the literal "entities" fallback
// when nothing survives stripping.
func GenericTableName(title string) string {
	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.Trim(word, ".,:;!?()[]\"'")
		if word == "" || strippedTokens[word] {
			continue
		}
		return pluralize(word)
	}
	return "entities"
}

func pluralize(word string) string {
	switch {
	case strings.HasSuffix(word, "s"),
		strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"),
		strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
