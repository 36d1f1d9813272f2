package engine

import "regexp"

// Token grammars. Both forms are delimited by double braces, matched
// non-overlapping and left to right, with no nesting. The inline form names
// an item and a field plus an optional ':'-separated modifier chain; the
// variable form names a single variable.
var (
	inlinePattern   = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\.([A-Za-z0-9_]+)(?::([^{}]*))?\}\}`)
	variablePattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)
)

// inlineToken is one match of the inline grammar.
type inlineToken struct {
	// Text is the full token, braces included, kept verbatim for the
	// leave-as-is miss policy.
	Text   string
	ItemID string
	Field  string
	// Chain is the modifier chain text after the first ':', empty when the
	// token has no modifiers.
	Chain string
}

// parseInlineToken re-parses a full inline token match into its parts.
func parseInlineToken(text string) inlineToken {
	groups := inlinePattern.FindStringSubmatch(text)
	return inlineToken{
		Text:   text,
		ItemID: groups[1],
		Field:  groups[2],
		Chain:  groups[3],
	}
}

// variableNames returns the distinct variable names referenced by a
// variable-map literal, in order of first appearance.
func variableNames(literal string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, groups := range variablePattern.FindAllStringSubmatch(literal, -1) {
		name := groups[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
