// Package normalize canonicalizes user-entered values before they are stored
// or compared.
package normalize

import "strings"

// Username trims surrounding whitespace and lowercases. Usernames are unique
// on this form, so "Alice" and " alice " name the same account.
func Username(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// URL trims surrounding whitespace.
func URL(s string) string {
	return strings.TrimSpace(s)
}
