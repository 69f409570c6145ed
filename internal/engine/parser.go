package engine

import "strings"

// Parser normalizes raw query text. Parsing is simulated: the text is
// lower-cased so cache lookups are uniform regardless of input casing.
type Parser struct{}

// Parse returns the normalized form of query.
func (Parser) Parse(query string) string {
	return strings.ToLower(query)
}
