package domain

import (
	"regexp"
	"strings"
)

// broadTerms are query words that tend to describe widely covered events,
// where many outlets publish near-identical stories and deduplication pays.
var broadTerms = []string{
	"layoffs",
	"merger",
	"acquisition",
	"funding",
	"investment",
	"policy",
	"regulation",
	"crisis",
	"shortage",
	"disruption",
	"fire",
	"flood",
	"earthquake",
	"storm",
	"accident",
	"breakthrough",
	"launch",
	"partnership",
	"deal",
}

// queryTermPattern matches purely alphabetic words. Word boundaries keep
// alphanumeric tokens like "covid19" from contributing a partial match.
var queryTermPattern = regexp.MustCompile(`\b[a-zA-Z]+\b`)

// booleanOperators are query tokens that carry no topical meaning.
var booleanOperators = map[string]bool{
	"and":  true,
	"or":   true,
	"not":  true,
	"near": true,
}

// ShouldUseClustering guesses whether clustering should be enabled for a
// query/page-size combination when the caller does not specify. Advisory
// only; callers may override explicitly.
//
// First match wins:
//  1. Large result sets always benefit from deduplication.
//  2. Broad-event vocabulary in the query suggests duplicate coverage.
//  3. Short queries (<=3 meaningful terms) tend to return many near
//     duplicates.
func ShouldUseClustering(query string, pageSize int) bool {
	if pageSize >= 50 {
		return true
	}

	queryLower := strings.ToLower(query)
	for _, term := range broadTerms {
		if strings.Contains(queryLower, term) {
			return true
		}
	}

	meaningful := 0
	for _, term := range queryTermPattern.FindAllString(query, -1) {
		if !booleanOperators[strings.ToLower(term)] {
			meaningful++
		}
	}
	return meaningful <= 3
}
