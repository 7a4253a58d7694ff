package ingredient

import (
	"regexp"
	"strings"
)

// tokenSplitter breaks a name on whitespace, comma and parenthesis runs.
var tokenSplitter = regexp.MustCompile(`[\s(),]+`)

// Tokenize lower-cases a search name and splits it into tokens, discarding
// tokens of length two or less. Short connector words ("of", "in") carry no
// matching signal and only produce false positives.
func Tokenize(name string) []string {
	parts := tokenSplitter.Split(strings.ToLower(strings.TrimSpace(name)), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) > 2 {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Match finds the candidate name best matching a free-text search name and
// returns its index, or -1 when nothing matches. Names from AI generation or
// recipe import rarely equal catalog spelling exactly ("boneless chicken
// breast" vs "chicken breast"), so matching is tiered, trading precision for
// recall:
//
//  1. case-insensitive full-string equality
//  2. candidate contains every search token as a substring
//  3. candidate contains at least one search token longer than three chars
//  4. bidirectional full-string containment
//
// The first tier producing a result wins; within a tier the earliest
// candidate wins, which keeps results deterministic for a stable input
// order. No-match is a normal business outcome, not an error.
func Match(searchName string, candidates []string) int {
	search := strings.ToLower(strings.TrimSpace(searchName))
	if search == "" {
		return -1
	}

	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(strings.TrimSpace(c))
	}

	for i, c := range lowered {
		if c == search {
			return i
		}
	}

	tokens := Tokenize(search)
	if len(tokens) > 0 {
		for i, c := range lowered {
			if containsAll(c, tokens) {
				return i
			}
		}
		for i, c := range lowered {
			if containsAnyLong(c, tokens) {
				return i
			}
		}
	}

	for i, c := range lowered {
		if c == "" {
			continue
		}
		if strings.Contains(search, c) || strings.Contains(c, search) {
			return i
		}
	}

	return -1
}

// FindMatch runs Match over a catalog slice and returns the matched entry,
// or nil when the ingredient is not in the catalog.
func FindMatch(searchName string, candidates []Ingredient) *Ingredient {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	if idx := Match(searchName, names); idx >= 0 {
		return &candidates[idx]
	}
	return nil
}

func containsAll(name string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(name, tok) {
			return false
		}
	}
	return true
}

func containsAnyLong(name string, tokens []string) bool {
	for _, tok := range tokens {
		if len(tok) > 3 && strings.Contains(name, tok) {
			return true
		}
	}
	return false
}
