package coins

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseIdentifiers splits a comma separated coin list into lowercase, trimmed ids.
// Empty tokens are dropped, input order and duplicates are kept.
func ParseIdentifiers(raw string) []string {
	result := []string{}
	if raw == "" {
		return result
	}

	for _, part := range strings.Split(raw, ",") {
		id := strings.ToLower(strings.TrimSpace(part))
		if id != "" {
			result = append(result, id)
		}
	}

	return result
}

// Unique removes duplicate ids keeping the first occurrence
func Unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// Capitalize upper-cases the first letter and lower-cases the rest ("bitcoin-cash" -> "Bitcoin-cash")
func Capitalize(id string) string {
	if id == "" {
		return id
	}
	first, size := utf8.DecodeRuneInString(id)
	return string(unicode.ToUpper(first)) + strings.ToLower(id[size:])
}
