package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"retailedge/domain/retail"
)

// Resolve maps every canonical role onto the best-matching column of the
// given header list, driven by the supplied rule table. Roles with no
// acceptable column are absent from the returned map; that is an ordinary
// outcome. Resolve never fails and is deterministic for a given header
// order: scoring ties are broken by keyword-group priority, then by table
// column order.
func Resolve(headers []string, rules []RoleRule) retail.ColumnRoleMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	mapping := make(retail.ColumnRoleMap, len(rules))
	for _, rule := range rules {
		if col, ok := resolveRole(headers, normalized, rule); ok {
			mapping[rule.Role] = col
		}
	}
	return mapping
}

// candidate scoring: exact keyword matches dominate substring matches,
// longer keywords dominate shorter ones, earlier keyword groups dominate
// later ones, earlier columns dominate later ones.
type candidate struct {
	colIdx   int
	groupIdx int
	matchLen int
	exact    bool
}

func (c candidate) beats(other candidate) bool {
	if c.exact != other.exact {
		return c.exact
	}
	if c.matchLen != other.matchLen {
		return c.matchLen > other.matchLen
	}
	if c.groupIdx != other.groupIdx {
		return c.groupIdx < other.groupIdx
	}
	return c.colIdx < other.colIdx
}

func resolveRole(headers, normalized []string, rule RoleRule) (string, bool) {
	best := candidate{colIdx: -1}

	for colIdx, col := range normalized {
		if col == "" || excluded(col, rule.Exclude) {
			continue
		}
		for groupIdx, group := range rule.Groups {
			for _, keyword := range group {
				if !strings.Contains(col, keyword) {
					continue
				}
				cand := candidate{
					colIdx:   colIdx,
					groupIdx: groupIdx,
					matchLen: len(keyword),
					exact:    col == keyword,
				}
				if best.colIdx == -1 || cand.beats(best) {
					best = cand
				}
			}
		}
	}

	if best.colIdx >= 0 {
		return headers[best.colIdx], true
	}

	switch rule.Fallback {
	case FallbackFirstColumn:
		if len(headers) > 0 {
			return headers[0], true
		}
	case FallbackSecondColumn:
		if len(headers) > 1 {
			return headers[1], true
		}
		if len(headers) > 0 {
			return headers[0], true
		}
	}
	return "", false
}

func excluded(col string, exclude []string) bool {
	for _, keyword := range exclude {
		if strings.Contains(col, keyword) {
			return true
		}
	}
	return false
}

// stripMarks removes combining diacritical marks after NFD decomposition,
// so accented Greek headers ("Κωδικός") match the unaccented keyword table.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader lowercases a header, strips diacritics, and drops
// everything that is not a letter or digit, so "Value Sales",
// "value_sales" and " VALUE-SALES " all normalize to "valuesales".
// Non-ASCII letters are kept; exports with Greek headers must still match
// the localized keyword groups.
func NormalizeHeader(header string) string {
	lowered := strings.ToLower(header)
	if stripped, _, err := transform.String(stripMarks, lowered); err == nil {
		lowered = stripped
	}
	var b strings.Builder
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
