package score

import (
	"sort"
	"strings"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// normalize case-folds text, strips everything but letters and digits, and
// optionally expands known abbreviations. Both haystack text and controller
// identifiers go through the same fold so substring matching is stable
// against punctuation and spacing differences.
func normalize(text string, abbrevs map[string]string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	n := b.String()
	if len(abbrevs) > 0 {
		// Sorted application keeps the expansion deterministic.
		keys := make([]string, 0, len(abbrevs))
		for k := range abbrevs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n = strings.ReplaceAll(n, k, abbrevs[k])
		}
	}
	return n
}

// Controllers finds every known controller identifier whose normalized form
// is a substring of the normalized text, then keeps only maximal matches: a
// match strictly contained in another match's normalized form is discarded,
// so "RTL8111" never fires inside a cell that names an "RTL8111H". The
// returned names are table keys, sorted.
func (s *Scorer) Controllers(text string) []string {
	n := normalize(text, s.tables.Abbreviations)

	type match struct {
		name string
		norm string
	}
	var matches []match
	for name := range s.tables.ControllerSpeeds {
		nn := normalize(name, nil)
		if nn != "" && strings.Contains(n, nn) {
			matches = append(matches, match{name: name, norm: nn})
		}
	}

	var names []string
	for _, m := range matches {
		contained := false
		for _, other := range matches {
			if m.norm != other.norm && strings.Contains(other.norm, m.norm) {
				contained = true
				break
			}
		}
		if !contained {
			names = append(names, m.name)
		}
	}
	sort.Strings(names)
	return names
}

// parseControllers sums the table speeds of every distinct controller named
// in the cell. Unknown identifiers contribute nothing; a cell naming no
// known controller scores zero.
func (s *Scorer) parseControllers(text string) (models.ScoredValue, bool) {
	names := s.Controllers(text)
	total := 0.0
	for _, name := range names {
		total += s.tables.ControllerSpeeds[name]
	}
	return models.ScoredValue{Text: text, Score: total, IsNumeric: true, Tags: names}, true
}
