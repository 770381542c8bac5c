// Package score converts inconsistent free-text spec values into comparable
// numeric scores under field-specific semantics. Dispatch is an ordered rule
// chain: the first rule whose predicate matches the field display name wins,
// and unmatched fields fall back to a generic extractor. Every function here
// is total over its input domain; malformed text degrades, it never errors.
package score

import (
	"sort"
	"strings"

	"github.com/am5hub/mobospec-go/pkg/mobospec/config"
	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// Placeholder is the cell text treated as absent, alongside blank.
const Placeholder = "-"

// Scorer evaluates field values against the configured lookup tables.
// Stateless after construction; safe for concurrent use.
type Scorer struct {
	tables config.Tables
	rules  []rule
	// rankFields caches the categorical rank table keys in sorted order so
	// override matching is deterministic.
	rankFields []string
}

type rule struct {
	name  string
	match func(field string) bool
	parse func(s *Scorer, text string) (models.ScoredValue, bool)
}

// New returns a Scorer over the given lookup tables.
func New(tables config.Tables) *Scorer {
	s := &Scorer{tables: tables}
	for f := range tables.CategoricalRanks {
		s.rankFields = append(s.rankFields, f)
	}
	sort.Strings(s.rankFields)
	s.rules = []rule{
		{
			// Named-component lookup fields: LAN / controller lists.
			name: "controllers",
			match: func(f string) bool {
				return strings.Contains(f, "controller") ||
					(strings.Contains(f, "lan") && !strings.Contains(f, "lane"))
			},
			parse: (*Scorer).parseControllers,
		},
		{
			name: "wireless",
			match: func(f string) bool {
				return strings.Contains(f, "wi-fi") || strings.Contains(f, "wifi") ||
					strings.Contains(f, "wireless") || strings.Contains(f, "bluetooth")
			},
			parse: (*Scorer).parseWireless,
		},
		{
			name: "vrm-component",
			match: func(f string) bool {
				return strings.Contains(f, "mosfet") || strings.Contains(f, "power stage")
			},
			parse: (*Scorer).parseVRMComponent,
		},
		{
			// "5(+2)" style onboard(+extra) counts.
			name:  "aggregate-count",
			match: func(f string) bool { return strings.Contains(f, "total") },
			parse: (*Scorer).parseAggregateCount,
		},
		{
			// Repeated "count*genxlanes" M.2 slot groups.
			name:  "slot-bandwidth",
			match: func(f string) bool { return strings.Contains(f, "m.2") },
			parse: (*Scorer).parseSlotBandwidth,
		},
		{
			// Repeated "count*speedg" groups.
			name: "speed-aggregate",
			match: func(f string) bool {
				return strings.Contains(f, "ethernet") || strings.Contains(f, "speed")
			},
			parse: (*Scorer).parseSpeedAggregate,
		},
		{
			// Comma-separated "genxlanes" groups, order-significant.
			name: "ordered-slots",
			match: func(f string) bool {
				return strings.Contains(f, "electrical") || strings.Contains(f, "lanes")
			},
			parse: (*Scorer).parseOrderedSlots,
		},
		{
			// "16+2+1" phase layouts.
			name: "phases",
			match: func(f string) bool {
				return strings.Contains(f, "phase") || strings.Contains(f, "configuration")
			},
			parse: (*Scorer).parsePhases,
		},
	}
	return s
}

// Tables returns the lookup tables the scorer was built with.
func (s *Scorer) Tables() config.Tables {
	return s.tables
}

// Score evaluates one field value. It returns nil for blank or placeholder
// text. The categorical rank table overrides the rule chain entirely for
// fields it names; otherwise the first matching rule wins and unmatched
// fields use the generic extractor.
func (s *Scorer) Score(fieldName, rawText string) *models.ScoredValue {
	text := strings.TrimSpace(rawText)
	if text == "" || text == Placeholder {
		return nil
	}

	if sv, ok := s.categoricalRank(fieldName, text); ok {
		return &sv
	}

	field := strings.ToLower(fieldName)
	for _, r := range s.rules {
		if !r.match(field) {
			continue
		}
		if sv, ok := r.parse(s, text); ok {
			return &sv
		}
		break // rule matched the field but not the text: fall through
	}

	sv := parseGeneric(text)
	return &sv
}

// categoricalRank applies the field-independent rank table: exact text
// lookup first, then case-insensitive, else no override.
func (s *Scorer) categoricalRank(fieldName, text string) (models.ScoredValue, bool) {
	field := strings.ToLower(fieldName)
	for _, sub := range s.rankFields {
		if !strings.Contains(field, strings.ToLower(sub)) {
			continue
		}
		ranks := s.tables.CategoricalRanks[sub]
		if rank, ok := ranks[text]; ok {
			return models.ScoredValue{Text: text, Score: rank, IsNumeric: true, Tags: []string{"rank"}}, true
		}
		for k, rank := range ranks {
			if strings.EqualFold(k, text) {
				return models.ScoredValue{Text: text, Score: rank, IsNumeric: true, Tags: []string{"rank"}}, true
			}
		}
	}
	return models.ScoredValue{}, false
}
