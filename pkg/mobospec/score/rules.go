package score

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

var (
	reAmps        = regexp.MustCompile(`(?i)(\d+)\s*A\b`)
	reAggregate   = regexp.MustCompile(`^(\d+)\s*(?:\(\s*\+\s*(\d+)\s*\))?$`)
	reAggAnywhere = regexp.MustCompile(`(\d+)\s*\(\s*\+\s*(\d+)\s*\)`)
	reSlotGroup   = regexp.MustCompile(`(?i)(\d+)\s*\*\s*(\d+)\s*x\s*(\d+)`)
	reSpeedGroup  = regexp.MustCompile(`(?i)(\d+)\s*\*\s*(\d+(?:\.\d+)?)\s*g`)
	reLaneGroup   = regexp.MustCompile(`(?i)(\d+)\s*x\s*(\d+)`)
	rePhases      = regexp.MustCompile(`^\d+(?:\s*\+\s*\d+)+$`)
	reBareInt     = regexp.MustCompile(`^\d+$`)
	reLoneByX     = regexp.MustCompile(`^(\d+)\s*x\s*(\d+)$`)
	reFirstInt    = regexp.MustCompile(`\d+`)
)

// parseWireless scores wireless cells as generation tier plus vendor bonus.
// Generation markers are checked most specific first so a Wi-Fi 7 cell is
// never shadowed by an older marker that also appears in the text. A cell
// with a physical-slot marker but no generation scores a fixed low value;
// total absence scores zero.
func (s *Scorer) parseWireless(text string) (models.ScoredValue, bool) {
	n := normalize(text, nil)

	var tags []string
	base := 0.0
	for _, g := range s.tables.WirelessGenerations {
		if strings.Contains(n, g.Marker) {
			base = g.Score
			tags = append(tags, g.Marker)
			break
		}
	}

	if base == 0 {
		for _, m := range s.tables.WirelessSlotMarkers {
			if strings.Contains(n, m) {
				return models.ScoredValue{
					Text: text, Score: s.tables.WirelessSlotScore,
					IsNumeric: true, Tags: []string{"slot-only"},
				}, true
			}
		}
		return models.ScoredValue{Text: text, Score: 0, IsNumeric: true}, true
	}

	for _, v := range s.tables.WirelessVendors {
		if wirelessVendorMatches(n, v.Vendor, v.Aliases) {
			base += v.Bonus
			tags = append(tags, v.Vendor)
			break
		}
	}

	return models.ScoredValue{Text: text, Score: base, IsNumeric: true, Tags: tags}, true
}

func wirelessVendorMatches(normText, vendor string, aliases []string) bool {
	if strings.Contains(normText, normalize(vendor, nil)) {
		return true
	}
	for _, a := range aliases {
		if strings.Contains(normText, normalize(a, nil)) {
			return true
		}
	}
	return false
}

// parseVRMComponent scores power-stage cells: tier 2 for premium markers,
// 1 for mid-tier, 0 otherwise, plus the first amperage figure. The tier
// dominates via score = tier*1000 + amps.
func (s *Scorer) parseVRMComponent(text string) (models.ScoredValue, bool) {
	n := normalize(text, nil)

	tier := 0.0
	switch {
	case containsAnyNorm(n, s.tables.VRMPremiumMarkers):
		tier = 2
	case containsAnyNorm(n, s.tables.VRMMidMarkers):
		tier = 1
	}

	amps := 0.0
	if m := reAmps.FindStringSubmatch(text); m != nil {
		amps, _ = strconv.ParseFloat(m[1], 64)
	}

	return models.ScoredValue{Text: text, Score: tier*1000 + amps, IsNumeric: true}, true
}

// parseAggregateCount parses "onboard(+extra)" counts. The total dominates
// and the onboard count breaks ties between equal totals:
// score = total*100 + onboard. Bare integers are "N(+0)".
func (s *Scorer) parseAggregateCount(text string) (models.ScoredValue, bool) {
	m := reAggregate.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		m = reAggAnywhere.FindStringSubmatch(text)
		if m == nil {
			return models.ScoredValue{}, false
		}
	}
	onboard, _ := strconv.ParseFloat(m[1], 64)
	extra := 0.0
	if len(m) > 2 && m[2] != "" {
		extra, _ = strconv.ParseFloat(m[2], 64)
	}
	total := onboard + extra
	return models.ScoredValue{Text: text, Score: total*100 + onboard, IsNumeric: true}, true
}

// parseSlotBandwidth parses repeated "count*genxlanes" groups. The total
// slot count always dominates generation/lane differences:
// score = slots*1e6 + sum(count * (gen*100 + lanes)).
func (s *Scorer) parseSlotBandwidth(text string) (models.ScoredValue, bool) {
	groups := reSlotGroup.FindAllStringSubmatch(text, -1)
	if len(groups) == 0 {
		return models.ScoredValue{}, false
	}
	slots, band := 0.0, 0.0
	for _, g := range groups {
		count, _ := strconv.ParseFloat(g[1], 64)
		gen, _ := strconv.ParseFloat(g[2], 64)
		lanes, _ := strconv.ParseFloat(g[3], 64)
		slots += count
		band += count * (gen*100 + lanes)
	}
	return models.ScoredValue{Text: text, Score: slots*1_000_000 + band, IsNumeric: true}, true
}

// parseSpeedAggregate parses repeated "count*speedg" groups and sums
// count*speed across them.
func (s *Scorer) parseSpeedAggregate(text string) (models.ScoredValue, bool) {
	groups := reSpeedGroup.FindAllStringSubmatch(text, -1)
	if len(groups) == 0 {
		return models.ScoredValue{}, false
	}
	total := 0.0
	for _, g := range groups {
		count, _ := strconv.ParseFloat(g[1], 64)
		speed, _ := strconv.ParseFloat(g[2], 64)
		total += count * speed
	}
	return models.ScoredValue{Text: text, Score: total, IsNumeric: true}, true
}

// orderedSlotWeights weight the first four comma-separated slot groups so an
// earlier slot's value always outranks any combination of later slots:
// lexicographic-by-position comparison via integer weighting.
var orderedSlotWeights = [4]float64{1_000_000_000, 1_000_000, 1_000, 1}

// parseOrderedSlots parses comma-separated "genxlanes" groups where order is
// significant (physical slot order on the board).
func (s *Scorer) parseOrderedSlots(text string) (models.ScoredValue, bool) {
	parts := strings.Split(text, ",")
	score := 0.0
	matched := false
	for i, part := range parts {
		if i >= len(orderedSlotWeights) {
			break
		}
		m := reLaneGroup.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		matched = true
		gen, _ := strconv.ParseFloat(m[1], 64)
		lanes, _ := strconv.ParseFloat(m[2], 64)
		score += (gen*100 + lanes) * orderedSlotWeights[i]
	}
	if !matched {
		return models.ScoredValue{}, false
	}
	return models.ScoredValue{Text: text, Score: score, IsNumeric: true}, true
}

// parsePhases sums "A+B+C" phase layouts; a bare integer counts as itself.
func (s *Scorer) parsePhases(text string) (models.ScoredValue, bool) {
	t := strings.TrimSpace(text)
	if reBareInt.MatchString(t) {
		v, _ := strconv.ParseFloat(t, 64)
		return models.ScoredValue{Text: text, Score: v, IsNumeric: true}, true
	}
	if !rePhases.MatchString(t) {
		return models.ScoredValue{}, false
	}
	total := 0.0
	for _, p := range strings.Split(t, "+") {
		v, _ := strconv.ParseFloat(strings.TrimSpace(p), 64)
		total += v
	}
	return models.ScoredValue{Text: text, Score: total, IsNumeric: true}, true
}

// parseGeneric is the fallback extractor: a bare integer scores as itself,
// "A+B[+C...]" sums its parts, a lone "AxB" scores as A, otherwise the first
// embedded integer is used. Text with no integer at all is categorical.
func parseGeneric(text string) models.ScoredValue {
	t := strings.TrimSpace(text)
	switch {
	case reBareInt.MatchString(t):
		v, _ := strconv.ParseFloat(t, 64)
		return models.ScoredValue{Text: text, Score: v, IsNumeric: true}
	case rePhases.MatchString(t):
		total := 0.0
		for _, p := range strings.Split(t, "+") {
			v, _ := strconv.ParseFloat(strings.TrimSpace(p), 64)
			total += v
		}
		return models.ScoredValue{Text: text, Score: total, IsNumeric: true}
	}
	if m := reLoneByX.FindStringSubmatch(t); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return models.ScoredValue{Text: text, Score: v, IsNumeric: true}
	}
	if m := reFirstInt.FindString(t); m != "" {
		v, _ := strconv.ParseFloat(m, 64)
		return models.ScoredValue{Text: text, Score: v, IsNumeric: true}
	}
	return models.ScoredValue{Text: text, Score: 0, IsNumeric: false}
}

func containsAnyNorm(normText string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(normText, normalize(m, nil)) {
			return true
		}
	}
	return false
}
