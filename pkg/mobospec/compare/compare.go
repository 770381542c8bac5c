// Package compare decides, for one field across N selected boards, which
// values are best, which are outliers, and where each sits on a severity
// gradient. Verdicts are ephemeral: recomputed whenever the compared set
// changes, never stored.
package compare

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
	"github.com/am5hub/mobospec-go/pkg/mobospec/score"
)

// Engine compares field values across boards. Stateless and re-entrant.
type Engine struct {
	scorer *score.Scorer
}

// NewEngine returns an Engine using the given scorer and its lookup tables.
func NewEngine(scorer *score.Scorer) *Engine {
	return &Engine{scorer: scorer}
}

// CompareField classifies one field's values across the compared boards,
// returning one verdict per value, in order. It is a total function:
// malformed text degrades through the scorer's fallbacks, never errors.
func (e *Engine) CompareField(fieldName string, values []string) []models.Verdict {
	verdicts := make([]models.Verdict, len(values))

	// Blank and placeholder cells collapse to an empty sentinel. The
	// sentinel never equals a real value, but empties equal each other, so
	// an all-blank row is identical.
	norm := make([]string, len(values))
	for i, v := range values {
		norm[i] = normalizeCell(v)
	}

	if allEqual(norm) || e.ignored(fieldName) {
		for i := range verdicts {
			verdicts[i] = models.Verdict{Kind: models.VerdictIdentical}
		}
		return verdicts
	}

	scored := make([]*models.ScoredValue, len(values))
	anyNumeric := false
	for i, v := range values {
		if norm[i] == "" {
			continue
		}
		scored[i] = e.scorer.Score(fieldName, v)
		if scored[i] != nil && scored[i].IsNumeric {
			anyNumeric = true
		}
	}

	if anyNumeric {
		e.classifyNumeric(fieldName, scored, verdicts)
	} else {
		classifyCategorical(norm, verdicts)
	}
	return verdicts
}

// classifyNumeric ranks scores into best / gradient outliers, applying
// lower-is-better inversion and majority suppression. Suppression only fires
// when the strict majority score is itself an extreme; a majority sitting
// between the extremes still has every minority value highlighted around it,
// which keeps genuine outliers visible.
func (e *Engine) classifyNumeric(fieldName string, scored []*models.ScoredValue, verdicts []models.Verdict) {
	lowerBetter := e.lowerIsBetter(fieldName)

	var samples []float64
	counts := map[float64]int{}
	for _, sv := range scored {
		if sv == nil {
			continue
		}
		samples = append(samples, sv.Score)
		counts[sv.Score]++
	}
	if len(samples) == 0 {
		for i := range verdicts {
			verdicts[i] = models.Verdict{Kind: models.VerdictMissing}
		}
		return
	}

	minScore, _ := stats.Min(samples)
	maxScore, _ := stats.Max(samples)
	best, worst := maxScore, minScore
	if lowerBetter {
		best, worst = minScore, maxScore
	}

	majority, hasMajority := majorityScore(counts)
	suppress := hasMajority && (majority == best || majority == worst)

	// Gradient positions come from rank among the distinct scores present,
	// not from raw magnitude, so closely spaced scores stay visually
	// distinct from widely spaced ones.
	distinct := make([]float64, 0, len(counts))
	for v := range counts {
		distinct = append(distinct, v)
	}
	sort.Float64s(distinct)
	if !lowerBetter {
		reverse(distinct)
	}
	rankOf := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		rankOf[v] = i
	}

	for i, sv := range scored {
		if sv == nil {
			verdicts[i] = models.Verdict{Kind: models.VerdictMissing}
			continue
		}
		if suppress && sv.Score == majority {
			verdicts[i] = models.Verdict{Kind: models.VerdictIdentical}
			continue
		}
		if len(distinct) == 1 {
			// Single unique score left after suppression: neutral tier.
			verdicts[i] = models.Verdict{Kind: models.VerdictOutlierNumeric, Position: 0.5}
			continue
		}
		rank := rankOf[sv.Score]
		if rank == 0 {
			verdicts[i] = models.Verdict{Kind: models.VerdictBest}
			continue
		}
		verdicts[i] = models.Verdict{
			Kind:     models.VerdictOutlierNumeric,
			Rank:     rank,
			Position: float64(rank) / float64(len(distinct)-1),
		}
	}
}

// classifyCategorical flags every value differing from the textual majority.
// When no text repeats there is no consensus and every present value is an
// outlier.
func classifyCategorical(norm []string, verdicts []models.Verdict) {
	counts := map[string]int{}
	for _, v := range norm {
		if v != "" {
			counts[v]++
		}
	}
	majority, maxCount := "", 0
	for v, c := range counts {
		if c > maxCount || (c == maxCount && v < majority) {
			majority, maxCount = v, c
		}
	}

	for i, v := range norm {
		switch {
		case v == "":
			verdicts[i] = models.Verdict{Kind: models.VerdictMissing}
		case maxCount > 1 && v == majority:
			verdicts[i] = models.Verdict{Kind: models.VerdictIdentical}
		default:
			verdicts[i] = models.Verdict{Kind: models.VerdictOutlierCategorical}
		}
	}
}

// majorityScore returns the most frequent score, requiring a strict count
// above one. Ties resolve to the smaller score for determinism.
func majorityScore(counts map[float64]int) (float64, bool) {
	majority, maxCount := 0.0, 0
	for v, c := range counts {
		if c > maxCount || (c == maxCount && v < majority) {
			majority, maxCount = v, c
		}
	}
	return majority, maxCount > 1
}

func (e *Engine) ignored(fieldName string) bool {
	f := strings.ToLower(fieldName)
	for _, ig := range e.scorer.Tables().IgnoreFields {
		if ig != "" && strings.Contains(f, strings.ToLower(ig)) {
			return true
		}
	}
	return false
}

func (e *Engine) lowerIsBetter(fieldName string) bool {
	f := strings.ToLower(fieldName)
	for _, m := range e.scorer.Tables().LowerIsBetter {
		if m != "" && strings.Contains(f, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func normalizeCell(v string) string {
	t := strings.TrimSpace(v)
	if t == score.Placeholder {
		return ""
	}
	return t
}

func allEqual(vals []string) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[0] {
			return false
		}
	}
	return true
}

func reverse(v []float64) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
