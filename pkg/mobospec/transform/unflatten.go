// Package transform converts between flat pipe-keyed records and nested
// spec trees, and builds the header navigation structure.
package transform

import (
	"regexp"
	"sort"
	"strings"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

var newlines = regexp.MustCompile(`\s*\n+\s*`)

// CleanValue trims a scalar value and collapses internal newlines to single
// spaces. Applied at unflatten time so flat records keep the raw text.
func CleanValue(s string) string {
	return strings.TrimSpace(newlines.ReplaceAllString(s, " "))
}

// Collision records a flat key that could not be placed cleanly in the
// nested tree: either its value overwrote an earlier leaf, or an intermediate
// segment was already a leaf and had to become a subtree. Unreachable when
// column paths are unique upstream, but never a crash.
type Collision struct {
	// Key is the flat key being inserted.
	Key string
	// Segment is the path segment where the collision happened.
	Segment string
}

// Unflatten splits each flat key on the path delimiter and builds the nested
// record. Values are normalized via CleanValue. Collisions are last-write-
// wins and reported, not fatal. Keys are inserted in sorted order so the
// result is deterministic regardless of map iteration.
func Unflatten(flat models.FlatRecord) (models.NestedRecord, []Collision) {
	nested := make(models.NestedRecord, len(flat))
	var collisions []Collision

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts := strings.Split(key, models.PathDelimiter)
		cur := nested
		for _, part := range parts[:len(parts)-1] {
			next, ok := cur[part]
			if !ok {
				child := make(models.NestedRecord)
				cur[part] = child
				cur = child
				continue
			}
			child, ok := next.(models.NestedRecord)
			if !ok {
				// Key was already a leaf; replace it with a subtree.
				collisions = append(collisions, Collision{Key: key, Segment: part})
				child = make(models.NestedRecord)
				cur[part] = child
			}
			cur = child
		}
		last := parts[len(parts)-1]
		if prev, ok := cur[last]; ok {
			if _, isTree := prev.(models.NestedRecord); isTree {
				collisions = append(collisions, Collision{Key: key, Segment: last})
			}
		}
		cur[last] = CleanValue(flat[key])
	}

	return nested, collisions
}

// Flatten is the inverse of Unflatten: it walks the nested record and joins
// segment names with the path delimiter. Together with Unflatten it obeys
// the round-trip law flatten(unflatten(r)) == normalize(r).
func Flatten(nested models.NestedRecord) models.FlatRecord {
	flat := make(models.FlatRecord)
	flattenInto(flat, "", nested)
	return flat
}

func flattenInto(flat models.FlatRecord, prefix string, node models.NestedRecord) {
	for name, val := range node {
		key := name
		if prefix != "" {
			key = prefix + models.PathDelimiter + name
		}
		switch v := val.(type) {
		case models.NestedRecord:
			flattenInto(flat, key, v)
		case string:
			flat[key] = v
		}
	}
}
