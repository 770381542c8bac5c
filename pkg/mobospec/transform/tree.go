package transform

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/am5hub/mobospec-go/pkg/mobospec/config"
	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// BuildHeaderTree inserts every column path into a shared tree, deduplicating
// shared prefixes: two leaves under "General" share one "General" node. The
// result drives sidebar navigation and collapsed section rendering.
func BuildHeaderTree(cols []models.ColumnPath) []*models.HeaderNode {
	var tree []*models.HeaderNode

	for _, col := range cols {
		full := append(append([]string(nil), col.Path...), col.Name)
		level := &tree
		for i, part := range full {
			isLeaf := i == len(full)-1
			node := findNode(*level, part)
			if node == nil {
				node = &models.HeaderNode{Name: part}
				*level = append(*level, node)
			}
			if isLeaf {
				// A node created earlier as a parent can still carry the
				// leaf key for its own column.
				node.Key = col.Key
			} else {
				level = &node.Children
			}
		}
	}

	return tree
}

func findNode(level []*models.HeaderNode, name string) *models.HeaderNode {
	for _, n := range level {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// AnnotateSummaries returns a deep copy of the tree with summary keys
// attached: for every section named in summaries, the child leaf matching the
// configured feature name contributes its key as the section's collapsed-view
// summary. The shared tree is never mutated.
func AnnotateSummaries(tree []*models.HeaderNode, summaries map[string]config.Summary) ([]*models.HeaderNode, error) {
	var copied []*models.HeaderNode
	if err := deepcopy.Copy(&copied, tree); err != nil {
		return nil, err
	}
	annotate(copied, summaries)
	return copied, nil
}

func annotate(nodes []*models.HeaderNode, summaries map[string]config.Summary) {
	for _, node := range nodes {
		if s, ok := summaries[node.Name]; ok {
			for _, child := range node.Children {
				if child.Name == s.Feature && child.Key != "" {
					node.SummaryKey = child.Key
					node.SummaryLabel = s.Label
					break
				}
			}
		}
		annotate(node.Children, summaries)
	}
}
