// Package dtree builds the decision tree from a list of (pattern, goal)
// branches: path selection, edge gathering, and recursive refinement
// (spec.md §4.2–§4.4). The output still has redundancies a naive switch
// would duplicate; internal/decider collapses those into chains/fan-outs.
package dtree

import (
	"fmt"
	"strings"

	"github.com/glyph-lang/patternc/internal/pattern"
)

// DecisionTree is either a terminal Match or a Decision node.
type DecisionTree interface {
	String() string
	treeNode()
}

// Match is a terminal: the first fully-satisfied branch's goal label.
type Match struct {
	Goal int
}

func (Match) treeNode() {}
func (m Match) String() string { return fmt.Sprintf("Match(%d)", m.Goal) }

// Edge pairs a test with the subtree to take when it passes.
type Edge struct {
	Test pattern.Test
	Tree DecisionTree
}

// Decision tests the value at Path against each of Edges in turn; if
// none match and Default is present, it is taken as a catch-all.
type Decision struct {
	Path    pattern.Path
	Edges   []Edge
	Default DecisionTree // nil when absent
}

func (Decision) treeNode() {}
func (d Decision) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Decision(path=%s, edges=[", d.Path)
	for i, e := range d.Edges {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s->%s", e.Test, e.Tree)
	}
	b.WriteString("]")
	if d.Default != nil {
		fmt.Fprintf(&b, ", default=%s", d.Default)
	}
	b.WriteString(")")
	return b.String()
}
