package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/glyph-lang/patternc/internal/choice"
	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/decider"
	"github.com/glyph-lang/patternc/internal/dtree"
	"github.com/glyph-lang/patternc/internal/specfmt"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// runCompile loads the branch-spec file at path and prints the
// requested pipeline stage: the decision tree, the fused decider, or
// (format "ir") the choice-annotated decider that
// internal/codegen.OptimizeWhen lowers to IR. runCompile does not call
// OptimizeWhen, so no lowered IR is printed.
func runCompile(path, format string) error {
	doc, err := specfmt.LoadYAML(path)
	if err != nil {
		return err
	}
	branches, bodies, err := doc.Decode()
	if err != nil {
		return err
	}

	tree := dtree.Compile(branches)
	switch format {
	case "tree":
		fmt.Println(green("decision tree:"))
		fmt.Println(tree)
		return nil

	case "decider":
		rawDecider := decider.TreeToDecider(tree)
		fmt.Println(cyan("decider:"))
		fmt.Println(rawDecider)
		return nil

	case "ir":
		bodyMap := make(map[int]core.Expr, len(bodies))
		for i, b := range bodies {
			bodyMap[i] = b
		}
		rawDecider := decider.TreeToDecider(tree)
		counts := decider.CountTargets(rawDecider)
		choices, _ := choice.Assign(counts, bodyMap)
		choiceDecider := choice.InsertChoices(rawDecider, choices)
		fmt.Println(green("choice-annotated decider (IR lowering runs from here via internal/codegen.OptimizeWhen):"))
		fmt.Println(choiceDecider)
		return nil

	default:
		return fmt.Errorf("unknown --format %q: want tree, decider, or ir", format)
	}
}
