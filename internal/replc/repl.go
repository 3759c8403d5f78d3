// Package replc is an interactive front end for the pattern-match
// compiler, modeled directly on the teacher's internal/repl: a
// liner-backed line editor with history, colorized output, and a
// `:command` surface, driving internal/dtree, internal/decider and
// internal/choice for whatever branch list the user types (the codegen
// stage is not run).
package replc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/glyph-lang/patternc/internal/choice"
	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/decider"
	"github.com/glyph-lang/patternc/internal/dtree"
	"github.com/glyph-lang/patternc/internal/pattern"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL accumulates branch lines until a blank line, then compiles and
// prints the tree/decider/choice stages for the accumulated list.
type REPL struct {
	version string
	pending []pendingBranch
	history []string
}

type pendingBranch struct {
	Pattern pattern.Pattern
	Label   string
}

// New creates a REPL reporting the given version string in its banner.
func New(version string) *REPL {
	if version == "" {
		version = "dev"
	}
	return &REPL{version: version}
}

// Start runs the read-eval-print loop against out, reading lines from a
// liner instance with history persisted under the OS temp directory.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".patternc_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(l string) (c []string) {
		if strings.HasPrefix(l, ":") {
			for _, cmd := range []string{":help", ":quit", ":show", ":clear"} {
				if strings.HasPrefix(cmd, l) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	fmt.Fprintf(out, "%s %s\n", bold("patternc"), bold(r.version))
	fmt.Fprintln(out, dim("Type a branch as `<pattern> => <label>`, blank line to compile, :help for commands"))

	for {
		input, err := line.Prompt(r.prompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		line.AppendHistory(input)
		r.history = append(r.history, input)

		switch {
		case trimmed == "":
			r.compileAndPrint(out)
		case strings.HasPrefix(trimmed, ":quit"), strings.HasPrefix(trimmed, ":q"):
			fmt.Fprintln(out, green("Goodbye!"))
			if f, ferr := os.Create(historyFile); ferr == nil {
				_, _ = line.WriteHistory(f)
				f.Close()
			}
			return
		case strings.HasPrefix(trimmed, ":clear"):
			r.pending = nil
			fmt.Fprintln(out, dim("cleared pending branches"))
		case strings.HasPrefix(trimmed, ":help"):
			r.printHelp(out)
		case strings.HasPrefix(trimmed, ":show"):
			r.printPending(out)
		default:
			p, label, err := ParseLine(trimmed)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
				continue
			}
			r.pending = append(r.pending, pendingBranch{Pattern: p, Label: label})
		}
	}

	if f, ferr := os.Create(historyFile); ferr == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) prompt() string {
	if len(r.pending) == 0 {
		return "patternc> "
	}
	return fmt.Sprintf("patternc[%d]> ", len(r.pending))
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, "  <pattern> => <label>   add a branch")
	fmt.Fprintln(out, "  (blank line)           compile pending branches")
	fmt.Fprintln(out, "  :show                  list pending branches")
	fmt.Fprintln(out, "  :clear                 discard pending branches")
	fmt.Fprintln(out, "  :quit                  exit")
}

func (r *REPL) printPending(out io.Writer) {
	if len(r.pending) == 0 {
		fmt.Fprintln(out, dim("(no pending branches)"))
		return
	}
	for i, b := range r.pending {
		fmt.Fprintf(out, "  %d: %s => %s\n", i, b.Pattern, b.Label)
	}
}

// compileAndPrint runs the full pipeline over the pending branch list
// and prints the decision tree (yellow), the fused decider (cyan), and
// the choice-annotated decider (green), mirroring the teacher's use of
// color to separate pipeline stages in REPL output.
func (r *REPL) compileAndPrint(out io.Writer) {
	if len(r.pending) == 0 {
		fmt.Fprintln(out, dim("(nothing to compile)"))
		return
	}

	branches := make([]pattern.Branch, len(r.pending))
	bodies := make(map[int]core.Expr, len(r.pending))
	for i, b := range r.pending {
		branches[i] = pattern.NewBranch(i, b.Pattern)
		bodies[i] = &core.Sym{Name: b.Label}
	}

	tree := dtree.Compile(branches)
	fmt.Fprintln(out, yellow("decision tree:"))
	fmt.Fprintln(out, " ", tree)

	rawDecider := decider.TreeToDecider(tree)
	fmt.Fprintln(out, cyan("decider:"))
	fmt.Fprintln(out, " ", rawDecider)

	counts := decider.CountTargets(rawDecider)
	choices, jumps := choice.Assign(counts, bodies)
	choiceDecider := choice.InsertChoices(rawDecider, choices)
	fmt.Fprintln(out, green("choice-annotated decider:"))
	fmt.Fprintln(out, " ", choiceDecider)
	if len(jumps) > 0 {
		fmt.Fprintf(out, "%s %d out-of-line join point(s)\n", dim("join points:"), len(jumps))
	}

	r.pending = nil
}
