// Package specfmt is a toy YAML/JSON front end for the CLI demo: it
// decodes a human-authored list of branches into
// internal/pattern.Pattern trees and internal/core.Expr body
// placeholders. It is not a surface-syntax parser or type checker —
// those are out of scope — it exists only to give cmd/patternc
// something to compile end to end (internal/replc has its own line
// parser).
package specfmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/diag"
	"github.com/glyph-lang/patternc/internal/pattern"
)

// BranchSpec is one YAML/JSON branch entry: a pattern tree plus the
// label of the body to run when it matches.
type BranchSpec struct {
	Pattern PatternSpec `yaml:"pattern" json:"pattern"`
	Body    string      `yaml:"body" json:"body"`
}

// PatternSpec is the YAML/JSON encoding of a pattern.Pattern. Each Kind
// reads only its own fields (int, bit or str for literals; tag_id and
// enum_size for enum; name, tag_id, union and args for ctor); unused
// fields are simply omitted by the author.
type PatternSpec struct {
	Kind    string        `yaml:"kind" json:"kind"`
	Name    string        `yaml:"name,omitempty" json:"name,omitempty"`
	TagID   *uint8        `yaml:"tag_id,omitempty" json:"tag_id,omitempty"`
	Union   []string      `yaml:"union,omitempty" json:"union,omitempty"`
	Args    []PatternSpec `yaml:"args,omitempty" json:"args,omitempty"`
	IntVal  *int64        `yaml:"int,omitempty" json:"int,omitempty"`
	BitVal  *bool         `yaml:"bit,omitempty" json:"bit,omitempty"`
	StrVal  *string       `yaml:"str,omitempty" json:"str,omitempty"`
	EnumAlt int           `yaml:"enum_size,omitempty" json:"enum_size,omitempty"`
}

// Document is the top-level shape of a branch-spec file.
type Document struct {
	Branches []BranchSpec `yaml:"branches" json:"branches"`
}

// LoadYAML reads and decodes a YAML branch-spec file from disk.
func LoadYAML(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.WrapReport(diag.New("specfmt", diag.SPC001,
			fmt.Sprintf("failed to read spec file %q: %s", path, err)))
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diag.WrapReport(diag.New("specfmt", diag.SPC001,
			fmt.Sprintf("failed to parse YAML: %s", err)))
	}
	if len(doc.Branches) == 0 {
		return nil, diag.WrapReport(diag.New("specfmt", diag.SPC001,
			"spec document has no branches"))
	}
	return &doc, nil
}

// Decode decodes every BranchSpec in the document into a pattern.Branch
// (goal set to its index) and a parallel core.Expr body list, in
// declaration order.
func (d *Document) Decode() ([]pattern.Branch, []core.Expr, error) {
	branches := make([]pattern.Branch, len(d.Branches))
	bodies := make([]core.Expr, len(d.Branches))

	for i, b := range d.Branches {
		if b.Body == "" {
			return nil, nil, diag.WrapReport(diag.New("specfmt", diag.SPC003,
				fmt.Sprintf("branch %d is missing a body", i)))
		}
		p, err := decodePattern(b.Pattern)
		if err != nil {
			return nil, nil, err
		}
		branches[i] = pattern.NewBranch(i, p)
		bodies[i] = &core.Sym{Name: b.Body}
	}
	return branches, bodies, nil
}

// decodePattern recursively decodes one PatternSpec node into a
// pattern.Pattern.
func decodePattern(s PatternSpec) (pattern.Pattern, error) {
	switch s.Kind {
	case "", "_", "underscore":
		return pattern.Underscore{}, nil

	case "ident", "identifier":
		return pattern.Identifier{Name: s.Name}, nil

	case "int":
		if s.IntVal == nil {
			return nil, missingField("int", "int")
		}
		return pattern.IntLiteral{Value: *s.IntVal}, nil

	case "bit", "bool":
		if s.BitVal == nil {
			return nil, missingField("bit", "bit")
		}
		return pattern.BitLiteral{Value: *s.BitVal}, nil

	case "str", "string":
		if s.StrVal == nil {
			return nil, missingField("str", "str")
		}
		return pattern.StrLiteral{Value: *s.StrVal}, nil

	case "enum":
		if s.TagID == nil {
			return nil, missingField("enum", "tag_id")
		}
		return pattern.EnumLiteral{TagID: *s.TagID, EnumSize: s.EnumAlt}, nil

	case "ctor", "tag":
		if s.TagID == nil {
			return nil, missingField("ctor", "tag_id")
		}
		args := make([]pattern.TaggedArg, len(s.Args))
		for i, a := range s.Args {
			argPattern, err := decodePattern(a)
			if err != nil {
				return nil, err
			}
			args[i] = pattern.TaggedArg{Pattern: argPattern}
		}
		return pattern.AppliedTag{
			TagName:   s.Name,
			TagID:     *s.TagID,
			Arguments: args,
			Union:     pattern.Union{Alternatives: s.Union},
		}, nil

	default:
		return nil, diag.WrapReport(diag.New("specfmt", diag.SPC002,
			fmt.Sprintf("unknown pattern kind %q", s.Kind)))
	}
}

func missingField(kind, field string) error {
	return diag.WrapReport(diag.New("specfmt", diag.SPC001,
		fmt.Sprintf("pattern kind %q requires field %q", kind, field)))
}
