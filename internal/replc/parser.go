package replc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/glyph-lang/patternc/internal/diag"
	"github.com/glyph-lang/patternc/internal/pattern"
)

// ParsePattern decodes one REPL-syntax pattern into a pattern.Pattern.
// The grammar is intentionally tiny (a typed terminal, not a real
// surface parser):
//
//	pattern  := "_" | ident | int | "true" | "false" | string | ctor
//	ctor     := Name "#" tagID "/[" alt ("," alt)* "]" [ "(" pattern ("," pattern)* ")" ]
//
// The union alternatives are bracketed so their commas can't be
// confused with the commas separating a surrounding constructor's own
// arguments when ctors nest. e.g. `Some#1/[None,Some](42)` decodes to
// the AppliedTag for tag 1 of a two-alternative union, carrying one
// IntLiteral argument. String
// literals are NFC-normalized before becoming an IsStr test so
// differently-composed Unicode input compares equal to stored branches,
// exactly as the normalization the teacher's lexer performs on source
// text before tokenizing.
func ParsePattern(src string) (pattern.Pattern, error) {
	src = strings.TrimSpace(src)
	switch {
	case src == "_":
		return pattern.Underscore{}, nil
	case src == "true":
		return pattern.BitLiteral{Value: true}, nil
	case src == "false":
		return pattern.BitLiteral{Value: false}, nil
	case strings.HasPrefix(src, `"`):
		return parseStringLiteral(src)
	case strings.Contains(src, "#"):
		return parseCtor(src)
	}

	if n, err := strconv.ParseInt(src, 10, 64); err == nil {
		return pattern.IntLiteral{Value: n}, nil
	}
	if isIdent(src) {
		return pattern.Identifier{Name: src}, nil
	}
	return nil, diag.WrapReport(diag.New("replc", diag.SPC001,
		fmt.Sprintf("unparseable pattern %q", src)))
}

func parseStringLiteral(src string) (pattern.Pattern, error) {
	if !strings.HasSuffix(src, `"`) || len(src) < 2 {
		return nil, diag.WrapReport(diag.New("replc", diag.SPC001,
			fmt.Sprintf("unterminated string literal %q", src)))
	}
	inner := src[1 : len(src)-1]
	return pattern.StrLiteral{Value: norm.NFC.String(inner)}, nil
}

// parseCtor parses `Name#tagID/[alt,alt,...](arg,arg,...)`.
func parseCtor(src string) (pattern.Pattern, error) {
	hashIdx := strings.IndexByte(src, '#')
	name := src[:hashIdx]
	rest := src[hashIdx+1:]

	slashIdx := strings.IndexByte(rest, '/')
	if slashIdx == -1 || slashIdx+1 >= len(rest) || rest[slashIdx+1] != '[' {
		return nil, diag.WrapReport(diag.New("replc", diag.SPC001,
			fmt.Sprintf("constructor %q missing /[union-alternatives]", src)))
	}
	tagIDStr := rest[:slashIdx]
	tagID, err := strconv.ParseUint(tagIDStr, 10, 8)
	if err != nil {
		return nil, diag.WrapReport(diag.New("replc", diag.SPC001,
			fmt.Sprintf("invalid tag id %q in %q", tagIDStr, src)))
	}

	unionClose := strings.IndexByte(rest[slashIdx+1:], ']')
	if unionClose == -1 {
		return nil, diag.WrapReport(diag.New("replc", diag.SPC001,
			fmt.Sprintf("unterminated union alternatives in %q", src)))
	}
	unionClose += slashIdx + 1
	alts := splitTopLevel(rest[slashIdx+2:unionClose], ',')

	tail := rest[unionClose+1:]
	var argsBody string
	if tail != "" {
		if !strings.HasPrefix(tail, "(") || !strings.HasSuffix(tail, ")") {
			return nil, diag.WrapReport(diag.New("replc", diag.SPC001,
				fmt.Sprintf("unterminated constructor arguments in %q", src)))
		}
		argsBody = tail[1 : len(tail)-1]
	}

	var args []pattern.TaggedArg
	if argsBody != "" {
		for _, argSrc := range splitTopLevel(argsBody, ',') {
			p, err := ParsePattern(argSrc)
			if err != nil {
				return nil, err
			}
			args = append(args, pattern.TaggedArg{Pattern: p})
		}
	}

	return pattern.AppliedTag{
		TagName:   name,
		TagID:     uint8(tagID),
		Arguments: args,
		Union:     pattern.Union{Alternatives: alts},
	}, nil
}

// splitTopLevel splits s on sep, but not inside parens or brackets, so
// a nested constructor's own arguments or union-alternatives list
// aren't cut in half.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

// ParseLine decodes one REPL branch line `<pattern> => <label>` into a
// pattern.Pattern and its body label (the label becomes a core.Sym body
// when the branch list is compiled).
func ParseLine(line string) (pattern.Pattern, string, error) {
	idx := strings.Index(line, "=>")
	if idx == -1 {
		return nil, "", diag.WrapReport(diag.New("replc", diag.SPC001,
			fmt.Sprintf("line %q is missing '=>'", line)))
	}
	p, err := ParsePattern(line[:idx])
	if err != nil {
		return nil, "", err
	}
	label := strings.TrimSpace(line[idx+2:])
	if label == "" {
		return nil, "", diag.WrapReport(diag.New("replc", diag.SPC003,
			fmt.Sprintf("line %q is missing a body label", line)))
	}
	return p, label, nil
}
