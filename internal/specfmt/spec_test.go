package specfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyph-lang/patternc/internal/pattern"
)

func writeTempSpec(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "branches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML_DecodesCtorAndLiterals(t *testing.T) {
	path := writeTempSpec(t, `
branches:
  - pattern:
      kind: ctor
      name: Some
      tag_id: 1
      union: [None, Some]
      args:
        - kind: int
          int: 42
    body: matchedSome
  - pattern:
      kind: "_"
    body: fallthrough
`)

	doc, err := LoadYAML(path)
	require.NoError(t, err)
	require.Len(t, doc.Branches, 2)

	branches, bodies, err := doc.Decode()
	require.NoError(t, err)
	require.Len(t, branches, 2)
	require.Len(t, bodies, 2)

	tag, ok := branches[0].Patterns[0].Pattern.(pattern.AppliedTag)
	require.True(t, ok)
	require.Equal(t, "Some", tag.TagName)
	require.Equal(t, uint8(1), tag.TagID)
	require.Len(t, tag.Arguments, 1)

	_, ok = branches[1].Patterns[0].Pattern.(pattern.Underscore)
	require.True(t, ok)
}

func TestLoadYAML_MissingBranches(t *testing.T) {
	path := writeTempSpec(t, "branches: []\n")
	_, err := LoadYAML(path)
	require.Error(t, err)
}

func TestDecode_MissingBody(t *testing.T) {
	doc := &Document{Branches: []BranchSpec{{Pattern: PatternSpec{Kind: "_"}}}}
	_, _, err := doc.Decode()
	require.Error(t, err)
}

func TestDecodePattern_UnknownKind(t *testing.T) {
	_, err := decodePattern(PatternSpec{Kind: "bogus"})
	require.Error(t, err)
}
