package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/source"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

func TestParse(t *testing.T) {
	t.Parallel()

	file, err := source.Parse("a.vhd", []byte("library ieee;\nuse ieee.std_logic_1164.all;\n"))
	require.NoError(t, err)

	assert.Equal(t, "a.vhd", file.Path)
	assert.Equal(t, []int{0}, file.Index().PositionsOf(classify.LibraryKeyword))
	assert.Equal(t, "library ieee;\nuse ieee.std_logic_1164.all;\n", string(file.Content()))
	assert.Equal(t, 2, file.LineCount())
}

func TestParse_GrammarError(t *testing.T) {
	t.Parallel()

	_, err := source.Parse("bad.vhd", []byte("a <= b\n"))
	require.Error(t, err)

	var grammarErr *classify.GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Equal(t, 1, grammarErr.Line)
	assert.Contains(t, err.Error(), "bad.vhd")
}

func TestFile_IndexRebuildsWhenStale(t *testing.T) {
	t.Parallel()

	file, err := source.Parse("a.vhd", []byte("a <= b;\nc <= d;\n"))
	require.NoError(t, err)

	first := file.Index()
	assert.Same(t, first, file.Index(), "index should be cached while the stream is unchanged")
	assert.Equal(t, 1, file.Builds())

	file.Stream().Insert(7, vhdl.NewBlankLine(), vhdl.NewCarriageReturn())
	assert.True(t, first.Stale())

	second := file.Index()
	assert.NotSame(t, first, second)
	assert.False(t, second.Stale())
	assert.Equal(t, 2, file.Builds())
	assert.Len(t, second.PositionsOf(vhdl.BlankLine), 1)
}

func TestFile_LineAndColumn(t *testing.T) {
	t.Parallel()

	file, err := source.Parse("a.vhd", []byte("a <= b;\n  c <= d;\n"))
	require.NoError(t, err)

	assert.Equal(t, "a <= b;", file.Line(1))
	assert.Equal(t, "  c <= d;", file.Line(2))
	assert.Empty(t, file.Line(3))
	assert.Empty(t, file.Line(0))

	// a ws <= ws b ; CR ws c
	assert.Equal(t, 1, file.Column(0))
	assert.Equal(t, 3, file.Column(2))
	assert.Equal(t, 3, file.Column(8))
	assert.Equal(t, 1, file.Column(-1))
}

func TestNew_EmptyStream(t *testing.T) {
	t.Parallel()

	file := source.New("empty.vhd", vhdl.Lex(""))
	assert.Equal(t, 0, file.LineCount())
	assert.Empty(t, file.Index().Categories())
}
