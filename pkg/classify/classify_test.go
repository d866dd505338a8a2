package classify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// positions returns the positions of every token whose text is text.
func positions(stream *vhdl.Stream, text string) []int {
	var out []int
	for i := range stream.Len() {
		if stream.At(i).Text == text {
			out = append(out, i)
		}
	}
	return out
}

// idAt returns the identity of the nth token whose text is text.
func idAt(t *testing.T, stream *vhdl.Stream, text string, nth int) vhdl.ID {
	t.Helper()

	found := positions(stream, text)
	require.Greater(t, len(found), nth, "token %q #%d", text, nth)
	return stream.At(found[nth]).ID
}

// classified lexes and classifies content, failing the test on error.
func classified(t *testing.T, content string) *vhdl.Stream {
	t.Helper()

	stream := vhdl.Lex(content)
	require.NoError(t, classify.Classify(stream))
	return stream
}

// untaggedExceptTrivia asserts that no significant token carries an identity.
func untaggedExceptTrivia(t *testing.T, stream *vhdl.Stream) {
	t.Helper()

	for i := range stream.Len() {
		tok := stream.At(i)
		if tok.IsTrivia() {
			continue
		}
		assert.True(t, tok.ID.IsZero(), "token %d %q tagged %s", i, tok.Text, tok.ID)
	}
}

func TestClassify_ContextClauses(t *testing.T) {
	t.Parallel()

	stream := classified(t, "library ieee, work;\nuse ieee.std_logic_1164.all;\ncontext work.ctx;\n")

	assert.Equal(t, classify.LibraryKeyword, idAt(t, stream, "library", 0))
	assert.Equal(t, classify.LogicalName, idAt(t, stream, "ieee", 0))
	assert.Equal(t, classify.LogicalNameComma, idAt(t, stream, ",", 0))
	assert.Equal(t, classify.LogicalName, idAt(t, stream, "work", 0))
	assert.Equal(t, classify.LibrarySemicolon, idAt(t, stream, ";", 0))

	assert.Equal(t, classify.UseKeyword, idAt(t, stream, "use", 0))
	assert.Equal(t, classify.UseSelectedName, idAt(t, stream, "std_logic_1164", 0))
	assert.Equal(t, classify.UseSemicolon, idAt(t, stream, ";", 1))

	assert.Equal(t, classify.ContextKeyword, idAt(t, stream, "context", 0))
	assert.Equal(t, classify.ContextSelectedName, idAt(t, stream, "ctx", 0))
	assert.Equal(t, classify.ContextSemicolon, idAt(t, stream, ";", 2))
}

func TestClassify_ContextDeclarationIsNotAReference(t *testing.T) {
	t.Parallel()

	stream := classified(t, "context ctx is\n  library ieee;\nend context;\n")

	assert.True(t, idAt(t, stream, "context", 0).IsZero())
	assert.Equal(t, classify.LibraryKeyword, idAt(t, stream, "library", 0))
}

const processSource = `architecture rtl of e is
  signal a, b : std_logic;
begin
  c <= d;
  proc : process (clk, rst) is
    variable v : integer := 0;
  begin
    a <= b;
    v := v + 1;
    if rst = '1' and en = '1' then
      b <= '0';
    elsif rising_edge(clk) then
      b <= a after 1 ns, '1' after 2 ns;
    else
      null;
    end if;
  end process proc;
end architecture rtl;
`

func TestClassify_ProcessStatement(t *testing.T) {
	t.Parallel()

	stream := classified(t, processSource)

	assert.Equal(t, classify.ProcessLabel, idAt(t, stream, "proc", 0))
	assert.Equal(t, classify.ProcessKeyword, idAt(t, stream, "process", 0))
	assert.Equal(t, classify.ProcessOpenParenthesis, idAt(t, stream, "(", 0))
	assert.Equal(t, classify.SensitivitySignal, idAt(t, stream, "clk", 0))
	assert.Equal(t, classify.ProcessCloseParenthesis, idAt(t, stream, ")", 0))
	assert.Equal(t, classify.ProcessIs, idAt(t, stream, "is", 1))
	assert.Equal(t, classify.ProcessBegin, idAt(t, stream, "begin", 1))
	assert.Equal(t, classify.ProcessEnd, idAt(t, stream, "end", 1))
	assert.Equal(t, classify.ProcessEndProcess, idAt(t, stream, "process", 1))
	assert.Equal(t, classify.ProcessEndLabel, idAt(t, stream, "proc", 1))

	// Declarations and the architecture header stay untagged.
	assert.True(t, idAt(t, stream, "variable", 0).IsZero())
	assert.True(t, idAt(t, stream, "architecture", 0).IsZero())
	assert.True(t, idAt(t, stream, "begin", 0).IsZero())
}

func TestClassify_Assignments(t *testing.T) {
	t.Parallel()

	stream := classified(t, processSource)

	assert.Equal(t, classify.ConcurrentTarget, idAt(t, stream, "c", 0))
	assert.Equal(t, classify.ConcurrentAssignment, idAt(t, stream, "<=", 0))

	assert.Equal(t, classify.WaveformTarget, idAt(t, stream, "a", 1))
	assert.Equal(t, classify.WaveformAssignment, idAt(t, stream, "<=", 1))

	assert.Equal(t, classify.VariableTarget, idAt(t, stream, "v", 1))
	assert.Equal(t, classify.VariableAssignment, idAt(t, stream, ":=", 1))

	assert.Equal(t, classify.AfterKeyword, idAt(t, stream, "after", 0))
	assert.Equal(t, classify.WaveformComma, idAt(t, stream, ",", 2))
	assert.Equal(t, classify.WaveformSemicolon, idAt(t, stream, ";", 6))
}

func TestClassify_QualifiedExpressions(t *testing.T) {
	t.Parallel()

	stream := classified(t, `proc : process
begin
  a <= std_logic'('1');
  x <= t'(others => '0');
  v := t'(others => '0');
end process;
`)

	assert.Equal(t, classify.WaveformTarget, idAt(t, stream, "a", 0))
	assert.Equal(t, classify.WaveformSemicolon, idAt(t, stream, ";", 0))
	assert.Equal(t, classify.WaveformTarget, idAt(t, stream, "x", 0))
	assert.Equal(t, classify.WaveformSemicolon, idAt(t, stream, ";", 1))
	assert.Equal(t, classify.VariableTarget, idAt(t, stream, "v", 0))
	assert.Equal(t, classify.VariableSemicolon, idAt(t, stream, ";", 2))
	assert.Len(t, positions(stream, "'0'"), 2)
}

func TestClassify_IfStatement(t *testing.T) {
	t.Parallel()

	stream := classified(t, processSource)

	assert.Equal(t, classify.IfKeyword, idAt(t, stream, "if", 0))
	assert.Equal(t, classify.IfThen, idAt(t, stream, "then", 0))
	assert.Equal(t, classify.IfElsif, idAt(t, stream, "elsif", 0))
	assert.Equal(t, classify.IfElse, idAt(t, stream, "else", 0))
	assert.Equal(t, classify.IfEnd, idAt(t, stream, "end", 0))
	assert.Equal(t, classify.IfEndIf, idAt(t, stream, "if", 1))
	assert.Equal(t, vhdl.ID{Base: "logical_operator", Sub: "and"}, idAt(t, stream, "and", 0))
	assert.Equal(t, vhdl.ID{Base: "if_statement", Sub: "open_parenthesis"}, idAt(t, stream, "(", 1))
}

func TestClassify_LoopStatement(t *testing.T) {
	t.Parallel()

	content := "process begin\n  outer : for i in 0 to 7 loop\n    while (x) loop\n      x <= y;\n    end loop;\n  end loop outer;\nend process;\n"
	stream := classified(t, content)

	assert.Equal(t, classify.LoopLabel, idAt(t, stream, "outer", 0))
	assert.Equal(t, classify.ForKeyword, idAt(t, stream, "for", 0))
	assert.Equal(t, classify.ParameterIdentifier, idAt(t, stream, "i", 0))
	assert.Equal(t, classify.ParameterIn, idAt(t, stream, "in", 0))
	assert.Equal(t, classify.LoopKeyword, idAt(t, stream, "loop", 0))
	assert.Equal(t, classify.WhileKeyword, idAt(t, stream, "while", 0))
	assert.Equal(t, classify.LoopKeyword, idAt(t, stream, "loop", 1))
	assert.Equal(t, classify.LoopEnd, idAt(t, stream, "end", 0))
	assert.Equal(t, classify.LoopEndLoop, idAt(t, stream, "loop", 2))
	assert.Equal(t, classify.LoopSemicolon, idAt(t, stream, ";", 1))
	assert.Equal(t, classify.LoopEndLoop, idAt(t, stream, "loop", 3))
	assert.Equal(t, classify.LoopEndLabel, idAt(t, stream, "outer", 1))
}

func TestClassify_GenerateIsNotALoop(t *testing.T) {
	t.Parallel()

	stream := classified(t, "gen : for i in 0 to 3 generate\n  a(i) <= b(i);\nend generate;\n")

	assert.True(t, idAt(t, stream, "for", 0).IsZero())
	assert.True(t, idAt(t, stream, "gen", 0).IsZero())
	assert.Equal(t, classify.ConcurrentTarget, idAt(t, stream, "a", 0))
}

func TestClassify_CaseStatement(t *testing.T) {
	t.Parallel()

	content := "process begin\n  case s is\n    when \"00\" =>\n      a <= b;\n    when others =>\n      null;\n  end case;\nend process;\n"
	stream := classified(t, content)

	assert.Equal(t, classify.CaseKeyword, idAt(t, stream, "case", 0))
	assert.Equal(t, classify.CaseIs, idAt(t, stream, "is", 0))
	assert.Equal(t, classify.WhenKeyword, idAt(t, stream, "when", 0))
	assert.Equal(t, classify.WhenArrow, idAt(t, stream, "=>", 0))
	assert.Equal(t, classify.WhenKeyword, idAt(t, stream, "when", 1))
	assert.Equal(t, classify.WaveformTarget, idAt(t, stream, "a", 0))
	assert.Equal(t, classify.CaseEndCase, idAt(t, stream, "case", 1))
}

func TestClassify_ForceAndReleaseAlternates(t *testing.T) {
	t.Parallel()

	content := "process begin\n  a <= force in '1';\n  b <= release;\nend process;\n"
	stream := classified(t, content)

	assert.Equal(t, classify.ForceTarget, idAt(t, stream, "a", 0))
	assert.Equal(t, classify.ForceAssignment, idAt(t, stream, "<=", 0))
	assert.Equal(t, classify.ForceKeyword, idAt(t, stream, "force", 0))
	assert.Equal(t, classify.ForceMode, idAt(t, stream, "in", 0))
	assert.Equal(t, classify.ForceSemicolon, idAt(t, stream, ";", 0))

	assert.Equal(t, classify.ReleaseTarget, idAt(t, stream, "b", 0))
	assert.Equal(t, classify.ReleaseKeyword, idAt(t, stream, "release", 0))
	assert.Equal(t, classify.ReleaseSemicolon, idAt(t, stream, ";", 1))
}

func TestClassify_DelayMechanism(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		word  string
		want  vhdl.ID
	}{
		{name: "transport", input: "a <= transport b after 1 ns;", word: "transport", want: classify.TransportKeyword},
		{name: "inertial", input: "a <= inertial b;", word: "inertial", want: classify.InertialKeyword},
		{name: "reject", input: "a <= reject 2 ns inertial b;", word: "reject", want: classify.RejectKeyword},
		{name: "reject inertial", input: "a <= reject 2 ns inertial b;", word: "inertial", want: classify.InertialKeyword},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			stream := classified(t, testCase.input)
			assert.Equal(t, testCase.want, idAt(t, stream, testCase.word, 0))
		})
	}
}

func TestDelayMechanism_AbsentKeepsCursor(t *testing.T) {
	t.Parallel()

	stream := vhdl.Lex("a <= b;")
	pos := positions(stream, "<=")[0] + 1

	next, err := classify.DelayMechanism(stream, pos)
	require.NoError(t, err)
	assert.Equal(t, pos, next)

	stream = vhdl.Lex("a <= transport b;")
	pos = positions(stream, "<=")[0] + 1
	next, err = classify.DelayMechanism(stream, pos)
	require.NoError(t, err)
	assert.Greater(t, next, pos)
}

func TestClassify_MissingSemicolonIsGrammarError(t *testing.T) {
	t.Parallel()

	stream := vhdl.Lex("a <= b\n")
	err := classify.Classify(stream)
	require.Error(t, err)

	var grammarErr *classify.GrammarError
	require.True(t, errors.As(err, &grammarErr))
	assert.Equal(t, stream.Len(), grammarErr.Position)
	assert.Equal(t, 1, grammarErr.Line)
	assert.Contains(t, grammarErr.Expected, "';'")
	assert.Contains(t, err.Error(), "end of file")

	untaggedExceptTrivia(t, stream)
}

func TestClassify_ErrorRollsBackEnclosingProduction(t *testing.T) {
	t.Parallel()

	stream := vhdl.Lex("library ieee;\nprocess begin\n  a <= b\nend process;\n")
	err := classify.Classify(stream)

	var grammarErr *classify.GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Equal(t, positions(stream, "end")[0], grammarErr.Position)
	assert.Equal(t, 4, grammarErr.Line)
	assert.Equal(t, "end", grammarErr.Found)

	assert.Equal(t, classify.LibraryKeyword, idAt(t, stream, "library", 0), "earlier productions survive")
	assert.True(t, idAt(t, stream, "process", 0).IsZero())
	assert.True(t, idAt(t, stream, "a", 0).IsZero())
	assert.True(t, idAt(t, stream, "<=", 0).IsZero())
}

func TestClassify_RejectWithoutInertial(t *testing.T) {
	t.Parallel()

	stream := vhdl.Lex("a <= reject 2 ns b;")
	err := classify.Classify(stream)

	var grammarErr *classify.GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Equal(t, "'inertial'", grammarErr.Expected)
	untaggedExceptTrivia(t, stream)
}

func TestClassify_UnmodelledConstructsAreSkipped(t *testing.T) {
	t.Parallel()

	content := `entity e is
  generic (n : integer := 4);
  port (a : in std_logic; b : out std_logic);
end entity e;

architecture rtl of e is
  type state_t is (idle, run);
  function f (x : integer) return integer is
  begin
    return x;
  end function;
begin
  b <= a when en = '1' else '0';
  u0 : entity work.sub port map (x => a, y => open);
  with s select y <= a when "0", b when others;
end architecture;
`
	stream := classified(t, content)

	assert.True(t, idAt(t, stream, "b", 1).IsZero(), "conditional assignment is not classified")
	assert.True(t, idAt(t, stream, "<=", 0).IsZero())
	assert.True(t, idAt(t, stream, "u0", 0).IsZero())
	assert.True(t, idAt(t, stream, ":=", 0).IsZero(), "generic default is not a variable assignment")
}

func TestClassify_UppercaseKeywords(t *testing.T) {
	t.Parallel()

	stream := classified(t, "PROCESS BEGIN\n  A <= B;\nEND PROCESS;\n")

	assert.Equal(t, classify.ProcessKeyword, idAt(t, stream, "PROCESS", 0))
	assert.Equal(t, classify.WaveformTarget, idAt(t, stream, "A", 0))
	assert.Equal(t, classify.ProcessEndProcess, idAt(t, stream, "PROCESS", 1))
}
