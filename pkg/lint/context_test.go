package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

func TestRuleContext_Options(t *testing.T) {
	t.Parallel()

	rc := newContext(t, "a <= b;\n", map[string]any{
		"count":  float64(3),
		"name":   "upper",
		"flag":   true,
		"list":   []any{"x", 1, "y"},
		"wrong":  42,
		"strict": []string{"z"},
	})

	assert.Equal(t, 3, rc.OptionInt("count", 0))
	assert.Equal(t, 7, rc.OptionInt("missing", 7))
	assert.Equal(t, "upper", rc.OptionString("name", "lower"))
	assert.Equal(t, "lower", rc.OptionString("wrong", "lower"))
	assert.True(t, rc.OptionBool("flag", false))
	assert.Equal(t, []string{"x", "y"}, rc.OptionStringSlice("list", nil))
	assert.Equal(t, []string{"z"}, rc.OptionStringSlice("strict", nil))
	assert.Equal(t, []string{"d"}, rc.OptionStringSlice("wrong", []string{"d"}))
}

func TestRuleContext_OptionIDs(t *testing.T) {
	t.Parallel()

	defaults := []vhdl.ID{classify.LoopEnd}

	tests := []struct {
		name    string
		options map[string]any
		want    []vhdl.ID
		wantErr bool
	}{
		{name: "unset", options: nil, want: defaults},
		{name: "not a list", options: map[string]any{"allow": "loop_statement.end_keyword"}, want: defaults},
		{
			name:    "list",
			options: map[string]any{"allow": []any{"if_statement.end_keyword", "parser.comment"}},
			want:    []vhdl.ID{classify.IfEnd, vhdl.Comment},
		},
		{name: "empty list clears", options: map[string]any{"allow": []any{}}, want: []vhdl.ID{}},
		{name: "invalid", options: map[string]any{"allow": []string{"nodot"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newContext(t, "a <= b;\n", tt.options).OptionIDs("allow", defaults)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleContext_Cancelled(t *testing.T) {
	t.Parallel()

	rc := newContext(t, "a <= b;\n", nil)
	assert.False(t, rc.Cancelled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rc.Ctx = ctx
	assert.True(t, rc.Cancelled())

	rc.Ctx = nil
	assert.False(t, rc.Cancelled())
}
