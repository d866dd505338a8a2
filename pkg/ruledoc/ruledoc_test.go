package ruledoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/ruledoc"
)

const sample = "# process_100\n\n" +
	"Checks for blank lines below the `begin` keyword\nof a process.\n\n" +
	"## Options\n\n" +
	"- `style`: `no_blank_line` (default) or `require_blank_line`.\n" +
	"- `allow`: exempting categories.\n\n" +
	"## Violation\n\n" +
	"```vhdl\nbegin\n\n  a <= b;\n```\n\n" +
	"## Fix\n\n" +
	"```vhdl\nbegin\n  a <= b;\n```\n"

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := ruledoc.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "process_100", doc.Title)
	assert.Equal(t, "Checks for blank lines below the begin keyword of a process.", doc.Summary)
	assert.Equal(t, []string{
		"style: no_blank_line (default) or require_blank_line.",
		"allow: exempting categories.",
	}, doc.Options)

	require.Len(t, doc.Examples, 1)
	assert.Equal(t, "begin\n\n  a <= b;\n", doc.Examples[0].Violation)
	assert.Equal(t, "begin\n  a <= b;\n", doc.Examples[0].Fix)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{name: "no title", src: "Just text.\n", want: ruledoc.ErrNoTitle},
		{
			name: "violation without fix",
			src:  "# r\n\n## Violation\n\n```\nx\n```\n",
			want: ruledoc.ErrUnpairedExample,
		},
		{
			name: "two violations in a row",
			src:  "# r\n\n## Violation\n\n```\nx\n```\n\n```\ny\n```\n",
			want: ruledoc.ErrUnpairedExample,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ruledoc.Parse([]byte(tt.src))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ruledoc.Parse([]byte("# r\n\n## Fix\n\n```\nx\n```\n"))
	require.Error(t, err)
}

func TestParse_CodeOutsideExamplesIgnored(t *testing.T) {
	t.Parallel()

	doc, err := ruledoc.Parse([]byte("# r\n\nSummary.\n\n## Notes\n\n```\nignored\n```\n"))
	require.NoError(t, err)
	assert.Empty(t, doc.Examples)
	assert.Equal(t, "Summary.", doc.Summary)
}
