package pretty_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/govsg/internal/ui/pretty"
)

func TestNewStyles_NoColorIsPlain(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	for name, rendered := range map[string]string{
		"Error":          styles.Error.Render("x"),
		"Suggestion":     styles.Suggestion.Render("x"),
		"DiffAdd":        styles.DiffAdd.Render("x"),
		"TableHeader":    styles.TableHeader.Render("x"),
		"TableSeparator": styles.TableSeparator.Render("x"),
		"Bold":           styles.Bold.Render("x"),
	} {
		assert.Equal(t, "x", rendered, name)
	}
}

func TestNewStyles_ColorSetsAttributes(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	assert.True(t, styles.Error.GetBold())
	assert.True(t, styles.Suggestion.GetItalic())
	assert.True(t, styles.TableHeader.GetUnderline())
	assert.False(t, styles.Message.GetBold())
	assert.NotEqual(t, styles.DiffAdd.GetForeground(), styles.DiffRemove.GetForeground())
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		noColor string
		writer  io.Writer
		want    bool
	}{
		{name: "always on a buffer", mode: "always", writer: &bytes.Buffer{}, want: true},
		{name: "never on stdout", mode: "never", writer: os.Stdout, want: false},
		{name: "auto on a buffer", mode: "auto", writer: &bytes.Buffer{}, want: false},
		{name: "auto with NO_COLOR", mode: "auto", noColor: "1", writer: os.Stdout, want: false},
		{name: "empty mode is auto", mode: "", writer: &bytes.Buffer{}, want: false},
		{name: "unknown mode is auto", mode: "sometimes", writer: &bytes.Buffer{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			assert.Equal(t, tt.want, pretty.IsColorEnabled(tt.mode, tt.writer))
		})
	}
}

func TestNewStylesFor_NonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	styles := pretty.NewStylesFor("never", &buf)
	assert.Zero(t, styles.Width, "a buffer has no terminal width")
	assert.Zero(t, pretty.TerminalWidth(&buf))
	assert.Equal(t, "x", styles.Error.Render("x"))
}
