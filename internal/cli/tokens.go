package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/internal/ui/pretty"
	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/parser"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

type tokensFlags struct {
	all    bool
	format string
}

// tokenInfo represents one classified token in JSON output.
type tokenInfo struct {
	Position int    `json:"position"`
	Line     int    `json:"line"`
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Text     string `json:"text"`
}

func newTokensCommand() *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the classified tokens of a VHDL file",
		Long: `Lex and classify a VHDL file and print every token with its line,
lexical kind and grammar category. Whitespace and line breaks are hidden
unless --all is given.

Useful for writing allow lists: the category column shows the "base.sub"
names that rule options accept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "include whitespace and line break tokens")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func runTokens(cmd *cobra.Command, path string, flags *tokensFlags) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	file, err := parser.New(0).Parse(cmd.Context(), path, content)
	if err != nil {
		var grammarErr *classify.GrammarError
		if errors.As(err, &grammarErr) {
			logging.Default().Error("grammar error",
				logging.FieldPath, path,
				logging.FieldLine, grammarErr.Line,
				logging.FieldProduction, grammarErr.Production,
			)
		}
		return err
	}

	stream := file.Stream()
	infos := make([]tokenInfo, 0, stream.Len())
	for i := range stream.Len() {
		tok := stream.At(i)
		if !flags.all && (tok.Kind == vhdl.KindWhitespace || tok.Kind == vhdl.KindCarriageReturn) {
			continue
		}
		infos = append(infos, tokenInfo{
			Position: i,
			Line:     tok.Line,
			Kind:     tok.Kind.String(),
			Category: tok.ID.String(),
			Text:     tok.Text,
		})
	}

	logging.Default().Debug("classified file",
		logging.FieldPath, path,
		logging.FieldTokens, stream.Len(),
	)

	if flags.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(infos); err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		return nil
	}

	return writeTokenTable(cmd, infos)
}

func writeTokenTable(cmd *cobra.Command, infos []tokenInfo) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStylesFor(colorMode, out)

	table := pretty.NewTable(styles, "POS", "LINE", "KIND", "CATEGORY", "TEXT").Flex(4)
	for _, info := range infos {
		category := info.Category
		rowStyle := styles.Message
		if category == "" {
			category = "-"
			rowStyle = styles.Dim
		}
		table.AddRow(rowStyle,
			strconv.Itoa(info.Position),
			strconv.Itoa(info.Line),
			info.Kind,
			category,
			strconv.Quote(info.Text),
		)
	}

	if _, err := io.WriteString(out, table.Render()); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}
