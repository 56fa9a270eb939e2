package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"jack-analyzer/internal/diag"
	"jack-analyzer/internal/token"
)

var (
	errColor    = color.New(color.FgRed)
	promptColor = color.New(color.FgGreen)
	contColor   = color.New(color.FgHiBlack)
	bannerColor = color.New(color.FgCyan, color.Bold)
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printDiags writes one colored line per diagnostic.
func printDiags(w io.Writer, diags diag.List) {
	for _, d := range diags {
		errColor.Fprintln(w, d.String())
	}
}

func diagsToSlice(diags diag.List) []map[string]interface{} {
	result := make([]map[string]interface{}, len(diags))
	for i, d := range diags {
		result[i] = map[string]interface{}{
			"code":     d.Code,
			"severity": d.Severity.String(),
			"message":  d.Message,
			"line":     d.Span.Start.Line,
			"column":   d.Span.Start.Column,
			"offset":   d.Span.Start.Offset,
		}
		if d.File != "" {
			result[i]["file"] = d.File
		}
		if d.Hint != "" {
			result[i]["hint"] = d.Hint
		}
	}
	return result
}

func printTokensText(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-16s %-20s %s\n", tok.Category, tok.Lexeme, tok.Pos())
	}
}

func printTokensJSON(w io.Writer, tokens []token.Token, diags diag.List) error {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Int    int    `json:"int,omitempty"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}

	toks := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind:   tok.Category.String(),
			Lexeme: tok.Lexeme,
			Int:    tok.IntVal,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
		})
	}

	return printJSON(w, map[string]interface{}{
		"tokens":      toks,
		"diagnostics": diagsToSlice(diags),
	})
}
