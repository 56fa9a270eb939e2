package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"jack-analyzer/internal/lexer"
	"jack-analyzer/internal/parser"
	"jack-analyzer/internal/render"
	"jack-analyzer/internal/token"
	"jack-analyzer/internal/tree"
)

func getReplCmd(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive shell that prints parse trees",
		Long: `The shell parses what you type and prints the tree. A fragment starting
with 'class' is parsed as a class, one starting with let, if, while, do or
return as statements, and anything else as an expression. Input with
unbalanced braces continues on the next line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.repl()
		},
	}
}

func (c *rootCommand) repl() error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".jack_history")
	}
	prompt := promptColor.Sprint("jack> ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdin:             io.NopCloser(c.stdin),
		Stdout:            c.stdout,
		Stderr:            c.stderr,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		bannerColor.Sprint("jack syntax analyzer"), contColor.Sprint("(type 'exit' or Ctrl+D to quit)"))

	opts := c.cfg.RenderOptions()
	var accumulated strings.Builder
	braceDepth := 0

	for {
		if braceDepth > 0 {
			rl.SetPrompt(contColor.Sprint("...   "))
		} else {
			rl.SetPrompt(prompt)
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if braceDepth > 0 {
					accumulated.Reset()
					braceDepth = 0
					continue
				}
				fmt.Fprintln(rl.Stdout(), contColor.Sprint("(use 'exit' or Ctrl+D to quit)"))
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(rl.Stdout())
				return nil
			}
			return err
		}

		if braceDepth == 0 && strings.TrimSpace(line) == "exit" {
			return nil
		}

		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
		accumulated.WriteString(line)
		accumulated.WriteString("\n")
		if braceDepth > 0 {
			continue
		}
		braceDepth = 0

		source := accumulated.String()
		accumulated.Reset()
		if strings.TrimSpace(source) == "" {
			continue
		}

		root, err := parseFragment(source)
		if err != nil {
			if diags := diagnosticsOf(err); len(diags) > 0 {
				printDiags(rl.Stderr(), diags)
			} else {
				errColor.Fprintf(rl.Stderr(), "error: %s\n", err)
			}
			continue
		}
		if err := render.TreeXML(rl.Stdout(), root, opts); err != nil {
			return err
		}
	}
}

var replStatementStarters = []string{"let", "if", "while", "do", "return"}

// parseFragment parses a class, a statement sequence or an expression,
// chosen by the first token of source.
func parseFragment(source string) (*tree.Node, error) {
	tokens, diags := lexer.New(source, "<repl>").Tokenize()
	if err := diags.Err(); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	src := token.NewStream(tokens)
	switch first := tokens[0]; {
	case first.Is(token.Keyword, "class"):
		return parser.Parse(src)
	case first.Is(token.Keyword, replStatementStarters...):
		return parser.ParseStatements(src)
	default:
		return parser.ParseExpression(src)
	}
}
