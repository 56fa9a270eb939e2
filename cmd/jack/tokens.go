package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"jack-analyzer/internal/lexer"
	"jack-analyzer/internal/render"
)

func getTokensCmd(c *rootCommand) *cobra.Command {
	var jsonOut, xmlOut bool
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a .jack file and print its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := afero.ReadFile(c.fs, path)
			if err != nil {
				return err
			}
			tokens, diags := lexer.New(string(data), path).Tokenize()
			c.logger.WithField("file", path).WithField("tokens", len(tokens)).Debug("tokenized")

			switch {
			case jsonOut:
				if err := printTokensJSON(c.stdout, tokens, diags); err != nil {
					return err
				}
			case xmlOut:
				if err := render.TokensXML(c.stdout, tokens); err != nil {
					return err
				}
			default:
				printTokensText(c.stdout, tokens)
			}
			return diags.Err()
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print tokens and diagnostics as JSON")
	cmd.Flags().BoolVar(&xmlOut, "xml", false, "print the <tokens> XML document")
	cmd.MarkFlagsMutuallyExclusive("json", "xml")
	return cmd
}
