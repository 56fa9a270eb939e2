package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jack-analyzer/internal/analyzer"
)

func getAnalyzeCmd(c *rootCommand) *cobra.Command {
	var (
		outDir string
		tokens bool
		check  bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "analyze <file|dir>",
		Short: "Write the parse tree of each .jack file next to it",
		Long: `Analyze tokenizes and parses a .jack file, or every .jack file in a
directory, and writes <Name>.xml (or .json/.yaml) for each one. With --check
the output is compared with the files already present instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("out") {
				c.cfg.OutputDir = outDir
			}
			if flags.Changed("tokens") {
				c.cfg.EmitTokens = tokens
			}
			if flags.Changed("format") {
				c.cfg.Format = format
				if err := c.cfg.Validate(); err != nil {
					return err
				}
			}
			mode := analyzer.Write
			if check {
				mode = analyzer.Check
			}

			results, err := c.analyzer().Run(args[0], mode)
			for _, res := range results {
				verb := "wrote"
				if mode == analyzer.Check {
					verb = "ok"
				}
				fmt.Fprintf(c.stdout, "%s %s\n", verb, res.Output)
				if res.TokenOutput != "" {
					fmt.Fprintf(c.stdout, "%s %s\n", verb, res.TokenOutput)
				}
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&outDir, "out", "o", "", "directory for generated files (default: next to each source)")
	flags.BoolVar(&tokens, "tokens", false, "also write <Name>T.xml token files")
	flags.BoolVar(&check, "check", false, "compare with existing output instead of writing")
	flags.StringVarP(&format, "format", "f", "xml", "output format: xml, json or yaml")
	return cmd
}
