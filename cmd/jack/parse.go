package main

import (
	"github.com/spf13/cobra"

	"jack-analyzer/internal/analyzer"
	"jack-analyzer/internal/render"
)

func getParseCmd(c *rootCommand) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .jack file and print its parse tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := c.cfg.OutputFormat()
			if cmd.Flags().Changed("format") {
				var err error
				if f, err = render.ParseFormat(format); err != nil {
					return err
				}
			}
			path := args[0]
			_, root, err := c.analyzer().Analyze(path)
			if err != nil {
				return &analyzer.FileError{Path: path, Err: err}
			}
			if root == nil {
				c.logger.WithField("file", path).Warn("source has no tokens")
			}
			return render.Tree(c.stdout, f, root, c.cfg.RenderOptions())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "xml", "output format: xml, json or yaml")
	return cmd
}
