package main

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"jack-analyzer/internal/analyzer"
	"jack-analyzer/internal/config"
	"jack-analyzer/internal/diag"
	"jack-analyzer/internal/parser"
)

// rootCommand carries the state shared by every subcommand.
type rootCommand struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger *logrus.Logger
	cfg    config.Config

	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cmd *cobra.Command
}

func newRootCommand(fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) *rootCommand {
	c := &rootCommand{
		fs:     fs,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: &logrus.Logger{
			Out:       stderr,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
		cfg: config.Default(),
	}
	c.cmd = &cobra.Command{
		Use:               "jack",
		Short:             "Syntax analyzer for the Jack language",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetIn(stdin)
	c.cmd.SetOut(stdout)
	c.cmd.SetErr(stderr)
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&c.configPath, "config", "c", "", "config file (default: ./jack.toml, ./jack.yaml)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&c.logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	return flags
}

// persistentPreRunE resolves the configuration (file, environment, then
// flags) and sets up logging before any subcommand runs.
func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(c.fs, c.configPath, ".")
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = c.logFormat
	}
	if flags.Changed("no-color") {
		cfg.NoColor = c.noColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	if cfg.NoColor {
		color.NoColor = true
	}
	return c.setupLogger()
}

func (c *rootCommand) setupLogger() error {
	level, err := logrus.ParseLevel(c.cfg.LogLevel)
	if err != nil {
		return err
	}
	c.logger.SetLevel(level)
	switch c.cfg.LogFormat {
	case "json":
		c.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		c.logger.SetFormatter(&logrus.TextFormatter{DisableColors: c.cfg.NoColor})
	}
	c.logger.WithField("config", c.configPath).Debug("configuration resolved")
	return nil
}

func (c *rootCommand) analyzer() *analyzer.Analyzer {
	return analyzer.New(c.fs, c.cfg, c.logger)
}

// reportError prints compiler diagnostics behind err in color, and logs
// anything else.
func (c *rootCommand) reportError(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			c.reportError(e)
		}
		return
	}
	if diags := diagnosticsOf(err); len(diags) > 0 {
		printDiags(c.stderr, diags)
		return
	}
	c.logger.Error(err)
}

func diagnosticsOf(err error) diag.List {
	var ferr *analyzer.FileError
	if errors.As(err, &ferr) {
		return ferr.Diagnostics()
	}
	var list diag.List
	if errors.As(err, &list) {
		return list
	}
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		return diag.List{serr.Diagnostic()}
	}
	return nil
}

// execute runs the CLI and returns the process exit code.
func execute(fs afero.Fs, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := newRootCommand(fs, stdin, stdout, stderr)
	c.cmd.AddCommand(
		getTokensCmd(c),
		getParseCmd(c),
		getAnalyzeCmd(c),
		getReplCmd(c),
	)
	c.cmd.SetArgs(args)

	if err := c.cmd.Execute(); err != nil {
		c.reportError(err)
		return 1
	}
	return 0
}
