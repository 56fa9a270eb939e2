// Package analyzer drives the tokenizer, parser and renderers over .jack
// files and writes or checks the resulting tree files.
package analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"jack-analyzer/internal/config"
	"jack-analyzer/internal/diag"
	"jack-analyzer/internal/lexer"
	"jack-analyzer/internal/parser"
	"jack-analyzer/internal/render"
	"jack-analyzer/internal/token"
	"jack-analyzer/internal/tree"
)

// SourceExt is the extension of Jack source files.
const SourceExt = ".jack"

// Mode selects what Run does with the rendered output.
type Mode int

const (
	// Write stores the output files.
	Write Mode = iota
	// Check compares the output with files already on disk.
	Check
)

// FileError is a failure tied to one source file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Diagnostics returns the compiler diagnostics behind the error, if any.
func (e *FileError) Diagnostics() diag.List {
	var list diag.List
	if errors.As(e.Err, &list) {
		return list
	}
	var serr *parser.SyntaxError
	if errors.As(e.Err, &serr) {
		return diag.List{serr.Diagnostic()}.WithFile(e.Path)
	}
	return nil
}

// Result describes one processed source file.
type Result struct {
	Source      string
	Output      string
	TokenOutput string // empty unless tokens were emitted
	Tokens      int
}

// Analyzer processes Jack sources on a filesystem.
type Analyzer struct {
	fs  afero.Fs
	cfg config.Config
	log logrus.FieldLogger
}

// New creates an Analyzer. A nil logger discards log output.
func New(fs afero.Fs, cfg config.Config, log logrus.FieldLogger) *Analyzer {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Analyzer{fs: fs, cfg: cfg, log: log}
}

// Sources returns the source files named by path: path itself when it is a
// file, or the .jack files directly inside it when it is a directory,
// sorted by name.
func (a *Analyzer) Sources(path string) ([]string, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(path), SourceExt) {
			return nil, fmt.Errorf("%s: not a %s file", path, SourceExt)
		}
		return []string{path}, nil
	}
	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), SourceExt) {
			continue
		}
		out = append(out, filepath.Join(path, e.Name()))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no %s files", path, SourceExt)
	}
	sort.Strings(out)
	return out, nil
}

// Analyze tokenizes and parses one source file. The tree is nil for a file
// without tokens.
func (a *Analyzer) Analyze(path string) ([]token.Token, *tree.Node, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, nil, err
	}
	tokens, diags := lexer.New(string(data), path).Tokenize()
	if err := diags.Err(); err != nil {
		return nil, nil, err
	}
	root, err := parser.ParseTokens(tokens)
	if err != nil {
		return tokens, nil, err
	}
	return tokens, root, nil
}

// Run processes every source named by path. Files that fail are reported
// as *FileError values joined into the returned error; the others are still
// processed and appear in the results.
func (a *Analyzer) Run(path string, mode Mode) ([]Result, error) {
	sources, err := a.Sources(path)
	if err != nil {
		return nil, err
	}
	var (
		results []Result
		errs    []error
	)
	for _, src := range sources {
		res, err := a.runFile(src, mode)
		if err != nil {
			a.log.WithField("file", src).WithError(err).Debug("analysis failed")
			errs = append(errs, &FileError{Path: src, Err: err})
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func (a *Analyzer) runFile(src string, mode Mode) (Result, error) {
	tokens, root, err := a.Analyze(src)
	if err != nil {
		return Result{}, err
	}
	log := a.log.WithFields(logrus.Fields{"file": src, "tokens": len(tokens)})
	if root == nil {
		log.Warn("source has no tokens")
	}

	format := a.cfg.OutputFormat()
	res := Result{Source: src, Tokens: len(tokens), Output: a.outputPath(src, format.Ext())}

	var buf bytes.Buffer
	if err := render.Tree(&buf, format, root, a.cfg.RenderOptions()); err != nil {
		return res, fmt.Errorf("render: %w", err)
	}
	if err := a.emit(mode, res.Output, buf.Bytes()); err != nil {
		return res, err
	}

	if a.cfg.EmitTokens {
		res.TokenOutput = a.outputPath(src, "T.xml")
		buf.Reset()
		if err := render.TokensXML(&buf, tokens); err != nil {
			return res, fmt.Errorf("render tokens: %w", err)
		}
		if err := a.emit(mode, res.TokenOutput, buf.Bytes()); err != nil {
			return res, err
		}
	}

	log.WithField("out", res.Output).Info("analyzed")
	return res, nil
}

func (a *Analyzer) emit(mode Mode, path string, data []byte) error {
	if mode == Check {
		want, err := afero.ReadFile(a.fs, path)
		if err != nil {
			return fmt.Errorf("read expected output: %w", err)
		}
		if err := render.Compare(data, want); err != nil {
			return fmt.Errorf("%s differs: %w", path, err)
		}
		return nil
	}
	if err := a.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(a.fs, path, data, 0o644)
}

// outputPath places <Name><suffix> in the configured output directory, or
// next to the source when none is set.
func (a *Analyzer) outputPath(src, suffix string) string {
	dir := a.cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(dir, name+suffix)
}
