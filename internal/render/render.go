// Package render writes parse trees and token streams in the formats the
// analyzer supports.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"jack-analyzer/internal/tree"
)

// Format selects a tree output encoding.
type Format string

const (
	XML  Format = "xml"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{XML, JSON, YAML}

// ParseFormat resolves a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xml":
		return XML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want xml, json or yaml)", name)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Options controls rendering.
type Options struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// DefaultOptions matches the layout of the reference .xml files.
var DefaultOptions = Options{Indent: 2}

// Tree writes root to w in format f. A nil root writes nothing.
func Tree(w io.Writer, f Format, root *tree.Node, opts Options) error {
	if root == nil {
		return nil
	}
	switch f {
	case XML:
		return TreeXML(w, root, opts)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", opts.Indent))
		return enc.Encode(tree.ToMap(root))
	case YAML:
		enc := yaml.NewEncoder(w)
		if opts.Indent > 0 {
			enc.SetIndent(opts.Indent)
		}
		if err := enc.Encode(tree.ToMap(root)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", f)
}
