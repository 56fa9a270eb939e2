// Command jack is the command-line front end of the Jack syntax analyzer.
//
// Usage:
//
//	jack tokens  <file> [--json | --xml]          Print tokens
//	jack parse   <file> [--format xml|json|yaml]  Print the parse tree
//	jack analyze <file|dir> [--out dir] [--tokens] [--check]
//	                                              Write or check tree files
//	jack repl                                     Start interactive shell
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	os.Exit(execute(afero.NewOsFs(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
