package render

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// MismatchError reports the first line where two outputs differ.
type MismatchError struct {
	Line int // 1-based line in the expected output
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("line %d: expected %q, got %q", e.Line, e.Want, e.Got)
}

// Compare checks got against want line by line, ignoring leading and
// trailing whitespace on every line and blank lines. It returns a
// *MismatchError for the first difference.
func Compare(got, want []byte) error {
	g := significantLines(got)
	w := significantLines(want)
	end := 1
	if len(w) > 0 {
		end = w[len(w)-1].no + 1
	}
	for i := 0; i < len(w) || i < len(g); i++ {
		var gl, wl line
		if i < len(g) {
			gl = g[i]
		} else {
			gl.text = "<end of output>"
		}
		if i < len(w) {
			wl = w[i]
		} else {
			wl = line{no: end, text: "<end of output>"}
		}
		if gl.text != wl.text {
			return &MismatchError{Line: wl.no, Want: wl.text, Got: gl.text}
		}
	}
	return nil
}

type line struct {
	no   int
	text string
}

func significantLines(data []byte) []line {
	var out []line
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		out = append(out, line{no: n, text: text})
	}
	return out
}
