/*
Package fixtures reads test fixture files for normalization operations.

Fixture files are line oriented, in a format borrowed from the Unicode
Character Database test files. Every data line holds fields separated
by ';', each field being a sequence of hexadecimal code-points. An empty field
denotes the empty string. Everything after '#' is a comment; lines starting
with '#' are skipped.

   # Fatha before Alef is elided
   0648 064E 0627 0628 ; 0648 0627 0628   # وَاب

Writing code-points in hex keeps diacritics visible and unambiguous,
which is hard to achieve with Arabic text in an editor.
*/
package fixtures

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
)

// TestFile is a fixture file opened for scanning.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	line    int
	fields  []string
	comment string
	err     error
}

// OpenTestFile opens a fixture file. If the file cannot be opened, an
// error is reported to t (if non-nil) and nil is returned.
func OpenTestFile(filename string, t *testing.T) *TestFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading %s: %v", filename, err)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading %s: %v\n", filename, err)
		}
		return nil
	}
	tf := &TestFile{}
	tf.in = f
	tf.scanner = bufio.NewScanner(f)
	return tf
}

// Scan advances to the next data line, skipping comment lines and blank lines.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		tf.line++
		text := strings.TrimSpace(tf.scanner.Text())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		tf.comment = ""
		if k := strings.IndexByte(text, '#'); k >= 0 {
			text, tf.comment = text[:k], strings.TrimSpace(text[k+1:])
		}
		tf.fields = tf.fields[:0]
		for _, field := range strings.Split(text, ";") {
			s, err := HexRunes(field)
			if err != nil {
				tf.err = fmt.Errorf("line %d: %w", tf.line, err)
				return false
			}
			tf.fields = append(tf.fields, s)
		}
		return true
	}
	return false
}

// Field returns field #i (1…n) of the current data line, decoded to a string.
func (tf *TestFile) Field(i int) string {
	if i >= 1 && i <= len(tf.fields) {
		return tf.fields[i-1]
	}
	return ""
}

// FieldCount is the number of fields of the current data line.
func (tf *TestFile) FieldCount() int {
	return len(tf.fields)
}

// Comment returns the comment of the current data line, if any.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// Line is the line number of the current data line.
func (tf *TestFile) Line() int {
	return tf.line
}

// Err returns the first error encountered while scanning.
func (tf *TestFile) Err() error {
	if tf.err != nil {
		return tf.err
	}
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}

// HexRunes decodes a blank-separated sequence of hexadecimal code-points.
func HexRunes(field string) (string, error) {
	var b strings.Builder
	for _, token := range strings.Fields(field) {
		n, err := strconv.ParseUint(token, 16, 32)
		if err != nil {
			return "", fmt.Errorf("illegal code-point %q", token)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}
