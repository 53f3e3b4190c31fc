package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is matched by every error returned for malformed input.
var ErrParse = errors.New("parse error")

// ParseError is malformed input, optionally tied to a 1-based line.
type ParseError struct {
	Line int // 0 if not tied to a line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Errorf returns a *ParseError for line (1-based, or 0).
func Errorf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Err: fmt.Errorf(format, args...)}
}

// Lines splits input into lines. A final newline doesn't produce an empty
// line and "\r\n" endings are accepted.
func Lines(input string) []string {
	var out []string
	s := bufio.NewScanner(strings.NewReader(input))
	s.Buffer(nil, len(input)+bufio.MaxScanTokenSize)
	for s.Scan() {
		out = append(out, s.Text())
	}
	return out
}

// ParseInt parses s, ignoring surrounding space, reporting failures
// against line.
func ParseInt(line int, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Line: line, Err: err}
	}
	return n, nil
}

// ParseInts parses the whitespace separated integers in s.
func ParseInts(line int, s string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(s) {
		n, err := ParseInt(line, f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// CutPrefix returns s without prefix, or an error if s doesn't start
// with it.
func CutPrefix(line int, s, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", Errorf(line, "%q does not start with %q", s, prefix)
	}
	return rest, nil
}

// Cut splits s around the first sep, or fails if sep is missing.
func Cut(line int, s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Errorf(line, "missing %q in %q", sep, s)
	}
	return before, after, nil
}
