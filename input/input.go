// Package input loads puzzle input files and splits them into lines and
// numeric tokens.
package input

import (
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/exp/constraints"
)

var (
	// ErrRead wraps any failure to read an input file.
	ErrRead = errors.New("input: cannot read input file")
	// ErrBadNumber indicates a token that is not an integer.
	ErrBadNumber = errors.New("input: malformed number")
)

// Read returns the whole content of the named file, unmodified.
func Read(name string) (string, error) {
	klog.Infof("solving for input file %s", name)
	b, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(ErrRead, "%s: %v", name, err)
	}

	return string(b), nil
}

// Lines splits content on newlines, trims a trailing carriage return from
// each line and drops the empty line a final newline produces.
// Blank lines inside the content are kept.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// Blocks splits content into groups of lines separated by blank lines.
func Blocks(content string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(content) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Numbers parses the whitespace-separated integers in s.
// Empty tokens are ignored; any other token must be an integer of type T.
func Numbers[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		n, err := parse[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// Number parses a single integer token, ignoring surrounding space.
func Number[T constraints.Integer](s string) (T, error) {
	return parse[T](strings.TrimSpace(s))
}

func parse[T constraints.Integer](tok string) (T, error) {
	var zero T
	bits := 8 * int(unsafe.Sizeof(zero))
	if ^zero > 0 {
		u, err := strconv.ParseUint(tok, 10, bits)
		if err != nil {
			return zero, errors.Wrapf(ErrBadNumber, "%q", tok)
		}
		return T(u), nil
	}
	n, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		return zero, errors.Wrapf(ErrBadNumber, "%q", tok)
	}

	return T(n), nil
}
