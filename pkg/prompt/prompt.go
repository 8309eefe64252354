// Package prompt reads answers to questions one line at a time.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when the line read was blank.
	ErrEmpty = errors.New("empty input")
	// ErrInvalidNumber is returned when an answer is not a
	// non-negative integer.
	ErrInvalidNumber = errors.New("invalid number")
)

// Reader prints questions to an output and reads the
// answers from an input.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates a new Reader.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line reads one line of input with the surrounding whitespace
// removed. Blank lines return ErrEmpty and a closed input
// returns io.EOF.
func (r *Reader) Line() (string, error) {
	line, err := r.in.ReadString('\n')
	switch {
	case err == io.EOF && len(line) == 0:
		return "", io.EOF
	case err != nil && err != io.EOF:
		return "", errors.Wrap(err, "could not read input")
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrEmpty
	}
	return line, nil
}

// Ask prints the question on its own line and reads the answer.
func (r *Reader) Ask(question string) (string, error) {
	if _, err := fmt.Fprintln(r.out, question); err != nil {
		return "", err
	}
	return r.Line()
}

// AskUint asks a question and parses the answer as an unsigned
// 32 bit integer.
func (r *Reader) AskUint(question string) (uint32, error) {
	answer, err := r.Ask(question)
	if err != nil {
		return 0, err
	}
	return ParseUint(answer)
}

// ParseUint parses a base 10 non-negative integer. One leading
// plus sign is allowed.
func ParseUint(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidNumber, err.Error())
	}
	return uint32(n), nil
}
