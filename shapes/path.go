// Package shapes classifies SVG graphics elements into basic die-line
// geometry (lines, rectangles, squares) and prunes everything else from a
// document. Classification is heuristic: a structural pass over parsed path
// commands rather than a rendered-geometry analysis.
package shapes

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single SVG path directive: a command letter and its numeric
// arguments. The letter keeps the case it had in the source; relative
// commands stay lowercase.
type Command struct {
	Letter byte
	Args   []float64
}

// Upper returns the directive letter folded to uppercase.
func (c Command) Upper() byte {
	if c.Letter >= 'a' && c.Letter <= 'z' {
		return c.Letter - ('a' - 'A')
	}
	return c.Letter
}

// ParsePath parses SVG path data into a command sequence. It is tolerant
// in the ways classification needs (comma or whitespace separation, signed
// and fractional numbers, scientific notation) and rejects anything that is
// not a recognized directive letter or number.
func ParsePath(d string) ([]Command, error) {
	var cmds []Command
	i := 0
	n := len(d)

	for i < n {
		ch := d[i]
		switch {
		case isSeparator(ch):
			i++
		case isCommandLetter(ch):
			cmds = append(cmds, Command{Letter: ch})
			i++
		case isNumberStart(ch):
			if len(cmds) == 0 {
				return nil, fmt.Errorf("path data starts with a number, not a command")
			}
			val, next, err := scanNumber(d, i)
			if err != nil {
				return nil, err
			}
			last := &cmds[len(cmds)-1]
			last.Args = append(last.Args, val)
			i = next
		default:
			return nil, fmt.Errorf("unexpected character %q in path data at offset %d", ch, i)
		}
	}

	return cmds, nil
}

func isSeparator(ch byte) bool {
	return ch == ' ' || ch == ',' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isCommandLetter(ch byte) bool {
	return strings.IndexByte("MmLlHhVvZzCcSsQqTtAa", ch) >= 0
}

func isNumberStart(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '-' || ch == '+' || ch == '.'
}

// scanNumber reads one float starting at i. A second '.' or a sign after
// digits ends the number (SVG allows "1.5.5" meaning 1.5 then .5, and
// "1-2" meaning 1 then -2).
func scanNumber(d string, i int) (float64, int, error) {
	start := i
	n := len(d)
	sawDigit := false
	sawDot := false
	sawExp := false

	if d[i] == '-' || d[i] == '+' {
		i++
	}
	for i < n {
		ch := d[i]
		switch {
		case ch >= '0' && ch <= '9':
			sawDigit = true
			i++
		case ch == '.' && !sawDot && !sawExp:
			sawDot = true
			i++
		case (ch == 'e' || ch == 'E') && sawDigit && !sawExp:
			sawExp = true
			i++
			if i < n && (d[i] == '-' || d[i] == '+') {
				i++
			}
		default:
			goto done
		}
	}
done:
	if !sawDigit {
		return 0, i, fmt.Errorf("malformed number in path data at offset %d", start)
	}
	val, err := strconv.ParseFloat(d[start:i], 64)
	if err != nil {
		return 0, i, fmt.Errorf("malformed number %q in path data: %w", d[start:i], err)
	}
	return val, i, nil
}

// hasCurve reports whether the command sequence contains any curve or arc
// directive (C, S, Q, T, A in either case).
func hasCurve(cmds []Command) bool {
	for _, c := range cmds {
		switch c.Upper() {
		case 'C', 'S', 'Q', 'T', 'A':
			return true
		}
	}
	return false
}

// letters renders the uppercased directive sequence, e.g. "MLLLZ". Used by
// the pattern checks in the classifier.
func letters(cmds []Command) string {
	b := make([]byte, len(cmds))
	for i, c := range cmds {
		b[i] = c.Upper()
	}
	return string(b)
}
