// Package find searches buffer lines with regular expressions.
package find

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bethropolis/tidecore/internal/types"
)

// Lines is the read side of a buffer. Line returns the row without its
// terminator.
type Lines interface {
	LineCount() int
	Line(row int) string
}

// Match is one occurrence on a single line, [Start, End) in byte columns.
type Match struct {
	Start types.Position
	End   types.Position

	sub []int // submatch byte offsets within the line, for Expand
}

// Finder holds a compiled search term.
type Finder struct {
	term string
	re   *regexp.Regexp
}

// Compile parses term as a Go regular expression.
func Compile(term string) (*Finder, error) {
	if term == "" {
		return nil, fmt.Errorf("search pattern cannot be empty")
	}
	re, err := regexp.Compile(term)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}
	return &Finder{term: term, re: re}, nil
}

// Term returns the source pattern.
func (f *Finder) Term() string { return f.term }

// Line returns the non-empty matches in row, left to right.
func (f *Finder) Line(src Lines, row int) []Match {
	line := src.Line(row)
	var out []Match
	for _, loc := range f.re.FindAllStringSubmatchIndex(line, -1) {
		if loc[0] == loc[1] {
			continue
		}
		out = append(out, Match{
			Start: types.Position{Row: row, Col: loc[0]},
			End:   types.Position{Row: row, Col: loc[1]},
			sub:   loc,
		})
	}
	return out
}

// All returns every match in the buffer in document order.
func (f *Finder) All(src Lines) []Match {
	var out []Match
	for row := 0; row < src.LineCount(); row++ {
		out = append(out, f.Line(src, row)...)
	}
	return out
}

// Next returns the nearest match from from. Searching forward picks the
// first match starting at or after from; backward picks the last match
// starting strictly before it. With wrap the search continues from the
// other end of the buffer.
func (f *Finder) Next(src Lines, from types.Position, forward, wrap bool) (Match, bool) {
	n := src.LineCount()
	if n == 0 {
		return Match{}, false
	}
	if forward {
		for i := 0; i <= n; i++ {
			row := from.Row + i
			if row >= n {
				if !wrap {
					break
				}
				row -= n
			}
			for _, m := range f.Line(src, row) {
				if i == 0 && m.Start.Col < from.Col {
					continue
				}
				if i == n && m.Start.Col >= from.Col {
					break
				}
				return m, true
			}
		}
		return Match{}, false
	}
	for i := 0; i <= n; i++ {
		row := from.Row - i
		if row < 0 {
			if !wrap {
				break
			}
			row += n
		}
		matches := f.Line(src, row)
		for j := len(matches) - 1; j >= 0; j-- {
			m := matches[j]
			if i == 0 && m.Start.Col >= from.Col {
				continue
			}
			if i == n && m.Start.Col < from.Col {
				break
			}
			return m, true
		}
	}
	return Match{}, false
}

// Expand renders template for m, substituting $1-style references with
// the match's submatches.
func (f *Finder) Expand(src Lines, m Match, template string) string {
	return string(f.re.ExpandString(nil, template, src.Line(m.Start.Row), m.sub))
}

// ParseSubstitute parses "/pattern/replacement/[g]".
func ParseSubstitute(s string) (pattern, replacement string, global bool, err error) {
	parts := strings.SplitN(s, "/", 4)
	if len(parts) < 3 || parts[0] != "" {
		err = fmt.Errorf("invalid format: use /pattern/replacement/[g]")
		return
	}
	pattern, replacement = parts[1], parts[2]
	if pattern == "" {
		err = fmt.Errorf("search pattern cannot be empty")
		return
	}
	if len(parts) > 3 {
		for _, flag := range parts[3] {
			if flag != 'g' {
				err = fmt.Errorf("unknown substitute flag %q", flag)
				return
			}
			global = true
		}
	}
	return
}
