package commands

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Split breaks a command line into fields on whitespace. A field wrapped in
// double quotes is unquoted with Go escape rules, so "a\tb" and "" are
// single fields.
func Split(line string) ([]string, error) {
	var fields []string
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	for rest != "" {
		var field string
		if rest[0] == '"' {
			end := closingQuote(rest)
			if end < 0 {
				return nil, fmt.Errorf("unterminated quote in %q", line)
			}
			unq, err := strconv.Unquote(rest[:end+1])
			if err != nil {
				return nil, fmt.Errorf("bad quoted field %s: %w", rest[:end+1], err)
			}
			field, rest = unq, rest[end+1:]
		} else {
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end < 0 {
				end = len(rest)
			}
			field, rest = rest[:end], rest[end:]
		}
		fields = append(fields, field)
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	}
	return fields, nil
}

// closingQuote returns the index of the quote ending the string that
// starts at s[0], or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// Int parses args[i] as an integer for command name.
func Int(name, usage string, args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, Usagef(name, usage)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s: bad number %q: %w", name, args[i], ErrUsage)
	}
	return n, nil
}
