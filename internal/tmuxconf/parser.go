package tmuxconf

import (
	"strings"
)

// Parse turns raw file text into an ordered statement sequence. Blank and
// comment-only lines are dropped without shifting the numbering of later
// lines. A line the tokenizer cannot split becomes an Unknown statement
// with ParseErr set, so Parse never fails outright and downstream stages
// always see the well-formed remainder.
func Parse(text string) []Statement {
	lines := splitLines(text)

	var stmts []Statement
	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		first := SourceLine{Number: i + 1, Text: raw}

		// Trailing backslash joins with the next physical line; the joined
		// statement reports against the first physical line.
		logical := raw
		for strings.HasSuffix(strings.TrimRight(logical, " \t"), "\\") && i+1 < len(lines) {
			logical = strings.TrimSuffix(strings.TrimRight(logical, " \t"), "\\")
			i++
			logical += " " + strings.TrimSpace(lines[i])
		}

		st := Statement{Line: first}
		fields, err := splitArgs(logical)
		if err != nil {
			st.ParseErr = true
			st.Err = err.Error()
			if sp := strings.Fields(logical); len(sp) > 0 {
				st.Command = sp[0]
			}
			stmts = append(stmts, st)
			continue
		}
		if len(fields) == 0 {
			continue
		}

		st.Command = fields[0]
		st.Args = fields[1:]
		classify(&st)
		stmts = append(stmts, st)
	}
	return stmts
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	// A trailing newline produces an empty final element, not a line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type parseError string

func (e parseError) Error() string { return string(e) }

const (
	errUnterminatedSingle = parseError("unterminated single-quoted string")
	errUnterminatedDouble = parseError("unterminated double-quoted string")
)

// splitArgs tokenizes one logical line the way tmux does: whitespace
// separates arguments, single and double quotes group them, backslash
// escapes the next character inside double quotes and bare text. An
// inline comment (unquoted #) ends the line.
func splitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inArg := false

	flush := func() {
		if inArg {
			args = append(args, cur.String())
			cur.Reset()
			inArg = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case ' ', '\t':
			flush()
		case '#':
			flush()
			return args, nil
		case '\'':
			inArg = true
			closed := false
			for i++; i < len(runes); i++ {
				if runes[i] == '\'' {
					closed = true
					break
				}
				cur.WriteRune(runes[i])
			}
			if !closed {
				return args, errUnterminatedSingle
			}
		case '"':
			inArg = true
			closed := false
			for i++; i < len(runes); i++ {
				if runes[i] == '\\' && i+1 < len(runes) {
					i++
					cur.WriteRune(runes[i])
					continue
				}
				if runes[i] == '"' {
					closed = true
					break
				}
				cur.WriteRune(runes[i])
			}
			if !closed {
				return args, errUnterminatedDouble
			}
		case '\\':
			inArg = true
			if i+1 < len(runes) {
				i++
				cur.WriteRune(runes[i])
			}
		default:
			inArg = true
			cur.WriteRune(c)
		}
	}
	flush()
	return args, nil
}
