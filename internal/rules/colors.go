package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// colorToken matches style attributes like fg=red, bg=#1a1b26,
// style=colour240. Values stop at a comma so compound styles
// ("bg=red,fg=white") check each token separately.
var colorToken = regexp.MustCompile(`(fg|bg|style)=([^,\s'"]+)`)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

var namedColors = map[string]bool{
	"black": true, "red": true, "green": true, "yellow": true,
	"blue": true, "magenta": true, "cyan": true, "white": true,
	"brightblack": true, "brightred": true, "brightgreen": true,
	"brightyellow": true, "brightblue": true, "brightmagenta": true,
	"brightcyan": true, "brightwhite": true,
	"default": true, "terminal": true, "none": true,
}

func checkColors(in *Input) []Diagnostic {
	extra := make(map[string]bool, len(in.Opts.ExtraColors))
	for _, name := range in.Opts.ExtraColors {
		extra[strings.ToLower(name)] = true
	}

	var diags []Diagnostic
	for _, st := range in.Statements {
		if st.ParseErr {
			continue
		}
		for _, m := range colorToken.FindAllStringSubmatch(st.Line.Text, -1) {
			token := m[2]
			if validColor(token, extra) {
				continue
			}

			d := Diagnostic{
				Severity:   SeverityError,
				Line:       st.Line.Number,
				Message:    fmt.Sprintf("invalid color value '%s'", token),
				Text:       st.Line.Text,
				Suggestion: "use a color name, 'colour0-255', or hex '#rrggbb'",
				RuleID:     RuleSyntax,
			}

			// A token that is valid once lower-cased has a deterministic
			// rewrite, which makes it auto-fixable.
			if lower := strings.ToLower(token); validColor(lower, extra) {
				d.Suggestion = fmt.Sprintf("did you mean '%s'?", lower)
				d.Replacement = strings.Replace(st.Line.Text, m[0], m[1]+"="+lower, 1)
			}
			diags = append(diags, d)
		}
	}
	return diags
}

func validColor(token string, extra map[string]bool) bool {
	if namedColors[token] || extra[token] {
		return true
	}
	if hexColor.MatchString(token) {
		return true
	}
	for _, prefix := range []string{"colour", "color"} {
		if rest, ok := strings.CutPrefix(token, prefix); ok {
			n, err := strconv.Atoi(rest)
			return err == nil && n >= 0 && n <= 255
		}
	}
	return false
}
