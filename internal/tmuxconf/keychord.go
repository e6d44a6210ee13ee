package tmuxconf

import (
	"sort"
	"strings"
)

// modifierOrder fixes the canonical prefix ordering: C before M before S.
var modifierOrder = map[byte]int{'C': 0, 'M': 1, 'S': 2}

// NormalizeChord rewrites a key chord into canonical form so that
// textually different but semantically identical chords compare equal:
// modifier prefixes are upper-cased, de-duplicated and ordered C-M-S,
// named keys are folded to lower case, and a Ctrl-modified letter is
// folded to lower case (tmux treats C-a and C-A as the same binding).
func NormalizeChord(chord string) string {
	if chord == "" {
		return chord
	}

	var mods []byte
	rest := chord
	for len(rest) > 2 && rest[1] == '-' {
		m := rest[0]
		if m >= 'a' && m <= 'z' {
			m -= 'a' - 'A'
		}
		if _, ok := modifierOrder[m]; !ok {
			break
		}
		if !containsByte(mods, m) {
			mods = append(mods, m)
		}
		rest = rest[2:]
	}

	sort.Slice(mods, func(i, j int) bool {
		return modifierOrder[mods[i]] < modifierOrder[mods[j]]
	})

	key := rest
	switch {
	case len([]rune(key)) > 1:
		// Named key: Enter, Space, PageUp, F1...
		key = strings.ToLower(key)
	case containsByte(mods, 'C'):
		key = strings.ToLower(key)
	}

	var b strings.Builder
	for _, m := range mods {
		b.WriteByte(m)
		b.WriteByte('-')
	}
	b.WriteString(key)
	return b.String()
}

func containsByte(s []byte, c byte) bool {
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}
