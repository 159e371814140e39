package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var quotedTitle = []*regexp.Regexp{
	regexp.MustCompile(`"([^"]+)"`),
	regexp.MustCompile(`«\s*([^»]+?)\s*»`),
	regexp.MustCompile(`“([^”]+)”`),
}

// ExtractTitle reads the title from the raw message: a quoted span wins and is
// returned as is, otherwise the text after the first label colon is used with
// its first letter capitalized. Colons inside clock times ("14:30") are not labels.
func ExtractTitle(raw string) string {
	for _, re := range quotedTitle {
		if m := re.FindStringSubmatch(raw); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" {
				return title
			}
		}
	}

	idx := labelColon(raw)
	if idx < 0 {
		return ""
	}
	return capitalize(strings.TrimSpace(raw[idx+1:]))
}

func labelColon(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		before := i > 0 && isDigit(s[i-1])
		after := i+1 < len(s) && isDigit(s[i+1])
		if before && after {
			continue
		}
		return i
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
