package pgmq

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Quote returns a string quoted as a SQL literal, with any single
// quotes escaped.
func Quote(v string) string {
	return `'` + strings.ReplaceAll(v, `'`, `''`) + `'`
}

// DoubleQuote returns a string quoted as a SQL identifier, with any
// double quotes escaped.
func DoubleQuote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func isNumeric(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isSingleQuoted(v string) bool {
	return len(v) > 1 && strings.HasPrefix(v, `'`) && strings.HasSuffix(v, `'`)
}

func isDoubleQuoted(v string) bool {
	return len(v) > 1 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`)
}
