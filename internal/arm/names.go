package arm

import (
	"go/token"
	"go/types"
	"regexp"
	"strings"
	"unicode"
)

var generatedName = regexp.MustCompile(`^(m|name|ok)[0-9]+$`)

// IsReserved reports whether a Go name is used by generated dispatch code.
func IsReserved(goName string) bool {
	switch goName {
	case "h", "args", "dispatch", "matches", "cobra":
		return true
	}
	if types.Universe.Lookup(goName) != nil {
		return true
	}
	return generatedName.MatchString(goName) || token.IsKeyword(goName)
}

// GoName converts a snake_case or kebab-case local to lowerCamelCase.
// "test_arg" becomes "testArg"; names without separators are unchanged.
func GoName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	if len(parts) == 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	return sb.String()
}
