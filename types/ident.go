package types

import (
	"fmt"
	"strings"
)

// EscapeIdent quotes an identifier when it contains characters outside
// LLVM's unquoted identifier set `[-a-zA-Z$._][-a-zA-Z$._0-9]*`. Unescaped
// identifiers outside that set would make the printed module unparsable.
func EscapeIdent(name string) string {
	if validUnquoted(name) {
		return name
	}
	var sb strings.Builder
	sb.WriteString(`"`)
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b == '"' || b == '\\' || b < 0x20 || b > 0x7e {
			sb.WriteString(fmt.Sprintf(`\%02X`, b))
		} else {
			sb.WriteByte(b)
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

func validUnquoted(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		case b == '-', b == '$', b == '.', b == '_':
		case b >= '0' && b <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
