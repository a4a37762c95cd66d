package vars

import "strings"

// StrToBool accepts the usual English spellings and the Turkish ones used by
// the language keywords. Anything else is false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "1", "doğru", "evet", "e":
		return true
	}
	return false
}
