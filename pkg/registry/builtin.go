package registry

import "unicode"

// FlagPrefix marks a built-in synthetic template name. Real template
// names never start with it, so the namespaces cannot collide.
const FlagPrefix = "--"

// builtins maps flag names to their canned content. These resolve
// locally; no network request is made for them.
var builtins = map[string]string{
	"--macos": "# Desktop Service Store Mac\n.DS_Store\n",
	"--locks": "# Lock Files\npackage-lock.json\nyarn.lock\n",
}

// BuiltinContent returns the canned content for a built-in flag name,
// or false when the name is not a built-in.
func BuiltinContent(name string) (string, bool) {
	content, ok := builtins[name]
	return content, ok
}

// Normalize maps user input to the upstream naming convention: the
// first rune is upper-cased and the rest is left alone ("rust" becomes
// "Rust", "visualstudio" becomes "Visualstudio"). Flag-prefixed input
// passes through unchanged, which means only the lowercase spelling of
// a built-in flag ever matches.
func Normalize(input string) string {
	if len(input) == 0 {
		return input
	}
	if len(input) >= len(FlagPrefix) && input[:len(FlagPrefix)] == FlagPrefix {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
