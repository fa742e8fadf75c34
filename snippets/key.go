package snippets

import "fmt"

// Key identifies one text block of a component entry. The set of keys is
// closed: the only valid values are the constants below.
type Key int

const (
	Installation Key = iota
	CLIDefault
	CLITailwind
	CLITSDefault
	CLITSTailwind
	Usage
	Code
	Tailwind
	TSCode
	TSTailwind

	keyCount int = iota
)

var keyNames = [keyCount]string{
	Installation:  "installation",
	CLIDefault:    "cliDefault",
	CLITailwind:   "cliTailwind",
	CLITSDefault:  "cliTsDefault",
	CLITSTailwind: "cliTsTailwind",
	Usage:         "usage",
	Code:          "code",
	Tailwind:      "tailwind",
	TSCode:        "tsCode",
	TSTailwind:    "tsTailwind",
}

var keyLanguages = [keyCount]string{
	Installation:  "bash",
	CLIDefault:    "bash",
	CLITailwind:   "bash",
	CLITSDefault:  "bash",
	CLITSTailwind: "bash",
	Usage:         "jsx",
	Code:          "jsx",
	Tailwind:      "jsx",
	TSCode:        "tsx",
	TSTailwind:    "tsx",
}

var keyTitles = [keyCount]string{
	Installation:  "Installation",
	CLIDefault:    "CLI (default)",
	CLITailwind:   "CLI (Tailwind)",
	CLITSDefault:  "CLI (TypeScript, default)",
	CLITSTailwind: "CLI (TypeScript, Tailwind)",
	Usage:         "Usage",
	Code:          "Code",
	Tailwind:      "Tailwind",
	TSCode:        "TypeScript",
	TSTailwind:    "TypeScript + Tailwind",
}

// Keys returns every key in canonical order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// KeyNames returns the wire names of every key in canonical order.
func KeyNames() []string {
	names := make([]string, keyCount)
	copy(names, keyNames[:])
	return names
}

// Variants returns the keys holding full component source variants.
func Variants() []Key {
	return []Key{Code, Tailwind, TSCode, TSTailwind}
}

// ParseKey resolves a wire name such as "cliTsDefault" to its Key.
func ParseKey(name string) (Key, error) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), nil
		}
	}
	return 0, newKeyNotFound(name)
}

// Valid reports whether k is one of the defined keys.
func (k Key) Valid() bool {
	return k >= 0 && int(k) < keyCount
}

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Language is the syntax-highlighting hint for the key's payload.
func (k Key) Language() string {
	if !k.Valid() {
		return ""
	}
	return keyLanguages[k]
}

// Title is a human readable heading for the key.
func (k Key) Title() string {
	if !k.Valid() {
		return ""
	}
	return keyTitles[k]
}

// FileName is the name the key's payload is stored and exported under.
func (k Key) FileName() string {
	if !k.Valid() {
		return ""
	}
	ext := k.Language()
	if ext == "bash" {
		ext = "sh"
	}
	return keyNames[k] + "." + ext
}

// IsVariant reports whether k holds a full component source variant.
func (k Key) IsVariant() bool {
	switch k {
	case Code, Tailwind, TSCode, TSTailwind:
		return true
	}
	return false
}

// IsCommand reports whether k holds a shell command.
func (k Key) IsCommand() bool {
	return k.Valid() && keyLanguages[k] == "bash"
}

func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, newKeyNotFound(k.String())
	}
	return []byte(keyNames[k]), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
