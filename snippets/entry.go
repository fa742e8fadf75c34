package snippets

// Entry holds the ten text blocks documenting one component. Every field is
// stored in full; no value is derived from another.
type Entry struct {
	Installation  string `json:"installation" yaml:"installation" doc:"Package-manager command installing the animation dependency"`
	CLIDefault    string `json:"cliDefault" yaml:"cliDefault" doc:"CLI fetcher command for the default variant"`
	CLITailwind   string `json:"cliTailwind" yaml:"cliTailwind" doc:"CLI fetcher command for the Tailwind variant"`
	CLITSDefault  string `json:"cliTsDefault" yaml:"cliTsDefault" doc:"CLI fetcher command for the TypeScript variant"`
	CLITSTailwind string `json:"cliTsTailwind" yaml:"cliTsTailwind" doc:"CLI fetcher command for the TypeScript + Tailwind variant"`
	Usage         string `json:"usage" yaml:"usage" doc:"Example invocation"`
	Code          string `json:"code" yaml:"code" doc:"Source of the default variant"`
	Tailwind      string `json:"tailwind" yaml:"tailwind" doc:"Source of the Tailwind variant"`
	TSCode        string `json:"tsCode" yaml:"tsCode" doc:"Source of the TypeScript variant"`
	TSTailwind    string `json:"tsTailwind" yaml:"tsTailwind" doc:"Source of the TypeScript + Tailwind variant"`
}

// NewEntry builds an entry from a complete key/value set. Every key must be
// present with a non-empty value.
func NewEntry(values map[Key]string) (Entry, error) {
	var e Entry
	for k, v := range values {
		field := e.field(k)
		if field == nil {
			return Entry{}, newKeyNotFound(k.String())
		}
		*field = v
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Get returns the text stored under k.
func (e Entry) Get(k Key) (string, error) {
	field := e.field(k)
	if field == nil {
		return "", newKeyNotFound(k.String())
	}
	return *field, nil
}

// Lookup returns the text stored under the key with the given wire name.
func (e Entry) Lookup(name string) (string, error) {
	k, err := ParseKey(name)
	if err != nil {
		return "", err
	}
	return e.Get(k)
}

// All returns a fresh map with one value per key.
func (e Entry) All() map[Key]string {
	result := make(map[Key]string, keyCount)
	for _, k := range Keys() {
		result[k] = *e.field(k)
	}
	return result
}

// Named returns All keyed by wire names.
func (e Entry) Named() map[string]string {
	result := make(map[string]string, keyCount)
	for k, v := range e.All() {
		result[k.String()] = v
	}
	return result
}

// Missing lists the keys whose value is empty.
func (e Entry) Missing() []Key {
	var missing []Key
	for _, k := range Keys() {
		if *e.field(k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// Validate reports every empty field as a single ErrMissingField error.
func (e Entry) Validate() error {
	if missing := e.Missing(); len(missing) > 0 {
		return newMissingFields("", missing)
	}
	return nil
}

// field returns the slot for k in e, or nil when k is not a defined key.
func (e *Entry) field(k Key) *string {
	switch k {
	case Installation:
		return &e.Installation
	case CLIDefault:
		return &e.CLIDefault
	case CLITailwind:
		return &e.CLITailwind
	case CLITSDefault:
		return &e.CLITSDefault
	case CLITSTailwind:
		return &e.CLITSTailwind
	case Usage:
		return &e.Usage
	case Code:
		return &e.Code
	case Tailwind:
		return &e.Tailwind
	case TSCode:
		return &e.TSCode
	case TSTailwind:
		return &e.TSTailwind
	}
	return nil
}
