package snippets

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 10 {
		t.Fatalf("Expected 10 keys, got %d", len(keys))
	}

	expected := []string{
		"installation", "cliDefault", "cliTailwind", "cliTsDefault", "cliTsTailwind",
		"usage", "code", "tailwind", "tsCode", "tsTailwind",
	}
	for i, k := range keys {
		if k.String() != expected[i] {
			t.Errorf("Expected key %d to be '%s', got '%s'", i, expected[i], k.String())
		}
	}

	// Returned slice must be a copy
	keys[0] = TSTailwind
	if Keys()[0] != Installation {
		t.Error("Keys should return a fresh slice")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Key
		expectErr bool
	}{
		{name: "installation", input: "installation", expected: Installation},
		{name: "typed cli", input: "cliTsDefault", expected: CLITSDefault},
		{name: "typed tailwind variant", input: "tsTailwind", expected: TSTailwind},
		{name: "wrong case", input: "TSCode", expectErr: true},
		{name: "empty", input: "", expectErr: true},
		{name: "unknown", input: "vue", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKey(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("Expected error for '%s'", tt.input)
				}
				if !errors.Is(err, ErrKeyNotFound) {
					t.Errorf("Expected ErrKeyNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if k != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, k)
			}
		})
	}
}

func TestKeyInvalid(t *testing.T) {
	for _, k := range []Key{-1, 10, 42} {
		if k.Valid() {
			t.Errorf("Expected %d to be invalid", int(k))
		}
		if k.Language() != "" || k.FileName() != "" || k.Title() != "" {
			t.Errorf("Expected empty metadata for invalid key %d", int(k))
		}
		if _, err := k.MarshalText(); !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("Expected ErrKeyNotFound when marshalling %d, got %v", int(k), err)
		}
	}
}

func TestKeyMetadata(t *testing.T) {
	tests := []struct {
		key      Key
		language string
		fileName string
		variant  bool
		command  bool
	}{
		{Installation, "bash", "installation.sh", false, true},
		{CLITSTailwind, "bash", "cliTsTailwind.sh", false, true},
		{Usage, "jsx", "usage.jsx", false, false},
		{Code, "jsx", "code.jsx", true, false},
		{Tailwind, "jsx", "tailwind.jsx", true, false},
		{TSCode, "tsx", "tsCode.tsx", true, false},
		{TSTailwind, "tsx", "tsTailwind.tsx", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if tt.key.Language() != tt.language {
				t.Errorf("Expected language '%s', got '%s'", tt.language, tt.key.Language())
			}
			if tt.key.FileName() != tt.fileName {
				t.Errorf("Expected file name '%s', got '%s'", tt.fileName, tt.key.FileName())
			}
			if tt.key.IsVariant() != tt.variant {
				t.Errorf("Expected IsVariant %v, got %v", tt.variant, tt.key.IsVariant())
			}
			if tt.key.IsCommand() != tt.command {
				t.Errorf("Expected IsCommand %v, got %v", tt.command, tt.key.IsCommand())
			}
		})
	}
}

func TestKeyTextMarshalling(t *testing.T) {
	in := map[Key]string{CLIDefault: "a", TSCode: "b"}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != `{"cliDefault":"a","tsCode":"b"}` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	var out map[Key]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out[CLIDefault] != "a" || out[TSCode] != "b" {
		t.Errorf("Unexpected decoded map: %v", out)
	}

	var bad map[Key]string
	if err := json.Unmarshal([]byte(`{"svelte":"x"}`), &bad); err == nil {
		t.Error("Expected error for unknown key name")
	}
}
