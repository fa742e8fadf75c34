package snippets

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func TestAnimatedContentCompleteness(t *testing.T) {
	all := AnimatedContent().All()

	if len(all) != 10 {
		t.Fatalf("Expected exactly 10 entries, got %d", len(all))
	}

	for _, k := range Keys() {
		v, ok := all[k]
		if !ok {
			t.Errorf("Expected key %s to be present", k)
			continue
		}
		if v == "" {
			t.Errorf("Expected key %s to have a non-empty value", k)
		}
	}

	t.Log("✅ All ten keys present and non-empty")
}

func TestAnimatedContentImmutability(t *testing.T) {
	first := AnimatedContent().All()
	second := AnimatedContent().All()

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected successive All calls to return equal values")
	}

	e := AnimatedContent()
	e.Code = "changed"
	if AnimatedContent().Code == "changed" {
		t.Error("Modifying a returned entry must not change the registry")
	}
}

func TestAnimatedContentInstallation(t *testing.T) {
	v, err := AnimatedContent().Get(Installation)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v != "npm install @react-spring/web" {
		t.Errorf("Unexpected installation command '%s'", v)
	}
	if !strings.Contains(v, "react-spring") {
		t.Errorf("Expected installation to mention react-spring, got '%s'", v)
	}
}

func TestAnimatedContentCLICommands(t *testing.T) {
	entry := AnimatedContent()

	tests := []struct {
		key      Key
		expected string
	}{
		{CLIDefault, "npx jsrepo add https://reactbits.dev/default/Animations/AnimatedContent"},
		{CLITailwind, "npx jsrepo add https://reactbits.dev/tailwind/Animations/AnimatedContent"},
		{CLITSDefault, "npx jsrepo add https://reactbits.dev/ts/default/Animations/AnimatedContent"},
		{CLITSTailwind, "npx jsrepo add https://reactbits.dev/ts/tailwind/Animations/AnimatedContent"},
	}

	for _, tt := range tests {
		v, _ := entry.Get(tt.key)
		if v != tt.expected {
			t.Errorf("Expected %s to be '%s', got '%s'", tt.key, tt.expected, v)
		}
	}

	cliDefault, _ := entry.Get(CLIDefault)
	cliTsDefault, _ := entry.Get(CLITSDefault)
	if !strings.Contains(cliDefault, "AnimatedContent") {
		t.Errorf("Expected cliDefault to contain 'AnimatedContent', got '%s'", cliDefault)
	}
	if cliDefault == cliTsDefault {
		t.Error("Expected cliDefault and cliTsDefault to differ")
	}
}

func TestAnimatedContentVariantsDistinct(t *testing.T) {
	entry := AnimatedContent()
	variants := Variants()

	for i := 0; i < len(variants); i++ {
		for j := i + 1; j < len(variants); j++ {
			a, _ := entry.Get(variants[i])
			b, _ := entry.Get(variants[j])
			if a == b {
				t.Errorf("Expected %s and %s to differ", variants[i], variants[j])
			}
		}
	}

	for _, k := range variants {
		v, _ := entry.Get(k)
		if !strings.HasSuffix(v, "export default AnimatedContent;") {
			t.Errorf("Expected %s to end with the default export", k)
		}
		if strings.HasSuffix(v, "\n") {
			t.Errorf("Expected trailing newline to be stripped from %s", k)
		}
	}

	tsCode, _ := entry.Get(TSCode)
	if !strings.Contains(tsCode, "interface AnimatedContentProps") {
		t.Error("Expected the typed variant to declare its props interface")
	}
}

func TestAnimatedContentUsage(t *testing.T) {
	usage, _ := AnimatedContent().Get(Usage)
	for _, want := range []string{"import AnimatedContent from './AnimatedContent'", "distance={150}", "threshold={0.2}"} {
		if !strings.Contains(usage, want) {
			t.Errorf("Expected usage to contain '%s'", want)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if !reflect.DeepEqual(r.IDs(), []string{"AnimatedContent"}) {
		t.Fatalf("Unexpected default registry ids %v", r.IDs())
	}

	c, err := r.Get("AnimatedContent")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Entry != AnimatedContent() {
		t.Error("Expected the registered entry to equal AnimatedContent()")
	}
	if !strings.HasSuffix(c.Entry.CLIDefault, c.Path()) {
		t.Errorf("Expected CLI command to reference '%s'", c.Path())
	}
}

func TestLoadEntry(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, k := range Keys() {
		fsys["comp/"+k.FileName()] = &fstest.MapFile{Data: []byte(k.String() + "\n")}
	}

	entry, err := LoadEntry(fsys, "comp")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entry.CLITSTailwind != "cliTsTailwind" {
		t.Errorf("Expected trailing newline to be stripped, got %q", entry.CLITSTailwind)
	}

	delete(fsys, "comp/"+Usage.FileName())
	fsys["comp/"+Code.FileName()] = &fstest.MapFile{Data: []byte("\n")}

	_, err = LoadEntry(fsys, "comp")
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "usage") || !strings.Contains(err.Error(), "code") {
		t.Errorf("Expected error to list usage and code, got '%s'", err.Error())
	}
}
