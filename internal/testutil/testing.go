package testutil

import (
	"strings"
	"testing"
)

// SnippetTestCase represents a test case for raw snippet serving
type SnippetTestCase struct {
	Name                string
	Path                string
	ExpectedStatus      int
	ExpectedBodyContent string
	ExpectedContentType string
	ExpectCacheControl  bool
}

// GetSnippetServingTests returns common test cases shared by the router adapters.
// Paths assume the adapters are mounted under "/snippets".
func GetSnippetServingTests() []SnippetTestCase {
	return []SnippetTestCase{
		{
			Name:                "serve installation command",
			Path:                "/snippets/AnimatedContent/installation",
			ExpectedStatus:      200,
			ExpectedBodyContent: "react-spring",
			ExpectedContentType: "text/x-shellscript",
			ExpectCacheControl:  true,
		},
		{
			Name:                "serve default CLI command",
			Path:                "/snippets/AnimatedContent/cliDefault",
			ExpectedStatus:      200,
			ExpectedBodyContent: "https://reactbits.dev/default/Animations/AnimatedContent",
			ExpectedContentType: "text/x-shellscript",
			ExpectCacheControl:  true,
		},
		{
			Name:                "serve usage example",
			Path:                "/snippets/AnimatedContent/usage",
			ExpectedStatus:      200,
			ExpectedBodyContent: "<div>Content to Animate</div>",
			ExpectedContentType: "text/jsx",
			ExpectCacheControl:  true,
		},
		{
			Name:                "serve default variant",
			Path:                "/snippets/AnimatedContent/code",
			ExpectedStatus:      200,
			ExpectedBodyContent: "const AnimatedContent = ({",
			ExpectedContentType: "text/jsx",
			ExpectCacheControl:  true,
		},
		{
			Name:                "serve typed variant by file name",
			Path:                "/snippets/AnimatedContent/tsTailwind.tsx",
			ExpectedStatus:      200,
			ExpectedBodyContent: "React.FC<AnimatedContentProps>",
			ExpectedContentType: "text/tsx",
			ExpectCacheControl:  true,
		},
	}
}

// GetNotFoundPaths returns snippet paths every adapter must answer with 404
func GetNotFoundPaths() []string {
	return []string{
		"/snippets/AnimatedContent/svelte",
		"/snippets/Unknown/code",
		"/snippets/AnimatedContent/code.tsx",
	}
}

// ValidateSnippetResponse validates common aspects of snippet responses
func ValidateSnippetResponse(t *testing.T, testCase SnippetTestCase, statusCode int, contentType, cacheControl, body string) {
	t.Helper()

	if statusCode != testCase.ExpectedStatus {
		t.Errorf("Expected status %d, got %d", testCase.ExpectedStatus, statusCode)
	} else {
		t.Logf("✅ Status code: %d", statusCode)
	}

	if !strings.Contains(contentType, testCase.ExpectedContentType) {
		t.Errorf("Expected Content-Type to contain '%s', got '%s'", testCase.ExpectedContentType, contentType)
	} else {
		t.Logf("✅ Content-Type: %s", contentType)
	}

	if testCase.ExpectCacheControl {
		if cacheControl == "" {
			t.Errorf("Expected Cache-Control header to be set, got empty")
		} else {
			t.Logf("✅ Cache-Control: %s", cacheControl)
		}
	}

	if !strings.Contains(body, testCase.ExpectedBodyContent) {
		t.Errorf("Expected body to contain '%s', got '%s'", testCase.ExpectedBodyContent, body)
	} else {
		t.Logf("✅ Body contains expected content")
	}

	if len(body) == 0 {
		t.Errorf("Expected non-empty body, got empty body")
	} else {
		t.Logf("✅ Body length: %d bytes", len(body))
	}
}
