// Package snippets holds the documentation content for React Bits components:
// installation commands, CLI fetcher commands, a usage example and four
// source variants per component.
//
// Content is embedded at build time and loaded once during package
// initialisation. Keys form a closed set (see Key), so a lookup can only
// fail at the boundary where free-form names are parsed:
//
//	entry := snippets.AnimatedContent()
//	install, _ := entry.Get(snippets.Installation)
//
//	text, err := snippets.Default().Lookup("AnimatedContent", "tsCode")
package snippets
