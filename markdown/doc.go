// Package markdown turns text written in a small Markdown dialect into a
// line-annotated document tree.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│    Input    │────▶│  Tokenize   │────▶│    Build    │
//	│   (text)    │     │  ([]Token)  │     │  ([]Node)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │ charCursor  │     │ TokenCursor │
//	                    └─────────────┘     └─────────────┘
//
// The pipeline is a single pass. Tokenize materialises the whole token slice
// first because the builder backtracks, at most a few tokens at a time, and
// rewrites tokens it finds misclassified.
//
// # Dialect
//
//	# Header            levels 1 to 6, a space must follow the markers
//	- item              unordered list item
//	 - nested item      nested by leading spaces, one level per space
//	*italic*            emphasis, closed on the same line
//	**bold**
//
// Every other punctuation mark ('>', '`', '!', brackets, parentheses, ':'
// and ';') is tokenized separately but read back as plain text.
//
// # Error Recovery
//
// Build never fails. Malformed markup degrades to literal text:
//
//   - "####### x" (more than six markers) and "#" followed by anything
//     but a space become text; "#tag" becomes the single word "#tag".
//   - An emphasis marker without a partner on the same line becomes a
//     literal "*" or "**" followed by the content it would have wrapped.
//   - A list line indented no deeper than the current item closes that
//     item; the line starts a sibling or a new block instead.
//
// Parser.Recoveries reports each of these so tools can point at them.
//
// # Emphasis Pairing
//
// Stars are paired left to right as they are read: "**" is one Bold
// marker, "***" is Bold followed by Italic and "****" is two Bold markers.
// No longest-match or nesting analysis is attempted.
//
// # Positions
//
// Every node carries a LineSpan of inclusive 1-based lines. A parent's span
// always covers the spans of its children.
//
// # Example Usage
//
//	nodes := markdown.Parse("# Title\n- one\n - one.one\n")
//	markdown.Walk(nodes, func(n markdown.Node, depth int) bool {
//	    fmt.Println(strings.Repeat("  ", depth), markdown.KindOf(n), n.Position())
//	    return true
//	})
package markdown
