package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(value string, line int) Text {
	return Text{Value: value, Span: lineSpan(line)}
}

func ws(line int) Whitespace {
	return Whitespace{Span: lineSpan(line)}
}

func para(start, end int, nodes ...Node) Paragraph {
	return Paragraph{Nodes: nodes, Span: LineSpan{Start: start, End: end}}
}

func item(level, start, end int, nodes []Node, children ...Node) UnorderedList {
	return UnorderedList{
		Level:    level,
		Nodes:    nodes,
		Children: children,
		Span:     LineSpan{Start: start, End: end},
	}
}

// words renders "item 1.1" as Text, Whitespace, Text on one line.
func words(line int, first, second string) []Node {
	return []Node{text(first, line), ws(line), text(second, line)}
}

func TestParseBreak(t *testing.T) {
	assert.Equal(t, []Node{
		para(1, 1, text("normal", 1)),
		EndOfLine{Span: lineSpan(2)},
		para(3, 3, text("text", 3)),
	}, Parse("normal\n\ntext"))
}

func TestParsePlainText(t *testing.T) {
	assert.Equal(t, []Node{
		para(1, 1, words(1, "normal", "text")...),
	}, Parse("normal text"))
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParseMultipleText(t *testing.T) {
	assert.Equal(t, []Node{
		para(1, 1, Bold{Nodes: []Node{text("bold", 1)}, Span: lineSpan(1)}),
		para(2, 2, Italic{Nodes: []Node{text("italic", 2)}, Span: lineSpan(2)}),
		para(3, 3, text("plain", 3)),
	}, Parse("**bold**\n*italic*\nplain"))
}

func TestParseEmphasis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Node
	}{
		{
			name:  "closed italic",
			input: "*italic text*",
			want: []Node{para(1, 1,
				Italic{Nodes: words(1, "italic", "text"), Span: lineSpan(1)},
			)},
		},
		{
			name:  "unclosed italic",
			input: "*italic text",
			want: []Node{para(1, 1,
				text("*", 1), text("italic", 1), ws(1), text("text", 1),
			)},
		},
		{
			name:  "unmatched trailing italic",
			input: "italic text*",
			want: []Node{para(1, 1,
				text("italic", 1), ws(1), text("text", 1), text("*", 1),
			)},
		},
		{
			name:  "closed bold",
			input: "**bold text**",
			want: []Node{para(1, 1,
				Bold{Nodes: words(1, "bold", "text"), Span: lineSpan(1)},
			)},
		},
		{
			name:  "unclosed bold",
			input: "**bold text",
			want: []Node{para(1, 1,
				text("**", 1), text("bold", 1), ws(1), text("text", 1),
			)},
		},
		{
			name:  "text after closing marker",
			input: "*a* b",
			want: []Node{para(1, 1,
				Italic{Nodes: []Node{text("a", 1)}, Span: lineSpan(1)}, ws(1), text("b", 1),
			)},
		},
		{
			name:  "italic inside bold stays literal",
			input: "**a *b* c**",
			want: []Node{para(1, 1,
				Bold{Nodes: []Node{
					text("a", 1), ws(1), text("*", 1), text("b", 1), text("*", 1), ws(1), text("c", 1),
				}, Span: lineSpan(1)},
			)},
		},
		{
			name:  "empty bold",
			input: "****",
			want:  []Node{para(1, 1, Bold{Span: lineSpan(1)})},
		},
		{
			name:  "unclosed at end of line",
			input: "x *a\nb",
			want: []Node{
				para(1, 1, text("x", 1), ws(1), text("*", 1), text("a", 1)),
				para(2, 2, text("b", 2)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParseHeader(t *testing.T) {
	assert.Equal(t, []Node{
		Header{
			Level: 1,
			Nodes: []Node{para(1, 1, words(1, "Header", "text")...)},
			Span:  lineSpan(1),
		},
	}, Parse("# Header text"))
}

func TestParseHeaderLevels(t *testing.T) {
	for level := 1; level <= MaxHeaderLevel; level++ {
		input := ""
		for i := 0; i < level; i++ {
			input += "#"
		}
		nodes := Parse(input + " title")
		require.Len(t, nodes, 1)
		header, ok := nodes[0].(Header)
		require.True(t, ok, "expected Header, got %T", nodes[0])
		assert.Equal(t, level, header.Level)
	}
}

func TestParseHeaderWithNoText(t *testing.T) {
	assert.Equal(t, []Node{
		Header{
			Level: 3,
			Nodes: []Node{para(1, 1)},
			Span:  lineSpan(1),
		},
		para(2, 2, text("text", 2)),
	}, Parse("### \ntext"))
}

func TestParseHeaderRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Node
	}{
		{
			name:  "too long",
			input: "####### Header text\n",
			want: []Node{para(1, 1,
				text("#######", 1), ws(1), text("Header", 1), ws(1), text("text", 1),
			)},
		},
		{
			name:  "fused with text",
			input: "#Header text",
			want: []Node{para(1, 1,
				text("#Header", 1), ws(1), text("text", 1),
			)},
		},
		{
			name:  "fused and too long",
			input: "########tag",
			want:  []Node{para(1, 1, text("########tag", 1))},
		},
		{
			name:  "alone",
			input: "#",
			want:  []Node{para(1, 1, text("#", 1))},
		},
		{
			name:  "followed by punctuation",
			input: "##!",
			want:  []Node{para(1, 1, text("##", 1), text("!", 1))},
		},
		{
			name:  "followed by emphasis",
			input: "#*a*",
			want: []Node{para(1, 1,
				text("#", 1), Italic{Nodes: []Node{text("a", 1)}, Span: lineSpan(1)},
			)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParseUnorderedList(t *testing.T) {
	assert.Equal(t, []Node{
		item(0, 1, 1, words(1, "item", "1")),
		item(0, 2, 2, words(2, "item", "2")),
		item(0, 3, 3, words(3, "item", "3")),
	}, Parse("- item 1\n- item 2\n- item 3\n"))
}

func TestParseUnorderedNestedList(t *testing.T) {
	assert.Equal(t, []Node{
		item(0, 1, 2, words(1, "item", "1"),
			item(1, 2, 2, words(2, "item", "1.1")),
		),
	}, Parse("- item 1\n - item 1.1\n"))
}

func TestParseNestedUnorderedListInTwoLevels(t *testing.T) {
	assert.Equal(t, []Node{
		item(0, 1, 3, words(1, "item", "1"),
			item(1, 2, 3, words(2, "item", "1.1"),
				item(2, 3, 3, words(3, "item", "1.1.1")),
			),
		),
	}, Parse("- item 1\n - item 1.1\n  - item 1.1.1"))
}

func TestParseTwoUnorderedLists(t *testing.T) {
	assert.Equal(t, []Node{
		item(0, 1, 2, []Node{text("item1", 1)},
			item(1, 2, 2, []Node{text("item1.1", 2)}),
		),
		item(0, 3, 3, []Node{text("item2", 3)}),
	}, Parse("- item1\n - item1.1\n- item2"))
}

func TestParseUnorderedComplexlyNestedList(t *testing.T) {
	input := "- item 1\n - item 1.1\n - item 1.2\n  - item 1.2.1\n   - item 1.2.1.1\n - item 1.3"

	assert.Equal(t, []Node{
		item(0, 1, 6, words(1, "item", "1"),
			item(1, 2, 2, words(2, "item", "1.1")),
			item(1, 3, 5, words(3, "item", "1.2"),
				item(2, 4, 5, words(4, "item", "1.2.1"),
					item(3, 5, 5, words(5, "item", "1.2.1.1")),
				),
			),
			item(1, 6, 6, words(6, "item", "1.3")),
		),
	}, Parse(input))
}

func TestParseUnorderedListStartedWithNestedContent(t *testing.T) {
	assert.Equal(t, []Node{
		para(1, 1, ws(1), text("- ", 1), text("item1", 1)),
	}, Parse(" - item1"))
}

func TestParseUnorderedListEndsAtUnindentedText(t *testing.T) {
	assert.Equal(t, []Node{
		item(0, 1, 1, []Node{text("a", 1)}),
		para(2, 2, ws(2), text("b", 2)),
	}, Parse("- a\n b"))
}

func TestParseUnorderedListKeepsMarkupLiteral(t *testing.T) {
	assert.Equal(t, []Node{
		item(0, 1, 1, []Node{
			text("item", 1), ws(1), text("*", 1), text("x", 1), text("*", 1),
		}),
	}, Parse("- item *x*"))
}

func TestParseUnorderedListFollowedByParagraph(t *testing.T) {
	assert.Equal(t, []Node{
		item(0, 1, 1, []Node{text("a", 1)}),
		para(2, 2, text("after", 2)),
	}, Parse("- a\nafter"))
}

func TestParseMixedDocument(t *testing.T) {
	input := "# Title\n\n- one\n - two\n\ntext **b**\n"

	// The blank line after a list is consumed by the list.
	nodes := Parse(input)
	require.Len(t, nodes, 4)
	assert.IsType(t, Header{}, nodes[0])
	assert.Equal(t, EndOfLine{Span: lineSpan(2)}, nodes[1])
	assert.Equal(t, item(0, 3, 4, []Node{text("one", 3)},
		item(1, 4, 4, []Node{text("two", 4)}),
	), nodes[2])
	assert.Equal(t, para(6, 6,
		text("text", 6), ws(6), Bold{Nodes: []Node{text("b", 6)}, Span: lineSpan(6)},
	), nodes[3])
}

func TestParseUnorderedListEndsAfterNestedItem(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Node
	}{
		{
			name:  "unindented text",
			input: "- a\n - b\ntext",
			want: []Node{
				item(0, 1, 2, []Node{text("a", 1)}, item(1, 2, 2, []Node{text("b", 2)})),
				para(3, 3, text("text", 3)),
			},
		},
		{
			name:  "indented text",
			input: "- a\n - b\n c",
			want: []Node{
				item(0, 1, 2, []Node{text("a", 1)}, item(1, 2, 2, []Node{text("b", 2)})),
				para(3, 3, ws(3), text("c", 3)),
			},
		},
		{
			name:  "same line items nest",
			input: "- a - b",
			want: []Node{
				item(0, 1, 1, []Node{text("a", 1)}, item(1, 1, 1, []Node{text("b", 1)})),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestBuildLeavesTokensUntouched(t *testing.T) {
	tokens := Tokenize("####### x")
	before := append([]Token(nil), tokens...)

	Build(tokens)

	assert.Equal(t, before, tokens)
}

func TestParserRecoveries(t *testing.T) {
	p := NewParser(Tokenize("####### x\n#tag\n**b *i\n#\n*open"))
	p.Parse()

	assert.Equal(t, []Recovery{
		{Kind: RecoveryHeaderTooDeep, Line: 1, Literal: "#######"},
		{Kind: RecoveryHeaderFused, Line: 2, Literal: "#"},
		{Kind: RecoveryUnclosedBold, Line: 3, Literal: "**"},
		{Kind: RecoveryHeaderNoSpace, Line: 4, Literal: "#"},
		{Kind: RecoveryUnclosedItalic, Line: 5, Literal: "*"},
	}, p.Recoveries())
}

func TestParserNoRecoveries(t *testing.T) {
	p := NewParser(Tokenize("# ok\n- a\n - b\n*i* **b**"), WithFile("ok.md"))
	p.Parse()
	assert.Empty(t, p.Recoveries())
}

var propertyInputs = []string{
	"",
	"# Header text",
	"####### Header text\n",
	"#Header\n##\n### \n",
	"- item 1\n - item 1.1\n - item 1.2\n  - item 1.2.1\n   - item 1.2.1.1\n - item 1.3",
	"- a\n   - deep\n - shallow\n- b\n\n- c",
	"- a - b - c",
	"-  - x\n- \n - y\n- z",
	"text *italic* **bold** ***both*** *open\n**open",
	" - indented\n  text\n\n\n",
	"# *h* **x**\n- *y*\nplain (with) [brackets] {and} :colons; `code` > quote!",
	"*\n**\n***\n****\n",
}

func TestParseSpansNest(t *testing.T) {
	for _, input := range propertyInputs {
		checkSpans(t, input, Parse(input), LineSpan{Start: 0, End: 1 << 30})
	}
}

func checkSpans(t *testing.T, input string, nodes []Node, parent LineSpan) {
	t.Helper()
	for _, n := range nodes {
		span := n.Position()
		if span.Start > span.End {
			t.Errorf("%q: %s span %v has start after end", input, KindOf(n), span)
		}
		if span.Start < parent.Start || span.End > parent.End {
			t.Errorf("%q: %s span %v escapes parent %v", input, KindOf(n), span, parent)
		}
		switch n.(type) {
		case Text, Whitespace, EndOfLine:
			if span.Start != span.End {
				t.Errorf("%q: leaf %s spans %v", input, KindOf(n), span)
			}
		}
		checkSpans(t, input, Children(n), span)
	}
}

func TestParseHeaderLevelBounded(t *testing.T) {
	for _, input := range append(propertyInputs, "######## x", "########## y\n") {
		Walk(Parse(input), func(n Node, _ int) bool {
			if h, ok := n.(Header); ok && (h.Level < 1 || h.Level > MaxHeaderLevel) {
				t.Errorf("%q: header level %d out of range", input, h.Level)
			}
			return true
		})
	}
}

func TestParseListLevelsIncrease(t *testing.T) {
	var check func(input string, list UnorderedList)
	check = func(input string, list UnorderedList) {
		for _, c := range list.Children {
			child := c.(UnorderedList)
			if child.Level <= list.Level {
				t.Errorf("%q: child level %d not deeper than parent %d", input, child.Level, list.Level)
			}
			check(input, child)
		}
	}

	for _, input := range propertyInputs {
		for _, n := range Parse(input) {
			if list, ok := n.(UnorderedList); ok {
				check(input, list)
			}
		}
	}
}
