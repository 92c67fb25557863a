// Package lexer turns a BASIC source string into a two-dimensional token
// array: one token slice per physical line, each ending in a NEWLINE token.
// Empty lines are preserved so that line numbers reported in errors match
// the source exactly.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/macosten/swiftbasic-core/internal/token"
)

// operatorChars is the character class that extends an operator token
// (class 2 of the four greedy tokenization classes).
const operatorChars = "+-*/%=<>!|^&"

// isGeneralStart reports the set of runes (besides letters/digits/emoji) that may
// begin a general token (class 1).
func isGeneralStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || isEmoji(r)
}

func isGeneralCont(r rune) bool {
	return isGeneralStart(r)
}

func isOperatorChar(r rune) bool {
	for _, c := range operatorChars {
		if c == r {
			return true
		}
	}
	return false
}

// zeroWidthJoiner and the variation selectors are the multi-scalar emoji
// markers named by the classifier rules.
const (
	zeroWidthJoiner  = '‍'
	variationSelect15 = '︎'
	variationSelect16 = '️'
)

// isEmoji reports whether r falls in Unicode category So (Other_Symbol) or
// is one of the join-control/variation-selector runes the classifier rule
// calls out. No library in use exposes the Unicode emoji-presentation
// property table, so that property is not checked; this approximates it
// with the stdlib unicode.So category (see DESIGN.md). Regional indicators
// (flags) are in So and ZWJ/variation-selector markers are matched here, so
// both extend a general token through isGeneralCont; skin-tone modifiers
// are in category Sk and are not matched.
func isEmoji(r rune) bool {
	if unicode.Is(unicode.So, r) {
		return true
	}
	return r == zeroWidthJoiner || r == variationSelect15 || r == variationSelect16
}

// isEmojiMarker reports whether r is a join-control or variation selector,
// the signal used to decide that a multi-scalar sequence is an emoji
// cluster even when none of its individual scalars are themselves in
// category So.
func isEmojiMarker(r rune) bool {
	return r == zeroWidthJoiner || r == variationSelect15 || r == variationSelect16
}

// Lexer scans one BASIC source string into a Program (a slice of lines,
// each a slice of tokens). It is used once per Lex call; it holds no state
// across calls.
type Lexer struct {
	lines []string
}

// New creates a Lexer over source, splitting it into physical lines on "\n".
// Empty lines are preserved in order, matching Program's invariant that
// line indices correspond exactly to source order.
func New(source string) *Lexer {
	return &Lexer{lines: splitLines(source)}
}

func splitLines(source string) []string {
	var lines []string
	start := 0
	for i, r := range source {
		if r == '\n' {
			lines = append(lines, source[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	lines = append(lines, source[start:])
	return lines
}

// Lex tokenizes every line and returns the resulting 2-D token array.
func (l *Lexer) Lex() [][]token.Token {
	program := make([][]token.Token, len(l.lines))
	for i, line := range l.lines {
		program[i] = lexLine(line, i)
	}
	return program
}

// lexLine walks one physical line, skipping whitespace and greedily
// consuming the four token classes described by the tokenization rules,
// and appends a trailing NEWLINE token.
func lexLine(line string, lineIndex int) []token.Token {
	runes := []rune(line)
	var toks []token.Token
	col := 0
	n := len(runes)

	for col < n {
		r := runes[col]
		if unicode.IsSpace(r) {
			col++
			continue
		}

		start := col
		switch {
		case token.IsQuote(r):
			col++
			for col < n && !token.IsQuote(runes[col]) {
				col++
			}
			if col < n {
				col++ // include closing quote
			}
			text := string(runes[start:col])
			kind, raw := token.Classify(text)
			toks = append(toks, token.Token{Kind: kind, Text: raw, Pos: token.Position{Line: lineIndex, Column: start}})

		case isGeneralStartForRuneSlice(runes, col):
			col++
			for col < n && isGeneralCont(runes[col]) {
				col++
			}
			text := string(runes[start:col])
			kind, raw := token.Classify(text)
			toks = append(toks, token.Token{Kind: kind, Text: raw, Pos: token.Position{Line: lineIndex, Column: start}})

		case isOperatorChar(r):
			col++
			for col < n && isOperatorChar(runes[col]) {
				col++
			}
			text := string(runes[start:col])
			if kind, ok := token.OperatorKind(text); ok {
				toks = append(toks, token.Token{Kind: kind, Text: text, Pos: token.Position{Line: lineIndex, Column: start}})
			} else {
				toks = append(toks, token.Token{Kind: token.ILLEGAL, Text: text, Pos: token.Position{Line: lineIndex, Column: start}})
			}

		default:
			if kind, ok := token.SeparatorKind(r); ok {
				toks = append(toks, token.Token{Kind: kind, Text: string(r), Pos: token.Position{Line: lineIndex, Column: start}})
			} else {
				toks = append(toks, token.Token{Kind: token.ILLEGAL, Text: string(r), Pos: token.Position{Line: lineIndex, Column: start}})
			}
			col++
		}
	}

	toks = append(toks, token.Token{Kind: token.NEWLINE, Text: "\n", Pos: token.Position{Line: lineIndex, Column: col}})
	return toks
}

// isGeneralStartForRuneSlice decides whether the general-token class
// applies at runes[i], accounting for multi-scalar emoji clusters: a
// sequence of otherwise non-general runes joined by a ZWJ or followed by a
// variation selector is still treated as the start of a general (emoji
// identifier) token, per the classifier's multi-scalar emoji rule.
func isGeneralStartForRuneSlice(runes []rune, i int) bool {
	if isGeneralStart(runes[i]) {
		return true
	}
	if i+1 < len(runes) && isEmojiMarker(runes[i+1]) {
		return true
	}
	return false
}
