/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/exp/slices"
)

// Rules are tried in order, first match wins. Char accepts anything the other rules
// reject, so lexing never fails on damaged text.
var schemaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `\(\*(?s:.*?)\*\)`},
	{Name: "LineComment", Pattern: `--[^\n]*`},
	{Name: "String", Pattern: `'(''|[^'])*'|"[^"]*"`},
	{Name: "Number", Pattern: `\d+(\.\d*)?([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `:=:|:<>:|:=|<\*|<=|>=|<>|\|\|`},
	{Name: "Punct", Pattern: `[;:,=()\[\]{}]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Char", Pattern: `.`},
})

var (
	tokenIdent = schemaLexer.Symbols()["Ident"]
	tokenPunct = schemaLexer.Symbols()["Punct"]

	elided = map[lexer.TokenType]bool{
		schemaLexer.Symbols()["Comment"]:     true,
		schemaLexer.Symbols()["LineComment"]: true,
		schemaLexer.Symbols()["Whitespace"]:  true,
	}
)

func tokenize(fileName, src string) ([]lexer.Token, error) {
	lex, err := schemaLexer.LexString(fileName, src)
	if err != nil {
		return nil, err
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	tokens := make([]lexer.Token, 0, len(all)/2)
	for _, t := range all {
		if t.EOF() || elided[t.Type] {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// scanner walks the token stream of one immutable source text
type scanner struct {
	src    string
	tokens []lexer.Token
	pos    int
}

func newScanner(fileName, src string) (*scanner, error) {
	tokens, err := tokenize(fileName, src)
	if err != nil {
		return nil, err
	}
	return &scanner{src: src, tokens: tokens}, nil
}

// rewind returns an independent scanner over the same tokens
func (s *scanner) rewind() *scanner {
	return &scanner{src: s.src, tokens: s.tokens}
}

func (s *scanner) eof() bool { return s.pos >= len(s.tokens) }

func (s *scanner) peekAt(n int) lexer.Token {
	if s.pos+n >= len(s.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return s.tokens[s.pos+n]
}

func (s *scanner) peek() lexer.Token { return s.peekAt(0) }

func (s *scanner) advance() lexer.Token {
	tok := s.peek()
	if !s.eof() {
		s.pos++
	}
	return tok
}

// text returns the source text covered by tokens[from:to]
func (s *scanner) text(from, to int) string {
	if from >= to {
		return ""
	}
	last := s.tokens[to-1]
	return s.src[s.tokens[from].Pos.Offset : last.Pos.Offset+len(last.Value)]
}

// lineAnchored reports whether tokens[i] is the first token on its source line
func (s *scanner) lineAnchored(i int) bool {
	return i == 0 || s.tokens[i-1].Pos.Line != s.tokens[i].Pos.Line
}

// statementStart reports whether tokens[i] follows a ';'
func (s *scanner) statementStart(i int) bool {
	return i > 0 && isPunct(s.tokens[i-1], ";")
}

// find returns the index of the first token in [from, to) accepted by f, or to
func (s *scanner) find(from, to int, f func(i int) bool) int {
	for i := from; i < to; i++ {
		if f(i) {
			return i
		}
	}
	return to
}

// statements splits tokens[from:to] at ';' into [start, end) ranges. A trailing
// statement without ';' is dropped.
func (s *scanner) statements(from, to int) [][2]int {
	var res [][2]int
	start := from
	for i := from; i < to; i++ {
		if !isPunct(s.tokens[i], ";") {
			continue
		}
		if i > start {
			res = append(res, [2]int{start, i})
		}
		start = i + 1
	}
	return res
}

// rules reads `[label :] expression ;` statements of a WHERE clause in tokens[from:to]
func (s *scanner) rules(from, to int) []Rule {
	var res []Rule
	for _, st := range s.statements(from, to) {
		a, b := st[0], st[1]
		r := Rule{Pos: s.tokens[a].Pos}
		if b-a > 2 && s.tokens[a].Type == tokenIdent && isPunct(s.tokens[a+1], ":") {
			r.Label = s.tokens[a].Value
			a += 2
		}
		r.Expr = normalizeSpace(s.text(a, b))
		res = append(res, r)
	}
	return res
}

func (s *scanner) schemaName() string {
	for i := 0; i+1 < len(s.tokens); i++ {
		if isKeyword(s.tokens[i], kwSchema) && s.tokens[i+1].Type == tokenIdent {
			return s.tokens[i+1].Value
		}
	}
	return ""
}

func isKeyword(t lexer.Token, kw string) bool {
	return t.Type == tokenIdent && t.Value == kw
}

func isAnyKeyword(t lexer.Token, kws []string) bool {
	return t.Type == tokenIdent && slices.Contains(kws, t.Value)
}

func isPunct(t lexer.Token, p string) bool {
	return t.Type == tokenPunct && t.Value == p
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
