/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TYPE <name> = <rhs> ; [WHERE rules] [END_TYPE ;]
type typeDecl struct {
	name string
	pos  lexer.Position

	// rhs is tokens[from:to]
	from, to int

	rules  []Rule
	closed bool
}

func (d *typeDecl) rhs(s *scanner) []lexer.Token { return s.tokens[d.from:d.to] }

// Declaration scanning never crosses these, a declaration reaching one has lost its ';'
func isDeclBoundary(t lexer.Token) bool {
	return isKeyword(t, kwType) || isKeyword(t, kwEndType) || isKeyword(t, kwEntity) || isKeyword(t, kwEndEntity)
}

func (s *scanner) typeDecls() (decls []typeDecl, errs []error) {
	seen := make(map[string]lexer.Position)
	for !s.eof() {
		if !isKeyword(s.peek(), kwType) || s.peekAt(1).Type != tokenIdent || !isPunct(s.peekAt(2), "=") {
			s.advance()
			continue
		}
		s.advance()
		nameTok := s.advance()
		s.advance()

		d := typeDecl{name: nameTok.Value, pos: nameTok.Pos, from: s.pos}
		for !s.eof() && !isPunct(s.peek(), ";") && !isDeclBoundary(s.peek()) {
			s.advance()
		}
		if !isPunct(s.peek(), ";") {
			if logger.IsVerbose() {
				logger.Verbose(fmt.Sprintf("%s: type «%s» skipped, no ';' after right-hand side", nameTok.Pos, d.name))
			}
			continue
		}
		d.to = s.pos
		s.advance()
		d.rules, d.closed = s.typeTail()

		if prev, ok := seen[d.name]; ok {
			errs = append(errs, errorAt(ErrDuplicateType(d.name, prev), d.pos))
			continue
		}
		seen[d.name] = d.pos
		decls = append(decls, d)
	}
	return decls, errs
}

// typeTail reads optional WHERE rules and END_TYPE
func (s *scanner) typeTail() (rules []Rule, closed bool) {
	if isKeyword(s.peek(), kwWhere) {
		s.advance()
		end := s.find(s.pos, len(s.tokens), func(i int) bool { return isDeclBoundary(s.tokens[i]) })
		rules = s.rules(s.pos, end)
		s.pos = end
	}
	if !isKeyword(s.peek(), kwEndType) {
		return rules, false
	}
	s.advance()
	if isPunct(s.peek(), ";") {
		s.advance()
	}
	return rules, true
}

type typeMatcher func(s *scanner, d *typeDecl, classified Types) (*Type, bool)

type typePass struct {
	name  string
	match typeMatcher
}

// apply classifies the declarations not classified by earlier passes and returns
// the extended table, classified is not changed
func (p typePass) apply(s *scanner, decls []typeDecl, classified Types) Types {
	res := maps.Clone(classified)
	for i := range decls {
		d := &decls[i]
		if _, ok := classified[d.name]; ok {
			continue
		}
		t, ok := p.match(s, d, classified)
		if !ok {
			continue
		}
		t.Name, t.Pos, t.Rules = d.name, d.pos, d.rules
		res[d.name] = t
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s: %d type(s)", p.name, len(res)-len(classified)))
	}
	return res
}

// Order matters: defined types are recognized only by names classified before them
func typePasses(cfg *Config) []typePass {
	passes := []typePass{{"simple", simpleMatcher(cfg.SimpleTypes)}}
	for k := AggregationKind_SET; k < AggregationKind_count; k++ {
		passes = append(passes, typePass{"aggregated " + k.Keyword(), aggregationMatcher(k)})
	}
	return append(passes,
		typePass{"enumeration", listMatcher(TypeKind_Enumeration, kwEnumeration, kwOf)},
		typePass{"select", listMatcher(TypeKind_Select, kwSelect)},
		typePass{"defined", matchDefined},
		typePass{"other", matchOther},
	)
}

func simpleMatcher(simple []string) typeMatcher {
	return func(s *scanner, d *typeDecl, _ Types) (*Type, bool) {
		rhs := d.rhs(s)
		if len(rhs) != 1 || !isAnyKeyword(rhs[0], simple) {
			return nil, false
		}
		return &Type{Kind: TypeKind_Simple, Simple: rhs[0].Value}, true
	}
}

func aggregationMatcher(k AggregationKind) typeMatcher {
	return func(s *scanner, d *typeDecl, _ Types) (*Type, bool) {
		rhs := d.rhs(s)
		if len(rhs) < 2 || !isKeyword(rhs[0], k.Keyword()) {
			return nil, false
		}
		if k == AggregationKind_STRING && !isPunct(rhs[1], "(") {
			return nil, false
		}
		return &Type{Kind: TypeKind_Aggregated, Aggregation: k, Spec: s.text(d.from+1, d.to)}, true
	}
}

// listMatcher matches `<prefix...> ( id, id, ... )` declarations terminated by END_TYPE
func listMatcher(kind TypeKind, prefix ...string) typeMatcher {
	return func(s *scanner, d *typeDecl, _ Types) (*Type, bool) {
		rhs := d.rhs(s)
		if !d.closed || len(rhs) < len(prefix) {
			return nil, false
		}
		for i, kw := range prefix {
			if !isKeyword(rhs[i], kw) {
				return nil, false
			}
		}
		names, ok := identList(rhs[len(prefix):])
		if !ok {
			return nil, false
		}
		t := &Type{Kind: kind}
		if kind == TypeKind_Enumeration {
			t.Values = names
		} else {
			t.Items = names
		}
		return t, true
	}
}

func matchDefined(s *scanner, d *typeDecl, classified Types) (*Type, bool) {
	rhs := d.rhs(s)
	if len(rhs) != 1 || rhs[0].Type != tokenIdent {
		return nil, false
	}
	if _, ok := classified[rhs[0].Value]; !ok {
		return nil, false
	}
	return &Type{Kind: TypeKind_Defined, Underlying: rhs[0].Value}, true
}

func matchOther(s *scanner, d *typeDecl, _ Types) (*Type, bool) {
	return &Type{Kind: TypeKind_Other, Raw: s.text(d.from, d.to)}, true
}

// identList parses `( id {, id} )`, the whole token slice must be consumed
func identList(tokens []lexer.Token) ([]string, bool) {
	if len(tokens) < 2 || !isPunct(tokens[0], "(") || !isPunct(tokens[len(tokens)-1], ")") {
		return nil, false
	}
	inner := tokens[1 : len(tokens)-1]
	names := make([]string, 0, (len(inner)+1)/2)
	for i, t := range inner {
		if i%2 == 0 {
			if t.Type != tokenIdent {
				return nil, false
			}
			names = append(names, t.Value)
		} else if !isPunct(t, ",") {
			return nil, false
		}
	}
	if len(inner) > 0 && len(inner)%2 == 0 {
		// trailing comma
		return nil, false
	}
	return names, true
}

func classifyTypes(s *scanner, cfg *Config) (Types, []error) {
	decls, errs := s.typeDecls()
	classified := make(Types, len(decls))
	for _, p := range typePasses(cfg) {
		classified = p.apply(s, decls, classified)
	}
	return classified, errs
}

// TypesOfKind returns types of the kind sorted by name
func (tt Types) TypesOfKind(kind TypeKind) []*Type {
	res := make([]*Type, 0)
	for _, t := range tt {
		if t.Kind == kind {
			res = append(res, t)
		}
	}
	slices.SortFunc(res, func(a, b *Type) bool { return a.Name < b.Name })
	return res
}

// Names returns type names sorted
func (tt Types) Names() []string {
	names := maps.Keys(tt)
	slices.Sort(names)
	return names
}

func (tt Types) countByKind() (res [TypeKind_count]int) {
	for _, t := range tt {
		res[t.Kind]++
	}
	return res
}

func (t *Type) String() string {
	return fmt.Sprintf("%s %s = %s", strings.ToLower(t.Kind.TrimString()), t.Name, t.Text())
}
