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

// tokens[from:to] between ENTITY and END_ENTITY
type entityBlock struct {
	from, to int
	pos      lexer.Position
}

// entityBlocks finds ENTITY … END_ENTITY spans, each ending at the nearest END_ENTITY.
// An ENTITY met before END_ENTITY terminates the broken block and starts a new one.
func (s *scanner) entityBlocks() (blocks []entityBlock, errs []error) {
	for i := 0; i < len(s.tokens); i++ {
		if !isKeyword(s.tokens[i], kwEntity) {
			continue
		}
		from := i + 1
		to := s.find(from, len(s.tokens), func(j int) bool {
			return isKeyword(s.tokens[j], kwEndEntity) || isKeyword(s.tokens[j], kwEntity)
		})
		if to == len(s.tokens) || isKeyword(s.tokens[to], kwEntity) {
			name := ""
			if from < to {
				name = s.tokens[from].Value
			}
			errs = append(errs, errorAt(ErrUnterminatedEntity(name), s.tokens[i].Pos))
			i = to - 1
			continue
		}
		blocks = append(blocks, entityBlock{from: from, to: to, pos: s.tokens[i].Pos})
		i = to
	}
	return blocks, errs
}

func (s *scanner) parseEntity(b entityBlock, cfg *Config) (*Entity, error) {
	if b.from == b.to || s.tokens[b.from].Type != tokenIdent {
		return nil, errorAt(ErrMalformedEntity("", "name expected"), b.pos)
	}
	e := &Entity{
		Name: strings.ToUpper(s.tokens[b.from].Value),
		Pos:  s.tokens[b.from].Pos,
	}

	header := s.find(b.from+1, b.to, func(i int) bool { return isPunct(s.tokens[i], ";") })
	if header == b.to {
		return nil, errorAt(ErrMalformedEntity(e.Name, "header is not terminated by ';'"), e.Pos)
	}
	if err := s.parseEntityHeader(e, b.from+1, header, cfg); err != nil {
		return nil, err
	}

	body := header + 1
	attrsEnd := s.find(body, b.to, func(i int) bool {
		return isAnyKeyword(s.tokens[i], cfg.ConstraintKeywords) && s.lineAnchored(i) && s.statementStart(i)
	})
	for _, st := range s.statements(body, attrsEnd) {
		e.Attributes = append(e.Attributes, s.parseAttributes(st[0], st[1])...)
	}

	if where := s.find(attrsEnd, b.to, func(i int) bool { return s.sectionStart(i, kwWhere) }); where < b.to {
		end := s.find(where+1, b.to, func(i int) bool {
			return isAnyKeyword(s.tokens[i], ruleSectionEnds) && s.lineAnchored(i) && s.statementStart(i)
		})
		e.Rules = s.rules(where+1, end)
	}
	return e, nil
}

func (s *scanner) sectionStart(i int, kw string) bool {
	return isKeyword(s.tokens[i], kw) && s.lineAnchored(i) && s.statementStart(i)
}

// parseEntityHeader reads `[[ABSTRACT] SUPERTYPE [OF ( expr )]] [SUBTYPE OF ( name )]`
// clauses in tokens[from:to], in any order
func (s *scanner) parseEntityHeader(e *Entity, from, to int, cfg *Config) error {
	malformed := func(i int, reason string, args ...any) error {
		pos := e.Pos
		if i < to {
			pos = s.tokens[i].Pos
		}
		return errorAt(ErrMalformedEntity(e.Name, reason, args...), pos)
	}

	supertypeSeen, subtypeSeen := false, false
	for i := from; i < to; {
		t := s.tokens[i]
		switch {
		case isKeyword(t, kwAbstract), isKeyword(t, kwSupertype):
			if isKeyword(t, kwAbstract) {
				i++
				if i == to || !isKeyword(s.tokens[i], kwSupertype) {
					return malformed(i, "ABSTRACT must be followed by SUPERTYPE")
				}
				e.IsAbstract = true
			}
			if supertypeSeen {
				return malformed(i, "SUPERTYPE declared twice")
			}
			supertypeSeen = true
			i++
			if i == to || !isKeyword(s.tokens[i], kwOf) {
				continue
			}
			i++
			closing, ok := s.matchingParen(i, to)
			if !ok {
				return malformed(i, "SUPERTYPE OF expects a parenthesized list")
			}
			for j := i + 1; j < closing; j++ {
				if tok := s.tokens[j]; tok.Type == tokenIdent && !isAnyKeyword(tok, cfg.SupertypeOperators) {
					e.Subtypes = append(e.Subtypes, strings.ToUpper(tok.Value))
				}
			}
			i = closing + 1
		case isKeyword(t, kwSubtype):
			if subtypeSeen {
				return malformed(i, "SUBTYPE declared twice")
			}
			subtypeSeen = true
			i++
			if i == to || !isKeyword(s.tokens[i], kwOf) {
				return malformed(i, "SUBTYPE must be followed by OF")
			}
			i++
			closing, ok := s.matchingParen(i, to)
			if !ok {
				return malformed(i, "SUBTYPE OF expects a parenthesized name")
			}
			names, ok := identList(s.tokens[i : closing+1])
			if !ok || len(names) != 1 {
				return malformed(i, "SUBTYPE OF must name exactly one supertype, got %q", s.text(i, closing+1))
			}
			e.Supertype = strings.ToUpper(names[0])
			i = closing + 1
		default:
			return malformed(i, "unexpected %q in header", t.Value)
		}
	}
	return nil
}

// matchingParen returns the index of ')' closing the '(' at tokens[open]
func (s *scanner) matchingParen(open, to int) (int, bool) {
	if open >= to || !isPunct(s.tokens[open], "(") {
		return 0, false
	}
	depth := 0
	for i := open; i < to; i++ {
		switch {
		case isPunct(s.tokens[i], "("):
			depth++
		case isPunct(s.tokens[i], ")"):
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// parseAttributes reads `name {, name} : type` statement in tokens[from:to]
func (s *scanner) parseAttributes(from, to int) []Attribute {
	colon := s.find(from, to, func(i int) bool { return isPunct(s.tokens[i], ":") })
	if colon == from || colon >= to-1 {
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%s: not an attribute: %q", s.tokens[from].Pos, normalizeSpace(s.text(from, to))))
		}
		return nil
	}

	typ := normalizeSpace(s.text(colon+1, to))
	optional := isKeyword(s.tokens[colon+1], kwOptional)

	var attrs []Attribute
	var name strings.Builder
	pos := s.tokens[from].Pos
	flush := func() {
		if name.Len() > 0 {
			attrs = append(attrs, Attribute{Name: name.String(), Type: typ, Optional: optional, Pos: pos})
		}
		name.Reset()
	}
	for i := from; i < colon; i++ {
		if isPunct(s.tokens[i], ",") {
			flush()
			continue
		}
		if name.Len() == 0 {
			pos = s.tokens[i].Pos
		}
		// SELF\Parent.Name redeclarations are several tokens
		name.WriteString(s.tokens[i].Value)
	}
	flush()
	return attrs
}

func resolveEntities(s *scanner, cfg *Config) (Entities, []error) {
	blocks, errs := s.entityBlocks()
	entities := make(Entities, len(blocks))
	for _, b := range blocks {
		e, err := s.parseEntity(b, cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := entities[e.Name]; ok {
			errs = append(errs, errorAt(ErrDuplicateEntity(e.Name, prev.Pos), e.Pos))
			continue
		}
		entities[e.Name] = e
	}
	return entities, append(errs, entities.cycles()...)
}

// Names returns entity names sorted
func (ee Entities) Names() []string {
	names := maps.Keys(ee)
	slices.Sort(names)
	return names
}

// cycles reports every supertype cycle once
func (ee Entities) cycles() (errs []error) {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[string]int, len(ee))
	for _, name := range ee.Names() {
		var path []string
		for cur := name; ; {
			e, ok := ee[cur]
			if !ok || state[cur] == done {
				break
			}
			if state[cur] == onPath {
				cycle := append(slices.Clone(path[slices.Index(path, cur):]), cur)
				errs = append(errs, errorAt(ErrSupertypeCycle(cycle), e.Pos))
				break
			}
			state[cur] = onPath
			path = append(path, cur)
			if !e.HasSupertype() {
				break
			}
			cur = e.Supertype
		}
		for _, p := range path {
			state[p] = done
		}
	}
	return errs
}
