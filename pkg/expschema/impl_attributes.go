/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import "strings"

// Attributes returns all attributes of the entity including inherited ones, from the
// root supertype down to the entity itself, each level in declaration order.
//
// Walk stops silently at a supertype missing from the table. Returns ErrNotFoundError
// if there is no such entity and ErrCycleError if the supertype chain loops.
func (ee Entities) Attributes(name string) ([]Attribute, error) {
	e, ok := ee[strings.ToUpper(name)]
	if !ok {
		return nil, ErrEntityNotFound(name)
	}

	attrs := make([]Attribute, 0)
	var chain []string
	visited := make(map[string]bool)
	for e != nil {
		chain = append(chain, e.Name)
		if visited[e.Name] {
			return nil, errorAt(ErrSupertypeCycle(chain), e.Pos)
		}
		visited[e.Name] = true

		own := append([]Attribute(nil), e.Attributes...)
		reverse(own)
		attrs = append(attrs, own...)

		if !e.HasSupertype() {
			break
		}
		e = ee[e.Supertype]
	}
	reverse(attrs)
	return attrs, nil
}

// Chain returns the entity name followed by its supertypes, nearest first
func (ee Entities) Chain(name string) ([]string, error) {
	e, ok := ee[strings.ToUpper(name)]
	if !ok {
		return nil, ErrEntityNotFound(name)
	}
	var chain []string
	visited := make(map[string]bool)
	for e != nil {
		chain = append(chain, e.Name)
		if visited[e.Name] {
			return nil, errorAt(ErrSupertypeCycle(chain), e.Pos)
		}
		visited[e.Name] = true
		if !e.HasSupertype() {
			break
		}
		e = ee[e.Supertype]
	}
	return chain, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
