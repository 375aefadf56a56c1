/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type TypeKind uint8

//go:generate stringer -type=TypeKind -output=typekind_string.go

const (
	TypeKind_null TypeKind = iota

	// INTEGER, REAL, STRING, NUMBER, LOGICAL or BOOLEAN
	TypeKind_Simple

	// SET, BAG, LIST, ARRAY of something or bounded STRING(n)
	TypeKind_Aggregated

	TypeKind_Enumeration
	TypeKind_Select

	// Alias of another simple, aggregated, enumeration or select type
	TypeKind_Defined

	// Anything else, kept as raw text
	TypeKind_Other

	TypeKind_count
)

func (k TypeKind) MarshalText() ([]byte, error) {
	var s string
	if k < TypeKind_count {
		s = k.TrimString()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a TypeKind without "TypeKind_" prefix
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

type AggregationKind uint8

//go:generate stringer -type=AggregationKind -output=aggregationkind_string.go

const (
	AggregationKind_null AggregationKind = iota
	AggregationKind_SET
	AggregationKind_BAG
	AggregationKind_LIST
	AggregationKind_ARRAY

	// Bounded string, STRING(n)
	AggregationKind_STRING

	AggregationKind_count
)

// Returns the EXPRESS keyword of the aggregation
func (k AggregationKind) Keyword() string {
	const pref = "AggregationKind_"
	return strings.TrimPrefix(k.String(), pref)
}

func (k AggregationKind) MarshalText() ([]byte, error) {
	return []byte(k.Keyword()), nil
}

// Labelled rule of a WHERE clause. Expression is not validated.
type Rule struct {
	Label string
	Expr  string
	Pos   lexer.Position
}

// Classified TYPE declaration.
//
// Only the payload fields of the Kind are filled.
type Type struct {
	Name string
	Kind TypeKind
	Pos  lexer.Position

	Simple      string
	Aggregation AggregationKind
	// Raw element specification following the aggregation keyword
	Spec       string
	Values     []string
	Items      []string
	Underlying string
	Raw        string

	Rules []Rule
}

// Renders the right-hand side of the declaration
func (t *Type) Text() string {
	switch t.Kind {
	case TypeKind_Simple:
		return t.Simple
	case TypeKind_Aggregated:
		if t.Aggregation == AggregationKind_STRING {
			return t.Aggregation.Keyword() + t.Spec
		}
		return t.Aggregation.Keyword() + " " + t.Spec
	case TypeKind_Enumeration:
		return kwEnumeration + " " + kwOf + " (" + strings.Join(t.Values, ", ") + ")"
	case TypeKind_Select:
		return kwSelect + " (" + strings.Join(t.Items, ", ") + ")"
	case TypeKind_Defined:
		return t.Underlying
	}
	return t.Raw
}

type Types map[string]*Type

type Attribute struct {
	Name string
	// Raw type specification, whitespace collapsed
	Type     string
	Optional bool
	Pos      lexer.Position
}

type Entity struct {
	// Upper-cased
	Name string
	Pos  lexer.Position

	// Upper-cased parent name, empty if entity has no supertype
	Supertype string

	// Upper-cased names listed in SUPERTYPE OF
	Subtypes   []string
	IsAbstract bool

	// Own attributes in declaration order
	Attributes []Attribute
	Rules      []Rule
}

func (e *Entity) HasSupertype() bool { return e.Supertype != "" }

// Entities keyed by upper-cased name
type Entities map[string]*Entity

// Schema is the immutable result of reading one schema text.
type Schema struct {
	Name     string
	FileName string
	Types    Types
	Entities Entities
}

type Stats struct {
	Entities int
	Types    int
	ByKind   [TypeKind_count]int
}

// Simple, aggregated and defined types together, the way buildingSMART counts "defined types"
func (s Stats) DefinedTypes() int {
	return s.ByKind[TypeKind_Simple] + s.ByKind[TypeKind_Aggregated] + s.ByKind[TypeKind_Defined]
}
