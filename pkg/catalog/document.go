/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package catalog

import (
	"github.com/voedger/ifcschema/pkg/expschema"
)

// Document is the exported form of a schema. Types and entities are sorted by name.
type Document struct {
	Schema   string      `json:"schema" yaml:"schema"`
	File     string      `json:"file,omitempty" yaml:"file,omitempty"`
	Types    []TypeDoc   `json:"types" yaml:"types"`
	Entities []EntityDoc `json:"entities" yaml:"entities"`
	Stats    StatsDoc    `json:"stats" yaml:"stats"`
}

type StatsDoc struct {
	Entities     int                        `json:"entities" yaml:"entities"`
	Types        int                        `json:"types" yaml:"types"`
	DefinedTypes int                        `json:"definedTypes" yaml:"definedTypes"`
	ByKind       map[expschema.TypeKind]int `json:"byKind" yaml:"byKind"`
}

type RuleDoc struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Expr  string `json:"expr" yaml:"expr"`
}

type TypeDoc struct {
	Name        string                    `json:"name" yaml:"name"`
	Kind        expschema.TypeKind        `json:"kind" yaml:"kind"`
	Simple      string                    `json:"simple,omitempty" yaml:"simple,omitempty"`
	Aggregation expschema.AggregationKind `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
	Spec        string                    `json:"spec,omitempty" yaml:"spec,omitempty"`
	Values      []string                  `json:"values,omitempty" yaml:"values,omitempty"`
	Items       []string                  `json:"items,omitempty" yaml:"items,omitempty"`
	Underlying  string                    `json:"underlying,omitempty" yaml:"underlying,omitempty"`
	Raw         string                    `json:"raw,omitempty" yaml:"raw,omitempty"`
	Rules       []RuleDoc                 `json:"rules,omitempty" yaml:"rules,omitempty"`
}

type AttributeDoc struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

type EntityDoc struct {
	Name       string         `json:"name" yaml:"name"`
	Supertype  string         `json:"supertype,omitempty" yaml:"supertype,omitempty"`
	Subtypes   []string       `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
	IsAbstract bool           `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Attributes []AttributeDoc `json:"attributes" yaml:"attributes"`

	// Inherited and own attributes, root supertype first
	AllAttributes []AttributeDoc `json:"allAttributes" yaml:"allAttributes"`

	Rules []RuleDoc `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Why AllAttributes could not be resolved
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDocument builds the exported form of the schema
func NewDocument(schema *expschema.Schema) Document {
	stats := schema.Stats()
	doc := Document{
		Schema:   schema.Name,
		File:     schema.FileName,
		Types:    make([]TypeDoc, 0, len(schema.Types)),
		Entities: make([]EntityDoc, 0, len(schema.Entities)),
		Stats: StatsDoc{
			Entities:     stats.Entities,
			Types:        stats.Types,
			DefinedTypes: stats.DefinedTypes(),
			ByKind:       make(map[expschema.TypeKind]int),
		},
	}
	for k := expschema.TypeKind_Simple; k < expschema.TypeKind_count; k++ {
		doc.Stats.ByKind[k] = stats.ByKind[k]
	}

	for _, name := range schema.Types.Names() {
		t := schema.Types[name]
		doc.Types = append(doc.Types, TypeDoc{
			Name:        t.Name,
			Kind:        t.Kind,
			Simple:      t.Simple,
			Aggregation: t.Aggregation,
			Spec:        t.Spec,
			Values:      t.Values,
			Items:       t.Items,
			Underlying:  t.Underlying,
			Raw:         t.Raw,
			Rules:       newRuleDocs(t.Rules),
		})
	}

	for _, name := range schema.Entities.Names() {
		e := schema.Entities[name]
		ed := EntityDoc{
			Name:       e.Name,
			Supertype:  e.Supertype,
			Subtypes:   e.Subtypes,
			IsAbstract: e.IsAbstract,
			Attributes: newAttributeDocs(e.Attributes),
			Rules:      newRuleDocs(e.Rules),
		}
		if all, err := schema.Attributes(name); err == nil {
			ed.AllAttributes = newAttributeDocs(all)
		} else {
			ed.AllAttributes = make([]AttributeDoc, 0)
			ed.Error = err.Error()
		}
		doc.Entities = append(doc.Entities, ed)
	}
	return doc
}

func newAttributeDocs(attrs []expschema.Attribute) []AttributeDoc {
	res := make([]AttributeDoc, len(attrs))
	for i, a := range attrs {
		res[i] = AttributeDoc{Name: a.Name, Type: a.Type, Optional: a.Optional}
	}
	return res
}

func newRuleDocs(rules []expschema.Rule) []RuleDoc {
	if len(rules) == 0 {
		return nil
	}
	res := make([]RuleDoc, len(rules))
	for i, r := range rules {
		res[i] = RuleDoc{Label: r.Label, Expr: r.Expr}
	}
	return res
}
