/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/untillpro/goutils/logger"
)

func parseImpl(fileName, content string, cfg Config) (*Schema, error) {
	start := time.Now()
	cfg = cfg.withDefaults()

	s, err := newScanner(fileName, content)
	if err != nil {
		return nil, err
	}

	schema := &Schema{
		Name:     s.schemaName(),
		FileName: fileName,
	}

	// both components read the same tokens independently
	types, typeErrs := classifyTypes(s.rewind(), &cfg)
	entities, entityErrs := resolveEntities(s.rewind(), &cfg)
	schema.Types, schema.Entities = types, entities

	errs := append(typeErrs, entityErrs...)
	for _, err := range errs {
		logger.Warning(err)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("parsed %s: %d entities and %d types in %v", fileName, len(entities), len(types), time.Since(start)))
	}
	return schema, errors.Join(errs...)
}

// Type returns the type declared with the name or nil
func (s *Schema) Type(name string) *Type {
	return s.Types[name]
}

// Entity returns the entity or nil, name is case-insensitive
func (s *Schema) Entity(name string) *Entity {
	e, ok := s.Entities[strings.ToUpper(name)]
	if !ok {
		return nil
	}
	return e
}

// Attributes see Entities.Attributes
func (s *Schema) Attributes(entity string) ([]Attribute, error) {
	return s.Entities.Attributes(entity)
}

func (s *Schema) TypesOfKind(kind TypeKind) []*Type {
	return s.Types.TypesOfKind(kind)
}

func (s *Schema) Stats() Stats {
	return Stats{
		Entities: len(s.Entities),
		Types:    len(s.Types),
		ByKind:   s.Types.countByKind(),
	}
}
