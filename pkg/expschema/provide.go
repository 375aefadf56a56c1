/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package expschema reads EXPRESS schema text (IFC2x3, IFC4 and alike) into an
// in-memory model of its types and entities.
package expschema

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ParseString reads the schema text with default dialect tables.
//
// Damaged declarations do not stop the parse: the returned schema holds everything
// that could be read and the error joins one error per rejected block.
// Schema is nil only if the text cannot be tokenized.
func ParseString(fileName, content string) (*Schema, error) {
	return parseImpl(fileName, content, DefaultConfig())
}

func ParseWithConfig(fileName, content string, cfg Config) (*Schema, error) {
	return parseImpl(fileName, content, cfg)
}

// ParseFile is a helper which reads and parses the schema file
func ParseFile(path string, cfg Config) (*Schema, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseImpl(filepath.Base(path), string(bytes), cfg)
}

// ParseFS is a helper which reads and parses the schema file from fsys
func ParseFS(fsys fs.FS, name string, cfg Config) (*Schema, error) {
	bytes, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return parseImpl(filepath.Base(name), string(bytes), cfg)
}

// ClassifyTypes returns the type table of the schema text only
func ClassifyTypes(content string) (Types, error) {
	s, err := newScanner("", content)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	types, errs := classifyTypes(s, &cfg)
	return types, errors.Join(errs...)
}

// ResolveEntities returns the entity table of the schema text only
func ResolveEntities(content string) (Entities, error) {
	s, err := newScanner("", content)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	entities, errs := resolveEntities(s, &cfg)
	return entities, errors.Join(errs...)
}
