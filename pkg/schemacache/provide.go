/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package schemacache keeps recently parsed schemas keyed by a digest of their text.
package schemacache

import "github.com/voedger/ifcschema/pkg/expschema"

// Creates new schema cache which parses with default dialect tables.
//
// Maximum cache size is limited by size param, size must be positive.
func New(size int) (*Cache, error) {
	return newCache(size, expschema.DefaultConfig())
}

// Creates new schema cache which parses with cfg dialect tables.
func NewWithConfig(size int, cfg expschema.Config) (*Cache, error) {
	return newCache(size, cfg)
}
