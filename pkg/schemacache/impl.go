/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemacache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/crypto/blake2b"

	"github.com/voedger/ifcschema/pkg/expschema"
)

type digest [blake2b.Size256]byte

// parse result, errors are cached too
type entry struct {
	schema *expschema.Schema
	err    error
}

// LRU cache of parsed schemas implemented by hashicorp LRU cache
type Cache struct {
	cfg    expschema.Config
	lru    *lru.Cache[digest, entry]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newCache(size int, cfg expschema.Config) (*Cache, error) {
	l, err := lru.New[digest, entry](size)
	if err != nil {
		return nil, fmt.Errorf("schema cache: %w", err)
	}
	return &Cache{cfg: cfg, lru: l}, nil
}

// Parse returns the schema of content, parsing it only if no schema with the same
// content digest is cached. Returned schema has the fileName passed.
func (c *Cache) Parse(fileName, content string) (*expschema.Schema, error) {
	key := digest(blake2b.Sum256([]byte(content)))

	e, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("schema cache miss: %s, %x", fileName, key[:8]))
		}
		e.schema, e.err = expschema.ParseWithConfig(fileName, content, c.cfg)
		c.lru.Add(key, e)
	}

	if e.schema == nil || e.schema.FileName == fileName {
		return e.schema, e.err
	}
	// tables are immutable and shared by copies
	renamed := *e.schema
	renamed.FileName = fileName
	return &renamed, e.err
}

// Len returns the number of cached schemas
func (c *Cache) Len() int { return c.lru.Len() }

// Purge removes all cached schemas, hit and miss counters are kept
func (c *Cache) Purge() { c.lru.Purge() }

// Stats returns the number of cache hits and misses since creation
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
