/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

const (
	cacheSize = 16

	formatJSON   = "json"
	formatYAML   = "yaml"
	formatSQLite = "sqlite"

	expectEntities     = "entities"
	expectDefinedTypes = "defined"
	expectEnumerations = "enumerations"
	expectSelects      = "selects"
)
