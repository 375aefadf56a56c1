/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package catalog

const (
	jsonIndent = "  "
	yamlIndent = 2
)

const sqliteDriver = "sqlite3"

const sqliteDDL = `
CREATE TABLE schema_info (
	name      TEXT NOT NULL,
	file_name TEXT NOT NULL
);
CREATE TABLE types (
	name    TEXT PRIMARY KEY,
	kind    TEXT NOT NULL,
	payload TEXT NOT NULL
);
CREATE TABLE type_items (
	type_name TEXT NOT NULL REFERENCES types(name),
	ord       INTEGER NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (type_name, ord)
);
CREATE TABLE entities (
	name        TEXT PRIMARY KEY,
	supertype   TEXT,
	is_abstract INTEGER NOT NULL
);
CREATE TABLE subtypes (
	entity  TEXT NOT NULL REFERENCES entities(name),
	ord     INTEGER NOT NULL,
	subtype TEXT NOT NULL,
	PRIMARY KEY (entity, ord)
);
CREATE TABLE attributes (
	entity   TEXT NOT NULL REFERENCES entities(name),
	ord      INTEGER NOT NULL,
	name     TEXT NOT NULL,
	type     TEXT NOT NULL,
	optional INTEGER NOT NULL,
	PRIMARY KEY (entity, ord)
);
`
