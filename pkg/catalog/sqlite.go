/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/ifcschema/pkg/expschema"
)

// WriteSQLite recreates the SQLite database at dbPath and fills it with the schema
// tables in one transaction
func WriteSQLite(ctx context.Context, dbPath string, schema *expschema.Schema) error {
	if err := os.Remove(dbPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	db, err := sql.Open(sqliteDriver, dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fill(ctx, tx, schema); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s: %d types, %d entities written", dbPath, len(schema.Types), len(schema.Entities)))
	}
	return nil
}

// prepared inserts of one transaction
type inserter struct {
	ctx   context.Context
	stmts map[string]*sql.Stmt
	tx    *sql.Tx
}

func (ins *inserter) insert(table string, args ...any) error {
	stmt, ok := ins.stmts[table]
	if !ok {
		query := "INSERT INTO " + table + " VALUES (?" + strings.Repeat(", ?", len(args)-1) + ")"
		var err error
		if stmt, err = ins.tx.PrepareContext(ins.ctx, query); err != nil {
			return fmt.Errorf("prepare %s: %w", table, err)
		}
		ins.stmts[table] = stmt
	}
	if _, err := stmt.ExecContext(ins.ctx, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (ins *inserter) close() {
	for _, stmt := range ins.stmts {
		stmt.Close()
	}
}

func fill(ctx context.Context, tx *sql.Tx, schema *expschema.Schema) error {
	if _, err := tx.ExecContext(ctx, sqliteDDL); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	ins := &inserter{ctx: ctx, tx: tx, stmts: make(map[string]*sql.Stmt)}
	defer ins.close()

	if err := ins.insert("schema_info", schema.Name, schema.FileName); err != nil {
		return err
	}

	for _, name := range schema.Types.Names() {
		t := schema.Types[name]
		if err := ins.insert("types", t.Name, t.Kind.TrimString(), t.Text()); err != nil {
			return err
		}
		items := t.Values
		if t.Kind == expschema.TypeKind_Select {
			items = t.Items
		}
		for i, item := range items {
			if err := ins.insert("type_items", t.Name, i, item); err != nil {
				return err
			}
		}
	}

	for _, name := range schema.Entities.Names() {
		e := schema.Entities[name]
		supertype := sql.NullString{String: e.Supertype, Valid: e.HasSupertype()}
		if err := ins.insert("entities", e.Name, supertype, e.IsAbstract); err != nil {
			return err
		}
		for i, sub := range e.Subtypes {
			if err := ins.insert("subtypes", e.Name, i, sub); err != nil {
				return err
			}
		}
		for i, a := range e.Attributes {
			if err := ins.insert("attributes", e.Name, i, a.Name, a.Type, a.Optional); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}
