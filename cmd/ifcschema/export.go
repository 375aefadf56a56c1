/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/ifcschema/pkg/catalog"
	"github.com/voedger/ifcschema/pkg/expschema"
)

type exportParams struct {
	cliParams
	Format string
	Out    string
}

func newExportCmd() *cobra.Command {
	params := exportParams{}
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "export types and entities of the schema file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLoader(params.cliParams)
			if err != nil {
				return err
			}
			schema, problems := l.load(args[0])
			if schema == nil {
				return problems
			}
			return export(cmd.Context(), schema, params, cmd.OutOrStdout())
		},
	}
	initGlobalFlags(cmd, &params.cliParams)
	cmd.Flags().StringVarP(&params.Format, "format", "f", formatJSON, fmt.Sprintf("%s, %s or %s", formatJSON, formatYAML, formatSQLite))
	cmd.Flags().StringVarP(&params.Out, "out", "o", "", "output file, stdout if omitted; required for "+formatSQLite)
	return cmd
}

func export(ctx context.Context, schema *expschema.Schema, params exportParams, stdout io.Writer) (err error) {
	var write func(io.Writer, *expschema.Schema) error
	switch params.Format {
	case formatSQLite:
		if params.Out == "" {
			return fmt.Errorf("%w for %s", ErrOutRequired, formatSQLite)
		}
		if err := catalog.WriteSQLite(ctx, params.Out, schema); err != nil {
			return err
		}
		logger.Info("exported to", params.Out)
		return nil
	case formatJSON:
		write = catalog.WriteJSON
	case formatYAML:
		write = catalog.WriteYAML
	default:
		return fmt.Errorf("%w: «%s»", ErrUnknownFormat, params.Format)
	}

	if params.Out == "" {
		return write(stdout, schema)
	}
	f, err := os.Create(params.Out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	if err = write(f, schema); err != nil {
		return err
	}
	logger.Info("exported to", params.Out)
	return nil
}
