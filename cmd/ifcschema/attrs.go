/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/ifcschema/pkg/expschema"
)

type attrsParams struct {
	cliParams
	Chain bool
}

func newAttrsCmd() *cobra.Command {
	params := attrsParams{}
	cmd := &cobra.Command{
		Use:   "attrs <file> <entity>",
		Short: "print attributes of the entity including inherited ones",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLoader(params.cliParams)
			if err != nil {
				return err
			}
			schema, problems := l.load(args[0])
			if schema == nil {
				return problems
			}
			return printAttributes(cmd.OutOrStdout(), schema, args[1], params.Chain)
		},
	}
	initGlobalFlags(cmd, &params.cliParams)
	cmd.Flags().BoolVar(&params.Chain, "chain", false, "print supertype chain before attributes")
	return cmd
}

// printAttributes prints one `name : type` line per attribute, root supertype first
func printAttributes(w io.Writer, schema *expschema.Schema, entity string, chain bool) error {
	attrs, err := schema.Attributes(entity)
	if err != nil {
		return err
	}
	if chain {
		names, err := schema.Entities.Chain(entity)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, strings.Join(names, " -> "))
	}
	for _, a := range attrs {
		fmt.Fprintf(w, "%s : %s\n", a.Name, a.Type)
	}
	return nil
}
