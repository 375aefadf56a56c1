/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/ifcschema/pkg/expschema"
)

type statsParams struct {
	cliParams
	Expect map[string]int
}

func newStatsCmd() *cobra.Command {
	params := statsParams{}
	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "print entity and type counts of schema files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLoader(params.cliParams)
			if err != nil {
				return err
			}
			var errs []error
			for _, path := range args {
				start := time.Now()
				schema, problems := l.load(path)
				if schema == nil {
					return problems
				}
				printStats(cmd.OutOrStdout(), schema, time.Since(start))
				if problems != nil {
					logger.Warning(fmt.Sprintf("%s: %d problem(s) while reading, see above", path, countErrors(problems)))
				}
				errs = append(errs, checkCounts(path, schema.Stats(), params.Expect)...)
			}
			return errors.Join(errs...)
		},
	}
	initGlobalFlags(cmd, &params.cliParams)
	cmd.Flags().StringToIntVar(&params.Expect, "expect", nil,
		"fail if counts differ, e.g. entities=653,defined=117,enumerations=164,selects=46")
	return cmd
}

func printStats(w io.Writer, schema *expschema.Schema, elapsed time.Duration) {
	stats := schema.Stats()
	name := schema.Name
	if name == "" {
		name = schema.FileName
	}
	fmt.Fprintf(w, "Loading %s took: %v\n", schema.FileName, elapsed)
	fmt.Fprintf(w, "Parsed from %s schema: %d entities and %d types "+
		"[%d Simple Types, %d Aggregated Simple Types, %d Enumeration Types, %d Select Types, %d Defined Types, %d Other unrecognized types]\n",
		name, stats.Entities, stats.Types,
		stats.ByKind[expschema.TypeKind_Simple],
		stats.ByKind[expschema.TypeKind_Aggregated],
		stats.ByKind[expschema.TypeKind_Enumeration],
		stats.ByKind[expschema.TypeKind_Select],
		stats.ByKind[expschema.TypeKind_Defined],
		stats.ByKind[expschema.TypeKind_Other])
	fmt.Fprintf(w, "buildingSMART groups simple types, aggregated simple types and defined types under Defined Types, "+
		"which makes %d Entities, %d Defined Types, %d Enumerations and %d Selects.\n",
		stats.Entities, stats.DefinedTypes(),
		stats.ByKind[expschema.TypeKind_Enumeration],
		stats.ByKind[expschema.TypeKind_Select])
}

// checkCounts compares counts with expected ones, grouped the buildingSMART way
func checkCounts(path string, stats expschema.Stats, expect map[string]int) (errs []error) {
	actual := map[string]int{
		expectEntities:     stats.Entities,
		expectDefinedTypes: stats.DefinedTypes(),
		expectEnumerations: stats.ByKind[expschema.TypeKind_Enumeration],
		expectSelects:      stats.ByKind[expschema.TypeKind_Select],
	}
	for _, name := range sortedKeys(expect) {
		got, ok := actual[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: «%s», use one of %v", ErrUnknownCount, name, sortedKeys(actual)))
			continue
		}
		if want := expect[name]; got != want {
			errs = append(errs, fmt.Errorf("%s: %w of %s: %d, expected %d", path, ErrUnexpectedCount, name, got, want))
		}
	}
	return errs
}

func countErrors(err error) int {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}

func sortedKeys(m map[string]int) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
