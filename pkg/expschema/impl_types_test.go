/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func Test_ClassifyTypes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		check func(require *require.Assertions, tt Types)
	}{
		{
			name: "simple",
			text: `TYPE IfcLabel = STRING; END_TYPE;
				TYPE IfcReal = REAL; END_TYPE;
				TYPE IfcCount = NUMBER; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Len(tt, 3)
				require.Equal(TypeKind_Simple, tt["IfcLabel"].Kind)
				require.Equal("STRING", tt["IfcLabel"].Simple)
				require.Equal("REAL", tt["IfcReal"].Text())
			},
		},
		{
			name: "aggregated",
			text: `TYPE S = SET [1:?] OF IfcLabel; END_TYPE;
				TYPE B = BAG OF IfcLabel; END_TYPE;
				TYPE L = LIST [2:2] OF LIST [1:?] OF REAL; END_TYPE;
				TYPE A = ARRAY [1:3] OF OPTIONAL IfcLabel; END_TYPE;
				TYPE N = STRING(255) FIXED; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				for name, agg := range map[string]AggregationKind{
					"S": AggregationKind_SET,
					"B": AggregationKind_BAG,
					"L": AggregationKind_LIST,
					"A": AggregationKind_ARRAY,
					"N": AggregationKind_STRING,
				} {
					require.Equal(TypeKind_Aggregated, tt[name].Kind, name)
					require.Equal(agg, tt[name].Aggregation, name)
				}
				require.Equal("[1:?] OF IfcLabel", tt["S"].Spec)
				require.Equal("LIST [2:2] OF LIST [1:?] OF REAL", tt["L"].Text())
				require.Equal("STRING(255) FIXED", tt["N"].Text())
			},
		},
		{
			name: "keyword prefix is not an aggregation",
			text: `TYPE X = SETTING; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Equal(TypeKind_Other, tt["X"].Kind)
				require.Equal("SETTING", tt["X"].Raw)
			},
		},
		{
			name: "enumeration",
			text: `TYPE COLOR = ENUMERATION OF (RED, GREEN, BLUE); END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Equal(TypeKind_Enumeration, tt["COLOR"].Kind)
				require.Equal([]string{"RED", "GREEN", "BLUE"}, tt["COLOR"].Values)
				require.Nil(tt["COLOR"].Items)
				require.Equal("ENUMERATION OF (RED, GREEN, BLUE)", tt["COLOR"].Text())
			},
		},
		{
			name: "empty enumeration",
			text: `TYPE E = ENUMERATION OF (); END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Equal(TypeKind_Enumeration, tt["E"].Kind)
				require.Empty(tt["E"].Values)
			},
		},
		{
			name: "select",
			text: `TYPE IfcUnit = SELECT (IfcDerivedUnit, IfcMonetaryUnit, IfcNamedUnit); END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Equal(TypeKind_Select, tt["IfcUnit"].Kind)
				require.Equal([]string{"IfcDerivedUnit", "IfcMonetaryUnit", "IfcNamedUnit"}, tt["IfcUnit"].Items)
			},
		},
		{
			name: "list without END_TYPE is other",
			text: `TYPE E = ENUMERATION OF (A, B);
				TYPE S = SELECT (A, B);`,
			check: func(require *require.Assertions, tt Types) {
				require.Equal(TypeKind_Other, tt["E"].Kind)
				require.Equal("ENUMERATION OF (A, B)", tt["E"].Raw)
				require.Equal(TypeKind_Other, tt["S"].Kind)
			},
		},
		{
			name: "damaged list is other",
			text: `TYPE E = ENUMERATION OF (A, B,); END_TYPE;
				TYPE S = SELECT (A B); END_TYPE;
				TYPE T = SELECT A, B; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Equal(TypeKind_Other, tt["E"].Kind)
				require.Equal(TypeKind_Other, tt["S"].Kind)
				require.Equal(TypeKind_Other, tt["T"].Kind)
			},
		},
		{
			name: "defined over every earlier kind",
			text: `TYPE D1 = Simple; END_TYPE;
				TYPE D2 = Agg; END_TYPE;
				TYPE D3 = Colour; END_TYPE;
				TYPE D4 = Choice; END_TYPE;
				TYPE Simple = INTEGER; END_TYPE;
				TYPE Agg = SET OF Simple; END_TYPE;
				TYPE Colour = ENUMERATION OF (RED); END_TYPE;
				TYPE Choice = SELECT (Simple, Agg); END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Len(tt.TypesOfKind(TypeKind_Defined), 4)
				require.Equal("Simple", tt["D1"].Underlying)
				require.Equal("Choice", tt["D4"].Text())
			},
		},
		{
			name: "chained or unknown defined types are other",
			text: `TYPE A = REAL; END_TYPE;
				TYPE B = A; END_TYPE;
				TYPE C = B; END_TYPE;
				TYPE D = Unknown; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Equal(TypeKind_Defined, tt["B"].Kind)
				require.Equal(TypeKind_Other, tt["C"].Kind)
				require.Equal("B", tt["C"].Raw)
				require.Equal(TypeKind_Other, tt["D"].Kind)
			},
		},
		{
			name: "declaration without ';' is skipped",
			text: `TYPE Lost = REAL
				END_TYPE;
				TYPE Kept = REAL; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Nil(tt["Lost"])
				require.NotNil(tt["Kept"])
			},
		},
		{
			name: "rules",
			text: `TYPE IfcDayInMonthNumber = INTEGER;
				WHERE
					ValidRange : {1 <= SELF <= 31};
					SELF <> 13;
				END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				rules := tt["IfcDayInMonthNumber"].Rules
				require.Len(rules, 2)
				require.Equal("ValidRange", rules[0].Label)
				require.Equal("{1 <= SELF <= 31}", rules[0].Expr)
				require.Empty(rules[1].Label)
				require.Equal("SELF <> 13", rules[1].Expr)
			},
		},
		{
			name: "comments",
			text: `(* TYPE Hidden = REAL; END_TYPE; *)
				-- TYPE AlsoHidden = REAL; END_TYPE;
				TYPE Visible = (* inline *) REAL; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Len(tt, 1)
				require.Equal(TypeKind_Simple, tt["Visible"].Kind)
			},
		},
		{
			name: "keywords are case-sensitive",
			text: `TYPE Lower = real; END_TYPE;
				type Ignored = REAL; END_TYPE;`,
			check: func(require *require.Assertions, tt Types) {
				require.Len(tt, 1)
				require.Equal(TypeKind_Other, tt["Lower"].Kind)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			tt, err := ClassifyTypes(test.text)
			require.NoError(err)
			test.check(require, tt)
		})
	}
}

func Test_ClassifyTypesOrderIndependence(t *testing.T) {
	require := require.New(t)

	before, err := ClassifyTypes(`TYPE B = A; END_TYPE; TYPE A = REAL; END_TYPE;`)
	require.NoError(err)
	after, err := ClassifyTypes(`TYPE A = REAL; END_TYPE; TYPE B = A; END_TYPE;`)
	require.NoError(err)

	require.Equal(TypeKind_Defined, before["B"].Kind)
	require.Equal(TypeKind_Defined, after["B"].Kind)
	require.Equal(before["B"].Underlying, after["B"].Underlying)
}

func Test_ClassifyTypesExclusive(t *testing.T) {
	require := require.New(t)
	schema := parseFixture(t, "ifc2x3_excerpt.exp")

	seen := make(map[string]TypeKind)
	for k := TypeKind_Simple; k < TypeKind_count; k++ {
		for _, typ := range schema.TypesOfKind(k) {
			prev, ok := seen[typ.Name]
			require.False(ok, "%s is both %v and %v", typ.Name, prev, k)
			seen[typ.Name] = k
		}
	}
	require.Len(seen, len(schema.Types))
	names := maps.Keys(seen)
	slices.Sort(names)
	require.Equal(schema.Types.Names(), names)
}

func Test_ClassifyTypesDuplicates(t *testing.T) {
	require := require.New(t)

	tt, err := ClassifyTypes(`
TYPE D = REAL; END_TYPE;
TYPE D = ENUMERATION OF (A); END_TYPE;`)
	require.ErrorIs(err, ErrDuplicateError)
	require.ErrorContains(err, "first declared at 2:")
	require.Len(tt, 1)
	require.Equal(TypeKind_Simple, tt["D"].Kind)
}

func Test_TypePassDoesNotChangeInput(t *testing.T) {
	require := require.New(t)
	s, err := newScanner("", `TYPE A = REAL; END_TYPE; TYPE B = A; END_TYPE;`)
	require.NoError(err)
	decls, errs := s.typeDecls()
	require.Empty(errs)

	cfg := DefaultConfig()
	simple := typePasses(&cfg)[0].apply(s, decls, Types{})
	require.Len(simple, 1)

	defined := typePass{"defined", matchDefined}.apply(s, decls, simple)
	require.Len(simple, 1)
	require.Len(defined, 2)
	require.Same(simple["A"], defined["A"])
}

func Test_TypeString(t *testing.T) {
	require := require.New(t)
	tt, err := ClassifyTypes(`TYPE IfcUnitEnum = ENUMERATION OF (LENGTHUNIT, MASSUNIT); END_TYPE;`)
	require.NoError(err)
	require.Equal("enumeration IfcUnitEnum = ENUMERATION OF (LENGTHUNIT, MASSUNIT)", tt["IfcUnitEnum"].String())

	text, err := TypeKind_Select.MarshalText()
	require.NoError(err)
	require.Equal("Select", string(text))

	text, err = TypeKind(200).MarshalText()
	require.NoError(err)
	require.Equal("200", string(text))

	require.Equal("ARRAY", AggregationKind_ARRAY.Keyword())
}
