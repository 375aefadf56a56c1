/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const inheritance = `
ENTITY A;
	x : INTEGER;
END_ENTITY;

ENTITY B
 SUBTYPE OF (A);
	y : REAL;
END_ENTITY;

ENTITY Root;
	a : INTEGER;
	b : INTEGER;
END_ENTITY;

ENTITY Mid
 SUBTYPE OF (Root);
	c : INTEGER;
	d : INTEGER;
END_ENTITY;

ENTITY Leaf
 SUBTYPE OF (Mid);
	e : INTEGER;
END_ENTITY;

ENTITY Orphan
 SUBTYPE OF (Ghost);
	z : INTEGER;
END_ENTITY;

ENTITY Stray
 SUBTYPE OF (Orphan);
	w : INTEGER;
END_ENTITY;
`

func Test_Attributes(t *testing.T) {
	ee, err := ResolveEntities(inheritance)
	require.NoError(t, err)

	tests := []struct {
		entity string
		want   []string
	}{
		{"A", []string{"x"}},
		{"B", []string{"x", "y"}},
		{"Root", []string{"a", "b"}},
		{"Leaf", []string{"a", "b", "c", "d", "e"}},
		{"leaf", []string{"a", "b", "c", "d", "e"}},
		{"Orphan", []string{"z"}},
		{"Stray", []string{"z", "w"}},
	}
	for _, test := range tests {
		t.Run(test.entity, func(t *testing.T) {
			require := require.New(t)
			attrs, err := ee.Attributes(test.entity)
			require.NoError(err)
			require.Equal(test.want, attrNames(attrs))
		})
	}
}

func Test_AttributesDoNotShareStorage(t *testing.T) {
	require := require.New(t)
	ee, err := ResolveEntities(inheritance)
	require.NoError(err)

	attrs, err := ee.Attributes("B")
	require.NoError(err)
	attrs[0].Name = "changed"

	again, err := ee.Attributes("B")
	require.NoError(err)
	require.Equal([]string{"x", "y"}, attrNames(again))
	require.Equal("x", ee["A"].Attributes[0].Name)
}

func Test_AttributesErrors(t *testing.T) {
	t.Run("unknown entity", func(t *testing.T) {
		require := require.New(t)
		ee, err := ResolveEntities(inheritance)
		require.NoError(err)

		attrs, err := ee.Attributes("IfcNothing")
		require.ErrorIs(err, ErrNotFoundError)
		require.ErrorContains(err, "«IfcNothing»")
		require.Nil(attrs)

		_, err = ee.Chain("IfcNothing")
		require.ErrorIs(err, ErrNotFoundError)
	})

	t.Run("cycle", func(t *testing.T) {
		require := require.New(t)
		ee, err := ResolveEntities(`
ENTITY A SUBTYPE OF (B); a : INTEGER; END_ENTITY;
ENTITY B SUBTYPE OF (A); b : INTEGER; END_ENTITY;
ENTITY C SUBTYPE OF (B); c : INTEGER; END_ENTITY;`)
		require.ErrorIs(err, ErrCycleError)

		for _, name := range []string{"A", "B", "C"} {
			attrs, err := ee.Attributes(name)
			require.ErrorIs(err, ErrCycleError, name)
			require.Nil(attrs)

			_, err = ee.Chain(name)
			require.ErrorIs(err, ErrCycleError, name)
		}
		_, err = ee.Attributes("C")
		require.ErrorContains(err, "C -> B -> A -> B")
	})
}

func Test_Chain(t *testing.T) {
	require := require.New(t)
	ee, err := ResolveEntities(inheritance)
	require.NoError(err)

	chain, err := ee.Chain("Leaf")
	require.NoError(err)
	require.Equal([]string{"LEAF", "MID", "ROOT"}, chain)

	chain, err = ee.Chain("Stray")
	require.NoError(err)
	require.Equal([]string{"STRAY", "ORPHAN"}, chain, "missing supertype ends the chain")
}
