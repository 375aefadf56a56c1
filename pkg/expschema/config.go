/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

// Config holds the dialect tables the reader matches declarations against.
//
// Zero-length fields are replaced by defaults, see DefaultConfig.
type Config struct {
	// Right-hand sides classified as simple types
	SimpleTypes []string `yaml:"simpleTypes"`

	// Keywords which end the attribute block of an entity when they start a line
	ConstraintKeywords []string `yaml:"constraintKeywords"`

	// Operators of SUPERTYPE OF expressions, never treated as subtype names
	SupertypeOperators []string `yaml:"supertypeOperators"`
}

func DefaultConfig() Config {
	return Config{
		SimpleTypes:        []string{simpleInteger, simpleReal, simpleString, simpleNumber, simpleLogical, simpleBoolean},
		ConstraintKeywords: []string{kwWhere, kwInverse, "WR2", "WR3", "WR4", "WR5", kwUnique, kwDerive},
		SupertypeOperators: []string{"ONEOF", "AND", "ANDOR"},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if len(c.SimpleTypes) == 0 {
		c.SimpleTypes = def.SimpleTypes
	}
	if len(c.ConstraintKeywords) == 0 {
		c.ConstraintKeywords = def.ConstraintKeywords
	}
	if len(c.SupertypeOperators) == 0 {
		c.SupertypeOperators = def.SupertypeOperators
	}
	return c
}
