/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

const (
	kwSchema      = "SCHEMA"
	kwType        = "TYPE"
	kwEndType     = "END_TYPE"
	kwEntity      = "ENTITY"
	kwEndEntity   = "END_ENTITY"
	kwAbstract    = "ABSTRACT"
	kwSupertype   = "SUPERTYPE"
	kwSubtype     = "SUBTYPE"
	kwOf          = "OF"
	kwEnumeration = "ENUMERATION"
	kwSelect      = "SELECT"
	kwOptional    = "OPTIONAL"
	kwWhere       = "WHERE"
	kwInverse     = "INVERSE"
	kwUnique      = "UNIQUE"
	kwDerive      = "DERIVE"
)

const (
	simpleInteger = "INTEGER"
	simpleReal    = "REAL"
	simpleString  = "STRING"
	simpleNumber  = "NUMBER"
	simpleLogical = "LOGICAL"
	simpleBoolean = "BOOLEAN"
)

// Entity body sections which may follow the WHERE rules
var ruleSectionEnds = []string{kwInverse, kwUnique, kwDerive}
