/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package expschema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// errorAt prefixes err with the source position, keeping it unwrappable
func errorAt(err error, pos lexer.Position) error {
	return fmt.Errorf("%s: %w", pos, err)
}

var ErrNotFoundError = errors.New("not found")

func ErrEntityNotFound(name string) error {
	return enrichError(ErrNotFoundError, "entity «%s»", name)
}

var ErrMalformedError = errors.New("malformed")

func ErrMalformedEntity(name, reason string, args ...any) error {
	return enrichError(ErrMalformedError, "entity «%s»: %s", name, fmt.Sprintf(reason, args...))
}

var ErrUnterminatedError = errors.New("not terminated")

func ErrUnterminatedEntity(name string) error {
	return enrichError(ErrUnterminatedError, "entity «%s» has no END_ENTITY", name)
}

var ErrDuplicateError = errors.New("already declared")

func ErrDuplicateType(name string, prev lexer.Position) error {
	return enrichError(ErrDuplicateError, "type «%s», first declared at %s", name, prev)
}

func ErrDuplicateEntity(name string, prev lexer.Position) error {
	return enrichError(ErrDuplicateError, "entity «%s», first declared at %s", name, prev)
}

var ErrCycleError = errors.New("supertype cycle")

func ErrSupertypeCycle(chain []string) error {
	return enrichError(ErrCycleError, "%s", strings.Join(chain, " -> "))
}
