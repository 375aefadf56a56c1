/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "errors"

var (
	ErrUnexpectedCount = errors.New("unexpected count")
	ErrUnknownCount    = errors.New("unknown count name")
	ErrUnknownFormat   = errors.New("unknown export format")
	ErrOutRequired     = errors.New("--out is required")
)
