// Copyright (c) 2026 Frameteca. All rights reserved.
// Author: a.navarrete.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// the rest of the application.
//
// The repository layer never swallows storage errors — it annotates them
// with the failing action and re-throws, trusting the handlers to translate
// into the HTTP envelope. This package owns that annotation plus SQLSTATE
// classification helpers.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Wrap annotates a database error with the action that produced it.
// It returns nil when err is nil.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), e.g. a duplicate topic slug.
//
// Note: the API intentionally does not remap these to 409 — they surface as
// 500 with the driver message in "details". This helper exists for logging.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsDuplicateColumn reports whether err is a Postgres duplicate-column
// error (SQLSTATE 42701). The schema manager treats this as a benign race
// between two concurrent additive migrations.
func IsDuplicateColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.DuplicateColumn
}

// IsDuplicateTable reports whether err is a Postgres duplicate-table or
// duplicate-index error (SQLSTATE 42P07), the other half of the concurrent
// schema-ensure race.
func IsDuplicateTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.DuplicateTable
}
