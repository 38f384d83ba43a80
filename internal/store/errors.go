// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [RecordStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no record has the requested id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrRecordExists is returned by Put when the id is already taken.
	ErrRecordExists = errors.New("record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL store when an operation fails before any record logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan record rows")

	// ErrEncodingAttributes is returned when attributes cannot be
	// serialized to or from the JSON column.
	ErrEncodingAttributes = errors.New("failed to encode record attributes")

	// ErrConnectingDB is returned when a database connection cannot be
	// opened or pinged.
	ErrConnectingDB = errors.New("error connecting database")
)
