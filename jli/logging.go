// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package jli

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is jli's package-level diagnostic logger, overridable per Index
// via WithLogger. Mirrors dtree's Logger: this package emits no routine
// logs, only corruption diagnostics immediately before a panic.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// Corruption is the panic value raised when an internal invariant is
// violated — mismatched node kinds, a query walking off the end of a
// term, or a symbol that Insert finds reused at a second arity when
// interning it. Mirrors dtree.Corruption.
type Corruption struct {
	Reason string
}

func (c Corruption) Error() string {
	return "jli: corruption: " + c.Reason
}

// corrupt logs reason as a structured error event and halts the process.
// jli treats violated internal invariants (mismatched node kinds, a query
// walking off the end of a term) as unrecoverable programmer error, not
// something a caller can sensibly catch and continue past.
func corrupt(logger zerolog.Logger, reason string) {
	logger.Error().
		Str("component", "jli").
		Str("reason", reason).
		Msg("corruption: either the caller reused a symbol at two arities, or the index's memory has been corrupted")
	panic(Corruption{Reason: reason})
}
