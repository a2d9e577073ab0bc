// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package dtree

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger used for the single diagnostic event
// emitted immediately before a corruption panic (§7). Ordinary inserts and
// queries never log anything. Override per-tree with WithLogger.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Corruption is the panic value raised when an internal invariant is
// violated: either the caller supplied an ill-formed key or reused a
// symbol at two arities, or the tree's memory has been corrupted. §7
// treats both causes as unrecoverable — there is no way for a caller to
// tell which applies, so Corruption only carries a diagnostic Reason.
type Corruption struct {
	Reason string
}

func (c Corruption) Error() string {
	return "dtree: corruption: " + c.Reason
}

// corrupt logs the two-cause diagnostic spec §7 requires and halts the
// process. It never returns.
func corrupt(logger zerolog.Logger, reason string) {
	logger.Error().
		Str("component", "dtree").
		Str("reason", reason).
		Msg("corruption: either the caller supplied an ill-formed key or reused a symbol at two arities, or the tree's memory has been corrupted")
	panic(Corruption{Reason: reason})
}
