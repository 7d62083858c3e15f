// SPDX-License-Identifier: MIT

package table

import "log/slog"

// DefaultAllowMissing is the default completeness policy of Build.
const DefaultAllowMissing = false

const panicNilLogger = "table: WithLogger: logger must not be nil"

// Option configures Build, ParseCSV and LoadFile.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	allowMissing bool
}

// WithLogger sets the logger that receives diagnostics about skipped input.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// AllowMissing lets Build accept tables in which some harmonic indices have
// no rows at all. Indices that are present must still be complete.
func AllowMissing() Option {
	return func(o *options) { o.allowMissing = true }
}

func gatherOptions(opts []Option) options {
	o := options{logger: slog.Default(), allowMissing: DefaultAllowMissing}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
