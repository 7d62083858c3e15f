// SPDX-License-Identifier: MIT

package reconstruct

import (
	"log/slog"

	"github.com/katalvlaran/pairdist/harmonic"
)

// DefaultWorkers is the default worker count; 0 means runtime.GOMAXPROCS(0).
const DefaultWorkers = 0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "reconstruct: WithWorkers: n must be >= 0"
	panicIndicesEmpty   = "reconstruct: WithIndices: at least one index required"
	panicNilLogger      = "reconstruct: WithLogger: logger must not be nil"
)

// Option configures a Reconstructor. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	indices []harmonic.Index // nil means all 25
	workers int
	logger  *slog.Logger
}

// WithIndices restricts the series to the given indices. By default all 25
// indices are summed. The table only has to cover the active indices.
func WithIndices(idx ...harmonic.Index) Option {
	if len(idx) == 0 {
		panic(panicIndicesEmpty)
	}
	cp := append([]harmonic.Index(nil), idx...)
	return func(o *options) { o.indices = cp }
}

// WithWorkers bounds the number of goroutines evaluating contributions.
// n == 0 selects runtime.GOMAXPROCS(0); n == 1 evaluates sequentially.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{workers: DefaultWorkers, logger: slog.Default()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
