package minimizer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Result Everything a minimization produces: the minimal machine, every partition computed on the
// way (index 0 is the output-based partition, the last is the fixpoint) and the report of states
// removed as inaccessible.
type Result struct {
	Machine       *Machine
	Partitions    []Partition
	RemovedStates Report
}

type options struct {
	logger *zap.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(o *options)

// WithLogger Logs the progress of a minimization at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Minimize Builds a machine from t and minimizes it. t is not validated; see Validate.
func Minimize(t Table, opts ...Option) *Result {
	return MinimizeMachine(BuildMachine(t), opts...)
}

// MinimizeMachine Minimizes m: removes inaccessible states, refines the output-based partition to
// its fixpoint and collapses each equivalence class into one state. m is not modified.
func MinimizeMachine(m *Machine, opts ...Option) *Result {
	o := newOptions(opts...)
	log := o.logger.With(zap.Stringer("variant", m.variant))

	reachable, report := RemoveInaccessibleStates(m)
	log.Debug("removed inaccessible states",
		zap.Int("states", m.Len()),
		zap.Strings("removed", report.Removed))

	history := Refine(reachable, FirstPartition(reachable))
	log.Debug("refined partitions",
		zap.Int("partitions", len(history)),
		zap.String("fixpoint", history[len(history)-1].String()))

	minimal := Rebuild(reachable, history)
	log.Debug("rebuilt machine",
		zap.Int("states", minimal.Len()),
		zap.String("initial", minimal.Initial()))

	return &Result{
		Machine:       minimal,
		Partitions:    history,
		RemovedStates: report,
	}
}

// FormatHistory Renders a partition history one line per partition, as "P0 = {A,B},{C,D}".
func FormatHistory(history []Partition) string {
	var sb strings.Builder
	for i, p := range history {
		fmt.Fprintf(&sb, "P%d = %s\n", i, p.String())
	}
	return sb.String()
}
