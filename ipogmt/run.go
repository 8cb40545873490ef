package ipogmt

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/covarray/covarray/covmap"
	"github.com/covarray/covarray/ipog"
	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
	"github.com/covarray/covarray/solver"
	"github.com/covarray/covarray/sut"
)

// Option configures an optional Run behaviour.
type Option func(*runConfig)

type runConfig struct {
	threadCount int
	filterMap   bool
}

// WithThreadCount overrides DefaultThreadCount. n <= 0 is ignored.
func WithThreadCount(n int) Option {
	return func(c *runConfig) {
		if n > 0 {
			c.threadCount = n
		}
	}
}

// WithFilterMap enables the same experimental filter-map pass as
// ipog.WithFilterMap.
func WithFilterMap() Option {
	return func(c *runConfig) { c.filterMap = true }
}

func newRunConfig(opts []Option) runConfig {
	cfg := runConfig{threadCount: DefaultThreadCount()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RunUnconstrained is ipog.RunUnconstrained, except that each iteration
// whose active PC count reaches LowerLimit(threadCount) runs horizontal
// extension with scoring spread across worker goroutines; smaller
// iterations fall through to the single-threaded implementation directly,
// since spinning up workers would not pay for itself. Vertical extension
// always runs single-threaded, matching the original.
func RunUnconstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](parameters []V, strength int, logger *log.Logger, opts ...Option) (*mca.MCA[V, L], error) {
	cfg := newRunConfig(opts)

	m := mca.NewUnconstrained[V, L](parameters, strength)
	logDebug(logger, "initial unconstrained array", "rows", m.Len())

	if strength == len(parameters) {
		return m, nil
	}

	pcl, err := pclist.Build[P, L](len(parameters), strength)
	if err != nil {
		return nil, err
	}
	cm := covmap.New[V, P, L](parameters, pcl)
	lowerLimit := LowerLimit(cfg.threadCount)

	for atParameter := strength; atParameter < len(parameters); atParameter++ {
		pcListLen := pcl.Sizes[atParameter-strength]
		cm.Initialise(atParameter)
		logDebug(logger, "iteration start", "parameter", atParameter, "uncovered", cm.Uncovered, "threaded", lowerLimit <= pcListLen)

		start := time.Now()
		if lowerLimit <= pcListLen {
			HorizontalExtendThreadedUnconstrained(parameters, atParameter, pcl, pcListLen, m, cm, cfg.threadCount)
		} else {
			ipog.HorizontalExtendUnconstrained(parameters, atParameter, pcl, pcListLen, m, cm)
		}
		logDebug(logger, "horizontal extension done", "parameter", atParameter, "elapsed", time.Since(start))

		if !cm.IsCovered() {
			start = time.Now()
			ipog.VerticalExtendUnconstrained(parameters, atParameter, pcl, pcListLen, m, cm)
			logDebug(logger, "vertical extension done", "parameter", atParameter, "elapsed", time.Since(start))
		}
	}

	return m, nil
}

// RunConstrained is RunUnconstrained for constrained SUTs. Single-threaded
// iterations and vertical extension route fill decisions through the
// solver exactly as ipog.RunConstrained does; threaded iterations instead
// choose among the feasible values a prefetch goroutine computes on a
// second solver (see HorizontalExtendThreadedConstrained).
func RunConstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](csut *sut.ConstrainedSUT[V, P], strength int, logger *log.Logger, opts ...Option) (*mca.MCA[V, L], error) {
	cfg := newRunConfig(opts)

	s, err := csut.GetSolver()
	if err != nil {
		return nil, err
	}
	prefetchSolver, err := csut.NewAdditionalSolver()
	if err != nil {
		return nil, err
	}
	parameters := csut.SubSUT.Parameters

	m := mca.NewConstrained[V, L](parameters, strength, func(row []V) bool {
		return solver.CheckRow[V](s, row)
	})
	logDebug(logger, "initial constrained array", "rows", m.Len())

	if strength == len(parameters) {
		return m, nil
	}

	pcl, err := pclist.Build[P, L](len(parameters), strength)
	if err != nil {
		return nil, err
	}
	cm := covmap.New[V, P, L](parameters, pcl)
	lowerLimit := LowerLimit(cfg.threadCount)

	for atParameter := strength; atParameter < len(parameters); atParameter++ {
		pcListLen := pcl.Sizes[atParameter-strength]
		cm.Initialise(atParameter)
		logDebug(logger, "iteration start", "parameter", atParameter, "uncovered", cm.Uncovered, "threaded", lowerLimit <= pcListLen)

		if cfg.filterMap {
			ipog.FilterMap[V, P, L](s, parameters, atParameter, pcl, 0, pcListLen, cm)
		}

		start := time.Now()
		if lowerLimit <= pcListLen {
			HorizontalExtendThreadedConstrained(prefetchSolver, parameters, atParameter, pcl, pcListLen, m, cm, cfg.threadCount)
		} else {
			ipog.HorizontalExtendConstrained(s, parameters, atParameter, pcl, pcListLen, m, cm)
		}
		logDebug(logger, "horizontal extension done", "parameter", atParameter, "elapsed", time.Since(start))

		if !cm.IsCovered() {
			start = time.Now()
			ipog.VerticalExtendConstrained(s, parameters, atParameter, pcl, pcListLen, m, cm)
			logDebug(logger, "vertical extension done", "parameter", atParameter, "elapsed", time.Since(start))
		}
	}

	return m, nil
}

func logDebug(logger *log.Logger, message string, keyvals ...interface{}) {
	if logger != nil {
		logger.Debug(message, keyvals...)
	}
}
