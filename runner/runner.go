// Package runner drives one imputation strategy over a graph: it selects the
// strategy, runs it under a run id, records metrics and saves the result.
package runner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/graphio"
	"github.com/katalvlaran/graphimpute/impute"
	"github.com/katalvlaran/graphimpute/metrics"
)

// Report summarizes one Run.
type Report struct {
	RunID         string
	Strategy      string
	Duration      time.Duration
	MissingBefore int
	MissingAfter  int
	Filled        int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger shared with the strategy.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics records every run on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Runner) { r.metrics = c }
}

// WithParams configures the strategy with p after construction and after
// every strategy switch.
func WithParams(p impute.Params) Option {
	return func(r *Runner) { r.params = p }
}

// Runner owns a graph and the active strategy working on it.
type Runner struct {
	graph    *core.Graph
	kind     Kind
	strategy impute.Strategy
	params   impute.Params
	log      *slog.Logger
	metrics  *metrics.Collector
	last     Report
}

// New returns a Runner for g with the given strategy active.
func New(kind Kind, g *core.Graph, opts ...Option) (*Runner, error) {
	if g == nil {
		return nil, impute.ErrGraphNil
	}
	r := &Runner{graph: g, log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.SetStrategy(kind); err != nil {
		return nil, err
	}
	return r, nil
}

// SetStrategy replaces the active strategy. The graph, including values
// filled by earlier runs, is kept.
func (r *Runner) SetStrategy(kind Kind) error {
	s, err := NewStrategy(kind, r.graph, impute.WithLogger(r.log), impute.WithParams(r.params))
	if err != nil {
		return err
	}
	r.kind, r.strategy = kind, s
	return nil
}

// Kind returns the active strategy kind.
func (r *Runner) Kind() Kind { return r.kind }

// Strategy returns the active strategy.
func (r *Runner) Strategy() impute.Strategy { return r.strategy }

// Configure forwards p to the active strategy.
func (r *Runner) Configure(p impute.Params) { r.strategy.Configure(p) }

// Reset restores the active strategy to its defaults.
func (r *Runner) Reset() { r.strategy.Reset() }

// Run executes the active strategy once and returns its report.
func (r *Runner) Run() (Report, error) {
	id := uuid.NewString()
	log := r.log.With("run", id, "strategy", r.kind.String())

	rep := Report{RunID: id, Strategy: r.kind.String(), MissingBefore: r.graph.MissingCount()}
	log.Info("run started", "nodes", r.graph.NodeCount(), "edges", r.graph.EdgeCount(), "missing", rep.MissingBefore)

	start := time.Now()
	err := r.strategy.Run()
	rep.Duration = time.Since(start)
	rep.MissingAfter = r.graph.MissingCount()
	rep.Filled = rep.MissingBefore - rep.MissingAfter
	r.last = rep

	if r.metrics != nil {
		r.metrics.ObserveRun(rep.Strategy, rep.Duration, rep.Filled, rep.MissingAfter, err)
	}
	if err != nil {
		log.Error("run failed", "err", err, "filled", rep.Filled)
		return rep, fmt.Errorf("runner: %s: %w", r.kind, err)
	}
	log.Info("run finished", "duration", rep.Duration, "filled", rep.Filled, "missing", rep.MissingAfter)

	return rep, nil
}

// LastReport returns the report of the most recent Run.
func (r *Runner) LastReport() Report { return r.last }

// Result returns the graph with the values filled so far.
func (r *Runner) Result() *core.Graph { return r.strategy.ExtractResults() }

// SaveFeatures writes the current features to path.
func (r *Runner) SaveFeatures(path string) error {
	if err := graphio.SaveFeatures(path, r.Result()); err != nil {
		return err
	}
	r.log.Info("features saved", "path", path)
	return nil
}
