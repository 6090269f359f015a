package impute

import (
	"errors"
	"log/slog"
	"maps"

	"github.com/katalvlaran/graphimpute/core"
)

// Sentinel errors.
var (
	ErrGraphNil     = errors.New("impute: graph is nil")
	ErrInvalidParam = errors.New("impute: invalid parameter")
)

// Strategy is implemented by every imputation method.
type Strategy interface {
	// Configure merges recognized keys of p onto the current settings.
	Configure(p Params)
	// Run fills missing attribute values of the owned graph in place.
	Run() error
	// ExtractResults returns the owned graph.
	ExtractResults() *core.Graph
	// Reset restores default settings and clears scratch state.
	Reset()
}

// Option configures a Base.
type Option func(*Base)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Base) {
		if l != nil {
			b.Log = l
		}
	}
}

// WithParams merges p onto the defaults at construction time.
func WithParams(p Params) Option {
	return func(b *Base) { b.Configure(p) }
}

// Base carries what every strategy owns: the graph, its current parameters
// and a logger. Strategies embed it.
type Base struct {
	Graph    *core.Graph
	Params   Params
	Log      *slog.Logger
	defaults Params
}

// NewBase returns a Base over g whose recognized keys are those of defaults.
func NewBase(g *core.Graph, defaults Params, opts ...Option) Base {
	b := Base{
		Graph:    g,
		Params:   maps.Clone(defaults),
		Log:      slog.Default(),
		defaults: maps.Clone(defaults),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Configure merges the recognized keys of p; others are ignored.
func (b *Base) Configure(p Params) {
	for k, v := range p {
		if _, ok := b.defaults[k]; ok {
			b.Params[k] = v
		}
	}
}

// ExtractResults returns the owned graph.
func (b *Base) ExtractResults() *core.Graph { return b.Graph }

// ResetParams restores the default parameters.
func (b *Base) ResetParams() { b.Params = maps.Clone(b.defaults) }
