// SPDX-License-Identifier: MIT
// File: kind.go
// Role: Closed set of imputation strategies and their constructors.

package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/deepwalk"
	"github.com/katalvlaran/graphimpute/impute"
	"github.com/katalvlaran/graphimpute/knn"
	"github.com/katalvlaran/graphimpute/topo2vec"
)

// ErrUnknownKind is returned for an unrecognized strategy name or value.
var ErrUnknownKind = errors.New("runner: unknown strategy")

// Kind selects an imputation strategy.
type Kind int

const (
	KNN Kind = iota
	Topo2Vec
	AttributedDeepWalk
)

// String returns the canonical CLI name of k.
func (k Kind) String() string {
	switch k {
	case KNN:
		return "knn"
	case Topo2Vec:
		return "topo2vec"
	case AttributedDeepWalk:
		return "adw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a case-insensitive name to a Kind. "deepwalk" is accepted
// as an alias of "adw".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "knn":
		return KNN, nil
	case "topo2vec":
		return Topo2Vec, nil
	case "adw", "deepwalk":
		return AttributedDeepWalk, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// NewStrategy constructs the strategy of the given kind over g.
func NewStrategy(kind Kind, g *core.Graph, opts ...impute.Option) (impute.Strategy, error) {
	switch kind {
	case KNN:
		return knn.New(g, opts...), nil
	case Topo2Vec:
		return topo2vec.New(g, opts...), nil
	case AttributedDeepWalk:
		return deepwalk.New(g, opts...), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}
