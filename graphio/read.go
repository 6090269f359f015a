package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphimpute/core"
)

// ErrNoNodes is returned when the node source yields no valid node.
var ErrNoNodes = errors.New("graphio: no valid nodes")

// missingTokens are the spellings of a missing feature value.
var missingTokens = map[string]struct{}{"#": {}, "'#'": {}}

// Option configures Read.
type Option func(*reader)

// WithLogger sets the logger used for skipped lines.
func WithLogger(l *slog.Logger) Option {
	return func(r *reader) {
		if l != nil {
			r.log = l
		}
	}
}

type reader struct {
	log     *slog.Logger
	skipped int
}

// LoadFiles opens nodePath and edgePath and calls Read.
func LoadFiles(nodePath, edgePath string, opts ...Option) (*core.Graph, error) {
	nf, err := os.Open(nodePath)
	if err != nil {
		return nil, fmt.Errorf("graphio: open nodes: %w", err)
	}
	defer nf.Close()

	ef, err := os.Open(edgePath)
	if err != nil {
		return nil, fmt.Errorf("graphio: open edges: %w", err)
	}
	defer ef.Close()

	return Read(nf, ef, opts...)
}

// Read parses nodes and edges into a Graph. All nodes must share the
// dimension of the first valid node line; other lengths are skipped.
func Read(nodes, edges io.Reader, opts ...Option) (*core.Graph, error) {
	r := &reader{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	parsed, err := r.readNodes(nodes)
	if err != nil {
		return nil, err
	}
	pairs, err := r.readEdges(edges)
	if err != nil {
		return nil, err
	}

	store, err := core.NewEdgeStore(pairs)
	if err != nil {
		return nil, fmt.Errorf("graphio: edges: %w", err)
	}
	g, err := core.FromParts(parsed, store)
	if err != nil {
		return nil, fmt.Errorf("graphio: nodes: %w", err)
	}

	r.log.Info("graph loaded",
		"nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"dim", g.Dim(), "missing", g.MissingCount(), "skipped", r.skipped)
	return g, nil
}

func (r *reader) skip(source string, line int, text, reason string) {
	r.skipped++
	r.log.Warn("skipping malformed line", "source", source, "line", line, "reason", reason, "text", text)
}

func (r *reader) readNodes(src io.Reader) ([]core.Node, error) {
	var (
		out  []core.Node
		seen = make(map[int]struct{})
		dim  = -1
	)
	err := scanLines(src, func(n int, line string) {
		node, err := parseNode(line)
		if err != nil {
			r.skip("nodes", n, line, err.Error())
			return
		}
		if _, dup := seen[node.ID]; dup {
			r.skip("nodes", n, line, "duplicate id")
			return
		}
		if dim < 0 {
			dim = len(node.Features)
		} else if len(node.Features) != dim {
			r.skip("nodes", n, line, fmt.Sprintf("expected %d features, got %d", dim, len(node.Features)))
			return
		}
		seen[node.ID] = struct{}{}
		out = append(out, node)
	})
	if err != nil {
		return nil, fmt.Errorf("graphio: read nodes: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoNodes
	}
	return out, nil
}

func (r *reader) readEdges(src io.Reader) ([]core.Edge, error) {
	var out []core.Edge
	err := scanLines(src, func(n int, line string) {
		e, err := parseEdge(line)
		if err != nil {
			r.skip("edges", n, line, err.Error())
			return
		}
		out = append(out, e)
	})
	if err != nil {
		return nil, fmt.Errorf("graphio: read edges: %w", err)
	}
	return out, nil
}

// scanLines calls fn for every non-blank, non-comment line.
func scanLines(src io.Reader, fn func(n int, line string)) error {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fn(n, line)
	}
	return sc.Err()
}

func parseNode(line string) (core.Node, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < 2 || len(cols) > 3 {
		return core.Node{}, fmt.Errorf("expected 2 or 3 tab-separated columns, got %d", len(cols))
	}

	id, err := parseID(cols[0])
	if err != nil {
		return core.Node{}, err
	}

	raw := strings.Split(cols[1], ",")
	features := make([]float64, len(raw))
	for i, tok := range raw {
		tok = strings.TrimSpace(tok)
		if _, ok := missingTokens[tok]; ok {
			features[i] = core.Missing()
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return core.Node{}, fmt.Errorf("feature %d: %q is not a number", i, tok)
		}
		features[i] = v
	}

	label := 0
	if len(cols) == 3 && strings.TrimSpace(cols[2]) != "" {
		label, err = strconv.Atoi(strings.TrimSpace(cols[2]))
		if err != nil {
			return core.Node{}, fmt.Errorf("label %q is not an integer", cols[2])
		}
	}

	return core.Node{ID: id, Features: features, Label: label}, nil
}

func parseEdge(line string) (core.Edge, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return core.Edge{}, errors.New("expected two node ids")
	}
	a, err := parseID(f[0])
	if err != nil {
		return core.Edge{}, err
	}
	b, err := parseID(f[1])
	if err != nil {
		return core.Edge{}, err
	}
	return core.Edge{From: a, To: b}, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("id %q is not an integer", s)
	}
	if id < 0 {
		return 0, fmt.Errorf("id %d is negative", id)
	}
	return id, nil
}
