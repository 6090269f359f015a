package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphimpute/core"
)

// Header is the first line written by WriteFeatures.
const Header = "node_id\tfeature\tlabel"

// WriteFeatures writes every node of g in ascending id order, rendering
// missing values as #.
func WriteFeatures(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}

	ids := slices.Clone(g.Nodes())
	slices.Sort(ids)

	var sb strings.Builder
	for _, id := range ids {
		sb.Reset()
		for i, v := range g.Features(id) {
			if i > 0 {
				sb.WriteByte(',')
			}
			if core.IsMissing(v) {
				sb.WriteByte('#')
			} else {
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		label, _ := g.Label(id)
		if _, err := fmt.Fprintf(bw, "%d\t%s\t%d\n", id, sb.String(), label); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteEdges writes every undirected edge of g once, as "a b" with a < b,
// in ascending order.
func WriteEdges(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From, e.To); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFeatures writes g to path, truncating any existing file.
func SaveFeatures(path string, g *core.Graph) error {
	return save(path, g, WriteFeatures)
}

// SaveEdges writes the edge list of g to path, truncating any existing file.
func SaveEdges(path string, g *core.Graph) error {
	return save(path, g, WriteEdges)
}

func save(path string, g *core.Graph, write func(io.Writer, *core.Graph) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	if err := write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}
	return f.Close()
}
