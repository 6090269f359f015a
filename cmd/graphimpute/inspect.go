package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphimpute/converters"
	"github.com/katalvlaran/graphimpute/graphio"
)

func newInspectCmd(gf *globalFlags) *cobra.Command {
	var nodes, edges string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print size, missing values and connectivity of an input graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := gf.load(cmd)
			if err != nil {
				return err
			}
			if nodes == "" {
				nodes = cfg.Nodes
			}
			if edges == "" {
				edges = cfg.Edges
			}
			if nodes == "" || edges == "" {
				return errMissingInput
			}

			g, err := graphio.LoadFiles(nodes, edges, graphio.WithLogger(log))
			if err != nil {
				return err
			}
			comps := converters.Components(g)
			largest := 0
			for _, c := range comps {
				largest = max(largest, len(c))
			}
			withMissing := 0
			for _, id := range g.Nodes() {
				if g.HasMissing(id) {
					withMissing++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:          %d\n", g.NodeCount())
			fmt.Fprintf(out, "edges:          %d\n", g.EdgeCount())
			fmt.Fprintf(out, "dimension:      %d\n", g.Dim())
			fmt.Fprintf(out, "average degree: %.3f\n", g.AverageDegree())
			fmt.Fprintf(out, "missing values: %d (%d nodes)\n", g.MissingCount(), withMissing)
			fmt.Fprintf(out, "components:     %d (largest %d)\n", len(comps), largest)
			return nil
		},
	}
	cmd.Flags().StringVar(&nodes, "nodes", "", "node attribute file")
	cmd.Flags().StringVar(&edges, "edges", "", "edge list file")
	return cmd
}
