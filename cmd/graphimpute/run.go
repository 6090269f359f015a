package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphimpute/graphio"
	"github.com/katalvlaran/graphimpute/impute"
	"github.com/katalvlaran/graphimpute/metrics"
	"github.com/katalvlaran/graphimpute/runner"
)

var errMissingInput = errors.New("both --nodes and --edges are required")

type runFlags struct {
	strategy    string
	nodes       string
	edges       string
	output      string
	params      []string
	seed        int64
	metricsFile string
}

func newRunCmd(gf *globalFlags) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an imputation strategy and write the completed features",
		Example: `  graphimpute run --strategy knn --nodes nodes.txt --edges edges.txt --param k=5
  graphimpute run --config run.yaml --strategy adw --seed 7 --output out.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImpute(cmd, gf, rf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&rf.strategy, "strategy", "", "knn, topo2vec or adw")
	f.StringVar(&rf.nodes, "nodes", "", "node attribute file")
	f.StringVar(&rf.edges, "edges", "", "edge list file")
	f.StringVar(&rf.output, "output", "", "output file (default stdout)")
	f.StringArrayVar(&rf.params, "param", nil, "strategy parameter as key=value (repeatable)")
	f.Int64Var(&rf.seed, "seed", 0, "random seed for the embedding strategies")
	f.StringVar(&rf.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	return cmd
}

func runImpute(cmd *cobra.Command, gf *globalFlags, rf *runFlags) error {
	cfg, log, err := gf.load(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = rf.strategy
	}
	if flags.Changed("nodes") {
		cfg.Nodes = rf.nodes
	}
	if flags.Changed("edges") {
		cfg.Edges = rf.edges
	}
	if flags.Changed("output") {
		cfg.Output = rf.output
	}
	if flags.Changed("seed") {
		cfg.Seed = rf.seed
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = rf.metricsFile
	}
	if cfg.Nodes == "" || cfg.Edges == "" {
		return errMissingInput
	}

	kind, err := runner.ParseKind(cfg.Strategy)
	if err != nil {
		return err
	}

	params := impute.Params{}
	for k, v := range cfg.Params {
		params[k] = v
	}
	if cfg.Seed != 0 {
		params[impute.KeySeed] = float64(cfg.Seed)
	}
	if err := parseParams(rf.params, params); err != nil {
		return err
	}

	g, err := graphio.LoadFiles(cfg.Nodes, cfg.Edges, graphio.WithLogger(log))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	r, err := runner.New(kind, g,
		runner.WithLogger(log),
		runner.WithMetrics(metrics.New(reg)),
		runner.WithParams(params))
	if err != nil {
		return err
	}

	rep, runErr := r.Run()
	if cfg.Metrics.File != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.File, reg); err != nil {
			log.Error("writing metrics failed", "path", cfg.Metrics.File, "err", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Output == "" {
		if err := graphio.WriteFeatures(cmd.OutOrStdout(), r.Result()); err != nil {
			return err
		}
	} else if err := r.SaveFeatures(cfg.Output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: filled %d values, %d still missing (%s)\n",
		rep.Strategy, rep.Filled, rep.MissingAfter, rep.Duration.Round(time.Millisecond))
	return nil
}

// parseParams merges key=value pairs into dst.
func parseParams(pairs []string, dst impute.Params) error {
	for _, p := range pairs {
		key, raw, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("--param %q: want key=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("--param %q: %w", p, err)
		}
		dst[key] = v
	}
	return nil
}
