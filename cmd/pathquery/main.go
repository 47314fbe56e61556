// Command pathquery answers a single RPQ, CFPQ or CYK query against a
// graph built from -edges and exits. It is a thin demonstration harness
// over this module's kernels, not an interactive query console.
package main

import (
	"fmt"
	"strings"

	"github.com/kvryabov/langreach/cfpq"
	"github.com/kvryabov/langreach/core"
	"github.com/kvryabov/langreach/grammar"
	"github.com/kvryabov/langreach/rpq"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := ParseFlags()
	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	g, err := buildGraph(opts.Edges)
	if err != nil {
		gologger.Fatal().Msgf("failed to build graph: %s\n", err)
	}
	gologger.Verbose().Msgf("loaded graph with %d vertices\n", len(g.Vertices()))

	switch opts.Mode {
	case "rpq":
		runRPQ(g, opts)
	case "cfpq":
		runCFPQ(g, opts)
	case "cyk":
		runCYK(opts)
	}
}

// buildGraph parses -edges entries of the form "from:label:to" into a
// core.Graph. This is the only graph input the CLI accepts — dataset-
// backed loaders (DOT, CSV, …) remain out of scope.
func buildGraph(edges []string) (*core.Graph, error) {
	g := core.NewGraph()
	for _, raw := range edges {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed edge %q, want from:label:to", raw)
		}
		if _, err := g.AddEdge(parts[0], parts[2], parts[1]); err != nil {
			return nil, fmt.Errorf("edge %q: %w", raw, err)
		}
	}
	return g, nil
}

func runRPQ(g *core.Graph, opts *Options) {
	results, err := rpq.Query(g, opts.Regex, opts.Start, opts.Final)
	if err != nil {
		gologger.Fatal().Msgf("rpq query failed: %s\n", err)
	}
	for _, r := range results {
		fmt.Printf("%s -> %s\n", r.From, r.To)
	}
	gologger.Info().Msgf("%d result(s)\n", len(results))
}

func runCFPQ(g *core.Graph, opts *Options) {
	cfg, err := grammar.LoadCFGFile(opts.Grammar, opts.StartVar)
	if err != nil {
		gologger.Fatal().Msgf("failed to load grammar: %s\n", err)
	}

	alg := cfpq.AlgHellings
	switch opts.Algo {
	case "matrix":
		alg = cfpq.AlgMatrix
	case "tensor":
		alg = cfpq.AlgTensor
	case "hellings", "":
	default:
		gologger.Fatal().Msgf("unknown -algo %q (want hellings, matrix or tensor)\n", opts.Algo)
	}

	results, err := cfpq.Run(alg, g, cfg, opts.Start, opts.Final, opts.StartVar)
	if err != nil {
		gologger.Fatal().Msgf("cfpq query failed: %s\n", err)
	}
	for _, r := range results {
		fmt.Printf("%s -> %s\n", r.From, r.To)
	}
	gologger.Info().Msgf("%d result(s)\n", len(results))
}

func runCYK(opts *Options) {
	cfg, err := grammar.LoadCFGFile(opts.Grammar, opts.StartVar)
	if err != nil {
		gologger.Fatal().Msgf("failed to load grammar: %s\n", err)
	}

	accepted := cfpq.CYK(cfg, opts.Word, opts.StartVar)
	fmt.Println(accepted)
}
