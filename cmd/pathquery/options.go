package main

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the parsed command-line configuration for a single query
// run. One process answers one query — this is not an interactive console.
type Options struct {
	Edges    goflags.StringSlice // from:label:to triples (comma-separated or file)
	Mode     string              // rpq | cfpq | cyk
	Regex    string              // regexlang pattern, for -mode rpq
	Grammar  string              // path to a CFG text file, for -mode cfpq/cyk
	StartVar string              // nonterminal to query, for -mode cfpq/cyk
	Algo     string              // hellings | matrix | tensor, for -mode cfpq
	Start    goflags.StringSlice // start vertices (default: all)
	Final    goflags.StringSlice // final vertices (default: all)
	Word     goflags.StringSlice // terminal tokens, for -mode cyk
	Verbose  bool
	Silent   bool
}

// ParseFlags reads os.Args into an Options, grounded in
// projectdiscovery-alterx/internal/runner.ParseFlags's CreateGroup layout.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Language-constrained path-query engine: RPQ and CFPQ reachability over labeled multigraphs.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Edges, "edges", "e", nil, "graph edges as from:label:to (comma-separated or file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Mode, "mode", "m", "rpq", "query mode: rpq, cfpq, cyk"),
		flagSet.StringVarP(&opts.Regex, "regex", "r", "", "regular expression over edge labels, for -mode rpq"),
		flagSet.StringVarP(&opts.Grammar, "cfg", "g", "", "path to a context-free grammar text file, for -mode cfpq/cyk"),
		flagSet.StringVar(&opts.StartVar, "start-var", "", "nonterminal to query (default: grammar's own start symbol)"),
		flagSet.StringVarP(&opts.Algo, "algo", "a", "hellings", "cfpq variant: hellings, matrix, tensor"),
		flagSet.StringSliceVarP(&opts.Start, "start", "s", nil, "start vertices (comma-separated, default: all vertices)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Final, "final", "f", nil, "final vertices (comma-separated, default: all vertices)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Word, "word", "w", nil, "terminal tokens to test membership of, for -mode cyk", goflags.CommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	opts.Algo = strings.ToLower(strings.TrimSpace(opts.Algo))

	return opts
}

func (o *Options) validate() error {
	switch o.Mode {
	case "rpq":
		if o.Regex == "" {
			return fmt.Errorf("-mode rpq requires -regex")
		}
	case "cfpq":
		if o.Grammar == "" {
			return fmt.Errorf("-mode cfpq requires -cfg")
		}
	case "cyk":
		if o.Grammar == "" {
			return fmt.Errorf("-mode cyk requires -cfg")
		}
	default:
		return fmt.Errorf("unknown -mode %q (want rpq, cfpq or cyk)", o.Mode)
	}
	return nil
}
