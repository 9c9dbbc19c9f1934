package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/lr0/lr/bnf"
	"github.com/npillmayer/lr0/lr/ebnf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace          *string
	textbookFollow *bool
	groupedGoto    *bool
	start          *string
}{}

var rootCmd = &cobra.Command{
	Use:   "lr0",
	Short: "Analyse a grammar and construct its LR(0) automaton",
	Long: `lr0 computes nullable non-terminals, FIRST and FOLLOW sets of a
context-free grammar, and constructs the characteristic finite state
machine (CFSM) of LR(0) items for it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupTracing(*rootFlags.trace)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	rootFlags.trace = pf.String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.textbookFollow = pf.Bool("textbook-follow", false,
		"propagate FOLLOW(LHS) only over nullable tails")
	rootFlags.groupedGoto = pf.Bool("grouped-goto", false,
		"one successor state per grammar symbol")
	rootFlags.start = pf.String("start", "", "start production of EBNF grammars")
}

// Execute runs the root command and reports errors to the user.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

var traceKeys = []string{"lr0.lr", "lr0.scanner", "lr0.bnf", "lr0.cli"}

func setupTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("trace level is %s", level)
}

func analysisOptions() []lr.AnalysisOption {
	return []lr.AnalysisOption{lr.TextbookFollow(*rootFlags.textbookFollow)}
}

func cfsmOptions() []lr.CFSMOption {
	return []lr.CFSMOption{lr.GroupedGoto(*rootFlags.groupedGoto)}
}

// loadGrammar reads the grammar file named by the first argument, or returns the
// example grammar if there are no arguments.
func loadGrammar(args []string, start string) (*lr.Grammar, error) {
	if len(args) == 0 {
		return makeExampleGrammar()
	}
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar %s: %w", path, err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var g *lr.Grammar
	if strings.EqualFold(filepath.Ext(path), ".ebnf") {
		g, err = ebnf.Load(name, f, start)
	} else {
		g, err = bnf.Parse(name, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("grammar %s has %d productions", g.Name, g.Size())
	g.Dump()
	return g, nil
}

// The example grammar
//
//   S -> E + E
//   E -> a E
//   E -> ε
//
func makeExampleGrammar() (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("E").T('+').N("E").End()
	b.LHS("E").T('a').N("E").End()
	b.LHS("E").Epsilon()
	return b.Grammar()
}
