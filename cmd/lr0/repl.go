package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/lr0/lr/bnf"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl [grammar-file]",
		Short: "Enter grammar rules interactively",
		Long: `repl reads grammar rules in BNF notation, one or more per line, and adds
them to the current grammar. Commands:

  :grammar   print the current grammar
  :analyze   print nullable non-terminals, FIRST and FOLLOW sets
  :states    print the CFSM
  :reset     start over with an empty grammar
  :quit      leave (or <ctrl>D)`,
		Example: `  lr0 repl
  lr0> S -> E '+' E ;
  lr0> E -> 'a' E | ;
  lr0> :states`,
		Args: cobra.MaximumNArgs(1),
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	intp := &Intp{}
	if len(args) > 0 {
		g, err := loadGrammar(args, *rootFlags.start)
		if err != nil {
			return err
		}
		intp.rules = g.Rules()
	}
	repl, err := readline.New("lr0> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to lr0")
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// Intp is our interpreter object. It collects productions entered by the user.
type Intp struct {
	rules []*lr.Production
	repl  *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			if m := errorMarker(line, err); m != "" {
				pterm.Println(line)
				pterm.Println(m)
			}
			continue
		}
		if quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// errorMarker underlines the token a syntax error refers to.
func errorMarker(line string, err error) string {
	var serr *bnf.SyntaxError
	if !errors.As(err, &serr) || serr.Span.From() > uint64(len(line)) {
		return ""
	}
	n := int(serr.Span.Len())
	if n == 0 {
		n = 1
	}
	return strings.Repeat(" ", int(serr.Span.From())) + strings.Repeat("^", n)
}

var errNoRules = errors.New("no rules entered yet")

// Eval executes a command or adds the rules of a line to the grammar.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		prods, err := bnf.ParseProductions(line)
		if err != nil {
			return false, err
		}
		intp.rules = append(intp.rules, prods...)
		tracer().Debugf("added %d productions", len(prods))
		return false, nil
	}
	switch cmd := strings.Fields(line)[0]; cmd {
	case ":quit", ":q":
		return true, nil
	case ":reset":
		intp.rules = nil
	case ":grammar":
		g, err := intp.grammar()
		if err != nil {
			return false, err
		}
		printRules(g)
	case ":analyze":
		g, err := intp.grammar()
		if err != nil {
			return false, err
		}
		ga := lr.Analysis(g, analysisOptions()...)
		pterm.DefaultTable.WithHasHeader().WithData(analysisTable(ga)).Render()
	case ":states":
		g, err := intp.grammar()
		if err != nil {
			return false, err
		}
		cfsm := lr.BuildCFSM(g, cfsmOptions()...)
		root := pterm.NewTreeFromLeveledList(stateList(cfsm))
		pterm.DefaultTree.WithRoot(root).Render()
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

func (intp *Intp) grammar() (*lr.Grammar, error) {
	if len(intp.rules) == 0 {
		return nil, errNoRules
	}
	return lr.NewGrammar("repl", intp.rules...)
}
