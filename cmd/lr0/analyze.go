package main

import (
	"strings"

	"github.com/npillmayer/lr0/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "analyze [grammar-file]",
		Short:   "Print nullable non-terminals, FIRST and FOLLOW sets",
		Example: `  lr0 analyze expr.bnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runAnalyze,
	}
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args, *rootFlags.start)
	if err != nil {
		return err
	}
	ga := lr.Analysis(g, analysisOptions()...)
	printRules(g)
	pterm.DefaultTable.WithHasHeader().WithData(analysisTable(ga)).Render()
	return nil
}

func printRules(g *lr.Grammar) {
	pterm.Info.Printf("grammar %s\n", g.Name)
	for _, r := range g.Rules() {
		pterm.Printf("%4d: %v\n", r.Serial, r)
	}
	pterm.Println()
}

// analysisTable has a row for every non-terminal of the grammar, in order of
// appearance.
func analysisTable(ga *lr.LRAnalysis) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", "Nullable", "First", "Follow"}}
	for _, N := range ga.Grammar().Nonterminals() {
		nullable := ""
		if ga.Nullable(N) {
			nullable = "yes"
		}
		data = append(data, []string{
			N.String(),
			nullable,
			terminalList(ga.First(N)),
			terminalList(ga.Follow(N)),
		})
	}
	return data
}

func terminalList(T []lr.Terminal) string {
	if len(T) == 0 {
		return "{ }"
	}
	s := make([]string, len(T))
	for i, t := range T {
		s[i] = t.String()
	}
	return "{ " + strings.Join(s, " ") + " }"
}
