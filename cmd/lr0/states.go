package main

import (
	"fmt"

	"github.com/npillmayer/lr0/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "states [grammar-file]",
		Short:   "Print the states of the CFSM",
		Example: `  lr0 states --grouped-goto expr.bnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runStates,
	}
	rootCmd.AddCommand(cmd)
}

func runStates(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args, *rootFlags.start)
	if err != nil {
		return err
	}
	cfsm := lr.BuildCFSM(g, cfsmOptions()...)
	printRules(g)
	pterm.Info.Printf("CFSM has %d states\n", cfsm.Size())
	root := pterm.NewTreeFromLeveledList(stateList(cfsm))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// stateList lists every state with its items and its outgoing edges.
func stateList(cfsm *lr.CFSM) pterm.LeveledList {
	var ll pterm.LeveledList
	for _, s := range cfsm.States() {
		label := fmt.Sprintf("state %d", s.ID)
		if s.HasCompleteItem() {
			label += " (reduce)"
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label})
		for _, i := range s.Items() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: i.String()})
		}
		for _, e := range s.Edges() {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("on %s goto %d", e.Label, e.To),
			})
		}
	}
	return ll
}
