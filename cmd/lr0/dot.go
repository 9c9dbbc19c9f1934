package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lr0/lr"
	"github.com/spf13/cobra"
)

var dotFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "dot [grammar-file]",
		Short:   "Export the CFSM in Graphviz Dot format",
		Example: `  lr0 dot expr.bnf -o expr.dot`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDot,
	}
	dotFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runDot(cmd *cobra.Command, args []string) (retErr error) {
	g, err := loadGrammar(args, *rootFlags.start)
	if err != nil {
		return err
	}
	cfsm := lr.BuildCFSM(g, cfsmOptions()...)
	var w io.Writer = os.Stdout
	if *dotFlags.output != "" {
		f, err := os.Create(*dotFlags.output)
		if err != nil {
			return fmt.Errorf("cannot create output file %s: %w", *dotFlags.output, err)
		}
		defer func() {
			if err := f.Close(); err != nil && retErr == nil {
				retErr = err
			}
		}()
		w = f
	}
	return cfsm.WriteDot(w)
}
