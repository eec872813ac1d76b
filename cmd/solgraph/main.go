// Command solgraph is a thin CLI over the analysis pipeline: load a
// compiled AST, list its contracts, and flatten one node. Building per-function
// CFGs and running the DFG/Network/DOT pipeline end to end requires a CFG
// already materialized as a cfg.CFG value (the compiler driver and CFG
// builder are named external collaborators this module consumes but does
// not construct from raw source), so this CLI surface stays to the parts
// that work directly off a compiled AST document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "solgraph",
		Short: "Static data-flow analysis for Solidity-like contracts",
	}
	root.AddCommand(newAnalyzeCmd())
	return root
}
