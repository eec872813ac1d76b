package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/afs"
	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/variable"
)

// newAnalyzeCmd groups the subcommands this module can run standalone:
// the CFG builder is a named external collaborator, so the full
// CFG -> DFG -> Network -> dot pipeline is library surface for a caller
// that supplies CFGs, not something this CLI can construct from a bare
// AST on its own.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Inspect a compiled AST document",
	}
	cmd.AddCommand(newContractsCmd())
	cmd.AddCommand(newFlattenCmd())
	return cmd
}

func newContractsCmd() *cobra.Command {
	var astURL string
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "List every contract defined in a compiled AST document",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDict(cmd.Context(), astURL)
			if err != nil {
				return err
			}
			for _, id := range dict.FindIDs(ast.Query{Kind: ast.ContractByName, Arg: ""}) {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&astURL, "ast", "", "afs URL of the compiled AST document")
	_ = cmd.MarkFlagRequired("ast")
	return cmd
}

func newFlattenCmd() *cobra.Command {
	var astURL, nodeID string
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Flatten one AST expression into its canonical variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDict(cmd.Context(), astURL)
			if err != nil {
				return err
			}
			focus, ok := dict.WalkerAt(nodeID)
			if !ok {
				return fmt.Errorf("node %s not found", nodeID)
			}
			vars, err := variable.GetVariables(focus, dict)
			if err != nil {
				return err
			}
			for _, v := range vars {
				fmt.Fprintf(cmd.OutOrStdout(), "%s : %s\n", v.Attributes, v.Kind)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&astURL, "ast", "", "afs URL of the compiled AST document")
	cmd.Flags().StringVar(&nodeID, "node", "", "AST node id to flatten")
	_ = cmd.MarkFlagRequired("ast")
	_ = cmd.MarkFlagRequired("node")
	return cmd
}

func loadDict(ctx context.Context, astURL string) (*ast.Dict, error) {
	src := ast.NewSource(afs.New())
	return src.LoadDictionary(ctx, astURL)
}
