package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/viant/kdtree/tree"
)

func (a *app) treeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the tree built by inserting the dataset in stored order",
		Long: `Insert every point of the dataset one at a time and print the
resulting tree, one node per line as [L|R] coordinates /cut-dimension.

Example:
  kdtree tree --dataset demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			t, err := tree.New[tree.Vector](len(points[0].Vector))
			if err != nil {
				return err
			}
			for _, p := range points {
				if err := t.Insert(p.Vector); err != nil {
					return fmt.Errorf("point %s: %w", p.ID, err)
				}
			}
			root, _ := t.Root()
			printNode(cmd.OutOrStdout(), root, "", "*")
			return nil
		},
	}
}

func printNode(w io.Writer, n tree.Node[tree.Vector], indent, side string) {
	fmt.Fprintf(w, "%s%s %s /%d\n", indent, side, formatVector(n.Point()), n.CutDim())
	if l, ok := n.Left(); ok {
		printNode(w, l, indent+"  ", "L")
	}
	if r, ok := n.Right(); ok {
		printNode(w, r, indent+"  ", "R")
	}
}
