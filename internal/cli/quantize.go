package cli

import (
	"github.com/spf13/cobra"
	"github.com/viant/kdtree/quantize"
	"github.com/viant/kdtree/store"
	"github.com/viant/kdtree/tree"
)

func (a *app) quantizeCommand() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "quantize",
		Short: "Print a KD-tree codebook for the dataset",
		Long: `Train a quantizer on the dataset: points are split by median up to
--depth levels and every deeper subtree collapses to its centroid. The
resulting codewords are printed as code<TAB>coordinates.

Example:
  kdtree quantize --depth 4 --dataset demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			q, err := quantize.New(depth, quantize.WithLogger(a.logger))
			if err != nil {
				return err
			}
			_, vecs := store.Split(points)
			if err := q.Train(vecs); err != nil {
				return err
			}
			printVectors(cmd.OutOrStdout(), q.Codebook())
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 3, "Maximum tree depth (codebook holds at most 2^depth entries)")
	return cmd
}

func (a *app) leavesCommand() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "leaves",
		Short: "Print the leaf points of a balanced build",
		Long: `Build a balanced KD-tree over the dataset and print the points stored
in its leaves, left to right. With --depth -1 no centroid collapsing happens.

Example:
  kdtree leaves --depth 2 --dataset demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			_, vecs := store.Split(points)
			pts := make([]tree.Vector, len(vecs))
			for i, v := range vecs {
				pts[i] = v
			}
			t, err := tree.Build(len(pts[0]), pts, depth)
			if err != nil {
				return err
			}
			a.logger.Debug("balanced tree built", "points", t.Len(), "nodes", t.NodeCount())
			leaves := t.Leaves()
			out := make([][]float32, len(leaves))
			for i, l := range leaves {
				out[i] = l
			}
			printVectors(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", tree.NoDepthLimit, "Maximum tree depth, -1 for unbounded")
	return cmd
}
