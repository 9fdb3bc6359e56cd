package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/kdtree/index/kd"
	"github.com/viant/kdtree/store"
	"golang.org/x/sync/errgroup"
)

type nnResult struct {
	id   string
	dist float64
}

func (a *app) nnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nn <x1,...,xn>...",
		Short: "Find the nearest stored point for each query",
		Long: `Build a balanced KD-tree over the dataset and print, for every query
point, the id of the nearest stored point and its Euclidean distance.
Queries run in parallel on --workers goroutines.

Example:
  kdtree nn 9,2 0,0 --dataset demo`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries := make([][]float32, len(args))
			for i, arg := range args {
				q, err := parseVector(arg)
				if err != nil {
					return err
				}
				queries[i] = q
			}
			points, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			idx := kd.New(kd.WithLogger(a.logger))
			if err := idx.Build(store.Split(points)); err != nil {
				return err
			}

			results := make([]nnResult, len(queries))
			var g errgroup.Group
			g.SetLimit(max(1, a.workers))
			for i, q := range queries {
				g.Go(func() error {
					id, dist, err := idx.Nearest(q)
					if err != nil {
						return fmt.Errorf("query %s: %w", args[i], err)
					}
					results[i] = nnResult{id: id, dist: dist}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for i, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g\n", formatVector(queries[i]), r.id, r.dist)
			}
			return nil
		},
	}
}
