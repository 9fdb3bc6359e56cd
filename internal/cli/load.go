package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/kdtree/store"
)

func (a *app) loadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load <csv>",
		Short: "Store points from a CSV file",
		Long: `Read points from a CSV file with rows of the form id,x1,...,xn and
store them in the dataset. A first row starting with "id" is treated as a
header. Existing ids are replaced.

Example:
  kdtree load points.csv --dataset demo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readCSV(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := s.AddPoints(ctx, a.dataset, points); err != nil {
				return fmt.Errorf("failed to store points: %w", err)
			}
			n, err := s.Count(ctx, a.dataset)
			if err != nil {
				return err
			}
			a.logger.Info("points loaded", "dataset", a.dataset, "added", len(points), "total", n)
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d points into %s (%d total)\n", len(points), a.dataset, n)
			return nil
		},
	}
}

func readCSV(path string) ([]store.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var points []store.Point
	for line := 1; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if line == 1 && len(record) > 0 && record[0] == "id" {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("%s:%d: want id and at least one coordinate", path, line)
		}
		vec, err := parseFields(record[1:])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		points = append(points, store.Point{ID: record[0], Vector: vec})
	}
	return points, nil
}
