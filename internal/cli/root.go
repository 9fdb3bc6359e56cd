// Package cli implements the kdtree command line tool.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/kdtree/engine"
	"github.com/viant/kdtree/store"
)

type app struct {
	dbPath  string
	dataset string
	workers int
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand returns the kdtree command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "kdtree",
		Short: "Build and query KD-trees over stored point sets",
		Long: `kdtree stores point sets in SQLite and answers nearest-neighbour
queries over them with a KD-tree.

Example usage:
  kdtree load points.csv --dataset demo    # Store id,x1,...,xn rows
  kdtree nn 9,2 --dataset demo             # Nearest stored point to (9,2)
  kdtree quantize --depth 3 --dataset demo # Print an 8-entry codebook
  kdtree tree --dataset demo               # Print the incremental tree`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".kdtree", "points.db")

	root.PersistentFlags().StringVar(&a.dbPath, "db", defaultDB, "Path to SQLite database")
	root.PersistentFlags().StringVar(&a.dataset, "dataset", "default", "Dataset name")
	root.PersistentFlags().IntVar(&a.workers, "workers", 4, "Number of parallel query workers")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.loadCommand(), a.nnCommand(), a.quantizeCommand(), a.leavesCommand(), a.treeCommand())
	return root
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) openStore(ctx context.Context) (*sql.DB, *store.PointStore, error) {
	if dir := filepath.Dir(a.dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := engine.Open(a.dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	s, err := store.New(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to prepare database: %w", err)
	}
	return db, s, nil
}

func (a *app) loadDataset(ctx context.Context) ([]store.Point, error) {
	db, s, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	points, err := s.LoadPoints(ctx, a.dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", a.dataset, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", a.dataset)
	}
	a.logger.Debug("dataset loaded", "dataset", a.dataset, "points", len(points))
	return points, nil
}

func parseVector(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	return parseFields(fields)
}

func parseFields(fields []string) ([]float32, error) {
	vec := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", f, err)
		}
		vec[i] = float32(v)
	}
	return vec, nil
}

func formatVector(v []float32) string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.FormatFloat(float64(c), 'g', -1, 32)
	}
	return strings.Join(parts, ",")
}

func printVectors(w io.Writer, vecs [][]float32) {
	for i, v := range vecs {
		fmt.Fprintf(w, "%d\t%s\n", i, formatVector(v))
	}
}
