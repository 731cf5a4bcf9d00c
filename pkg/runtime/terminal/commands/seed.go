package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb"
	"github.com/de-tools/growth-scorecard/pkg/store/seed"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type SeedCmd struct {
	session *Session
	dbPath  string
	days    int
	seed    uint64
}

func NewSeedCmd(session *Session) *cobra.Command {
	sc := &SeedCmd{session: session}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into a DuckDB database",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.dbPath, "db", "", "Path to the DuckDB database file")
	cmd.Flags().IntVar(&sc.days, "days", 30, "Days of generated metrics per window")
	cmd.Flags().Uint64Var(&sc.seed, "seed", 0, "Random seed for the generated metrics (0 uses the clock)")

	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	now := sc.session.Clock.Now()

	seedValue := sc.seed
	if seedValue == 0 {
		seedValue = uint64(now.UnixNano())
	}
	dataset := seed.Demo(now, sc.days, seed.NewRand(seedValue))

	store, err := sc.session.Registry.Open(ctx, duckdb.DriverName, sc.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	bar := progressbar.NewOptions(dataset.Size(),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("seeding "+sc.dbPath),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(cmd.ErrOrStderr()) }),
	)

	if err := Load(ctx, store, dataset, bar); err != nil {
		return err
	}

	sc.session.Logger.Info().
		Str("db", sc.dbPath).
		Int("customers", len(dataset.Customers)).
		Int("points", len(dataset.Points)).
		Msg("demo dataset loaded")
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d records into %s\n", dataset.Size(), sc.dbPath)
	return nil
}

// Progress is advanced once per stored record.
type Progress interface {
	Add(num int) error
}

// Load writes every record of the dataset to store. progress may be nil.
func Load(ctx context.Context, store source.Store, dataset seed.Dataset, progress Progress) error {
	step := func() {
		if progress != nil {
			_ = progress.Add(1)
		}
	}

	for _, p := range dataset.Products {
		if err := store.SaveProduct(ctx, p); err != nil {
			return fmt.Errorf("failed to save product %s: %w", p.ID, err)
		}
		step()
	}
	for _, c := range dataset.Customers {
		if err := store.SaveCustomer(ctx, c); err != nil {
			return fmt.Errorf("failed to save customer %s: %w", c.ID, err)
		}
		step()
	}
	for _, p := range dataset.Points {
		if err := store.AddMetricPoints(ctx, p); err != nil {
			return fmt.Errorf("failed to save metric point %s: %w", p.Date.Format("2006-01-02"), err)
		}
		step()
	}
	if err := store.ReplaceRecommendations(ctx, dataset.Recommendations); err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}
	for range dataset.Recommendations {
		step()
	}
	return nil
}
