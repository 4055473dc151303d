package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/starrtours/pricingcal/config"
	"github.com/starrtours/pricingcal/infra/store"
)

var flagRunID string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List persisted calendar runs",
	RunE:  history,
}

func init() {
	historyCmd.Flags().StringVar(&flagRunID, "run", "", "show the band breakdown of one run")
	rootCmd.AddCommand(historyCmd)
}

func history(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer func() { _ = st.Close() }()

	if flagRunID != "" {
		return printBands(ctx, st, cmd)
	}

	runs, err := st.Runs(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tYEAR\tGENERATED\tROWS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", r.RunID, r.Year, r.GeneratedAt.Format("2006-01-02 15:04:05"), r.Rows)
	}
	return w.Flush()
}

func printBands(ctx context.Context, st *store.SQLiteStore, cmd *cobra.Command) error {
	counts, err := st.BandCounts(ctx, flagRunID)
	if err != nil {
		return err
	}
	bands := make([]string, 0, len(counts))
	for b := range counts {
		bands = append(bands, b)
	}
	sort.Strings(bands)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BAND\tDAYS")
	for _, b := range bands {
		fmt.Fprintf(w, "%s\t%d\n", b, counts[b])
	}
	return w.Flush()
}
