package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/analytics"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

var (
	statsJSON     bool
	statsCategory string
	statsPriority string
	statsStatus   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute and print dashboard metrics for the stored snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := analytics.ValidateRiskConfig(cfg.Analytics.Risk); err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		snapshot, err := st.ListComplaints(ctx)
		if err != nil {
			return err
		}

		eng := analytics.New(cfg.Analytics)
		bundle := eng.Compute(snapshot, model.Criteria{
			Category: statsCategory,
			Priority: statsPriority,
			Status:   statsStatus,
		})

		if statsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(bundle)
		}

		printBundle(os.Stdout, bundle)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print the bundle as JSON")
	statsCmd.Flags().StringVar(&statsCategory, "category", "", "filter by category")
	statsCmd.Flags().StringVar(&statsPriority, "priority", "", "filter by priority")
	statsCmd.Flags().StringVar(&statsStatus, "status", "", "filter by status")
	rootCmd.AddCommand(statsCmd)
}

func printBundle(w io.Writer, b model.Bundle) {
	fmt.Fprintf(w, "Total: %d  Pending: %d  In Progress: %d  Resolved: %d  Resolution rate: %d%%\n\n",
		b.Total, b.Pending, b.InProgress, b.Resolved, b.ResolutionRate)

	printDistribution(w, "Status", b.StatusDistribution)
	printDistribution(w, "Priority", b.PriorityDistribution)
	printDistribution(w, "Category", b.CategoryDistribution)

	if len(b.TopAreas) > 0 {
		fmt.Fprintln(w, "Top areas:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "AREA\tTOTAL\tHIGH\tRISK")
		for _, a := range b.TopAreas {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n",
				a.DisplayLabel, a.TotalCount, a.HighPriorityCount, a.RiskTier)
		}
		tw.Flush() //nolint:errcheck
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Map markers: %d\n", len(b.Markers))
}

func printDistribution(w io.Writer, name string, entries []model.DistributionEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", name)
	for _, e := range entries {
		fmt.Fprintf(w, "  %-20s %d\n", e.Label, e.Count)
	}
	fmt.Fprintln(w)
}
