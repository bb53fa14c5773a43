package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/iksnae/legislation-tracker/internal"
	"github.com/iksnae/legislation-tracker/internal/dashboard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dashboardAsOf  string
	dashboardStats bool
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard [output.md]",
	Short: "Generate the markdown legislation dashboard",
	Long: `Summarize the data directory as a markdown dashboard: category counts,
federal, state and international tables, the most frequent tags and the next
upcoming effective dates.

Reads us_federal_actions.json, us_state_bills.json and
international_frameworks.json; tags are counted across every file. The
dashboard goes to the given file, or to stdout when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if dashboardAsOf != "" {
			parsed, err := time.Parse(dashboard.DateLayout, dashboardAsOf)
			if err != nil {
				return fmt.Errorf("invalid --as-of date (expected YYYY-MM-DD): %w", err)
			}
			now = parsed
		}

		dir, err := resolveDataDir()
		if err != nil {
			return err
		}

		ds, err := internal.LoadDataset(dir)
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
		if ds.Len() == 0 {
			return fmt.Errorf("%w in %s", internal.ErrNoData, dir)
		}
		internal.LogInfo("Loaded %d data file(s) from %s", ds.Len(), dir)

		stats := dashboard.ComputeStats(ds)
		out := cmd.OutOrStdout()

		if dashboardStats {
			enc := yaml.NewEncoder(out)
			defer func() { _ = enc.Close() }()
			return enc.Encode(stats)
		}

		doc := dashboard.NewGenerator(now).Generate(ds, stats)

		outputPath := cfg.DashboardOutput
		if len(args) > 0 {
			outputPath = args[0]
		}
		if outputPath == "" {
			_, _ = fmt.Fprintln(out, doc)
			return nil
		}

		if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
			return &internal.ExportError{Format: "md", Path: outputPath, Err: err}
		}
		internal.PrintSuccess(out, fmt.Sprintf("Dashboard written to %s", outputPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardAsOf, "as-of", "", "Date treated as today (YYYY-MM-DD)")
	dashboardCmd.Flags().BoolVar(&dashboardStats, "stats", false, "Print the summary statistics as YAML instead of the dashboard")
}
