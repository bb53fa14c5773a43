package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/iksnae/legislation-tracker/internal"
	"github.com/iksnae/legislation-tracker/internal/export"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultFormat = "text"

var (
	queryTag          string
	queryStatus       string
	queryJurisdiction string
	querySearch       string
	queryListTags     bool
	queryCount        bool
	queryFormat       string
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter and search legislation records",
	Long: `Load every JSON file in the data directory and filter the merged records.

Filters combine and always apply in this order: tag, status, jurisdiction,
free-text search. Tag and status match exactly, ignoring case. Jurisdiction
matches a substring of the record's jurisdiction, state or issuing body.
Search matches a substring of the title, name, summary, key provisions and
tags.

Examples:
  legislation-tracker query --tag employment
  legislation-tracker query --status enacted
  legislation-tracker query --jurisdiction California
  legislation-tracker query --search "frontier"
  legislation-tracker query --list-tags`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := queryFormat
		if format == "" {
			format = cfg.Format
		}
		if format == "" {
			format = defaultFormat
		}
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		dir, err := resolveDataDir()
		if err != nil {
			return err
		}

		items, err := internal.LoadItems(dir)
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}

		out := cmd.OutOrStdout()
		// Machine-readable output keeps stdout free of progress lines
		progress := out
		if format != defaultFormat && format != "txt" {
			progress = cmd.ErrOrStderr()
		}

		if len(items) == 0 {
			internal.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("No records found in %s", dir))
		}
		_, _ = fmt.Fprintf(progress, "Loaded %d items from %s\n\n", len(items), dir)

		if queryListTags {
			return writeTags(out, format, internal.ListTags(items))
		}

		q := internal.Query{
			Tag:          queryTag,
			Status:       queryStatus,
			Jurisdiction: queryJurisdiction,
			Search:       querySearch,
		}
		results := q.Apply(items, func(label, value string, count int) {
			_, _ = fmt.Fprintf(progress, "%s '%s': %d results\n", label, value, count)
		})

		if queryCount {
			_, _ = fmt.Fprintf(out, "\nTotal matching items: %d\n", len(results))
			return nil
		}

		if err := exporter.Export(results, out); err != nil {
			return &internal.ExportError{Format: format, Path: "stdout", Err: err}
		}

		if _, ok := exporter.(*export.TextExporter); ok {
			_, _ = fmt.Fprintf(out, "\n%s\nTotal: %d items\n", export.Rule, len(results))
		}
		return nil
	},
}

// writeTags prints tag counts in the requested format
func writeTags(w io.Writer, format string, tags []internal.TagCount) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tags)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, tc := range tags {
			if err := enc.Encode(tc); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(tags)
	default:
		_, _ = fmt.Fprintf(w, "Available tags:\n\n")
		for _, tc := range tags {
			_, _ = fmt.Fprintf(w, "  %s: %d\n", tc.Tag, tc.Count)
		}
		return nil
	}
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryTag, "tag", "t", "", "Filter by tag")
	queryCmd.Flags().StringVarP(&queryStatus, "status", "s", "", "Filter by status (enacted, pending, vetoed, active)")
	queryCmd.Flags().StringVarP(&queryJurisdiction, "jurisdiction", "j", "", "Filter by jurisdiction/state")
	queryCmd.Flags().StringVarP(&querySearch, "search", "q", "", "Full-text search")
	queryCmd.Flags().BoolVar(&queryListTags, "list-tags", false, "List all tags with counts")
	queryCmd.Flags().BoolVar(&queryCount, "count", false, "Show only count, not details")
	queryCmd.Flags().StringVarP(&queryFormat, "format", "f", "", "Output format: text, md, json, jsonl, yaml")
}
