package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/legislation-tracker/internal"
	"github.com/iksnae/legislation-tracker/internal/dashboard"
	"github.com/spf13/cobra"
)

var (
	healthcheckVerbose bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that the legislation data can be located and parsed",
	Long: `Check the health of the data directory by verifying:
  • Data directory resolution
  • Data file discovery
  • That every file parses as an array of records
  • That the dashboard categories are present

Fails when the directory is missing or a file cannot be parsed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(w, sectionStyle.Render("🔍 Legislation Data Health Check"))
		_, _ = fmt.Fprintln(w)

		// Step 1: Resolve data directory
		_, _ = fmt.Fprintln(w, infoStyle.Render("Step 1: Resolving data directory..."))
		dir, err := resolveDataDir()
		if err != nil {
			_, _ = fmt.Fprintln(w, errorStyle.Render("❌ Failed to resolve data directory:"), err)
			return err
		}
		_, _ = fmt.Fprintln(w, successStyle.Render("✅ Data directory resolved"))
		if healthcheckVerbose {
			_, _ = fmt.Fprintf(w, "   Directory: %s\n", dir)
			if cfg.Path() != "" {
				_, _ = fmt.Fprintf(w, "   Config: %s\n", cfg.Path())
			}
		}
		_, _ = fmt.Fprintln(w)

		// Step 2: Discover data files
		_, _ = fmt.Fprintln(w, infoStyle.Render("Step 2: Discovering data files..."))
		files, err := internal.ListDataFiles(dir)
		if err != nil {
			_, _ = fmt.Fprintln(w, errorStyle.Render("❌ Data directory not usable:"), err)
			return err
		}
		if len(files) == 0 {
			_, _ = fmt.Fprintln(w, warningStyle.Render("⚠️  No JSON files found"))
		} else {
			_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✅ Found %d data file(s)", len(files))))
		}
		_, _ = fmt.Fprintln(w)

		// Step 3: Parse files
		_, _ = fmt.Fprintln(w, infoStyle.Render("Step 3: Parsing data files..."))
		found := make(map[string]bool)
		total, untitled := 0, 0
		var parseErr error
		for _, path := range files {
			items, err := internal.LoadFile(path)
			if err != nil {
				_, _ = fmt.Fprintln(w, errorStyle.Render("❌ "+filepath.Base(path)+":"), err)
				if parseErr == nil {
					parseErr = err
				}
				continue
			}
			found[internal.FileStem(path)] = true
			total += len(items)
			for _, item := range items {
				if item.DisplayTitle == "" {
					untitled++
				}
			}
			if healthcheckVerbose {
				_, _ = fmt.Fprintf(w, "   %s: %d record(s)\n", filepath.Base(path), len(items))
			}
		}
		if parseErr != nil {
			return fmt.Errorf("data files failed to parse: %w", parseErr)
		}
		_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✅ Parsed %d record(s)", total)))
		if untitled > 0 {
			_, _ = fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("⚠️  %d record(s) have neither title nor name", untitled)))
		}
		_, _ = fmt.Fprintln(w)

		// Step 4: Dashboard categories
		_, _ = fmt.Fprintln(w, infoStyle.Render("Step 4: Checking dashboard categories..."))
		printCategoryStatus(w, found)
		_, _ = fmt.Fprintln(w)

		_, _ = fmt.Fprintln(w, successStyle.Render("✅ Health check passed"))
		return nil
	},
}

func printCategoryStatus(w io.Writer, found map[string]bool) {
	for _, name := range []string{dashboard.FederalActions, dashboard.StateBills, dashboard.InternationalFrameworks} {
		if found[name] {
			_, _ = fmt.Fprintln(w, successStyle.Render("✅ "+name+".json present"))
		} else {
			_, _ = fmt.Fprintln(w, warningStyle.Render("⚠️  "+name+".json missing (counted as empty)"))
		}
	}
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckVerbose, "verbose", "v", false, "Show detailed information")
}
