package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/legislation-tracker/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dataDir    string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"

	cfg = &internal.Config{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "legislation-tracker",
	Short: "Query and summarize AI legislation records",
	Long: `Read-only tools over a directory of JSON files describing AI-related
legislation: US federal actions, US state bills and international frameworks.

Each file holds a JSON array of records. All files are merged for queries and
kept apart by file name for the dashboard.

Quick Start:
  legislation-tracker query --tag employment      # Records tagged employment
  legislation-tracker query --status enacted -j CA  # Enacted California bills
  legislation-tracker query --list-tags           # Tag frequencies
  legislation-tracker dashboard dashboard.md      # Write the markdown dashboard

The data directory comes from --data, $` + internal.EnvDataDir + `, data_dir in the
config file, or the data directory beside the installation.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		loaded, err := internal.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveDataDir returns the data directory for this invocation
func resolveDataDir() (string, error) {
	dir, err := internal.ResolveDataDir(dataDir, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	internal.LogDebug("Using data directory %s", dir)
	return dir, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Directory holding the legislation JSON files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default ./"+internal.DefaultConfigFile+" if present)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
