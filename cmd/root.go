package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// baseURL is populated from the persistent --url flag.
var baseURL string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "mmdata",
	Aliases: []string{"mm"},
	Short:   "A command-line client for MetaMask wallet data",
	Long: `mmdata talks to a local MetaMask wallet-data server and lets you
inspect or archive the wallet document it serves.

Features:
  • Fetch the wallet document (address, balances, transactions)
  • Raw JSON output for piping into other tools
  • Timestamped JSON snapshots on disk
  • Configurable server address

Examples:
  mmdata fetch                        # Show wallet summary
  mmdata fetch --json                 # Dump the raw wallet document
  mmdata export                       # Save a timestamped snapshot
  mmdata export --output wallet.json  # Save to a specific file
  mmdata --url http://localhost:8080 fetch`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:3000", "wallet-data server address")

	// Add subcommands
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mmdata v%s\n", version)
	},
}
