package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"metamask-client/api"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save wallet data to a JSON file",
	Long: `Fetch the wallet document and save it to disk as indented JSON.

Without --output the file is named from the current time, e.g.
metamask_data_20260823_142530.json. An existing file of the same
name is overwritten.

Examples:
  mmdata export                       # Save a timestamped snapshot
  mmdata export --output wallet.json  # Save to a specific file`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var outputFlag string

func init() {
	exportCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Filename to write (default: timestamped)")
}

func runExport(cmd *cobra.Command, args []string) error {
	client := api.NewClient(baseURL)

	fmt.Println("📊 Exporting wallet data...")
	bar := progressbar.NewOptions(100,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Fetching wallet data..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)

	bar.Set(0)
	data, err := client.FetchWalletData()
	if err != nil {
		fmt.Println()
		return err
	}

	bar.Set(60)
	bar.Describe("[cyan][2/2][reset] Writing snapshot...")
	filename, err := api.SaveWalletData(data, outputFlag)
	if err != nil {
		fmt.Println()
		return err
	}

	bar.Set(100)
	bar.Describe("[green][✓][reset] Export completed!")
	fmt.Println()

	fmt.Println("📁 Export completed successfully!")
	fmt.Printf("📍 File saved to: %s\n", filename)
	fmt.Println()
	fmt.Println("📊 Export Summary:")
	fmt.Printf("   Address: %s\n", data.Address())
	fmt.Printf("   Transactions: %d\n", len(data.Transactions()))

	return nil
}
