package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"metamask-client/api"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch wallet data from the server",
	Long: `Fetch the wallet document from the wallet-data server and show a
summary of the address, ether balance, and transaction count.

Examples:
  mmdata fetch                  # Show wallet summary
  mmdata fetch --json           # Dump the raw wallet document
  mmdata fetch --timeout 5s     # Give up after 5 seconds`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Bool("json", false, "Print the raw wallet document as JSON")
	fetchCmd.Flags().Duration("timeout", 0, "Overall deadline for the request")
}

func runFetch(cmd *cobra.Command, args []string) error {
	client := api.NewClient(baseURL)

	jsonFlag, _ := cmd.Flags().GetBool("json")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	data, err := fetchWithTimeout(client, timeout)
	if err != nil {
		return err
	}

	if jsonFlag {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render wallet data: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	displayWalletData(client, data)
	return nil
}

// fetchWithTimeout picks the fetch variant by whether a deadline was
// asked for. The deadline path accepts only an exact 200 reply.
func fetchWithTimeout(client *api.Client, timeout time.Duration) (api.WalletData, error) {
	if timeout <= 0 {
		return client.FetchWalletData()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := <-client.FetchWalletDataAsync(ctx)
	return result.Data, result.Err
}

func displayWalletData(client *api.Client, data api.WalletData) {
	fmt.Println("💰 Wallet Data")
	fmt.Printf("🌐 Server: %s\n", client.BaseURL())
	fmt.Println()

	if address := data.Address(); address != "" {
		fmt.Printf("📍 Address: %s\n", color.CyanString(address))
	} else {
		fmt.Printf("📍 Address: %s\n", color.RedString("not reported"))
	}

	balance, err := data.EtherBalance()
	if err != nil {
		fmt.Printf("🔷 Balance: %s\n", color.RedString("Error - %v", err))
	} else {
		fmt.Printf("🔷 Balance: %s ETH\n", color.GreenString(balance.String()))
	}

	fmt.Printf("📜 Transactions: %d\n", len(data.Transactions()))
}
