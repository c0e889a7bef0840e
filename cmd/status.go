package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show account status and request quota",
	Long: `Show the account, subscription and daily request quota behind the
configured API key. This also serves as a connection test.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	status, err := client.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Account:      %s %s <%s>\n",
		status.Account.Firstname, status.Account.Lastname, status.Account.Email)
	fmt.Printf("Plan:         %s (active: %t)\n",
		status.Subscription.Plan, status.Subscription.Active)
	if status.Subscription.End != "" {
		fmt.Printf("Renews:       %s\n", status.Subscription.End)
	}
	fmt.Printf("Requests:     %d / %d today\n",
		status.Requests.Current, status.Requests.LimitDay)

	return nil
}
