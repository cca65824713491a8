package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cardcrawler",
	Short: "cardcrawler exports RinggitPlus cashback credit cards to a spreadsheet.",
	// running without a subcommand is a plain scrape
	RunE:          runScrape,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configDir *string

func init() {
	configDir = rootCmd.PersistentFlags().String("config", "configs", "Directory holding app.yaml and scraping.yaml.")
	registerScrapeFlags(rootCmd)
}

func ExecuteContext(ctx context.Context) {
	if err := execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports a failure on the command's writers: a
// listing that could not be fetched goes to stdout, anything else to stderr.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var fetchErr *listingFetchError
	if errors.As(err, &fetchErr) {
		fmt.Fprintln(cmd.OutOrStdout(), fetchErr)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return err
}
