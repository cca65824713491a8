package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Elwinc2799/credit-card-crawler/internal/config"
	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
	"github.com/Elwinc2799/credit-card-crawler/internal/scraping/collectors/ringgitplus"
)

var (
	outputFile    string
	onDetailError string
	preview       bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--output <file.xlsx>] [--on-detail-error abort|skip|partial] [--preview]",
	Short: "Scrapes the cashback card listing and every card page into a spreadsheet.",
	RunE:  runScrape,
}

func init() {
	registerScrapeFlags(scrapeCmd)
	rootCmd.AddCommand(scrapeCmd)
}

func registerScrapeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&outputFile, "output", "", "Spreadsheet to write (default from app.output_file).")
	flags.StringVar(&onDetailError, "on-detail-error", "", "What to do when a card page fails: abort, skip or partial.")
	flags.BoolVar(&preview, "preview", false, "Print the exported records as a table.")
}

// applyFlags lets command line flags win over config files and env.
func applyFlags(cfg *config.Config) error {
	if outputFile != "" {
		cfg.App.OutputFile = outputFile
	}
	if onDetailError != "" {
		cfg.Scraping.RinggitPlus.OnDetailError = domain.DetailFailurePolicy(onDetailError)
	}
	return cfg.Validate()
}

// listingFetchError ends a run whose listing page did not answer 200.
// Its message is the console line users see; nothing gets exported.
type listingFetchError struct {
	code int
}

func (e *listingFetchError) Error() string {
	return fmt.Sprintf("Failed to fetch the page. Status Code: %d", e.code)
}

func runScrape(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.shutdown()

	result, err := a.scraper.ScrapeAndStore(cmd.Context())
	if err != nil {
		var statusErr *ringgitplus.StatusError
		if errors.As(err, &statusErr) && statusErr.URL == a.listingURL {
			return &listingFetchError{code: statusErr.Code}
		}
		return err
	}

	a.log.Infow("scrape finished", "cards", result.Cards, "skipped", result.Skipped, "records", len(result.Records))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Data has been exported to %s\n", a.repo.Path())

	if preview {
		printRecords(out, result.Records)
	}
	return nil
}

func printRecords(w io.Writer, records []domain.CardRecord) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Bank", "Card", "Min Income", "Category", "Rate", "Cap", "Spend", "Annual Fee"})
	for _, r := range records {
		t.AppendRow(table.Row{
			orDash(r.BankName), r.CardName, r.MinIncome,
			orDash(r.CashbackCategory), orDash(r.CashbackRate), orDash(r.MonthlyCap), orDash(r.Spend),
			orDash(r.AnnualFeeSimple),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d rows", len(records))})
	t.Render()
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
