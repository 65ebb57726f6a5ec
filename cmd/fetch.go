package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/ycindex/internal/utils"
	"github.com/sw33tLie/ycindex/pkg/company"
	"github.com/sw33tLie/ycindex/pkg/platforms/yc"
	"github.com/sw33tLie/ycindex/pkg/polling"
)

// fetchCmd implements: ycindex fetch
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the YC company directory into a dataset file",
	Long: `Walks every page of the YC company directory, normalizes each company,
orders them by batch recency then name and writes the dataset file.

A network failure stops paging; companies fetched before it are still written.
An interrupt stops paging and leaves the existing dataset file untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxPages, _ := cmd.Flags().GetInt("max-pages")

		utils.Log.Info("Starting YC company data fetch...")
		_, err := fetchDataset(cmd.Context(), polling.Config{
			Source:   yc.NewSource(viper.GetString("api.url"), nil),
			MaxPages: maxPages,
			Delay:    viper.GetDuration("fetch.delay"),
			Log:      utils.Log,
		}, viper.GetString("fetch.out"))
		return err
	},
}

// fetchDataset walks the directory and writes the normalized dataset to out.
// A nil dataset with a nil error means nothing was collected and no file was
// written. A cancelled walk returns the context error and writes nothing.
func fetchDataset(ctx context.Context, cfg polling.Config, out string) (*company.Dataset, error) {
	res := polling.FetchAll(ctx, cfg)
	utils.Log.Infof("Total companies collected: %d", len(res.Companies))

	if res.Err != nil && (errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded)) {
		utils.Log.Warnf("Fetch interrupted after %d pages, %s left unchanged", res.Pages, out)
		return nil, res.Err
	}

	if len(res.Companies) == 0 {
		utils.Log.Info("No companies found. Exiting.")
		return nil, nil
	}

	utils.Log.Info("Processing companies...")
	dataset := company.NewDataset(company.Build(res.Companies), time.Now())

	utils.Log.Infof("Writing JSON to %s...", out)
	if err := dataset.Write(out); err != nil {
		return nil, err
	}
	utils.Log.Infof("Successfully wrote %d companies to %s", dataset.Count, out)
	return dataset, nil
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringP("out", "o", company.DefaultDatasetPath, "Output JSON file path")
	fetchCmd.Flags().Int("max-pages", 0, "Maximum number of pages to fetch (0 = unlimited)")
	fetchCmd.Flags().Duration("delay", polling.DefaultDelay, "Pause between page requests")
	viper.BindPFlag("fetch.out", fetchCmd.Flags().Lookup("out"))
	viper.BindPFlag("fetch.delay", fetchCmd.Flags().Lookup("delay"))
}
