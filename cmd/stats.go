package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/ycindex/pkg/company"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints statistics about the companies in a dataset file.",
	Long:  "Prints the number of companies per batch (most recent first) and per status.",
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetPath, _ := cmd.Flags().GetString("in")
		if datasetPath == "" {
			datasetPath = viper.GetString("index.in")
		}

		dataset, err := company.LoadDataset(datasetPath)
		if err != nil {
			return err
		}

		if len(dataset.Companies) == 0 {
			fmt.Println("No companies in the dataset to generate stats.")
			return nil
		}

		stats := company.ComputeStats(dataset.Companies)
		fmt.Printf("Dataset version: %s\n\n", dataset.Version)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "BATCH\tCOMPANIES\t")
		for _, c := range stats.ByBatch {
			fmt.Fprintf(w, "%s\t%d\t\n", c.Key, c.Companies)
		}
		fmt.Fprintln(w, " \t \t")
		fmt.Fprintln(w, "STATUS\tCOMPANIES\t")
		for _, c := range stats.ByStatus {
			fmt.Fprintf(w, "%s\t%d\t\n", c.Key, c.Companies)
		}
		fmt.Fprintln(w, " \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t\n", stats.Total)

		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().String("in", "", "Dataset JSON file (default: index.in from config)")
}
