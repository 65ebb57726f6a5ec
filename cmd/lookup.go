package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/ycindex/pkg/company"
	"github.com/sw33tLie/ycindex/pkg/index"
)

// lookupCmd implements: ycindex lookup
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find a company by slug or id through the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		slug, _ := cmd.Flags().GetString("slug")
		id, _ := cmd.Flags().GetString("id")
		outputFlags, _ := cmd.Flags().GetString("output")
		delimiter, _ := cmd.Flags().GetString("delimiter")

		if (slug == "") == (id == "") {
			return errors.New("provide exactly one of --slug or --id")
		}

		datasetPath, _ := cmd.Flags().GetString("in")
		if datasetPath == "" {
			datasetPath = viper.GetString("index.in")
		}
		indexPath, _ := cmd.Flags().GetString("index")
		if indexPath == "" {
			indexPath = filepath.Join(viper.GetString("index.outdir"), index.FileName)
		}

		dataset, err := company.LoadDataset(datasetPath)
		if err != nil {
			return err
		}
		ix, err := index.Load(indexPath)
		if err != nil {
			return err
		}

		var c company.Company
		if slug != "" {
			c, err = ix.LookupSlug(dataset, slug)
		} else {
			c, err = ix.LookupID(dataset, id)
		}
		if err != nil {
			return err
		}

		line, err := company.FormatCompany(c, outputFlags, delimiter)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().String("slug", "", "Company slug")
	lookupCmd.Flags().String("id", "", "Company id")
	lookupCmd.Flags().String("in", "", "Dataset JSON file (default: index.in from config)")
	lookupCmd.Flags().String("index", "", "Index JSON file (default: <index.outdir>/yc_index.json)")
	lookupCmd.Flags().StringP("output", "o", "isnbto", "Output flags. Supported: i (id), s (slug), n (name), b (batch), x (batch index), t (status), p (primary industry), o (one-liner), l (logo URL). Example: -o snb")
	lookupCmd.Flags().StringP("delimiter", "d", " | ", "Delimiter between output fields")
}
