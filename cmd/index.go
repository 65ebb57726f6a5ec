package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/ycindex/internal/utils"
	"github.com/sw33tLie/ycindex/pkg/company"
	"github.com/sw33tLie/ycindex/pkg/index"
)

// indexCmd implements: ycindex index
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build slug and id lookup tables from a dataset file",
	Long: `Reads a dataset file written by 'ycindex fetch' and writes yc_index.json,
mapping every slug and id to its position in the dataset.

Fails without writing anything if a slug or id is claimed by more than one company.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := viper.GetString("index.in")
		outDir := viper.GetString("index.outdir")

		_, err := buildIndexFile(in, outDir, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().String("in", company.DefaultDatasetPath, "Input dataset JSON file path")
	indexCmd.Flags().String("out-dir", "data/", "Output directory for the index file")
	viper.BindPFlag("index.in", indexCmd.Flags().Lookup("in"))
	viper.BindPFlag("index.outdir", indexCmd.Flags().Lookup("out-dir"))
}

// buildIndexFile loads the dataset at in, validates and writes its index to
// outDir and prints a summary to w. Nothing is written on error.
func buildIndexFile(in, outDir string, w io.Writer) (*index.Index, error) {
	utils.Log.Infof("Loading companies from %s...", in)
	dataset, err := company.LoadDataset(in)
	if err != nil {
		return nil, err
	}
	if dataset.Count != len(dataset.Companies) {
		utils.Log.Warnf("Dataset count field says %d but it holds %d companies", dataset.Count, len(dataset.Companies))
	}
	utils.Log.Infof("Loaded %d companies", len(dataset.Companies))

	utils.Log.Info("Building index...")
	ix, err := index.Build(dataset.Companies)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(outDir, index.FileName)
	utils.Log.Infof("Writing index to %s...", outPath)
	if err := ix.Write(outPath); err != nil {
		return nil, err
	}

	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Companies count: %d\n", len(dataset.Companies))
	fmt.Fprintf(w, "  Unique slugs: %d\n", len(ix.BySlug))
	fmt.Fprintf(w, "  Unique ids: %d\n", len(ix.ByID))
	fmt.Fprintf(w, "  Output path: %s\n", outPath)
	fmt.Fprintln(w, rule)

	return ix, nil
}
