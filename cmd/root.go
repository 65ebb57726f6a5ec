package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/sw33tLie/ycindex/internal/utils"
	"github.com/sw33tLie/ycindex/pkg/company"
	"github.com/sw33tLie/ycindex/pkg/platforms/yc"
	"github.com/sw33tLie/ycindex/pkg/polling"
	"github.com/sw33tLie/ycindex/pkg/whttp"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ycindex",
	Short: "Harvest the YC company directory and build lookup indices over it.",
	Long: `ycindex downloads the YC company directory into a canonical JSON dataset
and builds slug and id lookup tables over it for static sites and search widgets.

Rebuild the index right after every dataset rebuild: index positions only
match the dataset they were built from.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ycindex.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	viper.SetDefault("api.url", yc.YC_COMPANIES_ENDPOINT)
	viper.SetDefault("fetch.delay", polling.DefaultDelay.String())
	viper.SetDefault("fetch.out", company.DefaultDatasetPath)
	viper.SetDefault("index.in", company.DefaultDatasetPath)
	viper.SetDefault("index.outdir", "data/")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".ycindex")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ycindex")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.ycindex.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				utils.Log.Debugf("Could not create config file: %s", err)
			}
		} else {
			utils.Log.Warnf("Could not read config file: %s", err)
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)

	proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
	if proxy != "" {
		if err := whttp.SetupProxy(proxy); err != nil {
			utils.Log.Fatal(err)
		}
	}
}
