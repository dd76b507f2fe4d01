package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.2"
)

var rootCmd = &cobra.Command{
	Use:   "crmseed",
	Short: "Synthetic CRM data generator",
	Long: `crmseed fills a CRM database with synthetic but referentially valid data
across a fixed eight-table schema (companies, contacts, deals, products,
deal_products, activities, notes, tasks).

Dependencies between tables are resolved automatically: asking for deals
also generates the companies and contacts they reference, unless --no-deps
tells crmseed to reuse rows already in the database.

Two output modes are available:
  generate  insert rows directly into the configured database
  script    emit the equivalent SQL INSERT statements instead`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("crmseed version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./crmseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("crmseed.config")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
