// Copyright Skyarchive Labs, 2026. All rights reserved.

// Package main is the entry point for the gator CLI, a client for the
// IRSA Gator catalog search service.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skyarchive/gator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the gator CLI.
var rootCmd = &cobra.Command{
	Use:   "gator",
	Short: "Query astronomical catalogs hosted by the IRSA Gator service",
	Long: `gator searches the catalogs hosted by the NASA/IPAC Infrared Science
Archive. It supports cone, box, polygon, and all-sky spatial searches,
lists the available catalogs, and can archive fetched result tables in
a local SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gator.yaml or ~/.config/gator/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "surface VOTable conformance warnings and debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gator"))
		}
	}

	viper.SetEnvPrefix("GATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// gatorConfig builds the client config from defaults, the config file,
// and flags, in increasing precedence.
func gatorConfig(cmd *cobra.Command) types.GatorConfig {
	cfg := types.DefaultGatorConfig()

	if v := viper.GetString("server_url"); v != "" {
		cfg.ServerURL = v
	}
	if v := viper.GetString("list_url"); v != "" {
		cfg.ListURL = v
	}
	if v := viper.GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetInt("row_limit"); v > 0 {
		cfg.RowLimit = v
	}
	if v := viper.GetString("user_agent"); v != "" {
		cfg.UserAgent = v
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	cfg.Verbose = verbose
	return cfg
}

// newLogger builds the CLI logger; verbose lowers the level to debug.
func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
