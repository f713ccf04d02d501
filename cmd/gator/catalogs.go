// Copyright Skyarchive Labs, 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyarchive/gator/internal/gator"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List the catalogs available from the Gator service",
	Long: `Catalogs fetches the service's catalog directory and prints each
catalog name with its description. The directory is fetched fresh on
every invocation.`,
	RunE: runCatalogs,
}

func init() {
	catalogsCmd.Flags().Bool("json", false, "output the catalog list as JSON")
	catalogsCmd.Flags().Bool("yaml", false, "output the catalog list as YAML")

	rootCmd.AddCommand(catalogsCmd)
}

func runCatalogs(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	client := gator.New(gatorConfig(cmd), newLogger(verbose))

	catalogs, err := client.ListCatalogs(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOutput:
		return gator.FormatCatalogsJSON(catalogs, os.Stdout)
	case yamlOutput:
		return gator.FormatCatalogsYAML(catalogs, os.Stdout)
	default:
		gator.FormatCatalogs(catalogs, os.Stdout)
		return nil
	}
}
