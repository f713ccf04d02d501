// Copyright Skyarchive Labs, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyarchive/gator/internal/archive"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect locally archived query results",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived query runs",
	RunE:  runArchiveList,
}

func init() {
	archiveListCmd.Flags().String("db", "", "archive database path (required)")
	archiveListCmd.Flags().Bool("json", false, "output runs as JSON")

	archiveCmd.AddCommand(archiveListCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		return fmt.Errorf("archive database path required: pass --db")
	}

	store, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-20s  %-8s  %-20s  %s\n", "ID", "Catalog", "Spatial", "Fetched", "Rows")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-5d  %-20s  %-8s  %-20s  %d\n",
			r.ID, r.Catalog, r.Spatial, r.FetchedAt.Format("2006-01-02 15:04:05"), r.RowCount)
	}
	return nil
}
