// Copyright Skyarchive Labs, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyarchive/gator/internal/archive"
	"github.com/skyarchive/gator/internal/coords"
	"github.com/skyarchive/gator/internal/gator"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search a catalog with a cone, box, polygon, or all-sky query",
	Long: `Query searches one catalog hosted by the Gator service. The search
center may be a coordinate pair ("10.68 +41.27", "00 42 44.3 -41 16 08",
"00h42m44.3s -41d16m08s") or an object name resolved server-side ("M31").

Angles take an explicit unit: "5 arcsec", "2 arcmin", "0.5 deg".
Polygon vertices are comma-separated coordinate pairs.`,
	Example: `  gator query --catalog fp_psc --coords "10.68 +41.27" --radius "5 arcsec"
  gator query --catalog fp_psc --spatial Box --coords M31 --width "2 arcmin"
  gator query --catalog fp_psc --spatial Polygon --polygon "10.1 +10.1,10.0 +10.1,10.0 +10.0"
  gator query --catalog fp_psc --spatial All-Sky --dry-run`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("catalog", "", "catalog name (required)")
	queryCmd.Flags().String("spatial", "Cone", "spatial search type: Cone, Box, Polygon, or All-Sky")
	queryCmd.Flags().String("coords", "", "search center: coordinate pair or object name")
	queryCmd.Flags().String("radius", "", "cone search radius (default \"10 arcsec\")")
	queryCmd.Flags().String("width", "", "box width, e.g. \"2 arcmin\"")
	queryCmd.Flags().String("polygon", "", "comma-separated polygon vertices, each \"ra dec\"")
	queryCmd.Flags().Bool("dry-run", false, "print the request payload without contacting the service")
	queryCmd.Flags().Bool("json", false, "output the result table as JSON")
	queryCmd.Flags().Bool("yaml", false, "output the result table as YAML")
	queryCmd.Flags().String("store", "", "archive the fetched table in the SQLite database at this path")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)
	client := gator.New(gatorConfig(cmd), logger)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		payload, err := client.BuildPayload(opts)
		if err != nil {
			return err
		}
		fmt.Print(payload.String())
		return nil
	}

	result, err := client.QueryRegion(context.Background(), opts)
	if err != nil {
		return err
	}

	if result.Table == nil {
		// Unparseable table body: pass the raw response through.
		os.Stdout.Write(result.Raw)
		return nil
	}

	if storePath, _ := cmd.Flags().GetString("store"); storePath != "" {
		if err := archiveResult(storePath, client, opts, result); err != nil {
			return err
		}
		logger.Info("archived result table", "db", storePath, "rows", result.Table.NumRows())
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOutput:
		return gator.FormatJSON(result.Table, os.Stdout)
	case yamlOutput:
		return gator.FormatYAML(result.Table, os.Stdout)
	default:
		gator.FormatTable(result.Table, os.Stdout)
		return nil
	}
}

func queryOptsFromFlags(cmd *cobra.Command) (gator.QueryOptions, error) {
	catalog, _ := cmd.Flags().GetString("catalog")
	spatialStr, _ := cmd.Flags().GetString("spatial")
	coordinates, _ := cmd.Flags().GetString("coords")
	radiusStr, _ := cmd.Flags().GetString("radius")
	widthStr, _ := cmd.Flags().GetString("width")
	polygonStr, _ := cmd.Flags().GetString("polygon")

	spatial, err := gator.ParseSpatial(spatialStr)
	if err != nil {
		return gator.QueryOptions{}, err
	}

	opts := gator.QueryOptions{
		Catalog:     catalog,
		Spatial:     spatial,
		Coordinates: coordinates,
	}

	if radiusStr != "" {
		radius, err := coords.ParseAngle(radiusStr)
		if err != nil {
			return gator.QueryOptions{}, err
		}
		opts.Radius = radius
	}
	if widthStr != "" {
		width, err := coords.ParseAngle(widthStr)
		if err != nil {
			return gator.QueryOptions{}, err
		}
		opts.Width = width
	}
	if polygonStr != "" {
		for _, v := range strings.Split(polygonStr, ",") {
			opts.PolygonStrings = append(opts.PolygonStrings, strings.TrimSpace(v))
		}
	}

	return opts, nil
}

func archiveResult(path string, client *gator.Client, opts gator.QueryOptions, result *gator.Result) error {
	payload, err := client.BuildPayload(opts)
	if err != nil {
		return err
	}
	store, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Save(context.Background(), payload, result.Table)
	return err
}
