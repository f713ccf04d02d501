// Copyright Skyarchive Labs, 2026. All rights reserved.

// Package gator is a client for the IRSA Gator catalog search service.
// It translates spatial search criteria into the service's query-string
// dialect, issues the HTTP GET, and parses the VOTable response into a
// typed table.
//
// The service accepts cone, box, polygon, and all-sky searches against
// named catalogs, and publishes its catalog directory as a flat XML
// list. See
// https://irsa.ipac.caltech.edu/applications/Gator/GatorAid/irsa/catsearch.html
// for the upstream parameter reference.
package gator

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/skyarchive/gator/internal/coords"
	"github.com/skyarchive/gator/internal/httputil"
	"github.com/skyarchive/gator/pkg/types"
)

// Client issues catalog queries against a configured Gator service.
// The zero value is not usable; construct with New.
type Client struct {
	cfg    types.GatorConfig
	http   *http.Client
	logger *log.Logger
}

// New returns a client for the endpoints in cfg. Zero-valued config
// fields fall back to the defaults in types.DefaultGatorConfig. A nil
// logger discards all warnings.
func New(cfg types.GatorConfig, logger *log.Logger) *Client {
	def := types.DefaultGatorConfig()
	if cfg.ServerURL == "" {
		cfg.ServerURL = def.ServerURL
	}
	if cfg.ListURL == "" {
		cfg.ListURL = def.ListURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RowLimit <= 0 {
		cfg.RowLimit = def.RowLimit
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// QueryOptions holds the search parameters for one catalog query.
type QueryOptions struct {
	// Catalog is the catalog name in the service's database management
	// system (e.g. "fp_psc"). Required.
	Catalog string

	// Spatial selects the search geometry. Empty means Cone.
	Spatial Spatial

	// Coordinates is the search center: either a coordinate pair string
	// or an object name resolved server-side (SIMBAD/NED). Required for
	// Cone and Box, optional for Polygon.
	Coordinates string

	// Radius is the cone search radius. Zero value means 10 arcsec.
	Radius coords.Angle

	// Width is the box width. Required for Box.
	Width coords.Angle

	// Polygon lists the vertices of a convex polygon search region in
	// decimal degrees.
	Polygon []coords.Point

	// PolygonStrings lists vertices as coordinate pair strings; used
	// when Polygon is empty. A vertex that fails coordinate parsing is
	// leniently read as a bare decimal-degree pair.
	PolygonStrings []string
}

// Result is the outcome of a catalog query. Table is the parsed
// response; when the body could not be parsed as a VOTable, Table is
// nil and Raw holds the body verbatim.
type Result struct {
	Table *types.Table
	Raw   []byte
}

// QueryRegion performs a catalog search and parses the response into a
// typed table. All service and argument errors surface synchronously;
// the only degraded path is an unparseable table body, which is
// returned in Result.Raw with a logged warning.
func (c *Client) QueryRegion(ctx context.Context, opts QueryOptions) (*Result, error) {
	payload, err := c.BuildPayload(opts)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, c.cfg.ServerURL, payload.Values().Encode())
	if err != nil {
		return nil, err
	}
	return c.parseResult(body)
}

// get issues an HTTP GET with the encoded query string and returns the
// response body.
func (c *Client) get(ctx context.Context, baseURL, query string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0, c.logger)
	if err != nil {
		return nil, fmt.Errorf("catalog service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
