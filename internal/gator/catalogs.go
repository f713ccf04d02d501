// Copyright Skyarchive Labs, 2026. All rights reserved.

package gator

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"sort"
)

// Catalog directory XML structures: a flat list of <catalog> elements,
// each with <catname> and <desc> children.
type catalogIndex struct {
	Catalogs []catalogEntry `xml:"catalog"`
}

type catalogEntry struct {
	Name string `xml:"catname"`
	Desc string `xml:"desc"`
}

// ListCatalogs fetches the service's catalog directory and returns a
// catalog name to description mapping. The directory is fetched fresh
// on every call.
func (c *Client) ListCatalogs(ctx context.Context) (map[string]string, error) {
	params := url.Values{"mode": {"xml"}}
	body, err := c.get(ctx, c.cfg.ListURL, params.Encode())
	if err != nil {
		return nil, err
	}

	var index catalogIndex
	if err := xml.Unmarshal(body, &index); err != nil {
		return nil, fmt.Errorf("decoding catalog list: %w", err)
	}

	catalogs := make(map[string]string, len(index.Catalogs))
	for _, entry := range index.Catalogs {
		catalogs[entry.Name] = entry.Desc
	}
	return catalogs, nil
}

// FormatCatalogs writes the catalog mapping as aligned rows, sorted by
// catalog name.
func FormatCatalogs(catalogs map[string]string, w io.Writer) {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "%-30s  %s\n", name, catalogs[name])
	}
}
