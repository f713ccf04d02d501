// Copyright Skyarchive Labs, 2026. All rights reserved.

package gator

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// outputFormatVOTable is the outfmt code for a VOTable response.
const outputFormatVOTable = "3"

// Payload is the flat key/value request payload sent to the service.
type Payload map[string]string

// Values converts the payload to url.Values for the wire.
func (p Payload) Values() url.Values {
	v := url.Values{}
	for k, val := range p {
		v.Set(k, val)
	}
	return v
}

// Keys returns the payload keys in sorted order.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the payload as sorted key=value lines for display.
func (p Payload) String() string {
	var b strings.Builder
	for _, k := range p.Keys() {
		fmt.Fprintf(&b, "%s=%s\n", k, p[k])
	}
	return b.String()
}

// assemblePayload sets the parameters common to every search: the
// catalog name, the fixed VOTable output format, and the row cap.
func (c *Client) assemblePayload(catalog string) (Payload, error) {
	if catalog == "" {
		return nil, ErrMissingCatalog
	}
	return Payload{
		"catalog": catalog,
		"outfmt":  outputFormatVOTable,
		"outrows": fmt.Sprintf("%d", c.cfg.RowLimit),
	}, nil
}

// BuildPayload assembles the full request payload for opts without
// performing any network call.
func (c *Client) BuildPayload(opts QueryOptions) (Payload, error) {
	payload, err := c.assemblePayload(opts.Catalog)
	if err != nil {
		return nil, err
	}
	spatial, err := c.resolveSpatial(opts)
	if err != nil {
		return nil, err
	}
	for k, v := range spatial {
		payload[k] = v
	}
	return payload, nil
}
