// Copyright Skyarchive Labs, 2026. All rights reserved.

package gator

import (
	"github.com/skyarchive/gator/internal/votable"
)

// parseResult converts a raw response body into a Result. Service error
// phrases and empty bodies fail; a body that is well-formed enough to
// reach the VOTable parser but fails there degrades to the raw body.
func (c *Client) parseResult(body []byte) (*Result, error) {
	if err := classifyResponse(body); err != nil {
		return nil, err
	}

	doc, err := votable.Parse(body)
	if err != nil {
		c.logger.Warn("failed to parse VOTable, returning raw response", "err", err)
		return &Result{Raw: body}, nil
	}

	if c.cfg.Verbose {
		for _, w := range doc.Warnings {
			c.logger.Warn("VOTable conformance", "detail", w)
		}
	}

	if doc.Table.NumRows() == 0 {
		c.logger.Warn("query returned no results, the table is empty")
	}

	return &Result{Table: doc.Table}, nil
}
