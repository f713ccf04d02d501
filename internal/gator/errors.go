// Copyright Skyarchive Labs, 2026. All rights reserved.

package gator

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the client. Service-side failures are
// detected by classifyResponse, argument problems by the payload
// builders.
var (
	// ErrInvalidSpatial reports an unrecognized spatial query type.
	ErrInvalidSpatial = errors.New("unrecognized spatial query type: must be one of 'Cone', 'Box', 'Polygon', or 'All-Sky'")

	// ErrMissingCatalog reports a query without a catalog name.
	ErrMissingCatalog = errors.New("catalog name is required")

	// ErrCatalogNotFound reports a catalog the service does not know.
	ErrCatalogNotFound = errors.New("catalog is not on the list of available catalogs")

	// ErrBadObjectName reports a coordinate or object name the service
	// could not resolve.
	ErrBadObjectName = errors.New("wrong or missing coordinate/object name")

	// ErrEmptyResponse reports a zero-length response body.
	ErrEmptyResponse = errors.New("service sent back an empty reply")
)

// Error phrases the service embeds in otherwise well-formed response
// bodies. Centralized here so the substring matching stays in one place.
const (
	phraseCatalogNotFound = "The catalog is not on the list"
	phraseBadObjectName   = "Either wrong or missing coordinate/object name"
)

// classifyResponse inspects a response body for the service's embedded
// error phrases. A nil return means the body may be parsed as a table.
func classifyResponse(body []byte) error {
	if len(body) == 0 {
		return ErrEmptyResponse
	}
	s := string(body)
	if strings.Contains(s, phraseCatalogNotFound) {
		return ErrCatalogNotFound
	}
	if strings.Contains(s, phraseBadObjectName) {
		return ErrBadObjectName
	}
	return nil
}
