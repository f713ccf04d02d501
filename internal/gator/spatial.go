// Copyright Skyarchive Labs, 2026. All rights reserved.

package gator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skyarchive/gator/internal/coords"
)

// Spatial selects the search geometry.
type Spatial string

const (
	SpatialCone    Spatial = "Cone"
	SpatialBox     Spatial = "Box"
	SpatialPolygon Spatial = "Polygon"
	SpatialAllSky  Spatial = "All-Sky"
)

// allSkyToken is the wire encoding of an All-Sky search.
const allSkyToken = "NONE"

// DefaultRadius is the cone search radius used when none is given.
var DefaultRadius = coords.Angle{Value: 10, Unit: coords.Arcsec}

// ParseSpatial normalizes a spatial mode string. Matching is
// case-insensitive and accepts "allsky" for "All-Sky".
func ParseSpatial(s string) (Spatial, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cone", "":
		return SpatialCone, nil
	case "box":
		return SpatialBox, nil
	case "polygon":
		return SpatialPolygon, nil
	case "all-sky", "allsky":
		return SpatialAllSky, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrInvalidSpatial, s)
	}
}

// resolveSpatial produces the payload keys the given spatial mode
// requires: objstr/radius/radunits for Cone, objstr/size for Box,
// polygon (and optional objstr) for Polygon, and nothing beyond the
// spatial token for All-Sky.
func (c *Client) resolveSpatial(opts QueryOptions) (Payload, error) {
	p := Payload{}

	spatial := opts.Spatial
	if spatial == "" {
		spatial = SpatialCone
	}

	switch spatial {
	case SpatialAllSky:
		p["spatial"] = allSkyToken

	case SpatialCone:
		objstr, err := resolveObjstr(opts.Coordinates)
		if err != nil {
			return nil, err
		}
		p["objstr"] = objstr

		radius := opts.Radius
		if radius == (coords.Angle{}) {
			radius = DefaultRadius
		}
		if radius.Unit == "" {
			return nil, fmt.Errorf("cone radius needs an explicit unit")
		}
		// radunits accepts only arcsec, arcmin, and deg; any other
		// angular unit goes out converted to degrees.
		switch radius.Unit {
		case coords.Arcsec, coords.Arcmin, coords.Degree:
		default:
			radius = radius.Convert(coords.Degree)
		}
		p["radius"] = coords.FormatFloat(radius.Value)
		p["radunits"] = string(radius.Unit)
		p["spatial"] = string(SpatialCone)

	case SpatialBox:
		objstr, err := resolveObjstr(opts.Coordinates)
		if err != nil {
			return nil, err
		}
		p["objstr"] = objstr

		if opts.Width == (coords.Angle{}) {
			return nil, fmt.Errorf("box search requires a width")
		}
		if opts.Width.Unit == "" {
			return nil, fmt.Errorf("box width needs an explicit unit")
		}
		// The service wants box widths in arcseconds, whatever the input unit.
		p["size"] = coords.FormatFloat(opts.Width.Arcseconds())
		p["spatial"] = string(SpatialBox)

	case SpatialPolygon:
		if opts.Coordinates != "" {
			objstr, err := resolveObjstr(opts.Coordinates)
			if err != nil {
				return nil, err
			}
			p["objstr"] = objstr
		}
		polygon, err := c.resolvePolygon(opts)
		if err != nil {
			return nil, err
		}
		p["polygon"] = polygon
		p["spatial"] = string(SpatialPolygon)

	default:
		return nil, fmt.Errorf("%w (got %q)", ErrInvalidSpatial, string(spatial))
	}

	return p, nil
}

// resolveObjstr turns the coordinates input into the objstr value: a
// decimal "RA +Dec" string when the input parses as a coordinate pair,
// or the input verbatim as an object name for server-side resolution.
func resolveObjstr(coordinates string) (string, error) {
	if coordinates == "" {
		return "", fmt.Errorf("coordinates or an object name are required")
	}
	if pt, err := coords.ParsePoint(coordinates); err == nil {
		return pt.String(), nil
	}
	return coordinates, nil
}

// resolvePolygon formats the vertex list as comma-joined "RA +Dec"
// decimal-degree tokens. Typed vertices are used when present;
// otherwise vertex strings are parsed, falling back to interpreting a
// bare number pair as decimal degrees.
func (c *Client) resolvePolygon(opts QueryOptions) (string, error) {
	if len(opts.Polygon) > 0 {
		tokens := make([]string, len(opts.Polygon))
		for i, v := range opts.Polygon {
			tokens[i] = v.String()
		}
		return strings.Join(tokens, ","), nil
	}

	if len(opts.PolygonStrings) == 0 {
		return "", fmt.Errorf("polygon search requires vertices")
	}

	tokens := make([]string, len(opts.PolygonStrings))
	for i, s := range opts.PolygonStrings {
		pt, err := coords.ParsePoint(s)
		if err != nil {
			// Lenient fallback: a bare "ra dec" number pair is taken as
			// decimal degrees even outside the usual ranges.
			fb, ok := bareDegreePair(s)
			if !ok {
				return "", fmt.Errorf("polygon vertex %d: %w", i+1, err)
			}
			c.logger.Warn("polygon vertex interpreted as decimal-degree RA/Dec pair", "vertex", s)
			pt = fb
		}
		tokens[i] = pt.String()
	}
	return strings.Join(tokens, ","), nil
}

// bareDegreePair parses "ra dec" as two floats with no range checks.
func bareDegreePair(s string) (coords.Point, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return coords.Point{}, false
	}
	ra, err1 := strconv.ParseFloat(fields[0], 64)
	dec, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return coords.Point{}, false
	}
	return coords.Point{RA: ra, Dec: dec}, true
}
