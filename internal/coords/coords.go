// Copyright Skyarchive Labs, 2026. All rights reserved.

// Package coords parses and formats angular quantities and RA/Dec
// coordinate pairs. It covers the forms the Gator service understands:
// decimal degrees, space-separated sexagesimal, and suffixed sexagesimal
// ("00h42m44.3s -41d16m08s").
package coords

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is an angular unit accepted for search dimensions.
type Unit string

const (
	Arcsec Unit = "arcsec"
	Arcmin Unit = "arcmin"
	Degree Unit = "deg"
	Radian Unit = "rad"
)

// arcsecPer maps each unit to its size in arcseconds.
var arcsecPer = map[Unit]float64{
	Arcsec: 1,
	Arcmin: 60,
	Degree: 3600,
	Radian: 3600 * 180 / math.Pi,
}

// unitAliases maps accepted unit spellings to their canonical form.
var unitAliases = map[string]Unit{
	"arcsec":     Arcsec,
	"arcsecond":  Arcsec,
	"arcseconds": Arcsec,
	"asec":       Arcsec,
	"arcmin":     Arcmin,
	"arcminute":  Arcmin,
	"arcminutes": Arcmin,
	"amin":       Arcmin,
	"deg":        Degree,
	"degree":     Degree,
	"degrees":    Degree,
	"rad":        Radian,
	"radian":     Radian,
	"radians":    Radian,
}

// ParseUnit normalizes a unit spelling.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown angular unit %q", s)
	}
	return u, nil
}

// Angle is an angular quantity with an explicit unit. The unit is kept
// rather than normalized so callers can pass service-accepted units
// through verbatim (the radunits key).
type Angle struct {
	Value float64
	Unit  Unit
}

// anglePattern matches "<number><optional space><unit>".
var anglePattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)\s*([A-Za-z]+)$`)

// ParseAngle parses strings like "5 arcsec", "0.5deg", "2 arcmin".
// A bare number is an error: the unit must be explicit.
func ParseAngle(s string) (Angle, error) {
	m := anglePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Angle{}, fmt.Errorf("cannot parse angle %q: want \"<value> <unit>\"", s)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Angle{}, fmt.Errorf("cannot parse angle %q: %w", s, err)
	}
	unit, err := ParseUnit(m[2])
	if err != nil {
		return Angle{}, fmt.Errorf("cannot parse angle %q: %w", s, err)
	}
	return Angle{Value: value, Unit: unit}, nil
}

// Arcseconds returns the angle converted to arcseconds.
func (a Angle) Arcseconds() float64 {
	return a.Value * arcsecPer[a.Unit]
}

// Degrees returns the angle converted to decimal degrees.
func (a Angle) Degrees() float64 {
	return a.Arcseconds() / 3600
}

// Convert returns the angle expressed in unit u.
func (a Angle) Convert(u Unit) Angle {
	return Angle{Value: a.Arcseconds() / arcsecPer[u], Unit: u}
}

// String formats the angle as "<value> <unit>".
func (a Angle) String() string {
	return FormatFloat(a.Value) + " " + string(a.Unit)
}

// Point is an ICRS position in decimal degrees.
type Point struct {
	RA  float64
	Dec float64
}

// FormatDecimal renders decimal-degree RA/Dec in the IPAC-parseable
// form "ra +dec" with the declination always sign-prefixed.
func FormatDecimal(ra, dec float64) string {
	sign := "+"
	if math.Signbit(dec) {
		sign = "-"
	}
	return FormatFloat(ra) + " " + sign + FormatFloat(math.Abs(dec))
}

// String returns the point in IPAC "ra +dec" form.
func (p Point) String() string {
	return FormatDecimal(p.RA, p.Dec)
}

// FormatFloat renders a float with the shortest round-trip decimal form.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sexSuffixed matches one suffixed sexagesimal component, e.g.
// "00h42m44.3s" or "-41d16m08s".
var sexSuffixed = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)[hd](?:(\d+(?:\.\d+)?)m)?(?:(\d+(?:\.\d+)?)s)?$`)

// ParsePoint parses a coordinate pair string. Accepted forms:
//
//	"10.68 +41.27"                decimal degrees
//	"10.68d +41.27d"              decimal degrees, suffixed
//	"00 42 44.3 -41 16 08"        sexagesimal, RA in hours
//	"00h42m44.3s -41d16m08s"      suffixed sexagesimal, RA in hours
func ParsePoint(s string) (Point, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 2:
		if p, ok := parseDecimalPair(fields); ok {
			return p, nil
		}
		if p, ok := parseSuffixedPair(fields); ok {
			return p, nil
		}
	case 6:
		if p, ok := parseSexagesimal(fields); ok {
			return p, nil
		}
	}
	return Point{}, fmt.Errorf("cannot parse %q as a coordinate pair", s)
}

// IsCoordinate reports whether s parses as a coordinate pair. Strings
// that do not are treated as object names and resolved server-side.
func IsCoordinate(s string) bool {
	_, err := ParsePoint(s)
	return err == nil
}

func parseDecimalPair(fields []string) (Point, bool) {
	ra, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, false
	}
	dec, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, false
	}
	if ra < 0 || ra >= 360 || dec < -90 || dec > 90 {
		return Point{}, false
	}
	return Point{RA: ra, Dec: dec}, true
}

func parseSuffixedPair(fields []string) (Point, bool) {
	ra, ok := parseSuffixedComponent(fields[0], "h")
	if ok {
		// RA given in hours.
		ra *= 15
	} else {
		// Both components may be degree-led ("10.68d +41.27d").
		ra, ok = parseSuffixedComponent(fields[0], "d")
		if !ok {
			return Point{}, false
		}
	}
	dec, ok := parseSuffixedComponent(fields[1], "d")
	if !ok {
		return Point{}, false
	}
	if ra < 0 || ra >= 360 || dec < -90 || dec > 90 {
		return Point{}, false
	}
	return Point{RA: ra, Dec: dec}, true
}

// parseSuffixedComponent parses "00h42m44.3s" (lead must be "h") or
// "-41d16m08s" (lead must be "d") into a decimal value in the leading
// unit (hours or degrees).
func parseSuffixedComponent(s, lead string) (float64, bool) {
	if !strings.Contains(s, lead) {
		return 0, false
	}
	m := sexSuffixed.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	value := atofOr(m[2], -1)
	if value < 0 {
		return 0, false
	}
	value += atofOr(m[3], 0)/60 + atofOr(m[4], 0)/3600
	if m[1] == "-" {
		value = -value
	}
	return value, true
}

// parseSexagesimal parses six space-separated fields as
// "HH MM SS.S [+-]DD MM SS.S", RA in hours.
func parseSexagesimal(fields []string) (Point, bool) {
	nums := make([]float64, 6)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Point{}, false
		}
		nums[i] = v
	}
	ra := (nums[0] + nums[1]/60 + nums[2]/3600) * 15
	negDec := strings.HasPrefix(fields[3], "-")
	dec := math.Abs(nums[3]) + nums[4]/60 + nums[5]/3600
	if negDec {
		dec = -dec
	}
	if ra < 0 || ra >= 360 || dec < -90 || dec > 90 {
		return Point{}, false
	}
	return Point{RA: ra, Dec: dec}, true
}

func atofOr(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
