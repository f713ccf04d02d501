// Copyright Skyarchive Labs, 2026. All rights reserved.

package coords

import (
	"math"
	"testing"
)

// --- ParseAngle ---

func TestParseAngle(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		value float64
		unit  Unit
	}{
		{"arcsec with space", "5 arcsec", 5, Arcsec},
		{"deg without space", "0.5deg", 0.5, Degree},
		{"arcmin", "2 arcmin", 2, Arcmin},
		{"plural spelling", "10 arcseconds", 10, Arcsec},
		{"degrees spelling", "1.25 degrees", 1.25, Degree},
		{"radian", "0.01 rad", 0.01, Radian},
		{"scientific notation", "1e-2 deg", 0.01, Degree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAngle(tt.in)
			if err != nil {
				t.Fatalf("ParseAngle(%q): %v", tt.in, err)
			}
			if got.Value != tt.value || got.Unit != tt.unit {
				t.Errorf("ParseAngle(%q) = %v %s, want %v %s", tt.in, got.Value, got.Unit, tt.value, tt.unit)
			}
		})
	}
}

func TestParseAngleErrors(t *testing.T) {
	for _, in := range []string{"", "5", "arcsec", "5 parsec", "five arcsec"} {
		if _, err := ParseAngle(in); err == nil {
			t.Errorf("ParseAngle(%q) succeeded, want error", in)
		}
	}
}

func TestAngleConversions(t *testing.T) {
	a := Angle{Value: 2, Unit: Arcmin}
	if got := a.Arcseconds(); got != 120 {
		t.Errorf("Arcseconds() = %v, want 120", got)
	}
	if got := a.Degrees(); math.Abs(got-2.0/60) > 1e-12 {
		t.Errorf("Degrees() = %v, want %v", got, 2.0/60)
	}

	d := Angle{Value: 1, Unit: Degree}.Convert(Arcsec)
	if d.Value != 3600 || d.Unit != Arcsec {
		t.Errorf("Convert(Arcsec) = %v %s, want 3600 arcsec", d.Value, d.Unit)
	}
}

// --- ParsePoint ---

func TestParsePointDecimal(t *testing.T) {
	p, err := ParsePoint("10.68 +41.27")
	if err != nil {
		t.Fatalf("ParsePoint: %v", err)
	}
	if p.RA != 10.68 || p.Dec != 41.27 {
		t.Errorf("ParsePoint = %+v, want {10.68 41.27}", p)
	}

	p, err = ParsePoint("83.82 -5.39")
	if err != nil {
		t.Fatalf("ParsePoint: %v", err)
	}
	if p.RA != 83.82 || p.Dec != -5.39 {
		t.Errorf("ParsePoint = %+v, want {83.82 -5.39}", p)
	}
}

func TestParsePointSexagesimal(t *testing.T) {
	// M31: 00 42 44.3 -41 16 08 is the upstream documentation example.
	p, err := ParsePoint("00 42 44.3 -41 16 08")
	if err != nil {
		t.Fatalf("ParsePoint: %v", err)
	}
	wantRA := (42.0/60 + 44.3/3600) * 15
	wantDec := -(41 + 16.0/60 + 8.0/3600)
	if math.Abs(p.RA-wantRA) > 1e-9 || math.Abs(p.Dec-wantDec) > 1e-9 {
		t.Errorf("ParsePoint = %+v, want {%v %v}", p, wantRA, wantDec)
	}
}

func TestParsePointSuffixed(t *testing.T) {
	p, err := ParsePoint("00h42m44.3s -41d16m08s")
	if err != nil {
		t.Fatalf("ParsePoint: %v", err)
	}
	wantRA := (42.0/60 + 44.3/3600) * 15
	wantDec := -(41 + 16.0/60 + 8.0/3600)
	if math.Abs(p.RA-wantRA) > 1e-9 || math.Abs(p.Dec-wantDec) > 1e-9 {
		t.Errorf("ParsePoint = %+v, want {%v %v}", p, wantRA, wantDec)
	}
}

// Both components may carry a degree suffix instead of h/d sexagesimal.
func TestParsePointDegreeSuffixed(t *testing.T) {
	p, err := ParsePoint("10.68d +41.27d")
	if err != nil {
		t.Fatalf("ParsePoint: %v", err)
	}
	if p.RA != 10.68 || p.Dec != 41.27 {
		t.Errorf("ParsePoint = %+v, want {10.68 41.27}", p)
	}

	p, err = ParsePoint("83.82d -5.39d")
	if err != nil {
		t.Fatalf("ParsePoint: %v", err)
	}
	if p.RA != 83.82 || p.Dec != -5.39 {
		t.Errorf("ParsePoint = %+v, want {83.82 -5.39}", p)
	}
}

func TestParsePointRejects(t *testing.T) {
	tests := []string{
		"",
		"M31",
		"NGC 253",  // two fields but not numbers
		"400 +10",  // RA out of range
		"10 +95",   // Dec out of range
		"10 20 30", // wrong field count
	}
	for _, in := range tests {
		if _, err := ParsePoint(in); err == nil {
			t.Errorf("ParsePoint(%q) succeeded, want error", in)
		}
	}
}

func TestIsCoordinate(t *testing.T) {
	if !IsCoordinate("10.5 +41.2") {
		t.Error("IsCoordinate(\"10.5 +41.2\") = false, want true")
	}
	if IsCoordinate("M31") {
		t.Error("IsCoordinate(\"M31\") = true, want false")
	}
}

// --- FormatDecimal ---

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		ra, dec float64
		want    string
	}{
		{10.1, 10.1, "10.1 +10.1"},
		{10.68, -41.27, "10.68 -41.27"},
		{0, 0, "0 +0"},
		{180.5, -0.25, "180.5 -0.25"},
	}
	for _, tt := range tests {
		if got := FormatDecimal(tt.ra, tt.dec); got != tt.want {
			t.Errorf("FormatDecimal(%v, %v) = %q, want %q", tt.ra, tt.dec, got, tt.want)
		}
	}
}

func TestPointString(t *testing.T) {
	p := Point{RA: 10.5, Dec: 41.2}
	if got := p.String(); got != "10.5 +41.2" {
		t.Errorf("String() = %q, want %q", got, "10.5 +41.2")
	}
}
