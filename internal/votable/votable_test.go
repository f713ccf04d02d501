// Copyright Skyarchive Labs, 2026. All rights reserved.

package votable

import (
	"strings"
	"testing"

	"github.com/skyarchive/gator/pkg/types"
)

const sampleVOTable = `<?xml version="1.0" encoding="UTF-8"?>
<VOTABLE version="1.2">
 <RESOURCE>
  <TABLE>
   <FIELD name="ra" datatype="double" unit="deg">
    <DESCRIPTION>Right ascension</DESCRIPTION>
   </FIELD>
   <FIELD name="dec" datatype="double" unit="deg"/>
   <FIELD name="designation" datatype="char"/>
   <FIELD name="ext" datatype="int"/>
   <FIELD name="dup" datatype="boolean"/>
   <DATA>
    <TABLEDATA>
     <TR><TD>10.684737</TD><TD>41.269035</TD><TD>00424433+4116085</TD><TD>0</TD><TD>f</TD></TR>
     <TR><TD>10.685657</TD><TD>41.269550</TD><TD>00424455+4116103</TD><TD>1</TD><TD>t</TD></TR>
     <TR><TD></TD><TD>41.270000</TD><TD>00424460+4116120</TD><TD></TD><TD>f</TD></TR>
    </TABLEDATA>
   </DATA>
  </TABLE>
 </RESOURCE>
</VOTABLE>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleVOTable))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	table := doc.Table

	if len(table.Columns) != 5 {
		t.Fatalf("len(Columns) = %d, want 5", len(table.Columns))
	}
	if table.NumRows() != 3 {
		t.Fatalf("NumRows() = %d, want 3", table.NumRows())
	}

	ra := table.Columns[0]
	if ra.Name != "ra" || ra.Datatype != types.DatatypeFloat || ra.Unit != "deg" {
		t.Errorf("column 0 = %+v, want ra/float/deg", ra)
	}
	if ra.Description != "Right ascension" {
		t.Errorf("Description = %q, want %q", ra.Description, "Right ascension")
	}

	row := table.Rows[0]
	if v, ok := row[0].(float64); !ok || v != 10.684737 {
		t.Errorf("row[0][0] = %v (%T), want 10.684737", row[0], row[0])
	}
	if v, ok := row[2].(string); !ok || v != "00424433+4116085" {
		t.Errorf("row[0][2] = %v, want designation string", row[2])
	}
	if v, ok := row[3].(int64); !ok || v != 0 {
		t.Errorf("row[0][3] = %v (%T), want int64 0", row[3], row[3])
	}
	if v, ok := row[4].(bool); !ok || v {
		t.Errorf("row[0][4] = %v, want false", row[4])
	}
	if v, ok := table.Rows[1][4].(bool); !ok || !v {
		t.Errorf("row[1][4] = %v, want true", table.Rows[1][4])
	}

	// Empty cells are nulls.
	if table.Rows[2][0] != nil {
		t.Errorf("row[2][0] = %v, want nil", table.Rows[2][0])
	}
	if table.Rows[2][3] != nil {
		t.Errorf("row[2][3] = %v, want nil", table.Rows[2][3])
	}

	if len(doc.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", doc.Warnings)
	}
}

func TestParseFirstTableOnly(t *testing.T) {
	payload := `<VOTABLE>
 <RESOURCE>
  <TABLE>
   <FIELD name="a" datatype="int"/>
   <DATA><TABLEDATA><TR><TD>1</TD></TR></TABLEDATA></DATA>
  </TABLE>
  <TABLE>
   <FIELD name="b" datatype="int"/>
   <DATA><TABLEDATA><TR><TD>2</TD></TR><TR><TD>3</TD></TR></TABLEDATA></DATA>
  </TABLE>
 </RESOURCE>
</VOTABLE>`

	doc, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Table.Columns) != 1 || doc.Table.Columns[0].Name != "a" {
		t.Errorf("Columns = %+v, want the first table's single column", doc.Table.Columns)
	}
	if doc.Table.NumRows() != 1 {
		t.Errorf("NumRows() = %d, want 1", doc.Table.NumRows())
	}
}

func TestParseUnknownDatatypeWarns(t *testing.T) {
	payload := `<VOTABLE><RESOURCE><TABLE>
 <FIELD name="x" datatype="complex"/>
 <DATA><TABLEDATA><TR><TD>whatever</TD></TR></TABLEDATA></DATA>
</TABLE></RESOURCE></VOTABLE>`

	doc, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Table.Columns[0].Datatype != types.DatatypeString {
		t.Errorf("Datatype = %q, want string fallback", doc.Table.Columns[0].Datatype)
	}
	if len(doc.Warnings) == 0 || !strings.Contains(doc.Warnings[0], "unknown datatype") {
		t.Errorf("Warnings = %v, want unknown-datatype warning", doc.Warnings)
	}
	if v, ok := doc.Table.Rows[0][0].(string); !ok || v != "whatever" {
		t.Errorf("cell = %v, want string passthrough", doc.Table.Rows[0][0])
	}
}

func TestParseRowArityMismatchWarns(t *testing.T) {
	payload := `<VOTABLE><RESOURCE><TABLE>
 <FIELD name="a" datatype="int"/>
 <FIELD name="b" datatype="int"/>
 <DATA><TABLEDATA><TR><TD>1</TD></TR></TABLEDATA></DATA>
</TABLE></RESOURCE></VOTABLE>`

	doc, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Warnings) == 0 {
		t.Fatal("want an arity warning")
	}
	// The missing cell is a null, not an error.
	if doc.Table.Rows[0][1] != nil {
		t.Errorf("missing cell = %v, want nil", doc.Table.Rows[0][1])
	}
}

func TestParseUnconvertibleCellWarns(t *testing.T) {
	payload := `<VOTABLE><RESOURCE><TABLE>
 <FIELD name="a" datatype="int"/>
 <DATA><TABLEDATA><TR><TD>not-a-number</TD></TR></TABLEDATA></DATA>
</TABLE></RESOURCE></VOTABLE>`

	doc, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Table.Rows[0][0] != nil {
		t.Errorf("cell = %v, want nil", doc.Table.Rows[0][0])
	}
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "cannot parse") {
		t.Errorf("Warnings = %v, want one conversion warning", doc.Warnings)
	}
}

func TestParseQueryStatusErrorWarns(t *testing.T) {
	payload := `<VOTABLE>
 <RESOURCE>
  <INFO name="QUERY_STATUS" value="ERROR">constraint syntax error</INFO>
  <TABLE>
   <FIELD name="a" datatype="int"/>
   <DATA><TABLEDATA></TABLEDATA></DATA>
  </TABLE>
 </RESOURCE>
</VOTABLE>`

	doc, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	found := false
	for _, w := range doc.Warnings {
		if strings.Contains(w, "constraint syntax error") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want QUERY_STATUS error surfaced", doc.Warnings)
	}
}

func TestParseNoTable(t *testing.T) {
	if _, err := Parse([]byte(`<VOTABLE><RESOURCE></RESOURCE></VOTABLE>`)); err == nil {
		t.Error("Parse succeeded on a VOTable with no TABLE, want error")
	}
}

func TestParseNotXML(t *testing.T) {
	if _, err := Parse([]byte("definitely not xml <<<")); err == nil {
		t.Error("Parse succeeded on junk input, want error")
	}
}
