// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package lvmreport

import (
	"strings"
	"testing"

	"github.com/ashgti/diskapigen/internal/genmodel"
)

func TestParsePVLine(t *testing.T) {
	schema := genmodel.New().PV

	pv, err := ParsePVLine(schema, "pv0,abcd-ef01-2345-6789-abcd-ef0123456789,vg0,1073741824,536870912,255,127")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pv.Name != "pv0" {
		t.Errorf("Name = %q, want pv0", pv.Name)
	}
	if strings.Contains(pv.UUID, "-") {
		t.Errorf("UUID retained dashes: %q", pv.UUID)
	}
	if pv.VGName != "vg0" {
		t.Errorf("VGName = %q, want vg0", pv.VGName)
	}
	if pv.Size != 1073741824 || pv.Free != 536870912 {
		t.Errorf("Size/Free = %d/%d, want 1073741824/536870912", pv.Size, pv.Free)
	}
	if pv.PECount != 255 || pv.PEAllocated != 127 {
		t.Errorf("PECount/PEAllocated = %d/%d, want 255/127", pv.PECount, pv.PEAllocated)
	}
}

func TestParsePVLineEmptyInput(t *testing.T) {
	schema := genmodel.New().PV
	if _, err := ParsePVLine(schema, ""); err == nil {
		t.Fatal("expected an error for an empty line")
	}
}

func TestParsePVLineLeadingWhitespace(t *testing.T) {
	schema := genmodel.New().PV
	if _, err := ParsePVLine(schema, "  pv0,uuid,vg0,1,1,1,1"); err == nil {
		t.Fatal("expected an error for a line with leading whitespace")
	}
}

func TestParsePVLineMissingToken(t *testing.T) {
	schema := genmodel.New().PV
	_, err := ParsePVLine(schema, "pv0,uuid,vg0,1,1,1")
	if err == nil {
		t.Fatal("expected an error for a short line")
	}
	if !strings.Contains(err.Error(), "pv_pe_alloc_count") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestParsePVLineSurplusTokens(t *testing.T) {
	schema := genmodel.New().PV
	_, err := ParsePVLine(schema, "pv0,uuid,vg0,1,1,1,1,extra")
	if err == nil {
		t.Fatal("expected an error for a line with extra tokens")
	}
	if !strings.Contains(err.Error(), "surplus") {
		t.Errorf("error %q does not mention surplus tokens", err)
	}
}

// TestParsePVLinePVFreeParseFailure exercises the same scenario the
// generated tokenizer is checked against: an unparseable pv_free column.
func TestParsePVLinePVFreeParseFailure(t *testing.T) {
	schema := genmodel.New().PV
	_, err := ParsePVLine(schema, "pv0,uuid,vg0,1073741824,not-a-number,1,1")
	if err == nil {
		t.Fatal("expected an error for an unparseable pv_free column")
	}
	if !strings.Contains(err.Error(), "pv_free") {
		t.Errorf("error %q does not name pv_free", err)
	}
}

func TestParseVGLine(t *testing.T) {
	schema := genmodel.New().VG

	vg, err := ParseVGLine(schema, "vg0,fedc-ba98-7654-3210,2147483648,1073741824,511,2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vg.Name != "vg0" || vg.ExtentCount != 511 || vg.PhysicalVols != 2 {
		t.Errorf("unexpected vg: %+v", vg)
	}
}

func TestParseLVLineDataPercentAbsent(t *testing.T) {
	schema := genmodel.New().LV

	lv, err := ParseLVLine(schema, "lv0,uuid,vg0,104857600,-wi-ao----,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lv.DataPercent != -1 {
		t.Errorf("DataPercent = %v, want -1 for an absent percentage", lv.DataPercent)
	}
}

func TestParseLVLineDataPercentPresent(t *testing.T) {
	schema := genmodel.New().LV

	lv, err := ParseLVLine(schema, "lv0,uuid,vg0,104857600,-wi-ao----,42.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lv.DataPercent != 42.5 {
		t.Errorf("DataPercent = %v, want 42.5", lv.DataPercent)
	}
}
