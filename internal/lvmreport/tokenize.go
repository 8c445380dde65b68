// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package lvmreport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ashgti/diskapigen/internal/genmodel"
)

// splitTokens implements the shared half of the tokenizer contract that
// does not depend on column kind: reject a null (empty-interface) line,
// reject an empty or whitespace-leading line, and split the remainder on
// the schema's fixed column order, reporting a distinct diagnostic for a
// missing token and for surplus trailing tokens.
//
// The list-driver (ListPhysicalVolumes et al.) always trims leading
// whitespace before calling this, so in practice the whitespace-leading
// case never fires from that path; it is checked here anyway because the
// tokenizer's own contract does not assume a particular caller.
func splitTokens(schema genmodel.RecordSchema, line string) ([]string, error) {
	if line == "" {
		return nil, fmt.Errorf("lvmreport: %s: empty input line", schema.Name)
	}
	if line[0] == ' ' || line[0] == '\t' {
		return nil, fmt.Errorf("lvmreport: %s: line has leading whitespace", schema.Name)
	}

	tokens := strings.Split(line, ",")
	if len(tokens) < len(schema.Columns) {
		return nil, fmt.Errorf("lvmreport: %s: missing token for column %s", schema.Name, schema.Columns[len(tokens)].Name)
	}
	if len(tokens) > len(schema.Columns) {
		return nil, fmt.Errorf("lvmreport: %s: surplus tokens after column %s", schema.Name, schema.Columns[len(schema.Columns)-1].Name)
	}
	return tokens, nil
}

func parseUUID(tok string) string {
	return strings.ReplaceAll(tok, "-", "")
}

func parseBytes(schema genmodel.RecordSchema, col genmodel.Column, tok string) (uint64, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("lvmreport: %s: failed to parse size for column %s: %w", schema.Name, col.Name, err)
	}
	return v, nil
}

func parseInt(schema genmodel.RecordSchema, col genmodel.Column, tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("lvmreport: %s: failed to parse integer for column %s: %w", schema.Name, col.Name, err)
	}
	return v, nil
}

// parseOptPercent yields -1 on an empty token (meaning "not present") and
// the parsed float otherwise.
func parseOptPercent(schema genmodel.RecordSchema, col genmodel.Column, tok string) (float64, error) {
	if tok == "" {
		return -1, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("lvmreport: %s: failed to parse percentage for column %s: %w", schema.Name, col.Name, err)
	}
	return v, nil
}

// ParsePVLine tokenizes one line of `pvs ... --separator ,` output into a
// PhysicalVolume, in the exact column order of genmodel's pv schema.
func ParsePVLine(schema genmodel.RecordSchema, line string) (PhysicalVolume, error) {
	tokens, err := splitTokens(schema, line)
	if err != nil {
		return PhysicalVolume{}, err
	}

	var pv PhysicalVolume
	for i, col := range schema.Columns {
		tok := tokens[i]
		switch col.Name {
		case "pv_name":
			pv.Name = tok
		case "pv_uuid":
			pv.UUID = parseUUID(tok)
		case "vg_name":
			pv.VGName = tok
		case "pv_size":
			if pv.Size, err = parseBytes(schema, col, tok); err != nil {
				return PhysicalVolume{}, err
			}
		case "pv_free":
			if pv.Free, err = parseBytes(schema, col, tok); err != nil {
				return PhysicalVolume{}, err
			}
		case "pv_pe_count":
			if pv.PECount, err = parseInt(schema, col, tok); err != nil {
				return PhysicalVolume{}, err
			}
		case "pv_pe_alloc_count":
			if pv.PEAllocated, err = parseInt(schema, col, tok); err != nil {
				return PhysicalVolume{}, err
			}
		default:
			return PhysicalVolume{}, fmt.Errorf("lvmreport: pv: unhandled column %s", col.Name)
		}
	}
	return pv, nil
}

// ParseVGLine tokenizes one line of `vgs ... --separator ,` output into a
// VolumeGroup, in the exact column order of genmodel's vg schema.
func ParseVGLine(schema genmodel.RecordSchema, line string) (VolumeGroup, error) {
	tokens, err := splitTokens(schema, line)
	if err != nil {
		return VolumeGroup{}, err
	}

	var vg VolumeGroup
	for i, col := range schema.Columns {
		tok := tokens[i]
		switch col.Name {
		case "vg_name":
			vg.Name = tok
		case "vg_uuid":
			vg.UUID = parseUUID(tok)
		case "vg_size":
			if vg.Size, err = parseBytes(schema, col, tok); err != nil {
				return VolumeGroup{}, err
			}
		case "vg_free":
			if vg.Free, err = parseBytes(schema, col, tok); err != nil {
				return VolumeGroup{}, err
			}
		case "vg_extent_count":
			if vg.ExtentCount, err = parseInt(schema, col, tok); err != nil {
				return VolumeGroup{}, err
			}
		case "vg_pv_count":
			if vg.PhysicalVols, err = parseInt(schema, col, tok); err != nil {
				return VolumeGroup{}, err
			}
		default:
			return VolumeGroup{}, fmt.Errorf("lvmreport: vg: unhandled column %s", col.Name)
		}
	}
	return vg, nil
}

// ParseLVLine tokenizes one line of `lvs ... --separator ,` output into a
// LogicalVolume, in the exact column order of genmodel's lv schema.
func ParseLVLine(schema genmodel.RecordSchema, line string) (LogicalVolume, error) {
	tokens, err := splitTokens(schema, line)
	if err != nil {
		return LogicalVolume{}, err
	}

	var lv LogicalVolume
	for i, col := range schema.Columns {
		tok := tokens[i]
		switch col.Name {
		case "lv_name":
			lv.Name = tok
		case "lv_uuid":
			lv.UUID = parseUUID(tok)
		case "vg_name":
			lv.VGName = tok
		case "lv_size":
			if lv.Size, err = parseBytes(schema, col, tok); err != nil {
				return LogicalVolume{}, err
			}
		case "lv_attr":
			lv.Attr = tok
		case "data_percent":
			if lv.DataPercent, err = parseOptPercent(schema, col, tok); err != nil {
				return LogicalVolume{}, err
			}
		default:
			return LogicalVolume{}, fmt.Errorf("lvmreport: lv: unhandled column %s", col.Name)
		}
	}
	return lv, nil
}
