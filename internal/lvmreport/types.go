// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package lvmreport is the hand-written, directly testable counterpart of
// the daemon dispatch backend's generated LVM tokenizer and list-driver: it
// runs /sbin/lvm itself, parses its comma-separated report lines with the
// exact diagnostic contract the generator bakes into C, and exists so that
// contract can be exercised and proven correct without building the
// generated daemon at all.
package lvmreport

// PhysicalVolume mirrors the pv record schema's column order exactly.
type PhysicalVolume struct {
	Name        string
	UUID        string
	VGName      string
	Size        uint64
	Free        uint64
	PECount     int64
	PEAllocated int64
}

// VolumeGroup mirrors the vg record schema's column order exactly.
type VolumeGroup struct {
	Name         string
	UUID         string
	Size         uint64
	Free         uint64
	ExtentCount  int64
	PhysicalVols int64
}

// LogicalVolume mirrors the lv record schema's column order exactly.
type LogicalVolume struct {
	Name        string
	UUID        string
	VGName      string
	Size        uint64
	Attr        string
	DataPercent float64 // -1 means "not present"
}
