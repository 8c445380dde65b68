// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// DocsStructs emits the LVM struct manual page: for each record kind, the
// public C declaration and the matching list-container declaration, with
// explanatory notes for uuid (not null-terminated) and opt_percent (range
// or sentinel).
func DocsStructs(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentHash, genemit.LicensePermissive)

	for _, schema := range m.Schemas() {
		writeStructDoc(w, schema)
	}
}

func writeStructDoc(w *genemit.W, s genmodel.RecordSchema) {
	typeName := "guestfs_lvm_" + s.Name

	w.Writefln("=head2 struct %s", typeName)
	w.Writeln()
	w.Writeln(" struct " + typeName + " {")
	for _, col := range s.Columns {
		w.Writeln("   " + publicColumnField(col))
	}
	w.Writeln(" };")
	w.Writeln(" struct " + typeName + "_list {")
	w.Writeln("   uint32_t len;")
	w.Writefln("   struct %s *val;", typeName)
	w.Writeln(" };")
	w.Writeln()
	for _, col := range s.Columns {
		switch col.Kind {
		case genmodel.ColUUID:
			w.Writefln("C<%s> is a 32-byte field that is B<not> null-terminated.", col.Name)
			w.Writeln()
		case genmodel.ColOptPercent:
			w.Writefln("C<%s> is either in the range 0 to 100, or -1 if not present.", col.Name)
			w.Writeln()
		}
	}
}
