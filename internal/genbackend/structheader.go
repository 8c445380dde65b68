// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"fmt"

	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// StructHeader emits the public, caller-visible struct definitions: the
// int/bool pair, and for each LVM record a plain struct mirroring the wire
// layout bit-for-bit plus a matching length+array container. The library
// copies these directly from the wire structs field by field, so widths and
// order here must agree exactly with wireColumnType and wireRetFields.
func StructHeader(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicensePermissive)

	w.Writeln("struct guestfs_int_bool {")
	w.Writeln("\tint i;")
	w.Writeln("\tint b;")
	w.Writeln("};")
	w.Writeln()

	for _, schema := range m.Schemas() {
		writePublicRecordStruct(w, schema)
	}
}

func writePublicRecordStruct(w *genemit.W, s genmodel.RecordSchema) {
	typeName := "guestfs_lvm_" + s.Name

	w.Writefln("struct %s {", typeName)
	for _, col := range s.Columns {
		w.Writefln("\t%s", publicColumnField(col))
	}
	w.Writeln("};")
	w.Writeln()

	w.Writefln("struct %s_list {", typeName)
	w.Writefln("\tuint32_t len;")
	w.Writefln("\tstruct %s *val;", typeName)
	w.Writeln("};")
	w.Writeln()
}

// publicColumnField mirrors wireColumnType bit-for-bit: uuid stays a 32-byte,
// non-null-terminated opaque block, bytes/int stay 64-bit, opt_percent stays
// a 32-bit float.
func publicColumnField(col genmodel.Column) string {
	switch col.Kind {
	case genmodel.ColString:
		return fmt.Sprintf("char *%s;", col.Name)
	case genmodel.ColUUID:
		return fmt.Sprintf("char %s[32]; /* this is NOT nul-terminated, be careful when printing it */", col.Name)
	case genmodel.ColBytes:
		return fmt.Sprintf("uint64_t %s;", col.Name)
	case genmodel.ColInt:
		return fmt.Sprintf("int64_t %s;", col.Name)
	case genmodel.ColOptPercent:
		return fmt.Sprintf("float %s; /* [0..100] or -1 */", col.Name)
	default:
		panic("genbackend: unreachable column kind")
	}
}
