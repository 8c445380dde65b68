// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"fmt"
	"sort"

	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

const (
	// MessageMax is the maximum message size, in bytes (4 MiB).
	MessageMax = 4 * 1024 * 1024
	// ProgramID is the fixed magic number identifying this protocol.
	ProgramID = 0x2000F5F5
	// ProtocolVersion is the single supported wire protocol version.
	ProtocolVersion = 1
	// ErrorMessageMax is the maximum length, in bytes, of a daemon error
	// message.
	ErrorMessageMax = 256
)

// WireSchema emits the interface description consumed by an external
// RPC-stub generator: the LVM record and list types, per-call argument and
// return structs, the procedure enumeration, and the fixed protocol
// constants and envelope types.
func WireSchema(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicenseCopyleft)

	w.Writeln("typedef string guestfs_str<>;")
	w.Writeln()

	for _, schema := range m.Schemas() {
		writeRecordSchema(w, schema)
	}

	for _, c := range m.Calls {
		if c.IsDaemon() && len(c.Args) > 0 {
			writeArgsStruct(w, c)
		}
	}
	for _, c := range m.Calls {
		if c.IsDaemon() && c.Return.Kind != genmodel.RetErr {
			writeRetStruct(w, c)
		}
	}

	writeProcedureEnum(w, m.Calls)
	writeProtocolConstants(w)
	writeEnvelope(w)
}

func writeRecordSchema(w *genemit.W, s genmodel.RecordSchema) {
	typeName := "guestfs_lvm_int_" + s.Name
	w.Writefln("struct %s {", typeName)
	for _, col := range s.Columns {
		w.Writefln("\t%s %s;", wireColumnType(col.Kind), col.Name)
	}
	w.Writeln("};")
	w.Writefln("typedef struct %s %s_list<>;", typeName, typeName)
	w.Writeln()
}

func wireColumnType(k genmodel.ColumnKind) string {
	switch k {
	case genmodel.ColString:
		return "guestfs_str"
	case genmodel.ColUUID:
		return "opaque[32]"
	case genmodel.ColBytes, genmodel.ColInt:
		return "hyper"
	case genmodel.ColOptPercent:
		return "float"
	default:
		panic("genbackend: unreachable column kind")
	}
}

func writeArgsStruct(w *genemit.W, c genmodel.Call) {
	w.Writefln("struct %s_args {", c.Name)
	for _, a := range c.Args {
		w.Writefln("\t%s", wireArgField(a))
	}
	w.Writeln("};")
	w.Writeln()
}

// wireArgField renders one argument's field line in a call's _args struct.
// Text arguments wire as bounded strings; optional text wires as an
// optional pointer to the same; bool as boolean; int as a 32-bit signed
// integer.
//
// Per the flagged source behaviour (design notes), `int` arguments wire as
// a 32-bit signed integer on the wire even though the argument kind's own
// contract is "at most 31 bits of magnitude, signed" -- the two are
// deliberately not the same claim, and the narrower one is enforced at the
// client stub, not on the wire.
func wireArgField(a genmodel.Arg) string {
	switch a.Kind {
	case genmodel.ArgString:
		return fmt.Sprintf("string %s<>;", a.Name)
	case genmodel.ArgOptString:
		return fmt.Sprintf("string *%s<>;", a.Name)
	case genmodel.ArgBool:
		return fmt.Sprintf("bool %s;", a.Name)
	case genmodel.ArgInt:
		return fmt.Sprintf("int %s;", a.Name)
	default:
		panic("genbackend: unreachable arg kind")
	}
}

func writeRetStruct(w *genemit.W, c genmodel.Call) {
	w.Writefln("struct %s_ret {", c.Name)
	for _, line := range wireRetFields(c.Return) {
		w.Writefln("\t%s", line)
	}
	w.Writeln("};")
	w.Writeln()
}

func wireRetFields(ret genmodel.Return) []string {
	field := ret.FieldName
	switch ret.Kind {
	case genmodel.RetInt:
		return []string{fmt.Sprintf("int %s;", field)}
	case genmodel.RetBool:
		return []string{fmt.Sprintf("bool %s;", field)}
	case genmodel.RetString:
		return []string{fmt.Sprintf("guestfs_str %s;", field)}
	case genmodel.RetStringList:
		return []string{fmt.Sprintf("guestfs_str %s<>;", field)}
	case genmodel.RetIntBool:
		return []string{
			fmt.Sprintf("int %s;", field),
			fmt.Sprintf("bool %s_flag;", field),
		}
	case genmodel.RetPVList:
		return []string{fmt.Sprintf("guestfs_lvm_int_pv_list %s;", field)}
	case genmodel.RetVGList:
		return []string{fmt.Sprintf("guestfs_lvm_int_vg_list %s;", field)}
	case genmodel.RetLVList:
		return []string{fmt.Sprintf("guestfs_lvm_int_lv_list %s;", field)}
	default:
		panic("genbackend: unreachable return kind on the wire")
	}
}

func writeProcedureEnum(w *genemit.W, calls []genmodel.Call) {
	daemon := make([]genmodel.Call, 0, len(calls))
	for _, c := range calls {
		if c.IsDaemon() {
			daemon = append(daemon, c)
		}
	}
	sort.Slice(daemon, func(i, j int) bool { return daemon[i].ProcedureNumber < daemon[j].ProcedureNumber })

	w.Writeln("enum guestfs_procedure {")
	for _, c := range daemon {
		w.Writefln("\tGUESTFS_PROC_%s = %d,", procIdent(c.Name), c.ProcedureNumber)
	}
	// A terminating sentinel avoids a trailing comma on the last real entry.
	w.Writeln("\tGUESTFS_PROC_NR_PROCS")
	w.Writeln("};")
	w.Writeln()
}

func procIdent(name string) string {
	up := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		up[i] = c
	}
	return string(up)
}

func writeProtocolConstants(w *genemit.W) {
	w.Writefln("const GUESTFS_MESSAGE_MAX = %d;", MessageMax)
	w.Writefln("const GUESTFS_PROGRAM = 0x%08X;", ProgramID)
	w.Writefln("const GUESTFS_PROTOCOL_VERSION = %d;", ProtocolVersion)
	w.Writeln()
}

func writeEnvelope(w *genemit.W) {
	w.Writeln("enum guestfs_direction {")
	w.Writeln("\tGUESTFS_DIRECTION_CALL = 0,")
	w.Writeln("\tGUESTFS_DIRECTION_REPLY = 1")
	w.Writeln("};")
	w.Writeln()

	w.Writeln("enum guestfs_status {")
	w.Writeln("\tGUESTFS_STATUS_OK = 0,")
	w.Writeln("\tGUESTFS_STATUS_ERROR = 1")
	w.Writeln("};")
	w.Writeln()

	w.Writefln("struct guestfs_message_error {")
	w.Writefln("\tstring error_message<%d>;", ErrorMessageMax)
	w.Writeln("};")
	w.Writeln()

	w.Writeln("struct guestfs_message_header {")
	w.Writeln("\tint prog;")
	w.Writeln("\tint vers;")
	w.Writeln("\tguestfs_procedure proc;")
	w.Writeln("\tguestfs_direction direction;")
	w.Writeln("\tint serial;")
	w.Writeln("\tguestfs_status status;")
	w.Writeln("};")
}
