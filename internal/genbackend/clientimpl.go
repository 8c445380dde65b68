// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// ClientImpl emits the client-side stub for every daemon call: the reply
// vessel, the reply callback, and the public entry point itself. Client-only
// calls (get_last_error, set_path, get_path) never reach the daemon and are
// handled by hand-written code elsewhere, not generated here.
func ClientImpl(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicensePermissive)

	for _, c := range m.Calls {
		if !c.IsDaemon() {
			continue
		}
		writeReplyVessel(w, c)
		writeReplyCallback(w, c)
		writeClientStub(w, c)
	}
}

func writeReplyVessel(w *genemit.W, c genmodel.Call) {
	w.Writefln("struct %s_rv {", c.Name)
	w.Writeln("\tstruct guestfs_message_header hdr;")
	w.Writeln("\tstruct guestfs_message_error err;")
	if c.Return.Kind != genmodel.RetErr {
		w.Writefln("\tstruct %s_ret ret;", c.Name)
	}
	w.Writeln("\tint cb_done;")
	w.Writeln("};")
	w.Writeln()
}

func writeReplyCallback(w *genemit.W, c genmodel.Call) {
	w.Writefln("static void %s_reply (guestfs_h *g, void *data, XDR *xdr)", c.Name)
	w.Writeln("{")
	w.Writefln("\tstruct %s_rv *rv = (struct %s_rv *) data;", c.Name, c.Name)
	w.Writeln()
	w.Writeln("\tif (!xdr_guestfs_message_header (xdr, &rv->hdr)) {")
	w.Writeln("\t\terror (g, \"failed to parse reply header\");")
	w.Writeln("\t\treturn;")
	w.Writeln("\t}")
	w.Writeln("\tif (rv->hdr.status == GUESTFS_STATUS_ERROR) {")
	w.Writeln("\t\tif (!xdr_guestfs_message_error (xdr, &rv->err)) {")
	w.Writeln("\t\t\terror (g, \"failed to parse reply error\");")
	w.Writeln("\t\t\treturn;")
	w.Writeln("\t\t}")
	w.Writeln("\t\tgoto done;")
	w.Writeln("\t}")
	if c.Return.Kind != genmodel.RetErr {
		w.Writefln("\tif (!xdr_%s_ret (xdr, &rv->ret)) {", c.Name)
		w.Writeln("\t\terror (g, \"failed to parse reply return value\");")
		w.Writeln("\t\treturn;")
		w.Writeln("\t}")
	}
	w.Writeln(" done:")
	w.Writeln("\trv->cb_done = 1;")
	w.Writeln("\tmain_loop.main_loop_quit (g);")
	w.Writeln("}")
	w.Writeln()
}

func writeClientStub(w *genemit.W, c genmodel.Call) {
	marker := genemit.ErrorMarker(c.Return.Kind)

	w.Writefln("%s", genemit.ClientDefinitionSignature(c))
	w.Writeln("{")
	w.Writefln("\tstruct %s_rv rv;", c.Name)
	if len(c.Args) > 0 {
		w.Writefln("\tstruct %s_args args;", c.Name)
	}
	w.Writeln("\tint serial;")
	w.Writeln()
	w.Writeln("\tif (guestfs__check_state (handle, \"" + "guestfs_" + c.Name + "\") == -1) {")
	w.Writefln("\t\tguestfs__set_last_error (handle, \"handle is not ready to send a call\");")
	w.Writefln("\t\treturn %s;", marker)
	w.Writeln("\t}")
	w.Writeln()
	w.Writeln("\tmemset (&rv, 0, sizeof rv);")
	w.Writeln()
	for _, a := range c.Args {
		switch a.Kind {
		case genmodel.ArgString:
			w.Writefln("\targs.%s = (char *) %s;", a.Name, a.Name)
		case genmodel.ArgOptString:
			w.Writefln("\targs.%s = %s ? (char **) &%s : NULL;", a.Name, a.Name, a.Name)
		case genmodel.ArgBool, genmodel.ArgInt:
			w.Writefln("\targs.%s = %s;", a.Name, a.Name)
		}
	}
	if len(c.Args) > 0 {
		w.Writeln()
		w.Writefln("\tserial = guestfs__send (handle, GUESTFS_PROC_%s, (xdrproc_t) xdr_%s_args, (char *) &args);",
			procIdent(c.Name), c.Name)
	} else {
		w.Writefln("\tserial = guestfs__send (handle, GUESTFS_PROC_%s, NULL, NULL);", procIdent(c.Name))
	}
	w.Writeln("\tif (serial == -1) {")
	w.Writefln("\t\treturn %s;", marker)
	w.Writeln("\t}")
	w.Writeln()
	w.Writefln("\tguestfs__set_reply_callback (handle, %s_reply, &rv);", c.Name)
	w.Writeln("\tmain_loop.main_loop_run (handle);")
	w.Writeln("\tguestfs__set_reply_callback (handle, NULL, NULL);")
	w.Writeln()
	w.Writeln("\tif (!rv.cb_done) {")
	w.Writefln("\t\tguestfs__set_last_error (handle, \"failed, see earlier error messages\");")
	w.Writefln("\t\treturn %s;", marker)
	w.Writeln("\t}")
	w.Writeln()
	w.Writeln("\tif (guestfs__check_reply_header (handle, &rv.hdr, GUESTFS_PROC_" + procIdent(c.Name) + ", serial) == -1) {")
	w.Writefln("\t\treturn %s;", marker)
	w.Writeln("\t}")
	w.Writeln()
	w.Writeln("\tif (rv.hdr.status == GUESTFS_STATUS_ERROR) {")
	w.Writefln("\t\tguestfs__set_last_error (handle, rv.err.error_message);")
	w.Writefln("\t\treturn %s;", marker)
	w.Writeln("\t}")
	w.Writeln()
	writeClientStubReturn(w, c)
	w.Writeln("}")
	w.Writeln()
}

// writeClientStubReturn renders the final success path, enforcing the
// ownership contract: string returns pass straight through to the caller;
// string_list returns are reallocated one slot larger so a NULL terminator
// can be appended; structured returns are deep-copied into fresh,
// caller-owned storage.
func writeClientStubReturn(w *genemit.W, c genmodel.Call) {
	field := c.Return.FieldName
	switch c.Return.Kind {
	case genmodel.RetErr:
		w.Writeln("\treturn 0;")
	case genmodel.RetInt, genmodel.RetBool:
		w.Writefln("\treturn rv.ret.%s;", field)
	case genmodel.RetString:
		w.Writefln("\treturn rv.ret.%s; /* caller frees */", field)
	case genmodel.RetStringList:
		w.Writefln("\treturn guestfs__safe_realloc_null_terminate (rv.ret.%s.%s_val, rv.ret.%s.%s_len);",
			field, field, field, field)
	case genmodel.RetIntBool:
		w.Writeln("\t{")
		w.Writeln("\t\tstruct guestfs_int_bool *r = safe_malloc (handle, sizeof *r);")
		w.Writefln("\t\tr->i = rv.ret.%s;", field)
		w.Writefln("\t\tr->b = rv.ret.%s_flag;", field)
		w.Writeln("\t\treturn r;")
		w.Writeln("\t}")
	case genmodel.RetPVList:
		writeListReturnCopy(w, field, "pv")
	case genmodel.RetVGList:
		writeListReturnCopy(w, field, "vg")
	case genmodel.RetLVList:
		writeListReturnCopy(w, field, "lv")
	default:
		panic("genbackend: unreachable return kind")
	}
}

func writeListReturnCopy(w *genemit.W, field, kind string) {
	w.Writeln("\treturn guestfs__safe_copy_lvm_" + kind + "_list (handle, &rv.ret." + field + ");")
}
