// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// DaemonDispatch emits, per daemon call, a decode-invoke-reply stub; a
// top-level dispatch switch over the procedure number; and, per LVM kind, a
// tokenizer and a list-driver that together implement the
// "/sbin/lvm ... --separator ," contract. internal/lvmreport is the
// hand-written, directly testable counterpart of exactly this tokenizer and
// list-driver contract, kept in step with this backend by sharing
// genmodel's record schemas.
func DaemonDispatch(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicenseCopyleft)

	for _, c := range m.Calls {
		if c.IsDaemon() {
			writeDaemonStub(w, c)
		}
	}
	writeDispatchSwitch(w, m.Calls)

	for _, schema := range m.Schemas() {
		writeTokenizer(w, schema)
		writeListDriver(w, schema)
	}
}

func writeDaemonStub(w *genemit.W, c genmodel.Call) {
	w.Writefln("static void %s_stub (XDR *xdr_in)", c.Name)
	w.Writeln("{")
	w.Writefln("\t%s r;", genemit.ReturnCType(c.Return, true))
	if len(c.Args) > 0 {
		w.Writefln("\tstruct %s_args args;", c.Name)
	}
	w.Writeln()
	if len(c.Args) > 0 {
		w.Writeln("\tmemset (&args, 0, sizeof args);")
		w.Writefln("\tif (!xdr_%s_args (xdr_in, &args)) {", c.Name)
		w.Writefln("\t\treply_with_error (\"%s: failed to decode arguments\");", c.Name)
		w.Writeln("\t\treturn;")
		w.Writeln("\t}")
		w.Writeln()
	}
	w.Writefln("\tr = do_%s (%s);", c.Name, daemonCallArgs(c.Args))
	w.Writefln("\tif (r == %s) {", genemit.ErrorMarker(c.Return.Kind))
	w.Writeln("\t\t/* do_" + c.Name + " has already sent an error reply */")
	w.Writeln("\t\treturn;")
	w.Writeln("\t}")
	w.Writeln()
	writeDaemonStubSuccess(w, c)
	w.Writeln("}")
	w.Writeln()
}

func daemonCallArgs(args []genmodel.Arg) string {
	if len(args) == 0 {
		return ""
	}
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		switch a.Kind {
		case genmodel.ArgOptString:
			out += "args." + a.Name + " ? *args." + a.Name + " : NULL"
		default:
			out += "args." + a.Name
		}
	}
	return out
}

func writeDaemonStubSuccess(w *genemit.W, c genmodel.Call) {
	if c.Return.Kind == genmodel.RetErr {
		w.Writeln("\treply (NULL, NULL);")
		return
	}

	w.Writefln("\tstruct %s_ret ret;", c.Name)
	field := c.Return.FieldName
	switch c.Return.Kind {
	case genmodel.RetInt, genmodel.RetBool:
		w.Writefln("\tret.%s = r;", field)
	case genmodel.RetString:
		w.Writefln("\tret.%s = r;", field)
	case genmodel.RetStringList, genmodel.RetPVList, genmodel.RetVGList, genmodel.RetLVList:
		w.Writefln("\tret.%s = *r;", field)
	case genmodel.RetIntBool:
		w.Writefln("\tret.%s = r->i;", field)
		w.Writefln("\tret.%s_flag = r->b;", field)
	}
	w.Writefln("\treply ((xdrproc_t) xdr_%s_ret, (char *) &ret);", c.Name)
	switch c.Return.Kind {
	case genmodel.RetString:
		w.Writeln("\tfree (r);")
	case genmodel.RetStringList:
		w.Writefln("\txdr_free ((xdrproc_t) xdr_%s_ret, (char *) &ret);", c.Name)
		w.Writeln("\tfree (r);")
	case genmodel.RetPVList, genmodel.RetVGList, genmodel.RetLVList:
		w.Writefln("\txdr_free ((xdrproc_t) xdr_%s_ret, (char *) &ret);", c.Name)
		w.Writeln("\tfree (r);")
	case genmodel.RetIntBool:
		w.Writeln("\tfree (r);")
	}
}

func writeDispatchSwitch(w *genemit.W, calls []genmodel.Call) {
	w.Writeln("void dispatch_incoming_message (XDR *xdr_in)")
	w.Writeln("{")
	w.Writeln("\tswitch (proc_nr) {")
	for _, c := range calls {
		if !c.IsDaemon() {
			continue
		}
		w.Writefln("\tcase GUESTFS_PROC_%s:", procIdent(c.Name))
		w.Writefln("\t\t%s_stub (xdr_in);", c.Name)
		w.Writeln("\t\tbreak;")
	}
	w.Writeln("\tdefault:")
	w.Writeln("\t\treply_with_error (\"dispatch_incoming_message: unknown procedure number\");")
	w.Writeln("\t}")
	w.Writeln("}")
	w.Writeln()
}

// writeTokenizer emits the comma-separated-line tokenizer for one LVM
// record kind. Column order follows the record schema exactly: it is what
// fixes the tokenisation order of the `lvm ... --separator ,` output.
func writeTokenizer(w *genemit.W, s genmodel.RecordSchema) {
	typeName := "guestfs_lvm_int_" + s.Name
	w.Writefln("static int parse_%s_line (struct %s *r, char *line)", s.Name, typeName)
	w.Writeln("{")
	w.Writeln("\tchar *p, *pend;")
	w.Writeln()
	w.Writeln("\tif (line == NULL) {")
	w.Writefln("\t\tfprintf (stderr, \"parse_%s_line: null input line\\n\");", s.Name)
	w.Writeln("\t\treturn -1;")
	w.Writeln("\t}")
	w.Writeln("\tif (line[0] == '\\0' || isspace ((int) line[0])) {")
	w.Writefln("\t\tfprintf (stderr, \"parse_%s_line: empty or whitespace-leading line\\n\");", s.Name)
	w.Writeln("\t\treturn -1;")
	w.Writeln("\t}")
	w.Writeln()
	w.Writeln("\tp = line;")
	for i, col := range s.Columns {
		w.Writeln("\t/* " + col.Name + " */")
		w.Writeln("\tpend = strchr (p, ',');")
		if i < len(s.Columns)-1 {
			w.Writeln("\tif (pend == NULL) {")
			w.Writefln("\t\tfprintf (stderr, \"parse_%s_line: missing token for %s\\n\");", s.Name, col.Name)
			w.Writeln("\t\treturn -1;")
			w.Writeln("\t}")
			w.Writeln("\t*pend = '\\0';")
		} else {
			w.Writeln("\tif (pend != NULL) {")
			w.Writefln("\t\tfprintf (stderr, \"parse_%s_line: surplus tokens after %s\\n\");", s.Name, col.Name)
			w.Writeln("\t\treturn -1;")
			w.Writeln("\t}")
		}
		writeColumnParse(w, col)
		if i < len(s.Columns)-1 {
			w.Writeln("\tp = pend + 1;")
		}
		w.Writeln()
	}
	w.Writeln("\treturn 0;")
	w.Writeln("}")
	w.Writeln()
}

func writeColumnParse(w *genemit.W, col genmodel.Column) {
	switch col.Kind {
	case genmodel.ColString:
		w.Writefln("\tr->%s = strdup (p);", col.Name)
	case genmodel.ColUUID:
		w.Writeln("\t{")
		w.Writeln("\t\tchar *src = p, *dst = r->" + col.Name + ";")
		w.Writeln("\t\tint n = 0;")
		w.Writeln("\t\tfor (; *src && n < 32; src++) {")
		w.Writeln("\t\t\tif (*src == '-') continue;")
		w.Writeln("\t\t\t*dst++ = *src;")
		w.Writeln("\t\t\tn++;")
		w.Writeln("\t\t}")
		w.Writeln("\t}")
	case genmodel.ColBytes:
		w.Writeln("\tif (sscanf (p, \"%\" SCNu64, &r->" + col.Name + ") != 1) {")
		w.Writeln("\t\tfprintf (stderr, \"failed to parse size\\n\");")
		w.Writeln("\t\treturn -1;")
		w.Writeln("\t}")
	case genmodel.ColInt:
		w.Writeln("\tif (sscanf (p, \"%\" SCNi64, &r->" + col.Name + ") != 1) {")
		w.Writeln("\t\tfprintf (stderr, \"failed to parse integer\\n\");")
		w.Writeln("\t\treturn -1;")
		w.Writeln("\t}")
	case genmodel.ColOptPercent:
		w.Writeln("\tif (p[0] == '\\0')")
		w.Writeln("\t\tr->" + col.Name + " = -1;")
		w.Writeln("\telse if (sscanf (p, \"%f\", &r->" + col.Name + ") != 1) {")
		w.Writeln("\t\tfprintf (stderr, \"failed to parse percentage\\n\");")
		w.Writeln("\t\treturn -1;")
		w.Writeln("\t}")
	default:
		panic("genbackend: unreachable column kind")
	}
}

// writeListDriver emits the top-level routine that runs `/sbin/lvm <kind>s`
// and tokenizes each line into a freshly grown slot.
func writeListDriver(w *genemit.W, s genmodel.RecordSchema) {
	typeName := "guestfs_lvm_int_" + s.Name
	w.Writefln("int do_%ss (guestfs_lvm_int_%s_list *ret)", s.Name, s.Name)
	w.Writeln("{")
	w.Writeln("\tchar *out, *err;")
	w.Writeln("\tchar *p, *pend;")
	w.Writeln("\tint r;")
	w.Writeln()
	w.Writefln("\tr = command (&out, &err, \"/sbin/lvm\", \"%ss\", \"--unbuffered\", \"--noheadings\",", s.Name)
	w.Writeln("\t\t     \"--nosuffix\", \"--separator\", \",\", \"--units\", \"b\",")
	w.Writefln("\t\t     \"-o\", \"%s\", NULL);", lvmColumnList(s))
	w.Writeln("\tif (r == -1) {")
	w.Writefln("\t\treply_with_error (\"/sbin/lvm %ss: %%s\", err);", s.Name)
	w.Writeln("\t\tfree (out); free (err);")
	w.Writeln("\t\treturn -1;")
	w.Writeln("\t}")
	w.Writeln("\tfree (err);")
	w.Writeln()
	w.Writeln("\tret->guestfs_lvm_int_" + s.Name + "_list_len = 0;")
	w.Writeln("\tret->guestfs_lvm_int_" + s.Name + "_list_val = NULL;")
	w.Writeln()
	w.Writeln("\tp = out;")
	w.Writeln("\twhile (p != NULL && *p) {")
	w.Writeln("\t\tpend = strchr (p, '\\n');")
	w.Writeln("\t\tif (pend) *pend = '\\0';")
	w.Writeln()
	w.Writeln("\t\twhile (*p && isspace ((int) *p))")
	w.Writeln("\t\t\tp++;")
	w.Writeln()
	w.Writeln("\t\tif (*p == '\\0') {")
	w.Writeln("\t\t\tp = pend ? pend + 1 : NULL;")
	w.Writeln("\t\t\tcontinue;")
	w.Writeln("\t\t}")
	w.Writeln()
	w.Writeln("\t\tret->guestfs_lvm_int_" + s.Name + "_list_val =")
	w.Writeln("\t\t\tsafe_realloc (NULL, ret->guestfs_lvm_int_" + s.Name + "_list_val,")
	w.Writeln("\t\t\t\t      sizeof (struct " + typeName + ") * (ret->guestfs_lvm_int_" + s.Name + "_list_len + 1));")
	w.Writeln("\t\tif (parse_" + s.Name + "_line (&ret->guestfs_lvm_int_" + s.Name + "_list_val[ret->guestfs_lvm_int_" + s.Name + "_list_len], p) == -1) {")
	w.Writeln("\t\t\tfree (out);")
	w.Writeln("\t\t\treturn -1;")
	w.Writeln("\t\t}")
	w.Writeln("\t\tret->guestfs_lvm_int_" + s.Name + "_list_len++;")
	w.Writeln()
	w.Writeln("\t\tp = pend ? pend + 1 : NULL;")
	w.Writeln("\t}")
	w.Writeln()
	w.Writeln("\tfree (out);")
	w.Writeln("\treturn 0;")
	w.Writeln("}")
	w.Writeln()
}

func lvmColumnList(s genmodel.RecordSchema) string {
	out := ""
	for i, col := range s.Columns {
		if i > 0 {
			out += ","
		}
		out += col.Name
	}
	return out
}
