// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// BindingBStub emits the dynamically typed host binding's extension stub
// module: one stack-based stub per call that validates/extracts arguments,
// calls the client API, raises a host exception on failure, and pushes the
// typed result(s) onto the host stack.
func BindingBStub(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicensePermissive)

	for _, c := range m.Calls {
		writeBindingBStubFunc(w, c)
	}
	writeBindingBRegistrationTable(w, m.Calls)
}

func writeBindingBStubFunc(w *genemit.W, c genmodel.Call) {
	w.Writefln("static int hl_%s (hl_state *hl)", c.Name)
	w.Writeln("{")
	w.Writeln("\tguestfs_h *handle = hl_unwrap_handle (hl, 1);")
	for i, a := range c.Args {
		writeBindingBArgExtract(w, a, i+2)
	}
	w.Writeln()
	callArgs := "handle"
	for _, a := range c.Args {
		callArgs += ", " + a.Name
	}
	retType := genemit.ReturnCType(c.Return, false)
	w.Writefln("\t%s r = guestfs_%s (%s);", retType, c.Name, callArgs)
	w.Writefln("\tif (r == %s) {", genemit.ErrorMarker(c.Return.Kind))
	w.Writeln("\t\treturn hl_raise_error (hl, guestfs_last_error (handle));")
	w.Writeln("\t}")
	w.Writeln()
	writeBindingBPushResult(w, c)
	w.Writeln("}")
	w.Writeln()
}

func writeBindingBArgExtract(w *genemit.W, a genmodel.Arg, stackPos int) {
	switch a.Kind {
	case genmodel.ArgString:
		w.Writefln("\tconst char *%s = hl_check_string (hl, %d);", a.Name, stackPos)
	case genmodel.ArgOptString:
		w.Writefln("\tconst char *%s = hl_opt_string (hl, %d);", a.Name, stackPos)
	case genmodel.ArgBool:
		w.Writefln("\tint %s = hl_check_bool (hl, %d);", a.Name, stackPos)
	case genmodel.ArgInt:
		w.Writefln("\tint %s = hl_check_int (hl, %d);", a.Name, stackPos)
	}
}

func writeBindingBPushResult(w *genemit.W, c genmodel.Call) {
	switch c.Return.Kind {
	case genmodel.RetErr:
		w.Writeln("\treturn 0;")
	case genmodel.RetInt:
		w.Writeln("\thl_push_int (hl, r);")
		w.Writeln("\treturn 1;")
	case genmodel.RetBool:
		w.Writeln("\thl_push_bool (hl, r);")
		w.Writeln("\treturn 1;")
	case genmodel.RetConstString:
		w.Writeln("\thl_push_string (hl, r);")
		w.Writeln("\treturn 1;")
	case genmodel.RetString:
		w.Writeln("\thl_push_string (hl, r);")
		w.Writeln("\tfree (r);")
		w.Writeln("\treturn 1;")
	case genmodel.RetStringList:
		w.Writeln("\thl_push_string_array (hl, r);")
		w.Writeln("\thl_free_string_array (r);")
		w.Writeln("\treturn 1;")
	case genmodel.RetIntBool:
		w.Writeln("\thl_push_int (hl, r->i);")
		w.Writeln("\thl_push_bool (hl, r->b);")
		w.Writeln("\tfree (r);")
		w.Writeln("\treturn 2;")
	case genmodel.RetPVList:
		w.Writeln("\thl_push_lvm_pv_list (hl, r);")
		w.Writeln("\tguestfs_free_lvm_pv_list (r);")
		w.Writeln("\treturn 1;")
	case genmodel.RetVGList:
		w.Writeln("\thl_push_lvm_vg_list (hl, r);")
		w.Writeln("\tguestfs_free_lvm_vg_list (r);")
		w.Writeln("\treturn 1;")
	case genmodel.RetLVList:
		w.Writeln("\thl_push_lvm_lv_list (hl, r);")
		w.Writeln("\tguestfs_free_lvm_lv_list (r);")
		w.Writeln("\treturn 1;")
	default:
		panic("genbackend: unreachable return kind")
	}
}

func writeBindingBRegistrationTable(w *genemit.W, calls []genmodel.Call) {
	w.Writeln("static const hl_function hl_functions[] = {")
	for _, c := range calls {
		w.Writefln("\t{ \"%s\", hl_%s },", c.Name, c.Name)
	}
	w.Writeln("\t{ NULL, NULL },")
	w.Writeln("};")
}

// BindingBDoc emits the documentation module enumerating each call's
// calling convention and description, for the dynamically typed host
// binding.
func BindingBDoc(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentHash, genemit.LicensePermissive)

	for _, c := range m.Calls {
		w.Writefln("=head2 %s", c.Name)
		w.Writeln()
		w.Writeln(" " + bindingBCallingConvention(c))
		w.Writeln()
		w.Writeln(c.ShortDesc)
		w.Writeln()
	}
}

func bindingBCallingConvention(c genmodel.Call) string {
	out := c.Name + "(handle"
	for _, a := range c.Args {
		out += ", " + a.Name
	}
	return out + ")"
}
