// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// BindingAInterface emits the statically typed host binding's declaration
// module: one value binding per call, handle first, arguments and return
// type mapped per the host-language mapping used throughout this backend.
func BindingAInterface(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentParenStar, genemit.LicensePermissive)

	w.Writeln("type t")
	w.Writeln()
	for _, c := range m.Calls {
		w.Writefln("val %s : t -> %s -> %s", c.Name, mlArgTypes(c.Args), mlReturnType(c.Return.Kind))
		w.Writeln("(** " + c.ShortDesc + " *)")
		w.Writeln()
	}
}

// BindingAImplementation emits the implementation module: each binding is a
// direct external call into the C glue function of the same name.
func BindingAImplementation(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentParenStar, genemit.LicensePermissive)

	w.Writeln("type t")
	w.Writeln()
	for _, c := range m.Calls {
		w.Writefln("external %s : t -> %s -> %s = \"ml_guestfs_%s\"", c.Name, mlArgTypes(c.Args), mlReturnType(c.Return.Kind), c.Name)
	}
}

// BindingAGlue emits the C glue module that marshals between the host
// language's runtime values and the client API: acquire arguments, release
// the runtime around the blocking call, reacquire it, raise a host
// exception on failure, and build the typed return value.
func BindingAGlue(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicensePermissive)

	for _, c := range m.Calls {
		writeBindingAGlueFunc(w, c)
	}
}

func writeBindingAGlueFunc(w *genemit.W, c genmodel.Call) {
	w.Writefln("value ml_guestfs_%s (value mlh%s)", c.Name, mlGlueParams(c.Args))
	w.Writeln("{")
	w.Writeln("\tCAMLparam1 (mlh);")
	w.Writeln("\tCAMLlocal1 (rv);")
	w.Writeln("\tguestfs_h *handle = Guestfs_val (mlh);")
	w.Writeln()
	for _, a := range c.Args {
		writeBindingAArgExtract(w, a)
	}
	w.Writeln()
	w.Writeln("\tcaml_enter_blocking_section ();")
	writeBindingACall(w, c)
	w.Writeln("\tcaml_leave_blocking_section ();")
	w.Writeln()
	writeBindingAErrorCheck(w, c)
	writeBindingABuildReturn(w, c)
	w.Writeln("\tCAMLreturn (rv);")
	w.Writeln("}")
	w.Writeln()
}

func mlGlueParams(args []genmodel.Arg) string {
	out := ""
	for _, a := range args {
		out += ", value ml" + a.Name
	}
	return out
}

func writeBindingAArgExtract(w *genemit.W, a genmodel.Arg) {
	switch a.Kind {
	case genmodel.ArgString:
		w.Writefln("\tconst char *%s = String_val (ml%s);", a.Name, a.Name)
	case genmodel.ArgOptString:
		w.Writefln("\tconst char *%s = mlh_option_is_some (ml%s) ? String_val (mlh_option_get (ml%s)) : NULL;", a.Name, a.Name, a.Name)
	case genmodel.ArgBool:
		w.Writefln("\tint %s = Bool_val (ml%s);", a.Name, a.Name)
	case genmodel.ArgInt:
		w.Writefln("\tint %s = Int_val (ml%s);", a.Name, a.Name)
	}
}

func writeBindingACall(w *genemit.W, c genmodel.Call) {
	ret := "int r"
	switch c.Return.Kind {
	case genmodel.RetErr, genmodel.RetInt, genmodel.RetBool:
	case genmodel.RetConstString:
		ret = "const char *r"
	case genmodel.RetString:
		ret = "char *r"
	case genmodel.RetStringList:
		ret = "char **r"
	case genmodel.RetIntBool:
		ret = "struct guestfs_int_bool *r"
	case genmodel.RetPVList:
		ret = "struct guestfs_lvm_pv_list *r"
	case genmodel.RetVGList:
		ret = "struct guestfs_lvm_vg_list *r"
	case genmodel.RetLVList:
		ret = "struct guestfs_lvm_lv_list *r"
	}
	callArgs := "handle"
	for _, a := range c.Args {
		callArgs += ", " + a.Name
	}
	w.Writefln("\t%s = guestfs_%s (%s);", ret, c.Name, callArgs)
}

func writeBindingAErrorCheck(w *genemit.W, c genmodel.Call) {
	w.Writefln("\tif (r == %s) {", genemit.ErrorMarker(c.Return.Kind))
	w.Writeln("\t\tcaml_raise_with_string (*caml_named_value (\"Guestfs.Error\"), guestfs_last_error (handle));")
	w.Writeln("\t}")
}

func writeBindingABuildReturn(w *genemit.W, c genmodel.Call) {
	switch c.Return.Kind {
	case genmodel.RetErr:
		w.Writeln("\trv = Val_unit;")
	case genmodel.RetInt:
		w.Writeln("\trv = Val_int (r);")
	case genmodel.RetBool:
		w.Writeln("\trv = Val_bool (r);")
	case genmodel.RetConstString, genmodel.RetString:
		w.Writeln("\trv = caml_copy_string (r);")
		if c.Return.Kind == genmodel.RetString {
			w.Writeln("\tfree (r);")
		}
	case genmodel.RetStringList:
		w.Writeln("\trv = mlh_build_string_array (r);")
		w.Writeln("\tmlh_free_string_array (r);")
	case genmodel.RetIntBool:
		w.Writeln("\trv = mlh_build_int_bool (r);")
		w.Writeln("\tfree (r);")
	case genmodel.RetPVList:
		w.Writeln("\trv = mlh_build_lvm_pv_list (r);")
		w.Writeln("\tguestfs_free_lvm_pv_list (r);")
	case genmodel.RetVGList:
		w.Writeln("\trv = mlh_build_lvm_vg_list (r);")
		w.Writeln("\tguestfs_free_lvm_vg_list (r);")
	case genmodel.RetLVList:
		w.Writeln("\trv = mlh_build_lvm_lv_list (r);")
		w.Writeln("\tguestfs_free_lvm_lv_list (r);")
	default:
		panic("genbackend: unreachable return kind")
	}
}

func mlArgTypes(args []genmodel.Arg) string {
	if len(args) == 0 {
		return "unit"
	}
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " -> "
		}
		out += mlArgType(a.Kind)
	}
	return out
}

func mlArgType(k genmodel.ArgKind) string {
	switch k {
	case genmodel.ArgString:
		return "string"
	case genmodel.ArgOptString:
		return "string option"
	case genmodel.ArgBool:
		return "bool"
	case genmodel.ArgInt:
		return "int"
	default:
		panic("genbackend: unreachable arg kind")
	}
}

func mlReturnType(k genmodel.ReturnKind) string {
	switch k {
	case genmodel.RetErr:
		return "unit"
	case genmodel.RetInt:
		return "int"
	case genmodel.RetBool:
		return "bool"
	case genmodel.RetConstString, genmodel.RetString:
		return "string"
	case genmodel.RetStringList:
		return "string array"
	case genmodel.RetIntBool:
		return "int * bool"
	case genmodel.RetPVList:
		return "lvm_pv array"
	case genmodel.RetVGList:
		return "lvm_vg array"
	case genmodel.RetLVList:
		return "lvm_lv array"
	default:
		panic("genbackend: unreachable return kind")
	}
}
