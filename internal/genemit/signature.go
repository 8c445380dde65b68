// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genemit

import (
	"fmt"
	"strings"

	"github.com/ashgti/diskapigen/internal/genmodel"
)

// ArgCType maps an argument kind onto the C type used for it in every
// C-flavoured prototype: strings and optional strings are immutable text
// pointers; bool and int are plain signed integers.
func ArgCType(k genmodel.ArgKind) string {
	switch k {
	case genmodel.ArgString, genmodel.ArgOptString:
		return "const char *"
	case genmodel.ArgBool, genmodel.ArgInt:
		return "int "
	default:
		panic("genemit: unreachable arg kind")
	}
}

// ReturnCType maps a return kind onto the C type used to hold it. This is
// the one place the client/daemon flavour split happens: int_and_bool and
// the three list kinds render as one externally-visible struct in client
// headers, and as a different wire struct inside the daemon build.
func ReturnCType(ret genmodel.Return, forDaemon bool) string {
	switch ret.Kind {
	case genmodel.RetErr, genmodel.RetInt, genmodel.RetBool:
		return "int"
	case genmodel.RetConstString:
		return "const char *"
	case genmodel.RetString:
		return "char *"
	case genmodel.RetStringList:
		return "char **"
	case genmodel.RetIntBool:
		if forDaemon {
			return "guestfs_int_bool_ret *"
		}
		return "struct guestfs_int_bool *"
	case genmodel.RetPVList:
		if forDaemon {
			return "guestfs_lvm_int_pv_list *"
		}
		return "struct guestfs_lvm_pv_list *"
	case genmodel.RetVGList:
		if forDaemon {
			return "guestfs_lvm_int_vg_list *"
		}
		return "struct guestfs_lvm_vg_list *"
	case genmodel.RetLVList:
		if forDaemon {
			return "guestfs_lvm_int_lv_list *"
		}
		return "struct guestfs_lvm_lv_list *"
	default:
		panic("genemit: unreachable return kind")
	}
}

// ErrorMarker is the fixed sentinel a return kind uses to signal failure:
// -1 for the scalar kinds, NULL for every pointer kind.
func ErrorMarker(kind genmodel.ReturnKind) string {
	switch kind {
	case genmodel.RetErr, genmodel.RetInt, genmodel.RetBool:
		return "-1"
	default:
		return "NULL"
	}
}

// cParams renders the C parameter list for c's argument vector, optionally
// prefixed by an opaque handle parameter. broken lays the list out one
// parameter per line instead of packed on one line; this is used for the
// client-side implementation, never for the one-line header prototypes.
func cParams(handleParam string, args []genmodel.Arg, broken bool) string {
	params := make([]string, 0, len(args)+1)
	if handleParam != "" {
		params = append(params, handleParam)
	}
	for _, a := range args {
		params = append(params, ArgCType(a.Kind)+a.Name)
	}
	if len(params) == 0 {
		params = append(params, "void")
	}
	if !broken {
		return strings.Join(params, ", ")
	}
	return "\n\t" + strings.Join(params, ",\n\t")
}

// ClientExternDecl renders the single-line, handle-taking prototype used in
// the public client action header, e.g.
//
//	extern int guestfs_touch (guestfs_h *handle, const char *path);
func ClientExternDecl(c genmodel.Call) string {
	return fmt.Sprintf("extern %s guestfs_%s (%s);",
		ReturnCType(c.Return, false), c.Name, cParams("guestfs_h *handle", c.Args, false))
}

// ClientDefinitionSignature renders the opening line of the client stub's
// definition (no "extern", no trailing semicolon, ready for a following
// "{"). Argument lists longer than two entries are broken at commas, which
// is how the teacher's own multi-argument stubs read.
func ClientDefinitionSignature(c genmodel.Call) string {
	broken := len(c.Args) > 2
	return fmt.Sprintf("%s guestfs_%s (%s)",
		ReturnCType(c.Return, false), c.Name, cParams("guestfs_h *handle", c.Args, broken))
}

// DaemonStubDecl renders the single-line prototype in the do_<name>
// namespace used by the daemon action header. Daemon stubs never take the
// client's opaque handle; they run inside the daemon process.
func DaemonStubDecl(c genmodel.Call) string {
	return fmt.Sprintf("extern %s do_%s (%s);",
		ReturnCType(c.Return, true), c.Name, cParams("", c.Args, false))
}

// ShellName is the hyphenated, shell-facing form of a call's public name.
func ShellName(c genmodel.Call) string {
	return strings.ReplaceAll(c.Name, "_", "-")
}

// ShellActionName is the client entry point the shell runner invokes for c:
// the override named by the shell-action flag if one is set, or
// guestfs_<name> otherwise.
func ShellActionName(c genmodel.Call) string {
	if c.Flags.ShellAction != nil {
		return *c.Flags.ShellAction
	}
	return "guestfs_" + c.Name
}

// RewriteCallRefs rewrites documentation markup of the form C<guestfs_NAME>
// to C<NAME>, as done when projecting the client API manual's prose into
// the shell manual page.
func RewriteCallRefs(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))
	const marker = "C<guestfs_"
	for {
		i := strings.Index(doc, marker)
		if i < 0 {
			b.WriteString(doc)
			return b.String()
		}
		b.WriteString(doc[:i])
		b.WriteString("C<")
		doc = doc[i+len(marker):]
	}
}
