// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"sort"
	"strings"

	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// Shell emits the interactive command dispatcher in one file: the command
// table, a per-command help body, a per-command argument-coercing runner,
// and the top-level dispatcher that ties them together. Calls flagged
// not-in-shell are excluded from the table and the dispatcher but from
// nothing else.
func Shell(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicenseCopyleft)

	shellCalls := make([]genmodel.Call, 0, len(m.Calls))
	for _, c := range m.Calls {
		if !c.Flags.NotInShell {
			shellCalls = append(shellCalls, c)
		}
	}
	sort.Slice(shellCalls, func(i, j int) bool {
		return genemit.ShellName(shellCalls[i]) < genemit.ShellName(shellCalls[j])
	})

	writeCommandTable(w, shellCalls)
	for _, c := range shellCalls {
		writeHelp(w, c)
	}
	writeHelpDispatcher(w, shellCalls)
	for _, c := range shellCalls {
		writeRunner(w, c)
	}
	writeDispatcher(w, shellCalls)
}

func writeCommandTable(w *genemit.W, calls []genmodel.Call) {
	w.Writeln("static const struct shell_cmd {")
	w.Writeln("\tconst char *name;")
	w.Writeln("\tconst char *shortdesc;")
	w.Writeln("} shell_cmds[] = {")
	for _, c := range calls {
		w.Writefln("\t{ \"%s\", \"%s\" },", genemit.ShellName(c), c.ShortDesc)
	}
	w.Writeln("};")
	w.Writeln()
}

func writeHelp(w *genemit.W, c genmodel.Call) {
	w.Writefln("static void help_%s (void)", c.Name)
	w.Writeln("{")
	w.Writefln("\tprintf (\"%s\\n\\n\");", synopsis(c))
	for _, line := range strings.Split(genemit.RewriteCallRefs(c.LongDesc), "\n") {
		w.Writefln("\tprintf (\"%s\\n\");", strings.ReplaceAll(line, "\"", "\\\""))
	}
	if c.Flags.ProtocolLimitWarning {
		w.Writeln("\tprintf (\"\\nNB: this call transfers data and is subject to the protocol's 2-4 MiB message ceiling.\\n\");")
	}
	if c.Flags.ShellAlias != nil {
		w.Writefln("\tprintf (\"\\nThis command can also be called '%s'.\\n\");", *c.Flags.ShellAlias)
	}
	w.Writeln("}")
	w.Writeln()
}

// writeHelpDispatcher emits display_command, which matches a token against
// a call's public name, hyphenated shell name, and alias (if any) exactly
// the way writeDispatcher matches run_command's, and calls the matching
// help_<name>. Without this every help_<name> would be unreachable.
func writeHelpDispatcher(w *genemit.W, calls []genmodel.Call) {
	w.Writeln("void display_command (const char *cmd)")
	w.Writeln("{")
	for _, c := range calls {
		if strs := shellMatchNames(c); len(strs) > 0 {
			w.Writef("\tif (")
			for i, n := range strs {
				if i > 0 {
					w.Write(" || ")
				}
				w.Writef("strcasecmp (cmd, \"%s\") == 0", n)
			}
			w.Writeln(") {")
			w.Writefln("\t\thelp_%s ();", c.Name)
			w.Writeln("\t\treturn;")
			w.Writeln("\t}")
		}
	}
	w.Writeln()
	w.Writeln("\tfprintf (stderr, \"%s: unknown command\\n\", cmd);")
	w.Writeln("}")
	w.Writeln()
}

// synopsis renders "<name> <arg1> <arg2> ...", with boolean placeholders
// spelled out as true|false.
func synopsis(c genmodel.Call) string {
	out := genemit.ShellName(c)
	for _, a := range c.Args {
		out += " "
		switch a.Kind {
		case genmodel.ArgBool:
			out += "<true|false>"
		default:
			out += "<" + a.Name + ">"
		}
	}
	return out
}

func writeRunner(w *genemit.W, c genmodel.Call) {
	w.Writefln("static int run_%s (int argc, char *argv[])", c.Name)
	w.Writeln("{")
	w.Writefln("\tif (argc != %d) {", len(c.Args))
	w.Writefln("\t\tfprintf (stderr, \"%%s: wrong number of arguments, see 'help %s'\\n\", argv[0]);", genemit.ShellName(c))
	w.Writeln("\t\treturn -1;")
	w.Writeln("\t}")
	w.Writeln()
	for i, a := range c.Args {
		writeArgCoercion(w, a, i)
	}
	w.Writeln()
	writeRunnerCall(w, c)
	w.Writeln("}")
	w.Writeln()
}

func writeArgCoercion(w *genemit.W, a genmodel.Arg, idx int) {
	switch a.Kind {
	case genmodel.ArgString:
		w.Writefln("\tconst char *%s = argv[%d];", a.Name, idx+1)
	case genmodel.ArgOptString:
		w.Writefln("\tconst char *%s = argv[%d][0] == '\\0' ? NULL : argv[%d];", a.Name, idx+1, idx+1)
	case genmodel.ArgBool:
		w.Writefln("\tint %s = shell_parse_bool (argv[%d]);", a.Name, idx+1)
	case genmodel.ArgInt:
		w.Writefln("\tint %s = atoi (argv[%d]);", a.Name, idx+1)
	}
}

func writeRunnerCall(w *genemit.W, c genmodel.Call) {
	action := genemit.ShellActionName(c)
	callArgs := "handle"
	for _, a := range c.Args {
		callArgs += ", " + a.Name
	}
	switch c.Return.Kind {
	case genmodel.RetErr:
		w.Writefln("\tif (%s (%s) == -1)", action, callArgs)
		w.Writeln("\t\treturn -1;")
		w.Writeln("\treturn 0;")
	case genmodel.RetBool:
		w.Writefln("\t{ int r = %s (%s); if (r == -1) return -1; printf (\"%%s\\n\", r ? \"true\" : \"false\"); return 0; }", action, callArgs)
	case genmodel.RetInt:
		w.Writefln("\t{ int r = %s (%s); if (r == -1) return -1; printf (\"%%d\\n\", r); return 0; }", action, callArgs)
	case genmodel.RetConstString, genmodel.RetString:
		w.Writefln("\t{ char *r = %s (%s); if (r == NULL) return -1; printf (\"%%s\\n\", r); return 0; }", action, callArgs)
	case genmodel.RetStringList:
		w.Writefln("\t{ char **r = %s (%s); size_t i; if (r == NULL) return -1;", action, callArgs)
		w.Writeln("\t  for (i = 0; r[i] != NULL; i++) printf (\"%s\\n\", r[i]);")
		w.Writeln("\t  return 0; }")
	case genmodel.RetIntBool:
		w.Writefln("\t{ struct guestfs_int_bool *r = %s (%s); if (r == NULL) return -1;", action, callArgs)
		w.Writeln("\t  printf (\"%d %s\\n\", r->i, r->b ? \"true\" : \"false\");")
		w.Writeln("\t  return 0; }")
	case genmodel.RetPVList:
		writeListPrint(w, action, callArgs, "pv")
	case genmodel.RetVGList:
		writeListPrint(w, action, callArgs, "vg")
	case genmodel.RetLVList:
		writeListPrint(w, action, callArgs, "lv")
	default:
		panic("genbackend: unreachable return kind")
	}
}

// writeListPrint prints one line per record via a kind-specific field
// printer (shell_print_pv/vg/lv) that renders each column per its kind --
// opt_percent as an empty field for -1 or "N %" otherwise, uuid with its
// dashes reinstated for display, everything else verbatim.
func writeListPrint(w *genemit.W, action, callArgs, kind string) {
	w.Writefln("\t{ struct guestfs_lvm_%s_list *r = %s (%s); size_t i; if (r == NULL) return -1;", kind, action, callArgs)
	w.Writeln("\t  for (i = 0; i < r->len; i++) shell_print_" + kind + " (&r->val[i]);")
	w.Writeln("\t  return 0; }")
}

func writeDispatcher(w *genemit.W, calls []genmodel.Call) {
	w.Writeln("int run_command (guestfs_h *handle, int argc, char *argv[])")
	w.Writeln("{")
	w.Writeln("\tconst char *cmd;")
	w.Writeln()
	w.Writeln("\tif (argc == 0) {")
	w.Writeln("\t\tfprintf (stderr, \"run_command: no command given\\n\");")
	w.Writeln("\t\treturn -1;")
	w.Writeln("\t}")
	w.Writeln("\tcmd = argv[0];")
	w.Writeln()
	for _, c := range calls {
		if strs := shellMatchNames(c); len(strs) > 0 {
			w.Writef("\tif (")
			for i, n := range strs {
				if i > 0 {
					w.Write(" || ")
				}
				w.Writef("strcasecmp (cmd, \"%s\") == 0", n)
			}
			w.Writeln(")")
			w.Writefln("\t\treturn run_%s (argc, argv);", c.Name)
		}
	}
	w.Writeln()
	w.Writeln("\tfprintf (stderr, \"%s: unknown command\\n\", cmd);")
	w.Writeln("\treturn -1;")
	w.Writeln("}")
}

func shellMatchNames(c genmodel.Call) []string {
	names := []string{genemit.ShellName(c), c.Name}
	if c.Flags.ShellAlias != nil {
		names = append(names, *c.Flags.ShellAlias)
	}
	return names
}
