// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"sort"

	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// DocsShell emits the shell manual page: one section per call not marked
// not-in-shell, alphabetical by shell name, with C<guestfs_...> markup
// rewritten to C<...>.
func DocsShell(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentHash, genemit.LicensePermissive)

	calls := make([]genmodel.Call, 0, len(m.Calls))
	for _, c := range m.Calls {
		if !c.Flags.NotInShell {
			calls = append(calls, c)
		}
	}
	sort.Slice(calls, func(i, j int) bool {
		return genemit.ShellName(calls[i]) < genemit.ShellName(calls[j])
	})

	for _, c := range calls {
		w.Writefln("=head2 %s", genemit.ShellName(c))
		w.Writeln()
		w.Writeln(" " + synopsis(c))
		w.Writeln()
		w.Writeln(genemit.RewriteCallRefs(c.LongDesc))
		w.Writeln()
	}
}
