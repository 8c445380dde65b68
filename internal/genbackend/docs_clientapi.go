// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"sort"

	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// DocsClientAPI emits the client API manual page: for each call,
// alphabetical, its prototype, long description, and a return-kind
// determined ownership clause. Protocol-limit-flagged calls get the fixed
// transfer-ceiling notice appended.
func DocsClientAPI(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentHash, genemit.LicensePermissive)

	calls := append([]genmodel.Call(nil), m.Calls...)
	sort.Slice(calls, func(i, j int) bool { return calls[i].Name < calls[j].Name })

	for _, c := range calls {
		w.Writefln("=head2 guestfs_%s", c.Name)
		w.Writeln()
		w.Writeln(" " + genemit.ClientExternDecl(c))
		w.Writeln()
		w.Writeln(c.LongDesc)
		w.Writeln()
		w.Writeln(ownershipClause(c.Return.Kind))
		if c.Flags.ProtocolLimitWarning {
			w.Writeln()
			w.Writeln("This call transfers data and is subject to the protocol's 2-4 MiB message size ceiling; use a file-transfer call instead for larger content.")
		}
		w.Writeln()
	}
}

func ownershipClause(k genmodel.ReturnKind) string {
	switch k {
	case genmodel.RetErr:
		return "Returns 0 on success or -1 on error."
	case genmodel.RetInt:
		return "Returns a non-negative value on success, or -1 on error."
	case genmodel.RetBool:
		return "Returns a boolean on success, or -1 on error."
	case genmodel.RetConstString:
		return "Returns a string owned by the handle, or NULL on error. The caller must not free it."
	case genmodel.RetString:
		return "Returns a string that the caller must free, or NULL on error."
	case genmodel.RetStringList:
		return "Returns a NULL-terminated array of strings that the caller must free, or NULL on error."
	case genmodel.RetIntBool:
		return "Returns a C<struct guestfs_int_bool> that the caller must free, or NULL on error."
	case genmodel.RetPVList:
		return "Returns a C<struct guestfs_lvm_pv_list> that the caller must free with C<guestfs_free_lvm_pv_list>, or NULL on error."
	case genmodel.RetVGList:
		return "Returns a C<struct guestfs_lvm_vg_list> that the caller must free with C<guestfs_free_lvm_vg_list>, or NULL on error."
	case genmodel.RetLVList:
		return "Returns a C<struct guestfs_lvm_lv_list> that the caller must free with C<guestfs_free_lvm_lv_list>, or NULL on error."
	default:
		panic("genbackend: unreachable return kind")
	}
}
