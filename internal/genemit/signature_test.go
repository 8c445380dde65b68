// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genemit_test

import (
	"testing"

	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

func TestClientExternDeclTouch(t *testing.T) {
	c := genmodel.Call{
		Name:            "touch",
		Args:            []genmodel.Arg{{Name: "path", Kind: genmodel.ArgString}},
		Return:          genmodel.Return{Kind: genmodel.RetErr},
		ProcedureNumber: 3,
	}
	got := genemit.ClientExternDecl(c)
	want := "extern int guestfs_touch (guestfs_h *handle, const char *path);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClientExternDeclZeroArgs(t *testing.T) {
	c := genmodel.Call{Name: "sync", Return: genmodel.Return{Kind: genmodel.RetErr}, ProcedureNumber: 2}
	got := genemit.ClientExternDecl(c)
	want := "extern int guestfs_sync (guestfs_h *handle);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDaemonStubDeclZeroArgsEmitsVoid(t *testing.T) {
	c := genmodel.Call{Name: "sync", Return: genmodel.Return{Kind: genmodel.RetErr}, ProcedureNumber: 2}
	got := genemit.DaemonStubDecl(c)
	want := "extern int do_sync (void);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReturnCTypeFlavourSplit(t *testing.T) {
	ret := genmodel.Return{Kind: genmodel.RetPVList, FieldName: "physvols"}
	if got := genemit.ReturnCType(ret, false); got != "struct guestfs_lvm_pv_list *" {
		t.Fatalf("client flavour: got %q", got)
	}
	if got := genemit.ReturnCType(ret, true); got != "guestfs_lvm_int_pv_list *" {
		t.Fatalf("daemon flavour: got %q", got)
	}
}

func TestRewriteCallRefs(t *testing.T) {
	got := genemit.RewriteCallRefs("See C<guestfs_cat> and C<guestfs_touch> for details.")
	want := "See C<cat> and C<touch> for details."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestShellName(t *testing.T) {
	c := genmodel.Call{Name: "is_file"}
	if got := genemit.ShellName(c); got != "is-file" {
		t.Fatalf("got %q", got)
	}
}
