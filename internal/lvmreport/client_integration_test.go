// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package lvmreport

import (
	"context"
	"os/exec"
	"os/user"
	"testing"

	"github.com/ashgti/diskapigen/internal/lvmreport/testdevice"
)

// TestClientAgainstRealLVM exercises ListPhysicalVolumes against an actual
// pvcreate'd loopback device instead of a fake exec.Interface. It needs
// root (to attach the loopback device) and a working lvm2 install, so it
// skips itself outside an environment that has both.
func TestClientAgainstRealLVM(t *testing.T) {
	if u, err := user.Current(); err != nil || u.Uid != "0" {
		t.Skip("skipping test; must be root to create loopback device")
	}
	if _, err := exec.LookPath("/sbin/lvm"); err != nil {
		t.Skip("skipping test; /sbin/lvm not installed")
	}

	dev, cleanup, err := testdevice.NewSized(256 << 20)
	if err != nil {
		t.Fatalf("failed to create loopback device: %v", err)
	}
	defer cleanup()

	if out, err := exec.Command("/sbin/lvm", "pvcreate", "--yes", dev).CombinedOutput(); err != nil {
		t.Fatalf("pvcreate failed: %v: %s", err, out)
	}
	defer exec.Command("/sbin/lvm", "pvremove", "--yes", dev).Run() //nolint:errcheck

	client := NewClient()
	pvs, err := client.ListPhysicalVolumes(context.Background(), &ListPVOptions{Names: []string{dev}})
	if err != nil {
		t.Fatalf("ListPhysicalVolumes failed: %v", err)
	}
	if len(pvs) != 1 {
		t.Fatalf("got %d physical volumes, want 1", len(pvs))
	}
	if pvs[0].Name != dev {
		t.Errorf("Name = %q, want %q", pvs[0].Name, dev)
	}
	if pvs[0].Size == 0 {
		t.Error("Size = 0, want a positive size")
	}
}
