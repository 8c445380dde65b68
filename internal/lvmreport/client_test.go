// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package lvmreport

import (
	"context"
	"fmt"
	"testing"

	"k8s.io/utils/exec"
	testingexec "k8s.io/utils/exec/testing"
)

func TestClientListPhysicalVolumes(t *testing.T) {
	stdout := FakeLines(
		fmt.Sprintf("pv0,%s,vg0,1073741824,536870912,255,127", FakeUUID()),
		fmt.Sprintf("pv1,%s,vg0,2147483648,0,511,511", FakeUUID()),
	)

	client, fake := NewFakeClient(func() ([]byte, []byte, error) {
		return stdout, nil, nil
	})

	pvs, err := client.ListPhysicalVolumes(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pvs) != 2 {
		t.Fatalf("got %d physical volumes, want 2", len(pvs))
	}
	if pvs[0].Name != "pv0" || pvs[1].Name != "pv1" {
		t.Errorf("unexpected names: %q, %q", pvs[0].Name, pvs[1].Name)
	}

	if fake.CommandCalls != 1 {
		t.Errorf("CommandCalls = %d, want 1", fake.CommandCalls)
	}
}

func TestClientListPhysicalVolumesWithNameFilter(t *testing.T) {
	stdout := FakeLines("pv0,abcdef0123456789abcdef0123456789,vg0,1073741824,536870912,255,127")

	var seenArgs []string
	fake := &testingexec.FakeExec{
		CommandScript: []testingexec.FakeCommandAction{
			func(cmd string, args ...string) exec.Cmd {
				seenArgs = args
				fakeCmd := &testingexec.FakeCmd{
					RunScript: []testingexec.FakeAction{func() ([]byte, []byte, error) {
						return stdout, nil, nil
					}},
				}
				return testingexec.InitFakeCmd(fakeCmd, cmd, args...)
			},
		},
	}
	client := NewClient(WithExecInterface(fake))

	_, err := client.ListPhysicalVolumes(context.Background(), &ListPVOptions{Names: []string{"pv0"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, a := range seenArgs {
		if a == "pv0" {
			found = true
		}
	}
	if !found {
		t.Errorf("command args %v do not include the name filter", seenArgs)
	}
}

func TestClientListPhysicalVolumesCommandFailure(t *testing.T) {
	client, _ := NewFakeClient(func() ([]byte, []byte, error) {
		return nil, []byte("device not found"), errFakeExit{}
	})

	if _, err := client.ListPhysicalVolumes(context.Background(), nil); err == nil {
		t.Fatal("expected an error when the underlying command fails")
	}
}

func TestClientListPhysicalVolumesSkipsBlankLines(t *testing.T) {
	stdout := []byte("\n  \npv0,abcdef0123456789abcdef0123456789,vg0,1073741824,536870912,255,127\n\n")

	client, _ := NewFakeClient(func() ([]byte, []byte, error) {
		return stdout, nil, nil
	})

	pvs, err := client.ListPhysicalVolumes(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pvs) != 1 {
		t.Fatalf("got %d physical volumes, want 1", len(pvs))
	}
}

type errFakeExit struct{}

func (errFakeExit) Error() string { return "exit status 5" }
