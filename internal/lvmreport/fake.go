// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package lvmreport

import (
	"strings"

	"github.com/google/uuid"
	"k8s.io/utils/exec"
	testingexec "k8s.io/utils/exec/testing"
)

// NewFakeClient builds a Client whose underlying lvm invocations are
// scripted rather than run against a real binary. Each entry in outputs is
// consumed, in order, by one call to Run; use it to stand in for a `pvs`,
// `vgs`, or `lvs` invocation without a host that actually has LVM
// installed.
func NewFakeClient(outputs ...testingexec.FakeAction) (*Client, *testingexec.FakeExec) {
	fake := &testingexec.FakeExec{
		CommandScript: make([]testingexec.FakeCommandAction, len(outputs)),
	}
	for i, action := range outputs {
		action := action
		fake.CommandScript[i] = func(cmd string, args ...string) exec.Cmd {
			fakeCmd := &testingexec.FakeCmd{
				RunScript: []testingexec.FakeAction{action},
			}
			return testingexec.InitFakeCmd(fakeCmd, cmd, args...)
		}
	}

	return NewClient(WithExecInterface(fake)), fake
}

// FakeLines joins lines with the trailing newline /sbin/lvm's report
// commands produce, for use as one FakeAction's stdout.
func FakeLines(lines ...string) []byte {
	var buf []byte
	for _, line := range lines {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	return buf
}

// FakeUUID returns a freshly generated identifier with the dashes lvm's
// own uuid column omits, for tests that need a plausible PV/VG/LV UUID
// without committing to a literal value.
func FakeUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
