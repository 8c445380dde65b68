// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// DaemonHeader emits one single-line do_<name> prototype per daemon call,
// in declaration order. Client-only calls never reach the daemon and have
// no entry here.
func DaemonHeader(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicenseCopyleft)

	for _, c := range m.Calls {
		if !c.IsDaemon() {
			continue
		}
		w.Writeln(genemit.DaemonStubDecl(c))
	}
}
