// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genbackend

import (
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
)

// ClientHeader emits one single-line client-extern declaration per call, in
// declaration order. Declaration order, not alphabetical, matches what a
// diff against a freshly added call would show: the new prototype appears
// wherever its genmodel.calls entry was inserted.
func ClientHeader(w *genemit.W, m genmodel.Model) {
	genemit.WriteHeader(w, genemit.CommentSlashStar, genemit.LicensePermissive)

	for _, c := range m.Calls {
		w.Writeln(genemit.ClientExternDecl(c))
	}
}
