// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package gendriver runs validation over the compiled-in API model and then
// invokes every backend in turn, each writing its one output artefact
// through a freshly opened sink.
package gendriver

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"k8s.io/klog/v2"

	"github.com/ashgti/diskapigen/internal/genbackend"
	"github.com/ashgti/diskapigen/internal/genemit"
	"github.com/ashgti/diskapigen/internal/genmodel"
	"github.com/ashgti/diskapigen/internal/gensink"
	"github.com/ashgti/diskapigen/internal/genvalidate"
)

var tracer = otel.Tracer("github.com/ashgti/diskapigen/internal/gendriver")

// artefact pairs a target path with the backend that fills it.
type artefact struct {
	path string
	emit func(w *genemit.W, m genmodel.Model)
}

// targets is the fixed set of output paths, in the order the driver emits
// them. Order here has no effect on any artefact's contents -- every
// backend is a pure function of the model -- but a deterministic order
// gives deterministic trace spans and log lines across runs.
func targets() []artefact {
	return []artefact{
		{"guestfs_protocol.x", genbackend.WireSchema},
		{"guestfs-structs.h", genbackend.StructHeader},
		{"guestfs-actions.h", genbackend.ClientHeader},
		{"guestfs-actions.c", genbackend.ClientImpl},
		{"daemon-actions.h", genbackend.DaemonHeader},
		{"daemon-actions.c", genbackend.DaemonDispatch},
		{"cmds.c", genbackend.Shell},
		{"guestfs-actions.pod", genbackend.DocsClientAPI},
		{"guestfs-commands.pod", genbackend.DocsShell},
		{"guestfs-structs.pod", genbackend.DocsStructs},
		{"guestfs.mli", genbackend.BindingAInterface},
		{"guestfs.ml", genbackend.BindingAImplementation},
		{"guestfs_c.c", genbackend.BindingAGlue},
		{"guestfs-bindingb.c", genbackend.BindingBStub},
		{"bindingb-doc.pod", genbackend.BindingBDoc},
	}
}

// Run validates m and then emits every target artefact under outDir,
// returning the first error encountered. It stops at the first validation
// failure before touching any file, and at the first emission failure
// without attempting the remaining artefacts.
func Run(ctx context.Context, outDir string, m genmodel.Model) error {
	ctx, span := tracer.Start(ctx, "gendriver/Run")
	defer span.End()

	if err := genvalidate.Validate(m); err != nil {
		return fmt.Errorf("gendriver: model validation failed: %w", err)
	}

	for _, t := range targets() {
		if err := emitOne(ctx, outDir, t, m); err != nil {
			return err
		}
	}
	return nil
}

func emitOne(ctx context.Context, outDir string, t artefact, m genmodel.Model) error {
	_, span := tracer.Start(ctx, "gendriver/emit:"+t.path)
	defer span.End()

	path := outDir + "/" + t.path
	sink, err := gensink.Open(path)
	if err != nil {
		return fmt.Errorf("gendriver: %s: %w", t.path, err)
	}

	w := genemit.New(sink)
	t.emit(w, m)
	if err := w.Err(); err != nil {
		return fmt.Errorf("gendriver: %s: emit: %w", t.path, err)
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("gendriver: %s: %w", t.path, err)
	}

	klog.V(1).InfoS("emitted artefact", "path", path)
	return nil
}
