// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Command diskapigen emits every generated-code and documentation artefact
// for the compiled-in API model: the wire schema, client and daemon C
// sources, the interactive shell dispatcher, three manual pages, and both
// host-language bindings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"
	"k8s.io/klog/v2/textlogger"

	"github.com/ashgti/diskapigen/internal/gendriver"
	"github.com/ashgti/diskapigen/internal/genmodel"
	"github.com/ashgti/diskapigen/internal/telemetry"
	"github.com/ashgti/diskapigen/internal/version"
)

func main() {
	var outDir string
	var trace bool
	var printVersionAndExit bool

	flag.StringVar(&outDir, "out", "generated", "Directory to write generated artefacts into.")
	flag.BoolVar(&trace, "trace", false, "Enable the stdout OpenTelemetry trace exporter for this run.")
	flag.BoolVar(&printVersionAndExit, "version", false, "Print version and exit")

	logConfig := textlogger.NewConfig(textlogger.VerbosityFlagName("v"))
	logConfig.AddFlags(flag.CommandLine)

	flag.Parse()

	klog.SetLogger(textlogger.NewLogger(logConfig))

	version.Log(klog.Background())
	if printVersionAndExit {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdown, err := telemetry.Setup(ctx, trace)
	if err != nil {
		fail("failed to set up telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			klog.ErrorS(err, "failed to flush trace exporter")
		}
	}()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fail("failed to create output directory %s: %v", outDir, err)
	}

	if err := gendriver.Run(ctx, outDir, genmodel.New()); err != nil {
		fail("%v", err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "diskapigen: "+format+"\n", args...)
	os.Exit(1)
}
