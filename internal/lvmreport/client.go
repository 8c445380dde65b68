// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package lvmreport

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dpeckett/args"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/utils/exec"

	"github.com/ashgti/diskapigen/internal/genmodel"
)

// reportColumns lists, in schema order, the `-o` field names lvm expects
// for one record kind. This is the one place the client must agree with
// genmodel's column order by name rather than by walking the schema
// directly, because lvm's own field names do not always equal the schema's
// column names (lvm has no pv_pe_alloc_count field, for instance).
var reportColumns = map[string][]string{
	"pv": {"pv_name", "pv_uuid", "vg_name", "pv_size", "pv_free", "pv_pe_count", "pv_pe_alloc_count"},
	"vg": {"vg_name", "vg_uuid", "vg_size", "vg_free", "vg_extent_count", "vg_pv_count"},
	"lv": {"lv_name", "lv_uuid", "vg_name", "lv_size", "lv_attr", "data_percent"},
}

// Client runs /sbin/lvm's report subcommands and tokenizes their output.
type Client struct {
	lvmPath string
	exec    exec.Interface
	tracer  trace.Tracer
}

// ClientOption configures a Client constructed by NewClient.
type ClientOption func(*Client)

// WithLVMPath overrides the path to the lvm binary. The default is
// "/sbin/lvm".
func WithLVMPath(path string) ClientOption {
	return func(c *Client) { c.lvmPath = path }
}

// WithExecInterface overrides the command execution backend, for tests.
func WithExecInterface(e exec.Interface) ClientOption {
	return func(c *Client) { c.exec = e }
}

// WithTracer overrides the tracer used for client spans.
func WithTracer(t trace.Tracer) ClientOption {
	return func(c *Client) { c.tracer = t }
}

// NewClient constructs a Client with the given options applied over
// defaults: lvm found at /sbin/lvm, the real exec.Interface, and a no-op
// tracer.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		lvmPath: "/sbin/lvm",
		exec:    exec.New(),
		tracer:  otel.Tracer("github.com/ashgti/diskapigen/internal/lvmreport"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListPhysicalVolumes runs `pvs` and tokenizes every output line into a
// PhysicalVolume. A nil opts lists every physical volume visible to the
// host.
func (c *Client) ListPhysicalVolumes(ctx context.Context, opts *ListPVOptions) ([]PhysicalVolume, error) {
	schema := genmodel.New().PV

	ctx, span := c.tracer.Start(ctx, "lvmreport/ListPhysicalVolumes")
	defer span.End()

	lines, err := c.report(ctx, span, "pvs", "pv", opts)
	if err != nil {
		return nil, err
	}

	pvs := make([]PhysicalVolume, 0, len(lines))
	for _, line := range lines {
		pv, err := ParsePVLine(schema, line)
		if err != nil {
			return nil, err
		}
		pvs = append(pvs, pv)
	}

	span.SetAttributes(attribute.Int("pv.count", len(pvs)))
	return pvs, nil
}

// ListVolumeGroups runs `vgs` and tokenizes every output line into a
// VolumeGroup. A nil opts lists every volume group visible to the host.
func (c *Client) ListVolumeGroups(ctx context.Context, opts *ListVGOptions) ([]VolumeGroup, error) {
	schema := genmodel.New().VG

	ctx, span := c.tracer.Start(ctx, "lvmreport/ListVolumeGroups")
	defer span.End()

	lines, err := c.report(ctx, span, "vgs", "vg", opts)
	if err != nil {
		return nil, err
	}

	vgs := make([]VolumeGroup, 0, len(lines))
	for _, line := range lines {
		vg, err := ParseVGLine(schema, line)
		if err != nil {
			return nil, err
		}
		vgs = append(vgs, vg)
	}

	span.SetAttributes(attribute.Int("vg.count", len(vgs)))
	return vgs, nil
}

// ListLogicalVolumes runs `lvs` and tokenizes every output line into a
// LogicalVolume. A nil opts lists every logical volume visible to the
// host.
func (c *Client) ListLogicalVolumes(ctx context.Context, opts *ListLVOptions) ([]LogicalVolume, error) {
	schema := genmodel.New().LV

	ctx, span := c.tracer.Start(ctx, "lvmreport/ListLogicalVolumes")
	defer span.End()

	lines, err := c.report(ctx, span, "lvs", "lv", opts)
	if err != nil {
		return nil, err
	}

	lvs := make([]LogicalVolume, 0, len(lines))
	for _, line := range lines {
		lv, err := ParseLVLine(schema, line)
		if err != nil {
			return nil, err
		}
		lvs = append(lvs, lv)
	}

	span.SetAttributes(attribute.Int("lv.count", len(lvs)))
	return lvs, nil
}

// report runs one of lvm's report subcommands with the column set fixed
// for kind, appends any positional name filters from opts, and splits the
// output into trimmed, non-blank lines ready for tokenization.
func (c *Client) report(ctx context.Context, span trace.Span, subcommand, kind string, opts any) ([]string, error) {
	cmdArgs := []string{
		subcommand,
		"--unbuffered",
		"--noheadings",
		"--nosuffix",
		"--separator", ",",
		"--units", "b",
		"-o", strings.Join(reportColumns[kind], ","),
	}
	if opts != nil {
		cmdArgs = append(cmdArgs, args.Marshal(opts)...)
	}

	out, err := c.run(ctx, span, cmdArgs...)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (c *Client) run(ctx context.Context, span trace.Span, cmdArgs ...string) ([]byte, error) {
	span.SetAttributes(
		attribute.String("cmd.name", c.lvmPath),
		attribute.StringSlice("cmd.args", cmdArgs),
	)

	cmd := c.exec.CommandContext(ctx, c.lvmPath, cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)

	if err := cmd.Run(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("lvmreport: %s: %w: %s", cmdArgs[0], err, strings.TrimSpace(stderr.String()))
	}

	span.SetStatus(codes.Ok, "lvm command succeeded")
	return stdout.Bytes(), nil
}
