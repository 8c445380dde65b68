// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package testdevice backs a loopback block device with a sparse file, for
// tests that exercise the LVM report client against a real volume group
// instead of a fake exec.Interface.
package testdevice

import (
	"fmt"
	"os"

	"pault.ag/go/loopback"
)

// New attaches a loopback device to a freshly created, unspecified-size
// sparse file and returns the device path along with a cleanup function
// that detaches the device and removes the backing file. Use this where the
// device's capacity doesn't matter to the test.
func New() (string, func(), error) {
	img, err := os.CreateTemp("", "diskapigen-loopback")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		img.Close() //nolint:errcheck
	}()

	dev, err := loopback.NextLoopDevice()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get next loop device: %w", err)
	}

	if err := loopback.Loop(dev, img); err != nil {
		return "", nil, fmt.Errorf("failed to set up loopback device: %w", err)
	}

	cleanup := func() {
		if err := loopback.Unloop(dev); err != nil {
			fmt.Printf("failed to detach loopback device: %v\n", err)
		}
		if err := os.Remove(img.Name()); err != nil {
			fmt.Printf("failed to remove temporary file: %v\n", err)
		}
	}

	return dev.Name(), cleanup, nil
}

// NewSized is New but truncates the backing file to size first, for tests
// that assert on reported PV/VG/LV capacity or free space. The file is
// sparse, not zeroed.
func NewSized(size int64) (string, func(), error) {
	filePtr, err := os.CreateTemp("", "diskapigen-loopback")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	// Ensure the file is closed before returning
	defer func() {
		filePtr.Close() //nolint:errcheck
	}()

	if os.Truncate(filePtr.Name(), size) != nil {
		filePtr.Close() //nolint:errcheck
		return "", nil, fmt.Errorf("failed to truncate file: %w", err)
	}

	// Get next loop device.
	dev, err := loopback.NextLoopDevice()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get next loop device: %w", err)
	}

	// Set up the loopback device
	if err := loopback.Loop(dev, filePtr); err != nil {
		return "", nil, fmt.Errorf("failed to set up loopback device: %w", err)
	}

	// Cleanup function to detach the loopback device and remove the temporary file
	cleanup := func() {
		if err := loopback.Unloop(dev); err != nil {
			fmt.Printf("failed to detach loopback device: %v\n", err)
		}
		if err := os.Remove(filePtr.Name()); err != nil {
			fmt.Printf("failed to remove temporary file: %v\n", err)
		}
	}

	return dev.Name(), cleanup, nil
}
