// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package kernel

import (
	"github.com/joomcode/errorx"
	"runtime"
)

// unsupportedOperations is the moduleOperations fallback for platforms without
// loadable kernel module support. Every operation fails.
type unsupportedOperations struct{}

func newModuleOperations() moduleOperations {
	return &unsupportedOperations{}
}

func (o *unsupportedOperations) load(name string) error {
	return errUnsupported(name)
}

func (o *unsupportedOperations) unload(name string) error {
	return errUnsupported(name)
}

func (o *unsupportedOperations) persist(name string) error {
	return errUnsupported(name)
}

func (o *unsupportedOperations) unpersist(name string) error {
	return errUnsupported(name)
}

func (o *unsupportedOperations) isLoaded(name string) (bool, error) {
	return false, errUnsupported(name)
}

func (o *unsupportedOperations) isPersisted(name string) (bool, error) {
	return false, errUnsupported(name)
}

func errUnsupported(name string) error {
	return errorx.UnsupportedOperation.New(
		"kernel module management for %q is not supported on %s", name, runtime.GOOS)
}
