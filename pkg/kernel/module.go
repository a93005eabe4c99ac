// SPDX-License-Identifier: Apache-2.0

// Package kernel manages Linux kernel modules: loading, unloading, and making
// them persistent across reboots through modules-load.d.
package kernel

import (
	"github.com/joomcode/errorx"
	"strings"
)

// Module manages one named kernel module.
type Module interface {
	Load(persist bool) error
	Unload(unpersist bool) error
	IsLoaded() (loaded bool, persisted bool, err error)
	Name() string
}

// moduleOperations is the seam between the Module decision logic and the
// platform. Tests substitute a fake; ops_linux.go supplies the real one.
type moduleOperations interface {
	load(name string) error
	unload(name string) error
	persist(name string) error
	unpersist(name string) error
	isLoaded(name string) (bool, error)
	isPersisted(name string) (bool, error)
}

// defaultModule is the standard Module implementation.
type defaultModule struct {
	name string
	ops  moduleOperations
}

// NewModule returns a Module for the named kernel module. The name is not
// resolved against the module dependency database until Load is called.
func NewModule(name string) (Module, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errorx.IllegalArgument.New("kernel module name is required")
	}

	return &defaultModule{
		name: name,
		ops:  newModuleOperations(),
	}, nil
}

func (m *defaultModule) Name() string {
	return m.name
}

// Load inserts the module if it is not already present. When persist is true
// the module is also registered to load at boot, even if it was already loaded.
func (m *defaultModule) Load(persist bool) error {
	loaded, err := m.ops.isLoaded(m.name)
	if err != nil {
		return err
	}

	if !loaded {
		if err = m.ops.load(m.name); err != nil {
			return err
		}
	}

	if persist {
		return m.ops.persist(m.name)
	}

	return nil
}

// Unload removes the module if it is currently loaded. When unpersist is true
// the boot-time registration is removed first, so a failure to unload still
// leaves the module deregistered.
func (m *defaultModule) Unload(unpersist bool) error {
	if unpersist {
		if err := m.ops.unpersist(m.name); err != nil {
			return err
		}
	}

	loaded, err := m.ops.isLoaded(m.name)
	if err != nil {
		return err
	}

	if loaded {
		return m.ops.unload(m.name)
	}

	return nil
}

// IsLoaded reports whether the module is currently inserted and whether it is
// registered for boot-time loading. The loaded status is returned even when the
// persistence check fails.
func (m *defaultModule) IsLoaded() (loaded bool, persisted bool, err error) {
	loaded, err = m.ops.isLoaded(m.name)
	if err != nil {
		return false, false, err
	}

	persisted, err = m.ops.isPersisted(m.name)
	if err != nil {
		return loaded, false, err
	}

	return loaded, persisted, nil
}
