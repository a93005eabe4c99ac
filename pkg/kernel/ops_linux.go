// SPDX-License-Identifier: Apache-2.0

package kernel

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/joomcode/errorx"
	"io/fs"
	"os"
	"path/filepath"
	"pault.ag/go/modprobe"
	"strings"
)

const (
	procModulesFile = "/proc/modules"
	modulesLoadDir  = "/etc/modules-load.d"
)

// modprobeOperations implements moduleOperations against the running kernel.
// Insertion and removal go through the module dependency database, the loaded
// check reads /proc/modules, and persistence is a modules-load.d drop-in.
type modprobeOperations struct{}

func newModuleOperations() moduleOperations {
	return &modprobeOperations{}
}

func (o *modprobeOperations) load(name string) error {
	if err := modprobe.Load(name, ""); err != nil {
		return errorx.Decorate(err, "failed to load kernel module %q", name)
	}

	return nil
}

func (o *modprobeOperations) unload(name string) error {
	if err := modprobe.Remove(name); err != nil {
		return errorx.Decorate(err, "failed to unload kernel module %q", name)
	}

	return nil
}

func (o *modprobeOperations) persist(name string) error {
	if err := os.MkdirAll(modulesLoadDir, 0o755); err != nil {
		return errorx.Decorate(err, "failed to create directory %q", modulesLoadDir)
	}

	path := persistenceFilePath(name)
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%s\n", name)), 0o644); err != nil {
		return errorx.Decorate(err, "failed to write persistence file %q", path)
	}

	return nil
}

func (o *modprobeOperations) unpersist(name string) error {
	path := persistenceFilePath(name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errorx.Decorate(err, "failed to remove persistence file %q", path)
	}

	return nil
}

func (o *modprobeOperations) isLoaded(name string) (bool, error) {
	f, err := os.Open(procModulesFile)
	if err != nil {
		return false, errorx.Decorate(err, "failed to open %q", procModulesFile)
	}
	defer func() {
		_ = f.Close()
	}()

	// The kernel exposes module names with dashes folded to underscores.
	want := normalizeModuleName(name)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 && normalizeModuleName(fields[0]) == want {
			return true, nil
		}
	}

	if err = sc.Err(); err != nil {
		return false, errorx.Decorate(err, "failed to scan %q", procModulesFile)
	}

	return false, nil
}

func (o *modprobeOperations) isPersisted(name string) (bool, error) {
	_, err := os.Stat(persistenceFilePath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, errorx.Decorate(err, "failed to stat persistence file for module %q", name)
	}

	return true, nil
}

func persistenceFilePath(name string) string {
	return filepath.Join(modulesLoadDir, fmt.Sprintf("%s.conf", name))
}

func normalizeModuleName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
