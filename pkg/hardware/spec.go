// SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"fmt"
)

type Spec interface {
	ValidateOS() error
	ValidateCPU() error
	ValidateMemory() error
	ValidateSpoolSpace(spoolDir string) error

	GetBaselineRequirements() BaselineRequirements
}

type BaselineRequirements struct {
	MinCpuCores    int
	MinMemoryGB    int
	MinFreeSpoolGB int
	MinSupportedOS []string
}

func (r BaselineRequirements) String() string {
	return fmt.Sprintf("OS: %v, CPU: %d cores, Memory: %d GB, Spool space: %d GB free",
		r.MinSupportedOS, r.MinCpuCores, r.MinMemoryGB, r.MinFreeSpoolGB)
}
