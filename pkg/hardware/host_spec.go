// SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"fmt"
)

const (
	// SystemBufferGB defines the memory buffer reserved for system operations (in GB)
	SystemBufferGB = 0.5 // 512MB buffer for system operations
)

// hostSpec validates the host profile against the print host baseline.
type hostSpec struct {
	profile      HostProfile
	requirements BaselineRequirements
}

// Ensure hostSpec implements Spec
var _ Spec = (*hostSpec)(nil)

// NewHostSpec pairs the print host baseline with the actual host profile.
func NewHostSpec(profile HostProfile) Spec {
	return &hostSpec{
		profile:      profile,
		requirements: GetRequirements(),
	}
}

// ValidateOS validates the system OS against the supported OS list
func (h *hostSpec) ValidateOS() error {
	if !validateOS(h.requirements.MinSupportedOS, h.profile) {
		return fmt.Errorf("OS does not meet print host requirements (supported: %v)", h.requirements.MinSupportedOS)
	}
	return nil
}

// ValidateCPU validates CPU requirements
func (h *hostSpec) ValidateCPU() error {
	cores := h.profile.GetCPUCores()
	if int(cores) < h.requirements.MinCpuCores {
		return fmt.Errorf("CPU does not meet print host requirements (minimum %d cores)", h.requirements.MinCpuCores)
	}
	return nil
}

// ValidateMemory checks both total and available memory so a loaded host does
// not pass on installed RAM alone.
func (h *hostSpec) ValidateMemory() error {
	totalMemoryGB := h.profile.GetTotalMemoryGB()
	availableMemoryGB := h.profile.GetAvailableMemoryGB()

	if int(totalMemoryGB) < h.requirements.MinMemoryGB {
		return fmt.Errorf("total memory does not meet print host requirements (minimum %d GB, found %d GB total)",
			h.requirements.MinMemoryGB, totalMemoryGB)
	}

	requiredAvailableGB := float64(h.requirements.MinMemoryGB) + SystemBufferGB
	if float64(availableMemoryGB) < requiredAvailableGB {
		usedMemoryGB := totalMemoryGB - availableMemoryGB

		return fmt.Errorf("insufficient available memory (need %.1f GB including system buffer, have %.1f GB available, %.1f GB currently used)",
			requiredAvailableGB, float64(availableMemoryGB), float64(usedMemoryGB))
	}

	return nil
}

// ValidateSpoolSpace checks free space on the filesystem holding the spool
// directory, where scans and converted documents are staged.
func (h *hostSpec) ValidateSpoolSpace(spoolDir string) error {
	freeGB := h.profile.GetFreeDiskGB(spoolDir)
	if int(freeGB) < h.requirements.MinFreeSpoolGB {
		return fmt.Errorf("insufficient free space for the spool directory %s (minimum %d GB, found %d GB free)",
			spoolDir, h.requirements.MinFreeSpoolGB, freeGB)
	}
	return nil
}

// GetBaselineRequirements returns the requirements
func (h *hostSpec) GetBaselineRequirements() BaselineRequirements {
	return h.requirements
}
