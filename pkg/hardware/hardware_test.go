// SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// MockHostProfile is a testable implementation of HostProfile
type MockHostProfile struct {
	OSVendor          string
	OSVersion         string
	CPUCores          uint
	TotalMemoryGB     uint64
	AvailableMemoryGB uint64
	TotalStorageGB    uint64
	FreeDiskGB        uint64
}

// NewMockHostProfile creates a new MockHostProfile for testing
func NewMockHostProfile(osVendor, osVersion string, cpuCores uint, memoryGB uint64, freeDiskGB uint64) *MockHostProfile {
	// Estimate available memory as ~80% of total
	availableMemoryGB := uint64(float64(memoryGB) * 0.8)

	return &MockHostProfile{
		OSVendor:          osVendor,
		OSVersion:         osVersion,
		CPUCores:          cpuCores,
		TotalMemoryGB:     memoryGB,
		AvailableMemoryGB: availableMemoryGB,
		TotalStorageGB:    freeDiskGB,
		FreeDiskGB:        freeDiskGB,
	}
}

func (m *MockHostProfile) GetOSVendor() string              { return m.OSVendor }
func (m *MockHostProfile) GetOSVersion() string             { return m.OSVersion }
func (m *MockHostProfile) GetCPUCores() uint                { return m.CPUCores }
func (m *MockHostProfile) GetTotalMemoryGB() uint64         { return m.TotalMemoryGB }
func (m *MockHostProfile) GetAvailableMemoryGB() uint64     { return m.AvailableMemoryGB }
func (m *MockHostProfile) GetTotalStorageGB() uint64        { return m.TotalStorageGB }
func (m *MockHostProfile) GetSSDStorageGB() uint64          { return 0 }
func (m *MockHostProfile) GetHDDStorageGB() uint64          { return m.TotalStorageGB }
func (m *MockHostProfile) GetFreeDiskGB(path string) uint64 { return m.FreeDiskGB }
func (m *MockHostProfile) String() string                   { return "MockHostProfile" }

func TestValidateOS(t *testing.T) {
	testCases := []struct {
		name      string
		osVendor  string
		osVersion string
		valid     bool
	}{
		{name: "modern ubuntu", osVendor: "ubuntu", osVersion: "22.04", valid: true},
		{name: "oldest supported ubuntu", osVendor: "ubuntu", osVersion: "18.04", valid: true},
		{name: "too old ubuntu", osVendor: "ubuntu", osVersion: "16.04", valid: false},
		{name: "modern debian", osVendor: "debian", osVersion: "12", valid: true},
		{name: "too old debian", osVendor: "debian", osVersion: "9", valid: false},
		{name: "unsupported vendor", osVendor: "gentoo", osVersion: "2.14", valid: false},
		{name: "unparseable version", osVendor: "ubuntu", osVersion: "unknown", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := NewMockHostProfile(tc.osVendor, tc.osVersion, 4, 8, 100)
			err := NewHostSpec(profile).ValidateOS()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), "OS does not meet")
			}
		})
	}
}

func TestValidateCPU(t *testing.T) {
	req := require.New(t)

	req.NoError(NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 4, 8, 100)).ValidateCPU())
	req.NoError(NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 1, 8, 100)).ValidateCPU())

	err := NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 0, 8, 100)).ValidateCPU()
	req.Error(err)
	req.Contains(err.Error(), "CPU does not meet")
}

func TestValidateMemory(t *testing.T) {
	req := require.New(t)

	req.NoError(NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 4, 8, 100)).ValidateMemory())

	// Total below the baseline.
	err := NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 4, 0, 100)).ValidateMemory()
	req.Error(err)
	req.Contains(err.Error(), "total memory does not meet")

	// Enough installed but nearly all of it in use.
	profile := NewMockHostProfile("ubuntu", "22.04", 4, 8, 100)
	profile.AvailableMemoryGB = 1
	err = NewHostSpec(profile).ValidateMemory()
	req.Error(err)
	req.Contains(err.Error(), "insufficient available memory")
}

func TestValidateSpoolSpace(t *testing.T) {
	req := require.New(t)

	req.NoError(NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 4, 8, 100)).ValidateSpoolSpace("/var/spool/printbot"))

	err := NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 4, 8, 0)).ValidateSpoolSpace("/var/spool/printbot")
	req.Error(err)
	req.Contains(err.Error(), "insufficient free space for the spool directory")
}

func TestGetBaselineRequirements(t *testing.T) {
	req := require.New(t)

	spec := NewHostSpec(NewMockHostProfile("ubuntu", "22.04", 4, 8, 100))
	baseline := spec.GetBaselineRequirements()
	req.Equal(1, baseline.MinCpuCores)
	req.Equal(1, baseline.MinMemoryGB)
	req.Equal(1, baseline.MinFreeSpoolGB)
	req.Contains(baseline.MinSupportedOS, OSUbuntu18)
	req.Contains(baseline.String(), "Spool space")
}

func TestHostProfileString(t *testing.T) {
	profile := GetHostProfile()
	require.NotEmpty(t, profile.String())
}
