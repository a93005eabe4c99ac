// SPDX-License-Identifier: Apache-2.0

package hardware

// Supported OS constants
const (
	OSUbuntu18 = "Ubuntu 18"
	OSDebian10 = "Debian 10"
)

var supportedOS = []string{OSUbuntu18, OSDebian10}

// printHostRequirements is the baseline for a host driving a single
// multifunction printer. Headless LibreOffice conversion is the hungriest
// consumer, everything else is I/O bound.
var printHostRequirements = BaselineRequirements{
	MinCpuCores:    1,
	MinMemoryGB:    1,
	MinFreeSpoolGB: 1,
	MinSupportedOS: supportedOS,
}

// GetRequirements returns the hardware baseline for the print host.
func GetRequirements() BaselineRequirements {
	return printHostRequirements
}
