// SPDX-License-Identifier: Apache-2.0

package core

import (
	"path"

	"github.com/automa-saga/automa"
)

const (
	DefaultFilePerm = 0755

	// ServiceName is the systemd service identity of the bot runtime.
	ServiceName = "printbot"

	// ServiceUser is the unprivileged account the service runs as.
	ServiceUser  = "printbot"
	ServiceGroup = "printbot"

	UnitFileName = "printbot.service"
)

var (
	TempDir = "/tmp/printbot"
	HomeDir = "/opt/printbot"

	BinDir     = path.Join(HomeDir, "bin")
	EtcDir     = path.Join(HomeDir, "etc")
	VarDir     = path.Join(HomeDir, "var")
	SpoolDir   = path.Join(HomeDir, "var", "spool")
	LogDir     = path.Join(HomeDir, "var", "log")
	ReportsDir = path.Join(HomeDir, "var", "log", "reports")

	ExecutablePath       = path.Join(BinDir, "printbot")
	SecretsFile          = path.Join(EtcDir, "printbot.env")
	PrintingDefaultsFile = path.Join(EtcDir, "printing.toml")
	AllowedUsersFile     = path.Join(VarDir, "allowed_users.json")

	// PackagesManifestFile is where the provisioner expects the package
	// manifest. A sample is materialized next to it on the first run.
	PackagesManifestFile       = path.Join(EtcDir, "packages.yaml")
	PackagesManifestSampleFile = path.Join(EtcDir, "packages.yaml.sample")

	SystemdUnitFilesDir = "/etc/systemd/system"
	UnitFilePath        = path.Join(SystemdUnitFilesDir, UnitFileName)

	LocalBinSymlink = "/usr/local/bin/printbot"
	InstallLockFile = "/var/lock/printbot-install.lock"
	DiagnosticsDir  = path.Join(TempDir, "diagnostics")
)

// SetHomeDir points the environment tree at a different root and recomputes
// every derived path. Used by the --home override and by tests that provision
// into a scratch directory.
func SetHomeDir(dir string) {
	HomeDir = dir
	BinDir = path.Join(HomeDir, "bin")
	EtcDir = path.Join(HomeDir, "etc")
	VarDir = path.Join(HomeDir, "var")
	SpoolDir = path.Join(HomeDir, "var", "spool")
	LogDir = path.Join(HomeDir, "var", "log")
	ReportsDir = path.Join(HomeDir, "var", "log", "reports")
	ExecutablePath = path.Join(BinDir, "printbot")
	SecretsFile = path.Join(EtcDir, "printbot.env")
	PrintingDefaultsFile = path.Join(EtcDir, "printing.toml")
	AllowedUsersFile = path.Join(VarDir, "allowed_users.json")
	PackagesManifestFile = path.Join(EtcDir, "packages.yaml")
	PackagesManifestSampleFile = path.Join(EtcDir, "packages.yaml.sample")
}

// SetTempDir relocates the scratch space and the diagnostics drop directory.
func SetTempDir(dir string) {
	TempDir = dir
	DiagnosticsDir = path.Join(TempDir, "diagnostics")
}

// SetSystemdUnitFilesDir relocates the systemd unit directory. Tests use this
// to install units into a scratch directory.
func SetSystemdUnitFilesDir(dir string) {
	SystemdUnitFilesDir = dir
	UnitFilePath = path.Join(SystemdUnitFilesDir, UnitFileName)
}

// EnvDirs returns the directories that make up the service environment
// tree, in creation order.
func EnvDirs() []string {
	return []string{
		HomeDir,
		BinDir,
		EtcDir,
		VarDir,
		SpoolDir,
		LogDir,
		ReportsDir,
		TempDir,
	}
}

// AllExecutionModes returns the workflow execution modes accepted on the
// command line.
func AllExecutionModes() []automa.TypeMode {
	return []automa.TypeMode{
		automa.StopOnError,
		automa.ContinueOnError,
		automa.RollbackOnError,
	}
}
