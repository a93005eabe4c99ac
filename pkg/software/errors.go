// SPDX-License-Identifier: Apache-2.0

package software

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace       = errorx.NewNamespace("software")
	SoftwareNotFoundError = ErrorsNamespace.NewType("software_not_found")
	VersionNotFoundError  = ErrorsNamespace.NewType("version_not_found")
	FileNotFoundError     = ErrorsNamespace.NewType("file_not_found")
	InstallationError     = ErrorsNamespace.NewType("installation_error")
	UninstallationError   = ErrorsNamespace.NewType("uninstallation_error")

	softwareNameProperty = errorx.RegisterPrintableProperty("software_name")
	versionProperty      = errorx.RegisterPrintableProperty("version")
	filePathProperty     = errorx.RegisterPrintableProperty("file_path")
)

const (
	softwareNotFoundErrorMsg = "failed to find path to the program %q"
	versionNotFoundErrorMsg  = "failed to determine version of the program at %q"
	fileNotFoundErrorMsg     = "file not found: '%s'"
	installationErrorMsg     = "failed to install package %q"
	uninstallationErrorMsg   = "failed to uninstall package %q"
	autoRemoveUnsupportedMsg = "autoremove is only supported for apt package manager"
)

func NewSoftwareNotFoundError(cause error, name string) *errorx.Error {
	err := SoftwareNotFoundError.New(softwareNotFoundErrorMsg, name).
		WithProperty(softwareNameProperty, name)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewVersionNotFoundError(cause error, path string) *errorx.Error {
	err := VersionNotFoundError.New(versionNotFoundErrorMsg, path).
		WithProperty(filePathProperty, path)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewFileNotFoundError(cause error, filePath string) *errorx.Error {
	err := FileNotFoundError.New(fileNotFoundErrorMsg, filePath).
		WithProperty(filePathProperty, filePath)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewInstallationError(cause error, pkgName string) *errorx.Error {
	err := InstallationError.New(installationErrorMsg, pkgName).
		WithProperty(softwareNameProperty, pkgName)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewUninstallationError(cause error, pkgName string) *errorx.Error {
	err := UninstallationError.New(uninstallationErrorMsg, pkgName).
		WithProperty(softwareNameProperty, pkgName)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

// IsSoftwareNotFound reports whether err marks a program that could not be
// resolved on the host.
func IsSoftwareNotFound(err error) bool {
	return errorx.IsOfType(err, SoftwareNotFoundError)
}

// SafeErrorDetails emits a PII-safe slice of error details.
func SafeErrorDetails(err *errorx.Error) []string {
	var safeDetails []string
	if err == nil {
		return safeDetails
	}

	for _, prop := range []errorx.Property{softwareNameProperty, versionProperty, filePathProperty} {
		if val, ok := err.Property(prop); ok {
			if s, ok := val.(string); ok {
				safeDetails = append(safeDetails, s)
			}
		}
	}

	return safeDetails
}
