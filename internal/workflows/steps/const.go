// SPDX-License-Identifier: Apache-2.0

package steps

// Metadata and state bag keys shared across step reports.
const (
	AlreadyExists       = "alreadyExists"
	AlreadyInstalled    = "alreadyInstalled"
	AlreadyLoaded       = "alreadyLoaded"
	CreatedByThisStep   = "created"
	InstalledByThisStep = "installed"
	LoadedByThisStep    = "loaded"
	WrittenByThisStep   = "written"
)
