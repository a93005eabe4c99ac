// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace     = errorx.NewNamespace("manifest")
	ManifestNotFound    = ErrorsNamespace.NewType("manifest_not_found", errorx.NotFound())
	ManifestReadError   = ErrorsNamespace.NewType("manifest_read_error")
	ManifestFormatError = ErrorsNamespace.NewType("manifest_format_error")
)

var pathProperty = errorx.RegisterPrintableProperty("path")

// NewManifestNotFoundError reports a missing manifest with the remediation the
// operator needs: provisioning cannot continue until the file exists.
func NewManifestNotFoundError(path string) *errorx.Error {
	return ManifestNotFound.New(
		"package manifest %s does not exist; copy the sample manifest to that path and adjust it for this host", path).
		WithProperty(pathProperty, path)
}
