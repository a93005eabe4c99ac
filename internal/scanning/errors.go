// SPDX-License-Identifier: Apache-2.0

package scanning

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace  = errorx.NewNamespace("scanning")
	ScanError        = ErrorsNamespace.NewType("scan_error")
	ScanTimeoutError = ScanError.NewSubtype("timeout", errorx.Timeout())
	NoPagesError     = ScanError.NewSubtype("no_pages")
)
