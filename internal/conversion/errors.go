// SPDX-License-Identifier: Apache-2.0

package conversion

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace        = errorx.NewNamespace("conversion")
	ConversionError        = ErrorsNamespace.NewType("conversion_error")
	ConversionTimeoutError = ConversionError.NewSubtype("timeout", errorx.Timeout())
	UnsupportedFormatError = ErrorsNamespace.NewType("unsupported_format")
)
