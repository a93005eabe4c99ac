// SPDX-License-Identifier: Apache-2.0

package printing

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace       = errorx.NewNamespace("printing")
	PrintError            = ErrorsNamespace.NewType("print_error")
	PrintTimeoutError     = PrintError.NewSubtype("timeout", errorx.Timeout())
	InvalidPageRangeError = ErrorsNamespace.NewType("invalid_page_range")
	BookletError          = ErrorsNamespace.NewType("booklet_error")
	ConfigError           = ErrorsNamespace.NewType("config_error")
)
