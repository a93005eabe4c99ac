// SPDX-License-Identifier: Apache-2.0

package imaging

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace = errorx.NewNamespace("imaging")
	DecodeError     = ErrorsNamespace.NewType("decode_error")
)
