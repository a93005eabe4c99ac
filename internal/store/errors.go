// SPDX-License-Identifier: Apache-2.0

package store

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace   = errorx.NewNamespace("store")
	SaveError         = ErrorsNamespace.NewType("save_error")
	AdminRemovalError = ErrorsNamespace.NewType("admin_removal")
)
