// SPDX-License-Identifier: Apache-2.0

package os

import "github.com/joomcode/errorx"

var (
	ErrNamespace = errorx.NewNamespace("os")

	SystemdErrTrait = errorx.RegisterTrait("systemd_error")

	ErrSystemdConnection = ErrNamespace.NewType("systemd_connection_failed", SystemdErrTrait)
	ErrSystemdOperation  = ErrNamespace.NewType("systemd_operation_failed", SystemdErrTrait)

	ServiceProperty   = errorx.RegisterPrintableProperty("service")
	JobResultProperty = errorx.RegisterPrintableProperty("job_result")
)
