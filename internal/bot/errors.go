// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace = errorx.NewNamespace("bot")

	// NotConfiguredError means the secrets file is missing entirely, which is
	// the state of a freshly provisioned host.
	NotConfiguredError = ErrorsNamespace.NewType("not_configured", errorx.NotFound())

	SettingsError = ErrorsNamespace.NewType("settings_error")
	ConnectError  = ErrorsNamespace.NewType("connect_error")
	DownloadError = ErrorsNamespace.NewType("download_error")
)
