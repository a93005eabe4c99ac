// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"embed"
)

//go:embed files/*
var Files embed.FS

// Embedded template locations.
const (
	SystemdUnitTemplateFile      = "files/systemd/printbot.service.tmpl"
	SecretsTemplateFile          = "files/env/printbot.env"
	PrintingDefaultsTemplateFile = "files/config/printing.toml"
	PackagesManifestSampleFile   = "files/manifest/packages.yaml"
)

// ServiceUnitData carries the substitution values for the systemd unit template.
// Every field must be populated before rendering; the template engine rejects
// references to missing values.
type ServiceUnitData struct {
	Description      string
	AfterTarget      string
	ServiceType      string
	ServiceUser      string
	ServiceGroup     string
	WorkingDirectory string
	EnvironmentFile  string
	ExecStart        string
	RestartPolicy    string
	RestartSec       int
	InstallTarget    string
}
