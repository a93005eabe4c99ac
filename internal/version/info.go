// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"runtime"
	"strings"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"
)

// Info is the version report printed by the version command.
type Info struct {
	Number    string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildMode string `json:"build" yaml:"build"`
	GoVersion string `json:"go" yaml:"go"`
}

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Get assembles the version report for the running binary.
func Get() Info {
	return Info{
		Number:    Number(),
		Commit:    Commit(),
		BuildMode: BuildMode(),
		GoVersion: runtime.Version(),
	}
}

// Format renders the info in the requested output format.
func (v Info) Format(format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		output, err := json.Marshal(v)
		if err != nil {
			return "", errorx.IllegalFormat.Wrap(err, "Error marshaling version info to JSON")
		}
		return string(output), nil
	case FormatYAML:
		output, err := yaml.Marshal(v)
		if err != nil {
			return "", errorx.IllegalFormat.Wrap(err, "Error marshaling version info to YAML")
		}
		return string(output), nil
	default:
		return "", errorx.IllegalFormat.New("unsupported format: %s", format)
	}
}
