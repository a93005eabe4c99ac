// SPDX-License-Identifier: Apache-2.0

package software

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
	"github.com/rs/zerolog"
)

// NewProgramDetector returns an instance of ProgramDetector
// This returns unixProgramDetector that works for linux and darwin
func NewProgramDetector(logger *zerolog.Logger) ProgramDetector {
	return NewUnixProgramDetector(logger)
}

// unixProgramDetector implements the ProgramDetector interface for unix.
// This also works for darwin.
type unixProgramDetector struct {
	logger *zerolog.Logger
}

func (ud *unixProgramDetector) SetLogger(logger *zerolog.Logger) {
	if logger != nil {
		ud.logger = logger
	}
}

// DetectExecutablePath resolves a program through the operator's shell so the
// lookup honors the same PATH the operator sees. Falls back to /bin/sh when
// SHELL is not set.
func (ud *unixProgramDetector) DetectExecutablePath(name string) (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-c", fmt.Sprintf("command -v %s", name))
	output, err := cmd.Output()
	if err != nil {
		return "", NewSoftwareNotFoundError(err, name)
	}

	programPath := strings.Trim(string(output), "\n")
	if programPath == "" {
		return "", NewSoftwareNotFoundError(nil, name)
	}

	return programPath, nil
}

func (ud *unixProgramDetector) ComputeProgramHash(path string) ([32]byte, error) {
	hash := [32]byte{}

	b, err := os.ReadFile(path)
	if err != nil {
		return hash, errorx.ExternalError.Wrap(err, "failed to compute sha256 of the program at %q", path)
	}

	hash = sha256.Sum256(b)
	return hash, nil
}

// DetectProgramVersion runs the tool with its version arguments and extracts
// the version number from the output. Tools with no version arguments are
// detected by presence only and report an empty version.
func (ud *unixProgramDetector) DetectProgramVersion(path string, tool Tool) (string, error) {
	if tool.VersionArgs == "" {
		return "", nil
	}

	args := strings.Split(tool.VersionArgs, " ")
	verStr, err := exec.Command(path, args...).Output()
	if err != nil {
		return "", NewVersionNotFoundError(err, path)
	}

	pattern := tool.VersionRegex
	if pattern == "" {
		pattern = defaultVersionRegex
	}

	reg, err := regexp.Compile(pattern)
	if err != nil {
		return "", errorx.IllegalFormat.Wrap(err, "failed to parse version regex: %q", pattern)
	}

	return reg.FindString(string(verStr)), nil
}

// GetProgramInfo locates the given tool and reports its path, file mode,
// version and content hash. The default location is consulted first so a
// stripped PATH does not hide a standard install.
func (ud *unixProgramDetector) GetProgramInfo(ctx context.Context, tool Tool) (ProgramInfo, error) {
	var err error
	var statInfo os.FileInfo
	var path string

	ud.logger.Debug().
		Str(logFields.name, tool.Name).
		Msg("Scan tools: checking tool state")

	if tool.DefaultLocation == "" {
		// attempt path resolution if default location was not present
		path, err = ud.DetectExecutablePath(tool.Name)
		if err != nil {
			return nil, err
		}
	} else {
		// try to get info of the executable at the default location
		path = tool.DefaultLocation
		statInfo, err = os.Stat(path)
		if err != nil {
			// attempt path resolution if default location was not accessible
			path, err = ud.DetectExecutablePath(tool.Name)
			if err != nil {
				return nil, err
			}
		}
	}

	// get info of the executable at the path
	if statInfo == nil {
		statInfo, err = os.Stat(path)
		if err != nil {
			return nil, NewFileNotFoundError(err, path)
		}
	}

	ud.logger.Debug().
		Str(logFields.name, tool.Name).
		Str(logFields.path, path).
		Msg("Scan tools: located potential executable")

	// obtain actual hash of executable
	hash, err := ud.ComputeProgramHash(path)
	if err != nil {
		return nil, err
	}

	// get version of the executable
	version, err := ud.DetectProgramVersion(path, tool)
	if err != nil {
		return nil, err
	}

	info := &programInfo{
		path:       path,
		mode:       statInfo.Mode(),
		version:    version,
		sha256Hash: fmt.Sprintf("%x", hash),
	}

	ud.logger.Debug().
		Str(logFields.name, tool.Name).
		Str(logFields.path, info.GetPath()).
		Str(logFields.hash, info.GetHash()).
		Str(logFields.version, info.GetVersion()).
		Msg("Scan tools: identified program details")

	return info, nil
}

func NewUnixProgramDetector(logger *zerolog.Logger) ProgramDetector {
	if logger == nil {
		logger = &nolog
	}

	ud := &unixProgramDetector{
		logger: logger,
	}
	return ud
}
