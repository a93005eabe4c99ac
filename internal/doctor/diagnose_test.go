// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"errors"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/config"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/stretchr/testify/require"
)

func TestToErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "illegal argument maps to 10400",
			err:      errorx.IllegalArgument.New("missing flag"),
			expected: 10400,
		},
		{
			name:     "not found trait maps to 10404",
			err:      manifest.NewManifestNotFoundError("/opt/printbot/etc/packages.yaml"),
			expected: 10404,
		},
		{
			name:     "config not found maps to 10404",
			err:      config.NotFoundError.New("no config"),
			expected: 10404,
		},
		{
			name:     "anything else maps to 10500",
			err:      errorx.IllegalState.New("boom"),
			expected: 10500,
		},
		{
			name:     "plain error maps to 10500",
			err:      errors.New("boom"),
			expected: 10500,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, toErrorCode(tc.err))
		})
	}
}

func TestToErrorMessage(t *testing.T) {
	msg, cause := toErrorMessage(errors.New("plain failure"))
	require.Equal(t, "plain failure", msg)
	require.Empty(t, cause)

	msg, cause = toErrorMessage(errorx.IllegalState.New("no cause here"))
	require.Contains(t, msg, "no cause here")
	require.Empty(t, cause)

	wrapped := errorx.IllegalState.Wrap(errors.New("root cause"), "outer message")
	msg, cause = toErrorMessage(wrapped)
	require.Contains(t, msg, "outer message")
	require.Contains(t, cause, "root cause")
}

func TestFindResolution(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected []string
	}{
		{
			name: "resolution property wins over derived resolution",
			err: errorx.IllegalState.New("service executable missing").
				WithProperty(ErrPropertyResolution, "run 'sudo printbot provision' to restore the executable"),
			expected: []string{"run 'sudo printbot provision' to restore the executable"},
		},
		{
			name: "multi-line resolution property is split into steps",
			err: errorx.IllegalState.New("secrets missing").
				WithProperty(ErrPropertyResolution, "edit the secrets file\nrestart the service"),
			expected: []string{"edit the secrets file", "restart the service"},
		},
		{
			name:     "illegal argument without payload",
			err:      errorx.IllegalArgument.New("bad input"),
			expected: []string{"Ensure all required arguments are provided."},
		},
		{
			name: "illegal argument with payload",
			err: errorx.IllegalArgument.New("bad input").
				WithProperty(errorx.PropertyPayload(), "--home"),
			expected: []string{`Ensure "--home" is provided.`},
		},
		{
			name:     "illegal format",
			err:      errorx.IllegalFormat.New("bad yaml"),
			expected: []string{"Ensure provided data is in correct format."},
		},
		{
			name:     "unknown errors fall back to support",
			err:      errorx.IllegalState.New("boom"),
			expected: []string{"Check error message for details or contact support"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, findResolution(tc.err))
		})
	}
}

func TestFindResolution_MissingManifest(t *testing.T) {
	steps := findResolution(manifest.NewManifestNotFoundError("/opt/printbot/etc/packages.yaml"))
	require.Len(t, steps, 2)
	require.Contains(t, steps[0], "packages.yaml.sample")
	require.Contains(t, steps[1], "printbot provision")
}

func TestFindResolution_MissingConfigFile(t *testing.T) {
	err := config.NotFoundError.New("config file not found").
		WithProperty(errorx.PropertyPayload(), "/etc/printbot.yaml")
	steps := findResolution(err)
	require.Len(t, steps, 1)
	require.Contains(t, steps[0], "/etc/printbot.yaml")
}

func TestGetInstructionsFromReport(t *testing.T) {
	require.Empty(t, GetInstructionsFromReport(nil))

	require.Empty(t, GetInstructionsFromReport(&automa.Report{Id: "wf"}))

	direct := &automa.Report{
		Id:       "wf",
		Metadata: map[string]string{"instructions": "check the printer cable"},
	}
	require.Equal(t, "check the printer cable", GetInstructionsFromReport(direct))

	nested := &automa.Report{
		Id: "wf",
		StepReports: []*automa.Report{
			{Id: "step-1"},
			{
				Id:       "step-2",
				Metadata: map[string]string{"instructions": "plug in the scanner"},
			},
		},
	}
	require.Equal(t, "plug in the scanner", GetInstructionsFromReport(nested))
}
