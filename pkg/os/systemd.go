// SPDX-License-Identifier: Apache-2.0

package os

import (
	"context"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"
)

// Manager abstracts the systemd operations the service installer and the
// lifecycle commands need. The default implementation talks to the systemd
// manager over dbus; tests inject a mock.
type Manager interface {
	// DaemonReload reloads the systemd manager configuration.
	// It is equivalent to running "systemctl daemon-reload".
	DaemonReload(ctx context.Context) error

	// EnableService enables the specified service without starting it.
	// It is equivalent to running "systemctl enable <service>".
	EnableService(ctx context.Context, name string) error

	// DisableService disables the specified service.
	// It is equivalent to running "systemctl disable <service>".
	DisableService(ctx context.Context, name string) error

	// IsServiceEnabled checks if the specified service is enabled.
	IsServiceEnabled(ctx context.Context, name string) (bool, error)

	// RestartService restarts the specified service and waits until the job
	// completes. It is equivalent to running "systemctl restart <service>".
	RestartService(ctx context.Context, name string) error

	// StopService stops the specified service and waits until the job
	// completes. It is equivalent to running "systemctl stop <service>".
	StopService(ctx context.Context, name string) error

	// IsServiceRunning checks if the specified service is active.
	IsServiceRunning(ctx context.Context, name string) (bool, error)
}

// NewManager returns a Manager backed by the system dbus connection.
// Each operation opens a fresh connection so a stale bus never wedges the CLI.
func NewManager() Manager {
	return dbusManager{}
}

type dbusManager struct{}

func (dbusManager) DaemonReload(ctx context.Context) error {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	if err := conn.ReloadContext(ctx); err != nil {
		return ErrSystemdOperation.Wrap(err, "daemon-reload failed")
	}
	return nil
}

func (dbusManager) EnableService(ctx context.Context, name string) error {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	// The second parameter 'false' means not to enable for runtime only, but rather persistently.
	// The third parameter 'true' means to force overwrite existing symlinks.
	_, _, err = conn.EnableUnitFilesContext(ctx, []string{serviceName}, false, true)
	if err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to enable service %s", serviceName).
			WithProperty(ServiceProperty, serviceName)
	}

	return nil
}

func (dbusManager) DisableService(ctx context.Context, name string) error {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	// The second parameter 'false' means not to disable for runtime only, but rather persistently.
	_, err = conn.DisableUnitFilesContext(ctx, []string{serviceName}, false)
	if err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to disable service %s", serviceName).
			WithProperty(ServiceProperty, serviceName)
	}

	return nil
}

func (dbusManager) IsServiceEnabled(ctx context.Context, name string) (bool, error) {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return false, ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	unitFiles, err := conn.ListUnitFilesByPatternsContext(ctx, []string{}, []string{serviceName})
	if err != nil {
		return false, ErrSystemdOperation.Wrap(err, "failed to list unit files for %s", serviceName)
	}

	if len(unitFiles) == 0 {
		return false, nil
	}

	return unitFiles[0].Type == "enabled", nil
}

func (dbusManager) RestartService(ctx context.Context, name string) error {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	// Make this call synchronous and wait until the unit is started.
	jobChan := make(chan string, 1) // buffered channel to avoid goroutine leaks

	// The second parameter 'replace' means to replace any existing job for the unit.
	_, err = conn.RestartUnitContext(ctx, serviceName, "replace", jobChan)
	if err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to start service %s", serviceName).
			WithProperty(ServiceProperty, serviceName)
	}

	select {
	case result := <-jobChan:
		if result != "done" {
			return ErrSystemdOperation.New("service %s start failed: %s", serviceName, result).
				WithProperty(ServiceProperty, serviceName).
				WithProperty(JobResultProperty, result)
		}
		return nil

	case <-ctx.Done():
		return ErrSystemdOperation.Wrap(ctx.Err(), "timeout waiting for service %s to start", serviceName).
			WithProperty(ServiceProperty, serviceName)
	}
}

func (dbusManager) StopService(ctx context.Context, name string) error {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	// Make this call synchronous and wait until the unit is stopped.
	jobChan := make(chan string, 1) // buffered channel to avoid goroutine leaks

	// The second parameter 'replace' means to replace any existing job for the unit.
	_, err = conn.StopUnitContext(ctx, serviceName, "replace", jobChan)
	if err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to stop service %s", serviceName).
			WithProperty(ServiceProperty, serviceName)
	}

	select {
	case result := <-jobChan:
		if result != "done" {
			return ErrSystemdOperation.New("service %s stop failed: %s", serviceName, result).
				WithProperty(ServiceProperty, serviceName).
				WithProperty(JobResultProperty, result)
		}
		return nil

	case <-ctx.Done():
		return ErrSystemdOperation.Wrap(ctx.Err(), "timeout waiting for service %s to stop", serviceName).
			WithProperty(ServiceProperty, serviceName)
	}
}

func (dbusManager) IsServiceRunning(ctx context.Context, name string) (bool, error) {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return false, ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	props, err := conn.GetUnitPropertiesContext(ctx, serviceName)
	if err != nil {
		return false, ErrSystemdOperation.Wrap(err, "failed to read properties of %s", serviceName)
	}

	return props["ActiveState"] == "active", nil
}

// ensureServiceSuffix ensures the service name has the .service suffix.
// If the name already has the suffix, it returns it unchanged.
func ensureServiceSuffix(name string) string {
	if !strings.HasSuffix(name, ".service") {
		return name + ".service"
	}
	return name
}

// Package-level wrappers over the default dbus-backed Manager. The service
// lifecycle commands use these; workflow steps take a Manager so they can be
// tested without a bus.

func DaemonReload(ctx context.Context) error {
	return NewManager().DaemonReload(ctx)
}

func EnableService(ctx context.Context, name string) error {
	return NewManager().EnableService(ctx, name)
}

func DisableService(ctx context.Context, name string) error {
	return NewManager().DisableService(ctx, name)
}

func IsServiceEnabled(ctx context.Context, name string) (bool, error) {
	return NewManager().IsServiceEnabled(ctx, name)
}

func RestartService(ctx context.Context, name string) error {
	return NewManager().RestartService(ctx, name)
}

func StopService(ctx context.Context, name string) error {
	return NewManager().StopService(ctx, name)
}

func IsServiceRunning(ctx context.Context, name string) (bool, error) {
	return NewManager().IsServiceRunning(ctx, name)
}
