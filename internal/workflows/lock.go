// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"time"

	"github.com/automa-saga/logx"
	"github.com/gofrs/flock"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/doctor"
)

// installLockTimeout bounds how long a mutating command waits for a
// concurrent printbot invocation to finish.
const installLockTimeout = 30 * time.Second

// AcquireInstallLock takes the host-wide exclusive lock that serializes the
// mutating procedures (provision, service install, service uninstall). The
// returned release function must be called once the workflow has finished.
func AcquireInstallLock(ctx context.Context) (func(), error) {
	fileLock := flock.New(core.InstallLockFile)
	lockCtx, cancel := context.WithTimeout(ctx, installLockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, time.Second)
	if err != nil {
		return nil, errorx.IllegalState.Wrap(err, "failed to acquire installer lock %q", core.InstallLockFile)
	}
	if !locked {
		return nil, errorx.IllegalState.New("timed out acquiring installer lock %q", core.InstallLockFile).
			WithProperty(doctor.ErrPropertyResolution,
				"Another printbot invocation is likely running. Wait for it to finish, "+
					"or remove the lock file if you are sure no other run is active.")
	}

	return func() {
		if e := fileLock.Unlock(); e != nil {
			logx.As().Warn().Err(e).Str("lockPath", core.InstallLockFile).Msg("failed to release installer lock")
		}
	}, nil
}
